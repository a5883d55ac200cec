package service

import "errors"

var (
	ErrInvalidPrice         = errors.New("price must be greater than zero")
	ErrNotListed            = errors.New("asset is not listed")
	ErrAlreadyListed        = errors.New("asset is already listed")
	ErrInsufficientPayment  = errors.New("payment is lower than the price")
	ErrNotSeller            = errors.New("caller is not the seller")
	ErrInvalidFeePercentage = errors.New("fee percentage must be in [0,100)")
	ErrTransferRejected     = errors.New("transfer rejected")
	ErrNotAdministrator     = errors.New("caller is not the administrator")
	ErrActionBusy           = errors.New("timed out waiting for the running action")
)
