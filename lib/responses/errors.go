package responses

import (
	"errors"
	"net/http"

	"github.com/getAlby/nftmarket.go/lib/ledger"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var BadAuthError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "bad auth",
	HttpStatusCode: 401,
}

var InvalidPriceError = ErrorResponse{
	Error:          true,
	Code:           10,
	Message:        "price must be greater than zero",
	HttpStatusCode: 400,
}

var NotListedError = ErrorResponse{
	Error:          true,
	Code:           11,
	Message:        "asset is not listed",
	HttpStatusCode: 404,
}

var AlreadyListedError = ErrorResponse{
	Error:          true,
	Code:           12,
	Message:        "asset is already listed",
	HttpStatusCode: 400,
}

var InsufficientPaymentError = ErrorResponse{
	Error:          true,
	Code:           13,
	Message:        "payment is lower than the listing price",
	HttpStatusCode: 400,
}

var NotSellerError = ErrorResponse{
	Error:          true,
	Code:           14,
	Message:        "only the seller can change this listing",
	HttpStatusCode: 403,
}

var InvalidFeePercentageError = ErrorResponse{
	Error:          true,
	Code:           15,
	Message:        "fee percentage must be between 0 and 99",
	HttpStatusCode: 400,
}

var TransferRejectedError = ErrorResponse{
	Error:          true,
	Code:           16,
	Message:        "transfer rejected. make sure the marketplace is approved and your balance is sufficient",
	HttpStatusCode: 409,
}

var NotAdministratorError = ErrorResponse{
	Error:          true,
	Code:           17,
	Message:        "only the administrator can change marketplace settings",
	HttpStatusCode: 403,
}

var UnknownAssetError = ErrorResponse{
	Error:          true,
	Code:           18,
	Message:        "unknown asset",
	HttpStatusCode: 404,
}

var AssetExistsError = ErrorResponse{
	Error:          true,
	Code:           19,
	Message:        "asset already exists",
	HttpStatusCode: 400,
}

var ActionBusyError = ErrorResponse{
	Error:          true,
	Code:           20,
	Message:        "marketplace is busy. Please try again later",
	HttpStatusCode: 503,
}

// marketplace errors come first: a rejected transfer also wraps the ledger error
var marketErrors = []struct {
	err      error
	response ErrorResponse
}{
	{service.ErrInvalidPrice, InvalidPriceError},
	{service.ErrNotListed, NotListedError},
	{service.ErrAlreadyListed, AlreadyListedError},
	{service.ErrInsufficientPayment, InsufficientPaymentError},
	{service.ErrNotSeller, NotSellerError},
	{service.ErrInvalidFeePercentage, InvalidFeePercentageError},
	{service.ErrTransferRejected, TransferRejectedError},
	{service.ErrNotAdministrator, NotAdministratorError},
	{service.ErrActionBusy, ActionBusyError},
	{ledger.ErrUnknownAsset, UnknownAssetError},
	{ledger.ErrAssetExists, AssetExistsError},
	{ledger.ErrInvalidAmount, BadArgumentsError},
	{ledger.ErrSameAccount, BadArgumentsError},
}

// MarketError maps a marketplace error to its response. ok is false for
// unexpected errors.
func MarketError(err error) (response ErrorResponse, ok bool) {
	for _, candidate := range marketErrors {
		if errors.Is(err, candidate.err) {
			return candidate.response, true
		}
	}
	return GeneralServerError, false
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("Address", c.Get("Address"))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
		return
	}
	if response, ok := MarketError(err); ok {
		c.JSON(response.HttpStatusCode, response)
		return
	}
	c.JSON(http.StatusInternalServerError, GeneralServerError)
}

// bad auth and expected marketplace errors are client mistakes, not incidents
func isErrAllowedForSentry(err error) bool {
	if he, ok := err.(*echo.HTTPError); ok {
		if m, ok := he.Message.(echo.Map); ok {
			if code, ok := m["code"].(int); ok && code == BadAuthError.Code {
				return false
			}
		}
		return he.Code >= http.StatusInternalServerError
	}
	_, expected := MarketError(err)
	return !expected
}
