// Package ledger is a database backed reference implementation of the asset
// and value primitives the marketplace settles against. Every operation takes
// the bun.IDB it should run on so callers can join an open transaction.
package ledger

import (
	"context"
	"errors"
	"sync"
)

// IssuanceAddress is the account deposits are booked against. It is the only
// account allowed to carry a negative balance.
const IssuanceAddress = "ledger:issuance"

var (
	ErrUnknownAsset        = errors.New("unknown asset")
	ErrAssetExists         = errors.New("asset already exists")
	ErrNotOwner            = errors.New("from is not the owner of the asset")
	ErrNotApproved         = errors.New("operator is not approved by the owner")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrSameAccount         = errors.New("cannot transfer to the same account")
	ErrReceiverRejected    = errors.New("receiver rejected the transfer")
)

// AssetReceiver is notified after an asset was moved to the address it is
// registered for. Returning an error rejects the transfer.
// The transfer is still in progress: a receiver that calls back into the
// marketplace must pass on the ctx it received, any other context waits for
// the running action and fails once its timeout expires.
type AssetReceiver interface {
	OnAssetReceived(ctx context.Context, operator, from, collection string, tokenID uint64) error
}

// PaymentReceiver is notified after value was credited to the address it is
// registered for. Returning an error rejects the transfer.
// Callbacks into the marketplace must reuse ctx, see AssetReceiver.
type PaymentReceiver interface {
	OnPaymentReceived(ctx context.Context, from string, amount int64, entryType string) error
}

type Ledger struct {
	mu               sync.RWMutex
	assetReceivers   map[string]AssetReceiver
	paymentReceivers map[string]PaymentReceiver
}

func New() *Ledger {
	return &Ledger{
		assetReceivers:   make(map[string]AssetReceiver),
		paymentReceivers: make(map[string]PaymentReceiver),
	}
}

func (l *Ledger) RegisterAssetReceiver(address string, receiver AssetReceiver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.assetReceivers[address] = receiver
}

func (l *Ledger) RegisterPaymentReceiver(address string, receiver PaymentReceiver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paymentReceivers[address] = receiver
}

func (l *Ledger) UnregisterPaymentReceiver(address string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.paymentReceivers, address)
}

func (l *Ledger) assetReceiver(address string) AssetReceiver {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.assetReceivers[address]
}

func (l *Ledger) paymentReceiver(address string) PaymentReceiver {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.paymentReceivers[address]
}
