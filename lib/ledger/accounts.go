package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/getAlby/nftmarket.go/common"
	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/uptrace/bun"
)

// Deposit credits address with newly issued value.
func (l *Ledger) Deposit(ctx context.Context, db bun.IDB, address string, amount int64) (*models.Account, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if address == IssuanceAddress {
		return nil, ErrSameAccount
	}
	issuance, err := l.account(ctx, db, IssuanceAddress)
	if err != nil {
		return nil, err
	}
	account, err := l.account(ctx, db, address)
	if err != nil {
		return nil, err
	}
	if err := l.book(ctx, db, issuance, account, amount, common.EntryTypeDeposit); err != nil {
		return nil, err
	}
	return account, nil
}

// Transfer moves amount from one address to another and books a transaction entry.
// The receiver registered for to runs after the move and may reject it.
func (l *Ledger) Transfer(ctx context.Context, db bun.IDB, from, to string, amount int64, entryType string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if from == to {
		return ErrSameAccount
	}
	debit, err := l.account(ctx, db, from)
	if err != nil {
		return err
	}
	if debit.Balance < amount {
		return fmt.Errorf("%w: %s has %d, needs %d", ErrInsufficientBalance, from, debit.Balance, amount)
	}
	credit, err := l.account(ctx, db, to)
	if err != nil {
		return err
	}
	if err := l.book(ctx, db, debit, credit, amount, entryType); err != nil {
		return err
	}
	if receiver := l.paymentReceiver(to); receiver != nil {
		if err := receiver.OnPaymentReceived(ctx, from, amount, entryType); err != nil {
			return fmt.Errorf("%w: %v", ErrReceiverRejected, err)
		}
	}
	return nil
}

// BalanceFor returns the value balance of address, 0 for unknown addresses.
func (l *Ledger) BalanceFor(ctx context.Context, db bun.IDB, address string) (int64, error) {
	account := &models.Account{}
	err := db.NewSelect().Model(account).Where("address = ?", address).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// Entries returns the latest transaction entries touching address, newest first.
func (l *Ledger) Entries(ctx context.Context, db bun.IDB, address string, limit int) ([]models.TransactionEntry, error) {
	entries := []models.TransactionEntry{}
	err := db.NewSelect().
		Model(&entries).
		Relation("CreditAccount").
		Relation("DebitAccount").
		Where("credit_account.address = ? OR debit_account.address = ?", address, address).
		OrderExpr("transaction_entry.id DESC").
		Limit(limit).
		Scan(ctx)
	return entries, err
}

func (l *Ledger) book(ctx context.Context, db bun.IDB, debit, credit *models.Account, amount int64, entryType string) error {
	debit.Balance -= amount
	credit.Balance += amount
	if _, err := db.NewUpdate().Model(debit).Column("balance", "updated_at").WherePK().Exec(ctx); err != nil {
		return err
	}
	if _, err := db.NewUpdate().Model(credit).Column("balance", "updated_at").WherePK().Exec(ctx); err != nil {
		return err
	}
	entry := &models.TransactionEntry{
		DebitAccountID:  debit.ID,
		CreditAccountID: credit.ID,
		Amount:          amount,
		EntryType:       entryType,
		CreatedAt:       time.Now(),
	}
	_, err := db.NewInsert().Model(entry).Exec(ctx)
	return err
}

// account loads the account of address, creating an empty one if missing
func (l *Ledger) account(ctx context.Context, db bun.IDB, address string) (*models.Account, error) {
	if address == "" {
		return nil, fmt.Errorf("address is required")
	}
	account := &models.Account{}
	err := db.NewSelect().Model(account).Where("address = ?", address).Limit(1).Scan(ctx)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	account = &models.Account{Address: address, CreatedAt: time.Now()}
	if _, err := db.NewInsert().Model(account).Exec(ctx); err != nil {
		return nil, err
	}
	return account, nil
}
