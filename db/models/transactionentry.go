package models

import (
	"time"

	"github.com/uptrace/bun"
)

// TransactionEntry : Transaction Entries Model
// Every value movement is booked once, debiting one account and crediting another.
type TransactionEntry struct {
	bun.BaseModel `bun:"table:transaction_entries"`

	ID              int64     `json:"id" bun:",pk,autoincrement"`
	CreditAccountID int64     `json:"-" bun:",notnull"`
	CreditAccount   *Account  `json:"-" bun:"rel:belongs-to,join:credit_account_id=id"`
	DebitAccountID  int64     `json:"-" bun:",notnull"`
	DebitAccount    *Account  `json:"-" bun:"rel:belongs-to,join:debit_account_id=id"`
	Amount          int64     `json:"amount" bun:",notnull"`
	EntryType       string    `json:"entry_type" bun:",notnull"`
	CreatedAt       time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
