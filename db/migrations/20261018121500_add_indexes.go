package migrations

import (
	"context"
	"fmt"

	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateIndex().
			Model((*models.Listing)(nil)).
			Index("listings_seller_idx").
			Column("seller").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*models.Sale)(nil)).
			Index("sales_collection_token_idx").
			Column("collection", "token_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*models.MarketEvent)(nil)).
			Index("market_events_published_at_idx").
			Column("published_at").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		if db.Dialect().Name().String() != "pg" {
			fmt.Printf("\033[1;31m%s\033[0m", "You are not using PostgreSQL. DB level checks can not be enabled!\n")
			return nil
		}
		sql := `
			-- a listing always has a positive price
				ALTER TABLE listings
				ADD CONSTRAINT check_listing_price
				CHECK (price > 0);

			-- fee percentage is bounded to [0,100)
				ALTER TABLE fee_configs
				ADD CONSTRAINT check_fee_percentage
				CHECK (percentage >= 0 AND percentage < 100);

			-- value accounts can never go negative, except the issuance account backing deposits
				ALTER TABLE accounts
				ADD CONSTRAINT check_account_balance
				CHECK (balance >= 0 OR address = 'ledger:issuance');

			-- make sure transfers happen from one account to another one
				ALTER TABLE transaction_entries
				ADD CONSTRAINT check_not_same_account
				CHECK (debit_account_id != credit_account_id);
		`
		if _, err := db.Exec(sql); err != nil {
			return err
		}
		return nil
	}, nil)
}
