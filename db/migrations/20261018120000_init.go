package migrations

import (
	"context"

	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/uptrace/bun"
)

/* Since this init will reflect the latest model fields when run on fresh db
make sure that when you add/remove columns in subsequent migrations IfNotExists/IfExists is used
otherwise it's going to result in errors.
*/
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		tables := []interface{}{
			(*models.Listing)(nil),
			(*models.Sale)(nil),
			(*models.FeeConfig)(nil),
			(*models.CollectionStats)(nil),
			(*models.MarketEvent)(nil),
			(*models.AssetHolding)(nil),
			(*models.AssetApproval)(nil),
			(*models.Account)(nil),
			(*models.TransactionEntry)(nil),
		}
		for _, model := range tables {
			if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		tables := []interface{}{
			(*models.TransactionEntry)(nil),
			(*models.Account)(nil),
			(*models.AssetApproval)(nil),
			(*models.AssetHolding)(nil),
			(*models.MarketEvent)(nil),
			(*models.CollectionStats)(nil),
			(*models.FeeConfig)(nil),
			(*models.Sale)(nil),
			(*models.Listing)(nil),
		}
		for _, model := range tables {
			if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}
