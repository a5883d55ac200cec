// Package dbtest opens throwaway migrated databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/getAlby/nftmarket.go/db/migrations"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// DSN returns a sqlite:// uri of a fresh in-memory database.
func DSN() string {
	return fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", uuid.NewString())
}

// Open returns a migrated in-memory database that is closed when the test ends.
func Open(t testing.TB) *bun.DB {
	t.Helper()
	sqldb, err := sql.Open(sqliteshim.ShimName, fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)
	sqldb.SetConnMaxLifetime(0)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	_, err = migrations.Migrate(context.Background(), db)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return db
}
