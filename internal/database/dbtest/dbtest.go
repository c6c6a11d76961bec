// Package dbtest opens throwaway SQLite databases carrying the service schema.
package dbtest

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-scm-service/internal/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// New returns an isolated in-memory database with the schema applied.
// A single connection keeps the memory database alive for the whole test and
// makes concurrent transactions queue behind each other.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := database.Open(&database.Config{
		Driver:       database.DriverSQLite,
		SQLitePath:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

// NewFile returns a database backed by a temporary file with up to conns open
// connections, so concurrent transactions run on separate connections and
// only the store's own locking orders them.
func NewFile(t testing.TB, conns int) *sqlx.DB {
	t.Helper()

	db, err := database.Open(&database.Config{
		Driver:       database.DriverSQLite,
		SQLitePath:   filepath.Join(t.TempDir(), "scm.db"),
		MaxOpenConns: conns,
		MaxIdleConns: conns,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

// Exec runs raw fixture statements.
func Exec(t testing.TB, db *sqlx.DB, query string, args ...interface{}) {
	t.Helper()
	_, err := db.Exec(db.Rebind(query), args...)
	require.NoError(t, err)
}

// SeedProduct inserts a product row directly.
func SeedProduct(t testing.TB, db *sqlx.DB, sku, name string, threshold int) {
	t.Helper()
	Exec(t, db, `INSERT INTO products (sku, name, description, threshold) VALUES (?, ?, '', ?)`, sku, name, threshold)
}

// SeedInventory inserts an inventory row directly.
func SeedInventory(t testing.TB, db *sqlx.DB, sku, location, kind string, quantity int) {
	t.Helper()
	Exec(t, db, `INSERT INTO inventory (sku, location, location_kind, quantity) VALUES (?, ?, ?, ?)`,
		sku, location, kind, quantity)
}

// SeedRoute inserts a route row directly.
func SeedRoute(t testing.TB, db *sqlx.DB, origin, originKind, destination, destinationKind string, cost, distance float64) {
	t.Helper()
	Exec(t, db, `INSERT INTO routes (origin, origin_kind, destination, destination_kind, cost, distance_km) VALUES (?, ?, ?, ?, ?, ?)`,
		origin, originKind, destination, destinationKind, cost, distance)
}

// Quantity returns the stored quantity at (sku, location), or -1 when absent.
func Quantity(t testing.TB, db *sqlx.DB, sku, location string) int {
	t.Helper()
	var qty []int
	require.NoError(t, db.Select(&qty, db.Rebind(`SELECT quantity FROM inventory WHERE sku = ? AND location = ?`), sku, location))
	if len(qty) == 0 {
		return -1
	}
	return qty[0]
}

// Count returns the number of rows in table.
func Count(t testing.TB, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}
