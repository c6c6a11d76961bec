package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Tables in dependency-safe deletion order: every table appears before the
// tables it references.
var Tables = []string{
	"orders",
	"logistics",
	"demand_forecast",
	"reports",
	"logs",
	"inventory",
	"products",
	"routes",
	"users",
}

// SerialTables are the tables whose id column is generated by the store.
var SerialTables = []string{
	"users",
	"orders",
	"logistics",
	"demand_forecast",
	"reports",
	"logs",
	"inventory",
	"routes",
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id SERIAL PRIMARY KEY,
        username VARCHAR(100) NOT NULL UNIQUE,
        password VARCHAR(255) NOT NULL,
        role VARCHAR(20) NOT NULL DEFAULT 'User'
    )`,
	`CREATE TABLE IF NOT EXISTS products (
        sku VARCHAR(50) PRIMARY KEY,
        name VARCHAR(255) NOT NULL,
        description TEXT NOT NULL DEFAULT '',
        threshold INTEGER NOT NULL DEFAULT 0 CHECK (threshold >= 0)
    )`,
	`CREATE TABLE IF NOT EXISTS inventory (
        id SERIAL PRIMARY KEY,
        sku VARCHAR(50) NOT NULL REFERENCES products(sku),
        location VARCHAR(100) NOT NULL,
        location_kind VARCHAR(20) NOT NULL,
        quantity INTEGER NOT NULL CHECK (quantity >= 0),
        UNIQUE (sku, location)
    )`,
	`CREATE TABLE IF NOT EXISTS routes (
        id SERIAL PRIMARY KEY,
        origin VARCHAR(100) NOT NULL,
        origin_kind VARCHAR(20) NOT NULL,
        destination VARCHAR(100) NOT NULL,
        destination_kind VARCHAR(20) NOT NULL,
        cost NUMERIC(12,2) NOT NULL CHECK (cost >= 0),
        distance_km NUMERIC(10,2) NOT NULL DEFAULT 0
    )`,
	`CREATE INDEX IF NOT EXISTS idx_routes_pair_cost ON routes (origin, destination, cost)`,
	`CREATE TABLE IF NOT EXISTS logistics (
        id SERIAL PRIMARY KEY,
        sku VARCHAR(50) NOT NULL REFERENCES products(sku),
        origin VARCHAR(100) NOT NULL,
        destination VARCHAR(100) NOT NULL,
        quantity INTEGER NOT NULL CHECK (quantity > 0),
        transport_cost NUMERIC(12,2) NOT NULL DEFAULT 0,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE TABLE IF NOT EXISTS orders (
        id SERIAL PRIMARY KEY,
        sku VARCHAR(50) NOT NULL REFERENCES products(sku),
        quantity INTEGER NOT NULL CHECK (quantity > 0),
        customer_name VARCHAR(100) NOT NULL,
        customer_location VARCHAR(100) NOT NULL,
        status VARCHAR(30) NOT NULL DEFAULT 'Pending',
        event_id VARCHAR(100) UNIQUE,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`ALTER TABLE orders ADD COLUMN IF NOT EXISTS event_id VARCHAR(100) UNIQUE`,
	`CREATE TABLE IF NOT EXISTS demand_forecast (
        id SERIAL PRIMARY KEY,
        sku VARCHAR(50) NOT NULL REFERENCES products(sku),
        forecast_value INTEGER NOT NULL,
        forecast_date DATE NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS reports (
        id SERIAL PRIMARY KEY,
        title VARCHAR(255) NOT NULL,
        payload TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE TABLE IF NOT EXISTS logs (
        id SERIAL PRIMARY KEY,
        user_id INTEGER NOT NULL,
        action TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        username TEXT NOT NULL UNIQUE,
        password TEXT NOT NULL,
        role TEXT NOT NULL DEFAULT 'User'
    )`,
	`CREATE TABLE IF NOT EXISTS products (
        sku TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        description TEXT NOT NULL DEFAULT '',
        threshold INTEGER NOT NULL DEFAULT 0 CHECK (threshold >= 0)
    )`,
	`CREATE TABLE IF NOT EXISTS inventory (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        sku TEXT NOT NULL REFERENCES products(sku),
        location TEXT NOT NULL,
        location_kind TEXT NOT NULL,
        quantity INTEGER NOT NULL CHECK (quantity >= 0),
        UNIQUE (sku, location)
    )`,
	`CREATE TABLE IF NOT EXISTS routes (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        origin TEXT NOT NULL,
        origin_kind TEXT NOT NULL,
        destination TEXT NOT NULL,
        destination_kind TEXT NOT NULL,
        cost NUMERIC NOT NULL CHECK (cost >= 0),
        distance_km NUMERIC NOT NULL DEFAULT 0
    )`,
	`CREATE INDEX IF NOT EXISTS idx_routes_pair_cost ON routes (origin, destination, cost)`,
	`CREATE TABLE IF NOT EXISTS logistics (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        sku TEXT NOT NULL REFERENCES products(sku),
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        quantity INTEGER NOT NULL CHECK (quantity > 0),
        transport_cost NUMERIC NOT NULL DEFAULT 0,
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE TABLE IF NOT EXISTS orders (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        sku TEXT NOT NULL REFERENCES products(sku),
        quantity INTEGER NOT NULL CHECK (quantity > 0),
        customer_name TEXT NOT NULL,
        customer_location TEXT NOT NULL,
        status TEXT NOT NULL DEFAULT 'Pending',
        event_id TEXT UNIQUE,
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE TABLE IF NOT EXISTS demand_forecast (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        sku TEXT NOT NULL REFERENCES products(sku),
        forecast_value INTEGER NOT NULL,
        forecast_date DATE NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS reports (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        title TEXT NOT NULL,
        payload TEXT NOT NULL,
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
	`CREATE TABLE IF NOT EXISTS logs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        user_id INTEGER NOT NULL,
        action TEXT NOT NULL,
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	statements := postgresSchema
	if db.DriverName() == DriverSQLite {
		statements = sqliteSchema
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// ResetSequences restarts every generated id at 1. It must run inside the
// transaction that emptied the tables.
func ResetSequences(ctx context.Context, tx *sqlx.Tx) error {
	if tx.DriverName() == DriverSQLite {
		query, args, err := sqlx.In(`DELETE FROM sqlite_sequence WHERE name IN (?)`, SerialTables)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("failed to reset sqlite sequences: %w", err)
		}
		return nil
	}

	for _, table := range SerialTables {
		query := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), 1, false)`, table)
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to reset sequence for %s: %w", table, err)
		}
	}
	return nil
}
