// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies every pending migration for the database type.
// It opens (and closes) its own connection, so it is safe to call before
// the server pool exists. Already up to date is not an error.
func Migrate(dbType, databaseURL string) error {
	const op = "db.Migrate"

	conn, err := Open(dbType, databaseURL)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	src, err := iofs.New(migrationsFS, "migrations/"+dbType)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%s: source: %w", op, err)
	}

	var driver database.Driver
	switch dbType {
	case DialectPostgres:
		driver, err = migratepg.WithInstance(conn, &migratepg.Config{})
	case DialectSQLite:
		driver, err = migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	}
	if err != nil {
		src.Close()
		conn.Close()
		return fmt.Errorf("%s: driver: %w", op, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dbType, driver)
	if err != nil {
		src.Close()
		driver.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	// Closes src, driver and conn
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: up: %w", op, err)
	}

	return nil
}
