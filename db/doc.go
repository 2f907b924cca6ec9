// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema migrations, and poll storage.

# Connections

Open returns a *sql.DB for one of the supported database types:

	conn, err := db.Open(db.DialectSQLite, "polls.db")
	conn, err := db.Open(db.DialectPostgres, "postgres://...")

SQLite uses modernc.org/sqlite (no cgo), PostgreSQL uses lib/pq.

# Migrations

Versioned SQL files are embedded from migrations/<type>/ and applied with
golang-migrate:

	if err := db.Migrate(cfg.DatabaseType, cfg.DatabaseURL); err != nil {
		log.Fatal(err)
	}

Safe to call on every start; an up-to-date schema is not an error.

# Tables

	poll(id, question, pub_date)

pub_date is indexed for the index page query.

# Poll Store

PollStore is the repository the handlers depend on:

	store := db.NewPollStore(conn, cfg.DatabaseType)
	poll, err := store.Create(ctx, "What's new?", time.Now())
	poll, err = store.FindByID(ctx, poll.ID)
	polls, err := store.FilterPublishedUpTo(ctx, time.Now())

FindByID wraps ErrPollNotFound when no row matches; test with errors.Is.
*/
package db
