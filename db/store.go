// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/polls/models"
)

// Supported database types. They double as database/sql driver names.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

var (
	ErrPollNotFound       = errors.New("poll not found")
	ErrUnsupportedDialect = errors.New("unsupported database type")
)

// PollStore persists and queries polls.
type PollStore interface {
	Create(ctx context.Context, question string, pubDate time.Time) (models.Poll, error)
	FindByID(ctx context.Context, id uuid.UUID) (models.Poll, error)
	// FilterPublishedUpTo returns polls with pub_date <= now, newest first.
	FilterPublishedUpTo(ctx context.Context, now time.Time) ([]models.Poll, error)
}

// Open opens a connection pool for the given database type.
func Open(dbType, databaseURL string) (*sql.DB, error) {
	const op = "db.Open"

	if err := ValidateDialect(dbType); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	conn, err := sql.Open(dbType, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return conn, nil
}

// ValidateDialect returns ErrUnsupportedDialect for anything but sqlite or postgres.
func ValidateDialect(dbType string) error {
	switch dbType {
	case DialectSQLite, DialectPostgres:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, dbType)
	}
}

type SQLPollStore struct {
	db      *sql.DB
	dialect string
}

func NewPollStore(db *sql.DB, dialect string) *SQLPollStore {
	return &SQLPollStore{db: db, dialect: dialect}
}

func (s *SQLPollStore) Create(ctx context.Context, question string, pubDate time.Time) (models.Poll, error) {
	const op = "db.PollStore.Create"

	poll := models.Poll{
		ID:       uuid.New(),
		Question: question,
		// Postgres keeps microseconds; store the same value everywhere.
		PubDate: pubDate.UTC().Truncate(time.Microsecond),
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO poll (id, question, pub_date)
		VALUES (?, ?, ?)
	`), poll.ID, poll.Question, poll.PubDate)
	if err != nil {
		return models.Poll{}, fmt.Errorf("%s: %w", op, err)
	}

	return poll, nil
}

func (s *SQLPollStore) FindByID(ctx context.Context, id uuid.UUID) (models.Poll, error) {
	const op = "db.PollStore.FindByID"

	var poll models.Poll
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, question, pub_date
		FROM poll
		WHERE id = ?
	`), id).Scan(&poll.ID, &poll.Question, &poll.PubDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Poll{}, fmt.Errorf("%s: %w", op, ErrPollNotFound)
		}
		return models.Poll{}, fmt.Errorf("%s: %w", op, err)
	}

	return poll, nil
}

func (s *SQLPollStore) FilterPublishedUpTo(ctx context.Context, now time.Time) ([]models.Poll, error) {
	const op = "db.PollStore.FilterPublishedUpTo"

	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, question, pub_date
		FROM poll
		WHERE pub_date <= ?
		ORDER BY pub_date DESC
	`), now.UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var poll models.Poll
		if err := rows.Scan(&poll.ID, &poll.Question, &poll.PubDate); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		polls = append(polls, poll)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return polls, nil
}

// rebind rewrites ? placeholders to $1, $2, ... for postgres
func (s *SQLPollStore) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
