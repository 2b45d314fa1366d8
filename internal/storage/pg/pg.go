package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	_ "github.com/lib/pq"

	"github.com/anonbbs-dev/anonbbs/internal/config"
	"github.com/anonbbs-dev/anonbbs/internal/logger"
	"github.com/anonbbs-dev/anonbbs/internal/utils"
)

// writeTimeout bounds every mutating statement so a stuck connection can't
// hold a transaction across request boundaries.
const writeTimeout = 5 * time.Second

type Storage struct {
	db     *sql.DB
	tokens utils.TokenSource
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("Connecting to db")
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Succesfully connected to db")
	return &Storage{db: db, tokens: utils.CryptoTokenSource{}}, nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port, cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping reports whether the underlying store is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Querier is the subset of *sql.DB and *sql.Tx the internal methods need,
// so the same logic runs inside and outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on any error.
func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed.

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

// schemaStatements is the full relational layout. Setup drops everything
// first, so running it against a live dataset destroys it; the setup-db
// tool refuses to do that without -force.
var schemaStatements = []string{
	`DROP TABLE IF EXISTS posts`,
	`DROP TABLE IF EXISTS threads`,
	`DROP TABLE IF EXISTS boards`,
	`DROP TABLE IF EXISTS users`,
	`CREATE TABLE users (
		id BIGSERIAL PRIMARY KEY,
		show_id TEXT NOT NULL UNIQUE,
		nickname TEXT NOT NULL DEFAULT '',
		session TEXT NOT NULL UNIQUE,
		last_ip TEXT NOT NULL DEFAULT '',
		last_time TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE boards (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		introduction TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE threads (
		id BIGSERIAL PRIMARY KEY,
		board_id BIGINT NOT NULL REFERENCES boards (id),
		head_post BIGINT NOT NULL DEFAULT -1
	)`,
	`CREATE TABLE posts (
		id BIGSERIAL PRIMARY KEY,
		thread_id BIGINT NOT NULL REFERENCES threads (id),
		user_id BIGINT REFERENCES users (id) ON DELETE SET NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		created TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX posts_thread_created_idx ON posts (thread_id, created)`,
	`CREATE INDEX posts_user_idx ON posts (user_id)`,
	`CREATE INDEX threads_board_idx ON threads (board_id)`,
}

// Setup drops and recreates all four relations. Administrative bootstrap
// only, never a runtime path.
func (s *Storage) Setup(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema statement: %w", err)
			}
		}
		return nil
	})
}
