package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // register postgres dialect
)

// Repository is the shared store handle every component receives at
// construction time. The pool lifecycle belongs to the process entry point.
type Repository struct {
	DB   *sql.DB
	Goqu *goqu.Database
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DB:   db,
		Goqu: goqu.New("postgres", db),
	}
}

// WithTransaction runs fn inside a transaction. Commit only happens when fn
// returns nil, any error or panic rolls the whole unit back. The caller's
// context bounds the whole transaction, including the wait for a pool
// connection.
func WithTransaction(ctx context.Context, db *goqu.Database, fn func(tx *goqu.TxDatabase) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	return tx.Wrap(func() error {
		return fn(tx)
	})
}
