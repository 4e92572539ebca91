package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/terrenohq/asistencia-backend-go/internal/pkg/database"
)

// WithTransaction starts a transaction on db and hands it to fn. A nil
// return from fn commits, any error rolls back.
func WithTransaction(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	// Rolling back a committed transaction is a no-op, so the deferred
	// rollback also covers panics raised inside fn.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetQuerier resolves the handle repository methods should run statements
// on: the transaction carried by ctx when a service opened one, the pool
// otherwise.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	tx, ok := ctx.Value("tx").(pgx.Tx)
	if !ok {
		return db.Pool
	}
	return tx
}
