package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Beginner starts transactions. Satisfied by *pgxpool.Pool and pgxmock pools.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager scopes repository calls to one transaction through the context.
// A settlement insert and the plan status change it implies always go
// through RunInTx together, as do bulk imports and resets.
type TxManager struct {
	db Beginner
}

// NewTxManager creates a new TxManager.
func NewTxManager(db Beginner) *TxManager {
	return &TxManager{db: db}
}

// RunInTx runs fn inside a Read Committed transaction carried by the context
// passed to fn. If ctx already carries a transaction, fn joins it and the
// outermost call decides commit or rollback. A panic in fn rolls back and
// is re-raised.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres.RunInTx: begin: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		// Rollback after a failed fn or a panic. ctx may already be
		// cancelled, so the rollback runs detached from it.
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres.RunInTx: commit: %w", err)
	}
	committed = true
	return nil
}
