package tx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// TxRepository hands out transactions on the shared pool. Callers pair every BeginTx with
// exactly one CommitTx or RollbackTx.
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

// NewTxRepository opens READ COMMITTED transactions. Stock guards rely on conditional
// updates, not on repeatable reads.
func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db, opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted}}
}

func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, r.opts)
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

// RollbackTx treats an already finished transaction as rolled back.
func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		return err
	}
	return nil
}
