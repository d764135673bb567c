package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

// TxFunc is the body of a transaction. Returning an error rolls it back.
type TxFunc func(ctx context.Context, tx bun.Tx) error

// WithWriteTx runs fn in an immediate write transaction on the writer.
func (db *DB) WithWriteTx(ctx context.Context, fn TxFunc) error {
	if db == nil || db.W == nil {
		return errors.New("write db is not initialized")
	}
	return db.W.RunInTx(ctx, &sql.TxOptions{}, fn)
}

// WithReadTx runs fn in a read-only transaction on the reader pool.
func (db *DB) WithReadTx(ctx context.Context, fn TxFunc) error {
	if db == nil || db.R == nil {
		return errors.New("read db is not initialized")
	}
	return db.R.RunInTx(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}
