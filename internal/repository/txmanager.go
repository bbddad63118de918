package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type txCtxKey struct{}

// TxManager runs a function inside one transaction. Repositories built on the
// same connection pick the transaction up from the context.
// Nested RunInTx calls reuse the outer transaction.
type TxManager struct {
	conn PgConnection
}

func NewTxManager(conn PgConnection) *TxManager {
	return &TxManager{conn: conn}
}

// RunInTx commits when fn returns nil and rolls back on error or panic.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	tx, err := m.conn.Begin(ctx)
	if err != nil {
		return errors.New("begin transaction error: " + err.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()
	if err = fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("commit transaction error: " + err.Error())
	}
	return nil
}

// querier returns the transaction carried by ctx, or conn outside of one.
func querier(ctx context.Context, conn PgConnection) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return conn
}
