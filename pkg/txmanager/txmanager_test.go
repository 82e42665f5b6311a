package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash635644/barber-backend/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx    *fakeTx
	opts  *sql.TxOptions
	calls int
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.calls++
	b.opts = opts
	return b.tx, nil
}

func TestDoSerializable_CommitsAndExposesTx(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)

	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, beginner.tx.committed)
	assert.False(t, beginner.tx.rolledBack)
	assert.Equal(t, sql.LevelSerializable, beginner.opts.Isolation)
}

func TestDoSerializable_RollsBackOnError(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)
	boom := errors.New("boom")

	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.True(t, beginner.tx.rolledBack)
	assert.False(t, beginner.tx.committed)
}

func TestDoSerializable_NestedReusesTransaction(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	mgr := NewTransactionManager(beginner)

	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		return mgr.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, beginner.calls)
}
