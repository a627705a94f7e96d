package simpletxmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmais/PetMais-Backend/pkg/pgerr"
)

// Минимальный драйвер: транзакции без реального соединения,
// запоминает последний запрошенный уровень изоляции
type fakeDriver struct {
	lastIsolation driver.IsolationLevel
}

func (d *fakeDriver) Open(string) (driver.Conn, error) { return &fakeConn{driver: d}, nil }

type fakeConn struct {
	driver *fakeDriver
}

func (c *fakeConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (c *fakeConn) Close() error                        { return nil }
func (c *fakeConn) Begin() (driver.Tx, error)           { return fakeTx{}, nil }

func (c *fakeConn) BeginTx(_ context.Context, opts driver.TxOptions) (driver.Tx, error) {
	c.driver.lastIsolation = opts.Isolation
	return fakeTx{}, nil
}

type fakeTx struct{}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

var testDriver = &fakeDriver{}

func init() {
	sql.Register("simpletxmanager-fake", testDriver)
}

func openFakeDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("simpletxmanager-fake", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// Ошибка statement в том виде, в каком её отдаёт репозиторий
func statementConflict() error {
	return fmt.Errorf("%w: CountOverlapping: %v", pgerr.ErrSerialization, &pq.Error{Code: "40001"})
}

func TestDoSerializable_UsesSerializableIsolation(t *testing.T) {
	m := NewTransactionManager(openFakeDB(t))

	err := m.DoSerializable(context.Background(), func(context.Context) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, driver.IsolationLevel(sql.LevelSerializable), testDriver.lastIsolation)
}

func TestDoSerializable_RetriesStatementConflict(t *testing.T) {
	m := NewTransactionManager(openFakeDB(t))

	attempts := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		attempts++
		if attempts < 3 {
			return statementConflict()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDoSerializable_RetriesExhausted(t *testing.T) {
	m := NewTransactionManager(openFakeDB(t))

	attempts := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		attempts++
		return statementConflict()
	})

	require.Error(t, err)
	assert.Equal(t, maxRetries, attempts)
	assert.Contains(t, err.Error(), "serialization retries exhausted")
	// Признак повторяемости сохраняется и после финальной обёртки
	assert.True(t, pgerr.IsSerializationFailure(err))
}

func TestDoSerializable_NonRetryableErrorReturnedAsIs(t *testing.T) {
	m := NewTransactionManager(openFakeDB(t))

	boom := errors.New("boom")
	attempts := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		attempts++
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
}
