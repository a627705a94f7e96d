package txmanager

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

	"github.com/petmais/PetMais-Backend/pkg/dbmetrics"
	"github.com/petmais/PetMais-Backend/pkg/metrics"
	"github.com/petmais/PetMais-Backend/pkg/pgerr"
)

// Минимальный драйвер: транзакции без реального соединения
type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) { return &fakeConn{}, nil }

type fakeConn struct{}

func (*fakeConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (*fakeConn) Close() error                        { return nil }
func (*fakeConn) Begin() (driver.Tx, error)           { return fakeTx{}, nil }

func (*fakeConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return fakeTx{}, nil
}

type fakeTx struct{}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func init() {
	sql.Register("txmanager-fake", fakeDriver{})
}

// Один набор коллекторов на тестовый процесс: повторная регистрация
// в реестре prometheus паникует
var testMetrics = metrics.New("txmanager-test")

func newManager(t *testing.T) *TransactionManager {
	t.Helper()
	db, err := sql.Open("txmanager-fake", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewTransactionManager(dbmetrics.Wrap(db, testMetrics))
}

func statementConflict() error {
	return fmt.Errorf("%w: Create: %v", pgerr.ErrSerialization, &pq.Error{Code: "40001"})
}

func TestDoSerializable_RetriesStatementConflict(t *testing.T) {
	m := newManager(t)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		// fn исполняется внутри транзакции
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		if attempts < 2 {
			return statementConflict()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestDoSerializable_RetriesExhausted(t *testing.T) {
	m := newManager(t)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		attempts++
		return statementConflict()
	})

	require.Error(t, err)
	assert.Equal(t, maxRetries, attempts)
	assert.True(t, pgerr.IsSerializationFailure(err))
}

func TestDoSerializable_NonRetryableErrorReturnedAsIs(t *testing.T) {
	m := newManager(t)

	boom := errors.New("boom")
	attempts := 0
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		attempts++
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
}
