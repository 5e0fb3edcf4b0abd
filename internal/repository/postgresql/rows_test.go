package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/attendance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/sale"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingQuerier stands in for a transaction so repositories pick it up via
// TxContext. Every query yields rows whose iteration ends with rowsErr.
type failingQuerier struct {
	pgx.Tx
	rowsErr error
}

func (q failingQuerier) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return brokenRows{err: q.rowsErr}, nil
}

func (q failingQuerier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return totalRow{}
}

type brokenRows struct {
	pgx.Rows
	err error
}

func (r brokenRows) Close()     {}
func (r brokenRows) Next() bool { return false }
func (r brokenRows) Err() error { return r.err }

type totalRow struct{}

func (totalRow) Scan(dest ...interface{}) error {
	if total, ok := dest[0].(*int); ok {
		*total = 2
	}
	return nil
}

func failingCtx(rowsErr error) context.Context {
	return TxContext(context.Background(), failingQuerier{rowsErr: rowsErr})
}

func TestAttendanceListReturnsIterationError(t *testing.T) {
	t.Parallel()

	rowsErr := errors.New("connection reset")

	list, total, err := NewAttendanceRepository(nil).List(failingCtx(rowsErr), attendance.AttendanceFilter{Page: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, rowsErr)
	assert.Nil(t, list)
	assert.Zero(t, total)
}

func TestAttendanceListByRangeReturnsIterationError(t *testing.T) {
	t.Parallel()

	rowsErr := errors.New("connection reset")
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	list, err := NewAttendanceRepository(nil).ListByEmployeeAndRange(failingCtx(rowsErr), "emp-1", start, end)
	require.Error(t, err)
	assert.ErrorIs(t, err, rowsErr)
	assert.Nil(t, list)
}

func TestDailyStatListByRangeReturnsIterationError(t *testing.T) {
	t.Parallel()

	rowsErr := errors.New("connection reset")
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	stats, err := NewDailyStatRepository(nil).ListByEmployeeAndRange(failingCtx(rowsErr), "emp-1", start, end)
	require.Error(t, err)
	assert.ErrorIs(t, err, rowsErr)
	assert.Nil(t, stats)
}

func TestSaleListReturnsIterationError(t *testing.T) {
	t.Parallel()

	rowsErr := errors.New("connection reset")

	list, total, err := NewSaleRepository(nil).List(failingCtx(rowsErr), sale.SaleFilter{Page: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, rowsErr)
	assert.Nil(t, list)
	assert.Zero(t, total)
}
