package performance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type DailyStatRepository interface {
	// UpsertDeltas adds activity counters onto the stat row for the given
	// attributed date, creating the row when it does not exist yet.
	UpsertDeltas(ctx context.Context, employeeID string, date time.Time, calls, talkTimeSeconds, leadsApproved int) (DailyStat, error)
	// GetByEmployeeAndDate returns nil when no stat row exists for the date.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DailyStat, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]DailyStat, error)
	// AddSalesAmount credits deal value or commission onto the stat row for
	// the given attributed date, creating the row when it does not exist yet.
	AddSalesAmount(ctx context.Context, employeeID string, date time.Time, amount decimal.Decimal) error
}
