package performance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyStat accumulates one agent's telemetry for one attributed shift date.
// Counters are cumulative for the shift; writes add deltas on top.
type DailyStat struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	Calls           int
	TalkTimeSeconds int
	LeadsApproved   int
	SalesAmount     decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Targets are the per-shift quotas an agent is scored against.
type Targets struct {
	Calls           int
	TalkTimeSeconds int
	Leads           int
}

// Weights distribute the composite score across the three telemetry
// channels. They must sum to 1.
type Weights struct {
	Calls    float64
	TalkTime float64
	Leads    float64
}

// TargetsByType maps an employment type to the targets its agents are
// scored against.
type TargetsByType map[string]Targets
