package performance

import (
	"context"
)

// PerformanceService records shift telemetry and reports scored daily stats
type PerformanceService interface {
	// RecordActivity adds call, talk-time and lead deltas onto the stat row
	// of the shift the activity happened in
	RecordActivity(ctx context.Context, req RecordActivityRequest) (DailyStatResponse, error)

	// GetDailyStat returns the scored stat for a given date, or for the
	// agent's current shift when no date is given
	GetDailyStat(ctx context.Context, filter DailyStatFilter) (DailyStatResponse, error)
}
