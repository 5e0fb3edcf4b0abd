package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/performance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type dailyStatRepository struct {
	db *database.DB
}

// UpsertDeltas implements performance.DailyStatRepository. Counters arrive as
// deltas from the dialer, so concurrent batches must add up rather than
// overwrite each other.
func (r *dailyStatRepository) UpsertDeltas(ctx context.Context, employeeID string, date time.Time, calls, talkTimeSeconds, leadsApproved int) (performance.DailyStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_stats (id, employee_id, date, calls, talk_time_seconds, leads_approved, sales_amount)
		VALUES ($1, $2, $3, $4, $5, $6, 0)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET
			calls = daily_stats.calls + EXCLUDED.calls,
			talk_time_seconds = daily_stats.talk_time_seconds + EXCLUDED.talk_time_seconds,
			leads_approved = daily_stats.leads_approved + EXCLUDED.leads_approved,
			updated_at = NOW()
		RETURNING id, employee_id, date, calls, talk_time_seconds, leads_approved, sales_amount, created_at, updated_at
	`

	var stat performance.DailyStat
	err := q.QueryRow(ctx, query,
		uuid.New().String(), employeeID, date, calls, talkTimeSeconds, leadsApproved,
	).Scan(
		&stat.ID, &stat.EmployeeID, &stat.Date, &stat.Calls, &stat.TalkTimeSeconds,
		&stat.LeadsApproved, &stat.SalesAmount, &stat.CreatedAt, &stat.UpdatedAt,
	)

	if err != nil {
		return performance.DailyStat{}, fmt.Errorf("failed to upsert daily stat: %w", err)
	}

	return stat, nil
}

// GetByEmployeeAndDate implements performance.DailyStatRepository.
func (r *dailyStatRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*performance.DailyStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, calls, talk_time_seconds, leads_approved, sales_amount,
			   created_at, updated_at
		FROM daily_stats
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var stat performance.DailyStat
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&stat.ID, &stat.EmployeeID, &stat.Date, &stat.Calls, &stat.TalkTimeSeconds,
		&stat.LeadsApproved, &stat.SalesAmount, &stat.CreatedAt, &stat.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No stat recorded for that date
		}
		return nil, fmt.Errorf("failed to get daily stat: %w", err)
	}

	return &stat, nil
}

// ListByEmployeeAndRange implements performance.DailyStatRepository.
func (r *dailyStatRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]performance.DailyStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, calls, talk_time_seconds, leads_approved, sales_amount,
			   created_at, updated_at
		FROM daily_stats
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats by range: %w", err)
	}
	defer rows.Close()

	var stats []performance.DailyStat
	for rows.Next() {
		var stat performance.DailyStat
		err := rows.Scan(
			&stat.ID, &stat.EmployeeID, &stat.Date, &stat.Calls, &stat.TalkTimeSeconds,
			&stat.LeadsApproved, &stat.SalesAmount, &stat.CreatedAt, &stat.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily stat: %w", err)
		}
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// AddSalesAmount implements performance.DailyStatRepository.
func (r *dailyStatRepository) AddSalesAmount(ctx context.Context, employeeID string, date time.Time, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_stats (id, employee_id, date, calls, talk_time_seconds, leads_approved, sales_amount)
		VALUES ($1, $2, $3, 0, 0, 0, $4)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET
			sales_amount = daily_stats.sales_amount + EXCLUDED.sales_amount,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, uuid.New().String(), employeeID, date, amount)
	if err != nil {
		return fmt.Errorf("failed to add sales amount: %w", err)
	}

	return nil
}

func NewDailyStatRepository(db *database.DB) performance.DailyStatRepository {
	return &dailyStatRepository{db: db}
}
