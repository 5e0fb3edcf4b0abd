package performance

import (
	"context"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/employee"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/performance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/shift"
	shiftsvc "github.com/BytesPlatform-ops/sales-management-sub000/internal/service/shift"
)

type PerformanceServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	statRepo     performance.DailyStatRepository
	resolver     *shiftsvc.Resolver
	scorer       *ScoreCalculator
	targets      performance.TargetsByType
	loc          *time.Location
}

func NewPerformanceService(
	employeeRepo employee.EmployeeRepository,
	statRepo performance.DailyStatRepository,
	resolver *shiftsvc.Resolver,
	scorer *ScoreCalculator,
	targets performance.TargetsByType,
	loc *time.Location,
) performance.PerformanceService {
	return &PerformanceServiceImpl{
		employeeRepo: employeeRepo,
		statRepo:     statRepo,
		resolver:     resolver,
		scorer:       scorer,
		targets:      targets,
		loc:          loc,
	}
}

func (s *PerformanceServiceImpl) RecordActivity(ctx context.Context, req performance.RecordActivityRequest) (performance.DailyStatResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.DailyStatResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return performance.DailyStatResponse{}, err
	}
	if !emp.IsActive {
		return performance.DailyStatResponse{}, employee.ErrEmployeeInactive
	}

	now := time.Now().In(s.loc)
	instance, err := s.resolver.Resolve(shift.Spec{Start: emp.ShiftStart, End: emp.ShiftEnd}, now)
	if err != nil {
		return performance.DailyStatResponse{}, err
	}

	// Weekend shifts are paused for pay but the dialer keeps running, so
	// telemetry is recorded either way.
	stat, err := s.statRepo.UpsertDeltas(ctx, emp.ID, instance.AttributedDate, req.Calls, req.TalkTimeSeconds, req.LeadsApproved)
	if err != nil {
		return performance.DailyStatResponse{}, err
	}

	return s.toResponse(emp, stat)
}

func (s *PerformanceServiceImpl) GetDailyStat(ctx context.Context, filter performance.DailyStatFilter) (performance.DailyStatResponse, error) {
	if err := filter.Validate(); err != nil {
		return performance.DailyStatResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, filter.EmployeeID)
	if err != nil {
		return performance.DailyStatResponse{}, err
	}

	var date time.Time
	if filter.Date != nil && *filter.Date != "" {
		date, err = time.ParseInLocation("2006-01-02", *filter.Date, s.loc)
		if err != nil {
			return performance.DailyStatResponse{}, err
		}
	} else {
		now := time.Now().In(s.loc)
		instance, err := s.resolver.Resolve(shift.Spec{Start: emp.ShiftStart, End: emp.ShiftEnd}, now)
		if err != nil {
			return performance.DailyStatResponse{}, err
		}
		date = instance.AttributedDate
	}

	stat, err := s.statRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return performance.DailyStatResponse{}, err
	}
	if stat == nil {
		// No activity yet on that date reads as an all-zero stat.
		stat = &performance.DailyStat{EmployeeID: emp.ID, Date: date}
	}

	return s.toResponse(emp, *stat)
}

func (s *PerformanceServiceImpl) toResponse(emp employee.Employee, stat performance.DailyStat) (performance.DailyStatResponse, error) {
	targets, ok := s.targets[string(emp.EmploymentType)]
	if !ok {
		return performance.DailyStatResponse{}, performance.ErrTargetsNotConfigured
	}

	score, err := s.scorer.Score(stat, targets)
	if err != nil {
		return performance.DailyStatResponse{}, err
	}

	return performance.DailyStatResponse{
		EmployeeID:      stat.EmployeeID,
		Date:            stat.Date.Format("2006-01-02"),
		Calls:           stat.Calls,
		TalkTimeSeconds: stat.TalkTimeSeconds,
		LeadsApproved:   stat.LeadsApproved,
		SalesAmount:     stat.SalesAmount.StringFixed(2),
		Score:           score,
	}, nil
}
