package shift

import (
	"context"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/employee"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/shift"
)

type ShiftServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	resolver     *Resolver
	loc          *time.Location
}

func NewShiftService(employeeRepo employee.EmployeeRepository, resolver *Resolver, loc *time.Location) shift.ShiftService {
	return &ShiftServiceImpl{
		employeeRepo: employeeRepo,
		resolver:     resolver,
		loc:          loc,
	}
}

func (s *ShiftServiceImpl) CurrentWindow(ctx context.Context, employeeID string) (shift.WindowResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return shift.WindowResponse{}, err
	}

	now := time.Now().In(s.loc)
	instance, err := s.resolver.Resolve(shift.Spec{Start: emp.ShiftStart, End: emp.ShiftEnd}, now)
	if err != nil {
		return shift.WindowResponse{}, err
	}

	return shift.WindowResponse{
		EmployeeID:     emp.ID,
		ShiftStart:     emp.ShiftStart,
		ShiftEnd:       emp.ShiftEnd,
		StartsAt:       instance.StartsAt.Format(time.RFC3339),
		EndsAt:         instance.EndsAt.Format(time.RFC3339),
		AttributedDate: instance.AttributedDate.Format("2006-01-02"),
		Overnight:      instance.Overnight,
		Paused:         instance.Paused(),
	}, nil
}
