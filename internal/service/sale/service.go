package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/employee"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/performance"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/sale"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/shift"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/database"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/repository/postgresql"
	shiftsvc "github.com/BytesPlatform-ops/sales-management-sub000/internal/service/shift"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type SaleServiceImpl struct {
	db             *database.DB
	saleRepo       sale.SaleRepository
	employeeRepo   employee.EmployeeRepository
	statRepo       performance.DailyStatRepository
	resolver       *shiftsvc.Resolver
	commissionRate decimal.Decimal
	loc            *time.Location
}

func NewSaleService(
	db *database.DB,
	saleRepo sale.SaleRepository,
	employeeRepo employee.EmployeeRepository,
	statRepo performance.DailyStatRepository,
	resolver *shiftsvc.Resolver,
	commissionRate decimal.Decimal,
	loc *time.Location,
) sale.SaleService {
	return &SaleServiceImpl{
		db:             db,
		saleRepo:       saleRepo,
		employeeRepo:   employeeRepo,
		statRepo:       statRepo,
		resolver:       resolver,
		commissionRate: commissionRate,
		loc:            loc,
	}
}

// CreateSale implements sale.SaleService.
func (s *SaleServiceImpl) CreateSale(ctx context.Context, req sale.CreateSaleRequest) (sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return sale.SaleResponse{}, err
	}
	if !emp.IsActive {
		return sale.SaleResponse{}, employee.ErrEmployeeInactive
	}

	now := time.Now().In(s.loc)
	instance, err := s.resolver.Resolve(shift.Spec{Start: emp.ShiftStart, End: emp.ShiftEnd}, now)
	if err != nil {
		return sale.SaleResponse{}, err
	}

	totalDealValue, _ := decimal.NewFromString(req.TotalDealValue)
	initialPayment := decimal.Zero
	if req.InitialPayment != "" {
		initialPayment, _ = decimal.NewFromString(req.InitialPayment)
	}

	newSale := sale.Sale{
		EmployeeID:       emp.ID,
		CustomerName:     req.CustomerName,
		TotalDealValue:   totalDealValue,
		AmountCollected:  decimal.Zero,
		Status:           sale.StatusPartial,
		CommissionAmount: decimal.Zero,
		AttributedDate:   instance.AttributedDate,
	}
	if initialPayment.IsPositive() {
		if _, _, err := newSale.ApplyPayment(initialPayment, s.commissionRate); err != nil {
			return sale.SaleResponse{}, err
		}
	}

	// The full deal value counts toward the shift's sales total right away;
	// collection is a separate, slower-moving ledger. A deal completed at
	// creation also credits its commission on top.
	credit := totalDealValue
	if newSale.Status == sale.StatusCompleted {
		credit = credit.Add(newSale.CommissionAmount)
	}

	var created sale.Sale
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		created, err = s.saleRepo.Create(txCtx, newSale)
		if err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}

		if err := s.statRepo.AddSalesAmount(txCtx, emp.ID, instance.AttributedDate, credit); err != nil {
			return fmt.Errorf("failed to credit sales amount: %w", err)
		}
		return nil
	})
	if err != nil {
		return sale.SaleResponse{}, err
	}

	return mapSaleToResponse(created), nil
}

// AddPayment implements sale.SaleService. The sale row is locked for the
// duration of the transaction so the completed transition, and with it the
// commission, happens at most once under concurrent payments.
func (s *SaleServiceImpl) AddPayment(ctx context.Context, req sale.AddPaymentRequest) (sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}
	amount, _ := decimal.NewFromString(req.Amount)

	var updated sale.Sale
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		current, err := s.saleRepo.GetByIDForUpdate(txCtx, req.SaleID)
		if err != nil {
			return err
		}

		_, completed, err := current.ApplyPayment(amount, s.commissionRate)
		if err != nil {
			return err
		}

		if err := s.saleRepo.Update(txCtx, current); err != nil {
			return fmt.Errorf("failed to update sale: %w", err)
		}

		if completed {
			// The commission bonus lands on the shift that is live when
			// the deal completes, not back on the creation date.
			emp, err := s.employeeRepo.GetByID(txCtx, current.EmployeeID)
			if err != nil {
				return err
			}
			now := time.Now().In(s.loc)
			instance, err := s.resolver.Resolve(shift.Spec{Start: emp.ShiftStart, End: emp.ShiftEnd}, now)
			if err != nil {
				return err
			}
			if err := s.statRepo.AddSalesAmount(txCtx, emp.ID, instance.AttributedDate, current.CommissionAmount); err != nil {
				return fmt.Errorf("failed to credit commission: %w", err)
			}
		}

		updated = current
		return nil
	})
	if err != nil {
		return sale.SaleResponse{}, err
	}

	return mapSaleToResponse(updated), nil
}

// GetSale implements sale.SaleService.
func (s *SaleServiceImpl) GetSale(ctx context.Context, id string) (sale.SaleResponse, error) {
	found, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return sale.SaleResponse{}, err
	}

	return mapSaleToResponse(found), nil
}

// ListSales implements sale.SaleService.
func (s *SaleServiceImpl) ListSales(ctx context.Context, filter sale.SaleFilter) (sale.ListSaleResponse, error) {
	if err := filter.Validate(); err != nil {
		return sale.ListSaleResponse{}, err
	}

	sales, totalCount, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return sale.ListSaleResponse{}, fmt.Errorf("failed to list sales: %w", err)
	}

	responses := make([]sale.SaleResponse, 0, len(sales))
	for _, found := range sales {
		responses = append(responses, mapSaleToResponse(found))
	}

	return sale.ListSaleResponse{
		Sales:      responses,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalCount: totalCount,
	}, nil
}

// GetTargetStatus implements sale.SaleService.
func (s *SaleServiceImpl) GetTargetStatus(ctx context.Context, req sale.TargetStatusRequest) (sale.TargetStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.TargetStatusResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return sale.TargetStatusResponse{}, err
	}

	var date time.Time
	if req.Date != nil && *req.Date != "" {
		date, err = time.ParseInLocation("2006-01-02", *req.Date, s.loc)
		if err != nil {
			return sale.TargetStatusResponse{}, err
		}
	} else {
		now := time.Now().In(s.loc)
		instance, err := s.resolver.Resolve(shift.Spec{Start: emp.ShiftStart, End: emp.ShiftEnd}, now)
		if err != nil {
			return sale.TargetStatusResponse{}, err
		}
		date = instance.AttributedDate
	}

	cumulative := decimal.Zero
	stat, err := s.statRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return sale.TargetStatusResponse{}, err
	}
	if stat != nil {
		cumulative = stat.SalesAmount
	}

	return sale.TargetStatusResponse{
		EmployeeID:      emp.ID,
		Date:            date.Format("2006-01-02"),
		SalesTarget:     emp.SalesTarget.StringFixed(2),
		CumulativeSales: cumulative.StringFixed(2),
		TargetHit:       emp.SalesTarget.IsPositive() && cumulative.GreaterThanOrEqual(emp.SalesTarget),
	}, nil
}

func mapSaleToResponse(found sale.Sale) sale.SaleResponse {
	return sale.SaleResponse{
		ID:               found.ID,
		EmployeeID:       found.EmployeeID,
		CustomerName:     found.CustomerName,
		TotalDealValue:   found.TotalDealValue.StringFixed(2),
		AmountCollected:  found.AmountCollected.StringFixed(2),
		Status:           string(found.Status),
		CommissionPaid:   found.CommissionPaid,
		CommissionAmount: found.CommissionAmount.StringFixed(2),
		AttributedDate:   found.AttributedDate.Format("2006-01-02"),
		CreatedAt:        found.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        found.UpdatedAt.Format(time.RFC3339),
	}
}
