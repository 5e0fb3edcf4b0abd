package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/config"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/employee"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/payroll"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/domain/performance"
	appHTTP "github.com/BytesPlatform-ops/sales-management-sub000/internal/handler/http"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/cron"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/pkg/database"
	"github.com/BytesPlatform-ops/sales-management-sub000/internal/repository/postgresql"
	attendanceService "github.com/BytesPlatform-ops/sales-management-sub000/internal/service/attendance"
	employeeService "github.com/BytesPlatform-ops/sales-management-sub000/internal/service/employee"
	payrollService "github.com/BytesPlatform-ops/sales-management-sub000/internal/service/payroll"
	performanceService "github.com/BytesPlatform-ops/sales-management-sub000/internal/service/performance"
	saleService "github.com/BytesPlatform-ops/sales-management-sub000/internal/service/sale"
	shiftService "github.com/BytesPlatform-ops/sales-management-sub000/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dailyStatRepo := postgresql.NewDailyStatRepository(db)
	saleRepo := postgresql.NewSaleRepository(db)

	resolver := shiftService.NewResolver()
	scorer := performanceService.NewScoreCalculator(performance.Weights{
		Calls:    cfg.Payroll.CallsWeight,
		TalkTime: cfg.Payroll.TalkTimeWeight,
		Leads:    cfg.Payroll.LeadsWeight,
	})
	calculator := payrollService.NewSalaryCalculator(payroll.Policy{
		FreeLates:          cfg.Payroll.FreeLates,
		ClampNegativeTotal: cfg.Payroll.ClampNegativeTotal,
	}, scorer)
	targets := performance.TargetsByType{
		string(employee.EmploymentTypeFullTime): performance.Targets{
			Calls:           cfg.Targets.FullTime.Calls,
			TalkTimeSeconds: cfg.Targets.FullTime.TalkTimeSeconds,
			Leads:           cfg.Targets.FullTime.Leads,
		},
		string(employee.EmploymentTypePartTime): performance.Targets{
			Calls:           cfg.Targets.PartTime.Calls,
			TalkTimeSeconds: cfg.Targets.PartTime.TalkTimeSeconds,
			Leads:           cfg.Targets.PartTime.Leads,
		},
	}

	employeeService := employeeService.NewEmployeeService(employeeRepo)
	shiftService := shiftService.NewShiftService(employeeRepo, resolver, cfg.Business.Location)
	attendanceService := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		resolver,
		cfg.Payroll.LateGraceMinutes,
		cfg.Business.Location,
	)
	performanceSvc := performanceService.NewPerformanceService(
		employeeRepo,
		dailyStatRepo,
		resolver,
		scorer,
		targets,
		cfg.Business.Location,
	)
	payrollSvc := payrollService.NewPayrollService(
		employeeRepo,
		dailyStatRepo,
		attendanceRepo,
		resolver,
		calculator,
		targets,
		cfg.Business.LaunchDate,
		cfg.Business.Location,
	)
	saleSvc := saleService.NewSaleService(
		db,
		saleRepo,
		employeeRepo,
		dailyStatRepo,
		resolver,
		cfg.Payroll.CommissionRate,
		cfg.Business.Location,
	)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeService)
	shiftHandler := appHTTP.NewShiftHandler(shiftService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceService)
	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	saleHandler := appHTTP.NewSaleHandler(saleSvc)

	scheduler := cron.NewScheduler(cfg.Business.Location)
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, employeeRepo, cfg.Business.LaunchDate, cfg.Business.Location)
	if err := attendanceJobs.RegisterJobs(scheduler, cfg.Business.AutoAbsenceCron); err != nil {
		log.Fatal("Failed to register cron jobs:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		employeeHandler,
		shiftHandler,
		attendanceHandler,
		performanceHandler,
		payrollHandler,
		saleHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
