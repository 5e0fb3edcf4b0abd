package http

import (
	"log/slog"
	"os"

	"github.com/BytesPlatform-ops/sales-management-sub000/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	shiftHandler ShiftHandler,
	attendanceHandler AttendanceHandler,
	performanceHandler PerformanceHandler,
	payrollHandler PayrollHandler,
	saleHandler SaleHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/", employeeHandler.ListEmployees)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)
				r.Put("/", employeeHandler.UpdateEmployee)
				r.Delete("/", employeeHandler.DeactivateEmployee)

				r.Get("/shift", shiftHandler.GetCurrentWindow)
				r.Get("/salary", payrollHandler.GetSalaryBreakdown)
				r.Get("/performance", performanceHandler.GetDailyStat)
				r.Get("/sales/target", saleHandler.GetTargetStatus)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/check-in", attendanceHandler.CheckIn)
			r.Get("/", attendanceHandler.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", attendanceHandler.Get)
				r.Put("/", attendanceHandler.Update)
				r.Post("/approve", attendanceHandler.Approve)
			})
		})

		r.Post("/performance/activity", performanceHandler.RecordActivity)

		r.Route("/sales", func(r chi.Router) {
			r.Post("/", saleHandler.CreateSale)
			r.Get("/", saleHandler.ListSales)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", saleHandler.GetSale)
				r.Post("/payments", saleHandler.AddPayment)
			})
		})
	})
	return r
}
