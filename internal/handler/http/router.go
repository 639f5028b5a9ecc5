package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workpulse/ems-backend/internal/config"
	"github.com/workpulse/ems-backend/internal/handler/http/middleware"
	"github.com/workpulse/ems-backend/internal/pkg/jwt"
)

type Handlers struct {
	Auth      AuthHandler
	Dashboard DashboardHandler
	Timeclock TimeclockHandler
	Task      TaskHandler
	Leave     LeaveHandler
	Report    ReportHandler
	Employee  EmployeeHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Employee role: own ledger only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireEmployee)

				r.Get("/employee/dashboard", h.Dashboard.Get)
				r.Get("/employee/dashboard/stream", h.Dashboard.Stream)

				r.Route("/time", func(r chi.Router) {
					r.Post("/clockin", h.Timeclock.ClockIn)
					r.Post("/clockout", h.Timeclock.ClockOut)
					r.Post("/startbreak", h.Timeclock.StartBreak)
					r.Post("/endbreak", h.Timeclock.EndBreak)
				})

				r.Route("/tasks", func(r chi.Router) {
					r.Post("/", h.Task.Create)
					r.Post("/{id}/start", h.Task.Start)
					r.Post("/{id}/stop", h.Task.Stop)
					r.Post("/{id}/complete", h.Task.Complete)
				})

				r.Get("/leave", h.Leave.ListOwn)
				r.Post("/leave", h.Leave.Create)
			})

			// Manager or Admin role: reporting
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManagerOrAdmin)

				r.Get("/manager/employees", h.Employee.ListEmployees)
				r.Get("/manager/view-report", h.Report.ViewReport)
				r.Get("/manager/export-report", h.Report.ExportReport)
			})

			// Manager role: leave decisions
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Get("/leave/pending", h.Leave.ListPending)
				r.Put("/leave/{id}/{status}", h.Leave.Decide)
			})

			// Admin role: user management
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.UpdateAllowedIPs)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})
		})
	})

	return r
}
