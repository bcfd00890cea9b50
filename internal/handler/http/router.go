package http

import (
	"log/slog"
	"os"

	"github.com/clockwise-hr/payroll-backend-go/internal/config"
	"github.com/clockwise-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg config.AppConfig,
	jwtService jwt.Service,
	payrollHandler PayrollHandler,
	leaveHandler LeaveHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "clockwise-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

		// SSE stream authenticates with its own short-lived token.
		r.Get("/events", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/events/token", notificationHandler.GetSSEToken)
			r.Get("/notifications", notificationHandler.List)

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/state", payrollHandler.GetState)

				r.Route("/payslips", func(r chi.Router) {
					r.Get("/", payrollHandler.ListPayslips)
					r.Get("/details", payrollHandler.PayslipDetails)
					r.Get("/pending", payrollHandler.ListPendingPayslips)
					r.Get("/{employeeId}/{month}", payrollHandler.GetPayslip)

					// HR only
					r.Group(func(r chi.Router) {
						r.Use(middleware.HROnly)
						r.Post("/approve", payrollHandler.ApprovePayslip)
					})
				})

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Post("/aggregates", payrollHandler.GenerateAggregate)
				})
			})

			r.Route("/leave-balances", func(r chi.Router) {
				r.Get("/{employeeId}", leaveHandler.GetBalance)
			})
		})
	})

	return r
}
