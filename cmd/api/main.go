package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/clockwise-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/clockwise-hr/payroll-backend-go/internal/handler/http"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/database"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/email"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/sse"
	"github.com/clockwise-hr/payroll-backend-go/internal/repository/postgresql"
	leaveService "github.com/clockwise-hr/payroll-backend-go/internal/service/leave"
	notificationService "github.com/clockwise-hr/payroll-backend-go/internal/service/notification"
	payrollService "github.com/clockwise-hr/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	aggregateRepo := postgresql.NewAggregateRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	bankRepo := postgresql.NewBankDetailRepository(db)
	balanceRepo := postgresql.NewLeaveBalanceRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	hub := sse.NewHub()

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	notifier := notificationService.NewNotificationService(
		notificationRepo,
		hub,
		emailService,
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)

	inTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}
	payrollSvc := payrollService.NewPayrollService(
		aggregateRepo,
		salaryRepo,
		payslipRepo,
		summaryRepo,
		employeeRepo,
		holidayRepo,
		bankRepo,
		inTx,
		notifier,
		cfg.Payroll,
	)
	leaveSvc := leaveService.NewLeaveService(balanceRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notifier, hub, jwtService)

	router := appHTTP.NewRouter(
		cfg.App,
		jwtService,
		payrollHandler,
		leaveHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
