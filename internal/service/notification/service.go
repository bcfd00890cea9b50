package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clockwise-hr/payroll-backend-go/internal/domain/employee"
	"github.com/clockwise-hr/payroll-backend-go/internal/domain/notification"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/email"
	"github.com/clockwise-hr/payroll-backend-go/internal/pkg/sse"
)

// NotificationService records in-app notifications, pushes them over SSE, and
// sends the matching email. Every delivery path is best-effort: failures are
// logged and swallowed so payroll outcomes never depend on delivery.
type NotificationService interface {
	PayslipApproved(ctx context.Context, emp employee.Employee, month string)
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]notification.Notification, error)
}

type notificationService struct {
	repo   notification.NotificationRepository
	hub    *sse.Hub
	mailer email.EmailService
	logger *slog.Logger
}

func NewNotificationService(
	repo notification.NotificationRepository,
	hub *sse.Hub,
	mailer email.EmailService,
	logger *slog.Logger,
) NotificationService {
	return &notificationService{
		repo:   repo,
		hub:    hub,
		mailer: mailer,
		logger: logger,
	}
}

func (s *notificationService) PayslipApproved(ctx context.Context, emp employee.Employee, month string) {
	n := notification.Notification{
		RecipientID: emp.ID,
		Type:        notification.TypePayslipApproved,
		Title:       "Payslip approved",
		Message:     fmt.Sprintf("Your payslip for %s has been approved and processed.", month),
		Data:        map[string]interface{}{"month": month},
	}
	s.record(ctx, n)

	if s.mailer != nil && emp.Email != "" {
		if err := s.mailer.SendPayslipApproved(emp.Email, emp.FullName, month); err != nil {
			s.logger.Error("failed to send payslip approved email",
				"employee_id", emp.ID, "month", month, "error", err)
		}
	}
}

func (s *notificationService) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]notification.Notification, error) {
	return s.repo.ListByRecipient(ctx, recipientID, limit)
}

// record persists the notification and publishes it to open streams.
func (s *notificationService) record(ctx context.Context, n notification.Notification) {
	created, err := s.repo.Create(ctx, n)
	if err != nil {
		s.logger.Error("failed to record notification",
			"recipient_id", n.RecipientID, "type", n.Type, "error", err)
		created = n
	}

	if s.hub != nil {
		s.hub.Publish(created.RecipientID, sse.Event{
			EmployeeID: created.RecipientID,
			Event:      string(created.Type),
			Data: map[string]interface{}{
				"id":      created.ID,
				"title":   created.Title,
				"message": created.Message,
				"data":    created.Data,
			},
		})
	}
}
