package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const TypePayslipApproved NotificationType = "payslip_approved"

// Notification is one in-app notification row. Append-only.
type Notification struct {
	ID          string
	RecipientID string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
