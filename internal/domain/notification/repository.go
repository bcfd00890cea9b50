package notification

import "context"

// NotificationRepository stores in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]Notification, error)
}
