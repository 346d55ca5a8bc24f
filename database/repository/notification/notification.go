package notificationRepo

import "beautymatch/models"

// NotificationRepository stores per-user notification records.
type NotificationRepository interface {
	// Create inserts a new notification record.
	Create(n *models.Notification) error
	// ListForUser returns the user's notifications, newest first.
	ListForUser(userID string) ([]models.Notification, error)
	// MarkRead sets the read flag on every matching id. Unknown ids are
	// ignored; re-marking a read notification is a no-op.
	MarkRead(ids []string) error
}
