package notification

import (
	"context"

	"beautymatch/models"
)

// NotificationService derives exactly one notification record per
// booking lifecycle event, addressed to the party that did not act,
// and exposes the recipient-side read operations.
type NotificationService interface {
	Publish(ctx context.Context, event models.BookingEvent) error
	ListForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, ids []string) error
}
