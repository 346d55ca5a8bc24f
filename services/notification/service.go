package notification

import (
	"context"
	"fmt"
	"time"

	accountRepo "beautymatch/database/repository/account"
	notificationRepo "beautymatch/database/repository/notification"
	"beautymatch/models"
	"beautymatch/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation. The
// persisted record is the source of truth; the FCM push is best-effort
// and never fails the triggering operation.
type DefaultNotificationService struct {
	Repo     notificationRepo.NotificationRepository
	Accounts accountRepo.AccountRepository
	FCM      *messaging.Client
}

// Publish derives one notification from the event and stores it. The
// target is always the booking party that did not act.
func (s *DefaultNotificationService) Publish(ctx context.Context, event models.BookingEvent) error {
	b := event.Booking
	if b == nil {
		return fmt.Errorf("notification: event carries no booking")
	}

	target, ok := b.OtherParty(event.ActorID)
	if !ok {
		return fmt.Errorf("notification: actor %s is not a party of booking %s", event.ActorID, b.ID)
	}

	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    target,
		Type:      event.Type,
		Message:   renderMessage(event),
		BookingID: b.ID,
		Read:      false,
		Timestamp: time.Now(),
	}
	if err := s.Repo.Create(n); err != nil {
		return fmt.Errorf("notification: failed to store record: %w", err)
	}

	s.push(ctx, n)
	return nil
}

// ListForUser returns the user's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.ListForUser(userID)
}

// MarkRead sets the read flag on the given ids. Unknown ids are
// ignored and re-marking is a no-op.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, ids []string) error {
	return s.Repo.MarkRead(ids)
}

// renderMessage builds the human-readable line shown in the panel.
func renderMessage(event models.BookingEvent) string {
	b := event.Booking
	switch event.Type {
	case models.NotificationBookingRequest:
		return fmt.Sprintf("%s requested \"%s\"", b.ClientName, b.Service.Name)
	case models.NotificationBookingApproved:
		return fmt.Sprintf("%s approved your booking for \"%s\"", b.ProfessionalName, b.Service.Name)
	case models.NotificationBookingDeclined:
		return fmt.Sprintf("%s declined your booking for \"%s\"", b.ProfessionalName, b.Service.Name)
	case models.NotificationNewMessage:
		if event.ActorID == b.ClientID {
			return fmt.Sprintf("New message from %s", b.ClientName)
		}
		return fmt.Sprintf("New message from %s", b.ProfessionalName)
	}
	return fmt.Sprintf("Update on your booking for \"%s\"", b.Service.Name)
}

// push sends an FCM message to the recipient's device when possible.
func (s *DefaultNotificationService) push(ctx context.Context, n *models.Notification) {
	if s.FCM == nil || s.Accounts == nil {
		return
	}
	logger := utils.GetLogger()

	acc, err := s.Accounts.GetByID(n.UserID)
	if err != nil || acc == nil || acc.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: acc.FCMToken,
		Notification: &messaging.Notification{
			Title: "BeautyMatch",
			Body:  n.Message,
		},
		Data: map[string]string{
			"type":      string(n.Type),
			"bookingId": n.BookingID,
		},
	}
	if _, err := s.FCM.Send(ctx, msg); err != nil {
		logger.Warn("notification: FCM push failed", zap.String("userId", n.UserID), zap.Error(err))
	}
}
