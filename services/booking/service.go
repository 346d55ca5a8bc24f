package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "beautymatch/database/repository/booking"
	profileRepo "beautymatch/database/repository/profile"
	"beautymatch/models"
	"beautymatch/services/notification"
	"beautymatch/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService over a keyed booking
// store. Notification emission is part of each mutation; a failed
// emission is logged but does not roll back the mutation (best-effort
// side effect, matching the delivery contract).
type DefaultBookingService struct {
	Repo            bookingRepo.BookingRepository
	ProfileRepo     profileRepo.ProfileRepository
	NotificationSvc notification.NotificationService
}

// Create allocates a new pending booking. The selected service must
// belong to the professional's service list and carry a positive
// price. Party display fields are snapshotted at creation; an empty
// initial message is omitted rather than stored.
func (s *DefaultBookingService) Create(ctx context.Context, req CreateRequest) (*models.Booking, error) {
	prof, err := s.ProfileRepo.GetByID(req.ProfessionalID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve professional %s: %w", req.ProfessionalID, err)
	}
	if prof == nil {
		return nil, ErrProfessionalNotFound
	}

	svc, ok := prof.ServiceByName(req.ServiceName)
	if !ok || svc.Price <= 0 {
		return nil, ErrServiceNotOffered
	}

	now := time.Now()
	b := &models.Booking{
		ID:                uuid.New().String(),
		ClientID:          req.Client.ID,
		ClientName:        req.Client.Name,
		ClientImage:       req.Client.Image,
		ProfessionalID:    prof.ID,
		ProfessionalName:  prof.Name,
		ProfessionalImage: prof.ProfileImage,
		Service:           svc,
		Status:            models.BookingPending,
		Messages:          []models.Message{},
		RequestedDateTime: req.RequestedDateTime,
		CreatedAt:         now,
	}

	if text := strings.TrimSpace(req.Message); text != "" {
		b.Messages = append(b.Messages, models.Message{
			ID:         uuid.New().String(),
			SenderID:   req.Client.ID,
			SenderName: req.Client.Name,
			Text:       text,
			Timestamp:  now,
		})
	}

	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	s.emit(ctx, models.BookingEvent{
		Type:    models.NotificationBookingRequest,
		Booking: b,
		ActorID: req.Client.ID,
	})
	return b, nil
}

// UpdateStatus transitions a pending booking to approved or declined.
// The actor must be the booked professional. A booking that already
// left pending is untouched and the call returns ErrBookingNotPending.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID, actorID string, status models.BookingStatus) (*models.Booking, error) {
	if status != models.BookingApproved && status != models.BookingDeclined {
		return nil, ErrInvalidStatus
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if actorID != b.ProfessionalID {
		return nil, ErrProfessionalOnly
	}

	applied, err := s.Repo.SetStatus(bookingID, status)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, ErrBookingNotPending
	}
	b.Status = status

	eventType := models.NotificationBookingApproved
	if status == models.BookingDeclined {
		eventType = models.NotificationBookingDeclined
	}
	s.emit(ctx, models.BookingEvent{
		Type:    eventType,
		Booking: b,
		ActorID: actorID,
	})
	return b, nil
}

// SendMessage appends an immutable message to the booking's chat. The
// sender must be one of the two parties; the booking status does not
// change.
func (s *DefaultBookingService) SendMessage(ctx context.Context, bookingID string, sender Party, text string) (*models.Booking, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if _, ok := b.OtherParty(sender.ID); !ok {
		return nil, ErrNotParticipant
	}

	msg := models.Message{
		ID:         uuid.New().String(),
		SenderID:   sender.ID,
		SenderName: sender.Name,
		Text:       text,
		Timestamp:  time.Now(),
	}
	if err := s.Repo.AppendMessage(bookingID, msg); err != nil {
		return nil, err
	}
	b.Messages = append(b.Messages, msg)

	s.emit(ctx, models.BookingEvent{
		Type:    models.NotificationNewMessage,
		Booking: b,
		ActorID: sender.ID,
	})
	return b, nil
}

// Get returns a booking, visible only to its two parties.
func (s *DefaultBookingService) Get(ctx context.Context, bookingID, requesterID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if requesterID != b.ClientID && requesterID != b.ProfessionalID {
		return nil, ErrNotParticipant
	}
	return b, nil
}

// ListForUser returns the user's bookings, newest first.
func (s *DefaultBookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListForUser(userID)
}

func (s *DefaultBookingService) emit(ctx context.Context, event models.BookingEvent) {
	if s.NotificationSvc == nil {
		return
	}
	if err := s.NotificationSvc.Publish(ctx, event); err != nil {
		utils.GetLogger().Warn("booking: failed to publish notification",
			zap.String("bookingId", event.Booking.ID),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}
