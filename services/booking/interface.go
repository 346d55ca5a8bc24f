package booking

import (
	"context"

	"beautymatch/models"
)

// Party identifies one side of a booking with its display snapshot.
type Party struct {
	ID    string
	Name  string
	Image string
}

// CreateRequest carries the inputs of a client booking action.
type CreateRequest struct {
	Client            Party
	ProfessionalID    string
	ServiceName       string
	Message           string
	RequestedDateTime string
}

// BookingService is the lifecycle manager: every status transition and
// message append goes through one of its methods, and each mutation
// emits exactly one notification to the non-acting party.
type BookingService interface {
	Create(ctx context.Context, req CreateRequest) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, actorID string, status models.BookingStatus) (*models.Booking, error)
	SendMessage(ctx context.Context, bookingID string, sender Party, text string) (*models.Booking, error)
	Get(ctx context.Context, bookingID, requesterID string) (*models.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)
}
