package bookingRepo

import "beautymatch/models"

// BookingRepository is the keyed booking store (id to record) behind
// the lifecycle manager.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID. Returns (nil, nil)
	// when no booking matches.
	GetByID(id string) (*models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// SetStatus updates a booking's status only while its current
	// status is pending. Returns true when the transition applied.
	SetStatus(id string, status models.BookingStatus) (bool, error)
	// AppendMessage appends a message to a booking's message list.
	AppendMessage(id string, msg models.Message) error
	// ListForUser returns every booking in which the user is a party,
	// newest first.
	ListForUser(userID string) ([]models.Booking, error)
}
