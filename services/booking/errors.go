package booking

import "errors"

// Typed lifecycle errors so callers can map each precondition failure
// to a distinct HTTP status.
var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrProfessionalNotFound = errors.New("professional profile not found")
	ErrBookingNotPending    = errors.New("booking is no longer pending")
	ErrServiceNotOffered    = errors.New("service is not offered by this professional")
	ErrNotParticipant       = errors.New("user is not a party of this booking")
	ErrEmptyMessage         = errors.New("message text must not be empty")
	ErrInvalidStatus        = errors.New("status must be approved or declined")
	ErrProfessionalOnly     = errors.New("only the booked professional can update the status")
)
