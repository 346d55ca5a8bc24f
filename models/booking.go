package models

import "time"

// BookingStatus enumerates the booking state machine. A booking starts
// pending; approve and decline are the only defined transitions.
// Completed and cancelled are reserved states no operation produces.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingDeclined  BookingStatus = "declined"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Terminal reports whether no further status transition is defined.
func (s BookingStatus) Terminal() bool {
	return s != BookingPending
}

// Message is a single chat entry owned by exactly one booking.
// Messages are immutable; list order is insertion order.
type Message struct {
	ID         string    `bson:"id" json:"id"`
	SenderID   string    `bson:"senderId" json:"senderId"`
	SenderName string    `bson:"senderName" json:"senderName"`
	Text       string    `bson:"text" json:"text"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// Booking is a client's request for a professional's service. Party
// display fields are a snapshot taken at creation time; later profile
// edits do not flow back into the booking.
type Booking struct {
	ID                string        `bson:"id" json:"id"`
	ClientID          string        `bson:"clientId" json:"clientId"`
	ClientName        string        `bson:"clientName" json:"clientName"`
	ClientImage       string        `bson:"clientImage,omitempty" json:"clientImage,omitempty"`
	ProfessionalID    string        `bson:"professionalId" json:"professionalId"`
	ProfessionalName  string        `bson:"professionalName" json:"professionalName"`
	ProfessionalImage string        `bson:"professionalImage,omitempty" json:"professionalImage,omitempty"`
	Service           Service       `bson:"service" json:"service"`
	Status            BookingStatus `bson:"status" json:"status"`
	Messages          []Message     `bson:"messages" json:"messages"`
	RequestedDateTime string        `bson:"requestedDateTime,omitempty" json:"requestedDateTime,omitempty"`
	CreatedAt         time.Time     `bson:"createdAt" json:"createdAt"`
}

// OtherParty returns the booking party that is not the given user.
// The second return is false when userID is neither party.
func (b *Booking) OtherParty(userID string) (string, bool) {
	switch userID {
	case b.ClientID:
		return b.ProfessionalID, true
	case b.ProfessionalID:
		return b.ClientID, true
	}
	return "", false
}
