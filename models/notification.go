package models

import "time"

// NotificationType enumerates booking lifecycle events.
type NotificationType string

const (
	NotificationBookingRequest  NotificationType = "booking_request"
	NotificationBookingApproved NotificationType = "booking_approved"
	NotificationBookingDeclined NotificationType = "booking_declined"
	NotificationNewMessage      NotificationType = "new_message"
)

// Notification is a per-user side-effect record derived from a booking
// lifecycle event. It is addressed to exactly one recipient and only
// its read flag ever mutates.
type Notification struct {
	ID        string           `bson:"id" json:"id"`
	UserID    string           `bson:"userId" json:"userId"`
	Type      NotificationType `bson:"type" json:"type"`
	Message   string           `bson:"message" json:"message"`
	BookingID string           `bson:"bookingId" json:"bookingId"`
	Read      bool             `bson:"read" json:"read"`
	Timestamp time.Time        `bson:"timestamp" json:"timestamp"`
}

// BookingEvent is a lifecycle occurrence handed to the notification
// fan-out. ActorID identifies the party that triggered the event; the
// fan-out must never address the derived notification to the actor.
type BookingEvent struct {
	Type    NotificationType
	Booking *Booking
	ActorID string
}
