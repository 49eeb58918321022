package models

// Booking event types published to the booking topic.
const (
	BookingCreated = "booking_created"
	BookingDeleted = "booking_deleted"
)

// BookingEvent is the message published whenever a booking changes.
type BookingEvent struct {
	EventID   string `json:"event_id"`   // Unique event identifier
	Type      string `json:"type"`       // booking_created or booking_deleted
	Timestamp int64  `json:"timestamp"`  // Unix seconds
	BookingID int64  `json:"booking_id"` // Affected booking
	HotelID   int64  `json:"hotel_id"`   // Hotel of the booking
	UserID    int64  `json:"user_id"`    // Owner of the booking
	ActorID   int64  `json:"actor_id"`   // User who performed the change
	CheckIn   string `json:"check_in,omitempty"`
	CheckOut  string `json:"check_out,omitempty"`
}
