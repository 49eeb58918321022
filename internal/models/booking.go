package models

import "time"

// Room preferences accepted for a booking.
const (
	RoomPreferenceMin = 1
	RoomPreferenceMax = 3
)

// BookingDB represents a booking row in the database
type BookingDB struct {
	BookingID         int64     `json:"id" db:"id"`                                 // Primary key
	Created           time.Time `json:"created" db:"created"`                       // Creation timestamp
	CheckIn           time.Time `json:"check_in" db:"check_in"`                     // Arrival date
	CheckOut          time.Time `json:"check_out" db:"check_out"`                   // Departure date
	HotelID           int64     `json:"hotel_id" db:"hotel_id"`                     // Booked hotel
	UserID            int64     `json:"user_id" db:"user_id"`                       // Owner
	RoomPreference    int       `json:"room_preference" db:"room_preference"`       // 1..3
	SmokingPreference bool      `json:"smoking_preference" db:"smoking_preference"` // Smoking room requested
	CreditCardNumber  string    `json:"credit_card_number" db:"credit_card_number"` // Luhn-checked, never charged
	CreditCardName    string    `json:"credit_card_name" db:"credit_card_name"`     // Card holder
	CreditCardExpiry  time.Time `json:"credit_card_expiry" db:"credit_card_expiry"` // Card expiry date
}

// BookingDetail couples a booking with the hotel it references.
type BookingDetail struct {
	Booking BookingDB
	Hotel   *HotelDB
}
