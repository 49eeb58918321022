package models

// HotelDB represents a hotel row in the database
type HotelDB struct {
	HotelID     int64   `json:"id" db:"id"`                     // Primary key
	Name        string  `json:"name" db:"name"`                 // Hotel name
	Address     string  `json:"address" db:"address"`           // Street address
	City        string  `json:"city" db:"city"`                 // City
	State       string  `json:"state" db:"state"`               // State or region
	Country     string  `json:"country" db:"country"`           // Country
	Zipcode     string  `json:"zipcode" db:"zipcode"`           // Postal code
	NightlyRate float64 `json:"nightly_rate" db:"nightly_rate"` // Price per night
	Description string  `json:"description" db:"description"`   // Free-form description
}
