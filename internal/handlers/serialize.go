package handlers

import (
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
	"github.com/sbilibin2017/gw-hotel-booking/internal/validation"
)

const createdLayout = "2006-01-02 15:04:05.999999"

// HotelView is a hotel with every value rendered as a string.
// swagger:model HotelView
type HotelView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Zipcode     string `json:"zipcode"`
	NightlyRate string `json:"nightly_rate"`
	Description string `json:"description"`
}

// BookingView is a booking with every value rendered as a string plus its hotel.
// swagger:model BookingView
type BookingView struct {
	ID                string     `json:"id"`
	Created           string     `json:"created"`
	CheckIn           string     `json:"check_in"`
	CheckOut          string     `json:"check_out"`
	HotelID           string     `json:"hotel_id"`
	UserID            string     `json:"user_id"`
	RoomPreference    string     `json:"room_preference"`
	SmokingPreference string     `json:"smoking_preference"`
	CreditCardNumber  string     `json:"credit_card_number"`
	CreditCardName    string     `json:"credit_card_name"`
	CreditCardExpiry  string     `json:"credit_card_expiry"`
	Hotel             *HotelView `json:"hotel"`
}

func serializeHotel(h models.HotelDB) HotelView {
	return HotelView{
		ID:          strconv.FormatInt(h.HotelID, 10),
		Name:        h.Name,
		Address:     h.Address,
		City:        h.City,
		State:       h.State,
		Country:     h.Country,
		Zipcode:     h.Zipcode,
		NightlyRate: strconv.FormatFloat(h.NightlyRate, 'f', -1, 64),
		Description: h.Description,
	}
}

func serializeHotels(hotels []models.HotelDB) []HotelView {
	views := make([]HotelView, 0, len(hotels))
	for _, h := range hotels {
		views = append(views, serializeHotel(h))
	}
	return views
}

func serializeBooking(d models.BookingDetail) BookingView {
	b := d.Booking
	view := BookingView{
		ID:                strconv.FormatInt(b.BookingID, 10),
		Created:           b.Created.Format(createdLayout),
		CheckIn:           b.CheckIn.Format(validation.DateLayout),
		CheckOut:          b.CheckOut.Format(validation.DateLayout),
		HotelID:           strconv.FormatInt(b.HotelID, 10),
		UserID:            strconv.FormatInt(b.UserID, 10),
		RoomPreference:    strconv.Itoa(b.RoomPreference),
		SmokingPreference: strconv.FormatBool(b.SmokingPreference),
		CreditCardNumber:  maskCardNumber(b.CreditCardNumber),
		CreditCardName:    b.CreditCardName,
		CreditCardExpiry:  b.CreditCardExpiry.Format(validation.DateLayout),
	}
	if d.Hotel != nil {
		hotel := serializeHotel(*d.Hotel)
		view.Hotel = &hotel
	}
	return view
}

func serializeBookings(details []models.BookingDetail) []BookingView {
	views := make([]BookingView, 0, len(details))
	for _, d := range details {
		views = append(views, serializeBooking(d))
	}
	return views
}

// maskCardNumber keeps only the last four digits.
func maskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}
