package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-hotel-booking/internal/authz"
	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
	"github.com/sbilibin2017/gw-hotel-booking/internal/services"
	"github.com/sbilibin2017/gw-hotel-booking/internal/validation"
)

//go:generate mockgen -source=booking.go -destination=booking_mock.go -package=handlers

// BookingCreator creates bookings.
type BookingCreator interface {
	CreateBooking(ctx context.Context, payload map[string]any, actor *models.UserDB) (int64, error)
}

// BookingLister lists the bookings of a user.
type BookingLister interface {
	ListBookings(ctx context.Context, userID int64) ([]models.BookingDetail, error)
}

// BookingGetter fetches one booking of a user.
type BookingGetter interface {
	GetBooking(ctx context.Context, id, userID int64) (*models.BookingDetail, error)
}

// BookingDeleter removes bookings.
type BookingDeleter interface {
	DeleteBooking(ctx context.Context, id int64, actor *models.UserDB) error
}

// CreateBookingRequest represents the JSON body for a new booking
// swagger:model CreateBookingRequest
type CreateBookingRequest struct {
	// required: true
	// default: 1
	HotelID int64 `json:"hotel_id"`
	// required: true
	// default: 2025-01-01
	CheckIn string `json:"check_in"`
	// required: true
	// default: 2025-01-03
	CheckOut string `json:"check_out"`
	// One of "1", "2", "3"
	// required: true
	// default: 2
	RoomPreference string `json:"room_preference"`
	// required: true
	// default: false
	SmokingPreference bool `json:"smoking_preference"`
	// required: true
	// default: 4532015112830366
	CreditCardNumber string `json:"credit_card_number"`
	// required: true
	// default: Alice Liddell
	CreditCardName string `json:"credit_card_name"`
	// required: true
	// default: 2027-12-31
	CreditCardExpiry string `json:"credit_card_expiry"`
}

// CreateBookingResponse represents a created booking
// swagger:model CreateBookingResponse
type CreateBookingResponse struct {
	// Id of the new booking
	// default: 1
	BookingID int64 `json:"booking_id"`
}

// BookingResult wraps a single booking
// swagger:model BookingResult
type BookingResult struct {
	Result BookingView `json:"result"`
}

// NewCreateBookingHandler returns an HTTP handler that books a hotel room for the caller.
// @Summary Create booking
// @Description Validates the booking and stores it for the authenticated user. All field errors are reported at once.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body handlers.CreateBookingRequest true "Booking"
// @Success 201 {object} handlers.CreateBookingResponse "Booking created"
// @Failure 400 {object} handlers.ErrorResponse "Field errors"
// @Failure 403 {object} handlers.ErrorResponse "Unauthorized access"
// @Router /bookings/ [post]
// @Security BearerAuth
func NewCreateBookingHandler(auth Authorizer, svc BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := authorize(w, r, auth, authz.Authenticated)
		if !ok {
			return
		}

		payload, err := decodeObject(r)
		if err != nil {
			logger.Log.Warnw("failed to decode booking request", "error", err)
			writeError(w, http.StatusBadRequest, MsgNoData)
			return
		}

		id, err := svc.CreateBooking(r.Context(), payload, user)
		if err != nil {
			var fieldErrs validation.FieldErrors
			if errors.As(err, &fieldErrs) {
				writeError(w, http.StatusBadRequest, fieldErrs)
				return
			}
			logger.Log.Errorw("failed to create booking", "userID", user.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		writeJSON(w, http.StatusCreated, CreateBookingResponse{BookingID: id})
	}
}

// NewListBookingsHandler returns an HTTP handler listing the caller's bookings.
// @Summary List bookings
// @Description Returns the bookings of the authenticated user with their hotels
// @Tags bookings
// @Produce json
// @Success 200 {array} handlers.BookingView "Bookings"
// @Failure 403 {object} handlers.ErrorResponse "Unauthorized access"
// @Router /bookings/ [get]
// @Security BearerAuth
func NewListBookingsHandler(auth Authorizer, svc BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := authorize(w, r, auth, authz.Authenticated)
		if !ok {
			return
		}

		bookings, err := svc.ListBookings(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list bookings", "userID", user.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, serializeBookings(bookings))
	}
}

// NewGetBookingHandler returns an HTTP handler for one of the caller's bookings.
// @Summary Get booking
// @Description Returns a booking of the authenticated user
// @Tags bookings
// @Produce json
// @Param id path int true "Booking id"
// @Success 200 {object} handlers.BookingResult "Booking"
// @Failure 403 {object} handlers.ErrorResponse "Unauthorized access"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /bookings/{id} [get]
// @Security BearerAuth
func NewGetBookingHandler(auth Authorizer, svc BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := authorize(w, r, auth, authz.Authenticated)
		if !ok {
			return
		}

		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusNotFound, MsgNotFound)
			return
		}

		booking, err := svc.GetBooking(r.Context(), id, user.UserID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeError(w, http.StatusNotFound, MsgNotFound)
				return
			}
			logger.Log.Errorw("failed to get booking", "bookingID", id, "error", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, BookingResult{Result: serializeBooking(*booking)})
	}
}

// NewDeleteBookingHandler returns an HTTP handler that cancels a booking.
// @Summary Delete booking
// @Description Removes a booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking id"
// @Success 201 {object} map[string]string "Empty object"
// @Failure 403 {object} handlers.ErrorResponse "Unauthorized access"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /bookings/{id} [delete]
// @Security BearerAuth
func NewDeleteBookingHandler(auth Authorizer, svc BookingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := authorize(w, r, auth, authz.Authenticated)
		if !ok {
			return
		}

		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusNotFound, MsgNotFound)
			return
		}

		if err := svc.DeleteBooking(r.Context(), id, user); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeError(w, http.StatusNotFound, MsgNotFound)
				return
			}
			logger.Log.Errorw("failed to delete booking", "bookingID", id, "error", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		writeJSON(w, http.StatusCreated, struct{}{})
	}
}
