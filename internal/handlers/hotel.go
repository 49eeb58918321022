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

//go:generate mockgen -source=hotel.go -destination=hotel_mock.go -package=handlers

// HotelCreator creates hotels.
type HotelCreator interface {
	CreateHotel(ctx context.Context, payload map[string]any) (int64, error)
}

// HotelLister lists hotels.
type HotelLister interface {
	ListHotels(ctx context.Context) ([]models.HotelDB, error)
}

// HotelGetter fetches a hotel.
type HotelGetter interface {
	GetHotel(ctx context.Context, id int64) (*models.HotelDB, error)
}

// CreateHotelRequest represents the JSON body for a new hotel
// swagger:model CreateHotelRequest
type CreateHotelRequest struct {
	// required: true
	// default: Grand
	Name string `json:"name"`
	// required: true
	Address string `json:"address"`
	// required: true
	City string `json:"city"`
	// required: true
	State string `json:"state"`
	// required: true
	Country string `json:"country"`
	// required: true
	Zipcode string `json:"zipcode"`
	// required: true
	// default: 120.5
	NightlyRate float64 `json:"nightly_rate"`
	// required: true
	Description string `json:"description"`
}

// CreateHotelResponse represents a created hotel
// swagger:model CreateHotelResponse
type CreateHotelResponse struct {
	// Id of the new hotel
	// default: 1
	HotelID int64 `json:"hotel_id"`
}

// HotelResult wraps a single hotel
// swagger:model HotelResult
type HotelResult struct {
	Result HotelView `json:"result"`
}

// NewCreateHotelHandler returns an HTTP handler that creates a hotel.
// @Summary Create hotel
// @Description Creates a hotel. Admin only.
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body handlers.CreateHotelRequest true "Hotel"
// @Success 201 {object} handlers.CreateHotelResponse "Hotel created"
// @Failure 400 {object} handlers.ErrorResponse "Field errors"
// @Failure 403 {object} handlers.ErrorResponse "Unauthorized access"
// @Router /hotels/ [post]
// @Security BearerAuth
func NewCreateHotelHandler(auth Authorizer, svc HotelCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := authorize(w, r, auth, authz.Admin); !ok {
			return
		}

		payload, err := decodeObject(r)
		if err != nil {
			logger.Log.Warnw("failed to decode hotel request", "error", err)
			writeError(w, http.StatusBadRequest, MsgNoData)
			return
		}

		id, err := svc.CreateHotel(r.Context(), payload)
		if err != nil {
			var fieldErrs validation.FieldErrors
			if errors.As(err, &fieldErrs) {
				writeError(w, http.StatusBadRequest, fieldErrs)
				return
			}
			logger.Log.Errorw("failed to create hotel", "error", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		writeJSON(w, http.StatusCreated, CreateHotelResponse{HotelID: id})
	}
}

// NewListHotelsHandler returns an HTTP handler listing all hotels.
// @Summary List hotels
// @Tags hotels
// @Produce json
// @Success 200 {array} handlers.HotelView "Hotels"
// @Router /hotels/ [get]
func NewListHotelsHandler(svc HotelLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hotels, err := svc.ListHotels(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list hotels", "error", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, serializeHotels(hotels))
	}
}

// NewGetHotelHandler returns an HTTP handler for a single hotel.
// @Summary Get hotel
// @Tags hotels
// @Produce json
// @Param id path int true "Hotel id"
// @Success 200 {object} handlers.HotelResult "Hotel"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /hotels/{id} [get]
func NewGetHotelHandler(svc HotelGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusNotFound, MsgNotFound)
			return
		}

		hotel, err := svc.GetHotel(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeError(w, http.StatusNotFound, MsgNotFound)
				return
			}
			logger.Log.Errorw("failed to get hotel", "hotelID", id, "error", err)
			writeError(w, http.StatusInternalServerError, MsgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, HotelResult{Result: serializeHotel(*hotel)})
	}
}
