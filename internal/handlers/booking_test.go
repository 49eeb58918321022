package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-hotel-booking/internal/authz"
	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
	"github.com/sbilibin2017/gw-hotel-booking/internal/services"
	"github.com/sbilibin2017/gw-hotel-booking/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

const bookingBody = `{
	"hotel_id": 1,
	"check_in": "2025-01-01",
	"check_out": "2025-01-03",
	"room_preference": "2",
	"smoking_preference": false,
	"credit_card_number": "4532015112830366",
	"credit_card_name": "Alice Liddell",
	"credit_card_expiry": "2027-12-31"
}`

func TestCreateBookingHandler(t *testing.T) {
	user := &models.UserDB{UserID: 5}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(auth *MockAuthorizer, svc *MockBookingCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: bookingBody,
			mockSetup: func(auth *MockAuthorizer, svc *MockBookingCreator) {
				auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.Authenticated).Return(user, nil)
				svc.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), user).
					DoAndReturn(func(_ context.Context, payload map[string]any, _ *models.UserDB) (int64, error) {
						assert.Equal(t, json.Number("1"), payload["hotel_id"])
						assert.Equal(t, false, payload["smoking_preference"])
						return 12, nil
					})
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"booking_id":12}`,
		},
		{
			name: "field errors",
			body: `{"hotel_id": 1}`,
			mockSetup: func(auth *MockAuthorizer, svc *MockBookingCreator) {
				auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.Authenticated).Return(user, nil)
				svc.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), user).
					Return(int64(0), validation.FieldErrors{"check_in": validation.MsgRequired})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":{"check_in":"This field is required"}}`,
		},
		{
			name: "empty body",
			body: `{}`,
			mockSetup: func(auth *MockAuthorizer, svc *MockBookingCreator) {
				auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.Authenticated).Return(user, nil)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"No data found"}`,
		},
		{
			name: "malformed body",
			body: `[1,2`,
			mockSetup: func(auth *MockAuthorizer, svc *MockBookingCreator) {
				auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.Authenticated).Return(user, nil)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"No data found"}`,
		},
		{
			name: "no token",
			body: bookingBody,
			mockSetup: func(auth *MockAuthorizer, svc *MockBookingCreator) {
				auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.Authenticated).Return(nil, authz.ErrUnauthorized)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"error":"Unauthorized access"}`,
		},
		{
			name: "authorizer failure",
			body: bookingBody,
			mockSetup: func(auth *MockAuthorizer, svc *MockBookingCreator) {
				auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.Authenticated).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name: "service error",
			body: bookingBody,
			mockSetup: func(auth *MockAuthorizer, svc *MockBookingCreator) {
				auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.Authenticated).Return(user, nil)
				svc.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), user).Return(int64(0), errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := NewMockAuthorizer(ctrl)
			svc := NewMockBookingCreator(ctrl)
			tt.mockSetup(auth, svc)

			req := httptest.NewRequest(http.MethodPost, "/api/bookings/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			NewCreateBookingHandler(auth, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func sampleDetail() models.BookingDetail {
	return models.BookingDetail{
		Booking: models.BookingDB{
			BookingID:         3,
			Created:           time.Date(2024, 12, 1, 10, 30, 0, 0, time.UTC),
			CheckIn:           time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:          time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
			HotelID:           1,
			UserID:            5,
			RoomPreference:    2,
			SmokingPreference: false,
			CreditCardNumber:  "4532015112830366",
			CreditCardName:    "Alice Liddell",
			CreditCardExpiry:  time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		Hotel: &models.HotelDB{HotelID: 1, Name: "Grand", NightlyRate: 120.5},
	}
}

func TestListBookingsHandler(t *testing.T) {
	user := &models.UserDB{UserID: 5}

	t.Run("lists owner bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := NewMockAuthorizer(ctrl)
		svc := NewMockBookingLister(ctrl)
		auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.Authenticated).Return(user, nil)
		svc.EXPECT().ListBookings(gomock.Any(), int64(5)).Return([]models.BookingDetail{sampleDetail()}, nil)

		w := httptest.NewRecorder()
		NewListBookingsHandler(auth, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var got []BookingView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "3", got[0].ID)
		assert.Equal(t, "************0366", got[0].CreditCardNumber)
		require.NotNil(t, got[0].Hotel)
		assert.Equal(t, "Grand", got[0].Hotel.Name)
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := NewMockAuthorizer(ctrl)
		svc := NewMockBookingLister(ctrl)
		auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.Authenticated).Return(user, nil)
		svc.EXPECT().ListBookings(gomock.Any(), int64(5)).Return(nil, nil)

		w := httptest.NewRecorder()
		NewListBookingsHandler(auth, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := NewMockAuthorizer(ctrl)
		auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.Authenticated).Return(nil, authz.ErrUnauthorized)

		w := httptest.NewRecorder()
		NewListBookingsHandler(auth, NewMockBookingLister(ctrl)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := NewMockAuthorizer(ctrl)
		svc := NewMockBookingLister(ctrl)
		auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.Authenticated).Return(user, nil)
		svc.EXPECT().ListBookings(gomock.Any(), int64(5)).Return(nil, errors.New("db error"))

		w := httptest.NewRecorder()
		NewListBookingsHandler(auth, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetBookingHandler(t *testing.T) {
	user := &models.UserDB{UserID: 5}
	detail := sampleDetail()

	tests := []struct {
		name         string
		id           string
		mockSetup    func(svc *MockBookingGetter)
		expectedCode int
	}{
		{
			name: "found",
			id:   "3",
			mockSetup: func(svc *MockBookingGetter) {
				svc.EXPECT().GetBooking(gomock.Any(), int64(3), int64(5)).Return(&detail, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			id:   "3",
			mockSetup: func(svc *MockBookingGetter) {
				svc.EXPECT().GetBooking(gomock.Any(), int64(3), int64(5)).Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "bad id",
			id:           "abc",
			mockSetup:    func(svc *MockBookingGetter) {},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "service error",
			id:   "3",
			mockSetup: func(svc *MockBookingGetter) {
				svc.EXPECT().GetBooking(gomock.Any(), int64(3), int64(5)).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := NewMockAuthorizer(ctrl)
			svc := NewMockBookingGetter(ctrl)
			auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.Authenticated).Return(user, nil)
			tt.mockSetup(svc)

			req := withID(httptest.NewRequest(http.MethodGet, "/api/bookings/"+tt.id, nil), tt.id)
			w := httptest.NewRecorder()

			NewGetBookingHandler(auth, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var got BookingResult
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, serializeBooking(detail), got.Result)
			}
			if tt.expectedCode == http.StatusNotFound {
				assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
			}
		})
	}
}

func TestDeleteBookingHandler(t *testing.T) {
	user := &models.UserDB{UserID: 5}

	tests := []struct {
		name         string
		id           string
		mockSetup    func(svc *MockBookingDeleter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "deleted",
			id:   "3",
			mockSetup: func(svc *MockBookingDeleter) {
				svc.EXPECT().DeleteBooking(gomock.Any(), int64(3), user).Return(nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{}`,
		},
		{
			name: "missing",
			id:   "3",
			mockSetup: func(svc *MockBookingDeleter) {
				svc.EXPECT().DeleteBooking(gomock.Any(), int64(3), user).Return(services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Not found"}`,
		},
		{
			name:         "bad id",
			id:           "-1",
			mockSetup:    func(svc *MockBookingDeleter) {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Not found"}`,
		},
		{
			name: "service error",
			id:   "3",
			mockSetup: func(svc *MockBookingDeleter) {
				svc.EXPECT().DeleteBooking(gomock.Any(), int64(3), user).Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := NewMockAuthorizer(ctrl)
			svc := NewMockBookingDeleter(ctrl)
			auth.EXPECT().Authorize(gomock.Any(), gomock.Any(), authz.Authenticated).Return(user, nil)
			tt.mockSetup(svc)

			req := withID(httptest.NewRequest(http.MethodDelete, "/api/bookings/"+tt.id, nil), tt.id)
			w := httptest.NewRecorder()

			NewDeleteBookingHandler(auth, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
