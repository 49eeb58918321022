package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
	"github.com/sbilibin2017/gw-hotel-booking/internal/validation"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=booking.go -destination=booking_mock.go -package=services

// BookingReader defines booking lookups.
type BookingReader interface {
	Get(ctx context.Context, id int64) (*models.BookingDB, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.BookingDB, error)
}

// BookingWriter defines booking writes.
type BookingWriter interface {
	Save(ctx context.Context, booking *models.BookingDB) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CommitHook defers fn until the surrounding transaction commits. It reports
// false when ctx carries no transaction; the caller then runs fn itself.
type CommitHook func(ctx context.Context, fn func()) bool

// BookingService creates, lists and cancels bookings and publishes booking events.
type BookingService struct {
	reader      BookingReader
	writer      BookingWriter
	hotels      HotelReader
	kafkaWriter KafkaWriter
	afterCommit CommitHook
}

// BookingOption configures a BookingService.
type BookingOption func(*BookingService)

// WithCommitHook holds booking events back until hook releases them.
func WithCommitHook(hook CommitHook) BookingOption {
	return func(s *BookingService) {
		s.afterCommit = hook
	}
}

// NewBookingService creates a new BookingService. kafkaWriter may be nil.
func NewBookingService(
	reader BookingReader,
	writer BookingWriter,
	hotels HotelReader,
	kafkaWriter KafkaWriter,
	opts ...BookingOption,
) *BookingService {
	s := &BookingService{
		reader:      reader,
		writer:      writer,
		hotels:      hotels,
		kafkaWriter: kafkaWriter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBooking validates the payload and stores a booking owned by actor.
// Invalid payloads are returned as validation.FieldErrors.
func (s *BookingService) CreateBooking(ctx context.Context, payload map[string]any, actor *models.UserDB) (int64, error) {
	errs, err := validation.ValidateBooking(ctx, payload, s.hotels)
	if err != nil {
		logger.Log.Errorw("failed to validate booking", "userID", actor.UserID, "error", err)
		return 0, err
	}
	if len(errs) > 0 {
		logger.Log.Warnw("booking payload rejected", "userID", actor.UserID, "errors", errs)
		return 0, errs
	}

	if claimed, ok := validation.AsInt64(payload["user_id"]); ok && claimed != actor.UserID {
		logger.Log.Warnw("ignoring user_id from booking payload", "userID", actor.UserID, "payloadUserID", claimed)
	}

	booking := newBooking(payload, actor.UserID)
	if err := s.writer.Save(ctx, booking); err != nil {
		logger.Log.Errorw("failed to save booking", "userID", actor.UserID, "hotelID", booking.HotelID, "error", err)
		return 0, fmt.Errorf("save booking: %w", err)
	}

	s.publish(ctx, models.BookingCreated, booking, actor.UserID)
	return booking.BookingID, nil
}

// ListBookings returns the user's bookings together with their hotels.
func (s *BookingService) ListBookings(ctx context.Context, userID int64) ([]models.BookingDetail, error) {
	bookings, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list bookings", "userID", userID, "error", err)
		return nil, err
	}

	hotels := make(map[int64]*models.HotelDB)
	details := make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		hotel, ok := hotels[b.HotelID]
		if !ok {
			hotel, err = s.hotels.Get(ctx, b.HotelID)
			if err != nil {
				logger.Log.Errorw("failed to get booking hotel", "bookingID", b.BookingID, "hotelID", b.HotelID, "error", err)
				return nil, err
			}
			hotels[b.HotelID] = hotel
		}
		details = append(details, models.BookingDetail{Booking: b, Hotel: hotel})
	}
	return details, nil
}

// GetBooking returns one of the user's bookings. Bookings of other users are
// reported as ErrNotFound.
func (s *BookingService) GetBooking(ctx context.Context, id, userID int64) (*models.BookingDetail, error) {
	booking, err := s.reader.Get(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get booking", "bookingID", id, "error", err)
		return nil, err
	}
	if booking == nil || booking.UserID != userID {
		return nil, ErrNotFound
	}

	hotel, err := s.hotels.Get(ctx, booking.HotelID)
	if err != nil {
		logger.Log.Errorw("failed to get booking hotel", "bookingID", id, "hotelID", booking.HotelID, "error", err)
		return nil, err
	}
	return &models.BookingDetail{Booking: *booking, Hotel: hotel}, nil
}

// DeleteBooking removes a booking. Ownership is not enforced.
func (s *BookingService) DeleteBooking(ctx context.Context, id int64, actor *models.UserDB) error {
	booking, err := s.reader.Get(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get booking", "bookingID", id, "error", err)
		return err
	}
	if booking == nil {
		return ErrNotFound
	}

	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete booking", "bookingID", id, "error", err)
		return fmt.Errorf("delete booking: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	if booking.UserID != actor.UserID {
		logger.Log.Warnw("booking deleted by non-owner", "bookingID", id, "ownerID", booking.UserID, "actorID", actor.UserID)
	}

	s.publish(ctx, models.BookingDeleted, booking, actor.UserID)
	return nil
}

// newBooking builds a booking from an already validated payload.
func newBooking(payload map[string]any, ownerID int64) *models.BookingDB {
	hotelID, _ := validation.AsInt64(payload["hotel_id"])
	room, _ := validation.RoomPreference(payload["room_preference"])
	number, _ := validation.AsString(payload["credit_card_number"])
	smoking, _ := payload["smoking_preference"].(bool)

	return &models.BookingDB{
		CheckIn:           date(payload["check_in"]),
		CheckOut:          date(payload["check_out"]),
		HotelID:           hotelID,
		UserID:            ownerID,
		RoomPreference:    room,
		SmokingPreference: smoking,
		CreditCardNumber:  number,
		CreditCardName:    text(payload["credit_card_name"]),
		CreditCardExpiry:  date(payload["credit_card_expiry"]),
	}
}

func date(v any) time.Time {
	s, _ := v.(string)
	d, _ := time.Parse(validation.DateLayout, s)
	return d
}

// publish publishes a booking event to Kafka, after commit when a commit hook is set.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *models.BookingDB, actorID int64) {
	event := models.BookingEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		BookingID: booking.BookingID,
		HotelID:   booking.HotelID,
		UserID:    booking.UserID,
		ActorID:   actorID,
		CheckIn:   booking.CheckIn.Format(validation.DateLayout),
		CheckOut:  booking.CheckOut.Format(validation.DateLayout),
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal booking event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", booking.BookingID)),
		Value: data,
	}

	send := func() {
		if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
			logger.Log.Errorw("Failed to publish booking event", "event_id", event.EventID, "type", eventType, "error", err)
		} else {
			logger.Log.Infow("Booking event published", "event_id", event.EventID, "type", eventType, "booking_id", booking.BookingID)
		}
	}

	if s.afterCommit != nil && s.afterCommit(ctx, send) {
		return
	}
	send()
}
