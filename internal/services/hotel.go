package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
	"github.com/sbilibin2017/gw-hotel-booking/internal/validation"
)

//go:generate mockgen -source=hotel.go -destination=hotel_mock.go -package=services

// HotelReader defines hotel lookups.
type HotelReader interface {
	Get(ctx context.Context, id int64) (*models.HotelDB, error)
	List(ctx context.Context) ([]models.HotelDB, error)
}

// HotelWriter persists hotels.
type HotelWriter interface {
	Save(ctx context.Context, hotel *models.HotelDB) (int64, error)
}

// HotelCache caches the hotel list.
type HotelCache interface {
	GetHotels(ctx context.Context) ([]models.HotelDB, error)
	SetHotels(ctx context.Context, hotels []models.HotelDB) error
	Invalidate(ctx context.Context) error
}

// HotelService creates and serves hotels.
type HotelService struct {
	reader HotelReader
	writer HotelWriter
	cache  HotelCache
}

// NewHotelService creates a new HotelService. cache may be nil.
func NewHotelService(reader HotelReader, writer HotelWriter, cache HotelCache) *HotelService {
	return &HotelService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// CreateHotel validates the payload and stores the hotel. Invalid payloads
// are returned as validation.FieldErrors.
func (s *HotelService) CreateHotel(ctx context.Context, payload map[string]any) (int64, error) {
	if errs := validation.ValidateHotel(payload); len(errs) > 0 {
		logger.Log.Warnw("hotel payload rejected", "errors", errs)
		return 0, errs
	}

	rate, _ := validation.NightlyRate(payload["nightly_rate"])
	hotel := &models.HotelDB{
		Name:        text(payload["name"]),
		Address:     text(payload["address"]),
		City:        text(payload["city"]),
		State:       text(payload["state"]),
		Country:     text(payload["country"]),
		Zipcode:     text(payload["zipcode"]),
		NightlyRate: rate,
		Description: text(payload["description"]),
	}

	id, err := s.writer.Save(ctx, hotel)
	if err != nil {
		logger.Log.Errorw("failed to save hotel", "name", hotel.Name, "error", err)
		return 0, fmt.Errorf("save hotel: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate hotels cache", "error", err)
		}
	}

	logger.Log.Infow("hotel created", "hotelID", id, "name", hotel.Name)
	return id, nil
}

// ListHotels returns all hotels, served from the cache when possible.
func (s *HotelService) ListHotels(ctx context.Context) ([]models.HotelDB, error) {
	if s.cache != nil {
		hotels, err := s.cache.GetHotels(ctx)
		if err != nil {
			logger.Log.Errorw("failed to read hotels cache", "error", err)
		} else if hotels != nil {
			return hotels, nil
		}
	}

	hotels, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list hotels", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetHotels(ctx, hotels); err != nil {
			logger.Log.Errorw("failed to cache hotels", "error", err)
		}
	}
	return hotels, nil
}

// GetHotel returns the hotel or ErrNotFound.
func (s *HotelService) GetHotel(ctx context.Context, id int64) (*models.HotelDB, error) {
	hotel, err := s.reader.Get(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get hotel", "hotelID", id, "error", err)
		return nil, err
	}
	if hotel == nil {
		return nil, ErrNotFound
	}
	return hotel, nil
}

// text renders a validated payload value as a trimmed string.
func text(v any) string {
	s, _ := validation.AsString(v)
	return strings.TrimSpace(s)
}
