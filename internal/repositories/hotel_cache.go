package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
	"github.com/sbilibin2017/gw-hotel-booking/internal/models"
)

const hotelsCacheKey = "cache:hotels"

// HotelCacheRepository keeps the hotel list in Redis
type HotelCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached list
}

// NewHotelCacheRepository creates a new repository instance with the given TTL
func NewHotelCacheRepository(client *redis.Client, expiration time.Duration) *HotelCacheRepository {
	return &HotelCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetHotels returns the cached list, or nil, nil on a cache miss.
func (r *HotelCacheRepository) GetHotels(ctx context.Context) ([]models.HotelDB, error) {
	data, err := r.client.Get(ctx, hotelsCacheKey).Bytes()

	logger.Log.Infow("redis get",
		"key", hotelsCacheKey,
		"size", len(data),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var hotels []models.HotelDB
	if err := json.Unmarshal(data, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// SetHotels caches the list with the configured expiration
func (r *HotelCacheRepository) SetHotels(ctx context.Context, hotels []models.HotelDB) error {
	payload, err := json.Marshal(hotels)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, hotelsCacheKey, payload, r.exp).Err()

	logger.Log.Infow("redis set",
		"key", hotelsCacheKey,
		"count", len(hotels),
		"error", err,
	)

	return err
}

// Invalidate drops the cached list.
func (r *HotelCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, hotelsCacheKey).Err()

	logger.Log.Infow("redis del",
		"key", hotelsCacheKey,
		"error", err,
	)

	return err
}
