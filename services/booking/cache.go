package booking

import (
	"context"
	"encoding/json"
	"time"

	"venuedesk/models"
	"venuedesk/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	cacheTTL       = 5 * time.Minute
	allBookingsKey = "bookings:all"
)

func bookingCacheKey(id string) string { return "booking:" + id }

// BookingCache caches read results for the fetch and list operations.
// Implementations are lenient: a miss or a cache failure returns nil and the
// caller falls back to the repository.
type BookingCache interface {
	GetBooking(ctx context.Context, id string) *models.Booking
	GetBookings(ctx context.Context) []models.Booking
	StoreBooking(ctx context.Context, b *models.Booking)
	StoreBookings(ctx context.Context, bookings []models.Booking)
	// Invalidate drops the cached record and the cached list after a write.
	Invalidate(ctx context.Context, id string)
}

// RedisBookingCache implements BookingCache on the generic Redis cache client.
type RedisBookingCache struct {
	Client *redis.Client
}

// NewRedisBookingCache creates a BookingCache backed by Redis.
func NewRedisBookingCache(client *redis.Client) *RedisBookingCache {
	return &RedisBookingCache{Client: client}
}

func (c *RedisBookingCache) GetBooking(ctx context.Context, id string) *models.Booking {
	data, err := c.Client.Get(ctx, bookingCacheKey(id)).Result()
	if err != nil {
		return nil
	}
	var b models.Booking
	if err := json.Unmarshal([]byte(data), &b); err != nil {
		utils.GetLogger().Warn("failed to decode cached booking", zap.String("id", id), zap.Error(err))
		return nil
	}
	return &b
}

func (c *RedisBookingCache) GetBookings(ctx context.Context) []models.Booking {
	data, err := c.Client.Get(ctx, allBookingsKey).Result()
	if err != nil {
		return nil
	}
	var bookings []models.Booking
	if err := json.Unmarshal([]byte(data), &bookings); err != nil {
		utils.GetLogger().Warn("failed to decode cached booking list", zap.Error(err))
		return nil
	}
	return bookings
}

func (c *RedisBookingCache) StoreBooking(ctx context.Context, b *models.Booking) {
	data, err := json.Marshal(b)
	if err != nil {
		utils.GetLogger().Warn("failed to encode booking for cache", zap.String("id", b.ID), zap.Error(err))
		return
	}
	if err := c.Client.Set(ctx, bookingCacheKey(b.ID), data, cacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache booking", zap.String("id", b.ID), zap.Error(err))
	}
}

func (c *RedisBookingCache) StoreBookings(ctx context.Context, bookings []models.Booking) {
	data, err := json.Marshal(bookings)
	if err != nil {
		utils.GetLogger().Warn("failed to encode booking list for cache", zap.Error(err))
		return
	}
	if err := c.Client.Set(ctx, allBookingsKey, data, cacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache booking list", zap.Error(err))
	}
}

func (c *RedisBookingCache) Invalidate(ctx context.Context, id string) {
	if err := c.Client.Del(ctx, bookingCacheKey(id), allBookingsKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate booking cache", zap.String("id", id), zap.Error(err))
	}
}
