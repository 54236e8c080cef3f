package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"venuedesk/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// VenueLocker serializes the conflict-check-then-write critical section for
// a venue category, closing the read-then-write race between two concurrent
// creation requests for overlapping dates.
type VenueLocker interface {
	// Lock acquires the advisory lock(s) covering the venue category and
	// returns a release function.
	Lock(ctx context.Context, venueType string) (func(), error)
}

// RedisVenueLocker implements VenueLocker with Redis SETNX advisory locks.
type RedisVenueLocker struct {
	Client *redis.Client
	// TTL bounds how long a crashed request can hold a lock.
	TTL time.Duration
}

// NewRedisVenueLocker creates a locker with a sensible lock TTL.
func NewRedisVenueLocker(client *redis.Client) *RedisVenueLocker {
	return &RedisVenueLocker{Client: client, TTL: 10 * time.Second}
}

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// lockKeys returns the Redis keys covering the venue category. "Both" must
// hold the lawn and the banquet hall; keys are sorted so two competing
// requests always acquire in the same order.
func lockKeys(venueType string) []string {
	var keys []string
	if venueType == models.VenueBoth {
		keys = []string{lockKey(models.VenueLawn), lockKey(models.VenueBanquet)}
	} else {
		keys = []string{lockKey(venueType)}
	}
	sort.Strings(keys)
	return keys
}

func lockKey(venueType string) string {
	return "lock:venue:" + venueType
}

// Lock acquires every key covering the venue category, retrying briefly on
// contention. On failure all partially acquired keys are released.
func (l *RedisVenueLocker) Lock(ctx context.Context, venueType string) (func(), error) {
	token := uuid.New().String()
	keys := lockKeys(venueType)

	acquired := make([]string, 0, len(keys))
	release := func() {
		for _, key := range acquired {
			releaseScript.Run(context.Background(), l.Client, []string{key}, token)
		}
	}

	for _, key := range keys {
		if err := l.acquire(ctx, key, token); err != nil {
			release()
			return nil, err
		}
		acquired = append(acquired, key)
	}
	return release, nil
}

func (l *RedisVenueLocker) acquire(ctx context.Context, key, token string) error {
	deadline := time.Now().Add(2 * time.Second)
	for {
		ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return fmt.Errorf("failed to acquire venue lock %s: %w", key, err)
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out acquiring venue lock %s", key)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(20 * time.Millisecond):
		}
	}
}
