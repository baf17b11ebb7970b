package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// likeCountTTL bounds staleness of the cached counters; the DB stays
// the source of truth on a miss.
const likeCountTTL = time.Hour

// LikeCounter caches "how many users liked X" counters in Redis so the
// likes endpoints don't hit the swipes table on every call.
type LikeCounter struct {
	client *redis.Client
}

func NewLikeCounter(client *redis.Client) *LikeCounter {
	return &LikeCounter{client: client}
}

func (c *LikeCounter) key(userID int) string {
	return fmt.Sprintf("likes:count:%d", userID)
}

// Get returns the cached count for userID. ok is false on a miss.
func (c *LikeCounter) Get(ctx context.Context, userID int) (int64, bool, error) {
	val, err := c.client.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil // treat unparsable junk as a miss
	}
	// refresh TTL on access
	_ = c.client.Expire(ctx, c.key(userID), likeCountTTL).Err()
	return n, true, nil
}

// Set stores the count with a fresh TTL.
func (c *LikeCounter) Set(ctx context.Context, userID int, count int64) error {
	return c.client.Set(ctx, c.key(userID), count, likeCountTTL).Err()
}

// Incr bumps the counter after a new like lands. A missing key stays
// missing from Get's perspective only after expiry, so the TTL is
// refreshed alongside.
func (c *LikeCounter) Incr(ctx context.Context, userID int) error {
	if err := c.client.Incr(ctx, c.key(userID)).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, c.key(userID), likeCountTTL).Err()
}

// Invalidate drops the cached counter.
func (c *LikeCounter) Invalidate(ctx context.Context, userID int) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
