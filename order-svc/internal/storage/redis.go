package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"quickbite/order-svc/internal/domain"
)

// StatusCache keeps the latest order status in Redis so customer polling does
// not hit Postgres on every refresh.
type StatusCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewStatusCache(client *redis.Client, ttl time.Duration) *StatusCache {
	return &StatusCache{Client: client, TTL: ttl}
}

func (c *StatusCache) StatusKey(orderID int) string {
	return "order:status:" + strconv.Itoa(orderID)
}

func (c *StatusCache) SetStatus(ctx context.Context, orderID int, status domain.Status) error {
	return c.Client.Set(ctx, c.StatusKey(orderID), string(status), c.TTL).Err()
}

func (c *StatusCache) GetStatus(ctx context.Context, orderID int) (domain.Status, error) {
	val, err := c.Client.Get(ctx, c.StatusKey(orderID)).Result()
	if err != nil {
		return "", err
	}
	return domain.Status(val), nil
}
