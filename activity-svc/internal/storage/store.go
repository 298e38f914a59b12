package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	rdb *redis.Client
	ctx context.Context
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ctx: context.Background()}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:activity:%s", sessionID)
}

func statsKey(restaurantID int, day string) string {
	return fmt.Sprintf("orders:stats:%s:%d", day, restaurantID)
}

// BumpSession counts one collection write for the session. The hash expires
// with the session's natural lifetime.
func (s *Store) BumpSession(sessionID, eventType string) error {
	key := sessionKey(sessionID)
	if err := s.rdb.HIncrBy(s.ctx, key, eventType, 1).Err(); err != nil {
		return err
	}
	s.rdb.HSet(s.ctx, key, "last_updated", time.Now().Unix())
	s.rdb.Expire(s.ctx, key, 24*time.Hour)
	return nil
}

func (s *Store) SessionActivity(sessionID string) (map[string]string, error) {
	return s.rdb.HGetAll(s.ctx, sessionKey(sessionID)).Result()
}

// RecordOrderStatus increments the per-restaurant daily counter for the status
// an order just reached. Kept for a week, same horizon as the daily
// leaderboards.
func (s *Store) RecordOrderStatus(restaurantID int, status string, at time.Time) error {
	key := statsKey(restaurantID, at.Format("2006-01-02"))
	if err := s.rdb.HIncrBy(s.ctx, key, status, 1).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, key, 7*24*time.Hour)
	return nil
}

func (s *Store) OrderStats(restaurantID int, day string) (map[string]string, error) {
	return s.rdb.HGetAll(s.ctx, statsKey(restaurantID, day)).Result()
}
