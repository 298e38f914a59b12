package service

import (
	"context"
	"time"

	"quickbite/activity-svc/internal/domain"
	"quickbite/activity-svc/internal/storage"
)

type StoreInterface interface {
	BumpSession(sessionID, eventType string) error
	SessionActivity(sessionID string) (map[string]string, error)
	RecordOrderStatus(restaurantID int, status string, at time.Time) error
	OrderStats(restaurantID int, day string) (map[string]string, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessCartEvent(msg domain.CartMessage)
	ProcessOrderEvent(msg domain.OrderMessage)
}

var _ StoreInterface = (*storage.Store)(nil)
