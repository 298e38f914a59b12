package service

import (
	"context"
	"time"

	"quickbite/order-svc/internal/domain"
)

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(orderID int) (*domain.Order, error)
	ListForCustomer(customerID int) ([]domain.Order, error)
	ListForRestaurant(restaurantID int, status domain.Status) ([]domain.Order, error)
	AdvanceStatus(ctx context.Context, orderID int, actor domain.Actor, target domain.Status) (*domain.Order, error)
	GetQRCode(orderID int) ([]byte, error)
	QRLink(orderID int) string
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(orderID int) (*domain.Order, error)
	ListByCustomer(customerID int) ([]domain.Order, error)
	ListByRestaurant(restaurantID int, status domain.Status) ([]domain.Order, error)
	// UpdateStatus applies the transition only if the row is still at `from`,
	// returning the number of rows moved.
	UpdateStatus(orderID int, from, to domain.Status, confirmedAt, deliveredAt *time.Time) (int64, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type StatusCache interface {
	StatusKey(orderID int) string
	SetStatus(ctx context.Context, orderID int, status domain.Status) error
	GetStatus(ctx context.Context, orderID int) (domain.Status, error)
}

type EventPublisher interface {
	PublishStatusChange(ctx context.Context, evt domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

var _ OrderServiceInterface = (*OrderService)(nil)
