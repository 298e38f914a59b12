package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"quickbite/order-svc/internal/domain"
)

var (
	ErrInvalidOrder      = errors.New("invalid order payload")
	ErrOrderNotFound     = errors.New("order not found")
	ErrCustomerReadOnly  = errors.New("customers cannot change order status")
	ErrNotOrderOwner     = errors.New("order belongs to a different restaurant")
	ErrInvalidTransition = errors.New("invalid status transition")
)

const (
	flatDeliveryFee = 40.0
	taxRate         = 0.05
)

type OrderService struct {
	repo      OrderRepository
	cache     StatusCache
	publisher EventPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, cache StatusCache, publisher EventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, cache: cache, publisher: publisher, qrEncoder: qr}
}

// Create stores one restaurant's order atomically: the order row and all its
// items land in a single transaction, already priced and numbered.
func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if order.RestaurantID <= 0 || len(order.Items) == 0 {
		return ErrInvalidOrder
	}
	for i := range order.Items {
		if order.Items[i].Quantity < 1 {
			return ErrInvalidOrder
		}
		if order.Items[i].Customizations == nil {
			order.Items[i].Customizations = domain.Customizations{}
		}
	}

	order.Subtotal = 0
	for _, item := range order.Items {
		order.Subtotal += item.UnitPrice * float64(item.Quantity)
	}
	order.DeliveryFee = flatDeliveryFee
	order.Tax = order.Subtotal * taxRate
	order.Total = order.Subtotal + order.DeliveryFee + order.Tax - order.Discount

	order.Status = domain.StatusPending
	if order.PaymentStatus == "" {
		order.PaymentStatus = "pending"
	}
	order.OrderNumber = newOrderNumber()
	order.PlacedAt = time.Now()

	if err := s.repo.CreateOrder(order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.SetStatus(ctx, order.ID, order.Status)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}
	order.TrackingQRLink = s.QRLink(order.ID)

	return nil
}

func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "QB-" + time.Now().Format("20060102") + "-" + suffix
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	order.TrackingQRLink = s.QRLink(order.ID)
	return order, nil
}

func (s *OrderService) ListForCustomer(customerID int) ([]domain.Order, error) {
	return s.repo.ListByCustomer(customerID)
}

// ListForRestaurant is a pure projection over the status field; an empty
// status means all orders.
func (s *OrderService) ListForRestaurant(restaurantID int, status domain.Status) ([]domain.Order, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}
	return s.repo.ListByRestaurant(restaurantID, status)
}

// AdvanceStatus moves an order one stage forward, or cancels it from pending.
// Only the owning restaurant may call it. A rejected transition leaves the
// stored order untouched.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID int, actor domain.Actor, target domain.Status) (*domain.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	if actor.Role != domain.RoleRestaurant {
		return nil, ErrCustomerReadOnly
	}
	if actor.RestaurantID != order.RestaurantID {
		return nil, ErrNotOrderOwner
	}
	if !target.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, target)
	}
	if !domain.CanTransition(order.Status, target) {
		if order.Status.Terminal() {
			return nil, fmt.Errorf("%w: order is already %s", ErrInvalidTransition, order.Status)
		}
		next, _ := order.Status.Next()
		return nil, fmt.Errorf("%w: from %s only %s is reachable", ErrInvalidTransition, order.Status, allowedFrom(order.Status, next))
	}

	now := time.Now()
	var confirmedAt, deliveredAt *time.Time
	if target == domain.StatusConfirmed && order.ConfirmedAt == nil {
		confirmedAt = &now
	}
	if target == domain.StatusDelivered && order.DeliveredAt == nil {
		deliveredAt = &now
	}

	moved, err := s.repo.UpdateStatus(orderID, order.Status, target, confirmedAt, deliveredAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	if moved == 0 {
		// Lost a race with another transition; nothing was applied.
		return nil, fmt.Errorf("%w: order state changed concurrently", ErrInvalidTransition)
	}

	from := order.Status
	order.Status = target
	if confirmedAt != nil {
		order.ConfirmedAt = confirmedAt
	}
	if deliveredAt != nil {
		order.DeliveredAt = deliveredAt
	}

	if s.cache != nil {
		_ = s.cache.SetStatus(ctx, orderID, target)
	}
	if s.publisher != nil {
		if err := s.publisher.PublishStatusChange(ctx, domain.OrderEvent{
			Type:         "status_changed",
			OrderID:      orderID,
			RestaurantID: order.RestaurantID,
			From:         from,
			To:           target,
			Timestamp:    now,
		}); err != nil {
			log.Printf("Warning: failed to publish status change for order %d: %v", orderID, err)
		}
	}

	return order, nil
}

func allowedFrom(from, next domain.Status) string {
	if from == domain.StatusPending {
		return fmt.Sprintf("%s or %s", next, domain.StatusCancelled)
	}
	return string(next)
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}
