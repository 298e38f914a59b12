package domain

import "time"

const (
	CartUpdated      = "cartUpdated"
	FavoritesUpdated = "favoritesUpdated"
	StatusChanged    = "status_changed"
)

// CartMessage arrives on the cart-events topic whenever a session writes its
// cart or favorites collection.
type CartMessage struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderMessage arrives on the order-events topic on every accepted status
// transition.
type OrderMessage struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Timestamp    time.Time `json:"timestamp"`
}
