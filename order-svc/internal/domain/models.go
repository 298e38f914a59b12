package domain

import (
	"encoding/json"
	"time"
)

// Customizations travels through the order as opaque JSON: the order service
// stores and echoes what the cart sent, it never interprets selections.
type Customizations map[string]json.RawMessage

type OrderItem struct {
	MenuItemID     int            `json:"menu_item_id"`
	Name           string         `json:"name,omitempty"`
	Quantity       int            `json:"quantity"`
	Customizations Customizations `json:"customizations"`
	UnitPrice      float64        `json:"unit_price"`
}

type Order struct {
	ID             int         `json:"id"`
	OrderNumber    string      `json:"order_number"`
	CustomerID     int         `json:"customer_id"`
	RestaurantID   int         `json:"restaurant_id"`
	AddressID      string      `json:"address_id"`
	Items          []OrderItem `json:"items"`
	Subtotal       float64     `json:"subtotal"`
	DeliveryFee    float64     `json:"delivery_fee"`
	Tax            float64     `json:"tax"`
	Discount       float64     `json:"discount"`
	Total          float64     `json:"total"`
	Status         Status      `json:"status"`
	PaymentMethod  string      `json:"payment_method"`
	PaymentStatus  string      `json:"payment_status"`
	Instructions   string      `json:"delivery_instructions,omitempty"`
	TrackingQRLink string      `json:"tracking_qr,omitempty"`
	PlacedAt       time.Time   `json:"placed_at"`
	ConfirmedAt    *time.Time  `json:"confirmed_at,omitempty"`
	DeliveredAt    *time.Time  `json:"delivered_at,omitempty"`
}

// Role identifies who is asking for a status change.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
)

// Actor is the authenticated party behind a request. Restaurant actors carry
// the restaurant they operate.
type Actor struct {
	Role         Role `json:"role"`
	CustomerID   int  `json:"customer_id,omitempty"`
	RestaurantID int  `json:"restaurant_id,omitempty"`
}

// OrderEvent is published on every accepted status transition.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	From         Status    `json:"from"`
	To           Status    `json:"to"`
	Timestamp    time.Time `json:"timestamp"`
}
