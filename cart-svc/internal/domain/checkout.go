package domain

// Address is the slice of the address book the composer cares about.
type Address struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	IsDefault bool   `json:"is_default"`
}

// OrderItemRequest carries one cart line onto the wire. UnitPrice is the
// customization-inclusive per-unit price the customer saw; the selections
// travel alongside for the kitchen, not for pricing.
type OrderItemRequest struct {
	MenuItemID     int            `json:"menu_item_id"`
	Quantity       int            `json:"quantity"`
	Customizations Customizations `json:"customizations"`
	UnitPrice      float64        `json:"unit_price"`
}

// OrderRequest is one order-creation call: all of one restaurant's cart lines.
type OrderRequest struct {
	RestaurantID         int                `json:"restaurant_id"`
	AddressID            string             `json:"address_id"`
	Items                []OrderItemRequest `json:"items"`
	PaymentMethod        string             `json:"payment_method"`
	DeliveryInstructions string             `json:"delivery_instructions"`
}

func (r OrderRequest) Subtotal() float64 {
	var sum float64
	for _, item := range r.Items {
		sum += item.UnitPrice * float64(item.Quantity)
	}
	return sum
}

// OrderReceipt is what the order service returns for a created order.
type OrderReceipt struct {
	ID           int     `json:"id"`
	OrderNumber  string  `json:"order_number"`
	RestaurantID int     `json:"restaurant_id"`
	Total        float64 `json:"total"`
}

// GroupFailure reports one restaurant's order request that did not go through.
type GroupFailure struct {
	RestaurantID   int    `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	Reason         string `json:"reason"`
}

// CheckoutResult lists per-restaurant outcomes. Placed orders are durable
// server-side even when the batch as a whole failed.
type CheckoutResult struct {
	Placed []OrderReceipt `json:"placed"`
	Failed []GroupFailure `json:"failed"`
}

func (r CheckoutResult) AllPlaced() bool {
	return len(r.Failed) == 0
}
