package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"quickbite/cart-svc/internal/domain"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrAddressRequired  = errors.New("a delivery address is required before placing an order")
	ErrPlacementFailure = errors.New("one or more restaurant orders could not be placed")
)

// CheckoutOptions is what the customer picks on the checkout screen.
type CheckoutOptions struct {
	AddressID            string `json:"address_id"`
	PaymentMethod        string `json:"payment_method"`
	DeliveryInstructions string `json:"delivery_instructions"`
}

// Composer splits a multi-restaurant cart into one order request per
// restaurant and submits them concurrently.
type Composer struct {
	cart      CartServiceInterface
	orders    OrderPlacer
	addresses AddressBook
}

func NewComposer(cart CartServiceInterface, orders OrderPlacer, addresses AddressBook) *Composer {
	return &Composer{cart: cart, orders: orders, addresses: addresses}
}

type restaurantGroup struct {
	restaurantID   int
	restaurantName string
	lines          []domain.CartLine
}

// groupByRestaurant partitions lines into one group per restaurant, first
// seen first.
func groupByRestaurant(lines []domain.CartLine) []restaurantGroup {
	var groups []restaurantGroup
	index := map[int]int{}
	for _, line := range lines {
		i, ok := index[line.RestaurantID]
		if !ok {
			i = len(groups)
			index[line.RestaurantID] = i
			groups = append(groups, restaurantGroup{
				restaurantID:   line.RestaurantID,
				restaurantName: line.RestaurantName,
			})
		}
		groups[i].lines = append(groups[i].lines, line)
	}
	return groups
}

func buildOrderRequest(group restaurantGroup, addressID string, opts CheckoutOptions) domain.OrderRequest {
	req := domain.OrderRequest{
		RestaurantID:         group.restaurantID,
		AddressID:            addressID,
		Items:                make([]domain.OrderItemRequest, 0, len(group.lines)),
		PaymentMethod:        opts.PaymentMethod,
		DeliveryInstructions: opts.DeliveryInstructions,
	}
	for _, line := range group.lines {
		customizations := line.Customizations
		if customizations == nil {
			// Uniform request shape: always a mapping, never null.
			customizations = domain.Customizations{}
		}
		req.Items = append(req.Items, domain.OrderItemRequest{
			MenuItemID:     line.ItemID,
			Quantity:       line.Quantity,
			Customizations: customizations,
			// The billed per-unit price includes the accepted customization
			// deltas; the order service never re-prices selections.
			UnitPrice: line.TotalPrice,
		})
	}
	return req
}

// resolveAddress picks the requested address, else the default, else the
// first on file.
func (c *Composer) resolveAddress(ctx context.Context, requested string) (string, error) {
	addresses, err := c.addresses.Addresses(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load addresses: %w", err)
	}
	if requested != "" {
		for _, a := range addresses {
			if a.ID == requested {
				return a.ID, nil
			}
		}
	}
	for _, a := range addresses {
		if a.IsDefault {
			return a.ID, nil
		}
	}
	if len(addresses) > 0 {
		return addresses[0].ID, nil
	}
	return "", ErrAddressRequired
}

// Checkout submits one order per restaurant group and waits for all of them.
// Every group succeeding clears the cart (mirrored remotely). Any failure
// leaves the cart untouched for retry; orders already created stay created —
// they are independent server resources and are reported in the result.
func (c *Composer) Checkout(ctx context.Context, opts CheckoutOptions) (*domain.CheckoutResult, error) {
	addressID, err := c.resolveAddress(ctx, opts.AddressID)
	if err != nil {
		return nil, err
	}

	lines := c.cart.SyncForCheckout(ctx)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	groups := groupByRestaurant(lines)

	type outcome struct {
		group   restaurantGroup
		receipt *domain.OrderReceipt
		err     error
	}
	outcomes := make([]outcome, len(groups))

	var wg sync.WaitGroup
	for i, group := range groups {
		wg.Add(1)
		go func(i int, group restaurantGroup) {
			defer wg.Done()
			receipt, err := c.orders.Place(ctx, buildOrderRequest(group, addressID, opts))
			outcomes[i] = outcome{group: group, receipt: receipt, err: err}
		}(i, group)
	}
	wg.Wait()

	result := &domain.CheckoutResult{}
	for _, o := range outcomes {
		if o.err != nil {
			log.Printf("Order placement failed for restaurant %d: %v", o.group.restaurantID, o.err)
			result.Failed = append(result.Failed, domain.GroupFailure{
				RestaurantID:   o.group.restaurantID,
				RestaurantName: o.group.restaurantName,
				Reason:         o.err.Error(),
			})
			continue
		}
		result.Placed = append(result.Placed, *o.receipt)
	}

	if !result.AllPlaced() {
		return result, fmt.Errorf("%w: %d of %d restaurants failed",
			ErrPlacementFailure, len(result.Failed), len(groups))
	}

	if err := c.cart.ClearCart(ctx, true); err != nil {
		var syncErr *SyncError
		if !errors.As(err, &syncErr) {
			return result, err
		}
	}
	return result, nil
}
