package tests

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quickbite/cart-svc/internal/domain"
	"quickbite/cart-svc/internal/mocks"
	"quickbite/cart-svc/internal/service"
	"quickbite/cart-svc/internal/store"
)

func pastaLine() domain.CartLine {
	return domain.CartLine{
		ItemID:         21,
		RestaurantID:   2,
		RestaurantName: "Trattoria Sud",
		Name:           "Carbonara",
		UnitPrice:      280,
		Quantity:       2,
	}
}

type composerFixture struct {
	cart      *service.CartService
	remote    *mocks.RemoteCart
	orders    *mocks.OrderPlacer
	addresses *mocks.AddressBook
	composer  *service.Composer
}

func newComposerFixture(t *testing.T) *composerFixture {
	remote := mocks.NewRemoteCart(t)
	orders := mocks.NewOrderPlacer(t)
	addresses := mocks.NewAddressBook(t)
	cart := service.NewCartService(store.NewMemoryStore(store.NewBus()), remote)
	return &composerFixture{
		cart:      cart,
		remote:    remote,
		orders:    orders,
		addresses: addresses,
		composer:  service.NewComposer(cart, orders, addresses),
	}
}

func (f *composerFixture) seedTwoRestaurants(t *testing.T) {
	ctx := context.Background()
	_, err := f.cart.AddToCart(ctx, margherita(), false)
	assert.NoError(t, err)
	_, err = f.cart.AddToCart(ctx, pastaLine(), false)
	assert.NoError(t, err)
	// Checkout-time refresh is offline in these tests; the local snapshot is used.
	f.remote.On("Fetch", mock.Anything).Return(nil, errors.New("offline")).Once()
}

func defaultAddress() []domain.Address {
	return []domain.Address{
		{ID: "addr-2", Label: "Work"},
		{ID: "addr-1", Label: "Home", IsDefault: true},
	}
}

func requestForRestaurant(id int) interface{} {
	return mock.MatchedBy(func(req domain.OrderRequest) bool {
		return req.RestaurantID == id
	})
}

func TestComposer_Checkout_SplitsCartPerRestaurant(t *testing.T) {
	f := newComposerFixture(t)
	f.seedTwoRestaurants(t)

	f.addresses.On("Addresses", mock.Anything).Return(defaultAddress(), nil).Once()

	var mu sync.Mutex
	var captured []domain.OrderRequest
	f.orders.On("Place", mock.Anything, mock.AnythingOfType("domain.OrderRequest")).
		Run(func(args mock.Arguments) {
			mu.Lock()
			captured = append(captured, args.Get(1).(domain.OrderRequest))
			mu.Unlock()
		}).
		Return(&domain.OrderReceipt{ID: 1, OrderNumber: "QB-1"}, nil).Twice()
	f.remote.On("Clear", mock.Anything).Return(nil).Once()

	result, err := f.composer.Checkout(context.Background(), service.CheckoutOptions{PaymentMethod: "cod"})
	assert.NoError(t, err)
	assert.Len(t, result.Placed, 2)
	assert.Empty(t, result.Failed)

	assert.Len(t, captured, 2)
	subtotal := 0.0
	for _, req := range captured {
		assert.Equal(t, "addr-1", req.AddressID, "default address wins")
		assert.Len(t, req.Items, 1, "each order carries only its restaurant's lines")
		assert.NotNil(t, req.Items[0].Customizations, "customizations always a mapping, never null")
		subtotal += req.Subtotal()
	}
	// 500 for the pizza + 2x280 for the pasta: nothing lost in the split.
	assert.Equal(t, 1060.0, subtotal)

	assert.Empty(t, f.cart.Cart(), "full-batch success clears the cart")
}

func TestComposer_Checkout_BillsCustomizationInclusivePrice(t *testing.T) {
	f := newComposerFixture(t)
	ctx := context.Background()
	// Base price 350, Medium +100, Extra Cheese +50: the customer sees 500.
	_, err := f.cart.AddToCart(ctx, margherita(), false)
	assert.NoError(t, err)
	f.remote.On("Fetch", mock.Anything).Return(nil, errors.New("offline")).Once()

	f.addresses.On("Addresses", mock.Anything).Return(defaultAddress(), nil).Once()

	var captured domain.OrderRequest
	f.orders.On("Place", mock.Anything, mock.AnythingOfType("domain.OrderRequest")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.OrderRequest)
		}).
		Return(&domain.OrderReceipt{ID: 9, OrderNumber: "QB-9"}, nil).Once()
	f.remote.On("Clear", mock.Anything).Return(nil).Once()

	_, err = f.composer.Checkout(ctx, service.CheckoutOptions{PaymentMethod: "cod"})
	assert.NoError(t, err)

	// The selections travel for the kitchen; the billed per-unit price must
	// already include their deltas, or the customer pays less than shown.
	assert.Len(t, captured.Items, 1)
	assert.Equal(t, 500.0, captured.Items[0].UnitPrice)
	assert.Equal(t, 500.0, captured.Subtotal())
	assert.NotEmpty(t, captured.Items[0].Customizations)
}

func TestComposer_Checkout_PartialFailureRetainsCart(t *testing.T) {
	f := newComposerFixture(t)
	f.seedTwoRestaurants(t)

	f.addresses.On("Addresses", mock.Anything).Return(defaultAddress(), nil).Once()

	f.orders.On("Place", mock.Anything, requestForRestaurant(1)).
		Return(&domain.OrderReceipt{ID: 11, OrderNumber: "QB-11", RestaurantID: 1}, nil).Once()
	f.orders.On("Place", mock.Anything, requestForRestaurant(2)).
		Return(nil, errors.New("restaurant offline")).Once()

	result, err := f.composer.Checkout(context.Background(), service.CheckoutOptions{PaymentMethod: "cod"})
	assert.ErrorIs(t, err, service.ErrPlacementFailure)
	assert.Len(t, result.Placed, 1)
	assert.Len(t, result.Failed, 1)
	assert.Equal(t, 2, result.Failed[0].RestaurantID)

	// No rollback of the created order, and no silent data loss: the whole
	// cart stays for retry.
	lines := f.cart.Cart()
	assert.Len(t, lines, 2)
}

func TestComposer_Checkout_AddressRequired(t *testing.T) {
	f := newComposerFixture(t)
	f.addresses.On("Addresses", mock.Anything).Return([]domain.Address{}, nil).Once()

	_, err := f.composer.Checkout(context.Background(), service.CheckoutOptions{})
	assert.ErrorIs(t, err, service.ErrAddressRequired)
	f.orders.AssertNotCalled(t, "Place", mock.Anything, mock.Anything)
}

func TestComposer_Checkout_EmptyCart(t *testing.T) {
	f := newComposerFixture(t)
	f.addresses.On("Addresses", mock.Anything).Return(defaultAddress(), nil).Once()
	f.remote.On("Fetch", mock.Anything).Return(nil, errors.New("offline")).Once()

	_, err := f.composer.Checkout(context.Background(), service.CheckoutOptions{})
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestComposer_Checkout_RequestedAddressWins(t *testing.T) {
	f := newComposerFixture(t)
	ctx := context.Background()
	_, err := f.cart.AddToCart(ctx, margherita(), false)
	assert.NoError(t, err)
	f.remote.On("Fetch", mock.Anything).Return(nil, errors.New("offline")).Once()

	f.addresses.On("Addresses", mock.Anything).Return(defaultAddress(), nil).Once()
	f.orders.On("Place", mock.Anything, mock.MatchedBy(func(req domain.OrderRequest) bool {
		return req.AddressID == "addr-2"
	})).Return(&domain.OrderReceipt{ID: 5}, nil).Once()
	f.remote.On("Clear", mock.Anything).Return(nil).Once()

	result, err := f.composer.Checkout(ctx, service.CheckoutOptions{AddressID: "addr-2"})
	assert.NoError(t, err)
	assert.Len(t, result.Placed, 1)
}
