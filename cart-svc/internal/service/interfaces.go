package service

import (
	"context"

	"quickbite/cart-svc/internal/domain"
)

type CartServiceInterface interface {
	Cart() []domain.CartLine
	AddToCart(ctx context.Context, line domain.CartLine, syncRemote bool) ([]domain.CartLine, error)
	UpdateCartItem(id string, patch CartPatch) ([]domain.CartLine, error)
	RemoveFromCart(ctx context.Context, id string, syncRemote bool) ([]domain.CartLine, error)
	ClearCart(ctx context.Context, syncRemote bool) error
	Rehydrate(ctx context.Context) error
	SyncForCheckout(ctx context.Context) []domain.CartLine
}

type FavoritesServiceInterface interface {
	Favorites() []domain.FavoriteEntry
	AddToFavorites(ctx context.Context, entry domain.FavoriteEntry, syncRemote bool) ([]domain.FavoriteEntry, error)
	RemoveFromFavorites(ctx context.Context, itemID int, syncRemote bool) ([]domain.FavoriteEntry, error)
	ClearFavorites(ctx context.Context, syncRemote bool) error
	Rehydrate(ctx context.Context) error
}

type ComposerInterface interface {
	Checkout(ctx context.Context, opts CheckoutOptions) (*domain.CheckoutResult, error)
}

// RemoteCart is the authoritative cart service. Every call is advisory for
// the session except the checkout-time fetch.
type RemoteCart interface {
	Fetch(ctx context.Context) ([]domain.RemoteCartEntry, error)
	Add(ctx context.Context, itemID, quantity int, customizations domain.Customizations) error
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type RemoteFavorites interface {
	Fetch(ctx context.Context) ([]domain.RemoteFavoriteEntry, error)
	Add(ctx context.Context, itemID int) error
	Remove(ctx context.Context, itemID int) error
}

// OrderPlacer creates one order per restaurant group.
type OrderPlacer interface {
	Place(ctx context.Context, req domain.OrderRequest) (*domain.OrderReceipt, error)
}

// AddressBook is the external address collaborator; the composer only needs
// the default-or-first delivery address.
type AddressBook interface {
	Addresses(ctx context.Context) ([]domain.Address, error)
}

var _ CartServiceInterface = (*CartService)(nil)
var _ FavoritesServiceInterface = (*FavoritesService)(nil)
var _ ComposerInterface = (*Composer)(nil)
