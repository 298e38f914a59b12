package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"quickbite/cart-svc/internal/domain"
	"quickbite/cart-svc/internal/store"
)

// SyncError reports a failed remote mirror of a mutation that already
// committed locally. Callers may inspect or log it; the returned collection
// is valid either way.
type SyncError struct {
	Op  string
	Err error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("remote sync %s: %v", e.Op, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// CartPatch is a partial update applied locally only. Remote quantities catch
// up on the next rehydrate.
type CartPatch struct {
	Quantity *int `json:"quantity,omitempty"`
}

type CartService struct {
	store  store.Store
	remote RemoteCart
}

func NewCartService(st store.Store, remote RemoteCart) *CartService {
	return &CartService{store: st, remote: remote}
}

func (s *CartService) Cart() []domain.CartLine {
	lines := []domain.CartLine{}
	_ = s.store.Get(store.CollectionCart, &lines)
	return lines
}

// AddToCart merges the line into the cart: an existing line with the same
// item and selections gets its quantity bumped, anything else is appended
// with a fresh id. Local persist happens first and is the call's outcome;
// the remote mirror is best-effort and reported as a *SyncError alongside
// the updated collection.
func (s *CartService) AddToCart(ctx context.Context, line domain.CartLine, syncRemote bool) ([]domain.CartLine, error) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	if line.Customizations == nil {
		line.Customizations = domain.Customizations{}
	}
	line.RecalcPrices()

	lines := s.Cart()
	merged := false
	for i := range lines {
		if lines[i].LineKey() == line.LineKey() {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		line.ID = uuid.NewString()
		line.AddedAt = time.Now()
		lines = append(lines, line)
	}

	if err := s.store.Save(store.CollectionCart, lines); err != nil {
		return nil, err
	}

	if syncRemote && s.remote != nil {
		if err := s.remote.Add(ctx, line.ItemID, line.Quantity, line.Customizations); err != nil {
			log.Printf("Warning: cart add not mirrored remotely: %v", err)
			return lines, &SyncError{Op: "add", Err: err}
		}
	}
	return lines, nil
}

// UpdateCartItem merges the patch into the line in place. Unknown ids are a
// no-op. Local only.
func (s *CartService) UpdateCartItem(id string, patch CartPatch) ([]domain.CartLine, error) {
	lines := s.Cart()
	for i := range lines {
		if lines[i].ID != id {
			continue
		}
		if patch.Quantity != nil && *patch.Quantity >= 1 {
			lines[i].Quantity = *patch.Quantity
		}
		lines[i].RecalcPrices()
		break
	}
	if err := s.store.Save(store.CollectionCart, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// RemoveFromCart filters the line out. Removing an absent id is a no-op.
func (s *CartService) RemoveFromCart(ctx context.Context, id string, syncRemote bool) ([]domain.CartLine, error) {
	lines := s.Cart()
	kept := lines[:0]
	for _, l := range lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if err := s.store.Save(store.CollectionCart, kept); err != nil {
		return nil, err
	}

	if syncRemote && s.remote != nil {
		if err := s.remote.Remove(ctx, id); err != nil {
			log.Printf("Warning: cart removal not mirrored remotely: %v", err)
			return kept, &SyncError{Op: "remove", Err: err}
		}
	}
	return kept, nil
}

func (s *CartService) ClearCart(ctx context.Context, syncRemote bool) error {
	if err := s.store.Save(store.CollectionCart, []domain.CartLine{}); err != nil {
		return err
	}
	if syncRemote && s.remote != nil {
		if err := s.remote.Clear(ctx); err != nil {
			log.Printf("Warning: cart clear not mirrored remotely: %v", err)
			return &SyncError{Op: "clear", Err: err}
		}
	}
	return nil
}

// Rehydrate overwrites the local cart wholesale with the authoritative remote
// cart. Called once per authenticated session start. On fetch failure the
// local snapshot is left untouched.
func (s *CartService) Rehydrate(ctx context.Context) error {
	entries, err := s.remote.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch remote cart: %w", err)
	}
	lines := make([]domain.CartLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, domain.FlattenCartEntry(e))
	}
	return s.store.Save(store.CollectionCart, lines)
}

// SyncForCheckout refreshes pricing from the remote cart right before order
// placement. A failed fetch falls back to the local snapshot so checkout is
// never blocked on the refresh.
func (s *CartService) SyncForCheckout(ctx context.Context) []domain.CartLine {
	if err := s.Rehydrate(ctx); err != nil {
		log.Printf("Warning: checkout refresh failed, using local snapshot: %v", err)
	}
	return s.Cart()
}
