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

type FavoritesService struct {
	store  store.Store
	remote RemoteFavorites
}

func NewFavoritesService(st store.Store, remote RemoteFavorites) *FavoritesService {
	return &FavoritesService{store: st, remote: remote}
}

func (s *FavoritesService) Favorites() []domain.FavoriteEntry {
	entries := []domain.FavoriteEntry{}
	_ = s.store.Get(store.CollectionFavorites, &entries)
	return entries
}

// AddToFavorites saves the item template. At most one entry per item: adding
// an item that is already saved is a no-op.
func (s *FavoritesService) AddToFavorites(ctx context.Context, entry domain.FavoriteEntry, syncRemote bool) ([]domain.FavoriteEntry, error) {
	entries := s.Favorites()
	for _, e := range entries {
		if e.ItemID == entry.ItemID {
			return entries, nil
		}
	}
	entry.ID = uuid.NewString()
	entry.AddedAt = time.Now()
	entries = append(entries, entry)

	if err := s.store.Save(store.CollectionFavorites, entries); err != nil {
		return nil, err
	}

	if syncRemote && s.remote != nil {
		if err := s.remote.Add(ctx, entry.ItemID); err != nil {
			log.Printf("Warning: favorite add not mirrored remotely: %v", err)
			return entries, &SyncError{Op: "add favorite", Err: err}
		}
	}
	return entries, nil
}

func (s *FavoritesService) RemoveFromFavorites(ctx context.Context, itemID int, syncRemote bool) ([]domain.FavoriteEntry, error) {
	entries := s.Favorites()
	kept := entries[:0]
	for _, e := range entries {
		if e.ItemID != itemID {
			kept = append(kept, e)
		}
	}
	if err := s.store.Save(store.CollectionFavorites, kept); err != nil {
		return nil, err
	}

	if syncRemote && s.remote != nil {
		if err := s.remote.Remove(ctx, itemID); err != nil {
			log.Printf("Warning: favorite removal not mirrored remotely: %v", err)
			return kept, &SyncError{Op: "remove favorite", Err: err}
		}
	}
	return kept, nil
}

func (s *FavoritesService) ClearFavorites(ctx context.Context, syncRemote bool) error {
	entries := s.Favorites()
	if err := s.store.Save(store.CollectionFavorites, []domain.FavoriteEntry{}); err != nil {
		return err
	}
	if syncRemote && s.remote != nil {
		for _, e := range entries {
			if err := s.remote.Remove(ctx, e.ItemID); err != nil {
				log.Printf("Warning: favorite clear not fully mirrored remotely: %v", err)
				return &SyncError{Op: "clear favorites", Err: err}
			}
		}
	}
	return nil
}

// Rehydrate overwrites local favorites with the remote authoritative set.
func (s *FavoritesService) Rehydrate(ctx context.Context) error {
	remote, err := s.remote.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch remote favorites: %w", err)
	}
	entries := make([]domain.FavoriteEntry, 0, len(remote))
	for _, e := range remote {
		entries = append(entries, domain.FlattenFavorite(e))
	}
	return s.store.Save(store.CollectionFavorites, entries)
}
