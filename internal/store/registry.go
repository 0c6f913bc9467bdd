package store

import (
	"context"
	"sync"

	"app/internal/persist"
)

// Registryはユーザーごとにカートとウィッシュリストを1つずつ持たせる。
// 保存キーは cart:<userID> / wishlist:<userID>。
type Registry struct {
	mu        sync.Mutex
	persist   persist.Store
	carts     map[string]*CartStore
	wishlists map[string]*WishlistStore
}

// DI
func NewRegistry(p persist.Store) *Registry {
	return &Registry{
		persist:   p,
		carts:     make(map[string]*CartStore),
		wishlists: make(map[string]*WishlistStore),
	}
}

// Cartは初回アクセス時に保存済み状態から作る。
func (r *Registry) Cart(ctx context.Context, userID string) *CartStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.carts[userID]; ok {
		return s
	}
	s := NewCartStore(ctx, r.persist, "cart:"+userID)
	r.carts[userID] = s
	return s
}

func (r *Registry) Wishlist(ctx context.Context, userID string) *WishlistStore {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.wishlists[userID]; ok {
		return s
	}
	s := NewWishlistStore(ctx, r.persist, "wishlist:"+userID)
	r.wishlists[userID] = s
	return s
}
