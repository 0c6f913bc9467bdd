package store

import (
	"context"
	"sync"

	"app/internal/domain/model"
	"app/internal/persist"
)

// WishlistStoreは1人の持ち主のウィッシュリスト。
// 商品IDの集合（追加順を保つ）。同じIDは1件まで。
type WishlistStore struct {
	mu      sync.Mutex
	persist persist.Store
	key     string

	items map[string]model.Product
	order []string

	subs    map[int]func([]model.Product)
	nextSub int
}

// NewWishlistStoreは保存済みの状態を読み込む。無い・壊れている場合は空から始める。
func NewWishlistStore(ctx context.Context, p persist.Store, key string) *WishlistStore {
	s := &WishlistStore{
		persist: p,
		key:     key,
		items:   make(map[string]model.Product),
		subs:    make(map[int]func([]model.Product)),
	}

	var saved []model.Product
	if ok, _ := p.Load(ctx, key, &saved); ok {
		for _, p := range saved {
			if p.ID == "" {
				continue
			}
			if _, dup := s.items[p.ID]; dup {
				continue
			}
			s.items[p.ID] = p
			s.order = append(s.order, p.ID)
		}
	}
	return s
}

// Addは冪等。既に入っている商品なら状態は変わらず、falseを返す。
func (s *WishlistStore) Add(ctx context.Context, p model.Product) bool {
	s.mu.Lock()
	if _, ok := s.items[p.ID]; ok {
		s.mu.Unlock()
		return false
	}
	s.items[p.ID] = p
	s.order = append(s.order, p.ID)
	snap, subs := s.commitLocked(ctx)
	s.mu.Unlock()

	publishWishlist(subs, snap)
	return true
}

// Removeは冪等。削除したかを返す。
func (s *WishlistStore) Remove(ctx context.Context, productID string) bool {
	s.mu.Lock()
	if _, ok := s.items[productID]; !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.items, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	snap, subs := s.commitLocked(ctx)
	s.mu.Unlock()

	publishWishlist(subs, snap)
	return true
}

// ContainsはO(1)の所属チェック。
func (s *WishlistStore) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.items[productID]
	return ok
}

func (s *WishlistStore) Get(productID string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.items[productID]
	return p, ok
}

// Itemsは追加順の一覧を返す。
func (s *WishlistStore) Items() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLocked()
}

func (s *WishlistStore) Subscribe(fn func([]model.Product)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *WishlistStore) itemsLocked() []model.Product {
	out := make([]model.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

func (s *WishlistStore) commitLocked(ctx context.Context) ([]model.Product, []func([]model.Product)) {
	snap := s.itemsLocked()
	_ = s.persist.Save(ctx, s.key, snap)

	subs := make([]func([]model.Product), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return snap, subs
}

func publishWishlist(subs []func([]model.Product), snap []model.Product) {
	for _, fn := range subs {
		fn(snap)
	}
}
