package store

import (
	"context"
	"sync"

	"app/internal/domain/model"
	"app/internal/persist"
)

// CartStoreは1人の持ち主のカート。
// 商品IDごとに明細1つ（同じ商品の追加は数量加算）。並びは追加順を保つ。
// 変更のたびに全量を永続ストアへ書き戻す（write-through）。
type CartStore struct {
	mu      sync.Mutex
	persist persist.Store
	key     string

	items map[string]*model.CartItem
	order []string // 追加順の商品ID

	subs    map[int]func([]model.CartItem)
	nextSub int
}

// NewCartStoreは保存済みの状態を読み込んでカートを作る。
// 値が無い・壊れている場合は空のカートから始める。
func NewCartStore(ctx context.Context, p persist.Store, key string) *CartStore {
	s := &CartStore{
		persist: p,
		key:     key,
		items:   make(map[string]*model.CartItem),
		subs:    make(map[int]func([]model.CartItem)),
	}

	var saved []model.CartItem
	if ok, _ := p.Load(ctx, key, &saved); ok {
		for _, it := range saved {
			//壊れた明細は読み捨てる
			if it.Product.ID == "" || it.Quantity < 1 {
				continue
			}
			if _, dup := s.items[it.Product.ID]; dup {
				continue
			}
			cp := it
			s.items[cp.Product.ID] = &cp
			s.order = append(s.order, cp.Product.ID)
		}
	}
	return s
}

// Addは商品をカートに入れる。qtyは1以上（それ未満は何もしない）。
// 既に入っている商品は数量だけ加算し、スナップショットは最初の追加時点のまま。
func (s *CartStore) Add(ctx context.Context, p model.Product, qty int) {
	if qty < 1 {
		return
	}

	s.mu.Lock()
	if it, ok := s.items[p.ID]; ok {
		it.Quantity += qty
	} else {
		s.items[p.ID] = &model.CartItem{Product: p, Quantity: qty}
		s.order = append(s.order, p.ID)
	}
	snap, subs := s.commitLocked(ctx)
	s.mu.Unlock()

	publishCart(subs, snap)
}

// Removeは明細を削除する。無ければ何もしない。削除したかを返す。
func (s *CartStore) Remove(ctx context.Context, productID string) bool {
	s.mu.Lock()
	if _, ok := s.items[productID]; !ok {
		s.mu.Unlock()
		return false
	}
	s.deleteLocked(productID)
	snap, subs := s.commitLocked(ctx)
	s.mu.Unlock()

	publishCart(subs, snap)
	return true
}

// SetQuantityは数量を絶対値で設定する。0以下は削除と同じ。無いIDは何もしない。
// 削除になったかを返す。
func (s *CartStore) SetQuantity(ctx context.Context, productID string, qty int) bool {
	s.mu.Lock()
	it, ok := s.items[productID]
	if !ok {
		s.mu.Unlock()
		return false
	}

	removed := false
	if qty <= 0 {
		s.deleteLocked(productID)
		removed = true
	} else {
		it.Quantity = qty
	}
	snap, subs := s.commitLocked(ctx)
	s.mu.Unlock()

	publishCart(subs, snap)
	return removed
}

// Clearは全明細を削除する。
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = make(map[string]*model.CartItem)
	s.order = nil
	snap, subs := s.commitLocked(ctx)
	s.mu.Unlock()

	publishCart(subs, snap)
}

// Itemsは追加順の明細一覧を返す。
func (s *CartStore) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLocked()
}

func (s *CartStore) Get(productID string) (model.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[productID]
	if !ok {
		return model.CartItem{}, false
	}
	return *it, true
}

// TotalItemsは数量の合計。読むたびに計算する。
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPriceはΣ(価格×数量)。読むたびに計算する（キャッシュしない）。
func (s *CartStore) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, it := range s.items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}

// Subscribeは変更後のスナップショットを受け取る購読を登録し、解除関数を返す。
// 通知中のSubscribe/解除も安全（通知はリスナーのコピーに対して行う）。
func (s *CartStore) Subscribe(fn func([]model.CartItem)) func() {
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

func (s *CartStore) deleteLocked(productID string) {
	delete(s.items, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *CartStore) itemsLocked() []model.CartItem {
	out := make([]model.CartItem, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.items[id])
	}
	return out
}

// 変更のたびに書き戻す。書き込み失敗はUIに出さない（メモリ上の状態が正）。
func (s *CartStore) commitLocked(ctx context.Context) ([]model.CartItem, []func([]model.CartItem)) {
	snap := s.itemsLocked()
	_ = s.persist.Save(ctx, s.key, snap)

	subs := make([]func([]model.CartItem), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return snap, subs
}

func publishCart(subs []func([]model.CartItem), snap []model.CartItem) {
	for _, fn := range subs {
		fn(snap)
	}
}
