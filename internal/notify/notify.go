package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Sinkはカート・ウィッシュリスト操作後のユーザー向けフィードバックの送り先。
// コア側は呼ぶだけで、表示方法はここでは決めない。
type Sink interface {
	Success(title, message string)
	Error(title, message string)
	Warning(title, message string)
	Info(title, message string)
}

// 古い通知から捨てる上限
const feedLimit = 50

// FeedはSinkのインメモリ実装。
// 通知の一覧と購読（変更のたびに全量を配る）、個別のdismissを持つ。
type Feed struct {
	mu      sync.Mutex
	items   []Notification
	subs    map[int]func([]Notification)
	nextSub int
	now     func() time.Time
}

func NewFeed() *Feed {
	return &Feed{
		subs: make(map[int]func([]Notification)),
		now:  time.Now,
	}
}

var _ Sink = (*Feed)(nil)

func (f *Feed) Success(title, message string) { f.push(TypeSuccess, title, message) }
func (f *Feed) Error(title, message string)   { f.push(TypeError, title, message) }
func (f *Feed) Warning(title, message string) { f.push(TypeWarning, title, message) }
func (f *Feed) Info(title, message string)    { f.push(TypeInfo, title, message) }

func (f *Feed) push(typ Type, title, message string) {
	f.mu.Lock()
	f.items = append(f.items, Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: f.now(),
	})
	if len(f.items) > feedLimit {
		f.items = f.items[len(f.items)-feedLimit:]
	}
	snap, subs := f.snapshotLocked()
	f.mu.Unlock()

	publish(subs, snap)
}

func (f *Feed) Items() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, len(f.items))
	copy(out, f.items)
	return out
}

// Dismissは1件削除。見つかったかを返す。
func (f *Feed) Dismiss(id string) bool {
	f.mu.Lock()
	found := false
	for i, n := range f.items {
		if n.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		f.mu.Unlock()
		return false
	}
	snap, subs := f.snapshotLocked()
	f.mu.Unlock()

	publish(subs, snap)
	return true
}

// Subscribeは解除関数を返す。通知中の購読・解除も安全。
func (f *Feed) Subscribe(fn func([]Notification)) func() {
	f.mu.Lock()
	id := f.nextSub
	f.nextSub++
	f.subs[id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *Feed) snapshotLocked() ([]Notification, []func([]Notification)) {
	snap := make([]Notification, len(f.items))
	copy(snap, f.items)

	subs := make([]func([]Notification), 0, len(f.subs))
	for _, fn := range f.subs {
		subs = append(subs, fn)
	}
	return snap, subs
}

func publish(subs []func([]Notification), snap []Notification) {
	for _, fn := range subs {
		fn(snap)
	}
}
