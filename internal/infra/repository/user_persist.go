package repository

import (
	"context"
	"strings"
	"sync"

	"app/internal/domain/model"
	"app/internal/persist"
	repo "app/internal/repository"
)

// 全ユーザーを1つのキーに持つ
const usersKey = "users"

// PersistUserRepositoryは永続ストア上のUserRepository実装。
// 値は email（小文字）→ User のマップ。壊れていれば空から始める。
type PersistUserRepository struct {
	mu    sync.Mutex
	store persist.Store
}

// DI
func NewPersistUserRepository(store persist.Store) *PersistUserRepository {
	return &PersistUserRepository{store: store}
}

func (r *PersistUserRepository) load(ctx context.Context) map[string]model.User {
	users := make(map[string]model.User)
	_, _ = r.store.Load(ctx, usersKey, &users)
	return users
}

func (r *PersistUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load(ctx)
	u, ok := users[strings.ToLower(email)]
	if !ok {
		return nil, repo.ErrUserNotFound
	}
	return &u, nil
}

func (r *PersistUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load(ctx)
	for _, u := range users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, repo.ErrUserNotFound
}

func (r *PersistUserRepository) Create(ctx context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load(ctx)
	key := strings.ToLower(u.Email)
	if _, ok := users[key]; ok {
		return repo.ErrEmailTaken
	}
	users[key] = *u
	return r.store.Save(ctx, usersKey, users)
}

func (r *PersistUserRepository) Update(ctx context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load(ctx)
	key := strings.ToLower(u.Email)
	if _, ok := users[key]; !ok {
		return repo.ErrUserNotFound
	}
	users[key] = *u
	return r.store.Save(ctx, usersKey, users)
}
