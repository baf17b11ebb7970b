// Package memory provides in-memory repository implementations with
// the same contracts as the Postgres ones. They back the use-case and
// router tests, which must not depend on a running database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/astrodate/astrodate-backend/internal/domain"
	"github.com/astrodate/astrodate-backend/internal/repository"
)

type UserRepository struct {
	mu     sync.Mutex
	nextID int
	users  map[int]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1, users: make(map[int]*domain.User)}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	user.ID = r.nextID
	r.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id int) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) GetByIDs(_ context.Context, ids []int) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepository) List(_ context.Context, limit, offset int) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []*domain.User
	for _, u := range r.users {
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *UserRepository) ListBySignIDs(_ context.Context, signIDs, excludeIDs []int) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	signSet := make(map[int]bool, len(signIDs))
	for _, id := range signIDs {
		signSet[id] = true
	}
	excluded := make(map[int]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	var out []*domain.User
	for _, u := range r.users {
		if u.ZodiacSignID == nil || !signSet[*u.ZodiacSignID] || excluded[u.ID] {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
