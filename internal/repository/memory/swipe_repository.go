package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/astrodate/astrodate-backend/internal/domain"
	"github.com/astrodate/astrodate-backend/internal/repository"
)

type swipeKey struct {
	actorID  int
	targetID int
}

type SwipeRepository struct {
	mu     sync.Mutex
	nextID int
	swipes map[swipeKey]*domain.Swipe
}

func NewSwipeRepository() *SwipeRepository {
	return &SwipeRepository{nextID: 1, swipes: make(map[swipeKey]*domain.Swipe)}
}

var _ repository.SwipeRepository = (*SwipeRepository)(nil)

func (r *SwipeRepository) Create(_ context.Context, swipe *domain.Swipe) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := swipeKey{actorID: swipe.ActorID, targetID: swipe.TargetID}
	if existing, ok := r.swipes[key]; ok {
		*swipe = *existing
		return false, nil
	}

	swipe.ID = r.nextID
	r.nextID++
	swipe.CreatedAt = time.Now().UTC()
	stored := *swipe
	r.swipes[key] = &stored
	return true, nil
}

func (r *SwipeRepository) GetByUsers(_ context.Context, actorID, targetID int) (*domain.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.swipes[swipeKey{actorID: actorID, targetID: targetID}]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *SwipeRepository) HasLiked(_ context.Context, actorID, targetID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.swipes[swipeKey{actorID: actorID, targetID: targetID}]
	return ok && s.IsLike, nil
}

func (r *SwipeRepository) GetSwipedTargetIDs(_ context.Context, actorID int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []int
	for key := range r.swipes {
		if key.actorID == actorID {
			ids = append(ids, key.targetID)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

func (r *SwipeRepository) GetLikesReceived(_ context.Context, userID int) ([]*domain.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Swipe
	for _, s := range r.swipes {
		if s.TargetID == userID && s.IsLike {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *SwipeRepository) GetLikesGiven(_ context.Context, userID int) ([]*domain.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Swipe
	for _, s := range r.swipes {
		if s.ActorID == userID && s.IsLike {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *SwipeRepository) CountLikesReceived(_ context.Context, userID int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, s := range r.swipes {
		if s.TargetID == userID && s.IsLike {
			count++
		}
	}
	return count, nil
}
