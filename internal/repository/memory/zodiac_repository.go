package memory

import (
	"context"
	"sync"

	"github.com/astrodate/astrodate-backend/internal/domain"
	"github.com/astrodate/astrodate-backend/internal/repository"
)

type ZodiacRepository struct {
	mu    sync.Mutex
	signs []domain.ZodiacSign
	edges []domain.Compatibility
}

func NewZodiacRepository() *ZodiacRepository {
	return &ZodiacRepository{}
}

var _ repository.ZodiacRepository = (*ZodiacRepository)(nil)

func (r *ZodiacRepository) ListSigns(_ context.Context) ([]domain.ZodiacSign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.ZodiacSign, len(r.signs))
	copy(out, r.signs)
	return out, nil
}

func (r *ZodiacRepository) ListCompatibilities(_ context.Context) ([]domain.Compatibility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Compatibility, len(r.edges))
	copy(out, r.edges)
	return out, nil
}

func (r *ZodiacRepository) ReplaceAll(_ context.Context, signs []domain.ZodiacSign, edges []domain.Compatibility) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.signs = make([]domain.ZodiacSign, len(signs))
	copy(r.signs, signs)
	r.edges = make([]domain.Compatibility, len(edges))
	copy(r.edges, edges)
	return nil
}
