package repository

import (
	"context"

	"github.com/astrodate/astrodate-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []int) ([]*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
	// ListBySignIDs returns users whose zodiac sign is one of signIDs,
	// excluding the given user IDs. Users without a resolved sign are
	// never returned.
	ListBySignIDs(ctx context.Context, signIDs, excludeIDs []int) ([]*domain.User, error)
}
