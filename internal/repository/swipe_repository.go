package repository

import (
	"context"

	"github.com/astrodate/astrodate-backend/internal/domain"
)

type SwipeRepository interface {
	// Create persists a new swipe. If a row for (actor, target) already
	// exists the stored row is returned unchanged and created reports
	// false; the liked flag is never overwritten.
	Create(ctx context.Context, swipe *domain.Swipe) (created bool, err error)
	GetByUsers(ctx context.Context, actorID, targetID int) (*domain.Swipe, error)
	// HasLiked reports whether a liked=true swipe actor -> target exists.
	HasLiked(ctx context.Context, actorID, targetID int) (bool, error)
	// GetSwipedTargetIDs returns every target the actor has swiped on,
	// regardless of polarity.
	GetSwipedTargetIDs(ctx context.Context, actorID int) ([]int, error)
	// GetLikesReceived returns liked=true swipes targeting userID.
	GetLikesReceived(ctx context.Context, userID int) ([]*domain.Swipe, error)
	// GetLikesGiven returns liked=true swipes made by userID.
	GetLikesGiven(ctx context.Context, userID int) ([]*domain.Swipe, error)
	CountLikesReceived(ctx context.Context, userID int) (int64, error)
}
