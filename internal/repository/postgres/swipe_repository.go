package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/astrodate/astrodate-backend/internal/domain"
	"github.com/astrodate/astrodate-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

// Create inserts the swipe, relying on the UNIQUE(actor_id, target_id)
// constraint for idempotence: a concurrent or repeated insert hits
// ON CONFLICT DO NOTHING and the stored row is re-read instead. The
// liked flag of an existing row is never touched.
func (r *swipeRepository) Create(ctx context.Context, swipe *domain.Swipe) (bool, error) {
	query := `
		INSERT INTO swipes (actor_id, target_id, is_like)
		VALUES ($1, $2, $3)
		ON CONFLICT (actor_id, target_id) DO NOTHING
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, swipe.ActorID, swipe.TargetID, swipe.IsLike).
		Scan(&swipe.ID, &swipe.CreatedAt)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	existing, err := r.GetByUsers(ctx, swipe.ActorID, swipe.TargetID)
	if err != nil {
		return false, err
	}
	*swipe = *existing
	return false, nil
}

func (r *swipeRepository) GetByUsers(ctx context.Context, actorID, targetID int) (*domain.Swipe, error) {
	var swipe domain.Swipe
	query := `SELECT * FROM swipes WHERE actor_id = $1 AND target_id = $2`
	err := r.db.GetContext(ctx, &swipe, query, actorID, targetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &swipe, nil
}

func (r *swipeRepository) HasLiked(ctx context.Context, actorID, targetID int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM swipes
			WHERE actor_id = $1 AND target_id = $2 AND is_like = true
		)
	`
	err := r.db.GetContext(ctx, &exists, query, actorID, targetID)
	return exists, err
}

func (r *swipeRepository) GetSwipedTargetIDs(ctx context.Context, actorID int) ([]int, error) {
	var ids []int
	query := `SELECT target_id FROM swipes WHERE actor_id = $1`
	err := r.db.SelectContext(ctx, &ids, query, actorID)
	return ids, err
}

func (r *swipeRepository) GetLikesReceived(ctx context.Context, userID int) ([]*domain.Swipe, error) {
	var swipes []*domain.Swipe
	query := `
		SELECT * FROM swipes
		WHERE target_id = $1 AND is_like = true
		ORDER BY created_at DESC, id DESC
	`
	err := r.db.SelectContext(ctx, &swipes, query, userID)
	return swipes, err
}

func (r *swipeRepository) GetLikesGiven(ctx context.Context, userID int) ([]*domain.Swipe, error) {
	var swipes []*domain.Swipe
	query := `
		SELECT * FROM swipes
		WHERE actor_id = $1 AND is_like = true
		ORDER BY created_at DESC, id DESC
	`
	err := r.db.SelectContext(ctx, &swipes, query, userID)
	return swipes, err
}

func (r *swipeRepository) CountLikesReceived(ctx context.Context, userID int) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM swipes WHERE target_id = $1 AND is_like = true`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}
