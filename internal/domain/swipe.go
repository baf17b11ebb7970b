package domain

import "time"

// Swipe is a directional like/dislike from one user toward another.
// At most one row exists per (actor, target) pair; a repeated swipe
// returns the stored row unchanged. Rows are never updated or deleted.
type Swipe struct {
	ID        int       `json:"id" db:"id"`
	ActorID   int       `json:"actor_id" db:"actor_id"`
	TargetID  int       `json:"target_id" db:"target_id"`
	IsLike    bool      `json:"is_like" db:"is_like"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
