package swipe

import (
	"context"
	"fmt"

	"github.com/astrodate/astrodate-backend/internal/cache"
	"github.com/astrodate/astrodate-backend/internal/domain"
	"github.com/astrodate/astrodate-backend/internal/infrastructure/wingman"
	"github.com/astrodate/astrodate-backend/internal/logger"
	"github.com/astrodate/astrodate-backend/internal/repository"
	"github.com/astrodate/astrodate-backend/internal/zodiac"
)

type SwipeUseCase struct {
	swipeRepo repository.SwipeRepository
	userRepo  repository.UserRepository
	signs     *zodiac.Index
	likeCache *cache.LikeCounter
	wingman   *wingman.Client
}

func NewSwipeUseCase(
	swipeRepo repository.SwipeRepository,
	userRepo repository.UserRepository,
	signs *zodiac.Index,
	likeCache *cache.LikeCounter,
	wingmanClient *wingman.Client,
) *SwipeUseCase {
	return &SwipeUseCase{
		swipeRepo: swipeRepo,
		userRepo:  userRepo,
		signs:     signs,
		likeCache: likeCache,
		wingman:   wingmanClient,
	}
}

// SwipeResponse represents the result of a swipe action.
type SwipeResponse struct {
	Message           string        `json:"message"`
	MatchID           int           `json:"match_id"`
	IsMutual          bool          `json:"is_mutual"`
	CompatibilityNote string        `json:"compatibility_note,omitempty"`
	Swipe             *domain.Swipe `json:"swipe"`
}

// RecordSwipe records actor -> target with the given polarity.
// Idempotent per ordered pair: a repeated swipe returns the stored
// record and never overwrites its liked flag, so a dislike cannot be
// turned into a like by swiping again.
//
// After a new like it checks whether the target already liked the
// actor back; if so the response reports a mutual match. The check is
// read-only.
func (uc *SwipeUseCase) RecordSwipe(ctx context.Context, actorID, targetID int, isLike bool) (*SwipeResponse, error) {
	if actorID == targetID {
		return nil, domain.ErrCannotSwipeSelf
	}
	if _, err := uc.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	swipe := &domain.Swipe{ActorID: actorID, TargetID: targetID, IsLike: isLike}
	created, err := uc.swipeRepo.Create(ctx, swipe)
	if err != nil {
		return nil, fmt.Errorf("failed to record swipe: %w", err)
	}

	resp := &SwipeResponse{
		Message: "Swipe recorded",
		MatchID: swipe.ID,
		Swipe:   swipe,
	}

	if created && swipe.IsLike && uc.likeCache != nil {
		if err := uc.likeCache.Incr(ctx, targetID); err != nil {
			logger.Warn("failed to bump like counter", "target_id", targetID, "err", err)
		}
	}

	if swipe.IsLike {
		mutual, err := uc.swipeRepo.HasLiked(ctx, targetID, actorID)
		if err != nil {
			logger.Error("mutual like check failed", "actor_id", actorID, "target_id", targetID, "err", err)
			return resp, nil
		}
		if mutual {
			resp.IsMutual = true
			resp.Message = "It's a match!"
			resp.CompatibilityNote = uc.matchNote(ctx, actorID, targetID)
		}
	}

	return resp, nil
}

// matchNote produces the optional wingman blurb for a mutual match.
// Any failure degrades to an empty note.
func (uc *SwipeUseCase) matchNote(ctx context.Context, actorID, targetID int) string {
	if uc.wingman == nil {
		return ""
	}

	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil || actor.ZodiacSignID == nil {
		return ""
	}
	target, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil || target.ZodiacSignID == nil {
		return ""
	}
	actorSign, ok := uc.signs.Sign(*actor.ZodiacSignID)
	if !ok {
		return ""
	}
	targetSign, ok := uc.signs.Sign(*target.ZodiacSignID)
	if !ok {
		return ""
	}

	note, err := uc.wingman.MatchNote(ctx, actorSign, targetSign)
	if err != nil {
		logger.Warn("wingman note generation failed", "err", err)
		return ""
	}
	return note
}

// LikedBy returns the users who liked userID.
func (uc *SwipeUseCase) LikedBy(ctx context.Context, userID int) ([]*domain.User, error) {
	swipes, err := uc.swipeRepo.GetLikesReceived(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes received: %w", err)
	}
	ids := make([]int, 0, len(swipes))
	for _, s := range swipes {
		ids = append(ids, s.ActorID)
	}
	return uc.userRepo.GetByIDs(ctx, ids)
}

// LikedByMe returns the users userID has liked.
func (uc *SwipeUseCase) LikedByMe(ctx context.Context, userID int) ([]*domain.User, error) {
	swipes, err := uc.swipeRepo.GetLikesGiven(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes given: %w", err)
	}
	ids := make([]int, 0, len(swipes))
	for _, s := range swipes {
		ids = append(ids, s.TargetID)
	}
	return uc.userRepo.GetByIDs(ctx, ids)
}

// CountLikesReceived is cache-first: Redis hit wins, otherwise the DB
// is consulted and the counter written back with a fresh TTL.
func (uc *SwipeUseCase) CountLikesReceived(ctx context.Context, userID int) (int64, error) {
	if uc.likeCache != nil {
		if count, ok, err := uc.likeCache.Get(ctx, userID); err == nil && ok {
			return count, nil
		}
	}

	count, err := uc.swipeRepo.CountLikesReceived(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	if uc.likeCache != nil {
		if err := uc.likeCache.Set(ctx, userID, count); err != nil {
			logger.Warn("failed to cache like counter", "user_id", userID, "err", err)
		}
	}
	return count, nil
}
