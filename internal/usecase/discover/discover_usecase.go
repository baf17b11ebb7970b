package discover

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/astrodate/astrodate-backend/internal/domain"
	"github.com/astrodate/astrodate-backend/internal/repository"
	"github.com/astrodate/astrodate-backend/internal/zodiac"
)

// Rand is the slice of math/rand the engine needs; *rand.Rand
// satisfies it and tests can plug a deterministic source.
type Rand interface {
	Intn(n int) int
}

type DiscoverUseCase struct {
	userRepo  repository.UserRepository
	swipeRepo repository.SwipeRepository
	signs     *zodiac.Index
	rng       Rand
}

func NewDiscoverUseCase(
	userRepo repository.UserRepository,
	swipeRepo repository.SwipeRepository,
	signs *zodiac.Index,
	rng Rand,
) *DiscoverUseCase {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DiscoverUseCase{
		userRepo:  userRepo,
		swipeRepo: swipeRepo,
		signs:     signs,
		rng:       rng,
	}
}

// NextCandidate picks one user the requester could match with: a user
// whose sign is compatible with the requester's, excluding the
// requester and everyone already swiped on (either polarity). The pick
// is uniformly random over the pool, so repeated calls with identical
// state may return different candidates.
//
// Returns (nil, nil) when there is no candidate: requester without a
// resolved sign, empty compatibility set, or exhausted pool. That is
// an expected outcome, not an error. Read-only: discovering never
// records a swipe.
func (uc *DiscoverUseCase) NextCandidate(ctx context.Context, requesterID int) (*domain.User, error) {
	requester, err := uc.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester.ZodiacSignID == nil {
		return nil, nil
	}

	compatible := uc.signs.CompatibleWith(*requester.ZodiacSignID)
	if len(compatible) == 0 {
		return nil, nil
	}

	swiped, err := uc.swipeRepo.GetSwipedTargetIDs(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load swiped targets: %w", err)
	}
	exclude := append(swiped, requesterID)

	candidates, err := uc.userRepo.ListBySignIDs(ctx, compatible, exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	return candidates[uc.rng.Intn(len(candidates))], nil
}
