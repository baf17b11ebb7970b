package swipe_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/astrodate/astrodate-backend/internal/cache"
	"github.com/astrodate/astrodate-backend/internal/domain"
	"github.com/astrodate/astrodate-backend/internal/repository/memory"
	"github.com/astrodate/astrodate-backend/internal/usecase/swipe"
	"github.com/astrodate/astrodate-backend/internal/zodiac"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc        *swipe.SwipeUseCase
	userRepo  *memory.UserRepository
	swipeRepo *memory.SwipeRepository
}

func newFixture(t *testing.T, likeCache *cache.LikeCounter) *fixture {
	t.Helper()
	userRepo := memory.NewUserRepository()
	swipeRepo := memory.NewSwipeRepository()
	idx := zodiac.NewIndex(zodiac.ReferenceSigns(), zodiac.ReferenceCompatibilities())
	return &fixture{
		uc:        swipe.NewSwipeUseCase(swipeRepo, userRepo, idx, likeCache, nil),
		userRepo:  userRepo,
		swipeRepo: swipeRepo,
	}
}

func (f *fixture) seedUser(t *testing.T, email string, signID int) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:        email,
		BirthDate:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		ZodiacSignID: &signID,
	}
	require.NoError(t, f.userRepo.Create(context.Background(), user))
	return user
}

func newTestCache(t *testing.T) (*cache.LikeCounter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewLikeCounter(client), mr
}

func TestRecordSwipeSelf(t *testing.T) {
	f := newFixture(t, nil)
	user := f.seedUser(t, "a@example.com", zodiac.Aries)

	_, err := f.uc.RecordSwipe(context.Background(), user.ID, user.ID, true)
	assert.ErrorIs(t, err, domain.ErrCannotSwipeSelf)
}

func TestRecordSwipeMissingTarget(t *testing.T) {
	f := newFixture(t, nil)
	user := f.seedUser(t, "a@example.com", zodiac.Aries)

	_, err := f.uc.RecordSwipe(context.Background(), user.ID, user.ID+1, true)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRecordSwipeIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	actor := f.seedUser(t, "a@example.com", zodiac.Aries)
	target := f.seedUser(t, "b@example.com", zodiac.Leo)

	first, err := f.uc.RecordSwipe(ctx, actor.ID, target.ID, true)
	require.NoError(t, err)
	require.True(t, first.Swipe.IsLike)

	// A repeated swipe, even with the opposite polarity, returns the
	// stored record unchanged.
	second, err := f.uc.RecordSwipe(ctx, actor.ID, target.ID, false)
	require.NoError(t, err)
	assert.Equal(t, first.MatchID, second.MatchID)
	assert.True(t, second.Swipe.IsLike)
	assert.Equal(t, first.Swipe.CreatedAt, second.Swipe.CreatedAt)
}

func TestRecordSwipeMutualMatch(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a := f.seedUser(t, "a@example.com", zodiac.Aries)
	b := f.seedUser(t, "b@example.com", zodiac.Leo)

	resp, err := f.uc.RecordSwipe(ctx, a.ID, b.ID, true)
	require.NoError(t, err)
	assert.False(t, resp.IsMutual)
	assert.Equal(t, "Swipe recorded", resp.Message)

	resp, err = f.uc.RecordSwipe(ctx, b.ID, a.ID, true)
	require.NoError(t, err)
	assert.True(t, resp.IsMutual)
	assert.Equal(t, "It's a match!", resp.Message)
}

func TestRecordSwipeDislikeNeverMatches(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a := f.seedUser(t, "a@example.com", zodiac.Aries)
	b := f.seedUser(t, "b@example.com", zodiac.Leo)

	_, err := f.uc.RecordSwipe(ctx, a.ID, b.ID, true)
	require.NoError(t, err)

	resp, err := f.uc.RecordSwipe(ctx, b.ID, a.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.IsMutual)
	assert.Equal(t, "Swipe recorded", resp.Message)
}

func TestLikedByAndLikedByMe(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a := f.seedUser(t, "a@example.com", zodiac.Aries)
	b := f.seedUser(t, "b@example.com", zodiac.Leo)
	c := f.seedUser(t, "c@example.com", zodiac.Sagittarius)

	_, err := f.uc.RecordSwipe(ctx, b.ID, a.ID, true)
	require.NoError(t, err)
	_, err = f.uc.RecordSwipe(ctx, c.ID, a.ID, false)
	require.NoError(t, err)
	_, err = f.uc.RecordSwipe(ctx, a.ID, c.ID, true)
	require.NoError(t, err)

	likedBy, err := f.uc.LikedBy(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, likedBy, 1)
	assert.Equal(t, b.ID, likedBy[0].ID)

	likedByMe, err := f.uc.LikedByMe(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, likedByMe, 1)
	assert.Equal(t, c.ID, likedByMe[0].ID)
}

func TestCountLikesReceivedCacheHit(t *testing.T) {
	likeCache, mr := newTestCache(t)
	f := newFixture(t, likeCache)
	ctx := context.Background()
	user := f.seedUser(t, "a@example.com", zodiac.Aries)

	// A cached value wins over the repository.
	require.NoError(t, mr.Set("likes:count:1", "42"))

	count, err := f.uc.CountLikesReceived(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestCountLikesReceivedCacheMissWritesBack(t *testing.T) {
	likeCache, mr := newTestCache(t)
	f := newFixture(t, likeCache)
	ctx := context.Background()
	a := f.seedUser(t, "a@example.com", zodiac.Aries)
	b := f.seedUser(t, "b@example.com", zodiac.Leo)

	_, err := f.swipeRepo.Create(ctx, &domain.Swipe{ActorID: b.ID, TargetID: a.ID, IsLike: true})
	require.NoError(t, err)
	mr.FlushAll()

	count, err := f.uc.CountLikesReceived(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	cached, err := mr.Get("likes:count:1")
	require.NoError(t, err)
	assert.Equal(t, "1", cached)
}

func TestRecordSwipeBumpsCachedCounter(t *testing.T) {
	likeCache, mr := newTestCache(t)
	f := newFixture(t, likeCache)
	ctx := context.Background()
	a := f.seedUser(t, "a@example.com", zodiac.Aries)
	b := f.seedUser(t, "b@example.com", zodiac.Leo)
	c := f.seedUser(t, "c@example.com", zodiac.Sagittarius)

	require.NoError(t, mr.Set("likes:count:2", "0"))

	_, err := f.uc.RecordSwipe(ctx, a.ID, b.ID, true)
	require.NoError(t, err)

	cached, err := mr.Get("likes:count:2")
	require.NoError(t, err)
	assert.Equal(t, "1", cached)

	// Replays and dislikes leave the counter alone.
	_, err = f.uc.RecordSwipe(ctx, a.ID, b.ID, true)
	require.NoError(t, err)
	_, err = f.uc.RecordSwipe(ctx, c.ID, b.ID, false)
	require.NoError(t, err)

	cached, err = mr.Get("likes:count:2")
	require.NoError(t, err)
	assert.Equal(t, "1", cached)
}
