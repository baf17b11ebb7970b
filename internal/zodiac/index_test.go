package zodiac_test

import (
	"testing"

	"github.com/astrodate/astrodate-backend/internal/zodiac"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReferenceIndex() *zodiac.Index {
	return zodiac.NewIndex(zodiac.ReferenceSigns(), zodiac.ReferenceCompatibilities())
}

func TestReferenceCompatibilitiesShape(t *testing.T) {
	edges := zodiac.ReferenceCompatibilities()

	// 12 signs x 5 partners, mirrored and deduplicated.
	assert.Len(t, edges, 60)
	for _, e := range edges {
		assert.NotEqual(t, e.SignID, e.CompatibleSignID, "self pair seeded")
	}
}

func TestIndexCompatibilityIsSymmetric(t *testing.T) {
	idx := newReferenceIndex()

	contains := func(ids []int, id int) bool {
		for _, v := range ids {
			if v == id {
				return true
			}
		}
		return false
	}

	for _, x := range idx.Signs() {
		partners := idx.CompatibleWith(x.ID)
		assert.Lenf(t, partners, 5, "sign %s", x.EnglishName)
		for _, y := range partners {
			assert.Truef(t, contains(idx.CompatibleWith(y), x.ID),
				"edge %d->%d has no mirror", x.ID, y)
		}
	}
}

func TestIndexDemoQuartetMutuallyCompatible(t *testing.T) {
	idx := newReferenceIndex()

	quartet := []int{zodiac.Aries, zodiac.Leo, zodiac.Sagittarius, zodiac.Gemini}
	for _, a := range quartet {
		partners := idx.CompatibleWith(a)
		set := make(map[int]bool, len(partners))
		for _, p := range partners {
			set[p] = true
		}
		for _, b := range quartet {
			if a == b {
				continue
			}
			assert.Truef(t, set[b], "signs %d and %d should be compatible", a, b)
		}
	}
}

func TestIndexIgnoresDanglingEdges(t *testing.T) {
	signs := zodiac.ReferenceSigns()[:2] // Aries, Taurus only
	idx := zodiac.NewIndex(signs, zodiac.ReferenceCompatibilities())

	// None of Aries' partners survived the cut, and the dangling edges
	// must not leak through.
	assert.Empty(t, idx.CompatibleWith(zodiac.Aries))
}

func TestIndexResolve(t *testing.T) {
	idx := newReferenceIndex()

	sign := idx.Resolve(8, 5)
	require.NotNil(t, sign)
	assert.Equal(t, "Leo", sign.EnglishName)
}
