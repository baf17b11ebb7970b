package zodiac

import (
	"time"

	"github.com/astrodate/astrodate-backend/internal/domain"
)

// ResolveSign maps a calendar date onto a zodiac sign. The signs slice
// is scanned in order and the first matching range wins, so callers
// get a stable result for a fixed table. Returns nil only when the
// table is empty or leaves the date uncovered, which the reference
// data never does.
//
// Pure function: it is used both for single-user resolution at
// registration and for bulk seeding without re-fetching the table.
func ResolveSign(month, day int, signs []domain.ZodiacSign) *domain.ZodiacSign {
	for i := range signs {
		if signs[i].Contains(month, day) {
			return &signs[i]
		}
	}
	return nil
}

// ResolveSignForDate is a convenience wrapper over ResolveSign for
// time.Time birth dates.
func ResolveSignForDate(birthDate time.Time, signs []domain.ZodiacSign) *domain.ZodiacSign {
	return ResolveSign(int(birthDate.Month()), birthDate.Day(), signs)
}
