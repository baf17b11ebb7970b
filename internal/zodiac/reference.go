package zodiac

import "github.com/astrodate/astrodate-backend/internal/domain"

// Sign IDs in reference order, Aries first. The IDs double as the
// primary keys of the seeded zodiac_signs rows.
const (
	Aries = iota + 1
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// ReferenceSigns returns the 12 signs in reference order. The ranges
// partition the calendar year; Capricorn is the only wrapping range
// (Dec 22 - Jan 19).
func ReferenceSigns() []domain.ZodiacSign {
	return []domain.ZodiacSign{
		{ID: Aries, Name: "Widder", EnglishName: "Aries", StartMonth: 3, StartDay: 21, EndMonth: 4, EndDay: 19},
		{ID: Taurus, Name: "Stier", EnglishName: "Taurus", StartMonth: 4, StartDay: 20, EndMonth: 5, EndDay: 20},
		{ID: Gemini, Name: "Zwillinge", EnglishName: "Gemini", StartMonth: 5, StartDay: 21, EndMonth: 6, EndDay: 20},
		{ID: Cancer, Name: "Krebs", EnglishName: "Cancer", StartMonth: 6, StartDay: 21, EndMonth: 7, EndDay: 22},
		{ID: Leo, Name: "Löwe", EnglishName: "Leo", StartMonth: 7, StartDay: 23, EndMonth: 8, EndDay: 22},
		{ID: Virgo, Name: "Jungfrau", EnglishName: "Virgo", StartMonth: 8, StartDay: 23, EndMonth: 9, EndDay: 22},
		{ID: Libra, Name: "Waage", EnglishName: "Libra", StartMonth: 9, StartDay: 23, EndMonth: 10, EndDay: 22},
		{ID: Scorpio, Name: "Skorpion", EnglishName: "Scorpio", StartMonth: 10, StartDay: 23, EndMonth: 11, EndDay: 21},
		{ID: Sagittarius, Name: "Schütze", EnglishName: "Sagittarius", StartMonth: 11, StartDay: 22, EndMonth: 12, EndDay: 21},
		{ID: Capricorn, Name: "Steinbock", EnglishName: "Capricorn", StartMonth: 12, StartDay: 22, EndMonth: 1, EndDay: 19},
		{ID: Aquarius, Name: "Wassermann", EnglishName: "Aquarius", StartMonth: 1, StartDay: 20, EndMonth: 2, EndDay: 18},
		{ID: Pisces, Name: "Fische", EnglishName: "Pisces", StartMonth: 2, StartDay: 19, EndMonth: 3, EndDay: 20},
	}
}

// referencePartners lists, for every sign, its 5 compatible partner
// signs: the two other signs of its own element plus the three signs
// of the complementary element (fire-air, earth-water). The listing is
// already symmetric; ReferenceCompatibilities mirrors and dedups it
// into directed edge rows anyway so a malformed edit cannot break the
// symmetry invariant.
var referencePartners = map[int][]int{
	Aries:       {Leo, Sagittarius, Gemini, Libra, Aquarius},
	Taurus:      {Virgo, Capricorn, Cancer, Scorpio, Pisces},
	Gemini:      {Libra, Aquarius, Aries, Leo, Sagittarius},
	Cancer:      {Scorpio, Pisces, Taurus, Virgo, Capricorn},
	Leo:         {Aries, Sagittarius, Gemini, Libra, Aquarius},
	Virgo:       {Taurus, Capricorn, Cancer, Scorpio, Pisces},
	Libra:       {Gemini, Aquarius, Aries, Leo, Sagittarius},
	Scorpio:     {Cancer, Pisces, Taurus, Virgo, Capricorn},
	Sagittarius: {Aries, Leo, Gemini, Libra, Aquarius},
	Capricorn:   {Taurus, Virgo, Cancer, Scorpio, Pisces},
	Aquarius:    {Gemini, Libra, Aries, Leo, Sagittarius},
	Pisces:      {Cancer, Scorpio, Taurus, Virgo, Capricorn},
}

// ReferenceCompatibilities expands the partner table into directed
// edges, mirrored and deduplicated (60 rows). Edge IDs are assigned
// sequentially in sign order.
func ReferenceCompatibilities() []domain.Compatibility {
	type pair struct{ a, b int }
	seen := make(map[pair]bool)
	var edges []domain.Compatibility

	add := func(a, b int) {
		if a == b || seen[pair{a, b}] {
			return
		}
		seen[pair{a, b}] = true
		edges = append(edges, domain.Compatibility{
			ID:               len(edges) + 1,
			SignID:           a,
			CompatibleSignID: b,
		})
	}

	for sign := Aries; sign <= Pisces; sign++ {
		for _, partner := range referencePartners[sign] {
			add(sign, partner)
			add(partner, sign)
		}
	}
	return edges
}
