package domain

// ZodiacSign is one of the 12 western zodiac signs. The date range is
// stored as month/day components only; StartMonth > EndMonth means the
// range wraps the year boundary (Capricorn).
//
// Display names are German, canonical names English, matching the
// seeded reference data. Rows are immutable after seeding.
type ZodiacSign struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	EnglishName string `json:"english_name" db:"english_name"`
	StartMonth  int    `json:"start_month" db:"start_month"`
	StartDay    int    `json:"start_day" db:"start_day"`
	EndMonth    int    `json:"end_month" db:"end_month"`
	EndDay      int    `json:"end_day" db:"end_day"`
}

// Wraps reports whether the sign's range crosses the year boundary.
func (s *ZodiacSign) Wraps() bool {
	return s.StartMonth > s.EndMonth
}

// Contains reports whether the given calendar date falls inside the
// sign's range. The rule is date-component-only: February 29 needs no
// special casing.
func (s *ZodiacSign) Contains(month, day int) bool {
	if !s.Wraps() {
		return (month == s.StartMonth && day >= s.StartDay) ||
			(month == s.EndMonth && day <= s.EndDay) ||
			(s.StartMonth < month && month < s.EndMonth)
	}
	return (month == s.StartMonth && day >= s.StartDay) ||
		month > s.StartMonth ||
		(month == s.EndMonth && day <= s.EndDay) ||
		month < s.EndMonth
}

// Compatibility is a directed edge "SignID is compatible with
// CompatibleSignID". Edges are stored mirrored so a lookup by either
// side is a plain equality filter.
type Compatibility struct {
	ID               int `json:"id" db:"id"`
	SignID           int `json:"sign_id" db:"sign_id"`
	CompatibleSignID int `json:"compatible_sign_id" db:"compatible_sign_id"`
}
