package zodiac

import "github.com/astrodate/astrodate-backend/internal/domain"

// Index answers "which signs are compatible with X" from a fixed edge
// set. It is built once at startup and is read-only afterwards; any
// change to the underlying table requires a full rebuild via NewIndex,
// matching the clear-and-reinsert seeding policy.
type Index struct {
	signs    map[int]domain.ZodiacSign
	order    []int
	partners map[int][]int
}

// NewIndex builds an index over the given signs and directed edges.
// Edges referencing unknown signs are ignored.
func NewIndex(signs []domain.ZodiacSign, edges []domain.Compatibility) *Index {
	idx := &Index{
		signs:    make(map[int]domain.ZodiacSign, len(signs)),
		order:    make([]int, 0, len(signs)),
		partners: make(map[int][]int, len(signs)),
	}
	for _, s := range signs {
		idx.signs[s.ID] = s
		idx.order = append(idx.order, s.ID)
	}
	for _, e := range edges {
		if _, ok := idx.signs[e.SignID]; !ok {
			continue
		}
		if _, ok := idx.signs[e.CompatibleSignID]; !ok {
			continue
		}
		idx.partners[e.SignID] = append(idx.partners[e.SignID], e.CompatibleSignID)
	}
	return idx
}

// Sign returns the sign with the given ID.
func (idx *Index) Sign(id int) (domain.ZodiacSign, bool) {
	s, ok := idx.signs[id]
	return s, ok
}

// Signs returns all signs in the order they were loaded.
func (idx *Index) Signs() []domain.ZodiacSign {
	out := make([]domain.ZodiacSign, 0, len(idx.order))
	for _, id := range idx.order {
		out = append(out, idx.signs[id])
	}
	return out
}

// CompatibleWith returns the IDs of all signs compatible with signID.
// The returned slice is a copy; callers may mutate it freely.
func (idx *Index) CompatibleWith(signID int) []int {
	src := idx.partners[signID]
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// Resolve maps a birth date component pair onto one of the indexed
// signs.
func (idx *Index) Resolve(month, day int) *domain.ZodiacSign {
	return ResolveSign(month, day, idx.Signs())
}
