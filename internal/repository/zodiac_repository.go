package repository

import (
	"context"

	"github.com/astrodate/astrodate-backend/internal/domain"
)

type ZodiacRepository interface {
	ListSigns(ctx context.Context) ([]domain.ZodiacSign, error)
	ListCompatibilities(ctx context.Context) ([]domain.Compatibility, error)
	// ReplaceAll reseeds the reference tables with a clear-and-reinsert
	// in a single transaction. Incremental updates are deliberately not
	// supported.
	ReplaceAll(ctx context.Context, signs []domain.ZodiacSign, edges []domain.Compatibility) error
}
