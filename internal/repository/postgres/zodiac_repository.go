package postgres

import (
	"context"
	"fmt"

	"github.com/astrodate/astrodate-backend/internal/domain"
	"github.com/astrodate/astrodate-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type zodiacRepository struct {
	db *sqlx.DB
}

func NewZodiacRepository(db *sqlx.DB) repository.ZodiacRepository {
	return &zodiacRepository{db: db}
}

func (r *zodiacRepository) ListSigns(ctx context.Context) ([]domain.ZodiacSign, error) {
	var signs []domain.ZodiacSign
	query := `SELECT * FROM zodiac_signs ORDER BY id`
	err := r.db.SelectContext(ctx, &signs, query)
	return signs, err
}

func (r *zodiacRepository) ListCompatibilities(ctx context.Context) ([]domain.Compatibility, error) {
	var edges []domain.Compatibility
	query := `SELECT * FROM zodiac_compatibilities ORDER BY id`
	err := r.db.SelectContext(ctx, &edges, query)
	return edges, err
}

// ReplaceAll clears and reinserts both reference tables in one
// transaction. Compatibility rows go first on delete because they
// reference zodiac_signs.
func (r *zodiacRepository) ReplaceAll(ctx context.Context, signs []domain.ZodiacSign, edges []domain.Compatibility) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM zodiac_compatibilities`); err != nil {
		return fmt.Errorf("failed to clear compatibilities: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM zodiac_signs`); err != nil {
		return fmt.Errorf("failed to clear signs: %w", err)
	}

	signQuery := `
		INSERT INTO zodiac_signs (id, name, english_name, start_month, start_day, end_month, end_day)
		VALUES (:id, :name, :english_name, :start_month, :start_day, :end_month, :end_day)
	`
	for _, s := range signs {
		if _, err := tx.NamedExecContext(ctx, signQuery, s); err != nil {
			return fmt.Errorf("failed to insert sign %s: %w", s.EnglishName, err)
		}
	}

	edgeQuery := `
		INSERT INTO zodiac_compatibilities (id, sign_id, compatible_sign_id)
		VALUES (:id, :sign_id, :compatible_sign_id)
	`
	for _, e := range edges {
		if _, err := tx.NamedExecContext(ctx, edgeQuery, e); err != nil {
			return fmt.Errorf("failed to insert compatibility %d->%d: %w", e.SignID, e.CompatibleSignID, err)
		}
	}

	return tx.Commit()
}
