package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/astrodate/astrodate-backend/internal/config"
	"github.com/astrodate/astrodate-backend/internal/domain"
	"github.com/astrodate/astrodate-backend/internal/infrastructure/database"
	"github.com/astrodate/astrodate-backend/internal/logger"
	"github.com/astrodate/astrodate-backend/internal/repository/postgres"
	"github.com/astrodate/astrodate-backend/internal/usecase/auth"
	"github.com/astrodate/astrodate-backend/internal/zodiac"
)

func strptr(s string) *string { return &s }

// Four demo accounts whose signs are all mutually compatible, so any
// two of them can match right after seeding.
var demoUsers = []auth.RegisterRequest{
	{
		Email:         "a@a.a",
		Password:      "a",
		BirthDate:     "1995-04-10", // Widder
		Bio:           strptr("Mystischer Astrologe mit Kristallkugel"),
		ImageFilename: strptr("user_a.jpg"),
	},
	{
		Email:         "b@b.b",
		Password:      "b",
		BirthDate:     "1993-08-05", // Löwe
		Bio:           strptr("Erfahrener Tarot-Leser und Astrologe"),
		ImageFilename: strptr("user_b.jpg"),
	},
	{
		Email:         "c@c.c",
		Password:      "c",
		BirthDate:     "1990-12-10", // Schütze
		Bio:           strptr("Freundlicher Astrologe mit kosmischer Energie"),
		ImageFilename: strptr("user_c.jpg"),
	},
	{
		Email:         "d@d.d",
		Password:      "d",
		BirthDate:     "1992-06-05", // Zwillinge
		Bio:           strptr("Mächtiger Astrologe mit spiritueller Kraft"),
		ImageFilename: strptr("user_d.jpg"),
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.InitFromConfig(cfg)

	ctx := context.Background()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Reseed the zodiac reference tables with a clear-and-reinsert so
	// repeated runs always leave the canonical data behind.
	zodiacRepo := postgres.NewZodiacRepository(db)
	signs := zodiac.ReferenceSigns()
	edges := zodiac.ReferenceCompatibilities()
	if err := zodiacRepo.ReplaceAll(ctx, signs, edges); err != nil {
		logger.Error("failed to seed zodiac reference data", "error", err)
		os.Exit(1)
	}
	logger.Info("seeded zodiac reference data", "signs", len(signs), "compatibilities", len(edges))

	userRepo := postgres.NewUserRepository(db)
	authUseCase := auth.NewAuthUseCase(userRepo, zodiac.NewIndex(signs, edges), cfg.JWT.Secret, cfg.JWT.ExpiryMin)

	for i := range demoUsers {
		req := demoUsers[i]
		user, err := authUseCase.Register(ctx, &req)
		if err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				logger.Info("demo user already exists", "email", req.Email)
				continue
			}
			logger.Error("failed to create demo user", "email", req.Email, "error", err)
			os.Exit(1)
		}
		signID := 0
		if user.ZodiacSignID != nil {
			signID = *user.ZodiacSignID
		}
		logger.Info("created demo user",
			"email", user.Email,
			"id", user.ID,
			"zodiac_sign_id", signID,
		)
	}

	logger.Info("seeding complete")
}
