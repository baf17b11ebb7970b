package container

import (
	"context"
	"fmt"

	"github.com/astrodate/astrodate-backend/internal/cache"
	"github.com/astrodate/astrodate-backend/internal/config"
	"github.com/astrodate/astrodate-backend/internal/delivery/http"
	"github.com/astrodate/astrodate-backend/internal/delivery/http/handler"
	"github.com/astrodate/astrodate-backend/internal/delivery/http/middleware"
	"github.com/astrodate/astrodate-backend/internal/infrastructure/database"
	"github.com/astrodate/astrodate-backend/internal/infrastructure/server"
	"github.com/astrodate/astrodate-backend/internal/infrastructure/wingman"
	"github.com/astrodate/astrodate-backend/internal/logger"
	"github.com/astrodate/astrodate-backend/internal/repository"
	"github.com/astrodate/astrodate-backend/internal/repository/postgres"
	"github.com/astrodate/astrodate-backend/internal/usecase/auth"
	"github.com/astrodate/astrodate-backend/internal/usecase/discover"
	"github.com/astrodate/astrodate-backend/internal/usecase/swipe"
	"github.com/astrodate/astrodate-backend/internal/zodiac"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	DB      *sqlx.DB
	Redis   *redis.Client
	Server  *server.Server
	Wingman *wingman.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.Migrate(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis. The like counter degrades to plain DB counts
	// without it, so a missing Redis is a warning, not a fatal error.
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, like counts will not be cached", "error", err)
		redisClient = nil
	}

	// Initialize the Gemini wingman client. Optional: swipes work
	// without match notes.
	var wingmanClient *wingman.Client
	if cfg.GeminiAPIKey != "" {
		wingmanClient, err = wingman.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("wingman client unavailable", "error", err)
			wingmanClient = nil
		}
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	zodiacRepo := postgres.NewZodiacRepository(db)

	// Load the zodiac reference data into an in-memory index. Sign
	// ranges and compatibility edges never change at runtime, so one
	// read at startup is enough.
	signIndex, err := loadZodiacIndex(ctx, zodiacRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to load zodiac reference data: %w", err)
	}

	var likeCache *cache.LikeCounter
	if redisClient != nil {
		likeCache = cache.NewLikeCounter(redisClient)
	}

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		signIndex,
		cfg.JWT.Secret,
		cfg.JWT.ExpiryMin,
	)

	discoverUseCase := discover.NewDiscoverUseCase(
		userRepo,
		swipeRepo,
		signIndex,
		nil,
	)

	swipeUseCase := swipe.NewSwipeUseCase(
		swipeRepo,
		userRepo,
		signIndex,
		likeCache,
		wingmanClient,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	userHandler := handler.NewUserHandler(discoverUseCase, swipeUseCase, userRepo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		userHandler,
		authMiddleware,
		logger.L(),
		cfg.Storage.Path,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config:  cfg,
		DB:      db,
		Redis:   redisClient,
		Server:  srv,
		Wingman: wingmanClient,
	}, nil
}

// loadZodiacIndex reads the sign and compatibility tables, seeding
// them from the built-in reference data when they are still empty.
func loadZodiacIndex(ctx context.Context, repo repository.ZodiacRepository) (*zodiac.Index, error) {
	signs, err := repo.ListSigns(ctx)
	if err != nil {
		return nil, err
	}
	if len(signs) == 0 {
		if err := repo.ReplaceAll(ctx, zodiac.ReferenceSigns(), zodiac.ReferenceCompatibilities()); err != nil {
			return nil, err
		}
		if signs, err = repo.ListSigns(ctx); err != nil {
			return nil, err
		}
	}

	edges, err := repo.ListCompatibilities(ctx)
	if err != nil {
		return nil, err
	}

	return zodiac.NewIndex(signs, edges), nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Wingman != nil {
		if err := c.Wingman.Close(); err != nil {
			logger.Warn("error closing wingman client", "error", err)
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Warn("error closing redis", "error", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
