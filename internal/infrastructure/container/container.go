package container

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/thirdplace-backend/internal/config"
	"github.com/gdugdh24/thirdplace-backend/internal/delivery/http"
	"github.com/gdugdh24/thirdplace-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/thirdplace-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/thirdplace-backend/internal/domain"
	"github.com/gdugdh24/thirdplace-backend/internal/infrastructure/database"
	"github.com/gdugdh24/thirdplace-backend/internal/infrastructure/gemini"
	"github.com/gdugdh24/thirdplace-backend/internal/infrastructure/seed"
	"github.com/gdugdh24/thirdplace-backend/internal/infrastructure/server"
	"github.com/gdugdh24/thirdplace-backend/internal/repository"
	"github.com/gdugdh24/thirdplace-backend/internal/repository/memory"
	"github.com/gdugdh24/thirdplace-backend/internal/repository/postgres"
	redisrepo "github.com/gdugdh24/thirdplace-backend/internal/repository/redis"
	"github.com/gdugdh24/thirdplace-backend/internal/usecase/auth"
	"github.com/gdugdh24/thirdplace-backend/internal/usecase/match"
	"github.com/gdugdh24/thirdplace-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Gemini *gemini.GeminiClient
	Router *gin.Engine
	Server *server.Server
}

type repositories struct {
	profiles repository.ProfileRepository
	users    repository.UserRepository
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	repos, err := c.initRepositories(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}

	// Seed data
	pool, err := seed.LoadCandidates(cfg.Seed.CandidatesPath)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	policy, err := seed.LoadPolicy(cfg.Seed.PolicyPath)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to load compatibility policy: %w", err)
	}
	if cfg.Match.MinCompatible > 0 {
		policy.MinCompatible = cfg.Match.MinCompatible
	}
	templates, err := seed.LoadEventTemplates(cfg.Seed.EventsPath)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to load event templates: %w", err)
	}

	// Matchers
	fallback, err := match.NewFallbackMatcher(policy, templates)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize fallback matcher: %w", err)
	}

	var primary match.Matcher
	if cfg.Gemini.APIKey != "" {
		geminiClient, err := gemini.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			// Don't fail, every match request will use the fallback
			logger.Warn("failed to initialize gemini client", zap.Error(err))
		} else {
			c.Gemini = geminiClient
			primary = match.NewLLMMatcher(geminiClient)
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, matching uses the fallback builder only")
	}

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		repos.users,
		cfg.JWT.AccessSecret,
		time.Duration(cfg.JWT.AccessExpiryMin)*time.Minute,
	)

	profileUseCase := profile.NewProfileUseCase(repos.profiles)

	matchUseCase := match.NewMatchUseCase(
		repos.profiles,
		pool,
		primary,
		fallback,
		match.Options{
			DefaultVariant: domain.MatchVariant(cfg.Match.DefaultVariant),
			Timeout:        cfg.Match.Timeout,
		},
		logger,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase, logger)
	profileHandler := handler.NewProfileHandler(profileUseCase, logger)
	matchHandler := handler.NewMatchHandler(matchUseCase, logger)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		matchHandler,
		authMiddleware,
		cfg.CORS.AllowedOrigins,
		logger,
	)

	// Setup routes
	c.Router = router.Setup()

	// Initialize server
	c.Server = server.NewServer(&cfg.Server, c.Router, logger)

	logger.Info("container initialized",
		zap.String("storage", cfg.Storage.Type),
		zap.Int("candidates", len(pool)),
		zap.Int("event_templates", len(templates)),
		zap.Bool("ai_matcher", primary != nil),
	)

	return c, nil
}

func (c *Container) initRepositories(ctx context.Context) (*repositories, error) {
	switch c.Config.Storage.Type {
	case config.StoragePostgres:
		db, err := database.NewPostgresDB(ctx, &c.Config.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db
		return &repositories{
			profiles: postgres.NewProfileRepository(db),
			users:    postgres.NewUserRepository(db),
		}, nil

	case config.StorageRedis:
		client, err := database.NewRedisClient(ctx, &c.Config.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = client
		return &repositories{
			profiles: redisrepo.NewProfileRepository(client),
			users:    redisrepo.NewUserRepository(client),
		}, nil

	case config.StorageMemory:
		return &repositories{
			profiles: memory.NewProfileRepository(),
			users:    memory.NewUserRepository(),
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage type %q", c.Config.Storage.Type)
	}
}

// Close closes all connections
func (c *Container) Close() error {
	var firstErr error

	if c.Gemini != nil {
		if err := c.Gemini.Close(); err != nil {
			c.Logger.Warn("error closing gemini client", zap.Error(err))
		}
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
			firstErr = fmt.Errorf("failed to close redis: %w", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close database: %w", err)
		}
	}

	return firstErr
}
