package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/rummyledger/internal/blob"
	"github.com/mcoot/rummyledger/internal/blob/memory"
	redisblob "github.com/mcoot/rummyledger/internal/blob/redis"
	"github.com/mcoot/rummyledger/internal/collection"
	"github.com/mcoot/rummyledger/internal/dependencies/clock"
	"github.com/mcoot/rummyledger/internal/dependencies/random"
	"github.com/mcoot/rummyledger/internal/model"
	"github.com/mcoot/rummyledger/internal/narrative"
	"github.com/mcoot/rummyledger/internal/services/ledger"
	"github.com/mcoot/rummyledger/internal/services/registry"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Blob  blob.Store
	Users *collection.Store[model.Player]
	Games *collection.Store[model.Game]

	// External dependencies
	Clock    clock.Clock
	Random   random.Random
	Narrator narrative.Generator

	// Services
	Registry *registry.Service
	Ledger   *ledger.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the blob store backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisblob.Config
	// Narrator overrides the recap generator (optional; used in tests)
	// If nil, a Gemini generator is built from GeminiConfig
	Narrator narrative.Generator
	// GeminiConfig holds recap generation settings
	GeminiConfig narrative.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create blob store based on type
	var store blob.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisblob.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	narrator := cfg.Narrator
	if narrator == nil {
		narrator = narrative.NewGemini(cfg.GeminiConfig, logger)
	}

	return newWithDependencies(store, clock.New(), random.New(), narrator, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store blob.Store,
	clk clock.Clock,
	rnd random.Random,
	narrator narrative.Generator,
	logger *slog.Logger,
) *App {
	users := collection.New[model.Player](store, registry.DocumentKey, logger)
	games := collection.New[model.Game](store, ledger.DocumentKey, logger)

	registryService := registry.New(users, rnd, logger)
	ledgerService := ledger.New(games, registryService, narrator, clk, rnd, logger)

	return &App{
		Blob:     store,
		Users:    users,
		Games:    games,
		Clock:    clk,
		Random:   rnd,
		Narrator: narrator,
		Registry: registryService,
		Ledger:   ledgerService,
	}
}

// Load populates both collection caches from the blob store. Called once at
// startup; load failures degrade to empty collections rather than erroring.
func (a *App) Load(ctx context.Context) {
	a.Users.Load(ctx)
	a.Games.Load(ctx)
}
