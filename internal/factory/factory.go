package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/graretg02/Superbowl-app2/internal/dependencies/clock"
	"github.com/graretg02/Superbowl-app2/internal/dependencies/ids"
	"github.com/graretg02/Superbowl-app2/internal/dependencies/random"
	"github.com/graretg02/Superbowl-app2/internal/services/analysis"
	"github.com/graretg02/Superbowl-app2/internal/services/board"
	"github.com/graretg02/Superbowl-app2/internal/services/game"
	"github.com/graretg02/Superbowl-app2/internal/services/persistence"
	"github.com/graretg02/Superbowl-app2/internal/storage"
	"github.com/graretg02/Superbowl-app2/internal/storage/memory"
	redisstorage "github.com/graretg02/Superbowl-app2/internal/storage/redis"
	"github.com/graretg02/Superbowl-app2/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    ids.Generator

	// Services
	BoardService    *board.Service
	Persistence     *persistence.Adapter
	AnalysisService *analysis.Service
	GameController  *game.Controller

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "sqlite" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SaveDelay is the quiet period before a board change is written (optional)
	SaveDelay time.Duration
	// AnalysisKey is the Gemini API key; analysis falls back to canned text without it
	AnalysisKey string
	// AnalysisModel overrides the Gemini model (optional)
	AnalysisModel string
}

// New creates a new application with all dependencies wired and the saved board loaded
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Store
	var closer io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store, closer = sqliteStore, sqliteStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store, closer = redisStore, redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'sqlite' or 'redis'")
	}

	var generator analysis.Generator = analysis.DisabledGenerator{}
	if cfg.AnalysisKey != "" {
		g, err := analysis.NewGenAIGenerator(ctx, cfg.AnalysisKey, cfg.AnalysisModel)
		if err != nil {
			if closer != nil {
				_ = closer.Close()
			}
			return nil, err
		}
		generator = g
	} else {
		logger.Warn("no Gemini API key configured, analysis will use fallback text")
	}

	app := newWithDependencies(store, clock.New(), random.New(), ids.New(), generator, cfg.SaveDelay, logger)
	app.closer = closer
	app.GameController.Load(ctx)
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Store,
	clk clock.Clock,
	rnd random.Random,
	idGen ids.Generator,
	generator analysis.Generator,
	saveDelay time.Duration,
	logger *slog.Logger,
) *App {
	// Create services
	boardService := board.New(rnd, idGen)
	adapter := persistence.New(store, clk, saveDelay, logger)
	analysisService := analysis.New(generator, logger)
	gameController := game.NewController(boardService, adapter, analysisService, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		IDs:             idGen,
		BoardService:    boardService,
		Persistence:     adapter,
		AnalysisService: analysisService,
		GameController:  gameController,
	}
}

// Close writes any pending save and releases the store
func (a *App) Close(ctx context.Context) error {
	err := a.GameController.Flush(ctx)
	if a.closer != nil {
		err = errors.Join(err, a.closer.Close())
	}
	return err
}
