// Package cli wires the browse command line to its use cases.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/browse/internal/application/usecase"
	"github.com/bnema/browse/internal/cli/styles"
	"github.com/bnema/browse/internal/domain/repository"
	"github.com/bnema/browse/internal/infrastructure/config"
	"github.com/bnema/browse/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/browse/internal/logging"
)

// App holds CLI dependencies. Storage is opened on first use.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme

	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration and builds the logger.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	// The logger itself lets everything through; the global level filters,
	// so a config reload can move it in both directions.
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: zerolog.TraceLevel, Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			Dir:           cfg.Logging.LogDir,
			MaxAgeDays:    cfg.Logging.MaxAge,
			Compress:      true,
			WriteToStderr: true,
		},
	)
	if logErr != nil {
		logger.Warn().Err(logErr).Str("dir", cfg.Logging.LogDir).Msg("file logging disabled")
	}
	ctx := logging.WithContext(context.Background(), logger)

	mgr.OnConfigChange(func(c *config.Config) {
		zerolog.SetGlobalLevel(logging.ParseLevel(c.Logging.Level))
		logger.Info().Str("level", c.Logging.Level).Msg("config reloaded")
	})
	if err := mgr.Watch(); err != nil {
		logger.Debug().Err(err).Msg("config watch unavailable")
	}

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(os.Stdout),
		db:            sqlite.NewLazyDB(cfg.Database.Path),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// SessionRepo returns the session snapshot repository.
func (a *App) SessionRepo() (repository.SessionStateRepository, error) {
	db, err := a.db.DB(a.ctx)
	if err != nil {
		return nil, err
	}
	return sqlite.NewSessionStateRepository(db), nil
}

// Places returns the places use case.
func (a *App) Places() (*usecase.ManagePlacesUseCase, error) {
	db, err := a.db.DB(a.ctx)
	if err != nil {
		return nil, err
	}
	return usecase.NewManagePlacesUseCase(sqlite.NewPlaceRepository(db), a.Config.Places.MaxResults), nil
}

// Journal returns the object store backing downloads.
func (a *App) Journal() (*sqlite.JournalStore, error) {
	db, err := a.db.DB(a.ctx)
	if err != nil {
		return nil, err
	}
	blobDir, err := config.GetJournalDir()
	if err != nil {
		return nil, fmt.Errorf("journal directory: %w", err)
	}
	return sqlite.NewJournalStore(db, blobDir)
}

// SessionStore returns the tab session store for the configured home page.
func (a *App) SessionStore() *usecase.TabSessionStore {
	return usecase.NewTabSessionStore(a.Config.Session.HomeURL)
}

// Close releases all resources.
func (a *App) Close() error {
	err := a.db.Close()
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}
