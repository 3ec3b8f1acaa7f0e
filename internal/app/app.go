// Package app wires the journal and its front ends from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pourlog/internal/catalog"
	"github.com/KirkDiggler/pourlog/internal/common/clock"
	"github.com/KirkDiggler/pourlog/internal/common/picker"
	"github.com/KirkDiggler/pourlog/internal/common/uuid"
	"github.com/KirkDiggler/pourlog/internal/config"
	"github.com/KirkDiggler/pourlog/internal/entry"
	"github.com/KirkDiggler/pourlog/internal/handlers/api"
	"github.com/KirkDiggler/pourlog/internal/handlers/discord"
	"github.com/KirkDiggler/pourlog/internal/repositories/snapshot"
	"github.com/KirkDiggler/pourlog/internal/services/analytics"
	"github.com/KirkDiggler/pourlog/internal/services/backup"
	"github.com/KirkDiggler/pourlog/internal/services/journal"
	"github.com/KirkDiggler/pourlog/internal/services/messaging"
)

const shutdownTimeout = 5 * time.Second

// App holds the wired services
type App struct {
	Journal   journal.Service
	Analytics analytics.Service
	Messaging messaging.Service
	Parser    *entry.Parser

	// Backup is nil when no Redis address is configured
	Backup backup.Service

	cfg    *config.Config
	clock  clock.Clock
	redis  *redis.Client
	logger *slog.Logger
}

// New builds the services described by cfg
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	p := picker.New(nil)

	j, err := journal.New(&journal.Config{
		Catalog:       cat,
		Clock:         clk,
		UUIDGenerator: uuid.New(),
		Picker:        p,
		Logger:        logger.With("component", "journal"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create journal: %w", err)
	}

	a, err := analytics.New(&analytics.Config{Source: j, Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics: %w", err)
	}

	m, err := messaging.NewService(&messaging.ServiceConfig{Picker: p})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging: %w", err)
	}

	parser, err := entry.New(&entry.Config{Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create entry parser: %w", err)
	}

	app := &App{
		Journal:   j,
		Analytics: a,
		Messaging: m,
		Parser:    parser,
		cfg:       cfg,
		clock:     clk,
		logger:    logger,
	}

	if cfg.RedisAddr != "" {
		if err := app.connectBackup(); err != nil {
			return nil, err
		}
	}

	logger.Info("app.ready",
		"catalog", catalogSource(cfg.CatalogPath),
		"venues", len(j.ListVenues()),
		"achievements", len(j.ListAchievements()),
		"snapshots", app.Backup != nil,
	)
	return app, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

func (a *App) connectBackup() error {
	a.redis = redis.NewClient(&redis.Options{
		Addr:     a.cfg.RedisAddr,
		Password: a.cfg.RedisPassword,
		DB:       a.cfg.RedisDB,
	})

	repo, err := snapshot.NewRedis(&snapshot.Config{RedisClient: a.redis})
	if err != nil {
		_ = a.redis.Close()
		return fmt.Errorf("failed to create snapshot repository: %w", err)
	}

	a.Backup, err = backup.New(&backup.Config{
		Journal:      a.Journal,
		SnapshotRepo: repo,
		Clock:        a.clock,
		Logger:       a.logger.With("component", "backup"),
	})
	if err != nil {
		_ = a.redis.Close()
		return fmt.Errorf("failed to create backup service: %w", err)
	}
	return nil
}

// Restore loads the configured owner's snapshot, if snapshots are enabled
func (a *App) Restore(ctx context.Context) error {
	if a.Backup == nil {
		return nil
	}
	out, err := a.Backup.Restore(ctx, &backup.RestoreInput{OwnerID: a.cfg.SnapshotOwner})
	if err != nil {
		return err
	}
	if out.Restored {
		a.logger.Info("app.restored", "owner", a.cfg.SnapshotOwner, "records", out.RecordCount, "saved_at", out.SavedAt)
	}
	return nil
}

// Save writes the configured owner's snapshot, if snapshots are enabled
func (a *App) Save(ctx context.Context) error {
	if a.Backup == nil {
		return nil
	}
	out, err := a.Backup.Save(ctx, &backup.SaveInput{OwnerID: a.cfg.SnapshotOwner})
	if err != nil {
		return err
	}
	a.logger.Info("app.saved", "owner", a.cfg.SnapshotOwner, "records", out.RecordCount)
	return nil
}

// Handler returns the HTTP API
func (a *App) Handler() (http.Handler, error) {
	gin.SetMode(a.cfg.GinMode)

	h, err := api.New(&api.Config{
		Journal:       a.Journal,
		Analytics:     a.Analytics,
		Parser:        a.Parser,
		Backup:        a.Backup,
		SnapshotOwner: a.cfg.SnapshotOwner,
		Logger:        a.logger.With("component", "api"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API: %w", err)
	}
	return h.Router(), nil
}

// Serve runs the HTTP API until ctx is cancelled
func (a *App) Serve(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("app.listening", "addr", a.cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// RunBot runs the Discord bot until ctx is cancelled
func (a *App) RunBot(ctx context.Context) error {
	if a.cfg.DiscordToken == "" {
		return errors.New("DISCORD_TOKEN environment variable is required")
	}

	bot, err := discord.New(&discord.Config{
		Token:         a.cfg.DiscordToken,
		ApplicationID: a.cfg.ApplicationID,
		GuildID:       a.cfg.GuildID,
		Journal:       a.Journal,
		Analytics:     a.Analytics,
		Messaging:     a.Messaging,
		Parser:        a.Parser,
		Clock:         a.clock,
		Logger:        a.logger.With("component", "discord"),
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	<-ctx.Done()

	if err := bot.Stop(); err != nil {
		a.logger.Warn("app.bot_stop_failed", "error", err)
	}
	a.logger.Info("app.bot_stopped")
	return nil
}

// Close releases the Redis connection
func (a *App) Close() error {
	if a.redis == nil {
		return nil
	}
	return a.redis.Close()
}
