// Package api exposes the journal over a JSON HTTP interface.
package api

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/pourlog/internal/entry"
	"github.com/KirkDiggler/pourlog/internal/services/analytics"
	"github.com/KirkDiggler/pourlog/internal/services/backup"
	"github.com/KirkDiggler/pourlog/internal/services/journal"
)

// Config holds the services the API serves
type Config struct {
	Journal   journal.Service
	Analytics analytics.Service
	Parser    *entry.Parser

	// Backup enables the snapshot routes when set
	Backup        backup.Service
	SnapshotOwner string

	Logger *slog.Logger
}

// API holds the HTTP handlers
type API struct {
	journal   journal.Service
	analytics analytics.Service
	parser    *entry.Parser
	backup    backup.Service
	owner     string
	logger    *slog.Logger
}

// New creates the API
func New(cfg *Config) (*API, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Journal == nil {
		return nil, errors.New("journal cannot be nil")
	}
	if cfg.Analytics == nil {
		return nil, errors.New("analytics cannot be nil")
	}
	if cfg.Parser == nil {
		return nil, errors.New("parser cannot be nil")
	}
	if cfg.Backup != nil && cfg.SnapshotOwner == "" {
		return nil, errors.New("snapshot owner cannot be empty")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &API{
		journal:   cfg.Journal,
		analytics: cfg.Analytics,
		parser:    cfg.Parser,
		backup:    cfg.Backup,
		owner:     cfg.SnapshotOwner,
		logger:    logger,
	}, nil
}

// Router configures the gin engine and routes
func (a *API) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), a.requestLogger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/records", a.ListRecords)
		api.POST("/records", a.CreateRecord)
		api.GET("/records/by-date", a.RecordsByDate)
		api.GET("/records/:id", a.GetRecord)
		api.PATCH("/records/:id", a.UpdateRecord)
		api.DELETE("/records/:id", a.DeleteRecord)

		api.GET("/venues", a.ListVenues)
		api.POST("/venues/:id/check-in", a.CheckInVenue)

		api.GET("/articles", a.ListArticles)
		api.GET("/articles/:id", a.GetArticle)
		api.POST("/articles/:id/read", a.MarkArticleRead)

		api.GET("/achievements", a.ListAchievements)

		api.GET("/recommendation", a.GetRecommendation)
		api.PUT("/recommendation", a.SetRecommendation)
		api.POST("/recommendation/rotate", a.RotateRecommendation)

		api.GET("/view", a.GetView)
		api.PUT("/view", a.SetView)

		api.GET("/stats", a.GetStats)
		api.GET("/profile", a.GetProfile)

		if a.backup != nil {
			api.POST("/snapshot", a.SaveSnapshot)
			api.POST("/snapshot/restore", a.RestoreSnapshot)
		}
	}

	return r
}

// requestLogger logs one line per request
func (a *API) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		a.logger.Debug("http.request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
