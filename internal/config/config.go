// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything needed to run pourlog
type Config struct {
	ListenAddr string
	GinMode    string

	// CatalogPath points at a YAML catalog. Empty uses the embedded one.
	CatalogPath string

	// RedisAddr enables snapshots when set
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SnapshotOwner string

	DiscordToken  string
	ApplicationID string
	GuildID       string

	LogLevel  string
	LogFormat string
}

// Load reads the configuration from the environment. When envFile is set it is
// loaded first; variables already set in the environment win. A missing
// default .env file is not an error.
func Load(envFile string) (*Config, error) {
	path := envFile
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if envFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}

	redisDB := 0
	if raw := getEnv("REDIS_DB", ""); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil || db < 0 {
			return nil, fmt.Errorf("invalid REDIS_DB %q", raw)
		}
		redisDB = db
	}

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		GinMode:       getEnv("GIN_MODE", "release"),
		CatalogPath:   getEnv("CATALOG_PATH", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		SnapshotOwner: getEnv("SNAPSHOT_OWNER", "default"),
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}
