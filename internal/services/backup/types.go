package backup

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/pourlog/internal/common/clock"
	"github.com/KirkDiggler/pourlog/internal/repositories/snapshot"
)

// Config holds the dependencies of the backup service
type Config struct {
	Journal      Journal
	SnapshotRepo snapshot.Repository
	Clock        clock.Clock

	// Logger is optional
	Logger *slog.Logger
}

// SaveInput identifies whose journal is saved
type SaveInput struct {
	OwnerID string
}

// SaveOutput describes the written snapshot
type SaveOutput struct {
	SavedAt     time.Time
	RecordCount int
}

// RestoreInput identifies whose journal is restored
type RestoreInput struct {
	OwnerID string
}

// RestoreOutput describes the restored snapshot
type RestoreOutput struct {
	// Restored is false when the owner has no snapshot; the journal is left unchanged
	Restored bool

	SavedAt     time.Time
	RecordCount int
}
