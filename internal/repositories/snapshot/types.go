package snapshot

import (
	"time"

	"github.com/KirkDiggler/pourlog/internal/models"
)

// SaveSnapshotInput contains parameters for saving a snapshot
type SaveSnapshotInput struct {
	Owner   string
	State   *models.JournalState
	SavedAt time.Time
}

// GetSnapshotInput contains parameters for retrieving a snapshot
type GetSnapshotInput struct {
	Owner string
}

// GetSnapshotOutput contains the stored snapshot
type GetSnapshotOutput struct {
	State   *models.JournalState
	SavedAt time.Time
}

// DeleteSnapshotInput contains parameters for deleting a snapshot
type DeleteSnapshotInput struct {
	Owner string
}

// ListSnapshotOwnersOutput contains the owners with a stored snapshot
type ListSnapshotOwnersOutput struct {
	Owners []string
}

// document is the JSON stored per owner
type document struct {
	SavedAt time.Time            `json:"savedAt"`
	State   *models.JournalState `json:"state"`
}
