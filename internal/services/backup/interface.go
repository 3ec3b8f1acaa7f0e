package backup

import (
	"context"

	"github.com/KirkDiggler/pourlog/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_journal.go github.com/KirkDiggler/pourlog/internal/services/backup Journal

// Journal is the part of the journal service a backup reads and replaces
type Journal interface {
	Snapshot() *models.JournalState
	Restore(state *models.JournalState)
}

// Service copies journal state to and from durable storage
type Service interface {
	// Save writes the current journal state for an owner
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Restore replaces the journal state with the owner's saved one, if any
	Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error)
}
