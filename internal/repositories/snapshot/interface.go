package snapshot

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pourlog/internal/repositories/snapshot Repository

import (
	"context"
)

// Repository defines the interface for journal snapshot persistence
type Repository interface {
	// SaveSnapshot stores the journal state of an owner, replacing any previous one
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// GetSnapshot retrieves the latest journal state of an owner
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error)

	// DeleteSnapshot removes the journal state of an owner
	DeleteSnapshot(ctx context.Context, input *DeleteSnapshotInput) error

	// ListSnapshotOwners lists every owner with a snapshot, most recently saved first
	ListSnapshotOwners(ctx context.Context) (*ListSnapshotOwnersOutput, error)
}
