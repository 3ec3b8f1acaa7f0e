package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/pourlog/internal/common/clock"
	"github.com/KirkDiggler/pourlog/internal/repositories/snapshot"
)

type service struct {
	journal      Journal
	snapshotRepo snapshot.Repository
	clock        clock.Clock
	logger       *slog.Logger
}

// New creates a new backup service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Journal == nil {
		return nil, ErrNilJournal
	}
	if cfg.SnapshotRepo == nil {
		return nil, ErrNilSnapshotRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &service{
		journal:      cfg.Journal,
		snapshotRepo: cfg.SnapshotRepo,
		clock:        cfg.Clock,
		logger:       logger,
	}, nil
}

// Save writes the current journal state for an owner
func (s *service) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, ErrMissingOwner
	}

	state := s.journal.Snapshot()
	savedAt := s.clock.Now()

	if err := s.snapshotRepo.SaveSnapshot(ctx, &snapshot.SaveSnapshotInput{
		Owner:   input.OwnerID,
		State:   state,
		SavedAt: savedAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	s.logger.Info("backup.saved", "owner", input.OwnerID, "records", len(state.Records))

	return &SaveOutput{
		SavedAt:     savedAt,
		RecordCount: len(state.Records),
	}, nil
}

// Restore replaces the journal state with the owner's saved one, if any
func (s *service) Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, ErrMissingOwner
	}

	out, err := s.snapshotRepo.GetSnapshot(ctx, &snapshot.GetSnapshotInput{Owner: input.OwnerID})
	if err != nil {
		if errors.Is(err, snapshot.ErrSnapshotNotFound) {
			s.logger.Info("backup.no_snapshot", "owner", input.OwnerID)
			return &RestoreOutput{}, nil
		}
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}

	s.journal.Restore(out.State)
	s.logger.Info("backup.restored", "owner", input.OwnerID, "records", len(out.State.Records))

	return &RestoreOutput{
		Restored:    true,
		SavedAt:     out.SavedAt,
		RecordCount: len(out.State.Records),
	}, nil
}
