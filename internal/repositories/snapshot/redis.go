package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	snapshotKeyPrefix = "journal_snapshot:"
	snapshotIndexKey  = "journal_snapshots"
)

// ErrSnapshotNotFound is returned when an owner has no stored snapshot
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Config holds configuration for the Redis snapshot repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed snapshot repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSnapshot stores the journal state of an owner, replacing any previous one
func (r *redisRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}
	if input.Owner == "" {
		return errors.New("owner cannot be empty")
	}
	if input.SavedAt.IsZero() {
		return errors.New("saved at cannot be zero")
	}

	docJSON, err := json.Marshal(&document{
		SavedAt: input.SavedAt,
		State:   input.State,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, snapshotKeyPrefix+input.Owner, docJSON, 0)
	pipe.ZAdd(ctx, snapshotIndexKey, redis.Z{
		Score:  float64(input.SavedAt.Unix()),
		Member: input.Owner,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// GetSnapshot retrieves the latest journal state of an owner
func (r *redisRepository) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error) {
	if input == nil || input.Owner == "" {
		return nil, errors.New("input and owner cannot be empty")
	}

	docJSON, err := r.client.Get(ctx, snapshotKeyPrefix+input.Owner).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var doc document
	if err := json.Unmarshal(docJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	if doc.State == nil {
		return nil, ErrSnapshotNotFound
	}

	return &GetSnapshotOutput{
		State:   doc.State,
		SavedAt: doc.SavedAt,
	}, nil
}

// DeleteSnapshot removes the journal state of an owner. Deleting a missing snapshot is not an error.
func (r *redisRepository) DeleteSnapshot(ctx context.Context, input *DeleteSnapshotInput) error {
	if input == nil || input.Owner == "" {
		return errors.New("input and owner cannot be empty")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, snapshotKeyPrefix+input.Owner)
	pipe.ZRem(ctx, snapshotIndexKey, input.Owner)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}

// ListSnapshotOwners lists every owner with a snapshot, most recently saved first
func (r *redisRepository) ListSnapshotOwners(ctx context.Context) (*ListSnapshotOwnersOutput, error) {
	owners, err := r.client.ZRevRange(ctx, snapshotIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot owners: %w", err)
	}

	return &ListSnapshotOwnersOutput{
		Owners: owners,
	}, nil
}
