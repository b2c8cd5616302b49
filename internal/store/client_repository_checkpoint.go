package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/models"
)

type checkpointRepository struct {
	*DB
	logger *logger.Logger
}

// NewCheckpointRepository constructs a [CheckpointRepository] backed by the
// on-device SQLite database.
func NewCheckpointRepository(db *DB, logger *logger.Logger) CheckpointRepository {
	return &checkpointRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *checkpointRepository) Checkpoint(ctx context.Context, collection models.Collection) (time.Time, error) {
	var pulledAt time.Time

	err := c.DB.QueryRowContext(ctx, getCheckpoint, collection).Scan(&pulledAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Never pulled: a zero checkpoint triggers a full initial pull.
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return pulledAt, nil
}

func (c *checkpointRepository) SetCheckpoint(ctx context.Context, collection models.Collection, pulledAt time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := c.DB.ExecContext(ctx, upsertCheckpoint, collection, pulledAt.UTC()); err != nil {
		log.Err(err).
			Str("func", "checkpointRepository.SetCheckpoint").
			Str("collection", string(collection)).
			Msg("failed to store checkpoint")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type deviceRepository struct {
	*DB
	logger *logger.Logger
}

// NewDeviceRepository constructs a [DeviceRepository] backed by the on-device
// SQLite database.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	return &deviceRepository{
		DB:     db,
		logger: logger,
	}
}

func (d *deviceRepository) PINHash(ctx context.Context) (string, error) {
	var hash string

	err := d.DB.QueryRowContext(ctx, getDevicePINHash).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrRecordNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return hash, nil
}

func (d *deviceRepository) SetPINHash(ctx context.Context, hash string) error {
	if _, err := d.DB.ExecContext(ctx, upsertDevicePINHash, hash); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
