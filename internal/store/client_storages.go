package store

import (
	"context"
	"fmt"

	"github.com/mvoronin/clinic-sync/internal/config"
	"github.com/mvoronin/clinic-sync/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer. They all share one SQLite
// connection, so a write to a record and its queue entry land in the same
// database file.
type ClientStorages struct {
	// RecordRepository is the SQLite-backed store of clinic records kept on
	// the device for offline reads.
	RecordRepository LocalRecordRepository

	// MutationQueue is the durable FIFO of local writes awaiting push.
	MutationQueue MutationQueueRepository

	// CheckpointRepository stores the per-collection pull checkpoints.
	CheckpointRepository CheckpointRepository

	// DeviceRepository stores the device unlock PIN hash.
	DeviceRepository DeviceRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations.
//  3. Constructs and returns a [ClientStorages] value with every repository
//     wired to the shared connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		RecordRepository:     NewLocalRecordRepository(db, logger),
		MutationQueue:        NewMutationQueueRepository(db, logger),
		CheckpointRepository: NewCheckpointRepository(db, logger),
		DeviceRepository:     NewDeviceRepository(db, logger),
	}, nil
}
