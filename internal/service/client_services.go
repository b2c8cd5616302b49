package service

import (
	"github.com/mvoronin/clinic-sync/internal/adapter"
	"github.com/mvoronin/clinic-sync/internal/crypto"
	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/internal/store"
	"github.com/mvoronin/clinic-sync/internal/validators"
)

type ClientServices struct {
	AuthService    ClientAuthService
	RecordService  ClientRecordService
	NetworkMonitor NetworkMonitor
	Resolver       ConflictResolver
	SyncService    ClientSyncService
	SyncJob        ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	validator := validators.NewRecordValidator()
	monitor := NewNetworkMonitor(serverAdapter, logger)
	resolver := NewConflictResolver(logger)

	pullEngine := NewPullEngine(storages, serverAdapter, logger)
	pushEngine := NewPushEngine(storages, serverAdapter, NewConflictDetector(), resolver, logger)
	syncSvc := NewClientSyncService(monitor, pullEngine, pushEngine, logger)

	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, storages.DeviceRepository, crypto.NewPINService(), logger),
		RecordService:  NewClientRecordService(storages.RecordRepository, storages.MutationQueue, validator, logger),
		NetworkMonitor: monitor,
		Resolver:       resolver,
		SyncService:    syncSvc,
		SyncJob:        NewClientSyncJob(syncSvc),
	}
}
