package service

import (
	"github.com/mvoronin/clinic-sync/internal/config"
	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/internal/store"
	"github.com/mvoronin/clinic-sync/internal/validators"
)

type Services struct {
	AuthService   AuthService
	RecordService RecordService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		RecordService: NewRecordService(storages.RecordRepository, validators.NewRecordValidator(), logger),
	}
}
