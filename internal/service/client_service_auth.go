package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvoronin/clinic-sync/internal/adapter"
	"github.com/mvoronin/clinic-sync/internal/crypto"
	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/internal/store"
	"github.com/mvoronin/clinic-sync/models"
)

type clientAuthService struct {
	adapter    adapter.ServerAdapter
	device     store.DeviceRepository
	pinService crypto.PINService
	logger     *logger.Logger
}

// NewClientAuthService constructs a [ClientAuthService] combining the server
// adapter for online auth with the device repository for the offline PIN.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, device store.DeviceRepository, pinService crypto.PINService, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:    serverAdapter,
		device:     device,
		pinService: pinService,
		logger:     logger,
	}
}

// Register implements [ClientAuthService].
func (c *clientAuthService) Register(ctx context.Context, user models.User) error {
	if user.Login == "" || user.Password == "" {
		return ErrInvalidDataProvided
	}

	if _, err := c.adapter.Register(ctx, user); err != nil {
		return fmt.Errorf("register on server: %w", err)
	}

	return nil
}

// Login implements [ClientAuthService].
func (c *clientAuthService) Login(ctx context.Context, user models.User) (models.Token, error) {
	if user.Login == "" || user.Password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := c.adapter.Login(ctx, user)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.Token{}, ErrWrongPassword
		}
		return models.Token{}, fmt.Errorf("login on server: %w", err)
	}

	return token, nil
}

// SetPIN implements [ClientAuthService].
func (c *clientAuthService) SetPIN(ctx context.Context, pin string) error {
	hash, err := c.pinService.HashPIN(pin)
	if err != nil {
		return err
	}

	if err = c.device.SetPINHash(ctx, hash); err != nil {
		return fmt.Errorf("store pin hash: %w", err)
	}

	return nil
}

// HasPIN implements [ClientAuthService].
func (c *clientAuthService) HasPIN(ctx context.Context) bool {
	_, err := c.device.PINHash(ctx)
	return err == nil
}

// UnlockOffline implements [ClientAuthService].
func (c *clientAuthService) UnlockOffline(ctx context.Context, pin string) error {
	hash, err := c.device.PINHash(ctx)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return ErrNoPINConfigured
		}
		return fmt.Errorf("load pin hash: %w", err)
	}

	return c.pinService.VerifyPIN(hash, pin)
}
