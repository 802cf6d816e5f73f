package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shloka-app/shloka-server/internal/domain"
	"github.com/shloka-app/shloka-server/internal/store"
)

// ServerName identifies this server software in the instance record and the
// welcome document.
const ServerName = "shloka-server"

// InstanceService manages the singleton installation identity.
type InstanceService struct {
	store   *store.Store
	logger  *slog.Logger
	version string
}

// NewInstanceService creates a new instance service. version is the build
// version of the running binary.
func NewInstanceService(store *store.Store, logger *slog.Logger, version string) *InstanceService {
	return &InstanceService{
		store:   store,
		logger:  logger,
		version: version,
	}
}

// GetInstance retrieves the installation identity.
func (s *InstanceService) GetInstance(ctx context.Context) (*domain.Instance, error) {
	instance, err := s.store.GetInstance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}
	return instance, nil
}

// InitializeInstance ensures the installation identity exists, minting one
// on first boot. Called once during startup.
func (s *InstanceService) InitializeInstance(ctx context.Context) (*domain.Instance, error) {
	instance, err := s.store.InitializeInstance(ctx, ServerName, s.version)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize instance: %w", err)
	}
	return instance, nil
}

// Version returns the build version of the running binary.
func (s *InstanceService) Version() string {
	return s.version
}
