package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/shloka-app/shloka-server/internal/domain"
	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
	"github.com/shloka-app/shloka-server/internal/id"
)

// metaInstanceKey is the singleton key for the installation identity.
var metaInstanceKey = []byte("meta:instance")

// GetInstance retrieves the singleton installation identity.
func (s *Store) GetInstance(_ context.Context) (*domain.Instance, error) {
	var instance domain.Instance

	err := s.get(metaInstanceKey, &instance)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, domainerrors.NotFound("instance not initialized")
		}
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}

	return &instance, nil
}

// InitializeInstance ensures an installation identity exists, minting one
// on first boot. The stored version is refreshed when the binary changes.
func (s *Store) InitializeInstance(ctx context.Context, name, version string) (*domain.Instance, error) {
	instance, err := s.GetInstance(ctx)
	if err == nil {
		if instance.Version != version {
			instance.Version = version
			if err := s.set(metaInstanceKey, instance); err != nil {
				return nil, fmt.Errorf("failed to update instance version: %w", err)
			}
		}
		if s.logger != nil {
			s.logger.Info("instance identity found", "id", instance.ID, "version", instance.Version)
		}
		return instance, nil
	}

	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	instanceID, err := id.NewInstanceID()
	if err != nil {
		return nil, fmt.Errorf("failed to mint instance id: %w", err)
	}

	instance = &domain.Instance{
		ID:        instanceID,
		Name:      name,
		Version:   version,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.set(metaInstanceKey, instance); err != nil {
		return nil, fmt.Errorf("failed to create instance: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("instance identity created", "id", instance.ID, "version", instance.Version)
	}

	return instance, nil
}
