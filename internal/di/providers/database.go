package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/shloka-app/shloka-server/internal/config"
	"github.com/shloka-app/shloka-server/internal/domain"
	"github.com/shloka-app/shloka-server/internal/logger"
	"github.com/shloka-app/shloka-server/internal/service"
	"github.com/shloka-app/shloka-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the content database.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	db, err := store.New(cfg.DatabaseDir(), log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", cfg.DatabaseDir())

	return &StoreHandle{Store: db}, nil
}

// Bootstrap contains the startup result: the seeded catalog state and the
// instance identity.
type Bootstrap struct {
	Instance *domain.Instance
	Seeded   bool
}

// ProvideBootstrap seeds the catalog if the stored fingerprint is stale and
// mints the instance identity on first run.
func ProvideBootstrap(i do.Injector) (*Bootstrap, error) {
	log := do.MustInvoke[*logger.Logger](i)
	contentService := do.MustInvoke[*service.ContentService](i)
	instanceService := do.MustInvoke[*service.InstanceService](i)

	ctx := context.Background()

	seeded, err := contentService.SeedCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if seeded {
		log.Info("Content catalog seeded")
	} else {
		log.Info("Content catalog up to date")
	}

	if err := contentService.CheckIntegrity(ctx); err != nil {
		return nil, err
	}

	instance, err := instanceService.InitializeInstance(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("Server instance ready", "instance_id", instance.ID)

	return &Bootstrap{
		Instance: instance,
		Seeded:   seeded,
	}, nil
}
