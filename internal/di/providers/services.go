package providers

import (
	"github.com/samber/do/v2"

	"github.com/shloka-app/shloka-server/internal/logger"
	"github.com/shloka-app/shloka-server/internal/service"
)

// serverVersion is reported on the instance endpoint and in health checks.
const serverVersion = "1.0.0"

// ProvideContentService provides the catalog read service.
func ProvideContentService(i do.Injector) (*service.ContentService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewContentService(storeHandle.Store, log.Logger), nil
}

// ProvideInstanceService provides the server instance service.
func ProvideInstanceService(i do.Injector) (*service.InstanceService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewInstanceService(storeHandle.Store, log.Logger, serverVersion), nil
}
