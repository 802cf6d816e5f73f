// Package di provides dependency injection configuration for the SHLOKA
// content server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/shloka-app/shloka-server/internal/config"
	"github.com/shloka-app/shloka-server/internal/di/providers"
	"github.com/shloka-app/shloka-server/internal/logger"
	"github.com/shloka-app/shloka-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Business services
	do.Provide(injector, providers.ProvideContentService)
	do.Provide(injector, providers.ProvideInstanceService)

	// Startup work: seed + instance identity
	do.Provide(injector, providers.ProvideBootstrap)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services in dependency order. The bootstrap
// provider seeds the catalog and mints the instance identity, so by the
// time the HTTP server provider runs the store is ready to serve.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*service.ContentService](injector)
	_ = do.MustInvoke[*service.InstanceService](injector)
	_ = do.MustInvoke[*providers.Bootstrap](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
