// Package di provides dependency injection configuration for the NicheFeed server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/nichefeed/nichefeed-server/internal/config"
	"github.com/nichefeed/nichefeed-server/internal/di/providers"
	"github.com/nichefeed/nichefeed-server/internal/logger"
	"github.com/nichefeed/nichefeed-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Storage layer
	do.Provide(injector, providers.ProvideStore)

	// Provider adapter
	do.Provide(injector, providers.ProvideYouTubeClient)

	// Business services
	do.Provide(injector, providers.ProvideNicheService)
	do.Provide(injector, providers.ProvideUserService)
	do.Provide(injector, providers.ProvideFeedService)
	do.Provide(injector, providers.ProvideTranscriptService)
	do.Provide(injector, providers.ProvideWatchlistService)
	do.Provide(injector, providers.ProvideIngestService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services.
// This triggers lazy initialization of everything the server needs.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.YouTubeClientHandle](injector)

	_ = do.MustInvoke[*service.NicheService](injector)
	_ = do.MustInvoke[*service.UserService](injector)
	_ = do.MustInvoke[*service.FeedService](injector)
	_ = do.MustInvoke[*service.TranscriptService](injector)
	_ = do.MustInvoke[*service.WatchlistService](injector)
	_ = do.MustInvoke[*service.IngestService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
