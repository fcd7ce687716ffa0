package providers

import (
	"github.com/samber/do/v2"

	"github.com/nichefeed/nichefeed-server/internal/logger"
	"github.com/nichefeed/nichefeed-server/internal/service"
)

// ProvideNicheService provides the niche reference-data service.
func ProvideNicheService(i do.Injector) (*service.NicheService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewNicheService(storeHandle.Store, log.Logger), nil
}

// ProvideUserService provides the user registration service.
func ProvideUserService(i do.Injector) (*service.UserService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewUserService(storeHandle.Store, log.Logger), nil
}

// ProvideFeedService provides the feed composition service.
func ProvideFeedService(i do.Injector) (*service.FeedService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFeedService(storeHandle.Store, log.Logger), nil
}

// ProvideTranscriptService provides the transcript lookup service.
func ProvideTranscriptService(i do.Injector) (*service.TranscriptService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTranscriptService(storeHandle.Store, log.Logger), nil
}

// ProvideWatchlistService provides the watchlist service.
func ProvideWatchlistService(i do.Injector) (*service.WatchlistService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewWatchlistService(storeHandle.Store, log.Logger), nil
}

// ProvideIngestService provides the video ingestion service.
// The provider is nil without an API key; Refresh then fails with 503.
func ProvideIngestService(i do.Injector) (*service.IngestService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	ytHandle := do.MustInvoke[*YouTubeClientHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	var provider service.VideoProvider
	if ytHandle.Client != nil {
		provider = ytHandle.Client
	}

	return service.NewIngestService(storeHandle.Store, provider, log.Logger), nil
}
