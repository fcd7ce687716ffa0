package providers

import (
	"github.com/samber/do/v2"

	"github.com/nichefeed/nichefeed-server/internal/config"
	"github.com/nichefeed/nichefeed-server/internal/logger"
	"github.com/nichefeed/nichefeed-server/internal/youtube"
)

// YouTubeClientHandle wraps the optional YouTube client. Client is nil
// when no API key is configured; the refresh endpoint then answers 503
// and the rest of the server works normally.
type YouTubeClientHandle struct {
	Client *youtube.Client
}

// ProvideYouTubeClient provides the YouTube Data API client.
func ProvideYouTubeClient(i do.Injector) (*YouTubeClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.YouTube.APIKey == "" {
		log.Warn("YouTube API key not set, video refresh disabled")
		return &YouTubeClientHandle{}, nil
	}

	client := youtube.New(cfg.YouTube.APIKey, log.Logger)
	log.Info("YouTube client initialized")

	return &YouTubeClientHandle{Client: client}, nil
}
