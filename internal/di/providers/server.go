package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/nichefeed/nichefeed-server/internal/api"
	"github.com/nichefeed/nichefeed-server/internal/config"
	"github.com/nichefeed/nichefeed-server/internal/logger"
	"github.com/nichefeed/nichefeed-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	nicheService := do.MustInvoke[*service.NicheService](i)
	userService := do.MustInvoke[*service.UserService](i)
	feedService := do.MustInvoke[*service.FeedService](i)
	transcriptService := do.MustInvoke[*service.TranscriptService](i)
	watchlistService := do.MustInvoke[*service.WatchlistService](i)
	ingestService := do.MustInvoke[*service.IngestService](i)

	services := api.Services{
		Niche:      nicheService,
		User:       userService,
		Feed:       feedService,
		Transcript: transcriptService,
		Watchlist:  watchlistService,
		Ingest:     ingestService,
	}

	handler := api.NewServer(services, cfg.Server.RequestTimeout, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
