package api

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nichefeed/nichefeed-server/internal/domain"
	"github.com/nichefeed/nichefeed-server/internal/http/response"
	"github.com/nichefeed/nichefeed-server/internal/service"
	"github.com/nichefeed/nichefeed-server/internal/store"
	"github.com/nichefeed/nichefeed-server/internal/youtube"
)

// stubProvider returns canned candidates or a canned error.
type stubProvider struct {
	candidates []youtube.Candidate
	err        error
}

func (p *stubProvider) Search(ctx context.Context, query string, maxResults int) ([]youtube.Candidate, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.candidates, nil
}

// setupTestServer creates a server over a temp store. provider may be
// nil to exercise the unconfigured ingestion path.
func setupTestServer(t *testing.T, provider service.VideoProvider) (*Server, *store.Store) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.New(dbPath, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	services := Services{
		Niche:      service.NewNicheService(s, logger),
		Feed:       service.NewFeedService(s, logger),
		Transcript: service.NewTranscriptService(s, logger),
		Watchlist:  service.NewWatchlistService(s, logger),
		User:       service.NewUserService(s, logger),
		Ingest:     service.NewIngestService(s, provider, logger),
	}

	return NewServer(services, 30*time.Second, logger), s
}

// doRequest runs one request through the full middleware stack.
func doRequest(t *testing.T, srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[response.ErrorEnvelope](t, rec).Error
}

func TestHealthCheck(t *testing.T) {
	srv, _ := setupTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody[HealthResponse](t, rec).Status)
}

func TestListNiches(t *testing.T) {
	srv, s := setupTestServer(t, nil)
	ctx := context.Background()

	require.NoError(t, s.CreateNiche(ctx, &domain.Niche{ID: "niche1", Name: "Advanced JavaScript"}))
	require.NoError(t, s.CreateNiche(ctx, &domain.Niche{ID: "niche2", Name: "Guitar Necks"}))

	rec := doRequest(t, srv, http.MethodGet, "/api/niches", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	niches := decodeBody[[]*domain.Niche](t, rec)
	require.Len(t, niches, 2)
	assert.Equal(t, "niche1", niches[0].ID)
}

func TestGetFeed_Unauthorized(t *testing.T) {
	srv, _ := setupTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodGet, "/api/videos/feed", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", errorMessage(t, rec))
}

func TestGetFeed_MalformedAuthHeader(t *testing.T) {
	srv, _ := setupTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/videos/feed", nil)
	req.Header.Set("Authorization", "usr-1")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetFeed_UnknownUser(t *testing.T) {
	srv, _ := setupTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodGet, "/api/videos/feed", "no-such-user", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", errorMessage(t, rec))
}

func TestGetFeed_FiltersBySelection(t *testing.T) {
	srv, s := setupTestServer(t, nil)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, &domain.User{
		ID:             "usr-1",
		Email:          "a@example.com",
		SelectedNiches: []string{"niche1"},
	}))
	for _, v := range []*domain.Video{
		{ID: "vid-1", Title: "Closures", NicheID: "niche1"},
		{ID: "vid-2", Title: "Guitar Necks", NicheID: "niche2"},
	} {
		require.NoError(t, s.CreateVideo(ctx, v))
	}

	rec := doRequest(t, srv, http.MethodGet, "/api/videos/feed", "usr-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	videos := decodeBody[[]*domain.Video](t, rec)
	require.Len(t, videos, 1)
	assert.Equal(t, "vid-1", videos[0].ID)
}

func TestGetFeed_EmptySelection(t *testing.T) {
	srv, s := setupTestServer(t, nil)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, &domain.User{ID: "usr-1", Email: "a@example.com"}))
	require.NoError(t, s.CreateVideo(ctx, &domain.Video{ID: "vid-1", NicheID: "niche1"}))

	rec := doRequest(t, srv, http.MethodGet, "/api/videos/feed", "usr-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Empty feed serializes as [], not null.
	assert.Equal(t, "[]", rec.Body.String())
}

func TestGetTranscript(t *testing.T) {
	srv, s := setupTestServer(t, nil)
	ctx := context.Background()

	require.NoError(t, s.CreateTranscript(ctx, &domain.Transcript{
		ID:      "tr-1",
		VideoID: "vid-1",
		Content: "Welcome to the show.",
	}))

	rec := doRequest(t, srv, http.MethodGet, "/api/videos/vid-1/transcript", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	tr := decodeBody[domain.Transcript](t, rec)
	assert.Equal(t, "vid-1", tr.VideoID)
	assert.Equal(t, "Welcome to the show.", tr.Content)
}

func TestGetTranscript_NotFound(t *testing.T) {
	srv, _ := setupTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodGet, "/api/videos/vid-1/transcript", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Transcript not found", errorMessage(t, rec))
}

func TestUpsertWatchlist(t *testing.T) {
	srv, s := setupTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/watchlists", "usr-1",
		UpsertWatchlistRequest{VideoIDs: []string{"vid-1", "vid-2"}})
	require.Equal(t, http.StatusOK, rec.Code)

	first := decodeBody[UpsertWatchlistResponse](t, rec)
	assert.NotEmpty(t, first.WatchlistID)

	// Second save overwrites and returns the same ID.
	rec = doRequest(t, srv, http.MethodPost, "/api/watchlists", "usr-1",
		UpsertWatchlistRequest{VideoIDs: []string{"vid-3"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, first.WatchlistID, decodeBody[UpsertWatchlistResponse](t, rec).WatchlistID)

	got, err := s.GetWatchlist(context.Background(), "usr-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"vid-3"}, got.VideoIDs)
}

func TestUpsertWatchlist_Unauthorized(t *testing.T) {
	srv, _ := setupTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/watchlists", "",
		UpsertWatchlistRequest{VideoIDs: []string{"vid-1"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpsertWatchlist_EmptyBody(t *testing.T) {
	srv, s := setupTestServer(t, nil)

	// Missing videoIds saves an empty watchlist.
	rec := doRequest(t, srv, http.MethodPost, "/api/watchlists", "usr-1", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := s.GetWatchlist(context.Background(), "usr-1")
	require.NoError(t, err)
	assert.Empty(t, got.VideoIDs)
}

func TestCreateUser(t *testing.T) {
	srv, s := setupTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/users", "", CreateUserRequest{
		Email:          "a@example.com",
		SelectedNiches: []string{"niche1", "niche2"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	userID := decodeBody[CreateUserResponse](t, rec).UserID
	require.NotEmpty(t, userID)

	user, err := s.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)
	assert.Equal(t, []string{"niche1", "niche2"}, user.SelectedNiches)
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	srv, _ := setupTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/users", "",
		CreateUserRequest{Email: "not-an-email"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "email")
}

func TestCreateUser_MissingEmail(t *testing.T) {
	srv, _ := setupTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/users", "", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshVideos_NotConfigured(t *testing.T) {
	srv, _ := setupTestServer(t, nil)

	// The 503 wins even over an invalid body.
	rec := doRequest(t, srv, http.MethodPost, "/api/videos/refresh", "", map[string]any{})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "YouTube service not configured", errorMessage(t, rec))
}

func TestRefreshVideos_MissingFields(t *testing.T) {
	srv, _ := setupTestServer(t, &stubProvider{})

	rec := doRequest(t, srv, http.MethodPost, "/api/videos/refresh", "",
		map[string]any{"nicheId": "niche1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "keywords")
}

func TestRefreshVideos(t *testing.T) {
	provider := &stubProvider{
		candidates: []youtube.Candidate{
			{ProviderID: "abc123", Title: "Fretboard Radius Techniques", Duration: 933},
			{ProviderID: "def456", Title: "Neck Carving Basics", Duration: 3720},
		},
	}
	srv, s := setupTestServer(t, provider)

	rec := doRequest(t, srv, http.MethodPost, "/api/videos/refresh", "",
		RefreshVideosRequest{NicheID: "niche2", Keywords: "guitar necks"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[RefreshVideosResponse](t, rec)
	assert.Equal(t, "Successfully refreshed 2 videos", resp.Message)
	require.Len(t, resp.Videos, 2)

	feed, err := s.ListVideosByNiches(context.Background(), []string{"niche2"})
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}

func TestRefreshVideos_ProviderError(t *testing.T) {
	srv, s := setupTestServer(t, &stubProvider{err: context.DeadlineExceeded})

	rec := doRequest(t, srv, http.MethodPost, "/api/videos/refresh", "",
		RefreshVideosRequest{NicheID: "niche1", Keywords: "javascript"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to refresh videos from YouTube", errorMessage(t, rec))

	count, err := s.Videos.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
