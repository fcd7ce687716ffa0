package youtube

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Search runs a keyword search constrained to video results ordered by
// relevance, then fetches duration and statistics for the returned IDs
// and merges the two responses by provider ID. Either call failing
// surfaces as a single wrapped error; nothing is returned partially.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Candidate, error) {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if maxResults > maxMaxResults {
		maxResults = maxMaxResults
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("videoDefinition", "high")
	params.Set("order", "relevance")

	body, err := c.doRequest(ctx, "search", params)
	if err != nil {
		return nil, wrapError("search", query, err)
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, wrapError("search", query, fmt.Errorf("parse response: %w", err))
	}

	ids := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	if len(ids) == 0 {
		return []Candidate{}, nil
	}

	details, err := c.videoDetails(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	return details, nil
}

// videoDetails fetches snippet, contentDetails and statistics for the
// given IDs. Output order follows the details response.
func (c *Client) videoDetails(ctx context.Context, query string, ids []string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("id", strings.Join(ids, ","))

	body, err := c.doRequest(ctx, "videos", params)
	if err != nil {
		return nil, wrapError("details", query, err)
	}

	var detailsResp videosResponse
	if err := json.Unmarshal(body, &detailsResp); err != nil {
		return nil, wrapError("details", query, fmt.Errorf("parse response: %w", err))
	}

	candidates := make([]Candidate, 0, len(detailsResp.Items))
	for i := range detailsResp.Items {
		candidates = append(candidates, formatVideo(&detailsResp.Items[i]))
	}
	return candidates, nil
}

// formatVideo maps one raw API item to our schema.
func formatVideo(item *videoItem) Candidate {
	// The API returns counters as decimal strings; absent or garbled
	// counts default to zero.
	var viewCount int64
	if item.Statistics.ViewCount != "" {
		viewCount, _ = strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
	}

	var publishedAt time.Time
	if item.Snippet.PublishedAt != "" {
		publishedAt, _ = time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	}

	return Candidate{
		ProviderID:   item.ID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ThumbnailURL: item.Snippet.Thumbnails.High.URL,
		ChannelName:  item.Snippet.ChannelTitle,
		Duration:     ParseDuration(item.ContentDetails.Duration),
		ViewCount:    viewCount,
		PublishedAt:  publishedAt,
		URL:          "https://www.youtube.com/watch?v=" + item.ID,
	}
}
