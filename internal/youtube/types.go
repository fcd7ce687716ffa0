// Package youtube provides a client for the YouTube Data API v3.
package youtube

import "time"

// Candidate carries normalized metadata for one provider video, ready
// to be stamped with a niche and stored as a catalog Video.
type Candidate struct {
	ProviderID   string    `json:"youtubeId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	ChannelName  string    `json:"channelName"`
	Duration     int       `json:"duration"` // seconds
	ViewCount    int64     `json:"viewCount"`
	PublishedAt  time.Time `json:"publishedAt"`
	URL          string    `json:"url"`
}

// Wire types for the two Data API endpoints we call. Only the fields
// we read are declared.

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
}

type videosResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		ChannelTitle string `json:"channelTitle"`
		PublishedAt  string `json:"publishedAt"`
		Thumbnails   struct {
			High struct {
				URL string `json:"url"`
			} `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	ContentDetails struct {
		Duration string `json:"duration"` // ISO 8601, e.g. "PT15M33S"
	} `json:"contentDetails"`
	Statistics struct {
		ViewCount string `json:"viewCount"` // the API returns counters as strings
	} `json:"statistics"`
}
