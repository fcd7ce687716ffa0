package domain

import "time"

// Video is a catalog entry ingested from the provider and assigned to a
// single niche. Videos are immutable after ingestion.
type Video struct {
	ID           string    `json:"videoId"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	ChannelName  string    `json:"channelName,omitempty"`
	Duration     int       `json:"duration"` // seconds
	ViewCount    int64     `json:"viewCount"`
	PublishedAt  time.Time `json:"publishedAt,omitzero"`
	URL          string    `json:"url,omitempty"`
	NicheID      string    `json:"nicheId"`
	CreatedAt    time.Time `json:"createdAt"`
}
