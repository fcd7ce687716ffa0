package domain

import "time"

// Watchlist is a user's saved list of video IDs, at most one per user.
// Updates replace VideoIDs wholesale rather than merging.
type Watchlist struct {
	ID        string    `json:"watchlistId"`
	UserID    string    `json:"userId"`
	VideoIDs  []string  `json:"videoIds"`
	CreatedAt time.Time `json:"createdAt"`
}
