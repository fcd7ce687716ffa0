package domain

// Transcript is the full text of a video, fetched before watching.
// Logically 1:1 with Video; the store does not enforce uniqueness, so
// lookups take the first match in query order.
type Transcript struct {
	ID      string `json:"transcriptId"`
	VideoID string `json:"videoId"`
	Content string `json:"content"`
}
