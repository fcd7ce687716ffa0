// Package domain defines the core entities of the NicheFeed catalog.
package domain

// Niche is a topic category used to filter the video feed.
// Niches are reference data: created and updated by an administrative
// process (the seeder), never by end users.
type Niche struct {
	ID          string   `json:"nicheId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
