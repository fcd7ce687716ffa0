package domain

import "time"

// User is a registered viewer and their niche selection.
// SelectedNiches is an ordered list of niche IDs. The client limits the
// selection to 1-3 niches; the server intentionally does not enforce
// that bound, and an empty selection simply yields an empty feed.
type User struct {
	ID             string    `json:"userId"`
	Email          string    `json:"email"`
	SelectedNiches []string  `json:"selectedNiches"`
	CreatedAt      time.Time `json:"createdAt"`
}

// HasSelection returns true if the user has chosen at least one niche.
func (u *User) HasSelection() bool {
	return len(u.SelectedNiches) > 0
}
