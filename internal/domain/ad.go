package domain

import "time"

type Ad struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	ImageURL string     `json:"image_url"`
	LinkURL  string     `json:"link_url,omitempty"`
	Active   bool       `json:"active"`
	StartsAt *time.Time `json:"start_date,omitempty"`
	EndsAt   *time.Time `json:"end_date,omitempty"`
	Position int        `json:"position"`
}

// Live reports whether the ad should be shown at the given instant.
// Nil bounds are open.
func (a Ad) Live(now time.Time) bool {
	if !a.Active {
		return false
	}
	if a.StartsAt != nil && now.Before(*a.StartsAt) {
		return false
	}
	if a.EndsAt != nil && now.After(*a.EndsAt) {
		return false
	}
	return true
}
