package api

import "time"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	homeHandler   homeHandler
	venueHandler  venueHandler
	artistHandler artistHandler
	showHandler   showHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"venue not found"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"state"`
	Details string `json:"details,omitempty" example:"Invalid field state: must be a US state code"`
}

// Page is the envelope of every rendered page.
type Page struct {
	Flashes []Flash `json:"flashes"`
	Data    any     `json:"data"`
}

// Option is one entry of a select list.
type Option struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// FormChoices are the fixed select lists of the venue and artist forms.
type FormChoices struct {
	Genres []string `json:"genres"`
	States []string `json:"states"`
}

// FormPage is the payload of a create or edit form.
type FormPage struct {
	Action  string       `json:"action"`
	Values  any          `json:"values"`
	Choices *FormChoices `json:"choices,omitempty"`
	Artists []Option     `json:"artists,omitempty"`
	Venues  []Option     `json:"venues,omitempty"`
}

// HomePage lists the newest venues and artists.
type HomePage struct {
	RecentVenues  []Option `json:"recentVenues"`
	RecentArtists []Option `json:"recentArtists"`
}

// HealthStatus is the /healthz body.
type HealthStatus struct {
	Status    string    `json:"status"`
	StartedAt time.Time `json:"startedAt"`
	Uptime    string    `json:"uptime"`
}
