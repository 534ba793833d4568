package views

import (
	"time"

	"github.com/fyyur-app/fyyur/models"
)

type VenueDetail struct {
	ID                 uint        `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	Address            string      `json:"address"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebookLink"`
	SeekingTalent      bool        `json:"seekingTalent"`
	SeekingDescription string      `json:"seekingDescription"`
	ImageLink          string      `json:"imageLink"`
	PastShows          []ShowEntry `json:"pastShows"`
	UpcomingShows      []ShowEntry `json:"upcomingShows"`
	PastShowsCount     int         `json:"pastShowsCount"`
	UpcomingShowsCount int         `json:"upcomingShowsCount"`
}

// NewVenueDetail builds the venue page. venue.Shows must have Artist loaded.
func NewVenueDetail(venue *models.Venue, now time.Time) VenueDetail {
	split := SplitShowsByTime(ArtistCounterparts(venue.Shows), now)
	return VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             venue.Genres.Strings(),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          split.Past,
		UpcomingShows:      split.Upcoming,
		PastShowsCount:     len(split.Past),
		UpcomingShowsCount: len(split.Upcoming),
	}
}

type ArtistDetail struct {
	ID                 uint        `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebookLink"`
	SeekingVenue       bool        `json:"seekingVenue"`
	SeekingDescription string      `json:"seekingDescription"`
	ImageLink          string      `json:"imageLink"`
	PastShows          []ShowEntry `json:"pastShows"`
	UpcomingShows      []ShowEntry `json:"upcomingShows"`
	PastShowsCount     int         `json:"pastShowsCount"`
	UpcomingShowsCount int         `json:"upcomingShowsCount"`
}

// NewArtistDetail builds the artist page. artist.Shows must have Venue loaded.
func NewArtistDetail(artist *models.Artist, now time.Time) ArtistDetail {
	split := SplitShowsByTime(VenueCounterparts(artist.Shows), now)
	return ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             artist.Genres.Strings(),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          split.Past,
		UpcomingShows:      split.Upcoming,
		PastShowsCount:     len(split.Past),
		UpcomingShowsCount: len(split.Upcoming),
	}
}

// ShowRow is one line of the show listing.
type ShowRow struct {
	ID              uint      `json:"id"`
	VenueID         uint      `json:"venueId"`
	VenueName       string    `json:"venueName"`
	ArtistID        uint      `json:"artistId"`
	ArtistName      string    `json:"artistName"`
	ArtistImageLink string    `json:"artistImageLink"`
	StartTime       time.Time `json:"startTime"`
}

// ShowRows flattens shows with Artist and Venue loaded.
func ShowRows(shows []*models.Show) []ShowRow {
	rows := make([]ShowRow, 0, len(shows))
	for _, s := range shows {
		row := ShowRow{
			ID:        s.ID,
			VenueID:   s.VenueID,
			ArtistID:  s.ArtistID,
			StartTime: s.StartTime.UTC(),
		}
		if s.Venue != nil {
			row.VenueName = s.Venue.Name
		}
		if s.Artist != nil {
			row.ArtistName = s.Artist.Name
			row.ArtistImageLink = s.Artist.ImageLink
		}
		rows = append(rows, row)
	}
	return rows
}

// SearchResult is the search page payload.
type SearchResult struct {
	Count      int       `json:"count"`
	Data       []Listing `json:"data"`
	SearchTerm string    `json:"searchTerm"`
}

func NewSearchResult(term string, listings []Listing) SearchResult {
	return SearchResult{Count: len(listings), Data: listings, SearchTerm: term}
}
