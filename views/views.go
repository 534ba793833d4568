// Package views turns repository rows into the shapes pages consume.
// Everything here is pure: no I/O, and "now" is always passed in.
package views

import (
	"sort"
	"time"

	"github.com/fyyur-app/fyyur/models"
)

// Listing is one row of a venue or artist list.
type Listing struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	UpcomingShowCount int    `json:"upcomingShowCount"`
}

// Area is every venue in one (city, state) pair.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Listing `json:"venues"`
}

// ShowEntry is a show seen from a detail page; the counterpart is the
// artist on a venue page and the venue on an artist page.
type ShowEntry struct {
	CounterpartID        uint      `json:"counterpartId"`
	CounterpartName      string    `json:"counterpartName"`
	CounterpartImageLink string    `json:"counterpartImageLink"`
	StartTime            time.Time `json:"startTime"`
}

// ShowSplit partitions shows around an instant.
type ShowSplit struct {
	Past     []ShowEntry `json:"past"`
	Upcoming []ShowEntry `json:"upcoming"`
}

// CountUpcoming counts the shows starting at or after now.
func CountUpcoming(shows []models.Show, now time.Time) int {
	n := 0
	for _, s := range shows {
		if s.IsUpcoming(now) {
			n++
		}
	}
	return n
}

type location struct {
	city, state string
}

// GroupVenuesByLocation partitions venues by (city, state). Areas are sorted
// by city then state and venues inside an area by name then id, so the
// result does not depend on the order rows came out of the store.
func GroupVenuesByLocation(venues []*models.Venue, now time.Time) []Area {
	byLocation := make(map[location][]Listing)
	for _, v := range venues {
		key := location{v.City, v.State}
		byLocation[key] = append(byLocation[key], Listing{
			ID:                v.ID,
			Name:              v.Name,
			UpcomingShowCount: CountUpcoming(v.Shows, now),
		})
	}

	areas := make([]Area, 0, len(byLocation))
	for key, listings := range byLocation {
		sortListings(listings)
		areas = append(areas, Area{City: key.city, State: key.state, Venues: listings})
	}
	sort.Slice(areas, func(i, j int) bool {
		if areas[i].City != areas[j].City {
			return areas[i].City < areas[j].City
		}
		return areas[i].State < areas[j].State
	})
	return areas
}

// WithUpcomingCount lists artists with their upcoming show count, by name then id.
func WithUpcomingCount(artists []*models.Artist, now time.Time) []Listing {
	listings := make([]Listing, 0, len(artists))
	for _, a := range artists {
		listings = append(listings, Listing{
			ID:                a.ID,
			Name:              a.Name,
			UpcomingShowCount: CountUpcoming(a.Shows, now),
		})
	}
	sortListings(listings)
	return listings
}

// VenueListings is WithUpcomingCount for venues.
func VenueListings(venues []*models.Venue, now time.Time) []Listing {
	listings := make([]Listing, 0, len(venues))
	for _, v := range venues {
		listings = append(listings, Listing{
			ID:                v.ID,
			Name:              v.Name,
			UpcomingShowCount: CountUpcoming(v.Shows, now),
		})
	}
	sortListings(listings)
	return listings
}

func sortListings(listings []Listing) {
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].Name != listings[j].Name {
			return listings[i].Name < listings[j].Name
		}
		return listings[i].ID < listings[j].ID
	})
}

// SplitShowsByTime puts each entry in exactly one of Past (StartTime < now)
// or Upcoming (StartTime >= now), keeping input order within each side.
func SplitShowsByTime(entries []ShowEntry, now time.Time) ShowSplit {
	split := ShowSplit{Past: []ShowEntry{}, Upcoming: []ShowEntry{}}
	for _, e := range entries {
		if e.StartTime.Before(now) {
			split.Past = append(split.Past, e)
		} else {
			split.Upcoming = append(split.Upcoming, e)
		}
	}
	return split
}

// ArtistCounterparts views a venue's shows from the venue page.
// Shows must have Artist loaded; shows without it are skipped.
func ArtistCounterparts(shows []models.Show) []ShowEntry {
	entries := make([]ShowEntry, 0, len(shows))
	for _, s := range shows {
		if s.Artist == nil {
			continue
		}
		entries = append(entries, ShowEntry{
			CounterpartID:        s.Artist.ID,
			CounterpartName:      s.Artist.Name,
			CounterpartImageLink: s.Artist.ImageLink,
			StartTime:            s.StartTime.UTC(),
		})
	}
	return entries
}

// VenueCounterparts views an artist's shows from the artist page.
// Shows must have Venue loaded; shows without it are skipped.
func VenueCounterparts(shows []models.Show) []ShowEntry {
	entries := make([]ShowEntry, 0, len(shows))
	for _, s := range shows {
		if s.Venue == nil {
			continue
		}
		entries = append(entries, ShowEntry{
			CounterpartID:        s.Venue.ID,
			CounterpartName:      s.Venue.Name,
			CounterpartImageLink: s.Venue.ImageLink,
			StartTime:            s.StartTime.UTC(),
		})
	}
	return entries
}
