package views

import (
	"testing"
	"time"

	"github.com/fyyur-app/fyyur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evalInstant = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 20, 0, 0, 0, time.UTC)
}

func TestGroupVenuesByLocation(t *testing.T) {
	venues := []*models.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA",
			Shows: []models.Show{
				{StartTime: day(2019, 6, 15)},
				{StartTime: day(2035, 4, 1)},
			}},
	}

	areas := GroupVenuesByLocation(venues, evalInstant)
	require.Len(t, areas, 2)

	byCity := map[string]Area{}
	for _, a := range areas {
		byCity[a.City+"/"+a.State] = a
	}

	sf, ok := byCity["San Francisco/CA"]
	require.True(t, ok)
	assert.Len(t, sf.Venues, 2)

	ny, ok := byCity["New York/NY"]
	require.True(t, ok)
	require.Len(t, ny.Venues, 1)
	assert.Equal(t, "The Dueling Pianos Bar", ny.Venues[0].Name)

	for _, v := range sf.Venues {
		if v.ID == 3 {
			assert.Equal(t, 1, v.UpcomingShowCount)
		} else {
			assert.Equal(t, 0, v.UpcomingShowCount)
		}
	}
}

func TestGroupVenuesByLocationPartitions(t *testing.T) {
	venues := []*models.Venue{
		{ID: 1, Name: "A", City: "Austin", State: "TX"},
		{ID: 2, Name: "B", City: "Austin", State: "MN"},
		{ID: 3, Name: "C", City: "Boston", State: "MA"},
		{ID: 4, Name: "D", City: "Austin", State: "TX"},
		{ID: 5, Name: "E", City: "", State: ""},
	}

	areas := GroupVenuesByLocation(venues, evalInstant)

	seen := map[uint]int{}
	for _, a := range areas {
		for _, v := range a.Venues {
			seen[v.ID]++
		}
	}
	assert.Len(t, seen, len(venues))
	for id, n := range seen {
		assert.Equalf(t, 1, n, "venue %d appears in %d groups", id, n)
	}
	assert.Len(t, areas, 4)
}

func TestGroupVenuesByLocationIgnoresInputOrder(t *testing.T) {
	a := &models.Venue{ID: 1, Name: "Hop", City: "San Francisco", State: "CA"}
	b := &models.Venue{ID: 2, Name: "Bar", City: "New York", State: "NY"}
	c := &models.Venue{ID: 3, Name: "Cafe", City: "San Francisco", State: "CA"}

	assert.Equal(t,
		GroupVenuesByLocation([]*models.Venue{a, b, c}, evalInstant),
		GroupVenuesByLocation([]*models.Venue{c, a, b}, evalInstant),
	)
}

func TestGroupVenuesByLocationEmpty(t *testing.T) {
	assert.Empty(t, GroupVenuesByLocation(nil, evalInstant))
}

func TestSplitShowsByTime(t *testing.T) {
	entries := []ShowEntry{
		{CounterpartID: 1, StartTime: evalInstant.Add(-48 * time.Hour)},
		{CounterpartID: 2, StartTime: evalInstant},
		{CounterpartID: 3, StartTime: evalInstant.Add(time.Nanosecond)},
		{CounterpartID: 4, StartTime: evalInstant.Add(-time.Nanosecond)},
		{CounterpartID: 5, StartTime: day(2035, 4, 1)},
	}

	split := SplitShowsByTime(entries, evalInstant)

	assert.Len(t, split.Past, 2)
	assert.Len(t, split.Upcoming, 3)
	assert.Equal(t, len(entries), len(split.Past)+len(split.Upcoming))

	ids := map[uint]bool{}
	for _, e := range split.Past {
		assert.True(t, e.StartTime.Before(evalInstant))
		ids[e.CounterpartID] = true
	}
	for _, e := range split.Upcoming {
		assert.False(t, e.StartTime.Before(evalInstant))
		assert.False(t, ids[e.CounterpartID], "show %d is both past and upcoming", e.CounterpartID)
		ids[e.CounterpartID] = true
	}
	assert.Len(t, ids, len(entries))
}

func TestSplitShowsByTimeWildSaxBand(t *testing.T) {
	band := &models.Artist{
		ID:   6,
		Name: "The Wild Sax Band",
		Shows: []models.Show{
			{StartTime: day(2035, 4, 1), Venue: &models.Venue{ID: 3, Name: "Park Square Live Music & Coffee"}},
			{StartTime: day(2035, 4, 8), Venue: &models.Venue{ID: 3, Name: "Park Square Live Music & Coffee"}},
			{StartTime: day(2035, 4, 15), Venue: &models.Venue{ID: 3, Name: "Park Square Live Music & Coffee"}},
		},
	}

	detail := NewArtistDetail(band, evalInstant)

	assert.Empty(t, detail.PastShows)
	assert.Equal(t, 0, detail.PastShowsCount)
	require.Len(t, detail.UpcomingShows, 3)
	assert.Equal(t, 3, detail.UpcomingShowsCount)
	assert.Equal(t, uint(3), detail.UpcomingShows[0].CounterpartID)
	assert.Equal(t, "Park Square Live Music & Coffee", detail.UpcomingShows[0].CounterpartName)
}

func TestNewVenueDetail(t *testing.T) {
	artist := &models.Artist{ID: 4, Name: "Guns N Petals", ImageLink: "https://img.test/gnp.jpg"}
	venue := &models.Venue{
		ID:     1,
		Name:   "The Musical Hop",
		Genres: models.Genres{"Jazz", "Reggae"},
		Shows: []models.Show{
			{StartTime: day(2019, 5, 21), Artist: artist},
			{StartTime: day(2035, 4, 1), Artist: artist},
		},
	}

	detail := NewVenueDetail(venue, evalInstant)

	assert.Equal(t, []string{"Jazz", "Reggae"}, detail.Genres)
	require.Len(t, detail.PastShows, 1)
	assert.Equal(t, ShowEntry{
		CounterpartID:        4,
		CounterpartName:      "Guns N Petals",
		CounterpartImageLink: "https://img.test/gnp.jpg",
		StartTime:            day(2019, 5, 21),
	}, detail.PastShows[0])
	assert.Equal(t, 1, detail.UpcomingShowsCount)
}

func TestWithUpcomingCount(t *testing.T) {
	artists := []*models.Artist{
		{ID: 2, Name: "Matt Quevedo", Shows: []models.Show{{StartTime: day(2019, 6, 15)}}},
		{ID: 1, Name: "Guns N Petals", Shows: []models.Show{
			{StartTime: evalInstant},
			{StartTime: day(2035, 1, 1)},
			{StartTime: day(2020, 1, 1)},
		}},
	}

	listings := WithUpcomingCount(artists, evalInstant)

	assert.Equal(t, []Listing{
		{ID: 1, Name: "Guns N Petals", UpcomingShowCount: 2},
		{ID: 2, Name: "Matt Quevedo", UpcomingShowCount: 0},
	}, listings)
}

func TestShowRows(t *testing.T) {
	shows := []*models.Show{{
		ID:        9,
		ArtistID:  4,
		VenueID:   1,
		StartTime: day(2019, 5, 21),
		Artist:    &models.Artist{ID: 4, Name: "Guns N Petals", ImageLink: "https://img.test/gnp.jpg"},
		Venue:     &models.Venue{ID: 1, Name: "The Musical Hop"},
	}}

	assert.Equal(t, []ShowRow{{
		ID:              9,
		VenueID:         1,
		VenueName:       "The Musical Hop",
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://img.test/gnp.jpg",
		StartTime:       day(2019, 5, 21),
	}}, ShowRows(shows))
}
