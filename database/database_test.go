package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fyyur-app/fyyur/errs"
	"github.com/fyyur-app/fyyur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (Database, *gorm.DB) {
	t.Helper()

	db, err := Open(map[string]string{
		"DB_TYPE":     "sqlite",
		"SQLITE_PATH": filepath.Join(t.TempDir(), "fyyur.db"),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	d := New(db)
	t.Cleanup(func() { _ = d.Close() })
	return d, db
}

func seedVenue(t *testing.T, d Database, name, city, state string) *models.Venue {
	t.Helper()
	v := &models.Venue{Name: name, City: city, State: state, Genres: models.Genres{"Jazz"}}
	require.NoError(t, d.VenueRepo().Add(context.Background(), v))
	return v
}

func seedArtist(t *testing.T, d Database, name string) *models.Artist {
	t.Helper()
	a := &models.Artist{Name: name, City: "San Francisco", State: "CA"}
	require.NoError(t, d.ArtistRepo().Add(context.Background(), a))
	return a
}

func TestVenueCreateAndFind(t *testing.T) {
	d, _ := setupTestDB(t)
	ctx := context.Background()

	venue := &models.Venue{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Genres:  models.Genres{"Jazz", "Reggae", "Swing"},
	}
	require.NoError(t, d.VenueRepo().Add(ctx, venue))
	assert.NotZero(t, venue.ID)

	found, err := d.VenueRepo().FindByID(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", found.Name)
	assert.Equal(t, models.Genres{"Jazz", "Reggae", "Swing"}, found.Genres)
	assert.False(t, found.SeekingTalent)

	_, err = d.VenueRepo().FindByID(ctx, venue.ID+100)
	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, "venue", errs.EntityOf(err))
}

func TestVenueGenresStoredJoined(t *testing.T) {
	d, db := setupTestDB(t)
	venue := seedVenue(t, d, "The Dueling Pianos Bar", "New York", "NY")

	_, err := d.VenueRepo().Update(context.Background(), venue.ID, &models.Venue{
		Name:   venue.Name,
		Genres: models.Genres{"Classical", "R&B", "Hip-Hop"},
	})
	require.NoError(t, err)

	var raw string
	require.NoError(t, db.Raw(`SELECT genres FROM "Venue" WHERE id = ?`, venue.ID).Scan(&raw).Error)
	assert.Equal(t, "Classical,R&B,Hip-Hop", raw)
}

func TestVenueUpdateIsWholesale(t *testing.T) {
	d, _ := setupTestDB(t)
	ctx := context.Background()

	venue := &models.Venue{
		Name:               "Park Square Live Music & Coffee",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "415-000-1234",
		SeekingTalent:      true,
		SeekingDescription: "Looking for a trio",
		Genres:             models.Genres{"Folk"},
	}
	require.NoError(t, d.VenueRepo().Add(ctx, venue))

	updated, err := d.VenueRepo().Update(ctx, venue.ID, &models.Venue{
		Name:   "Park Square",
		City:   "Oakland",
		State:  "CA",
		Genres: models.Genres{},
	})
	require.NoError(t, err)
	assert.Equal(t, venue.ID, updated.ID)
	assert.Equal(t, "Park Square", updated.Name)
	assert.Equal(t, "Oakland", updated.City)
	assert.Equal(t, "", updated.Phone)
	assert.False(t, updated.SeekingTalent)
	assert.Equal(t, "", updated.SeekingDescription)
	assert.Equal(t, models.Genres{}, updated.Genres)
}

func TestVenueUpdateNotFound(t *testing.T) {
	d, _ := setupTestDB(t)
	ctx := context.Background()
	existing := seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")

	_, err := d.VenueRepo().Update(ctx, existing.ID+1, &models.Venue{Name: "Ghost"})
	assert.True(t, errs.IsNotFound(err))

	all, err := d.VenueRepo().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "The Musical Hop", all[0].Name)
}

func TestArtistUpdateIsWholesale(t *testing.T) {
	d, _ := setupTestDB(t)
	ctx := context.Background()

	artist := &models.Artist{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Website:            "https://www.gunsnpetalsband.com",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		Genres:             models.Genres{"Rock n Roll"},
	}
	require.NoError(t, d.ArtistRepo().Add(ctx, artist))

	updated, err := d.ArtistRepo().Update(ctx, artist.ID, &models.Artist{
		Name:   "Guns N Roses",
		City:   "Los Angeles",
		State:  "CA",
		Genres: models.Genres{"Rock n Roll", "Blues"},
	})
	require.NoError(t, err)
	assert.Equal(t, artist.ID, updated.ID)
	assert.Equal(t, "Guns N Roses", updated.Name)
	assert.Equal(t, "Los Angeles", updated.City)
	assert.Equal(t, "", updated.Phone)
	assert.Equal(t, "", updated.Website)
	assert.False(t, updated.SeekingVenue)
	assert.Equal(t, "", updated.SeekingDescription)
	assert.Equal(t, models.Genres{"Rock n Roll", "Blues"}, updated.Genres)

	found, err := d.ArtistRepo().SearchByName(ctx, "roses")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, artist.ID, found[0].ID)

	stale, err := d.ArtistRepo().SearchByName(ctx, "petals")
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestVenueDeleteCascadesShows(t *testing.T) {
	d, _ := setupTestDB(t)
	ctx := context.Background()

	venue := seedVenue(t, d, "Park Square Live Music & Coffee", "San Francisco", "CA")
	other := seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	artist := seedArtist(t, d, "The Wild Sax Band")

	var showIDs []uint
	for _, start := range []time.Time{
		time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
		time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC),
		time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC),
	} {
		show, err := d.ShowRepo().Add(ctx, artist.ID, venue.ID, start)
		require.NoError(t, err)
		showIDs = append(showIDs, show.ID)
	}
	kept, err := d.ShowRepo().Add(ctx, artist.ID, other.ID, time.Date(2035, 5, 1, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	deleted, err := d.VenueRepo().Delete(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, "Park Square Live Music & Coffee", deleted.Name)

	_, err = d.VenueRepo().FindByID(ctx, venue.ID)
	assert.True(t, errs.IsNotFound(err))
	for _, id := range showIDs {
		_, err := d.ShowRepo().FindByID(ctx, id)
		assert.Truef(t, errs.IsNotFound(err), "show %d should be gone", id)
	}

	_, err = d.ShowRepo().FindByID(ctx, kept.ID)
	assert.NoError(t, err)
	_, err = d.ArtistRepo().FindByID(ctx, artist.ID)
	assert.NoError(t, err)
}

func TestVenueDeleteNotFound(t *testing.T) {
	d, _ := setupTestDB(t)

	_, err := d.VenueRepo().Delete(context.Background(), 42)
	assert.True(t, errs.IsNotFound(err))
}

func TestArtistDeleteCascadesShows(t *testing.T) {
	d, _ := setupTestDB(t)
	ctx := context.Background()

	venue := seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	artist := seedArtist(t, d, "Guns N Petals")
	show, err := d.ShowRepo().Add(ctx, artist.ID, venue.ID, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = d.ArtistRepo().Delete(ctx, artist.ID)
	require.NoError(t, err)

	_, err = d.ShowRepo().FindByID(ctx, show.ID)
	assert.True(t, errs.IsNotFound(err))
	_, err = d.ArtistRepo().FindByID(ctx, artist.ID)
	assert.True(t, errs.IsNotFound(err))
	_, err = d.VenueRepo().FindByID(ctx, venue.ID)
	assert.NoError(t, err)
}

func TestStoreRefusesOrphaningShows(t *testing.T) {
	d, db := setupTestDB(t)
	ctx := context.Background()

	venue := seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	artist := seedArtist(t, d, "Guns N Petals")
	_, err := d.ShowRepo().Add(ctx, artist.ID, venue.ID, time.Date(2035, 1, 1, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	err = db.Delete(&models.Venue{}, venue.ID).Error
	assert.Error(t, err, "foreign key must block deleting a venue that still has shows")
}

func TestShowCreateReferentialIntegrity(t *testing.T) {
	d, db := setupTestDB(t)
	ctx := context.Background()

	venue := seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	artist := seedArtist(t, d, "Guns N Petals")
	start := time.Date(2035, 1, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		artistID uint
		venueID  uint
		field    string
	}{
		{"missing artist", artist.ID + 99, venue.ID, "artist_id"},
		{"missing venue", artist.ID, venue.ID + 99, "venue_id"},
		{"zero ids", 0, 0, "artist_id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.ShowRepo().Add(ctx, tc.artistID, tc.venueID, start)
			require.Error(t, err)
			assert.True(t, errs.IsReferentialIntegrity(err))

			var count int64
			require.NoError(t, db.Model(&models.Show{}).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestSearchByName(t *testing.T) {
	d, _ := setupTestDB(t)
	ctx := context.Background()

	seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	seedVenue(t, d, "The Dueling Pianos Bar", "New York", "NY")
	seedVenue(t, d, "Park Square Live Music & Coffee", "San Francisco", "CA")

	names := func(term string) []string {
		venues, err := d.VenueRepo().SearchByName(ctx, term)
		require.NoError(t, err)
		var out []string
		for _, v := range venues {
			out = append(out, v.Name)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"The Musical Hop"}, names("Hop"))
	assert.ElementsMatch(t, []string{"The Musical Hop", "Park Square Live Music & Coffee"}, names("Music"))
	assert.ElementsMatch(t, []string{"The Musical Hop", "Park Square Live Music & Coffee"}, names("mUsIc"))
	assert.Len(t, names(""), 3)
	assert.Empty(t, names("%"))
	assert.Empty(t, names("Opera"))
}

func TestArtistSearchByName(t *testing.T) {
	d, _ := setupTestDB(t)
	ctx := context.Background()

	seedArtist(t, d, "Guns N Petals")
	seedArtist(t, d, "Matt Quevedo")
	seedArtist(t, d, "The Wild Sax Band")

	artists, err := d.ArtistRepo().SearchByName(ctx, "A")
	require.NoError(t, err)
	assert.Len(t, artists, 3)

	artists, err = d.ArtistRepo().SearchByName(ctx, "band")
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "The Wild Sax Band", artists[0].Name)
}

func TestSearchByNameNonASCII(t *testing.T) {
	d, _ := setupTestDB(t)
	ctx := context.Background()

	seedVenue(t, d, "Café Éclair", "Montréal", "QC")
	seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	seedArtist(t, d, "Sigur Rós")

	for _, term := range []string{"Éclair", "éclair", "ÉCLAIR", "Café Éclair", "café", "CAFÉ"} {
		venues, err := d.VenueRepo().SearchByName(ctx, term)
		require.NoError(t, err)
		require.Len(t, venues, 1, term)
		assert.Equal(t, "Café Éclair", venues[0].Name, term)
	}

	artists, err := d.ArtistRepo().SearchByName(ctx, "RÓS")
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "Sigur Rós", artists[0].Name)
}

func TestMigrateBackfillsNameKeys(t *testing.T) {
	d, db := setupTestDB(t)
	ctx := context.Background()
	venue := seedVenue(t, d, "Café Éclair", "Montréal", "QC")
	artist := seedArtist(t, d, "Sigur Rós")

	require.NoError(t, db.Model(&models.Venue{}).Where("id = ?", venue.ID).UpdateColumn("name_key", "").Error)
	require.NoError(t, db.Model(&models.Artist{}).Where("id = ?", artist.ID).UpdateColumn("name_key", "").Error)
	venues, err := d.VenueRepo().SearchByName(ctx, "éclair")
	require.NoError(t, err)
	require.Empty(t, venues)

	require.NoError(t, models.Migrate(db))

	venues, err = d.VenueRepo().SearchByName(ctx, "éclair")
	require.NoError(t, err)
	assert.Len(t, venues, 1)
	artists, err := d.ArtistRepo().SearchByName(ctx, "rós")
	require.NoError(t, err)
	assert.Len(t, artists, 1)
}

func TestShowsByTimeBoundary(t *testing.T) {
	d, _ := setupTestDB(t)
	ctx := context.Background()

	venue := seedVenue(t, d, "Park Square Live Music & Coffee", "San Francisco", "CA")
	artist := seedArtist(t, d, "Matt Quevedo")
	boundary := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, start := range []time.Time{
		time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC),
		boundary,
		time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
	} {
		_, err := d.ShowRepo().Add(ctx, artist.ID, venue.ID, start)
		require.NoError(t, err)
	}

	upcoming, err := d.ShowRepo().FindByTimeBoundary(ctx, boundary, UpcomingShows)
	require.NoError(t, err)
	assert.Len(t, upcoming, 2)
	for _, s := range upcoming {
		assert.False(t, s.StartTime.Before(boundary))
		require.NotNil(t, s.Artist)
		require.NotNil(t, s.Venue)
		assert.Equal(t, "Matt Quevedo", s.Artist.Name)
	}

	past, err := d.ShowRepo().FindByTimeBoundary(ctx, boundary, PastShows)
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.True(t, past[0].StartTime.Before(boundary))

	all, err := d.ShowRepo().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.True(t, all[0].StartTime.Before(all[2].StartTime))
}

func TestFindByIDWithShows(t *testing.T) {
	d, _ := setupTestDB(t)
	ctx := context.Background()

	venue := seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	artist := seedArtist(t, d, "Guns N Petals")
	_, err := d.ShowRepo().Add(ctx, artist.ID, venue.ID, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	v, err := d.VenueRepo().FindByIDWithShows(ctx, venue.ID)
	require.NoError(t, err)
	require.Len(t, v.Shows, 1)
	require.NotNil(t, v.Shows[0].Artist)
	assert.Equal(t, "Guns N Petals", v.Shows[0].Artist.Name)

	a, err := d.ArtistRepo().FindByIDWithShows(ctx, artist.ID)
	require.NoError(t, err)
	require.Len(t, a.Shows, 1)
	require.NotNil(t, a.Shows[0].Venue)
	assert.Equal(t, "The Musical Hop", a.Shows[0].Venue.Name)
}

func TestSeed(t *testing.T) {
	d, db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, db))
	require.NoError(t, Seed(ctx, db), "seeding twice is a no-op")

	venues, err := d.VenueRepo().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, venues, 3)

	artists, err := d.ArtistRepo().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, artists, 3)

	shows, err := d.ShowRepo().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, shows, 5)

	recent, err := d.VenueRepo().FindRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Park Square Live Music & Coffee", recent[0].Name)
}

func TestParseShowWindow(t *testing.T) {
	for in, want := range map[string]ShowWindow{"": AllShows, "all": AllShows, "upcoming": UpcomingShows, "past": PastShows} {
		got, ok := ParseShowWindow(in)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := ParseShowWindow("tomorrow")
	assert.False(t, ok)
}

func TestPing(t *testing.T) {
	d, _ := setupTestDB(t)
	assert.NoError(t, d.Ping(context.Background()))
}
