package database

import (
	"context"
	"time"

	"github.com/fyyur-app/fyyur/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Seed loads the sample directory in one transaction. It does nothing when
// the store already holds venues.
func Seed(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Venue{}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			log.Info().Int64("venues", existing).Msg("store already has venues, skipping sample data")
			return nil
		}

		venues := sampleVenues()
		if err := tx.Create(&venues).Error; err != nil {
			return err
		}
		artists := sampleArtists()
		if err := tx.Create(&artists).Error; err != nil {
			return err
		}

		shows := []models.Show{
			{StartTime: at(2019, 5, 21, 21, 30), ArtistID: artists[0].ID, VenueID: venues[0].ID},
			{StartTime: at(2019, 6, 15, 23, 0), ArtistID: artists[1].ID, VenueID: venues[2].ID},
			{StartTime: at(2035, 4, 1, 20, 0), ArtistID: artists[2].ID, VenueID: venues[2].ID},
			{StartTime: at(2035, 4, 8, 20, 0), ArtistID: artists[2].ID, VenueID: venues[2].ID},
			{StartTime: at(2035, 4, 15, 20, 0), ArtistID: artists[2].ID, VenueID: venues[2].ID},
		}
		if err := tx.Create(&shows).Error; err != nil {
			return err
		}

		log.Info().
			Int("venues", len(venues)).
			Int("artists", len(artists)).
			Int("shows", len(shows)).
			Msg("sample data added")
		return nil
	})
	return classify("seed", "sample data", err)
}

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func sampleVenues() []models.Venue {
	return []models.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=400&q=60",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			Genres:             models.Genres{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			Website:            "https://www.themusicalhop.com",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=750&q=80",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			Genres:       models.Genres{"Classical", "R&B", "Hip-Hop"},
			Website:      "https://www.theduelingpianos.com",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=747&q=80",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			Genres:       models.Genres{"Rock n Roll", "Jazz", "Classical", "Folk"},
			Website:      "https://www.parksquarelivemusicandcoffee.com",
		},
	}
}

func sampleArtists() []models.Artist {
	return []models.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             models.Genres{"Rock n Roll"},
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=300&q=80",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			Website:            "https://www.gunsnpetalsband.com",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name:         "Matt Quevedo",
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			Genres:       models.Genres{"Jazz"},
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=334&q=80",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			Genres:    models.Genres{"Jazz", "Classical"},
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=794&q=80",
		},
	}
}
