package database

import (
	"context"
	"time"

	"github.com/fyyur-app/fyyur/errs"
	"github.com/fyyur-app/fyyur/models"
	"gorm.io/gorm"
)

const showEntity = "show"

// ShowWindow selects shows relative to a time boundary.
type ShowWindow string

const (
	AllShows      ShowWindow = "all"
	UpcomingShows ShowWindow = "upcoming" // start_time >= boundary
	PastShows     ShowWindow = "past"     // start_time < boundary
)

// ParseShowWindow maps a query value to a window. Unknown values are rejected.
func ParseShowWindow(s string) (ShowWindow, bool) {
	switch ShowWindow(s) {
	case "", AllShows:
		return AllShows, true
	case UpcomingShows:
		return UpcomingShows, true
	case PastShows:
		return PastShows, true
	}
	return "", false
}

type ShowRepo struct {
	db *gorm.DB
}

func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{db}
}

// FindAll returns every show with artist and venue loaded, by start time.
func (r *ShowRepo) FindAll(ctx context.Context) ([]*models.Show, error) {
	return r.FindByTimeBoundary(ctx, time.Time{}, AllShows)
}

// FindByTimeBoundary returns the shows on one side of boundary, by start time.
func (r *ShowRepo) FindByTimeBoundary(ctx context.Context, boundary time.Time, window ShowWindow) ([]*models.Show, error) {
	query := r.db.WithContext(ctx).Preload("Artist").Preload("Venue").Order("start_time, id")
	switch window {
	case UpcomingShows:
		query = query.Where("start_time >= ?", boundary.UTC())
	case PastShows:
		query = query.Where("start_time < ?", boundary.UTC())
	}

	var shows []*models.Show
	if err := query.Find(&shows).Error; err != nil {
		return nil, classify("find", "shows", err)
	}
	return shows, nil
}

// FindByID returns a show by its ID
func (r *ShowRepo) FindByID(ctx context.Context, id uint) (*models.Show, error) {
	var show models.Show
	if err := r.db.WithContext(ctx).First(&show, id).Error; err != nil {
		return nil, classify("find", showEntity, err)
	}
	return &show, nil
}

// Add books artistID at venueID. Both must exist, otherwise nothing is
// written and a referential integrity error is returned.
func (r *ShowRepo) Add(ctx context.Context, artistID, venueID uint, startTime time.Time) (*models.Show, error) {
	show := models.Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime.UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Artist{}, artistID, "artist"); err != nil {
			return err
		}
		if err := requireRow(tx, &models.Venue{}, venueID, "venue"); err != nil {
			return err
		}
		return tx.Create(&show).Error
	})
	if err != nil {
		return nil, classify("create", showEntity, err)
	}
	return &show, nil
}

// requireRow fails with a referential integrity error when no row of model has id.
func requireRow(tx *gorm.DB, model any, id uint, referenced string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewReferentialIntegrityError(showEntity, referenced)
	}
	return nil
}
