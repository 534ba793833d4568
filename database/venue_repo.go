package database

import (
	"context"

	"github.com/fyyur-app/fyyur/models"
	"gorm.io/gorm"
)

const venueEntity = "venue"

type VenueRepo struct {
	db *gorm.DB
}

func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{db}
}

// FindAll returns every venue with its shows loaded. Order is not meaningful.
func (r *VenueRepo) FindAll(ctx context.Context) ([]*models.Venue, error) {
	var venues []*models.Venue
	err := r.db.WithContext(ctx).Preload("Shows").Find(&venues).Error
	if err != nil {
		return nil, classify("find", "venues", err)
	}
	return venues, nil
}

// FindRecent returns the most recently listed venues, newest first.
func (r *VenueRepo) FindRecent(ctx context.Context, limit int) ([]*models.Venue, error) {
	var venues []*models.Venue
	err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&venues).Error
	if err != nil {
		return nil, classify("find", "venues", err)
	}
	return venues, nil
}

// FindByID returns a venue by its ID
func (r *VenueRepo) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, classify("find", venueEntity, err)
	}
	return &venue, nil
}

// FindByIDWithShows returns a venue with its shows and each show's artist.
func (r *VenueRepo) FindByIDWithShows(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).
		Preload("Shows", func(db *gorm.DB) *gorm.DB { return db.Order("start_time") }).
		Preload("Shows.Artist").
		First(&venue, id).Error
	if err != nil {
		return nil, classify("find", venueEntity, err)
	}
	return &venue, nil
}

// SearchByName returns venues whose name contains term, case-insensitively.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]*models.Venue, error) {
	venues, err := searchByName[models.Venue](r.db.WithContext(ctx), term, "Shows")
	if err != nil {
		return nil, classify("search", "venues", err)
	}
	return venues, nil
}

// Add inserts a new venue. Nothing is written if the insert fails.
func (r *VenueRepo) Add(ctx context.Context, venue *models.Venue) error {
	venue.ID = 0
	venue.Shows = nil
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(venue).Error
	})
	return classify("create", venueEntity, err)
}

// Update overwrites every editable column of venue id with fields.
func (r *VenueRepo) Update(ctx context.Context, id uint, fields *models.Venue) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		fields.NameKey = models.FoldName(fields.Name)
		if err := tx.Model(&venue).Select(models.VenueEditableColumns).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&venue, id).Error
	})
	if err != nil {
		return nil, classify("update", venueEntity, err)
	}
	return &venue, nil
}

// Delete removes venue id and every show booked at it in one transaction.
// It returns the deleted venue.
func (r *VenueRepo) Delete(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
	if err != nil {
		return nil, classify("delete", venueEntity, err)
	}
	return &venue, nil
}
