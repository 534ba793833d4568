package database

import (
	"context"

	"github.com/fyyur-app/fyyur/models"
	"gorm.io/gorm"
)

const artistEntity = "artist"

type ArtistRepo struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{db}
}

// FindAll returns every artist with its shows loaded. Order is not meaningful.
func (r *ArtistRepo) FindAll(ctx context.Context) ([]*models.Artist, error) {
	var artists []*models.Artist
	err := r.db.WithContext(ctx).Preload("Shows").Find(&artists).Error
	if err != nil {
		return nil, classify("find", "artists", err)
	}
	return artists, nil
}

// FindRecent returns the most recently listed artists, newest first.
func (r *ArtistRepo) FindRecent(ctx context.Context, limit int) ([]*models.Artist, error) {
	var artists []*models.Artist
	err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&artists).Error
	if err != nil {
		return nil, classify("find", "artists", err)
	}
	return artists, nil
}

// FindByID returns an artist by its ID
func (r *ArtistRepo) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, classify("find", artistEntity, err)
	}
	return &artist, nil
}

// FindByIDWithShows returns an artist with its shows and each show's venue.
func (r *ArtistRepo) FindByIDWithShows(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).
		Preload("Shows", func(db *gorm.DB) *gorm.DB { return db.Order("start_time") }).
		Preload("Shows.Venue").
		First(&artist, id).Error
	if err != nil {
		return nil, classify("find", artistEntity, err)
	}
	return &artist, nil
}

// SearchByName returns artists whose name contains term, case-insensitively.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]*models.Artist, error) {
	artists, err := searchByName[models.Artist](r.db.WithContext(ctx), term, "Shows")
	if err != nil {
		return nil, classify("search", "artists", err)
	}
	return artists, nil
}

// Add inserts a new artist. Nothing is written if the insert fails.
func (r *ArtistRepo) Add(ctx context.Context, artist *models.Artist) error {
	artist.ID = 0
	artist.Shows = nil
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(artist).Error
	})
	return classify("create", artistEntity, err)
}

// Update overwrites every editable column of artist id with fields.
func (r *ArtistRepo) Update(ctx context.Context, id uint, fields *models.Artist) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}
		fields.NameKey = models.FoldName(fields.Name)
		if err := tx.Model(&artist).Select(models.ArtistEditableColumns).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&artist, id).Error
	})
	if err != nil {
		return nil, classify("update", artistEntity, err)
	}
	return &artist, nil
}

// Delete removes artist id and every show by them in one transaction.
// It returns the deleted artist.
func (r *ArtistRepo) Delete(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}
		if err := tx.Where("artist_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		return tx.Delete(&artist).Error
	})
	if err != nil {
		return nil, classify("delete", artistEntity, err)
	}
	return &artist, nil
}
