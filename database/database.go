package database

import (
	"context"
	"errors"

	"github.com/fyyur-app/fyyur/errs"
	"gorm.io/gorm"
)

// Database groups the per-entity repositories over one store handle.
// The handle is a pool; every repository call opens its own session
// with the caller's context, so nothing is shared between requests.
type Database struct {
	db         *gorm.DB
	venueRepo  *VenueRepo
	artistRepo *ArtistRepo
	showRepo   *ShowRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:         db,
		venueRepo:  NewVenueRepo(db),
		artistRepo: NewArtistRepo(db),
		showRepo:   NewShowRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) VenueRepo() *VenueRepo {
	return d.venueRepo
}

func (d Database) ArtistRepo() *ArtistRepo {
	return d.artistRepo
}

func (d Database) ShowRepo() *ShowRepo {
	return d.showRepo
}

// Ping checks that the store answers.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return errs.NewDatabaseError("reach", "database", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errs.NewDatabaseError("ping", "database", err)
	}
	return nil
}

// Close releases the connection pool.
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// classify turns a gorm error into one of the errs kinds. Errors that
// already carry a kind pass through untouched.
func classify(operation, entity string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFound(entity)
	}
	return errs.NewDatabaseError(operation, entity, err)
}
