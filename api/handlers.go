package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fyyur-app/fyyur/database"
	"github.com/fyyur-app/fyyur/errs"
	"github.com/go-chi/chi/v5"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, now func() time.Time, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		homeHandler:   newHomeHandler(database, startupTime),
		venueHandler:  newVenueHandler(database.VenueRepo(), now),
		artistHandler: newArtistHandler(database.ArtistRepo(), now),
		showHandler:   newShowHandler(database.ShowRepo(), database.ArtistRepo(), database.VenueRepo(), now),
	}
}

// pathID reads a numeric URL parameter. Ids that do not fit are reported
// as not found, the same as ids that match no row.
func pathID(r *http.Request, param, entity string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 0)
	if err != nil || id == 0 {
		return 0, errs.NewNotFound(entity)
	}
	return uint(id), nil
}

// validationMessage turns a form error into the flash shown on the form.
func validationMessage(err error) string {
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) && apiErr.Details != "" {
		return apiErr.Details
	}
	return "The form could not be read."
}
