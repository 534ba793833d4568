package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fyyur-app/fyyur/database"
	"github.com/fyyur-app/fyyur/errs"
	"github.com/fyyur-app/fyyur/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type venueHandler struct {
	responder Responder
	logger    zerolog.Logger
	venueRepo *database.VenueRepo
	now       func() time.Time
}

func newVenueHandler(venueRepo *database.VenueRepo, now func() time.Time) venueHandler {
	logger := log.With().Str("handlerName", "venueHandler").Logger()

	return venueHandler{
		responder: NewResponder(logger),
		logger:    logger,
		venueRepo: venueRepo,
		now:       now,
	}
}

// getVenues renders every venue grouped by city and state
// @Router /venues [get]
func (h venueHandler) getVenues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venues, err := h.venueRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WritePage(w, r, views.GroupVenuesByLocation(venues, h.now()))
	}
}

// searchVenues matches search_term against venue names, ignoring case
// @Router /venues/search [post]
func (h venueHandler) searchVenues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := parseForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		term := field(values, "search_term")

		venues, err := h.venueRepo.SearchByName(r.Context(), term)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, views.NewSearchResult(term, views.VenueListings(venues, h.now())))
	}
}

// getVenue renders one venue with its past and upcoming shows
// @Router /venues/{venueID} [get]
func (h venueHandler) getVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := pathID(r, "venueID", "venue")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		venue, err := h.venueRepo.FindByIDWithShows(r.Context(), venueID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WritePage(w, r, views.NewVenueDetail(venue, h.now()))
	}
}

// @Router /venues/create [get]
func (h venueHandler) createVenueForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WritePage(w, r, FormPage{
			Action:  "/venues/create",
			Values:  venueForm{Genres: []string{}},
			Choices: formChoices(),
		})
	}
}

// createVenue lists a new venue and sends the user home
// @Router /venues/create [post]
func (h venueHandler) createVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := decodeVenueForm(r)
		if err != nil {
			flashFailure(w, r, validationMessage(err))
			redirect(w, r, "/venues/create")
			return
		}

		venue := form.toVenue()
		if err := h.venueRepo.Add(r.Context(), venue); err != nil {
			h.logger.Error().Err(err).Str("venue", form.Name).Msg("error creating venue")
			flashFailure(w, r, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
			redirect(w, r, "/")
			return
		}

		flashSuccess(w, r, fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
		redirect(w, r, "/")
	}
}

// @Router /venues/{venueID}/edit [get]
func (h venueHandler) editVenueForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := pathID(r, "venueID", "venue")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		venue, err := h.venueRepo.FindByID(r.Context(), venueID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WritePage(w, r, FormPage{
			Action:  fmt.Sprintf("/venues/%d/edit", venue.ID),
			Values:  newVenueForm(venue),
			Choices: formChoices(),
		})
	}
}

// editVenue rewrites every editable field of a venue
// @Router /venues/{venueID}/edit [post]
func (h venueHandler) editVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := pathID(r, "venueID", "venue")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		detailURL := fmt.Sprintf("/venues/%d", venueID)

		form, err := decodeVenueForm(r)
		if err != nil {
			flashFailure(w, r, validationMessage(err))
			redirect(w, r, detailURL+"/edit")
			return
		}

		venue, err := h.venueRepo.Update(r.Context(), venueID, form.toVenue())
		switch {
		case errs.IsNotFound(err):
			flashFailure(w, r, fmt.Sprintf("Venue %d does not exist.", venueID))
			redirect(w, r, "/venues")
		case err != nil:
			h.logger.Error().Err(err).Uint("venueID", venueID).Msg("error updating venue")
			flashFailure(w, r, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
			redirect(w, r, detailURL)
		default:
			flashSuccess(w, r, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
			redirect(w, r, detailURL)
		}
	}
}

// deleteVenue removes a venue together with its shows
// @Router /venues/{venueID} [delete]
func (h venueHandler) deleteVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := pathID(r, "venueID", "venue")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		venue, err := h.venueRepo.Delete(r.Context(), venueID)
		switch {
		case errs.IsNotFound(err):
			flashFailure(w, r, fmt.Sprintf("Venue %d does not exist.", venueID))
		case err != nil:
			h.logger.Error().Err(err).Uint("venueID", venueID).Msg("error deleting venue")
			flashFailure(w, r, fmt.Sprintf("An error occurred. Venue %d could not be deleted.", venueID))
		default:
			flashSuccess(w, r, fmt.Sprintf("Venue %q was successfully deleted!", venue.Name))
		}
		redirect(w, r, "/")
	}
}
