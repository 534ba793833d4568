package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/fyyur-app/fyyur/database"
	"github.com/fyyur-app/fyyur/errs"
	"github.com/fyyur-app/fyyur/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type showHandler struct {
	responder  Responder
	logger     zerolog.Logger
	showRepo   *database.ShowRepo
	artistRepo *database.ArtistRepo
	venueRepo  *database.VenueRepo
	now        func() time.Time
}

func newShowHandler(showRepo *database.ShowRepo, artistRepo *database.ArtistRepo, venueRepo *database.VenueRepo, now func() time.Time) showHandler {
	logger := log.With().Str("handlerName", "showHandler").Logger()

	return showHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		showRepo:   showRepo,
		artistRepo: artistRepo,
		venueRepo:  venueRepo,
		now:        now,
	}
}

// getShows lists shows by start time, optionally only one side of now
// @Param when query string false "all, upcoming or past"
// @Router /shows [get]
func (h showHandler) getShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := database.ParseShowWindow(r.URL.Query().Get("when"))
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("when must be one of all, upcoming, past"))
			return
		}

		shows, err := h.showRepo.FindByTimeBoundary(r.Context(), h.now(), window)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WritePage(w, r, views.ShowRows(shows))
	}
}

// createShowForm offers every artist and venue to book
// @Router /shows/create [get]
func (h showHandler) createShowForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artists, err := h.artistRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		venues, err := h.venueRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		artistOptions := make([]Option, 0, len(artists))
		for _, a := range artists {
			artistOptions = append(artistOptions, Option{ID: a.ID, Name: a.Name})
		}
		venueOptions := make([]Option, 0, len(venues))
		for _, v := range venues {
			venueOptions = append(venueOptions, Option{ID: v.ID, Name: v.Name})
		}
		sortOptions(artistOptions)
		sortOptions(venueOptions)

		h.responder.WritePage(w, r, FormPage{
			Action:  "/shows/create",
			Values:  showForm{StartTime: h.now().UTC().Truncate(time.Minute)},
			Artists: artistOptions,
			Venues:  venueOptions,
		})
	}
}

// createShow books an artist at a venue
// @Router /shows/create [post]
func (h showHandler) createShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := decodeShowForm(r)
		if err != nil {
			flashFailure(w, r, validationMessage(err))
			redirect(w, r, "/shows/create")
			return
		}

		_, err = h.showRepo.Add(r.Context(), form.ArtistID, form.VenueID, form.StartTime)
		switch {
		case errs.IsReferentialIntegrity(err):
			flashFailure(w, r, "Show could not be listed: "+validationMessage(err))
			redirect(w, r, "/shows/create")
		case err != nil:
			h.logger.Error().Err(err).
				Uint("artistID", form.ArtistID).
				Uint("venueID", form.VenueID).
				Msg("error creating show")
			flashFailure(w, r, "An error occurred. Show could not be listed.")
			redirect(w, r, "/")
		default:
			flashSuccess(w, r, "Show was successfully listed!")
			redirect(w, r, "/")
		}
	}
}

func sortOptions(options []Option) {
	sort.Slice(options, func(i, j int) bool {
		if options[i].Name != options[j].Name {
			return options[i].Name < options[j].Name
		}
		return options[i].ID < options[j].ID
	})
}
