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

type artistHandler struct {
	responder  Responder
	logger     zerolog.Logger
	artistRepo *database.ArtistRepo
	now        func() time.Time
}

func newArtistHandler(artistRepo *database.ArtistRepo, now func() time.Time) artistHandler {
	logger := log.With().Str("handlerName", "artistHandler").Logger()

	return artistHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		artistRepo: artistRepo,
		now:        now,
	}
}

// getArtists renders every artist with its upcoming show count
// @Router /artists [get]
func (h artistHandler) getArtists() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artists, err := h.artistRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WritePage(w, r, views.WithUpcomingCount(artists, h.now()))
	}
}

// searchArtists matches search_term against artist names, ignoring case
// @Router /artists/search [post]
func (h artistHandler) searchArtists() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := parseForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		term := field(values, "search_term")

		artists, err := h.artistRepo.SearchByName(r.Context(), term)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, views.NewSearchResult(term, views.WithUpcomingCount(artists, h.now())))
	}
}

// getArtist renders one artist with its past and upcoming shows
// @Router /artists/{artistID} [get]
func (h artistHandler) getArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := pathID(r, "artistID", "artist")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		artist, err := h.artistRepo.FindByIDWithShows(r.Context(), artistID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WritePage(w, r, views.NewArtistDetail(artist, h.now()))
	}
}

// @Router /artists/create [get]
func (h artistHandler) createArtistForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WritePage(w, r, FormPage{
			Action:  "/artists/create",
			Values:  artistForm{Genres: []string{}},
			Choices: formChoices(),
		})
	}
}

// createArtist lists a new artist and sends the user home
// @Router /artists/create [post]
func (h artistHandler) createArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := decodeArtistForm(r)
		if err != nil {
			flashFailure(w, r, validationMessage(err))
			redirect(w, r, "/artists/create")
			return
		}

		artist := form.toArtist()
		if err := h.artistRepo.Add(r.Context(), artist); err != nil {
			h.logger.Error().Err(err).Str("artist", form.Name).Msg("error creating artist")
			flashFailure(w, r, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
			redirect(w, r, "/")
			return
		}

		flashSuccess(w, r, fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
		redirect(w, r, "/")
	}
}

// @Router /artists/{artistID}/edit [get]
func (h artistHandler) editArtistForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := pathID(r, "artistID", "artist")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		artist, err := h.artistRepo.FindByID(r.Context(), artistID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WritePage(w, r, FormPage{
			Action:  fmt.Sprintf("/artists/%d/edit", artist.ID),
			Values:  newArtistForm(artist),
			Choices: formChoices(),
		})
	}
}

// editArtist rewrites every editable field of an artist
// @Router /artists/{artistID}/edit [post]
func (h artistHandler) editArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := pathID(r, "artistID", "artist")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		detailURL := fmt.Sprintf("/artists/%d", artistID)

		form, err := decodeArtistForm(r)
		if err != nil {
			flashFailure(w, r, validationMessage(err))
			redirect(w, r, detailURL+"/edit")
			return
		}

		artist, err := h.artistRepo.Update(r.Context(), artistID, form.toArtist())
		switch {
		case errs.IsNotFound(err):
			flashFailure(w, r, fmt.Sprintf("Artist %d does not exist.", artistID))
			redirect(w, r, "/artists")
		case err != nil:
			h.logger.Error().Err(err).Uint("artistID", artistID).Msg("error updating artist")
			flashFailure(w, r, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
			redirect(w, r, detailURL)
		default:
			flashSuccess(w, r, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
			redirect(w, r, detailURL)
		}
	}
}

// deleteArtist removes an artist together with its shows
// @Router /artists/{artistID} [delete]
func (h artistHandler) deleteArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := pathID(r, "artistID", "artist")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		artist, err := h.artistRepo.Delete(r.Context(), artistID)
		switch {
		case errs.IsNotFound(err):
			flashFailure(w, r, fmt.Sprintf("Artist %d does not exist.", artistID))
		case err != nil:
			h.logger.Error().Err(err).Uint("artistID", artistID).Msg("error deleting artist")
			flashFailure(w, r, fmt.Sprintf("An error occurred. Artist %d could not be deleted.", artistID))
		default:
			flashSuccess(w, r, fmt.Sprintf("Artist %q was successfully deleted!", artist.Name))
		}
		redirect(w, r, "/")
	}
}
