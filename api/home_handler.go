package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fyyur-app/fyyur/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const recentLimit = 10

type homeHandler struct {
	responder   Responder
	logger      zerolog.Logger
	database    database.Database
	startupTime time.Time
}

func newHomeHandler(database database.Database, startupTime time.Time) homeHandler {
	logger := log.With().Str("handlerName", "homeHandler").Logger()

	return homeHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		database:    database,
		startupTime: startupTime,
	}
}

// getHome shows pending flashes and the newest listings
// @Router / [get]
func (h homeHandler) getHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venues, err := h.database.VenueRepo().FindRecent(r.Context(), recentLimit)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		artists, err := h.database.ArtistRepo().FindRecent(r.Context(), recentLimit)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		page := HomePage{
			RecentVenues:  make([]Option, 0, len(venues)),
			RecentArtists: make([]Option, 0, len(artists)),
		}
		for _, v := range venues {
			page.RecentVenues = append(page.RecentVenues, Option{ID: v.ID, Name: v.Name})
		}
		for _, a := range artists {
			page.RecentArtists = append(page.RecentArtists, Option{ID: a.ID, Name: a.Name})
		}

		h.responder.WritePage(w, r, page)
	}
}

// getHealth pings the store
// @Router /healthz [get]
func (h homeHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.database.Ping(ctx); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, HealthStatus{
			Status:    "ok",
			StartedAt: h.startupTime.UTC(),
			Uptime:    time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
