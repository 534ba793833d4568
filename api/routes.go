package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// setupRoutes registers every page, form and operational endpoint
func setupRoutes(r chi.Router, handlers *routeHandlers, registry *prometheus.Registry) {
	r.Get("/", handlers.homeHandler.getHome())
	r.Get("/healthz", handlers.homeHandler.getHealth())
	r.Method("GET", "/metrics", metricsHandler(registry))

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", handlers.venueHandler.getVenues())
		r.Post("/search", handlers.venueHandler.searchVenues())
		r.Get("/create", handlers.venueHandler.createVenueForm())
		r.Post("/create", handlers.venueHandler.createVenue())
		r.Get("/{venueID:[0-9]+}", handlers.venueHandler.getVenue())
		r.Delete("/{venueID:[0-9]+}", handlers.venueHandler.deleteVenue())
		r.Get("/{venueID:[0-9]+}/edit", handlers.venueHandler.editVenueForm())
		r.Post("/{venueID:[0-9]+}/edit", handlers.venueHandler.editVenue())
	})

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", handlers.artistHandler.getArtists())
		r.Post("/search", handlers.artistHandler.searchArtists())
		r.Get("/create", handlers.artistHandler.createArtistForm())
		r.Post("/create", handlers.artistHandler.createArtist())
		r.Get("/{artistID:[0-9]+}", handlers.artistHandler.getArtist())
		r.Delete("/{artistID:[0-9]+}", handlers.artistHandler.deleteArtist())
		r.Get("/{artistID:[0-9]+}/edit", handlers.artistHandler.editArtistForm())
		r.Post("/{artistID:[0-9]+}/edit", handlers.artistHandler.editArtist())
	})

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", handlers.showHandler.getShows())
		r.Get("/create", handlers.showHandler.createShowForm())
		r.Post("/create", handlers.showHandler.createShow())
	})
}
