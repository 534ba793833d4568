package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fyyur-app/fyyur/config"
	"github.com/fyyur-app/fyyur/database"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database, c map[string]string) (Server, error) {
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := newRouter(database, withConfig(c), withStartupTime(startupTime))

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 30)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 30)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
	clock       func() time.Time
	registry    *prometheus.Registry
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

// withClock replaces time.Now as the instant shows are split around.
func withClock(clock func() time.Time) func(*router) {
	return func(r *router) {
		r.clock = clock
	}
}

func withRegistry(registry *prometheus.Registry) func(*router) {
	return func(r *router) {
		r.registry = registry
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	router := router{
		startupTime: time.Now(),
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(&router)
	}
	if router.registry == nil {
		router.registry = newRegistry()
	}

	metrics := newHTTPMetrics(router.registry)

	chiRouter := chi.NewRouter()
	chiRouter.Use(requestIDMiddleware)
	chiRouter.Use(metrics.middleware)
	chiRouter.Use(HTTPLoggingMiddleware)
	chiRouter.Use(LogInternalServerErrors)

	if acceptedOrigins := config.GetStrings(router.config, "ACCEPTED_ORIGINS"); len(acceptedOrigins) > 0 {
		chiRouter.Use(cors.Handler(cors.Options{
			AllowedOrigins:   acceptedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", requestIDHeader},
			ExposedHeaders:   []string{requestIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	handlers := initializeHandlers(database, router.clock, router.startupTime)

	setupRoutes(chiRouter, handlers, router.registry)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
