package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	api "github.com/fyyur-app/fyyur/api"
	"github.com/fyyur-app/fyyur/config"
	"github.com/fyyur-app/fyyur/database"
	"github.com/fyyur-app/fyyur/models"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	setupLogging(c)

	log.Info().Str("DB_TYPE", config.GetString(c, "DB_TYPE", "postgres")).Msg("Initializing app...")

	db, err := database.Open(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}
	currentDB := database.New(db)

	done, err := runStartupTasks(c, db)
	if err != nil {
		closeDatabase(currentDB)
		log.Fatal().Err(err).Msg("Error running startup tasks")
	}
	if done {
		closeDatabase(currentDB)
		return
	}

	errChannel := make(chan error, 2)

	server, err := api.NewServer(currentDB, c)
	if err != nil {
		closeDatabase(currentDB)
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(time.Duration(config.GetInt(c, "SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second)
	closeDatabase(currentDB)
}

// runStartupTasks migrates the schema unless AUTO_MIGRATE=false and then runs
// at most one one-shot mode. done reports that a one-shot mode ran and the
// process should exit without serving.
func runStartupTasks(c map[string]string, db *gorm.DB) (done bool, err error) {
	if config.GetBool(c, "AUTO_MIGRATE", true) {
		if err := models.Migrate(db); err != nil {
			return false, fmt.Errorf("migrating schema: %w", err)
		}
	}

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db, "./generated"); err != nil {
			return true, fmt.Errorf("generating models: %w", err)
		}
		return true, nil
	}

	// If generating column mismatch report, run report and exit
	if config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
		log.Info().Msg("Generating column mismatch report...")
		if err := models.GenerateColumnMismatchReport(db); err != nil {
			return true, fmt.Errorf("generating column report: %w", err)
		}
		return true, nil
	}

	if config.GetBool(c, "SEED_SAMPLE_DATA", false) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := database.Seed(ctx, db); err != nil {
			return true, fmt.Errorf("seeding sample data: %w", err)
		}
		return true, nil
	}
	return false, nil
}

// closeDatabase releases the connection pool. Every exit path after the
// pool is opened goes through here.
func closeDatabase(d database.Database) {
	if err := d.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database")
	}
}

// setupLogging configures the global zerolog logger from LOG_LEVEL and LOG_FORMAT.
func setupLogging(c map[string]string) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetString(c, "LOG_FORMAT", "json") == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
