package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"birdiebook/config"
	"birdiebook/database"
	"birdiebook/domain/services"
	"birdiebook/repository"

	"github.com/robfig/cron/v3"
)

// Run initializes and starts the application: database, unit-of-work
// factory, and the scheduled season standings refresh. Blocks until the
// context is cancelled.
func Run(ctx context.Context) error {
	log.Println("Starting birdiebook...")

	cfg := config.Get()

	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Println("Database connection established")

	uowFactory := repository.NewUnitOfWorkFactory(db)
	standingsService := services.NewSeasonStandingsService(uowFactory)

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.StandingsCron, func() {
		refreshCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := standingsService.RefreshActiveSeasons(refreshCtx, time.Now().UTC()); err != nil {
			log.Printf("Scheduled standings refresh failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule standings refresh: %w", err)
	}
	scheduler.Start()
	log.Printf("Standings refresh scheduled: %s", cfg.StandingsCron)

	<-ctx.Done()

	log.Println("Shutting down...")
	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
	return nil
}
