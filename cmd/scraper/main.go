// One-shot catalog refresh: fetches the storefront listing and replaces the
// stored snapshot. Meant for cron or a first run before starting the bot.
package main

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/vkedu/projects-bot/internal/config"
	"github.com/vkedu/projects-bot/internal/scraper"
	"github.com/vkedu/projects-bot/internal/store"
)

func main() {
	cfg, err := config.LoadScraper()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := store.NewBoltStore(filepath.Join(cfg.DataDir, "projects-bot.db"))
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snap, err := scraper.New(cfg.CatalogAPIURL).Run(ctx)
	if err != nil {
		log.Fatalf("scrape: %v", err)
	}
	if err := db.SaveCatalog(snap); err != nil {
		log.Fatalf("saving catalog: %v", err)
	}
	log.Printf("scraper: saved %d projects, %d directions, %d durations",
		len(snap.Projects), len(snap.Directions), len(snap.Durations))
}
