package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vkedu/projects-bot/internal/bot"
	"github.com/vkedu/projects-bot/internal/catalog"
	"github.com/vkedu/projects-bot/internal/config"
	"github.com/vkedu/projects-bot/internal/engine"
	"github.com/vkedu/projects-bot/internal/profanity"
	"github.com/vkedu/projects-bot/internal/scraper"
	"github.com/vkedu/projects-bot/internal/session"
	"github.com/vkedu/projects-bot/internal/store"
	"github.com/vkedu/projects-bot/internal/vk"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := store.NewBoltStore(filepath.Join(cfg.DataDir, "projects-bot.db"))
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer db.Close()

	snap, err := db.LoadCatalog()
	if err != nil {
		log.Fatalf("loading catalog: %v", err)
	}
	if len(snap.Projects) == 0 {
		log.Printf("main: catalog is empty, run cmd/scraper or wait for the first refresh")
	}

	faq, err := db.LoadFAQ()
	if err != nil {
		log.Fatalf("loading faq: %v", err)
	}
	if len(faq) == 0 {
		faq, err = catalog.LoadFAQFile(filepath.Join(cfg.DataDir, "faq.json"))
		if err != nil {
			log.Printf("main: no faq available: %v", err)
		} else if err := db.SaveFAQ(faq); err != nil {
			log.Printf("main: failed to seed faq bucket: %v", err)
		}
	}

	badWords, err := profanity.LoadFile(filepath.Join(cfg.DataDir, "bad_words.txt"))
	if err != nil {
		log.Fatalf("profanity lexicon: %v", err)
	}

	repo := catalog.NewRepository(snap, faq)
	eng := engine.New(repo, badWords, cfg.PageSize)
	vkClient := vk.NewClient(cfg.VKToken)
	sessionMgr := session.NewManager()

	// Periodic cleanup of stale per-peer locks to prevent memory leaks
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			sessionMgr.Cleanup(1 * time.Hour)
		}
	}()

	if cfg.RefreshInterval > 0 {
		scr := scraper.New(cfg.CatalogAPIURL)
		go func() {
			ticker := time.NewTicker(cfg.RefreshInterval)
			defer ticker.Stop()
			for range ticker.C {
				refreshCatalog(scr, db, repo)
			}
		}()
	}

	botHandler := bot.NewHandler(vkClient, eng, sessionMgr)
	webhookHandler := vk.NewWebhookHandler(cfg.VKConfirmation, cfg.VKSecret, cfg.VKGroupID, botHandler.HandleMessage)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/callback", webhookHandler.HandleCallback)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("projects-bot: listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("projects-bot: shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("projects-bot: stopped")
}

// refreshCatalog runs one scrape and publishes the result. On any failure
// the engine keeps serving the previous snapshot.
func refreshCatalog(scr *scraper.Scraper, db store.Store, repo *catalog.Repository) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snap, err := scr.Run(ctx)
	if err != nil {
		log.Printf("main: catalog refresh skipped: %v", err)
		return
	}
	if err := db.SaveCatalog(snap); err != nil {
		log.Printf("main: failed to persist refreshed catalog: %v", err)
		return
	}
	repo.Replace(snap)
	log.Printf("main: catalog refreshed, %d projects", len(snap.Projects))
}
