package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultCatalogAPIURL is the storefront products endpoint the scraper pages
// through. %d is the slice (page) number.
const DefaultCatalogAPIURL = "https://store.tildaapi.com/api/getproductslist/?storepartuid=357127554781&recid=754421136&getparts=true&getoptions=true&slice=%d"

type Config struct {
	VKToken        string
	VKGroupID      int
	VKConfirmation string
	VKSecret       string

	Port    string
	DataDir string

	PageSize        int
	RefreshInterval time.Duration
	CatalogAPIURL   string
}

func Load() (*Config, error) {
	cfg, err := LoadScraper()
	if err != nil {
		return nil, err
	}

	for _, req := range []struct {
		name, val string
	}{
		{"VK_TOKEN", cfg.VKToken},
		{"VK_CONFIRMATION", cfg.VKConfirmation},
	} {
		if req.val == "" {
			return nil, fmt.Errorf("required env var %s is not set", req.name)
		}
	}

	if cfg.VKGroupID == 0 {
		return nil, fmt.Errorf("required env var VK_GROUP_ID is not set")
	}

	return cfg, nil
}

// LoadScraper loads the configuration without requiring the VK credentials,
// which the standalone scraper does not use.
func LoadScraper() (*Config, error) {
	// .env is optional — env vars may already be set (e.g. in production)
	_ = godotenv.Load()

	cfg := &Config{
		VKToken:        os.Getenv("VK_TOKEN"),
		VKGroupID:      parseIntEnv("VK_GROUP_ID"),
		VKConfirmation: os.Getenv("VK_CONFIRMATION"),
		VKSecret:       os.Getenv("VK_SECRET"),
		Port:           os.Getenv("PORT"),
		DataDir:        os.Getenv("DATA_DIR"),
		PageSize:       parseIntEnv("PAGE_SIZE"),
		CatalogAPIURL:  os.Getenv("CATALOG_API_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 5
	}

	if cfg.CatalogAPIURL == "" {
		cfg.CatalogAPIURL = DefaultCatalogAPIURL
	}

	cfg.RefreshInterval = 12 * time.Hour
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parsing REFRESH_INTERVAL %q: %w", v, err)
		}
		cfg.RefreshInterval = d
	}

	return cfg, nil
}

func parseIntEnv(key string) int {
	v, _ := strconv.Atoi(os.Getenv(key))
	return v
}
