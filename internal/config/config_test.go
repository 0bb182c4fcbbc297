package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("VK_TOKEN", "tok")
	t.Setenv("VK_GROUP_ID", "42")
	t.Setenv("VK_CONFIRMATION", "confirm")
	t.Setenv("VK_SECRET", "")
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("REFRESH_INTERVAL", "")
	t.Setenv("CATALOG_API_URL", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.VKToken)
	assert.Equal(t, 42, cfg.VKGroupID)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, 12*time.Hour, cfg.RefreshInterval)
	assert.Equal(t, DefaultCatalogAPIURL, cfg.CatalogAPIURL)
}

func TestLoad_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("PAGE_SIZE", "7")
	t.Setenv("REFRESH_INTERVAL", "30m")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 7, cfg.PageSize)
	assert.Equal(t, 30*time.Minute, cfg.RefreshInterval)
}

func TestLoad_MissingToken(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("VK_TOKEN", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "VK_TOKEN")
}

func TestLoad_MissingGroupID(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("VK_GROUP_ID", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "VK_GROUP_ID")
}

func TestLoad_BadRefreshInterval(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("REFRESH_INTERVAL", "fortnightly")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoadScraper_NoVKCredentialsNeeded(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("VK_TOKEN", "")
	t.Setenv("VK_GROUP_ID", "")
	t.Setenv("VK_CONFIRMATION", "")

	cfg, err := LoadScraper()

	require.NoError(t, err)
	assert.Equal(t, DefaultCatalogAPIURL, cfg.CatalogAPIURL)
}
