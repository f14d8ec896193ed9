package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "/tmp/creds.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, StoreDriverFirestore, cfg.Store.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ProfileCacheTTL)
	assert.Equal(t, "0 0 0 * * *", cfg.App.SweepSchedule)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoad_RequiresFirebaseCredentials(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_PostgresDriverNeedsDSN(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "/tmp/creds.json")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_DSN", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DSN", "postgres://localhost:5432/homequest")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "/tmp/creds.json")
	t.Setenv("STORE_DRIVER", "dynamo")

	_, err := Load()
	assert.Error(t, err)
}

func TestSplitEnv(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "/tmp/creds.json")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.Server.CORSOrigins)
}
