package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TOKEN_STORE", "file")
	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, "/api-admin", cfg.AdminAPIBase)
	assert.Equal(t, "backend", cfg.Storage.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Storage.PresignTTL)
}

func TestLoad_StoragePrefix(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("STORAGE_S3_BUCKET", "media")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3", cfg.Storage.Driver)
	assert.Equal(t, "media", cfg.Storage.S3Bucket)
}

func TestLoad_RejectsBadTokenStore(t *testing.T) {
	t.Setenv("TOKEN_STORE", "redis")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TOKEN_STORE", "mysql")
	t.Setenv("DB_DSN", "")
	_, err = Load()
	assert.ErrorContains(t, err, "DB_DSN")
}

func TestAPIBaseURL(t *testing.T) {
	cfg := Config{BackendURL: "http://api.local/", AdminAPIBase: "/api-admin"}
	assert.Equal(t, "http://api.local/api-admin", cfg.APIBaseURL())

	cfg.AdminAPIBase = ""
	assert.Equal(t, "http://api.local", cfg.APIBaseURL())
}
