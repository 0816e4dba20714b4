package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "/api", cfg.Server.BasePath)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxSize)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, 60*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
	assert.Contains(t, cfg.Upload.AllowedImageTypes, "image/jpeg")
	assert.Contains(t, cfg.Upload.AllowedDocExtensions, ".pdf")
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: "9000"
  base_path: /v1
jwt:
  secret: file-secret
storage:
  backend: s3
  s3:
    bucket: vetcard-media
    region: eu-central-1
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "/v1", cfg.Server.BasePath)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "s3", cfg.Storage.Backend)
	assert.Equal(t, "vetcard-media", cfg.Storage.S3.Bucket)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("MAX_UPLOAD_SIZE", "1048576")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxSize)
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	dsn := DatabaseConfig{
		Host:    "db",
		Port:    5432,
		User:    "vetcard",
		Name:    "vetcard",
		SSLMode: "disable",
	}.GetDSN()

	assert.Contains(t, dsn, "host=db")
	assert.Contains(t, dsn, "dbname=vetcard")
	assert.Contains(t, dsn, "sslmode=disable")
}
