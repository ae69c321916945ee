package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 2, cfg.Analyzer.ContextRadius)
	assert.Equal(t, 24*time.Hour, cfg.Analyzer.CacheTTL)
	assert.Equal(t, 30*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=meeting_notes sslmode=disable", cfg.GetDatabaseDSN())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("ANALYZER_CONTEXT_RADIUS", "4")
	t.Setenv("ANALYZER_CACHE_TTL", "90m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
	assert.Equal(t, 4, cfg.Analyzer.ContextRadius)
	assert.Equal(t, 90*time.Minute, cfg.Analyzer.CacheTTL)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("ANALYZER_CONTEXT_RADIUS", "two")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080", Environment: "development"},
			Database: DatabaseConfig{Host: "db", Name: "notes"},
			Analyzer: AnalyzerConfig{ContextRadius: 2, MaxInputBytes: 1024},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: true},
		{name: "storage without keys", mutate: func(c *Config) { c.Storage.Endpoint = "minio:9000" }, wantErr: true},
		{name: "negative radius", mutate: func(c *Config) { c.Analyzer.ContextRadius = -1 }, wantErr: true},
		{name: "no input limit", mutate: func(c *Config) { c.Analyzer.MaxInputBytes = 0 }, wantErr: true},
		{name: "production without secret", mutate: func(c *Config) { c.Server.Environment = "production" }, wantErr: true},
		{
			name: "production with secret",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.JWT.AccessSecret = "s3cret"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
