package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "HOST", "CATALOG_FILE", "REDIS_ADDR", "CACHE_TTL", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "", cfg.Catalog.File)
	assert.False(t, cfg.Cache.Enabled())
	assert.Equal(t, 300, cfg.Cache.TTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_FILE", "menu.yaml")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_TTL", "60")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example, https://admin.example ,")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("READ_TIMEOUT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "bad ints fall back to the default")
	assert.Equal(t, "menu.yaml", cfg.Catalog.File)
	assert.True(t, cfg.Cache.Enabled())
	assert.Equal(t, 2, cfg.Cache.RedisDB)
	assert.Equal(t, 60, cfg.Cache.TTL)
	assert.Equal(t, []string{"https://shop.example", "https://admin.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Cache:    CacheConfig{TTL: 300},
			CORS:     CORSConfig{AllowedOrigins: []string{"*"}},
			LogLevel: "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Server.Port = "" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, true},
		{"upper case log level", func(c *Config) { c.LogLevel = "WARN" }, false},
		{"no cors origins", func(c *Config) { c.CORS.AllowedOrigins = nil }, true},
		{"cache with zero ttl", func(c *Config) { c.Cache.RedisAddr = "redis:6379"; c.Cache.TTL = 0 }, true},
		{"zero ttl without cache", func(c *Config) { c.Cache.TTL = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
