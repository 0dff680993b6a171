package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("FORKCAST_SERVER_PORT")
		os.Unsetenv("FORKCAST_SERVER_ENVIRONMENT")
		os.Unsetenv("FORKCAST_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("FORKCAST_MEALDB_BASE_URL")
		os.Unsetenv("FORKCAST_USDA_API_KEY")
		os.Unsetenv("FORKCAST_USDA_BASE_URL")
		os.Unsetenv("FORKCAST_CACHE_TYPE")
		os.Unsetenv("FORKCAST_CACHE_REDIS_URL")
		os.Unsetenv("FORKCAST_CACHE_TTL")
		os.Unsetenv("FORKCAST_RATELIMIT_PER_IP")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.MealDB.BaseURL != "https://www.themealdb.com/api/json/v1/1" {
			t.Errorf("MealDB.BaseURL = %s, want public v1/1 endpoint", cfg.MealDB.BaseURL)
		}
		if cfg.USDA.APIKey != "DEMO_KEY" {
			t.Errorf("USDA.APIKey = %s, want DEMO_KEY", cfg.USDA.APIKey)
		}
		if cfg.USDA.BaseURL != "https://api.nal.usda.gov/fdc" {
			t.Errorf("USDA.BaseURL = %s, want https://api.nal.usda.gov/fdc", cfg.USDA.BaseURL)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 1*time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("FORKCAST_SERVER_PORT", "9090")
		os.Setenv("FORKCAST_SERVER_ENVIRONMENT", "production")
		os.Setenv("FORKCAST_MEALDB_BASE_URL", "https://www.themealdb.com/api/json/v2/premium")
		os.Setenv("FORKCAST_USDA_API_KEY", "custom-api-key")
		os.Setenv("FORKCAST_USDA_BASE_URL", "https://custom.api.com")
		os.Setenv("FORKCAST_CACHE_TYPE", "redis")
		os.Setenv("FORKCAST_CACHE_REDIS_URL", "redis://localhost:6379")
		os.Setenv("FORKCAST_CACHE_TTL", "30m")
		os.Setenv("FORKCAST_RATELIMIT_PER_IP", "200")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.MealDB.BaseURL != "https://www.themealdb.com/api/json/v2/premium" {
			t.Errorf("MealDB.BaseURL = %s, want premium endpoint", cfg.MealDB.BaseURL)
		}
		if cfg.USDA.APIKey != "custom-api-key" {
			t.Errorf("USDA.APIKey = %s, want custom-api-key", cfg.USDA.APIKey)
		}
		if cfg.USDA.BaseURL != "https://custom.api.com" {
			t.Errorf("USDA.BaseURL = %s, want https://custom.api.com", cfg.USDA.BaseURL)
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
		if cfg.Cache.RedisURL != "redis://localhost:6379" {
			t.Errorf("Cache.RedisURL = %s, want redis://localhost:6379", cfg.Cache.RedisURL)
		}
		if cfg.Cache.TTL != 30*time.Minute {
			t.Errorf("Cache.TTL = %v, want 30m", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
	})

	t.Run("fails validation for invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("FORKCAST_CACHE_TYPE", "invalid")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid cache type")
		}
	})

	t.Run("fails validation when redis URL missing for redis cache", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("FORKCAST_CACHE_TYPE", "redis")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing Redis URL")
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("validates successfully with all required fields", func(t *testing.T) {
		cfg := &Config{
			USDA: USDAConfig{
				APIKey:  "test-key",
				BaseURL: "https://api.nal.usda.gov/fdc",
			},
			Cache: CacheConfig{
				Type: "memory",
			},
		}

		err := validate(cfg)
		if err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when API key is empty", func(t *testing.T) {
		cfg := &Config{
			USDA: USDAConfig{
				APIKey: "",
			},
			Cache: CacheConfig{
				Type: "memory",
			},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for empty API key")
		}
	})

	t.Run("fails for invalid cache type", func(t *testing.T) {
		cfg := &Config{
			USDA: USDAConfig{
				APIKey: "test-key",
			},
			Cache: CacheConfig{
				Type: "invalid-type",
			},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for invalid cache type")
		}
	})

	t.Run("validates redis cache type with URL", func(t *testing.T) {
		cfg := &Config{
			USDA: USDAConfig{
				APIKey: "test-key",
			},
			Cache: CacheConfig{
				Type:     "redis",
				RedisURL: "redis://localhost:6379",
			},
		}

		err := validate(cfg)
		if err != nil {
			t.Errorf("validate() error = %v, want nil for valid redis config", err)
		}
	})

	t.Run("fails for redis cache without URL", func(t *testing.T) {
		cfg := &Config{
			USDA: USDAConfig{
				APIKey: "test-key",
			},
			Cache: CacheConfig{
				Type:     "redis",
				RedisURL: "",
			},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for redis without URL")
		}
	})
}
