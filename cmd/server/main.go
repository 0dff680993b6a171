package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/forkcast/backend/config"
	httpDelivery "github.com/forkcast/backend/internal/delivery/http"
	"github.com/forkcast/backend/internal/domain"
	"github.com/forkcast/backend/internal/infrastructure/cache"
	"github.com/forkcast/backend/internal/infrastructure/mealdb"
	"github.com/forkcast/backend/internal/infrastructure/usda"
	"github.com/forkcast/backend/internal/usecase"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Forkcast Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache: %s (TTL %s)", cfg.Cache.Type, cfg.Cache.TTL)

	// Memoization cache for external lookups
	var lookupCache domain.CacheRepository
	if cfg.Cache.Type == "redis" {
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		lookupCache = redisCache
	} else {
		lookupCache = cache.NewMemoryCache()
	}

	// External data collaborators
	mealdbClient := mealdb.NewClient(cfg.MealDB.BaseURL)
	usdaClient := usda.NewClient(cfg.USDA.APIKey, cfg.USDA.BaseURL)

	if cfg.Server.Environment == "development" {
		mealdbClient.SetDebug(true)
		usdaClient.SetDebug(true)
		log.Printf("API client debug mode enabled")
	}

	log.Printf("TheMealDB configured: %s", cfg.MealDB.BaseURL)
	if cfg.USDA.APIKey == "DEMO_KEY" {
		log.Printf("USDA API configured: %s (using DEMO_KEY - expect tight quotas)", cfg.USDA.BaseURL)
	} else {
		log.Printf("USDA API configured: %s", cfg.USDA.BaseURL)
	}

	// Usecase layer
	recipeService := usecase.NewRecipeService(
		lookupCache,
		mealdbClient,
		usecase.RecipeServiceConfig{CacheTTL: cfg.Cache.TTL},
	)
	nutritionService := usecase.NewNutritionService(
		lookupCache,
		usdaClient,
		usecase.NutritionServiceConfig{CacheTTL: cfg.Cache.TTL},
	)

	handler := httpDelivery.NewHandler(recipeService, nutritionService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
