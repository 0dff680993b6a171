package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for memoizing external lookups.
// Values are opaque JSON blobs; serialization is handled by the caller so
// the memory and Redis implementations behave identically.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// RecipeClient defines the interface for the recipe-data collaborator
// (TheMealDB). SearchMeals returns a nil slice when nothing matches.
type RecipeClient interface {
	SearchMeals(ctx context.Context, term string) ([]RawMeal, error)
}

// NutritionClient defines the interface for the nutrition-data collaborator
// (USDA FoodData Central)
type NutritionClient interface {
	SearchFoods(ctx context.Context, query string) (*USDASearchResponse, error)
}
