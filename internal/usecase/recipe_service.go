package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/forkcast/backend/internal/domain"
	"github.com/forkcast/backend/internal/infrastructure/mealdb"
)

// Aggregation bounds. Only the first 3 ingredients become query terms so a
// long shopping list cannot fan out into dozens of upstream calls.
const (
	maxQueryTerms   = 3
	maxMealsPerTerm = 4
	maxRecipes      = 12
)

// RecipeServiceConfig holds configuration for the recipe service
type RecipeServiceConfig struct {
	CacheTTL time.Duration
}

// RecipeService aggregates recipe lookups across ingredient query terms
type RecipeService struct {
	cache    domain.CacheRepository
	client   domain.RecipeClient
	cacheTTL time.Duration
}

// NewRecipeService creates a new recipe service with dependencies
func NewRecipeService(
	cache domain.CacheRepository,
	client domain.RecipeClient,
	config RecipeServiceConfig,
) *RecipeService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &RecipeService{
		cache:    cache,
		client:   client,
		cacheTTL: cacheTTL,
	}
}

// Search looks up recipes for a list of ingredients.
// Flow: check cache -> one lookup per query term -> dedup by meal ID -> cache.
// A failed term is skipped; the result holds at most 12 recipes, with earlier
// terms' results preceding later ones.
func (s *RecipeService) Search(ctx context.Context, ingredients []string) ([]domain.Recipe, error) {
	if len(ingredients) == 0 {
		return nil, domain.ErrNoIngredients
	}

	cacheKey := s.generateCacheKey(ingredients)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var recipes []domain.Recipe
		if err := json.Unmarshal(cached, &recipes); err == nil {
			return recipes, nil
		}
	}

	terms := ingredients
	if len(terms) > maxQueryTerms {
		terms = terms[:maxQueryTerms]
	}

	recipes := []domain.Recipe{}
	seen := make(map[string]bool)

	for _, term := range terms {
		meals, err := s.client.SearchMeals(ctx, term)
		if err != nil {
			// One failed term must not abort the whole aggregation
			log.Printf("[Recipes] Skipping term %q: %v", term, err)
			continue
		}

		if len(meals) > maxMealsPerTerm {
			meals = meals[:maxMealsPerTerm]
		}

		for _, meal := range meals {
			recipe := mealdb.MapToRecipe(meal)
			if seen[recipe.ID] {
				continue
			}
			seen[recipe.ID] = true
			recipes = append(recipes, recipe)
			if len(recipes) == maxRecipes {
				break
			}
		}

		if len(recipes) == maxRecipes {
			break
		}
	}

	if data, err := json.Marshal(recipes); err == nil {
		if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL); err != nil {
			log.Printf("[Recipes] Failed to cache results: %v", err)
		}
	}

	return recipes, nil
}

// generateCacheKey creates a normalized cache key from the ingredient list.
// Format: "recipes:{normalized ingredients}"
func (s *RecipeService) generateCacheKey(ingredients []string) string {
	return "recipes:" + normalizeForCacheKey(strings.Join(ingredients, ","))
}
