package domain

import "errors"

var (
	// ErrNoIngredients is returned when a recipe search is attempted without ingredients
	ErrNoIngredients = errors.New("at least one ingredient is required")

	// ErrFoodNotFound is returned when a food cannot be found in the USDA database
	ErrFoodNotFound = errors.New("food not found in USDA database")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrUSDAAPIFailure is returned when a USDA API request fails
	ErrUSDAAPIFailure = errors.New("USDA API request failed")

	// ErrMealDBAPIFailure is returned when a TheMealDB API request fails
	ErrMealDBAPIFailure = errors.New("TheMealDB API request failed")

	// ErrCacheUnavailable is returned when the cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
