package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/forkcast/backend/internal/domain"
)

// Package-level compiled regex patterns for cache key normalization
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// sourceGeneric labels USDA candidates without a brand owner
const sourceGeneric = "Generic"

// NutritionServiceConfig holds configuration for the nutrition service
type NutritionServiceConfig struct {
	CacheTTL time.Duration
}

// NutritionService resolves nutrition data for a food name, falling back to
// static estimates when the USDA lookup yields nothing usable
type NutritionService struct {
	cache    domain.CacheRepository
	client   domain.NutritionClient
	cacheTTL time.Duration
}

// NewNutritionService creates a new nutrition service with dependencies
func NewNutritionService(
	cache domain.CacheRepository,
	client domain.NutritionClient,
	config NutritionServiceConfig,
) *NutritionService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &NutritionService{
		cache:    cache,
		client:   client,
		cacheTTL: cacheTTL,
	}
}

// Resolve returns nutrition data for a food name. It never fails: USDA
// errors and empty result sets fall through to the estimation table, and
// estimated records are memoized the same as live ones.
func (s *NutritionService) Resolve(ctx context.Context, food string) *domain.NutritionRecord {
	cacheKey := s.generateCacheKey(food)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var record domain.NutritionRecord
		if err := json.Unmarshal(cached, &record); err == nil {
			return &record
		}
	}

	record := s.lookup(ctx, food)

	record.CachedAt = time.Now()
	if data, err := json.Marshal(record); err == nil {
		if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL); err != nil {
			log.Printf("[Nutrition] Failed to cache result: %v", err)
		}
	}

	return record
}

// lookup queries the USDA API and normalizes the first candidate
func (s *NutritionService) lookup(ctx context.Context, food string) *domain.NutritionRecord {
	result, err := s.client.SearchFoods(ctx, food)
	if err != nil || result == nil || len(result.Foods) == 0 {
		log.Printf("[Nutrition] USDA lookup failed for %q, using estimates: %v", food, err)
		return EstimateNutrition(food)
	}

	first := result.Foods[0]

	name := first.Description
	if name == "" {
		name = food
	}

	source := first.BrandOwner
	if source == "" {
		source = sourceGeneric
	}

	nutrients, calories := normalizeNutrients(first.Nutrients)

	return &domain.NutritionRecord{
		FoodName:        name,
		Source:          source,
		Nutrients:       nutrients,
		CaloriesPer100g: calories,
	}
}

// generateCacheKey creates a normalized cache key from the food name.
// Format: "nutrition:{normalized food name}"
func (s *NutritionService) generateCacheKey(food string) string {
	return "nutrition:" + normalizeForCacheKey(food)
}

// normalizeNutrients classifies raw USDA nutrient entries into the seven
// recognized display categories and extracts the kcal figure. The substring
// rules and their order mirror the upstream naming quirks: first match wins,
// and unmatched entries are dropped rather than guessed at.
func normalizeNutrients(raw []domain.USDANutrient) (map[string]string, float64) {
	nutrients := make(map[string]string)
	var caloriesPer100g float64

	for _, n := range raw {
		name := strings.ToLower(n.NutrientName)
		amount := formatAmount(n.Value)

		switch {
		case strings.Contains(name, "energy") && strings.Contains(strings.ToLower(n.UnitName), "kcal"):
			caloriesPer100g = n.Value
			nutrients[domain.NutrientCalories] = amount + " kcal"
		case strings.Contains(name, "protein"):
			nutrients[domain.NutrientProtein] = fmt.Sprintf("%s %s", amount, n.UnitName)
		case strings.Contains(name, "carbohydrate") && strings.Contains(name, "by difference"):
			nutrients[domain.NutrientCarbs] = fmt.Sprintf("%s %s", amount, n.UnitName)
		case strings.Contains(name, "total lipid") || (strings.Contains(name, "fat") && strings.Contains(name, "total")):
			nutrients[domain.NutrientTotalFat] = fmt.Sprintf("%s %s", amount, n.UnitName)
		case strings.Contains(name, "fiber"):
			nutrients[domain.NutrientFiber] = fmt.Sprintf("%s %s", amount, n.UnitName)
		case strings.Contains(name, "sugars") && strings.Contains(name, "total"):
			nutrients[domain.NutrientSugar] = fmt.Sprintf("%s %s", amount, n.UnitName)
		case strings.Contains(name, "sodium"):
			nutrients[domain.NutrientSodium] = fmt.Sprintf("%s %s", amount, n.UnitName)
		}
	}

	return nutrients, caloriesPer100g
}

// formatAmount renders a nutrient value with the fewest digits that round-trip
// (165 -> "165", 3.6 -> "3.6")
func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// normalizeForCacheKey normalizes a string for use as a cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// MacroBreakdown carries the numeric macro values the front end charts
type MacroBreakdown struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// MacrosFrom extracts numeric macronutrient values from a record's display
// strings ("31 G" -> 31) for the distribution chart
func MacrosFrom(record *domain.NutritionRecord) MacroBreakdown {
	var macros MacroBreakdown

	for name, value := range record.Nutrients {
		fields := strings.Fields(value)
		if len(fields) == 0 {
			continue
		}
		amount, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}

		switch lower := strings.ToLower(name); {
		case strings.Contains(lower, "protein"):
			macros.Protein = amount
		case strings.Contains(lower, "carbohydrate"):
			macros.Carbs = amount
		case strings.Contains(lower, "fat"):
			macros.Fat = amount
		}
	}

	return macros
}
