package mealdb

import (
	"fmt"
	"strings"

	"github.com/forkcast/backend/internal/domain"
)

// maxIngredientSlots is the number of indexed strIngredientN/strMeasureN
// pairs TheMealDB carries per meal.
const maxIngredientSlots = 20

// Placeholder values for meals with missing fields
const (
	placeholderName         = "Unknown"
	placeholderCategory     = "General"
	placeholderArea         = "International"
	placeholderInstructions = "No instructions available"
)

// MapToRecipe converts a raw TheMealDB record into the domain Recipe model
func MapToRecipe(meal domain.RawMeal) domain.Recipe {
	return domain.Recipe{
		ID:           stringField(meal, "idMeal"),
		Name:         stringFieldOr(meal, "strMeal", placeholderName),
		ImageURL:     stringField(meal, "strMealThumb"),
		Instructions: stringFieldOr(meal, "strInstructions", placeholderInstructions),
		Category:     stringFieldOr(meal, "strCategory", placeholderCategory),
		Area:         stringFieldOr(meal, "strArea", placeholderArea),
		YouTubeURL:   stringField(meal, "strYoutube"),
		Ingredients:  extractIngredientLines(meal),
		Tags:         splitTags(stringField(meal, "strTags")),
	}
}

// extractIngredientLines scans the 20 indexed slots and pairs each measure
// with its ingredient name. A slot is included only when the ingredient name
// is non-empty after trimming.
func extractIngredientLines(meal domain.RawMeal) []string {
	lines := []string{}
	for i := 1; i <= maxIngredientSlots; i++ {
		name := stringField(meal, fmt.Sprintf("strIngredient%d", i))
		if strings.TrimSpace(name) == "" {
			continue
		}
		measure := stringField(meal, fmt.Sprintf("strMeasure%d", i))
		lines = append(lines, fmt.Sprintf("%s %s", strings.TrimSpace(measure), strings.TrimSpace(name)))
	}
	return lines
}

// splitTags parses the comma-delimited strTags field; absent tags yield an
// empty slice rather than nil so the JSON shape stays stable.
func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, ",")
}

// stringField reads a string-typed field from a raw meal; nulls and missing
// keys come back as ""
func stringField(meal domain.RawMeal, key string) string {
	if v, ok := meal[key].(string); ok {
		return v
	}
	return ""
}

// stringFieldOr reads a string-typed field, substituting a placeholder when
// the field is absent or empty
func stringFieldOr(meal domain.RawMeal, key, fallback string) string {
	if v := stringField(meal, key); v != "" {
		return v
	}
	return fallback
}
