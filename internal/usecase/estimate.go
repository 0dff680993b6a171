package usecase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/forkcast/backend/internal/domain"
)

// sourceEstimated labels records synthesized from the static table
const sourceEstimated = "Estimated"

// macroEstimate holds approximate per-100g values for a generic food keyword
type macroEstimate struct {
	keyword  string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

// nutritionEstimates is an ordered table: the first keyword contained in the
// lowercased food name wins, so it must stay a slice rather than a map.
var nutritionEstimates = []macroEstimate{
	{keyword: "chicken", calories: 165, protein: 31, carbs: 0, fat: 3.6},
	{keyword: "beef", calories: 250, protein: 26, carbs: 0, fat: 17},
	{keyword: "rice", calories: 130, protein: 2.7, carbs: 28, fat: 0.3},
	{keyword: "pasta", calories: 131, protein: 5, carbs: 25, fat: 1.1},
	{keyword: "potato", calories: 77, protein: 2, carbs: 17, fat: 0.1},
	{keyword: "tomato", calories: 18, protein: 0.9, carbs: 3.9, fat: 0.2},
	{keyword: "cheese", calories: 113, protein: 7, carbs: 1, fat: 9},
	{keyword: "egg", calories: 155, protein: 13, carbs: 1.1, fat: 11},
	{keyword: "bread", calories: 265, protein: 9, carbs: 49, fat: 3.2},
	{keyword: "fish", calories: 206, protein: 22, carbs: 0, fat: 12},
}

// defaultEstimate is used when no keyword matches; it keeps the resolver's
// never-fails contract honest.
var defaultEstimate = macroEstimate{calories: 150, protein: 8, carbs: 20, fat: 5}

// EstimateNutrition synthesizes a nutrition record from the static table.
// All values are rough per-100g figures and are labelled "Estimated".
func EstimateNutrition(food string) *domain.NutritionRecord {
	foodLower := strings.ToLower(food)

	estimate := defaultEstimate
	for _, candidate := range nutritionEstimates {
		if strings.Contains(foodLower, candidate.keyword) {
			estimate = candidate
			break
		}
	}

	return &domain.NutritionRecord{
		FoodName: cases.Title(language.English).String(food),
		Source:   sourceEstimated,
		Nutrients: map[string]string{
			domain.NutrientCalories: formatAmount(estimate.calories) + " kcal",
			domain.NutrientProtein:  formatAmount(estimate.protein) + " g",
			domain.NutrientCarbs:    formatAmount(estimate.carbs) + " g",
			domain.NutrientTotalFat: formatAmount(estimate.fat) + " g",
		},
		CaloriesPer100g: estimate.calories,
	}
}
