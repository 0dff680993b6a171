package domain

import "time"

// Recognized nutrient display categories. NutritionRecord.Nutrients keys are
// drawn only from this set; anything else from the source is dropped.
const (
	NutrientCalories = "Calories"
	NutrientProtein  = "Protein"
	NutrientCarbs    = "Carbohydrates"
	NutrientTotalFat = "Total Fat"
	NutrientFiber    = "Fiber"
	NutrientSugar    = "Sugar"
	NutrientSodium   = "Sodium"
)

// NutritionRecord is the display-ready nutrition summary for one food.
// Source is "Generic", a brand owner name, or "Estimated" when the values
// come from the static fallback table.
type NutritionRecord struct {
	FoodName        string            `json:"foodName"`
	Source          string            `json:"source"`
	Nutrients       map[string]string `json:"nutrients"`
	CaloriesPer100g float64           `json:"caloriesPer100g"`
	CachedAt        time.Time         `json:"cachedAt,omitempty"`
}

// NutritionSearchRequest is the body of a nutrition lookup call
type NutritionSearchRequest struct {
	Food string `json:"food" binding:"required"`
}

// USDAFood represents a food item from the USDA FoodData Central API
type USDAFood struct {
	FdcID       int64          `json:"fdcId"`
	Description string         `json:"description"`
	DataType    string         `json:"dataType,omitempty"`
	BrandOwner  string         `json:"brandOwner,omitempty"`
	Nutrients   []USDANutrient `json:"foodNutrients"`
}

// USDANutrient represents a single nutrient entry from USDA data
type USDANutrient struct {
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float64 `json:"value"`
}

// USDASearchResponse represents the response from the USDA search API
type USDASearchResponse struct {
	Foods     []USDAFood `json:"foods"`
	TotalHits int        `json:"totalHits"`
}
