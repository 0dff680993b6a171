package domain

// Recipe is a display-ready recipe assembled from one TheMealDB record
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Instructions string   `json:"instructions"`
	Category     string   `json:"category"`
	Area         string   `json:"area"`
	YouTubeURL   string   `json:"youtubeUrl,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Tags         []string `json:"tags"`
}

// RawMeal is one meal record as returned by TheMealDB. Values are strings or
// null, and the ingredient/measure pairs live in 20 indexed fields
// (strIngredient1..strIngredient20), so a map is the natural wire shape.
type RawMeal map[string]any

// MealDBSearchResponse is the envelope TheMealDB returns for search.php.
// Meals is null (decoded as nil) when nothing matches.
type MealDBSearchResponse struct {
	Meals []RawMeal `json:"meals"`
}

// RecipeSearchRequest is the body of a recipe search call
type RecipeSearchRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
}
