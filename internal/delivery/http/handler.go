package http

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/forkcast/backend/internal/domain"
	"github.com/forkcast/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recipes   *usecase.RecipeService
	nutrition *usecase.NutritionService
}

// NewHandler creates a new HTTP handler
func NewHandler(recipes *usecase.RecipeService, nutrition *usecase.NutritionService) *Handler {
	return &Handler{
		recipes:   recipes,
		nutrition: nutrition,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "forkcast-backend",
		"version": "1.0.0",
	})
}

// ListIngredients returns the common ingredient catalog that backs the
// front end's multi-select picker
func (h *Handler) ListIngredients(c *gin.Context) {
	ingredients := make([]string, len(domain.CommonIngredients))
	copy(ingredients, domain.CommonIngredients)
	sort.Strings(ingredients)

	c.JSON(http.StatusOK, gin.H{
		"count":       len(ingredients),
		"ingredients": ingredients,
	})
}

// SearchRecipes handles recipe search requests
func (h *Handler) SearchRecipes(c *gin.Context) {
	var request domain.RecipeSearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "please enter or select at least one ingredient to search",
		})
		return
	}

	recipes, err := h.recipes.Search(c.Request.Context(), request.Ingredients)
	if err != nil {
		if errors.Is(err, domain.ErrNoIngredients) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "please enter or select at least one ingredient to search",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recipe search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(recipes),
		"recipes": recipes,
	})
}

// SearchNutrition handles nutrition lookup requests. Once the input
// validates this always answers 200: the resolver falls back to estimates
// instead of failing.
func (h *Handler) SearchNutrition(c *gin.Context) {
	var request domain.NutritionSearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food name is required"})
		return
	}

	record := h.nutrition.Resolve(c.Request.Context(), request.Food)

	c.JSON(http.StatusOK, gin.H{
		"nutrition": record,
		"macros":    usecase.MacrosFrom(record),
	})
}

// GenerateMealPlan handles daily meal plan requests. DietaryPreference is
// echoed back for the UI but does not change the suggestions.
func (h *Handler) GenerateMealPlan(c *gin.Context) {
	var request domain.MealPlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a positive calorie target is required"})
		return
	}

	plan := usecase.SuggestDailyMeals(request.TargetCalories)

	c.JSON(http.StatusOK, gin.H{
		"dietaryPreference": request.DietaryPreference,
		"plan":              plan,
	})
}
