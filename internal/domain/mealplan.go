package domain

// MealSlot is one time bucket of a daily plan
type MealSlot struct {
	TargetCalories int      `json:"targetCalories"`
	Suggestions    []string `json:"suggestions"`
}

// MealPlan splits a daily calorie target across the four meal slots.
// Slot targets are integer-truncated, so they may sum to slightly less
// than TotalCalories (at most 4 kcal short).
type MealPlan struct {
	TotalCalories int      `json:"totalCalories"`
	Breakfast     MealSlot `json:"breakfast"`
	Lunch         MealSlot `json:"lunch"`
	Dinner        MealSlot `json:"dinner"`
	Snacks        MealSlot `json:"snacks"`
}

// MealPlanRequest is the body of a meal plan generation call.
// DietaryPreference is accepted for the UI but does not alter suggestions.
type MealPlanRequest struct {
	TargetCalories    int    `json:"targetCalories" binding:"required,min=1"`
	DietaryPreference string `json:"dietaryPreference,omitempty"`
}
