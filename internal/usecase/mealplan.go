package usecase

import "github.com/forkcast/backend/internal/domain"

// Share of the daily target assigned to each slot. The splits are truncated
// to whole kcal, so the four targets can fall up to 4 kcal short of the total.
const (
	breakfastShare = 0.25
	lunchShare     = 0.35
	dinnerShare    = 0.30
	snackShare     = 0.10
)

// SuggestDailyMeals splits a daily calorie target across the four meal slots
// and picks a canned suggestion list per slot based on the slot's calorie
// band. Pure function; dietary preference is handled (and ignored) upstream.
func SuggestDailyMeals(targetCalories int) *domain.MealPlan {
	breakfast := int(float64(targetCalories) * breakfastShare)
	lunch := int(float64(targetCalories) * lunchShare)
	dinner := int(float64(targetCalories) * dinnerShare)
	snacks := int(float64(targetCalories) * snackShare)

	return &domain.MealPlan{
		TotalCalories: targetCalories,
		Breakfast: domain.MealSlot{
			TargetCalories: breakfast,
			Suggestions:    breakfastIdeas(breakfast),
		},
		Lunch: domain.MealSlot{
			TargetCalories: lunch,
			Suggestions:    lunchIdeas(lunch),
		},
		Dinner: domain.MealSlot{
			TargetCalories: dinner,
			Suggestions:    dinnerIdeas(dinner),
		},
		Snacks: domain.MealSlot{
			TargetCalories: snacks,
			Suggestions:    snackIdeas(),
		},
	}
}

func breakfastIdeas(target int) []string {
	switch {
	case target <= 300:
		return []string{
			"Oatmeal with banana and honey",
			"Greek yogurt with berries",
			"Toast with avocado",
		}
	case target <= 500:
		return []string{
			"Eggs with toast and fruit",
			"Smoothie bowl with granola",
			"Pancakes with syrup",
		}
	default:
		return []string{
			"Full breakfast with eggs, bacon, toast",
			"Large smoothie bowl with nuts and seeds",
			"French toast with fruit and cream",
		}
	}
}

func lunchIdeas(target int) []string {
	switch {
	case target <= 400:
		return []string{
			"Chicken salad with vegetables",
			"Soup with bread roll",
			"Light sandwich with fruit",
		}
	case target <= 600:
		return []string{
			"Grilled chicken with rice and vegetables",
			"Pasta with tomato sauce and salad",
			"Fish with quinoa and steamed broccoli",
		}
	default:
		return []string{
			"Large pasta dish with meat sauce",
			"Burger with fries and salad",
			"Stir-fry with rice and protein",
		}
	}
}

func dinnerIdeas(target int) []string {
	switch {
	case target <= 500:
		return []string{
			"Grilled fish with vegetables",
			"Chicken stir-fry with minimal oil",
			"Vegetable curry with small portion rice",
		}
	case target <= 700:
		return []string{
			"Steak with potato and vegetables",
			"Salmon with rice and asparagus",
			"Chicken curry with rice",
		}
	default:
		return []string{
			"Large steak dinner with sides",
			"Rich pasta dish with garlic bread",
			"Full roast dinner with all trimmings",
		}
	}
}

// snackIdeas is the same regardless of the slot target
func snackIdeas() []string {
	return []string{
		"Apple with peanut butter",
		"Handful of nuts",
		"Yogurt with honey",
		"Small protein bar",
	}
}
