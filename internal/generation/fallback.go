package generation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/health-planner/internal/types"
)

// Fallback plan sizing: how many distinct items from the head of each
// filtered catalog the deterministic plan draws on.
const (
	fallbackExerciseCount = 3
	fallbackFoodCount     = 6
	fallbackDays          = 7
)

var fallbackMealNames = []string{"breakfast", "lunch", "dinner"}

// FallbackPlan constructs a deterministic minimal plan directly from the
// first few items of each filtered catalog. It is used whenever generation
// fails, times out, or returns an unparsable document; it references only
// permitted items by construction, so it skips validation entirely.
func FallbackPlan(allowedExercises []types.Exercise, allowedFoods []types.Food) *types.ValidatedPlan {
	plan := &types.ValidatedPlan{
		PlanID:    uuid.NewString(),
		Source:    types.PlanFallback,
		Title:     "Basic Weekly Plan",
		Summary:   "A conservative rotation built from your safest available options.",
		Exercises: []types.PlanExerciseRef{},
		Meals:     []types.PlanMealRef{},
		Guidance: []string{
			"This plan was assembled without personalized generation; review it with your care provider.",
		},
	}

	exercises := allowedExercises
	if len(exercises) > fallbackExerciseCount {
		exercises = exercises[:fallbackExerciseCount]
	}
	foods := allowedFoods
	if len(foods) > fallbackFoodCount {
		foods = foods[:fallbackFoodCount]
	}

	for day := 1; day <= fallbackDays; day++ {
		if len(exercises) > 0 {
			item := exercises[(day-1)%len(exercises)]
			plan.Exercises = append(plan.Exercises, types.PlanExerciseRef{
				ExerciseID: item.ID,
				Day:        day,
				Minutes:    item.DurationMinutes,
			})
		}
		for i, meal := range fallbackMealNames {
			if len(foods) == 0 {
				break
			}
			item := foods[(day-1+i)%len(foods)]
			plan.Meals = append(plan.Meals, types.PlanMealRef{
				FoodID: item.ID,
				Day:    day,
				Meal:   meal,
				Note:   fmt.Sprintf("Include %s", item.Name),
			})
		}
	}

	return plan
}
