package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/health-planner/internal/types"
)

func allowAll() *GenerationRequest {
	return &GenerationRequest{
		AllowedExerciseIDs: map[string]bool{"walk_brisk": true, "taichi": true},
		AllowedFoodIDs:     map[string]bool{"oats_steelcut": true, "lentils": true},
	}
}

func TestValidateKeepsAllowedReferences(t *testing.T) {
	generated := &types.GeneratedPlan{
		Title: "Week 1",
		Exercises: []types.PlanExerciseRef{
			{ExerciseID: "walk_brisk", Day: 1},
			{ExerciseID: "taichi", Day: 2},
		},
		Meals: []types.PlanMealRef{
			{FoodID: "oats_steelcut", Day: 1, Meal: "breakfast"},
		},
	}

	validated, report := Validate(generated, allowAll())

	assert.Len(t, validated.Exercises, 2)
	assert.Len(t, validated.Meals, 1)
	assert.Equal(t, 0, report.TotalDropped())
	assert.Equal(t, types.PlanGenerated, validated.Source)
	assert.NotEmpty(t, validated.PlanID)
	assert.Equal(t, "Week 1", validated.Title)
}

func TestValidateDropsDisallowedReferences(t *testing.T) {
	generated := &types.GeneratedPlan{
		Exercises: []types.PlanExerciseRef{
			{ExerciseID: "walk_brisk", Day: 1},
			{ExerciseID: "run_interval", Day: 2}, // not allowed
		},
		Meals: []types.PlanMealRef{
			{FoodID: "beef_liver", Day: 1}, // not allowed
			{FoodID: "lentils", Day: 1},
		},
	}

	validated, report := Validate(generated, allowAll())

	require.Len(t, validated.Exercises, 1)
	assert.Equal(t, "walk_brisk", validated.Exercises[0].ExerciseID)
	require.Len(t, validated.Meals, 1)
	assert.Equal(t, "lentils", validated.Meals[0].FoodID)

	assert.Equal(t, 1, report.DroppedExercises)
	assert.Equal(t, 1, report.DroppedMeals)
	assert.ElementsMatch(t, []string{"run_interval", "beef_liver"}, report.DroppedIDs)
}

// The fencing invariant: whatever the generator produced, every reference in
// the validated plan is an element of the allowed sets for that request.
func TestValidateFencingInvariant(t *testing.T) {
	req := allowAll()
	generated := &types.GeneratedPlan{
		Exercises: []types.PlanExerciseRef{
			{ExerciseID: "walk_brisk"}, {ExerciseID: "made_up"}, {ExerciseID: ""},
			{ExerciseID: "hiit_circuit"}, {ExerciseID: "taichi"},
		},
		Meals: []types.PlanMealRef{
			{FoodID: "lentils"}, {FoodID: "pizza"}, {FoodID: "oats_steelcut"}, {FoodID: "OATS_STEELCUT"},
		},
	}

	validated, _ := Validate(generated, req)

	for _, ref := range validated.Exercises {
		assert.True(t, req.AllowedExerciseIDs[ref.ExerciseID], "leaked exercise %q", ref.ExerciseID)
	}
	for _, ref := range validated.Meals {
		assert.True(t, req.AllowedFoodIDs[ref.FoodID], "leaked food %q", ref.FoodID)
	}
}

func TestValidateEmptyPlanStaysEmpty(t *testing.T) {
	validated, report := Validate(&types.GeneratedPlan{}, allowAll())

	assert.NotNil(t, validated.Exercises)
	assert.NotNil(t, validated.Meals)
	assert.Empty(t, validated.Exercises)
	assert.Empty(t, validated.Meals)
	assert.Equal(t, 0, report.TotalDropped())
}
