package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/health-planner/internal/types"
)

func TestFilterExercisesIntensityCeiling(t *testing.T) {
	constraints := &types.MedicalConstraints{MaxIntensity: types.IntensityLight}

	filtered := FilterExercises(constraints, Exercises())

	require.NotEmpty(t, filtered)
	for _, item := range filtered {
		assert.LessOrEqual(t, item.Intensity, types.IntensityLight, "item %s", item.ID)
	}
}

func TestFilterExercisesUnconstrainedKeepsAll(t *testing.T) {
	constraints := &types.MedicalConstraints{MaxIntensity: types.IntensityVigorous}

	filtered := FilterExercises(constraints, Exercises())

	assert.Len(t, filtered, len(Exercises()))
}

func TestFilterExercisesContraindicationOverlap(t *testing.T) {
	constraints := &types.MedicalConstraints{
		MaxIntensity:        types.IntensityVigorous,
		ForbiddenConditions: []types.ConditionCode{types.CondHypertension},
	}

	filtered := FilterExercises(constraints, Exercises())

	ids := ExerciseIDs(filtered)
	assert.NotContains(t, ids, "strength_weights")
	assert.NotContains(t, ids, "hiit_circuit")
	assert.Contains(t, ids, "walk_brisk")
}

func TestFilterExercisesCardiovascularSpecialCase(t *testing.T) {
	// Cardiovascular risk excludes every vigorous item and every item that
	// requires supervision, beyond the generic code overlap.
	constraints := &types.MedicalConstraints{
		MaxIntensity:        types.IntensityVigorous,
		ForbiddenConditions: []types.ConditionCode{types.CondCardiovascular},
	}

	filtered := FilterExercises(constraints, Exercises())

	for _, item := range filtered {
		assert.Less(t, item.Intensity, types.IntensityVigorous, "item %s", item.ID)
		assert.False(t, item.RequiresSupervision, "item %s", item.ID)
	}
}

func TestFilterExercisesHypoglycemiaDurationCap(t *testing.T) {
	constraints := &types.MedicalConstraints{
		MaxIntensity:        types.IntensityVigorous,
		ForbiddenConditions: []types.ConditionCode{types.CondHypoglycemiaRisk},
	}

	filtered := FilterExercises(constraints, Exercises())

	assert.NotContains(t, ExerciseIDs(filtered), "hike_long")
}

func TestFilterExercisesPreservesCatalogOrder(t *testing.T) {
	constraints := &types.MedicalConstraints{MaxIntensity: types.IntensityModerate}

	filtered := FilterExercises(constraints, Exercises())

	position := map[string]int{}
	for i, item := range Exercises() {
		position[item.ID] = i
	}
	for i := 1; i < len(filtered); i++ {
		assert.Greater(t, position[filtered[i].ID], position[filtered[i-1].ID])
	}
}

func TestFilterFoodsLowGlycemicIndex(t *testing.T) {
	constraints := &types.MedicalConstraints{
		MaxIntensity:        types.IntensityVigorous,
		DietaryRestrictions: []string{types.DietLowGlycemicIndex},
	}

	filtered := FilterFoods(constraints, nil, Foods())

	require.NotEmpty(t, filtered)
	for _, item := range filtered {
		assert.LessOrEqual(t, item.GlycemicIndex, glycemicIndexCeiling, "item %s", item.ID)
	}
	ids := FoodIDs(filtered)
	assert.NotContains(t, ids, "rice_white")
	assert.NotContains(t, ids, "potato_baked")
	assert.Contains(t, ids, "lentils")
}

func TestFilterFoodsLowPurine(t *testing.T) {
	constraints := &types.MedicalConstraints{
		MaxIntensity:        types.IntensityVigorous,
		DietaryRestrictions: []string{types.DietLowPurine},
	}

	filtered := FilterFoods(constraints, nil, Foods())

	ids := FoodIDs(filtered)
	// Shellfish and organ meats go; flagged and keyword-matched alike.
	assert.NotContains(t, ids, "shrimp_steamed")
	assert.NotContains(t, ids, "beef_liver")
	assert.NotContains(t, ids, "sardines_canned")
	assert.Contains(t, ids, "chicken_breast")
}

func TestFilterFoodsPurineKeywordOnly(t *testing.T) {
	// Keyword matching catches items the flag misses.
	items := []types.Food{
		{ID: "x1", Name: "Smoked Anchovy Fillets", GlycemicIndex: 0},
		{ID: "x2", Name: "Steamed Cod", GlycemicIndex: 0},
	}
	constraints := &types.MedicalConstraints{
		MaxIntensity:        types.IntensityVigorous,
		DietaryRestrictions: []string{types.DietLowPurine},
	}

	filtered := FilterFoods(constraints, nil, items)

	assert.Equal(t, []string{"x2"}, FoodIDs(filtered))
}

func TestFilterFoodsAllergens(t *testing.T) {
	constraints := &types.MedicalConstraints{MaxIntensity: types.IntensityVigorous}
	prefs := &types.Preferences{Allergens: []string{"Tree-Nut", "milk"}}

	filtered := FilterFoods(constraints, prefs, Foods())

	ids := FoodIDs(filtered)
	assert.NotContains(t, ids, "almonds")
	assert.NotContains(t, ids, "walnuts")
	assert.NotContains(t, ids, "yogurt_plain")
	assert.NotContains(t, ids, "milk_whole")
	assert.Contains(t, ids, "apple")
}

func TestFilterFoodsForbiddenByIDOrName(t *testing.T) {
	constraints := &types.MedicalConstraints{MaxIntensity: types.IntensityVigorous}
	prefs := &types.Preferences{ForbiddenFoods: []string{"banana_ripe", "White Bread"}}

	filtered := FilterFoods(constraints, prefs, Foods())

	ids := FoodIDs(filtered)
	assert.NotContains(t, ids, "banana_ripe")
	assert.NotContains(t, ids, "bread_white")
}

func TestFilterFoodsUnconstrainedKeepsAll(t *testing.T) {
	constraints := &types.MedicalConstraints{MaxIntensity: types.IntensityVigorous}

	filtered := FilterFoods(constraints, nil, Foods())

	assert.Len(t, filtered, len(Foods()))
}
