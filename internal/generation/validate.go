package generation

import (
	"github.com/google/uuid"

	"github.com/jonathan/health-planner/internal/types"
)

// Validate sanitizes a generated plan against the allowed-id sets of the
// request that produced it. Every reference whose id is absent from the
// corresponding set is dropped — never substituted, never an error — and the
// drop is recorded. Whatever the generator produced, the validated plan's
// references are a subset of what was explicitly permitted.
func Validate(generated *types.GeneratedPlan, req *GenerationRequest) (*types.ValidatedPlan, types.ValidationReport) {
	validated := &types.ValidatedPlan{
		PlanID:  uuid.NewString(),
		Source:  types.PlanGenerated,
		Title:   generated.Title,
		Summary: generated.Summary,
		// Keep empty slices rather than nil so the output document always
		// has both sections.
		Exercises: []types.PlanExerciseRef{},
		Meals:     []types.PlanMealRef{},
		Guidance:  generated.Guidance,
	}
	var report types.ValidationReport

	for _, ref := range generated.Exercises {
		if !req.AllowedExerciseIDs[ref.ExerciseID] {
			report.DroppedExercises++
			report.DroppedIDs = append(report.DroppedIDs, ref.ExerciseID)
			continue
		}
		validated.Exercises = append(validated.Exercises, ref)
	}

	for _, ref := range generated.Meals {
		if !req.AllowedFoodIDs[ref.FoodID] {
			report.DroppedMeals++
			report.DroppedIDs = append(report.DroppedIDs, ref.FoodID)
			continue
		}
		validated.Meals = append(validated.Meals, ref)
	}

	return validated, report
}
