package generation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/health-planner/internal/prompts"
	"github.com/jonathan/health-planner/internal/types"
)

// GenerationRequest is the fenced request sent to the external generator:
// the prompt plus the allowed-id sets the response will later be validated
// against. The allowed sets travel with the request so validation always
// uses exactly the enumeration the generator was shown.
type GenerationRequest struct {
	Prompt             string
	AllowedExerciseIDs map[string]bool
	AllowedFoodIDs     map[string]bool
}

// BuildRequest assembles a generation request scoped to the filtered
// catalogs. The prompt enumerates only the allowed ids and names together
// with the active constraints, and instructs the generator that nothing
// outside those enumerations may be referenced.
func BuildRequest(report *types.Report, constraints *types.MedicalConstraints, allowedExercises []types.Exercise, allowedFoods []types.Food, prefs *types.Preferences) GenerationRequest {
	var exerciseLines, foodLines []string
	exerciseIDs := make(map[string]bool, len(allowedExercises))
	foodIDs := make(map[string]bool, len(allowedFoods))

	for _, e := range allowedExercises {
		exerciseIDs[e.ID] = true
		exerciseLines = append(exerciseLines, fmt.Sprintf("- %s: %s, %s", e.ID, e.Name, e.Intensity.String()))
	}
	for _, f := range allowedFoods {
		foodIDs[f.ID] = true
		foodLines = append(foodLines, fmt.Sprintf("- %s: %s, GI %d", f.ID, f.Name, f.GlycemicIndex))
	}

	mealsPerDay := 3
	if prefs != nil && prefs.MealsPerDay > 0 {
		mealsPerDay = prefs.MealsPerDay
	}

	template := prompts.MustGet("generation.json", "weekly-plan")
	prompt := prompts.Format(template, map[string]string{
		"Summary":             report.Overall.Summary,
		"MaxIntensity":        constraints.MaxIntensity.String(),
		"DietaryRestrictions": joinOrNone(constraints.DietaryRestrictions),
		"RiskFactors":         joinOrNone(constraints.RiskFactors),
		"Priorities":          joinOrNone(constraints.PriorityImprovements),
		"AllowedExercises":    joinOrNone(exerciseLines),
		"AllowedFoods":        joinOrNone(foodLines),
		"MealsPerDay":         strconv.Itoa(mealsPerDay),
	})

	return GenerationRequest{
		Prompt:             prompt,
		AllowedExerciseIDs: exerciseIDs,
		AllowedFoodIDs:     foodIDs,
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, "\n")
}
