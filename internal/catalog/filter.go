package catalog

import (
	"strings"

	"github.com/jonathan/health-planner/internal/types"
)

// glycemicIndexCeiling is the highest glycemic index allowed when the
// low-glycemic-index restriction is active.
const glycemicIndexCeiling = 55

// purineKeywords is the fixed keyword list matched against food names and
// tags under a low-purine restriction, in addition to the PurineRich flag.
var purineKeywords = []string{
	"shellfish", "shrimp", "crab", "lobster", "oyster",
	"liver", "kidney", "organ meat", "sweetbread",
	"sardine", "anchovy", "mackerel", "herring",
}

// FilterExercises returns the subset of items safe to offer under the given
// constraints. It is a pure function of (constraints, items); survivors keep
// catalog order.
//
// An item is excluded when:
//   - its intensity exceeds the constraint ceiling;
//   - any of its contraindication codes is in the forbidden set;
//   - a named special-case rule applies (see excludeSpecialCase).
func FilterExercises(constraints *types.MedicalConstraints, items []types.Exercise) []types.Exercise {
	filtered := make([]types.Exercise, 0, len(items))
	for _, item := range items {
		if item.Intensity > constraints.MaxIntensity {
			continue
		}
		if hasForbiddenCondition(constraints, item.Contraindications) {
			continue
		}
		if excludeSpecialCase(constraints, &item) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func hasForbiddenCondition(constraints *types.MedicalConstraints, codes []types.ConditionCode) bool {
	for _, code := range codes {
		if constraints.ForbidsCondition(code) {
			return true
		}
	}
	return false
}

// excludeSpecialCase applies the named special-case exclusions that go beyond
// the generic code-intersection check.
func excludeSpecialCase(constraints *types.MedicalConstraints, item *types.Exercise) bool {
	// Cardiovascular risk: no vigorous work and no item that needs medical
	// supervision, regardless of the item's own contraindication codes.
	if constraints.ForbidsCondition(types.CondCardiovascular) {
		if item.Intensity >= types.IntensityVigorous || item.RequiresSupervision {
			return true
		}
	}
	// Renal impairment: supervised items only make sense inside a clinical
	// program; exclude them from self-directed plans.
	if constraints.ForbidsCondition(types.CondRenalImpairment) && item.RequiresSupervision {
		return true
	}
	// Hypoglycemia risk: no long unfueled endurance sessions.
	if constraints.ForbidsCondition(types.CondHypoglycemiaRisk) && item.DurationMinutes > 60 {
		return true
	}
	return false
}

// FilterFoods returns the subset of the food catalog permitted under the
// constraints and caller preferences. Pure; survivors keep catalog order.
//
// Exclusions:
//   - glycemic index above the ceiling under a low-glycemic-index restriction;
//   - purine-rich items and fixed purine keywords under a low-purine
//     restriction;
//   - allergen intersection with the caller's allergen set;
//   - caller forbidden-food list, matched by id or display name.
func FilterFoods(constraints *types.MedicalConstraints, prefs *types.Preferences, items []types.Food) []types.Food {
	lowGI := constraints.HasRestriction(types.DietLowGlycemicIndex)
	lowPurine := constraints.HasRestriction(types.DietLowPurine)

	allergens := make(map[string]bool)
	forbidden := make(map[string]bool)
	if prefs != nil {
		for _, a := range prefs.Allergens {
			allergens[strings.ToLower(strings.TrimSpace(a))] = true
		}
		for _, f := range prefs.ForbiddenFoods {
			forbidden[strings.ToLower(strings.TrimSpace(f))] = true
		}
		for _, id := range prefs.DislikedFoodIDs {
			forbidden[strings.ToLower(strings.TrimSpace(id))] = true
		}
	}

	filtered := make([]types.Food, 0, len(items))
	for _, item := range items {
		if lowGI && item.GlycemicIndex > glycemicIndexCeiling {
			continue
		}
		if lowPurine && isPurineSource(&item) {
			continue
		}
		if intersectsAllergens(allergens, item.Allergens) {
			continue
		}
		if forbidden[strings.ToLower(item.ID)] || forbidden[strings.ToLower(item.Name)] {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func isPurineSource(item *types.Food) bool {
	if item.PurineRich {
		return true
	}
	name := strings.ToLower(item.Name)
	for _, keyword := range purineKeywords {
		if strings.Contains(name, keyword) {
			return true
		}
		for _, tag := range item.Tags {
			if strings.Contains(strings.ToLower(tag), keyword) {
				return true
			}
		}
	}
	return false
}

func intersectsAllergens(callerAllergens map[string]bool, itemAllergens []string) bool {
	if len(callerAllergens) == 0 {
		return false
	}
	for _, a := range itemAllergens {
		if callerAllergens[strings.ToLower(a)] {
			return true
		}
	}
	return false
}

// ExerciseIDs returns the ids of a filtered exercise slice, preserving order.
func ExerciseIDs(items []types.Exercise) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

// FoodIDs returns the ids of a filtered food slice, preserving order.
func FoodIDs(items []types.Food) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
