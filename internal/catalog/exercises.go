// Package catalog holds the static exercise and food reference collections
// and the pure filters that narrow them under a set of medical constraints.
// The catalogs are loaded once at process start and never mutated; filtered
// views are recomputed per request and never cached across constraints.
package catalog

import "github.com/jonathan/health-planner/internal/types"

// Exercises returns the full static exercise catalog in canonical order.
// Callers receive a fresh slice header but share the backing entries; entries
// are read-only by convention.
func Exercises() []types.Exercise {
	return exerciseCatalog
}

var exerciseCatalog = []types.Exercise{
	{
		ID: "walk_brisk", Name: "Brisk Walking", Intensity: types.IntensityLight,
		MuscleGroups: []string{"legs", "cardio"}, DurationMinutes: 30,
	},
	{
		ID: "stretch_morning", Name: "Morning Stretching", Intensity: types.IntensityRest,
		MuscleGroups: []string{"full-body"}, DurationMinutes: 15,
	},
	{
		ID: "taichi", Name: "Tai Chi", Intensity: types.IntensityLight,
		MuscleGroups: []string{"full-body", "balance"}, DurationMinutes: 40,
	},
	{
		ID: "yoga_gentle", Name: "Gentle Yoga", Intensity: types.IntensityLight,
		MuscleGroups: []string{"full-body", "flexibility"}, DurationMinutes: 45,
	},
	{
		ID: "cycle_stationary", Name: "Stationary Cycling", Intensity: types.IntensityModerate,
		MuscleGroups: []string{"legs", "cardio"}, Equipment: []string{"stationary-bike"}, DurationMinutes: 30,
	},
	{
		ID: "swim_easy", Name: "Easy Swimming", Intensity: types.IntensityModerate,
		MuscleGroups: []string{"full-body", "cardio"}, Equipment: []string{"pool"}, DurationMinutes: 30,
	},
	{
		ID: "jog_steady", Name: "Steady Jogging", Intensity: types.IntensityModerate,
		Contraindications: []types.ConditionCode{types.CondJointStress},
		MuscleGroups:      []string{"legs", "cardio"}, DurationMinutes: 30,
	},
	{
		ID: "strength_band", Name: "Resistance Band Training", Intensity: types.IntensityModerate,
		MuscleGroups: []string{"arms", "back"}, Equipment: []string{"resistance-band"}, DurationMinutes: 25,
	},
	{
		ID: "strength_weights", Name: "Weight Training", Intensity: types.IntensityVigorous,
		Contraindications: []types.ConditionCode{types.CondHypertension, types.CondCardiovascular},
		MuscleGroups:      []string{"full-body"}, Equipment: []string{"weights"}, DurationMinutes: 45,
	},
	{
		ID: "run_interval", Name: "Interval Running", Intensity: types.IntensityVigorous,
		Contraindications: []types.ConditionCode{types.CondCardiovascular, types.CondJointStress},
		MuscleGroups:      []string{"legs", "cardio"}, DurationMinutes: 35,
	},
	{
		ID: "hiit_circuit", Name: "HIIT Circuit", Intensity: types.IntensityVigorous,
		Contraindications: []types.ConditionCode{types.CondCardiovascular, types.CondHypertension, types.CondHypoglycemiaRisk},
		MuscleGroups:      []string{"full-body", "cardio"}, DurationMinutes: 25,
	},
	{
		ID: "row_machine", Name: "Rowing Machine", Intensity: types.IntensityVigorous,
		Contraindications: []types.ConditionCode{types.CondCardiovascular},
		MuscleGroups:      []string{"back", "cardio"}, Equipment: []string{"rowing-machine"}, DurationMinutes: 20,
	},
	{
		ID: "cardiac_rehab_walk", Name: "Supervised Rehabilitation Walking", Intensity: types.IntensityLight,
		RequiresSupervision: true,
		MuscleGroups:        []string{"legs", "cardio"}, DurationMinutes: 20,
	},
	{
		ID: "aqua_aerobics", Name: "Water Aerobics", Intensity: types.IntensityModerate,
		MuscleGroups: []string{"full-body", "cardio"}, Equipment: []string{"pool"}, DurationMinutes: 40,
	},
	{
		ID: "hike_long", Name: "Long Trail Hike", Intensity: types.IntensityModerate,
		Contraindications: []types.ConditionCode{types.CondHypoglycemiaRisk},
		MuscleGroups:      []string{"legs", "cardio"}, DurationMinutes: 120,
	},
	{
		ID: "pilates_mat", Name: "Mat Pilates", Intensity: types.IntensityModerate,
		MuscleGroups: []string{"core", "flexibility"}, DurationMinutes: 40,
	},
}
