package types

// PlanSource records how the final plan was produced. Fallback and degraded
// plans are still complete, catalog-consistent plans; the source exists so
// operators can observe degraded mode instead of it looking like a healthy
// generation.
type PlanSource string

// Plan sources.
const (
	// PlanGenerated means the external generator produced the plan and it
	// passed validation.
	PlanGenerated PlanSource = "generated"
	// PlanFallback means the generator was unavailable or unparsable and the
	// deterministic fallback was used.
	PlanFallback PlanSource = "fallback"
)

// PlanExerciseRef is a reference from a plan to an exercise catalog id.
type PlanExerciseRef struct {
	ExerciseID string `json:"exercise_id"`
	Day        int    `json:"day,omitempty"`
	Sets       int    `json:"sets,omitempty"`
	Minutes    int    `json:"minutes,omitempty"`
	Note       string `json:"note,omitempty"`
}

// PlanMealRef is a reference from a plan to a food catalog id.
type PlanMealRef struct {
	FoodID string `json:"food_id"`
	Day    int    `json:"day,omitempty"`
	Meal   string `json:"meal,omitempty"`
	Note   string `json:"note,omitempty"`
}

// GeneratedPlan is the untrusted structured document returned by the external
// generator. It must pass through generation.Validate before anything
// downstream may consume it.
type GeneratedPlan struct {
	Title     string            `json:"title,omitempty"`
	Summary   string            `json:"summary,omitempty"`
	Exercises []PlanExerciseRef `json:"exercises"`
	Meals     []PlanMealRef     `json:"meals"`
	Guidance  []string          `json:"guidance,omitempty"`
}

// ValidatedPlan is a GeneratedPlan with every reference outside the filtered
// catalogs removed. By construction its references are a subset of what was
// explicitly permitted for the request that produced it.
type ValidatedPlan struct {
	PlanID    string            `json:"plan_id"`
	Source    PlanSource        `json:"source"`
	Title     string            `json:"title,omitempty"`
	Summary   string            `json:"summary,omitempty"`
	Exercises []PlanExerciseRef `json:"exercises"`
	Meals     []PlanMealRef     `json:"meals"`
	Guidance  []string          `json:"guidance,omitempty"`
}

// ValidationReport counts what sanitization removed. Drops are silent in the
// plan itself but observable here.
type ValidationReport struct {
	DroppedExercises int      `json:"dropped_exercises"`
	DroppedMeals     int      `json:"dropped_meals"`
	DroppedIDs       []string `json:"dropped_ids,omitempty"`
}

// TotalDropped returns the combined drop count across categories.
func (v ValidationReport) TotalDropped() int {
	return v.DroppedExercises + v.DroppedMeals
}
