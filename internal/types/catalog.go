package types

// Exercise is one entry in the static exercise catalog. Contraindications use
// the closed ConditionCode vocabulary; descriptive fields play no part in
// filtering.
type Exercise struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Intensity         IntensityLevel  `json:"intensity"`
	Contraindications []ConditionCode `json:"contraindications,omitempty"`
	// RequiresSupervision marks items that should only be performed under
	// medical monitoring; certain condition codes exclude these wholesale.
	RequiresSupervision bool     `json:"requires_supervision,omitempty"`
	MuscleGroups        []string `json:"muscle_groups,omitempty"`
	Equipment           []string `json:"equipment,omitempty"`
	DurationMinutes     int      `json:"duration_minutes,omitempty"`
}

// Food is one entry in the static food catalog. GlycemicIndex is the ordinal
// safety attribute the glycemic-index ceiling applies to.
type Food struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	GlycemicIndex int      `json:"glycemic_index"`
	Allergens     []string `json:"allergens,omitempty"`
	// PurineRich marks foods excluded under a low-purine restriction.
	PurineRich bool     `json:"purine_rich,omitempty"`
	Category   string   `json:"category,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// Preferences carries the caller-supplied personalization inputs that narrow
// the food catalog beyond what the medical constraints require. Validated
// with go-playground/validator before the pipeline runs.
type Preferences struct {
	Allergens       []string `json:"allergens,omitempty" validate:"dive,min=1"`
	ForbiddenFoods  []string `json:"forbidden_foods,omitempty" validate:"dive,min=1"`
	MealsPerDay     int      `json:"meals_per_day,omitempty" validate:"omitempty,min=1,max=6"`
	SessionMinutes  int      `json:"session_minutes,omitempty" validate:"omitempty,min=10,max=180"`
	PreferredTimes  []string `json:"preferred_times,omitempty"`
	DislikedFoodIDs []string `json:"disliked_food_ids,omitempty"`
}
