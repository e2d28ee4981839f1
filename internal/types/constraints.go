package types

import (
	"encoding/json"
	"fmt"
)

// IntensityLevel is the ordinal exercise-intensity ceiling derived during
// constraint extraction. Filtering drops any exercise whose intensity exceeds
// the ceiling.
type IntensityLevel int

// Intensity levels in ascending effort. IntensityRest is the floor a critical
// composite result drops the ceiling to.
const (
	IntensityRest IntensityLevel = iota
	IntensityLight
	IntensityModerate
	IntensityVigorous
)

var intensityNames = map[IntensityLevel]string{
	IntensityRest:     "rest",
	IntensityLight:    "light",
	IntensityModerate: "moderate",
	IntensityVigorous: "vigorous",
}

// String returns the lowercase literal used in catalogs and JSON output.
func (l IntensityLevel) String() string {
	if name, ok := intensityNames[l]; ok {
		return name
	}
	return fmt.Sprintf("intensity(%d)", int(l))
}

// Lower returns the next level down, clamped at IntensityRest.
func (l IntensityLevel) Lower() IntensityLevel {
	if l <= IntensityRest {
		return IntensityRest
	}
	return l - 1
}

// MarshalJSON emits the string literal rather than the ordinal.
func (l IntensityLevel) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", l.String())), nil
}

// UnmarshalJSON parses the string literal back into the ordinal, rejecting
// anything outside the closed vocabulary.
func (l *IntensityLevel) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for level, name := range intensityNames {
		if name == raw {
			*l = level
			return nil
		}
	}
	return fmt.Errorf("unrecognized intensity literal %q", raw)
}

// ConditionCode is a closed-vocabulary contraindication code. Constraint
// extraction emits codes; catalog items carry codes; filtering excludes on
// any intersection. Free-text tags never cross the filter boundary.
type ConditionCode string

// Contraindication codes understood by the exercise filter.
const (
	CondHyperglycemia     ConditionCode = "hyperglycemia"
	CondHypoglycemiaRisk  ConditionCode = "hypoglycemia_risk"
	CondDyslipidemia      ConditionCode = "dyslipidemia"
	CondHypertension      ConditionCode = "hypertension"
	CondRenalImpairment   ConditionCode = "renal_impairment"
	CondHepaticImpairment ConditionCode = "hepatic_impairment"
	CondHyperuricemia     ConditionCode = "hyperuricemia"
	CondCardiovascular    ConditionCode = "cardiovascular_risk"
	CondJointStress       ConditionCode = "joint_stress"
)

// Dietary restriction tags emitted by constraint extraction and consumed by
// the food filter.
const (
	DietLowGlycemicIndex = "low_glycemic_index"
	DietLowSaturatedFat  = "low_saturated_fat"
	DietLowSodium        = "low_sodium"
	DietLowPurine        = "low_purine"
	DietLowProtein       = "low_protein"
	DietLowAlcohol       = "no_alcohol"
)

// MedicalConstraints is the machine-actionable distillation of a Report:
// what the downstream plan may not contain and what it must watch.
// ForbiddenConditions and DietaryRestrictions may carry duplicates straight
// out of extraction; consumers treat them as sets.
type MedicalConstraints struct {
	ForbiddenConditions  []ConditionCode `json:"forbidden_conditions"`
	MaxIntensity         IntensityLevel  `json:"max_intensity"`
	DietaryRestrictions  []string        `json:"dietary_restrictions"`
	MonitoredMetrics     []string        `json:"monitored_metrics"`
	RiskFactors          []string        `json:"risk_factors"`
	PriorityImprovements []string        `json:"priority_improvements"`
}

// ForbidsCondition reports whether code is present in the forbidden set.
func (c *MedicalConstraints) ForbidsCondition(code ConditionCode) bool {
	for _, forbidden := range c.ForbiddenConditions {
		if forbidden == code {
			return true
		}
	}
	return false
}

// HasRestriction reports whether a dietary restriction tag is active.
func (c *MedicalConstraints) HasRestriction(tag string) bool {
	for _, restriction := range c.DietaryRestrictions {
		if restriction == tag {
			return true
		}
	}
	return false
}
