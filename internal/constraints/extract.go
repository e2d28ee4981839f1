// Package constraints derives machine-actionable medical constraints from an
// assessment report. Extraction is a pure function of the report: a static
// lookup table maps abnormal metrics into fixed domain buckets, and composite
// results only ever tighten the intensity ceiling.
package constraints

import (
	"github.com/jonathan/health-planner/internal/types"
)

// domainBucket groups the dietary restrictions and contraindication codes
// associated with one clinical domain.
type domainBucket struct {
	Restrictions []string
	Conditions   []types.ConditionCode
}

// metricDomains is the static metric→bucket lookup table. A metric may map
// to more than one bucket; buckets shared by several metrics will contribute
// duplicate tags, which consumers deduplicate.
var metricDomains = map[string]domainBucket{
	// Glycemic domain.
	"fasting_glucose": {
		Restrictions: []string{types.DietLowGlycemicIndex},
		Conditions:   []types.ConditionCode{types.CondHyperglycemia, types.CondHypoglycemiaRisk},
	},
	"hba1c": {
		Restrictions: []string{types.DietLowGlycemicIndex},
		Conditions:   []types.ConditionCode{types.CondHyperglycemia, types.CondHypoglycemiaRisk},
	},
	// Lipid domain.
	"hdl_cholesterol": {
		Restrictions: []string{types.DietLowSaturatedFat},
		Conditions:   []types.ConditionCode{types.CondDyslipidemia},
	},
	"ldl_cholesterol": {
		Restrictions: []string{types.DietLowSaturatedFat},
		Conditions:   []types.ConditionCode{types.CondDyslipidemia},
	},
	"total_cholesterol": {
		Restrictions: []string{types.DietLowSaturatedFat},
		Conditions:   []types.ConditionCode{types.CondDyslipidemia},
	},
	"triglycerides": {
		Restrictions: []string{types.DietLowSaturatedFat},
		Conditions:   []types.ConditionCode{types.CondDyslipidemia},
	},
	// Pressure domain.
	"systolic_bp": {
		Restrictions: []string{types.DietLowSodium},
		Conditions:   []types.ConditionCode{types.CondHypertension},
	},
	"diastolic_bp": {
		Restrictions: []string{types.DietLowSodium},
		Conditions:   []types.ConditionCode{types.CondHypertension},
	},
	// Renal domain.
	"creatinine": {
		Restrictions: []string{types.DietLowProtein, types.DietLowSodium},
		Conditions:   []types.ConditionCode{types.CondRenalImpairment},
	},
	// Hepatic domain.
	"alt": {
		Restrictions: []string{types.DietLowAlcohol},
		Conditions:   []types.ConditionCode{types.CondHepaticImpairment},
	},
	"ast": {
		Restrictions: []string{types.DietLowAlcohol},
		Conditions:   []types.ConditionCode{types.CondHepaticImpairment},
	},
	// Urate domain.
	"uric_acid": {
		Restrictions: []string{types.DietLowPurine, types.DietLowAlcohol},
		Conditions:   []types.ConditionCode{types.CondHyperuricemia},
	},
}

// cardiovascularCategory is the composite category whose high-tier results
// additionally forbid cardiovascular-stressing exercise.
const cardiovascularCategory = "cardiovascular"

// Extract derives MedicalConstraints from a report.
//
// For each abnormal metric the domain table appends restrictions and
// contraindication codes; duplicates are expected here and deduplicated by
// consumers. Composite results escalate risk factors and lower the intensity
// ceiling: one ordinal step for a high-tier result, to the floor for a
// critical one. Within one extraction pass the ceiling only ever decreases.
func Extract(report *types.Report) types.MedicalConstraints {
	constraints := types.MedicalConstraints{
		MaxIntensity: types.IntensityVigorous,
	}

	for _, result := range report.AbnormalResults() {
		constraints.MonitoredMetrics = append(constraints.MonitoredMetrics, result.Metric)
		if result.RiskTier >= types.RiskHigh {
			constraints.PriorityImprovements = append(constraints.PriorityImprovements, result.Metric)
		}

		bucket, ok := metricDomains[result.Metric]
		if !ok {
			continue
		}
		constraints.DietaryRestrictions = append(constraints.DietaryRestrictions, bucket.Restrictions...)
		constraints.ForbiddenConditions = append(constraints.ForbiddenConditions, bucket.Conditions...)
	}

	for _, composite := range report.Composites {
		constraints.RiskFactors = append(constraints.RiskFactors, composite.Rule)

		switch {
		case composite.RiskTier >= types.RiskCritical:
			constraints.MaxIntensity = types.IntensityRest
		case composite.RiskTier == types.RiskHigh:
			constraints.MaxIntensity = constraints.MaxIntensity.Lower()
		}

		if composite.Category == cardiovascularCategory && composite.RiskTier >= types.RiskHigh {
			constraints.ForbiddenConditions = append(constraints.ForbiddenConditions, types.CondCardiovascular)
		}
	}

	return constraints
}
