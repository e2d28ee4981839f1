package constraints

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/health-planner/internal/types"
)

func abnormal(metric string, tier types.RiskTier) types.EvaluationResult {
	return types.EvaluationResult{Metric: metric, Status: types.StatusAbnormal, RiskTier: tier}
}

func TestExtractHealthyReportIsUnconstrained(t *testing.T) {
	report := &types.Report{
		Metrics: []types.EvaluationResult{
			{Metric: "fasting_glucose", Status: types.StatusNormal},
		},
	}

	constraints := Extract(report)

	assert.Equal(t, types.IntensityVigorous, constraints.MaxIntensity)
	assert.Empty(t, constraints.ForbiddenConditions)
	assert.Empty(t, constraints.DietaryRestrictions)
}

func TestExtractMapsMetricsToDomains(t *testing.T) {
	report := &types.Report{
		Metrics: []types.EvaluationResult{
			abnormal("uric_acid", types.RiskModerate),
			abnormal("fasting_glucose", types.RiskHigh),
		},
	}

	constraints := Extract(report)

	assert.True(t, constraints.HasRestriction(types.DietLowPurine))
	assert.True(t, constraints.HasRestriction(types.DietLowGlycemicIndex))
	assert.True(t, constraints.ForbidsCondition(types.CondHyperuricemia))
	assert.True(t, constraints.ForbidsCondition(types.CondHyperglycemia))
	assert.Equal(t, []string{"uric_acid", "fasting_glucose"}, constraints.MonitoredMetrics)
	assert.Equal(t, []string{"fasting_glucose"}, constraints.PriorityImprovements)
}

func TestExtractDuplicatesAreExpected(t *testing.T) {
	// Glucose and HbA1c share the glycemic bucket: tags appear twice and the
	// consumer deduplicates.
	report := &types.Report{
		Metrics: []types.EvaluationResult{
			abnormal("fasting_glucose", types.RiskModerate),
			abnormal("hba1c", types.RiskModerate),
		},
	}

	constraints := Extract(report)

	count := 0
	for _, r := range constraints.DietaryRestrictions {
		if r == types.DietLowGlycemicIndex {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestExtractUnknownMetricContributesNothing(t *testing.T) {
	report := &types.Report{
		Metrics: []types.EvaluationResult{abnormal("serum_unobtainium", types.RiskHigh)},
	}

	constraints := Extract(report)

	assert.Empty(t, constraints.DietaryRestrictions)
	assert.Empty(t, constraints.ForbiddenConditions)
	// Still monitored: the caller measured it and something was off.
	assert.Equal(t, []string{"serum_unobtainium"}, constraints.MonitoredMetrics)
}

func TestExtractIntensityLowering(t *testing.T) {
	tests := []struct {
		name       string
		composites []types.CompositeResult
		want       types.IntensityLevel
	}{
		{
			name: "no composites keeps vigorous",
			want: types.IntensityVigorous,
		},
		{
			name:       "one high lowers one step",
			composites: []types.CompositeResult{{Rule: "A", RiskTier: types.RiskHigh}},
			want:       types.IntensityModerate,
		},
		{
			name: "two highs lower two steps",
			composites: []types.CompositeResult{
				{Rule: "A", RiskTier: types.RiskHigh},
				{Rule: "B", RiskTier: types.RiskHigh},
			},
			want: types.IntensityLight,
		},
		{
			name:       "critical drops to the floor",
			composites: []types.CompositeResult{{Rule: "A", RiskTier: types.RiskCritical}},
			want:       types.IntensityRest,
		},
		{
			name: "critical before high stays at the floor",
			composites: []types.CompositeResult{
				{Rule: "A", RiskTier: types.RiskCritical},
				{Rule: "B", RiskTier: types.RiskHigh},
			},
			want: types.IntensityRest,
		},
		{
			name: "moderate composites do not lower",
			composites: []types.CompositeResult{
				{Rule: "A", RiskTier: types.RiskModerate},
			},
			want: types.IntensityVigorous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &types.Report{Composites: tt.composites}
			constraints := Extract(report)
			assert.Equal(t, tt.want, constraints.MaxIntensity)
		})
	}
}

func TestExtractIntensityMonotone(t *testing.T) {
	// Regardless of composite ordering, the ceiling never rises once lowered.
	report := &types.Report{Composites: []types.CompositeResult{
		{Rule: "A", RiskTier: types.RiskHigh},
		{Rule: "B", RiskTier: types.RiskModerate},
		{Rule: "C", RiskTier: types.RiskCritical},
		{Rule: "D", RiskTier: types.RiskLow},
	}}

	constraints := Extract(report)

	assert.Equal(t, types.IntensityRest, constraints.MaxIntensity)
	assert.Equal(t, []string{"A", "B", "C", "D"}, constraints.RiskFactors)
}

func TestExtractCardiovascularCompositeForbidsCardioStress(t *testing.T) {
	report := &types.Report{Composites: []types.CompositeResult{
		{Rule: "Hypertensive Crisis Indicators", Category: "cardiovascular", RiskTier: types.RiskCritical},
	}}

	constraints := Extract(report)

	assert.True(t, constraints.ForbidsCondition(types.CondCardiovascular))
}
