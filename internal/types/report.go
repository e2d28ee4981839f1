package types

// NormalRange is the inclusive reference interval a value is compared against
// before any condition scanning happens.
type NormalRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether v falls inside the range (inclusive).
func (n NormalRange) Contains(v float64) bool {
	return v >= n.Low && v <= n.High
}

// EvaluationResult is the outcome of evaluating one metric reading against
// its rule definition.
type EvaluationResult struct {
	Metric          string       `json:"metric"`
	DisplayName     string       `json:"display_name,omitempty"`
	Unit            string       `json:"unit,omitempty"`
	Value           float64      `json:"value"`
	Status          MetricStatus `json:"status"`
	RiskTier        RiskTier     `json:"risk_tier"`
	NormalRange     *NormalRange `json:"normal_range,omitempty"`
	AbnormalTag     string       `json:"abnormal_tag,omitempty"`
	Message         string       `json:"message,omitempty"`
	Recommendations []string     `json:"recommendations,omitempty"`
}

// CompositeResult records a composite (multi-metric) rule whose logic tree
// evaluated true. Rules that did not trigger produce no result at all.
type CompositeResult struct {
	Rule            string   `json:"rule"`
	Category        string   `json:"category"`
	RiskTier        RiskTier `json:"risk_tier"`
	Message         string   `json:"message,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	EvidenceLevel   string   `json:"evidence_level,omitempty"`
}

// OverallAssessment aggregates the individual and composite results of one
// evaluation call.
type OverallAssessment struct {
	TotalMetrics       int      `json:"total_metrics"`
	NormalCount        int      `json:"normal_count"`
	AbnormalCount      int      `json:"abnormal_count"`
	CompositeTriggered int      `json:"composite_triggered"`
	RiskTier           RiskTier `json:"risk_tier"`
	Status             string   `json:"status"`
	Summary            string   `json:"summary"`
	Recommendations    []string `json:"recommendations"`
}

// Report is the full structured output of Engine.Evaluate: every per-metric
// result, every triggered composite rule, and the aggregate assessment.
// Two calls with identical readings, gender, and store produce identical
// Reports.
type Report struct {
	Gender     Gender             `json:"gender"`
	Metrics    []EvaluationResult `json:"metrics"`
	Composites []CompositeResult  `json:"composites"`
	Overall    OverallAssessment  `json:"overall"`
	// Degraded is set when the rule store the report was produced against
	// was itself loaded in degraded mode (empty rule set after a malformed
	// document). An operator seeing an all-normal report should be able to
	// tell it apart from a report produced with no rules at all.
	Degraded       bool   `json:"degraded,omitempty"`
	DegradedReason string `json:"degraded_reason,omitempty"`
}

// AbnormalResults returns the per-metric results whose status is abnormal,
// preserving evaluation order.
func (r *Report) AbnormalResults() []EvaluationResult {
	var abnormal []EvaluationResult
	for _, res := range r.Metrics {
		if res.Status == StatusAbnormal {
			abnormal = append(abnormal, res)
		}
	}
	return abnormal
}
