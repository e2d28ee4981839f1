package types

import "fmt"

// RiskTier is the ordinal risk classification attached to individual metric
// results, composite results, and the aggregated assessment.
type RiskTier int

// Risk tiers in ascending severity. The vocabulary is closed: rule documents
// referencing any other literal are rejected at load time rather than being
// silently coerced (see rules.Load).
const (
	RiskLow RiskTier = iota
	RiskModerate
	RiskHigh
	RiskCritical
)

var riskTierNames = map[RiskTier]string{
	RiskLow:      "low",
	RiskModerate: "moderate",
	RiskHigh:     "high",
	RiskCritical: "critical",
}

var riskTierValues = map[string]RiskTier{
	"low":      RiskLow,
	"moderate": RiskModerate,
	"high":     RiskHigh,
	"critical": RiskCritical,
}

// String returns the lowercase literal used in rule documents and JSON output.
func (r RiskTier) String() string {
	if name, ok := riskTierNames[r]; ok {
		return name
	}
	return fmt.Sprintf("risk_tier(%d)", int(r))
}

// ParseRiskTier converts a rule-document literal into a RiskTier.
// Literals outside the closed vocabulary are an error; callers decide whether
// that fails a document load or a single entry.
func ParseRiskTier(s string) (RiskTier, error) {
	tier, ok := riskTierValues[s]
	if !ok {
		return RiskLow, fmt.Errorf("unrecognized risk tier literal %q", s)
	}
	return tier, nil
}

// MaxRiskTier returns the more severe of two tiers.
func MaxRiskTier(a, b RiskTier) RiskTier {
	if b > a {
		return b
	}
	return a
}

// MarshalJSON emits the string literal rather than the ordinal.
func (r RiskTier) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", r.String())), nil
}

// UnmarshalJSON accepts only literals from the closed vocabulary.
func (r *RiskTier) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("risk tier must be a JSON string, got %s", string(data))
	}
	tier, err := ParseRiskTier(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*r = tier
	return nil
}

// MetricStatus is the outcome category of a single-metric evaluation.
type MetricStatus string

// Metric statuses. StatusUnknown means no rule exists for the supplied key;
// it is a result, never an error.
const (
	StatusNormal   MetricStatus = "normal"
	StatusAbnormal MetricStatus = "abnormal"
	StatusUnknown  MetricStatus = "unknown"
)
