// Package rules implements the declarative rule store and the rule engine:
// loading the rule configuration document, evaluating single-metric readings
// against gender-scoped reference buckets, and evaluating composite
// multi-metric logic trees into a structured assessment report.
package rules

import (
	"fmt"

	"github.com/jonathan/health-planner/internal/types"
)

// Operator is a comparison operator from the rule document.
type Operator string

// The six comparators a condition may use.
const (
	OpGreater        Operator = "gt"
	OpGreaterOrEqual Operator = "gte"
	OpLess           Operator = "lt"
	OpLessOrEqual    Operator = "lte"
	OpEqual          Operator = "eq"
	OpNotEqual       Operator = "ne"
)

// validOperators is the closed comparator set checked at load time.
var validOperators = map[Operator]bool{
	OpGreater:        true,
	OpGreaterOrEqual: true,
	OpLess:           true,
	OpLessOrEqual:    true,
	OpEqual:          true,
	OpNotEqual:       true,
}

// evaluateCondition applies a single comparator. Unknown operators evaluate
// false; the loader rejects them before evaluation can ever see one, so this
// branch is belt only.
func evaluateCondition(value float64, op Operator, threshold float64) bool {
	switch op {
	case OpGreater:
		return value > threshold
	case OpGreaterOrEqual:
		return value >= threshold
	case OpLess:
		return value < threshold
	case OpLessOrEqual:
		return value <= threshold
	case OpEqual:
		return value == threshold
	case OpNotEqual:
		return value != threshold
	default:
		return false
	}
}

// Condition is one ordered entry in a gender bucket's condition list.
// Order in the document is semantically significant: evaluation stops at the
// first condition whose comparator matches.
type Condition struct {
	Operator        Operator           `json:"operator"`
	Threshold       float64            `json:"threshold"`
	Status          types.MetricStatus `json:"status"`
	RiskTier        types.RiskTier     `json:"risk_tier"`
	Tag             string             `json:"tag,omitempty"`
	Message         string             `json:"message,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
}

// validate checks a condition's closed-vocabulary fields at load time.
func (c *Condition) validate() error {
	if !validOperators[c.Operator] {
		return fmt.Errorf("unknown operator %q", c.Operator)
	}
	switch c.Status {
	case types.StatusNormal, types.StatusAbnormal:
	case "":
		// Status defaults to abnormal: a condition list entry exists to name
		// a deviation.
		c.Status = types.StatusAbnormal
	default:
		return fmt.Errorf("unknown status %q", c.Status)
	}
	return nil
}
