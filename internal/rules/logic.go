package rules

import (
	"fmt"
	"math"

	"github.com/jonathan/health-planner/internal/types"
)

// NodeKind discriminates the closed set of composite logic tree shapes.
// The loader rejects any kind outside this set, so evaluation can match
// exhaustively instead of failing closed on unrecognized shapes.
type NodeKind string

// Logic tree node kinds.
const (
	// KindLeaf compares one metric reading against a threshold, optionally
	// guarded by gender.
	KindLeaf NodeKind = "leaf"
	// KindAllOf is an implicit AND over a list of leaves.
	KindAllOf NodeKind = "all_of"
	// KindAnyOf is an explicit OR over arbitrary sub-trees.
	KindAnyOf NodeKind = "any_of"
	// KindCount requires a threshold number of a leaf list to be satisfied.
	KindCount NodeKind = "count"
	// KindDerived compares an expression over two metrics against a
	// threshold. Only the atherogenic index expression is supported; any
	// other expression tag evaluates false, never errors.
	KindDerived NodeKind = "derived"
)

// Count modes for KindCount nodes.
const (
	CountAtLeast  = "at_least"
	CountExactly  = "exactly"
	CountMoreThan = "more_than"
)

// ExprAtherogenicIndex is the only derived expression the engine computes:
// log10(triglycerides / hdl_cholesterol).
const ExprAtherogenicIndex = "atherogenic_index"

// Metric keys the atherogenic index reads.
const (
	metricTriglycerides = "triglycerides"
	metricHDL           = "hdl_cholesterol"
)

// LogicNode is one node of a composite rule's logic tree. Exactly the fields
// relevant to Kind are populated; the loader validates shape per kind.
type LogicNode struct {
	Kind NodeKind `json:"kind"`

	// Leaf and derived fields.
	Metric     string       `json:"metric,omitempty"`
	Operator   Operator     `json:"operator,omitempty"`
	Threshold  float64      `json:"threshold,omitempty"`
	Gender     types.Gender `json:"gender,omitempty"`
	Expression string       `json:"expression,omitempty"`

	// Group fields.
	Nodes []LogicNode `json:"nodes,omitempty"`
	Mode  string      `json:"mode,omitempty"`
	N     int         `json:"n,omitempty"`
}

// validate checks the node shape against the closed kind set. Called at load
// time so that malformed trees fail the document load rather than silently
// evaluating false.
func (n *LogicNode) validate() error {
	switch n.Kind {
	case KindLeaf:
		if n.Metric == "" {
			return fmt.Errorf("leaf node missing metric")
		}
		if !validOperators[n.Operator] {
			return fmt.Errorf("leaf node for %q has unknown operator %q", n.Metric, n.Operator)
		}
	case KindAllOf:
		if len(n.Nodes) == 0 {
			return fmt.Errorf("all_of node has no children")
		}
		for i := range n.Nodes {
			if n.Nodes[i].Kind != KindLeaf {
				return fmt.Errorf("all_of child %d is %q, want leaf", i, n.Nodes[i].Kind)
			}
			if err := n.Nodes[i].validate(); err != nil {
				return err
			}
		}
	case KindAnyOf:
		if len(n.Nodes) == 0 {
			return fmt.Errorf("any_of node has no children")
		}
		for i := range n.Nodes {
			if err := n.Nodes[i].validate(); err != nil {
				return fmt.Errorf("any_of child %d: %w", i, err)
			}
		}
	case KindCount:
		switch n.Mode {
		case CountAtLeast, CountExactly, CountMoreThan:
		default:
			return fmt.Errorf("count node has unknown mode %q", n.Mode)
		}
		if n.N < 0 {
			return fmt.Errorf("count node has negative n %d", n.N)
		}
		if len(n.Nodes) == 0 {
			return fmt.Errorf("count node has no children")
		}
		for i := range n.Nodes {
			if n.Nodes[i].Kind != KindLeaf {
				return fmt.Errorf("count child %d is %q, want leaf", i, n.Nodes[i].Kind)
			}
			if err := n.Nodes[i].validate(); err != nil {
				return err
			}
		}
	case KindDerived:
		// Expression tags are not validated: an unsupported expression is
		// specified to evaluate false, not to fail the load.
		if !validOperators[n.Operator] {
			return fmt.Errorf("derived node has unknown operator %q", n.Operator)
		}
	default:
		return fmt.Errorf("unknown logic node kind %q", n.Kind)
	}
	return nil
}

// Evaluate reports whether the tree holds for the given readings and gender.
// Missing metrics make the enclosing leaf false; they never error.
func (n *LogicNode) Evaluate(readings types.Readings, gender types.Gender) bool {
	switch n.Kind {
	case KindLeaf:
		return n.evaluateLeaf(readings, gender)
	case KindAllOf:
		for i := range n.Nodes {
			if !n.Nodes[i].Evaluate(readings, gender) {
				return false
			}
		}
		return true
	case KindAnyOf:
		for i := range n.Nodes {
			if n.Nodes[i].Evaluate(readings, gender) {
				return true
			}
		}
		return false
	case KindCount:
		satisfied := 0
		for i := range n.Nodes {
			if n.Nodes[i].Evaluate(readings, gender) {
				satisfied++
			}
		}
		switch n.Mode {
		case CountAtLeast:
			return satisfied >= n.N
		case CountExactly:
			return satisfied == n.N
		case CountMoreThan:
			return satisfied > n.N
		}
		return false
	case KindDerived:
		return n.evaluateDerived(readings)
	}
	return false
}

func (n *LogicNode) evaluateLeaf(readings types.Readings, gender types.Gender) bool {
	if n.Gender != "" && n.Gender != types.GenderDefault && n.Gender != gender {
		return false
	}
	value, ok := readings[n.Metric]
	if !ok {
		return false
	}
	return evaluateCondition(value, n.Operator, n.Threshold)
}

func (n *LogicNode) evaluateDerived(readings types.Readings) bool {
	if n.Expression != ExprAtherogenicIndex {
		// Unsupported expressions fail closed.
		return false
	}
	tg, okTG := readings[metricTriglycerides]
	hdl, okHDL := readings[metricHDL]
	if !okTG || !okHDL || tg <= 0 || hdl <= 0 {
		return false
	}
	index := math.Log10(tg / hdl)
	return evaluateCondition(index, n.Operator, n.Threshold)
}
