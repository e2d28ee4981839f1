package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/health-planner/internal/types"
)

func TestLoadDefaultDocument(t *testing.T) {
	store, outcome := DefaultStore()

	require.False(t, outcome.Degraded, "embedded document must load cleanly: %s", outcome.Reason)
	assert.Greater(t, store.MetricCount(), 0)
	assert.NotEmpty(t, store.Categories())

	// Spot-check a gender-scoped rule survived parsing.
	rule, ok := store.MetricRule("hdl_cholesterol")
	require.True(t, ok)
	require.Contains(t, rule.Buckets, types.GenderMale)
	require.Contains(t, rule.Buckets, types.GenderFemale)
}

func TestLoadMalformedDocumentDegrades(t *testing.T) {
	store, outcome := Load([]byte("{not json"))

	assert.True(t, outcome.Degraded)
	assert.NotEmpty(t, outcome.Reason)
	assert.Equal(t, 0, store.MetricCount())

	// A degraded store still evaluates: everything is unknown.
	result := store.EvaluateMetric("fasting_glucose", 6.5, types.GenderDefault)
	assert.Equal(t, types.StatusUnknown, result.Status)
}

func TestLoadRejectsUnknownRiskTierLiteral(t *testing.T) {
	doc := []byte(`{
		"metrics": {
			"fasting_glucose": {
				"buckets": {
					"default": {
						"conditions": [
							{"operator": "gt", "threshold": 7.0, "status": "abnormal", "risk_tier": "very_high"}
						]
					}
				}
			}
		}
	}`)

	store, outcome := Load(doc)

	assert.True(t, outcome.Degraded, "risk tier literals outside the closed set must fail at load time")
	assert.Contains(t, outcome.Reason, "risk tier")
	assert.Equal(t, 0, store.MetricCount())
}

func TestLoadRejectsUnknownOperator(t *testing.T) {
	doc := []byte(`{
		"metrics": {
			"fasting_glucose": {
				"buckets": {
					"default": {
						"conditions": [
							{"operator": "between", "threshold": 7.0, "risk_tier": "high"}
						]
					}
				}
			}
		}
	}`)

	_, outcome := Load(doc)

	assert.True(t, outcome.Degraded)
	assert.Contains(t, outcome.Reason, "operator")
}

func TestLoadRejectsUnknownLogicNodeKind(t *testing.T) {
	doc := []byte(`{
		"composites": {
			"cardiovascular": [
				{
					"name": "Bad Shape",
					"logic": {"kind": "xor", "nodes": [{"kind": "leaf", "metric": "x", "operator": "gt", "threshold": 1}]},
					"risk_tier": "high"
				}
			]
		}
	}`)

	_, outcome := Load(doc)

	assert.True(t, outcome.Degraded)
	assert.Contains(t, outcome.Reason, "kind")
}

func TestLoadRejectsUnknownGenderBucket(t *testing.T) {
	doc := []byte(`{
		"metrics": {
			"fasting_glucose": {
				"buckets": {
					"other": {"normal_range": {"low": 3.9, "high": 6.1}}
				}
			}
		}
	}`)

	_, outcome := Load(doc)

	assert.True(t, outcome.Degraded)
	assert.Contains(t, outcome.Reason, "gender")
}

func TestLoadAllowsUnsupportedDerivedExpression(t *testing.T) {
	// Unsupported derived expressions are specified to evaluate false, not to
	// fail the load.
	doc := []byte(`{
		"composites": {
			"metabolic": [
				{
					"name": "Future Expression",
					"logic": {"kind": "derived", "expression": "insulin_resistance_proxy", "operator": "gt", "threshold": 1},
					"risk_tier": "moderate"
				}
			]
		}
	}`)

	store, outcome := Load(doc)

	require.False(t, outcome.Degraded, outcome.Reason)
	rules := store.CompositeRules("metabolic")
	require.Len(t, rules, 1)
	assert.False(t, rules[0].Logic.Evaluate(types.Readings{"triglycerides": 9, "hdl_cholesterol": 0.5}, types.GenderDefault))
}
