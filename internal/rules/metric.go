package rules

import "github.com/jonathan/health-planner/internal/types"

// EvaluateMetric evaluates one reading against the store.
//
// Resolution order:
//  1. no rule for the key → status unknown (a result, never an error);
//  2. gender bucket, falling back to the default bucket;
//  3. value inside the bucket's normal range → normal;
//  4. first condition in document order whose comparator matches wins —
//     a later, more specific condition that would also match is never
//     reached;
//  5. nothing matches → normal.
func (s *Store) EvaluateMetric(key string, value float64, gender types.Gender) types.EvaluationResult {
	result := types.EvaluationResult{
		Metric: key,
		Value:  value,
		Status: types.StatusNormal,
	}

	rule, ok := s.metrics[key]
	if !ok {
		result.Status = types.StatusUnknown
		return result
	}
	result.DisplayName = rule.DisplayName
	result.Unit = rule.Unit

	bucket, ok := rule.bucketFor(gender)
	if !ok {
		// A rule with buckets for other genders only. Treat like a missing
		// rule: we have no reference data for this caller.
		result.Status = types.StatusUnknown
		return result
	}
	result.NormalRange = bucket.NormalRange

	if bucket.NormalRange != nil && bucket.NormalRange.Contains(value) {
		return result
	}

	for i := range bucket.Conditions {
		cond := &bucket.Conditions[i]
		if !evaluateCondition(value, cond.Operator, cond.Threshold) {
			continue
		}
		result.Status = cond.Status
		result.RiskTier = cond.RiskTier
		result.AbnormalTag = cond.Tag
		result.Message = cond.Message
		result.Recommendations = cond.Recommendations
		return result
	}

	return result
}
