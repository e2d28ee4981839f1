package rules

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jonathan/health-planner/internal/types"
)

//go:embed rules.json
var defaultRuleDocument []byte

// GenderBucket holds the reference data for one gender scope of a metric
// rule: an optional normal range and an ordered condition list.
type GenderBucket struct {
	NormalRange *types.NormalRange `json:"normal_range,omitempty"`
	Conditions  []Condition        `json:"conditions,omitempty"`
}

// MetricRule is the full rule definition for one metric key.
type MetricRule struct {
	DisplayName string                        `json:"display_name,omitempty"`
	Unit        string                        `json:"unit,omitempty"`
	Buckets     map[types.Gender]GenderBucket `json:"buckets"`
}

// bucketFor resolves the gender bucket, falling back to the default bucket
// when the requested gender has no explicit entry.
func (r *MetricRule) bucketFor(gender types.Gender) (GenderBucket, bool) {
	if bucket, ok := r.Buckets[gender]; ok {
		return bucket, true
	}
	bucket, ok := r.Buckets[types.GenderDefault]
	return bucket, ok
}

// CompositeRule is one multi-metric rule within a category.
type CompositeRule struct {
	Name            string         `json:"name"`
	Logic           LogicNode      `json:"logic"`
	RiskTier        types.RiskTier `json:"risk_tier"`
	Message         string         `json:"message,omitempty"`
	Recommendations []string       `json:"recommendations,omitempty"`
	EvidenceLevel   string         `json:"evidence_level,omitempty"`
}

// document is the on-disk shape of the rule configuration document.
type document struct {
	Metrics    map[string]MetricRule      `json:"metrics"`
	Composites map[string][]CompositeRule `json:"composites"`
}

// Store is the immutable, process-scoped rule set. Loaded once, read-only for
// the process lifetime; safe for concurrent use without locking.
type Store struct {
	metrics    map[string]MetricRule
	composites map[string][]CompositeRule

	metricKeys    []string
	categoryNames []string
}

// LoadOutcome reports whether a load degraded to the empty rule set and why.
// A degraded store still evaluates; every metric comes back unknown and no
// composite triggers. The flag exists so operators can tell that apart from a
// genuinely healthy result.
type LoadOutcome struct {
	Degraded bool
	Reason   string
}

// Load parses a rule configuration document into a Store. A malformed
// document — including any risk-tier literal outside the closed vocabulary,
// any unknown operator, and any unrecognized logic node kind — does not
// abort: it degrades to an empty rule set with the reason in the outcome.
func Load(doc []byte) (*Store, LoadOutcome) {
	var parsed document
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return emptyStore(), LoadOutcome{Degraded: true, Reason: fmt.Sprintf("rule document parse failed: %v", err)}
	}

	if err := validateDocument(&parsed); err != nil {
		return emptyStore(), LoadOutcome{Degraded: true, Reason: fmt.Sprintf("rule document validation failed: %v", err)}
	}

	store := &Store{
		metrics:    parsed.Metrics,
		composites: parsed.Composites,
	}
	for key := range parsed.Metrics {
		store.metricKeys = append(store.metricKeys, key)
	}
	sort.Strings(store.metricKeys)
	for category := range parsed.Composites {
		store.categoryNames = append(store.categoryNames, category)
	}
	sort.Strings(store.categoryNames)

	return store, LoadOutcome{}
}

// DefaultStore loads the embedded default rule document. The embedded
// document is validated by tests, so a degraded outcome here means the build
// itself is broken.
func DefaultStore() (*Store, LoadOutcome) {
	return Load(defaultRuleDocument)
}

// DefaultRuleDocument exposes the embedded document bytes, mainly so the CLI
// can print or re-validate it.
func DefaultRuleDocument() []byte {
	out := make([]byte, len(defaultRuleDocument))
	copy(out, defaultRuleDocument)
	return out
}

func emptyStore() *Store {
	return &Store{
		metrics:    map[string]MetricRule{},
		composites: map[string][]CompositeRule{},
	}
}

// validateDocument walks every rule checking closed-vocabulary fields.
// Risk tiers are already rejected during unmarshal by types.RiskTier;
// this pass covers operators, statuses, and logic tree shapes so the
// failure happens at load time, never at evaluation time.
func validateDocument(parsed *document) error {
	for key, rule := range parsed.Metrics {
		if len(rule.Buckets) == 0 {
			return fmt.Errorf("metric %q has no gender buckets", key)
		}
		for gender, bucket := range rule.Buckets {
			switch gender {
			case types.GenderMale, types.GenderFemale, types.GenderDefault:
			default:
				return fmt.Errorf("metric %q has unknown gender bucket %q", key, gender)
			}
			for i := range bucket.Conditions {
				if err := bucket.Conditions[i].validate(); err != nil {
					return fmt.Errorf("metric %q bucket %q condition %d: %w", key, gender, i, err)
				}
			}
			rule.Buckets[gender] = bucket
		}
	}
	for category, ruleList := range parsed.Composites {
		for i := range ruleList {
			rule := &ruleList[i]
			if rule.Name == "" {
				return fmt.Errorf("composite category %q rule %d has no name", category, i)
			}
			if err := rule.Logic.validate(); err != nil {
				return fmt.Errorf("composite rule %q: %w", rule.Name, err)
			}
		}
	}
	return nil
}

// MetricKeys returns every metric key with a rule, sorted for deterministic
// iteration.
func (s *Store) MetricKeys() []string {
	return s.metricKeys
}

// Categories returns every composite category name, sorted.
func (s *Store) Categories() []string {
	return s.categoryNames
}

// MetricRule returns the rule for a metric key, if one exists.
func (s *Store) MetricRule(key string) (MetricRule, bool) {
	rule, ok := s.metrics[key]
	return rule, ok
}

// CompositeRules returns the rules in one category in document order.
func (s *Store) CompositeRules(category string) []CompositeRule {
	return s.composites[category]
}

// MetricCount returns the number of metric rules loaded.
func (s *Store) MetricCount() int {
	return len(s.metrics)
}
