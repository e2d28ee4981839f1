package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/health-planner/internal/types"
)

// Engine evaluates readings against an immutable Store. It holds no mutable
// state, so one Engine may serve any number of concurrent evaluations.
type Engine struct {
	store   *Store
	outcome LoadOutcome
	logger  *logrus.Logger
}

// NewEngine creates an Engine over a loaded store. The load outcome is
// carried so every report it produces can say whether the store behind it
// was degraded.
func NewEngine(store *Store, outcome LoadOutcome, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{store: store, outcome: outcome, logger: logger}
}

// Store returns the engine's rule store.
func (e *Engine) Store() *Store {
	return e.store
}

// Evaluate runs every single-metric rule for the supplied readings plus every
// composite rule, and aggregates the results into a Report. It is pure with
// respect to its inputs: identical readings, gender, and store produce an
// identical Report.
func (e *Engine) Evaluate(readings types.Readings, gender types.Gender) *types.Report {
	report := &types.Report{
		Gender:         gender,
		Degraded:       e.outcome.Degraded,
		DegradedReason: e.outcome.Reason,
	}

	// Sorted key iteration keeps output deterministic across calls.
	keys := make([]string, 0, len(readings))
	for key := range readings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	maxTier := types.RiskLow
	for _, key := range keys {
		result := e.store.EvaluateMetric(key, readings[key], gender)
		report.Metrics = append(report.Metrics, result)

		switch result.Status {
		case types.StatusNormal:
			report.Overall.NormalCount++
		case types.StatusAbnormal:
			report.Overall.AbnormalCount++
			maxTier = types.MaxRiskTier(maxTier, result.RiskTier)
		}
	}
	report.Overall.TotalMetrics = len(keys)

	for _, category := range e.store.Categories() {
		for _, rule := range e.store.CompositeRules(category) {
			if !rule.Logic.Evaluate(readings, gender) {
				continue
			}
			report.Composites = append(report.Composites, types.CompositeResult{
				Rule:            rule.Name,
				Category:        category,
				RiskTier:        rule.RiskTier,
				Message:         rule.Message,
				Recommendations: rule.Recommendations,
				EvidenceLevel:   rule.EvidenceLevel,
			})
			maxTier = types.MaxRiskTier(maxTier, rule.RiskTier)
		}
	}
	report.Overall.CompositeTriggered = len(report.Composites)

	report.Overall.RiskTier = maxTier
	report.Overall.Status = overallStatus(report)
	report.Overall.Summary = summarize(report)
	report.Overall.Recommendations = collectRecommendations(report)

	e.logger.WithFields(logrus.Fields{
		"metrics":   report.Overall.TotalMetrics,
		"abnormal":  report.Overall.AbnormalCount,
		"composite": report.Overall.CompositeTriggered,
		"risk_tier": report.Overall.RiskTier.String(),
	}).Debug("completed evaluation")

	return report
}

func overallStatus(report *types.Report) string {
	if report.Overall.AbnormalCount == 0 && report.Overall.CompositeTriggered == 0 {
		return "healthy"
	}
	return "attention_needed"
}

// summarize synthesizes the human-readable summary line from counts and
// triggered rule names.
func summarize(report *types.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d metrics evaluated: %d normal, %d abnormal.",
		report.Overall.TotalMetrics, report.Overall.NormalCount, report.Overall.AbnormalCount)

	if len(report.Composites) > 0 {
		names := make([]string, 0, len(report.Composites))
		for _, c := range report.Composites {
			names = append(names, c.Rule)
		}
		fmt.Fprintf(&sb, " %d composite rule(s) triggered: %s.", len(names), strings.Join(names, ", "))
	}

	fmt.Fprintf(&sb, " Overall risk: %s.", report.Overall.RiskTier.String())
	return sb.String()
}

// collectRecommendations gathers recommendations from abnormal metric results
// and triggered composites, deduplicated while preserving first-seen order.
func collectRecommendations(report *types.Report) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(recs []string) {
		for _, rec := range recs {
			if rec == "" || seen[rec] {
				continue
			}
			seen[rec] = true
			out = append(out, rec)
		}
	}
	for _, m := range report.Metrics {
		if m.Status == types.StatusAbnormal {
			add(m.Recommendations)
		}
	}
	for _, c := range report.Composites {
		add(c.Recommendations)
	}
	return out
}
