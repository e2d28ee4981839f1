// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/health-planner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs a human-readable summary of the assessment report.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Metrics:    %d (%d normal, %d abnormal)\n",
		report.Overall.TotalMetrics, report.Overall.NormalCount, report.Overall.AbnormalCount))
	sb.WriteString(fmt.Sprintf("Composites: %d triggered\n", report.Overall.CompositeTriggered))
	sb.WriteString(fmt.Sprintf("Risk tier:  %s\n", report.Overall.RiskTier))
	sb.WriteString(fmt.Sprintf("Status:     %s", report.Overall.Status))
	if report.Degraded {
		sb.WriteString("\nDEGRADED:   " + report.DegradedReason)
	}

	p.printBox("Assessment Report", sb.String())
}

// PrintConstraints outputs the derived medical constraints.
func (p *Printer) PrintConstraints(constraints *types.MedicalConstraints) {
	if constraints == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Max intensity: %s\n", constraints.MaxIntensity))
	sb.WriteString(fmt.Sprintf("Restrictions:  %s\n", truncateList(dedupe(constraints.DietaryRestrictions))))
	sb.WriteString(fmt.Sprintf("Forbidden:     %s\n", truncateList(conditionStrings(constraints.ForbiddenConditions))))
	sb.WriteString(fmt.Sprintf("Monitored:     %s", truncateList(constraints.MonitoredMetrics)))

	p.printBox("Medical Constraints", sb.String())
}

// PrintCatalogs outputs the filtered catalog sizes.
func (p *Printer) PrintCatalogs(exercises []types.Exercise, foods []types.Food) {
	content := fmt.Sprintf("Allowed exercises: %d\nAllowed foods:     %d", len(exercises), len(foods))
	p.printBox("Filtered Catalogs", content)
}

// PrintPlan outputs a summary of the validated plan.
func (p *Printer) PrintPlan(plan *types.ValidatedPlan, report types.ValidationReport) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:    %s\n", plan.Source))
	sb.WriteString(fmt.Sprintf("Exercises: %d sessions\n", len(plan.Exercises)))
	sb.WriteString(fmt.Sprintf("Meals:     %d entries\n", len(plan.Meals)))
	sb.WriteString(fmt.Sprintf("Dropped:   %d references", report.TotalDropped()))

	p.printBox("Validated Plan", sb.String())
}

func conditionStrings(codes []types.ConditionCode) []string {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		out = append(out, string(code))
	}
	return dedupe(out)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func truncateList(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	if len(items) > maxItemsToShow {
		return strings.Join(items[:maxItemsToShow], ", ") + fmt.Sprintf(" (+%d more)", len(items)-maxItemsToShow)
	}
	return strings.Join(items, ", ")
}
