package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/health-planner/internal/observability"
	"github.com/jonathan/health-planner/internal/rules"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Evaluate health measurements against the rule set",
	Long:  "Evaluate a set of health measurements against the rule set and output a structured assessment report with per-metric results, triggered composite rules, and an overall risk tier.",
	RunE:  runAssess,
}

var (
	assessReadings string
	assessRules    string
	assessOut      string
	assessVerbose  bool
)

func init() {
	assessCmd.Flags().StringVarP(&assessReadings, "readings", "r", "", "Path to readings JSON file (required)")
	assessCmd.Flags().StringVar(&assessRules, "rules", "", "Path to a rule document overriding the embedded one")
	assessCmd.Flags().StringVarP(&assessOut, "out", "o", "", "Output file for the report JSON (defaults to stdout)")
	assessCmd.Flags().BoolVarP(&assessVerbose, "verbose", "v", false, "Print a formatted report summary to stderr")

	assessCmd.MarkFlagRequired("readings")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	readings, gender, err := loadReadings(assessReadings)
	if err != nil {
		return err
	}

	store, outcome := rules.DefaultStore()
	if assessRules != "" {
		doc, err := os.ReadFile(assessRules)
		if err != nil {
			return fmt.Errorf("failed to read rules file %s: %w", assessRules, err)
		}
		store, outcome = rules.Load(doc)
	}
	if outcome.Degraded {
		fmt.Fprintf(os.Stderr, "Warning: rule set degraded: %s\n", outcome.Reason)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if !assessVerbose {
		logger.SetLevel(logrus.WarnLevel)
	}

	engine := rules.NewEngine(store, outcome, logger)
	report := engine.Evaluate(readings, gender)

	if assessVerbose {
		observability.NewPrinter(os.Stderr).PrintReport(report)
	}

	return writeJSON(assessOut, report)
}
