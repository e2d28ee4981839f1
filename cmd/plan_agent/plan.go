package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/health-planner/internal/config"
	"github.com/jonathan/health-planner/internal/generation"
	"github.com/jonathan/health-planner/internal/pipeline"
	"github.com/jonathan/health-planner/internal/types"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run the full assessment and plan generation pipeline end-to-end",
	Long: `Orchestrates the entire process: rule evaluation -> constraint extraction -> catalog filtering -> fenced generation -> validation.

Without an API key the generation step is skipped and the plan comes from the deterministic fallback. Configuration can be loaded from a JSON file using --config; command-line arguments override config file values.`,
	RunE: runPlanCmd,
}

var (
	planConfigPath  string
	planReadings    string
	planPreferences string
	planRules       string
	planAPIKey      string
	planModel       string
	planOut         string
	planVerbose     bool
)

func init() {
	// Config file flag (processed first)
	planCmd.Flags().StringVar(&planConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	planCmd.Flags().StringVarP(&planReadings, "readings", "r", "", "Path to readings JSON file (required)")
	planCmd.Flags().StringVarP(&planPreferences, "preferences", "p", "", "Path to preferences JSON file (optional)")
	planCmd.Flags().StringVar(&planRules, "rules", "", "Path to a rule document overriding the embedded one")
	planCmd.Flags().StringVar(&planModel, "model", "", "Generator model name")
	planCmd.Flags().StringVarP(&planOut, "out", "o", "", "Output file for the result JSON (defaults to stdout)")
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Print detailed pipeline information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	planCmd.Flags().StringVar(&planAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	planCmd.MarkFlagRequired("readings")

	rootCmd.AddCommand(planCmd)
}

func runPlanCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if planConfigPath != "" {
		loadedCfg, err := config.LoadConfig(planConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if planVerbose {
			_, _ = fmt.Fprintf(os.Stderr, "Loaded config from: %s\n", planConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = planAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = planModel
	}
	if cmd.Flags().Changed("rules") {
		cfg.RulesPath = planRules
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = planVerbose
	}

	// Step 3: Load inputs
	readings, gender, err := loadReadings(planReadings)
	if err != nil {
		return err
	}

	var prefs *types.Preferences
	if planPreferences != "" {
		prefs, err = loadPreferences(planPreferences)
		if err != nil {
			return err
		}
	}

	var ruleDoc []byte
	if cfg.RulesPath != "" {
		ruleDoc, err = os.ReadFile(cfg.RulesPath)
		if err != nil {
			return fmt.Errorf("failed to read rules file %s: %w", cfg.RulesPath, err)
		}
	}

	// Step 4: Assemble generation options from config
	genOpts := generation.DefaultOptions()
	if cfg.MaxRetries > 0 {
		genOpts.MaxRetries = uint64(cfg.MaxRetries)
	}
	if cfg.TimeoutSeconds > 0 {
		genOpts.Timeout = cfg.Timeout()
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if !cfg.Verbose {
		logger.SetLevel(logrus.WarnLevel)
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		Readings:     readings,
		Gender:       gender,
		Preferences:  prefs,
		APIKey:       cfg.ResolveAPIKey(),
		Model:        cfg.Model,
		Generation:   genOpts,
		RuleDocument: ruleDoc,
		Verbose:      cfg.Verbose,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Produced %s plan (run %s)\n", result.Plan.Source, result.RunID)
	return writeJSON(planOut, result)
}
