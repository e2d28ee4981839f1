// Package pipeline provides the high-level orchestration for the health plan
// generation process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/health-planner/internal/catalog"
	"github.com/jonathan/health-planner/internal/constraints"
	"github.com/jonathan/health-planner/internal/generation"
	"github.com/jonathan/health-planner/internal/observability"
	"github.com/jonathan/health-planner/internal/rules"
	"github.com/jonathan/health-planner/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Pipeline step names reported through ProgressEvent.
const (
	StepAssessment  = "assessment"
	StepConstraints = "constraints"
	StepCatalogs    = "catalogs"
	StepGeneration  = "generation"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Readings    types.Readings
	Gender      types.Gender
	Preferences *types.Preferences
	APIKey      string
	Model       string
	Generation  generation.Options
	// RuleDocument overrides the embedded rule set when non-nil.
	RuleDocument []byte
	Verbose      bool
	Logger       *logrus.Logger
	OnProgress   ProgressCallback
}

// Result carries every artifact the pipeline produces, so callers can emit
// any subset of them.
type Result struct {
	RunID            string                    `json:"run_id"`
	Report           *types.Report             `json:"report"`
	Constraints      *types.MedicalConstraints `json:"constraints"`
	AllowedExercises []types.Exercise          `json:"allowed_exercises"`
	AllowedFoods     []types.Food              `json:"allowed_foods"`
	Plan             *types.ValidatedPlan      `json:"plan"`
	Validation       types.ValidationReport    `json:"validation"`
}

var validate = playgroundvalidator.New()

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
			Content: content,
		})
	}
}

// Run executes the full pipeline: evaluate readings against the rule set,
// extract constraints, filter the catalogs, and produce a validated plan.
// When no API key is configured the generation step is skipped entirely and
// the plan comes from the deterministic fallback.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
	}

	if len(opts.Readings) == 0 {
		return nil, fmt.Errorf("no readings provided")
	}
	if opts.Preferences != nil {
		if err := validate.Struct(opts.Preferences); err != nil {
			return nil, fmt.Errorf("invalid preferences: %w", err)
		}
	}

	runID := uuid.NewString()
	printer := observability.NewPrinter(os.Stdout)

	// Step 1: Load rules and evaluate readings
	logger.WithField("run_id", runID).Info("Step 1/4: Evaluating health metrics...")
	store, outcome := rules.DefaultStore()
	if opts.RuleDocument != nil {
		store, outcome = rules.Load(opts.RuleDocument)
	}
	if outcome.Degraded {
		logger.WithField("reason", outcome.Reason).Warn("rule store degraded, report will carry no findings")
	}

	engine := rules.NewEngine(store, outcome, logger)
	report := engine.Evaluate(opts.Readings, opts.Gender)
	if opts.Verbose {
		printer.PrintReport(report)
	}
	emitProgress(&opts, runID, StepAssessment,
		fmt.Sprintf("Evaluated %d metrics, overall risk %s", report.Overall.TotalMetrics, report.Overall.RiskTier), report)

	// Step 2: Extract actionable constraints from the report
	logger.Info("Step 2/4: Extracting medical constraints...")
	medical := constraints.Extract(report)
	if opts.Verbose {
		printer.PrintConstraints(&medical)
	}
	emitProgress(&opts, runID, StepConstraints,
		fmt.Sprintf("Max intensity %s, %d dietary restrictions", medical.MaxIntensity, len(medical.DietaryRestrictions)), medical)

	// Step 3: Filter the catalogs in parallel
	logger.Info("Step 3/4: Filtering exercise and food catalogs...")

	g, _ := errgroup.WithContext(ctx)

	var allowedExercises []types.Exercise
	var allowedFoods []types.Food
	var exMu, fdMu sync.Mutex

	g.Go(func() error {
		filtered := catalog.FilterExercises(&medical, catalog.Exercises())
		exMu.Lock()
		allowedExercises = filtered
		exMu.Unlock()
		return nil
	})

	g.Go(func() error {
		filtered := catalog.FilterFoods(&medical, opts.Preferences, catalog.Foods())
		fdMu.Lock()
		allowedFoods = filtered
		fdMu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		printer.PrintCatalogs(allowedExercises, allowedFoods)
	}
	emitProgress(&opts, runID, StepCatalogs,
		fmt.Sprintf("%d exercises and %d foods allowed", len(allowedExercises), len(allowedFoods)), nil)

	// Step 4: Generate the plan, or fall back without a generator
	result := &Result{
		RunID:            runID,
		Report:           report,
		Constraints:      &medical,
		AllowedExercises: allowedExercises,
		AllowedFoods:     allowedFoods,
	}

	if opts.APIKey == "" {
		logger.Info("Step 4/4: No API key configured, building fallback plan...")
		result.Plan = generation.FallbackPlan(allowedExercises, allowedFoods)
		if opts.Verbose {
			printer.PrintPlan(result.Plan, result.Validation)
		}
		emitProgress(&opts, runID, StepGeneration, "Built fallback plan", result.Plan)
		return result, nil
	}

	logger.Info("Step 4/4: Generating weekly plan...")
	client, err := generation.NewGeminiClient(ctx, opts.APIKey, opts.Model)
	if err != nil {
		return nil, fmt.Errorf("create generation client: %w", err)
	}
	defer client.Close()

	req := generation.BuildRequest(report, &medical, allowedExercises, allowedFoods, opts.Preferences)
	generator := generation.NewGenerator(client, opts.Generation, logger)
	plan, validation := generator.Generate(ctx, &req, allowedExercises, allowedFoods)

	result.Plan = plan
	result.Validation = validation
	if opts.Verbose {
		printer.PrintPlan(plan, validation)
	}
	emitProgress(&opts, runID, StepGeneration,
		fmt.Sprintf("Produced %s plan, %d references dropped", plan.Source, validation.TotalDropped()), plan)

	return result, nil
}
