package generation

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/jonathan/health-planner/internal/types"
)

// Options bounds the outbound generator call: a retry budget with
// exponential inter-attempt backoff and an overall soft timeout, after which
// the pipeline falls back to the deterministic plan rather than blocking.
type Options struct {
	// MaxRetries is the number of re-attempts after the first call.
	MaxRetries uint64
	// InitialBackoff seeds the exponential backoff between attempts.
	InitialBackoff time.Duration
	// Timeout is the overall budget across all attempts.
	Timeout time.Duration
}

// DefaultOptions returns the retry budget used when the configuration does
// not override it.
func DefaultOptions() Options {
	return Options{
		MaxRetries:     2,
		InitialBackoff: 500 * time.Millisecond,
		Timeout:        60 * time.Second,
	}
}

// Generator runs the full fenced generation flow: call the external service
// through a circuit breaker with bounded retries, parse and validate the
// response, and fall back to the deterministic plan on any failure.
type Generator struct {
	client  Client
	breaker *gobreaker.CircuitBreaker
	opts    Options
	logger  *logrus.Logger
}

// NewGenerator creates a Generator around a client. A nil logger gets a
// default one.
func NewGenerator(client Client, opts Options, logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	if opts.InitialBackoff <= 0 {
		opts.InitialBackoff = DefaultOptions().InitialBackoff
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "plan-generator",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Generator{client: client, breaker: breaker, opts: opts, logger: logger}
}

// Generate produces a validated, catalog-consistent plan. It never returns
// an error: every failure mode of the external generator resolves to the
// deterministic fallback plan, observable through the plan's Source field.
func (g *Generator) Generate(ctx context.Context, req *GenerationRequest, allowedExercises []types.Exercise, allowedFoods []types.Food) (*types.ValidatedPlan, types.ValidationReport) {
	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	generated, err := g.callWithRetry(ctx, req.Prompt)
	if err != nil {
		g.logger.WithError(err).Warn("generation unavailable, using fallback plan")
		return FallbackPlan(allowedExercises, allowedFoods), types.ValidationReport{}
	}

	validated, report := Validate(generated, req)
	if report.TotalDropped() > 0 {
		g.logger.WithFields(logrus.Fields{
			"dropped_exercises": report.DroppedExercises,
			"dropped_meals":     report.DroppedMeals,
		}).Warn("generator referenced items outside the allowed catalogs")
	}
	return validated, report
}

// callWithRetry invokes the generator through the circuit breaker with
// exponential backoff. Parse failures count as attempt failures: a generator
// that returned garbage once may return a clean document on retry.
func (g *Generator) callWithRetry(ctx context.Context, prompt string) (*types.GeneratedPlan, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = g.opts.InitialBackoff

	var plan *types.GeneratedPlan
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		raw, err := g.breaker.Execute(func() (interface{}, error) {
			return g.client.GenerateJSON(ctx, prompt)
		})
		if err != nil {
			g.logger.WithError(err).WithField("attempt", attempt).Debug("generator call failed")
			return err
		}

		parsed, err := ParsePlan(raw.(string))
		if err != nil {
			g.logger.WithError(err).WithField("attempt", attempt).Debug("generator response unparsable")
			return err
		}
		plan = parsed
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(policy, g.opts.MaxRetries), ctx))
	if err != nil {
		return nil, err
	}
	return plan, nil
}
