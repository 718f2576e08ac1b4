package rules

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/liamcoop/fieldrules/internal/logger"
)

// Config holds pipeline configuration
type Config struct {
	// Logger receives evaluation traces. Nil discards them.
	Logger *slog.Logger

	// Executor is where ValidateFieldAsync delivers completions.
	// Nil delivers on the calling goroutine.
	Executor Executor

	// Concurrency bounds parallel evaluation in ValidateEach.
	// Zero or less means GOMAXPROCS.
	Concurrency int
}

// DefaultConfig returns a synchronous, silent configuration
func DefaultConfig() Config {
	return Config{
		Logger:      logger.Discard(),
		Executor:    nil,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// Pipeline evaluates a value against a rule set in priority order and
// stops at the first failure. It holds no per-call state and is safe for
// concurrent use.
type Pipeline struct {
	log         *slog.Logger
	exec        Executor
	concurrency int
}

// NewPipeline creates a pipeline from cfg
func NewPipeline(cfg Config) *Pipeline {
	defaults := DefaultConfig()
	if cfg.Logger == nil {
		cfg.Logger = defaults.Logger
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaults.Concurrency
	}

	return &Pipeline{
		log:         cfg.Logger,
		exec:        cfg.Executor,
		concurrency: cfg.Concurrency,
	}
}

var defaultPipeline = NewPipeline(DefaultConfig())

// ValidateField validates value against rules with the default pipeline
func ValidateField(value Value, rules []Validator) Outcome {
	return defaultPipeline.ValidateField(value, rules)
}

// Sorted returns a copy of rules stably sorted by ascending priority, with
// nil entries dropped. The input is not modified.
func Sorted(rules []Validator) []Validator {
	sorted := make([]Validator, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			sorted = append(sorted, r)
		}
	}
	slices.SortStableFunc(sorted, func(a, b Validator) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})
	return sorted
}

// ValidateField returns the first failure in priority order, or Success
// when every rule passes. Rules after the first failure are not evaluated.
// An empty rule set is a Success.
func (p *Pipeline) ValidateField(value Value, rules []Validator) Outcome {
	return p.evaluate(value, Sorted(rules))
}

func (p *Pipeline) evaluate(value Value, sorted []Validator) Outcome {
	ctx := context.Background()

	for _, rule := range sorted {
		outcome := rule.Validate(value)
		if p.log.Enabled(ctx, logger.LevelTrace) {
			p.log.Log(ctx, logger.LevelTrace, "rule evaluated",
				"rule_id", rule.ID(),
				"priority", rule.Priority(),
				"passed", outcome.Valid(),
			)
		}

		if !outcome.Valid() {
			if p.log.Enabled(ctx, slog.LevelDebug) {
				p.log.Debug("validation failed",
					"rule_id", rule.ID(),
					"priority", rule.Priority(),
					"value_type", value.Type(),
				)
			}
			return outcome
		}
	}

	return Success()
}

// ValidateFieldAsync validates value and calls done exactly once with the
// final Outcome, on the configured Executor. The returned error is non-nil
// only when the executor rejects the task, in which case done is not called.
func (p *Pipeline) ValidateFieldAsync(value Value, rules []Validator, done func(Outcome)) error {
	sorted := Sorted(rules)
	task := func() {
		done(p.evaluate(value, sorted))
	}

	if p.exec == nil {
		task()
		return nil
	}
	if err := p.exec.Submit(task); err != nil {
		return fmt.Errorf("failed to dispatch validation: %w", err)
	}
	return nil
}

// ValidateEach validates independent values against the same rule set in
// parallel. Outcomes are returned in the order of values. If ctx is
// cancelled before every value is evaluated, the outcomes are nil and the
// context's error is returned.
func (p *Pipeline) ValidateEach(ctx context.Context, values []Value, rules []Validator) ([]Outcome, error) {
	sorted := Sorted(rules)
	outcomes := make([]Outcome, len(values))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, value := range values {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = p.evaluate(value, sorted)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch validation interrupted: %w", err)
	}
	return outcomes, nil
}
