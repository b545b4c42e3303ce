package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/reducer"
	"github.com/lumen-lang/lumen/internal/store"
)

// Pass is one named rewrite in a run. The reducer carries any per-pass
// state, so a Pass value should not be shared between concurrent runs.
type Pass struct {
	Name    string
	Reducer reducer.Reducer
}

// Event is one executed pass boundary within a run.
type Event struct {
	Seq        int64  `json:"seq"`
	Pass       string `json:"pass"`
	InputHash  string `json:"input_hash"`
	OutputHash string `json:"output_hash"`
}

// Result is the outcome of a completed run.
type Result struct {
	Token   string
	Program *ast.Program
	Events  []Event
}

// Runner executes a pass sequence over programs.
//
// Passes run in registration order. The first failing pass aborts the run;
// no partial program is returned and no later pass executes.
type Runner struct {
	passes []Pass
	tokens TokenGenerator
	store  *store.Store
}

// Option configures a Runner.
type Option func(*Runner)

// WithStore attaches a store. The runner then records each run, its pass
// trace, and content-addressed snapshots of every document it produces.
func WithStore(s *store.Store) Option {
	return func(r *Runner) {
		r.store = s
	}
}

// NewRunner creates a Runner over the given pass sequence.
//
// The passes slice is copied to keep the execution order fixed after
// construction.
func NewRunner(passes []Pass, tokens TokenGenerator, opts ...Option) *Runner {
	passesCopy := make([]Pass, len(passes))
	copy(passesCopy, passes)

	r := &Runner{
		passes: passesCopy,
		tokens: tokens,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Passes returns the registered pass names in execution order.
func (r *Runner) Passes() []string {
	names := make([]string, len(r.passes))
	for i, p := range r.passes {
		names[i] = p.Name
	}
	return names
}

// Run executes the pass sequence over program. The source string labels the
// run in the store (typically the input file path).
//
// The input program is never mutated. On failure the error names the
// failing pass and, with a store attached, the run row records the failure.
func (r *Runner) Run(ctx context.Context, source string, program *ast.Program) (*Result, error) {
	token := r.tokens.Generate()

	inputHash, err := ast.ProgramHash(program)
	if err != nil {
		return nil, fmt.Errorf("hash input: %w", err)
	}

	slog.Debug("run starting",
		"token", token,
		"source", source,
		"input_hash", inputHash,
		"passes", len(r.passes),
	)

	if r.store != nil {
		if err := r.store.BeginRun(ctx, token, source, inputHash); err != nil {
			return nil, err
		}
		if err := r.snapshot(ctx, inputHash, program); err != nil {
			return nil, err
		}
	}

	current := program
	currentHash := inputHash
	events := make([]Event, 0, len(r.passes))

	for i, pass := range r.passes {
		next, err := reducer.Reduce(current, pass.Reducer)
		if err != nil {
			slog.Error("pass failed",
				"token", token,
				"pass", pass.Name,
				"seq", i+1,
				"error", err,
			)
			if r.store != nil {
				if ferr := r.store.FailRun(ctx, token, fmt.Sprintf("%s: %v", pass.Name, err)); ferr != nil {
					slog.Error("recording run failure failed", "token", token, "error", ferr)
				}
			}
			return nil, fmt.Errorf("pass %s: %w", pass.Name, err)
		}

		outputHash, err := ast.ProgramHash(next)
		if err != nil {
			return nil, fmt.Errorf("pass %s: hash output: %w", pass.Name, err)
		}

		event := Event{
			Seq:        int64(i + 1),
			Pass:       pass.Name,
			InputHash:  currentHash,
			OutputHash: outputHash,
		}
		events = append(events, event)

		slog.Debug("pass completed",
			"token", token,
			"pass", pass.Name,
			"seq", event.Seq,
			"input_hash", event.InputHash,
			"output_hash", event.OutputHash,
		)

		if r.store != nil {
			if err := r.store.WritePassEvent(ctx, store.PassEvent{
				RunToken:   token,
				Seq:        event.Seq,
				Pass:       event.Pass,
				InputHash:  event.InputHash,
				OutputHash: event.OutputHash,
			}); err != nil {
				return nil, err
			}
			if err := r.snapshot(ctx, outputHash, next); err != nil {
				return nil, err
			}
		}

		current = next
		currentHash = outputHash
	}

	if r.store != nil {
		if err := r.store.FinishRun(ctx, token, currentHash); err != nil {
			return nil, err
		}
	}

	slog.Info("run completed",
		"token", token,
		"source", source,
		"input_hash", inputHash,
		"output_hash", currentHash,
		"passes", len(events),
	)

	return &Result{
		Token:   token,
		Program: current,
		Events:  events,
	}, nil
}

// snapshot stores the canonical form of program under hash.
func (r *Runner) snapshot(ctx context.Context, hash string, program *ast.Program) error {
	document, err := ast.MarshalCanonical(program)
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", hash, err)
	}
	return r.store.WriteSnapshot(ctx, hash, document)
}
