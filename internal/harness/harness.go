package harness

import (
	"context"
	"fmt"
	"os"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/passes"
	"github.com/lumen-lang/lumen/internal/pipeline"
	"github.com/lumen-lang/lumen/internal/reducer"
	"github.com/lumen-lang/lumen/internal/schema"
)

// Result holds the outcome of a scenario run.
type Result struct {
	Token     string
	Program   *ast.Program
	Events    []pipeline.Event
	Canonical []byte
}

// Run executes a scenario: load and validate the document, decode it,
// run the pass sequence, and check the scenario's assertions.
func Run(scenario *Scenario) (*Result, error) {
	document, err := os.ReadFile(scenario.Document)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, err
	}
	if violations := validator.Validate(document); len(violations) > 0 {
		return nil, fmt.Errorf("document %s: %s", scenario.Document, violations[0].Error())
	}

	program, err := ast.DecodeProgram(document)
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	passList, err := buildPasses(scenario.Passes)
	if err != nil {
		return nil, err
	}

	token := scenario.Token
	if token == "" {
		token = "run-" + scenario.Name
	}

	runner := pipeline.NewRunner(passList, pipeline.NewFixedGenerator(token))
	result, err := runner.Run(context.Background(), scenario.Document, program)
	if err != nil {
		return nil, err
	}

	canonical, err := ast.MarshalCanonical(result.Program)
	if err != nil {
		return nil, err
	}

	out := &Result{
		Token:     result.Token,
		Program:   result.Program,
		Events:    result.Events,
		Canonical: canonical,
	}

	for i, assertion := range scenario.Assertions {
		if err := applyAssertion(i, &assertion, out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// buildPasses maps scenario pass steps to runnable passes.
func buildPasses(steps []PassStep) ([]pipeline.Pass, error) {
	built := make([]pipeline.Pass, len(steps))
	for i, step := range steps {
		switch step.Pass {
		case PassIdentity:
			built[i] = pipeline.Pass{Name: PassIdentity, Reducer: &reducer.Base{}}
		case PassFold:
			built[i] = pipeline.Pass{Name: PassFold, Reducer: passes.NewFold()}
		case PassRename:
			built[i] = pipeline.Pass{
				Name:    fmt.Sprintf("%s(%s->%s)", PassRename, step.From, step.To),
				Reducer: passes.NewRename(step.From, step.To),
			}
		default:
			return nil, fmt.Errorf("passes[%d]: unknown pass kind %q", i, step.Pass)
		}
	}
	return built, nil
}
