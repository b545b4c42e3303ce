package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/passes"
	"github.com/lumen-lang/lumen/internal/pipeline"
	"github.com/lumen-lang/lumen/internal/reducer"
	"github.com/lumen-lang/lumen/internal/schema"
	"github.com/lumen-lang/lumen/internal/store"
)

// ReduceResult holds the outcome of a reduce run for JSON output.
type ReduceResult struct {
	Token      string           `json:"token"`
	InputHash  string           `json:"input_hash"`
	OutputHash string           `json:"output_hash"`
	Events     []pipeline.Event `json:"events"`
}

// NewReduceCommand creates the reduce command.
func NewReduceCommand(rootOpts *RootOptions) *cobra.Command {
	var passFlags []string
	var storePath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "reduce <document.json>",
		Short: "Run rewrite passes over a program document",
		Long: `Run a sequence of rewrite passes over a serialized program document.

Passes execute in flag order and fail fast: the first pass error aborts
the run. The rewritten document is written in canonical form.

Pass syntax:
  --pass identity          reconstruct the tree unchanged
  --pass fold              fold integer constant arithmetic
  --pass rename=from:to    rename every identifier "from" to "to"

With --store, the run and its per-pass trace are recorded in a SQLite
database, along with content-addressed snapshots of every intermediate
document.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReduce(rootOpts, args[0], passFlags, storePath, outPath, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&passFlags, "pass", nil, "pass to run (repeatable, in order)")
	cmd.Flags().StringVar(&storePath, "store", "", "record the run in a SQLite database at this path")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the output document to this file (default stdout)")

	return cmd
}

func runReduce(opts *RootOptions, path string, passFlags []string, storePath, outPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if len(passFlags) == 0 {
		_ = formatter.Error(ErrCodeBadPass, "at least one --pass is required", nil)
		return NewExitError(ExitCommandError, "at least one --pass is required")
	}

	passList, err := parsePassFlags(passFlags)
	if err != nil {
		_ = formatter.Error(ErrCodeBadPass, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	document, err := os.ReadFile(path)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("read document: %v", err), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("read document: %v", err))
	}

	validator, err := schema.NewValidator()
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	if violations := validator.Validate(document); len(violations) > 0 {
		return outputValidationErrors(formatter, violations)
	}

	program, err := ast.DecodeProgram(document)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("decode document: %v", err), nil)
		return NewExitError(ExitFailure, fmt.Sprintf("decode document: %v", err))
	}

	var runnerOpts []pipeline.Option
	if storePath != "" {
		s, err := store.Open(storePath)
		if err != nil {
			_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
			return NewExitError(ExitCommandError, err.Error())
		}
		defer s.Close()
		runnerOpts = append(runnerOpts, pipeline.WithStore(s))
	}

	runner := pipeline.NewRunner(passList, pipeline.UUIDv7Generator{}, runnerOpts...)

	formatter.VerboseLog("Running %d pass(es) over %s", len(passList), path)

	result, err := runner.Run(cmd.Context(), path, program)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	output, err := ast.MarshalCanonical(result.Program)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, output, 0o644); err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, fmt.Sprintf("write output: %v", err), nil)
			return NewExitError(ExitCommandError, fmt.Sprintf("write output: %v", err))
		}
		formatter.VerboseLog("Wrote output document to %s", outPath)
	}

	summary := ReduceResult{
		Token:      result.Token,
		InputHash:  result.Events[0].InputHash,
		OutputHash: result.Events[len(result.Events)-1].OutputHash,
		Events:     result.Events,
	}

	if formatter.Format == "json" {
		return formatter.Success(summary)
	}

	if outPath == "" {
		fmt.Fprintln(formatter.Writer, string(output))
	}
	fmt.Fprintf(formatter.GetErrWriter(), "run %s: %d pass(es), %s -> %s\n",
		summary.Token, len(summary.Events), summary.InputHash[:12], summary.OutputHash[:12])
	return nil
}

// parsePassFlags maps --pass values to runnable passes.
func parsePassFlags(flags []string) ([]pipeline.Pass, error) {
	built := make([]pipeline.Pass, len(flags))
	for i, flag := range flags {
		name, arg, _ := strings.Cut(flag, "=")
		switch name {
		case "identity":
			if arg != "" {
				return nil, fmt.Errorf("pass %q takes no argument", name)
			}
			built[i] = pipeline.Pass{Name: "identity", Reducer: &reducer.Base{}}
		case "fold":
			if arg != "" {
				return nil, fmt.Errorf("pass %q takes no argument", name)
			}
			built[i] = pipeline.Pass{Name: "fold", Reducer: passes.NewFold()}
		case "rename":
			from, to, ok := strings.Cut(arg, ":")
			if !ok || from == "" || to == "" {
				return nil, fmt.Errorf("pass rename requires rename=from:to, got %q", flag)
			}
			built[i] = pipeline.Pass{
				Name:    fmt.Sprintf("rename(%s->%s)", from, to),
				Reducer: passes.NewRename(from, to),
			}
		default:
			return nil, fmt.Errorf("unknown pass %q", name)
		}
	}
	return built, nil
}
