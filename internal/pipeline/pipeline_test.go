package pipeline_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/passes"
	"github.com/lumen-lang/lumen/internal/pipeline"
	"github.com/lumen-lang/lumen/internal/reducer"
	"github.com/lumen-lang/lumen/internal/store"
	"github.com/lumen-lang/lumen/internal/testutil"
)

// foldableProgram returns a program the folding pass actually changes.
func foldableProgram() *ast.Program {
	sum := testutil.Binary(ast.OpAdd, testutil.Implicit("1", 22, 23), testutil.Implicit("2", 26, 27), 22, 27)
	return testutil.ReturnProgram(sum)
}

func TestRunner_Run_IdentityKeepsHash(t *testing.T) {
	program := foldableProgram()
	runner := pipeline.NewRunner([]pipeline.Pass{
		{Name: "identity", Reducer: &reducer.Base{}},
	}, pipeline.NewFixedGenerator("run-1"))

	result, err := runner.Run(context.Background(), "main.lm", program)
	require.NoError(t, err)

	assert.Equal(t, "run-1", result.Token)
	require.Len(t, result.Events, 1)
	assert.Equal(t, result.Events[0].InputHash, result.Events[0].OutputHash, "identity leaves the document hash unchanged")

	want, err := ast.MarshalCanonical(program)
	require.NoError(t, err)
	got, err := ast.MarshalCanonical(result.Program)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestRunner_Run_FoldChangesHash(t *testing.T) {
	runner := pipeline.NewRunner([]pipeline.Pass{
		{Name: "fold", Reducer: passes.NewFold()},
	}, pipeline.NewFixedGenerator("run-1"))

	result, err := runner.Run(context.Background(), "main.lm", foldableProgram())
	require.NoError(t, err)

	require.Len(t, result.Events, 1)
	assert.NotEqual(t, result.Events[0].InputHash, result.Events[0].OutputHash)
}

func TestRunner_Run_EventsChainHashes(t *testing.T) {
	program := foldableProgram()
	runner := pipeline.NewRunner([]pipeline.Pass{
		{Name: "identity", Reducer: &reducer.Base{}},
		{Name: "fold", Reducer: passes.NewFold()},
		{Name: "rename", Reducer: passes.NewRename("main", "entry")},
	}, pipeline.NewFixedGenerator("run-1"))

	result, err := runner.Run(context.Background(), "main.lm", program)
	require.NoError(t, err)

	inputHash, err := ast.ProgramHash(program)
	require.NoError(t, err)
	finalHash, err := ast.ProgramHash(result.Program)
	require.NoError(t, err)

	require.Len(t, result.Events, 3)
	assert.Equal(t, inputHash, result.Events[0].InputHash)
	for i, ev := range result.Events {
		assert.Equal(t, int64(i+1), ev.Seq)
		if i > 0 {
			assert.Equal(t, result.Events[i-1].OutputHash, ev.InputHash, "each pass consumes the previous pass's output")
		}
	}
	assert.Equal(t, finalHash, result.Events[2].OutputHash)
}

// failing rejects every program it sees.
type failing struct {
	reducer.Base
}

func (f *failing) ReduceBlock(block *ast.Block, statements []ast.Statement) (*ast.Block, error) {
	return nil, reducer.Newf("E_NO_BLOCKS", block.Span(), "blocks are rejected")
}

func TestRunner_Run_FailingPassNamesThePass(t *testing.T) {
	runner := pipeline.NewRunner([]pipeline.Pass{
		{Name: "identity", Reducer: &reducer.Base{}},
		{Name: "lint", Reducer: &failing{}},
	}, pipeline.NewFixedGenerator("run-1"))

	result, err := runner.Run(context.Background(), "main.lm", foldableProgram())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "pass lint:")

	re, ok := reducer.AsReduceError(err)
	require.True(t, ok, "the hook failure stays unwrappable")
	assert.Equal(t, reducer.ReduceErrorCode("E_NO_BLOCKS"), re.Code)
}

func TestRunner_Passes_ReportsRegistrationOrder(t *testing.T) {
	runner := pipeline.NewRunner([]pipeline.Pass{
		{Name: "fold", Reducer: passes.NewFold()},
		{Name: "rename", Reducer: passes.NewRename("a", "b")},
	}, pipeline.NewFixedGenerator("run-1"))

	assert.Equal(t, []string{"fold", "rename"}, runner.Passes())
}

func TestRunner_Run_RecordsToStore(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer s.Close()

	program := foldableProgram()
	runner := pipeline.NewRunner([]pipeline.Pass{
		{Name: "fold", Reducer: passes.NewFold()},
	}, pipeline.NewFixedGenerator("run-1"), pipeline.WithStore(s))

	result, err := runner.Run(ctx, "main.lm", program)
	require.NoError(t, err)

	run, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "main.lm", run.Source)
	assert.Equal(t, store.RunStatusOK, run.Status)
	assert.Equal(t, result.Events[0].InputHash, run.InputHash)
	assert.Equal(t, result.Events[0].OutputHash, run.OutputHash)

	events, err := s.ListPassEvents(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "fold", events[0].Pass)
	assert.Equal(t, int64(1), events[0].Seq)

	// both endpoint documents are snapshotted under their hashes
	input, err := s.ReadSnapshot(ctx, result.Events[0].InputHash)
	require.NoError(t, err)
	want, err := ast.MarshalCanonical(program)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(input))

	output, err := s.ReadSnapshot(ctx, result.Events[0].OutputHash)
	require.NoError(t, err)
	folded, err := ast.MarshalCanonical(result.Program)
	require.NoError(t, err)
	assert.Equal(t, string(folded), string(output))
}

func TestRunner_Run_ReplayWithSameTokenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer s.Close()

	passList := []pipeline.Pass{{Name: "fold", Reducer: passes.NewFold()}}

	for i := 0; i < 2; i++ {
		runner := pipeline.NewRunner(passList, pipeline.NewFixedGenerator("run-1"), pipeline.WithStore(s))
		_, err := runner.Run(ctx, "main.lm", foldableProgram())
		require.NoError(t, err)
	}

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1, "replaying the same token leaves a single run row")

	events, err := s.ListPassEvents(ctx, "run-1")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestRunner_Run_FailureIsRecorded(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer s.Close()

	runner := pipeline.NewRunner([]pipeline.Pass{
		{Name: "lint", Reducer: &failing{}},
	}, pipeline.NewFixedGenerator("run-1"), pipeline.WithStore(s))

	_, err = runner.Run(ctx, "main.lm", foldableProgram())
	require.Error(t, err)

	run, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, store.RunStatusFailed, run.Status)
	assert.Contains(t, run.Error, "lint:")
}

func TestFixedGenerator_ReturnsTokensInOrder(t *testing.T) {
	gen := pipeline.NewFixedGenerator("a", "b")
	assert.Equal(t, "a", gen.Generate())
	assert.Equal(t, "b", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestUUIDv7Generator_TokensAreUniqueAndSortable(t *testing.T) {
	gen := pipeline.UUIDv7Generator{}
	first := gen.Generate()
	second := gen.Generate()
	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
	assert.Less(t, first, second, "v7 tokens sort by creation time")
}
