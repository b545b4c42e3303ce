package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/ast"
)

func loadTestScenario(t *testing.T, name string) *Scenario {
	t.Helper()
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", name))
	require.NoError(t, err)
	return scenario
}

func TestRun_EmptyIdentity(t *testing.T) {
	scenario := loadTestScenario(t, "empty_identity.yaml")

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.Equal(t, "run-empty_identity", result.Token, "the token defaults to the scenario name")
	require.Len(t, result.Events, 1)
	assert.Equal(t, "identity", result.Events[0].Pass)
	assert.Equal(t, result.Events[0].InputHash, result.Events[0].OutputHash)
}

func TestRun_FoldSum(t *testing.T) {
	scenario := loadTestScenario(t, "fold_sum.yaml")

	result, err := Run(scenario)
	require.NoError(t, err)

	fn, ok := result.Program.Functions.Get("main")
	require.True(t, ok)
	ret := fn.Block.Statements[0].(*ast.ReturnStatement)
	folded, ok := ret.Expression.(*ast.ImplicitValue)
	require.True(t, ok)
	assert.Equal(t, "3", folded.Value)
	assert.Equal(t, 22, folded.Span().Start)
	assert.Equal(t, 27, folded.Span().End)
}

func TestRun_RenameX(t *testing.T) {
	scenario := loadTestScenario(t, "rename_x.yaml")

	result, err := Run(scenario)
	require.NoError(t, err)

	require.Len(t, result.Events, 1)
	assert.Equal(t, "rename(x->y)", result.Events[0].Pass)

	fn, ok := result.Program.Functions.Get("main")
	require.True(t, ok)
	ret := fn.Block.Statements[0].(*ast.ReturnStatement)
	sum := ret.Expression.(*ast.BinaryExpression)
	assert.Equal(t, "y", sum.Left.(*ast.Identifier).Name)
}

func TestRun_FoldThenRename(t *testing.T) {
	scenario := loadTestScenario(t, "fold_then_rename.yaml")

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.Equal(t, "trace-1", result.Token, "an explicit token overrides the default")
	require.Len(t, result.Events, 2)
	assert.Equal(t, result.Events[0].OutputHash, result.Events[1].InputHash)
	assert.Equal(t, []string{"entry"}, result.Program.Functions.Keys())
}

func TestRun_FailedAssertionSurfaces(t *testing.T) {
	scenario := loadTestScenario(t, "empty_identity.yaml")
	scenario.Assertions = []Assertion{{Type: AssertHashChanged}}

	_, err := Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hash_changed")
}

func TestRun_Goldens(t *testing.T) {
	for _, name := range []string{
		"empty_identity.yaml",
		"fold_sum.yaml",
		"rename_x.yaml",
		"fold_then_rename.yaml",
	} {
		t.Run(name, func(t *testing.T) {
			scenario := loadTestScenario(t, name)
			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}
