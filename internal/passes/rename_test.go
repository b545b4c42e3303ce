package passes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/passes"
	"github.com/lumen-lang/lumen/internal/reducer"
	"github.com/lumen-lang/lumen/internal/testutil"
)

func TestRename_RewritesEveryOccurrence(t *testing.T) {
	// x + (x * x)
	product := testutil.Binary(ast.OpMul, testutil.Ident("x", 27, 28), testutil.Ident("x", 31, 32), 27, 32)
	sum := testutil.Binary(ast.OpAdd, testutil.Ident("x", 22, 23), product, 22, 32)

	result := reduceMain(t, passes.NewRename("x", "y"), sum)

	binary, ok := result.(*ast.BinaryExpression)
	require.True(t, ok)

	left := binary.Left.(*ast.Identifier)
	assert.Equal(t, "y", left.Name)
	assert.Equal(t, testutil.Sp(22, 23), left.Span(), "each occurrence keeps its own span")

	prod := binary.Right.(*ast.BinaryExpression)
	assert.Equal(t, "y", prod.Left.(*ast.Identifier).Name)
	assert.Equal(t, testutil.Sp(27, 28), prod.Left.Span())
	assert.Equal(t, "y", prod.Right.(*ast.Identifier).Name)
	assert.Equal(t, testutil.Sp(31, 32), prod.Right.Span())
}

func TestRename_LeavesOtherNamesAlone(t *testing.T) {
	sum := testutil.Binary(ast.OpAdd, testutil.Ident("x", 22, 23), testutil.Ident("z", 26, 27), 22, 27)

	result := reduceMain(t, passes.NewRename("x", "y"), sum)

	binary := result.(*ast.BinaryExpression)
	assert.Equal(t, "y", binary.Left.(*ast.Identifier).Name)
	assert.Equal(t, "z", binary.Right.(*ast.Identifier).Name)
}

func TestRename_RenamingAFunctionRekeysIt(t *testing.T) {
	program := testutil.ReturnProgram(testutil.Implicit("1", 22, 23))

	out, err := reducer.Reduce(program, passes.NewRename("main", "entry"))
	require.NoError(t, err)

	assert.Equal(t, []string{"entry"}, out.Functions.Keys())
}

func TestRename_NoMatchIsIdentity(t *testing.T) {
	program := testutil.ReturnProgram(testutil.Ident("x", 22, 23))
	before, err := ast.MarshalCanonical(program)
	require.NoError(t, err)

	out, err := reducer.Reduce(program, passes.NewRename("absent", "anything"))
	require.NoError(t, err)

	after, err := ast.MarshalCanonical(out)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}
