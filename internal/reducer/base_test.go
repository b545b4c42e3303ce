package reducer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/span"
)

func TestBase_InCircuit_DefaultsOff(t *testing.T) {
	var b Base
	assert.False(t, b.InCircuit())
}

func TestBase_SwapInCircuit_Toggles(t *testing.T) {
	var b Base
	b.SwapInCircuit()
	assert.True(t, b.InCircuit())
	b.SwapInCircuit()
	assert.False(t, b.InCircuit())
}

func TestBase_WithCircuitScope_RestoresOnSuccess(t *testing.T) {
	var b Base
	err := b.WithCircuitScope(func() error {
		assert.True(t, b.InCircuit())
		return nil
	})
	require.NoError(t, err)
	assert.False(t, b.InCircuit())
}

func TestBase_WithCircuitScope_RestoresOnError(t *testing.T) {
	var b Base
	boom := errors.New("boom")
	err := b.WithCircuitScope(func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, b.InCircuit())
}

func TestBase_WithCircuitScope_Nests(t *testing.T) {
	var b Base
	err := b.WithCircuitScope(func() error {
		return b.WithCircuitScope(func() error {
			assert.False(t, b.InCircuit(), "nested scope flips back out")
			return nil
		})
	})
	require.NoError(t, err)
	assert.False(t, b.InCircuit())
}

func TestBase_ReduceIdentifier_CopiesNode(t *testing.T) {
	var b Base
	in := ast.NewIdentifier("x", span.New("main.lm", 4, 5))
	out, err := b.ReduceIdentifier(in)
	require.NoError(t, err)
	assert.NotSame(t, in, out)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Span(), out.Span())
}

func TestBase_ReduceString_CopiesRunes(t *testing.T) {
	var b Base
	runes := []rune("abc")
	out, err := b.ReduceString(runes, span.New("main.lm", 0, 5))
	require.NoError(t, err)

	sv, ok := out.(*ast.StringValue)
	require.True(t, ok)
	runes[0] = 'z'
	assert.Equal(t, "abc", string(sv.Value), "the value does not alias the input slice")
}

func TestBase_SummaryHooksPassThrough(t *testing.T) {
	var b Base
	sp := span.New("main.lm", 0, 1)

	expr := ast.NewImplicitValue("1", sp)
	out, err := b.ReduceExpression(nil, expr)
	require.NoError(t, err)
	assert.Same(t, expr, out)

	stmt := ast.NewReturn(expr, sp)
	sOut, err := b.ReduceStatement(nil, stmt)
	require.NoError(t, err)
	assert.Same(t, stmt, sOut)

	typ := &ast.PrimitiveType{Kind: ast.PrimitiveU32}
	tOut, err := b.ReduceType(nil, typ, sp)
	require.NoError(t, err)
	assert.Same(t, typ, tOut)
}

func TestReduceError_MessageIncludesSpanAndCode(t *testing.T) {
	err := Newf("E_TEST", span.New("main.lm", 4, 9), "bad %s", "node")
	assert.Equal(t, "reduce failed at main.lm:[4,9): E_TEST: bad node", err.Error())

	re, ok := AsReduceError(err)
	require.True(t, ok)
	assert.Same(t, err, re)
}

func TestAsReduceError_PlainError(t *testing.T) {
	_, ok := AsReduceError(errors.New("plain"))
	assert.False(t, ok)
}
