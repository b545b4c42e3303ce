package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/ordered"
)

func TestProgramHash_Stable(t *testing.T) {
	p := NewProgram("stable")

	first, err := ProgramHash(p)
	require.NoError(t, err)
	second, err := ProgramHash(p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64, "SHA-256 hex digest")
}

func TestProgramHash_StructurallyEqualPrograms(t *testing.T) {
	build := func() *Program {
		p := NewProgram("twin")
		block := NewBlock([]Statement{
			NewReturn(NewImplicitValue("7", sp(20, 21)), sp(13, 21)),
		}, sp(11, 23))
		p.Functions.Set("main", NewFunction(
			NewIdentifier("main", sp(0, 4)),
			ordered.NewMap[string, *Annotation](),
			nil,
			false,
			&PrimitiveType{Kind: PrimitiveU32},
			block,
			"",
			sp(0, 23),
		))
		return p
	}

	a, err := ProgramHash(build())
	require.NoError(t, err)
	b, err := ProgramHash(build())
	require.NoError(t, err)
	assert.Equal(t, a, b, "independently built equal trees hash equal")
}

func TestProgramHash_NameChangesHash(t *testing.T) {
	a, err := ProgramHash(NewProgram("one"))
	require.NoError(t, err)
	b, err := ProgramHash(NewProgram("two"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestProgramHash_AggregateOrderChangesHash(t *testing.T) {
	mkFn := func(name string, at int) *Function {
		block := NewBlock(nil, sp(at+10, at+12))
		return NewFunction(
			NewIdentifier(name, sp(at, at+1)),
			ordered.NewMap[string, *Annotation](),
			nil,
			false,
			&PrimitiveType{Kind: PrimitiveU32},
			block,
			"",
			sp(at, at+12),
		)
	}

	ab := NewProgram("order")
	ab.Functions.Set("a", mkFn("a", 0))
	ab.Functions.Set("b", mkFn("b", 20))

	ba := NewProgram("order")
	ba.Functions.Set("b", mkFn("b", 20))
	ba.Functions.Set("a", mkFn("a", 0))

	hashAB, err := ProgramHash(ab)
	require.NoError(t, err)
	hashBA, err := ProgramHash(ba)
	require.NoError(t, err)
	assert.NotEqual(t, hashAB, hashBA, "insertion order is part of program identity")
}

func TestExpressionHash_DiffersByStructure(t *testing.T) {
	one, err := ExpressionHash(NewImplicitValue("1", sp(0, 1)))
	require.NoError(t, err)
	two, err := ExpressionHash(NewImplicitValue("2", sp(0, 1)))
	require.NoError(t, err)
	assert.NotEqual(t, one, two)
}

func TestExpressionHash_SpanIsPartOfIdentity(t *testing.T) {
	a, err := ExpressionHash(NewImplicitValue("1", sp(0, 1)))
	require.NoError(t, err)
	b, err := ExpressionHash(NewImplicitValue("1", sp(4, 5)))
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "spans are encoded, so moving a literal changes its hash")
}
