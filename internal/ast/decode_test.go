package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/ordered"
)

// richProgram builds a tree touching every statement kind, most expression
// kinds, and every program aggregate, so a single round trip covers the
// whole surface.
func richProgram() *Program {
	p := NewProgram("rich")

	p.ExpectedInput = []FunctionInput{
		NewFunctionInputVariable(NewIdentifier("r0", sp(0, 2)), false, false, &PrimitiveType{Kind: PrimitiveU32}, sp(0, 7)),
		NewInputKeyword(sp(9, 14)),
	}

	p.ImportStatements = []*ImportStatement{
		NewImportStatement(NewImportLeaf("sum", "total", sp(7, 19)), sp(0, 19)),
		NewImportStatement(NewImportNested("math", []ImportTree{
			NewImportLeaf("min", "", sp(33, 36)),
			NewImportGlob(sp(38, 39)),
		}, sp(27, 40)), sp(20, 40)),
	}

	dep := NewProgram("math")
	dep.Functions.Set("min", NewFunction(
		NewIdentifier("min", sp(0, 3)),
		ordered.NewMap[string, *Annotation](),
		nil,
		false,
		&PrimitiveType{Kind: PrimitiveU32},
		NewBlock([]Statement{
			NewReturn(NewIntegerValue(PrimitiveU32, "0", sp(20, 25)), sp(13, 25)),
		}, sp(11, 27)),
		"",
		sp(0, 27),
	))
	p.Imports.Set("math", dep)

	p.Aliases.Set("matrix", NewAlias(
		NewIdentifier("matrix", sp(45, 51)),
		&ArrayType{Element: &PrimitiveType{Kind: PrimitiveField}, Dimensions: []string{"3", "3"}},
		sp(40, 62),
	))

	p.Circuits.Set("Point", &Circuit{
		Name: NewIdentifier("Point", sp(70, 75)),
		Members: []CircuitMember{
			&CircuitVariable{Identifier: NewIdentifier("x", sp(80, 81)), Type: &PrimitiveType{Kind: PrimitiveU32}},
			&CircuitFunction{Function: NewFunction(
				NewIdentifier("origin", sp(90, 96)),
				ordered.NewMap[string, *Annotation](),
				[]FunctionInput{NewSelfKeyword(sp(97, 101))},
				false,
				&SelfType{},
				NewBlock([]Statement{
					NewReturn(NewCircuitInit(NewIdentifier("Point", sp(115, 120)), []*CircuitVariableInitializer{
						{Identifier: NewIdentifier("x", sp(122, 123)), Expression: NewIntegerValue(PrimitiveU32, "0", sp(125, 128))},
						{Identifier: NewIdentifier("y", sp(130, 131))},
					}, sp(115, 132)), sp(108, 132)),
				}, sp(106, 134)),
				"",
				sp(90, 134),
			)},
		},
	})

	annotations := ordered.NewMap[string, *Annotation]()
	annotations.Set("test", NewAnnotation(NewIdentifier("test", sp(140, 144)), []string{"fast"}, sp(139, 150)))

	body := NewBlock([]Statement{
		NewDefinition(DeclareLet,
			[]*VariableName{NewVariableName(true, NewIdentifier("a", sp(160, 161)), sp(156, 161))},
			false,
			&TupleType{Elements: []Type{&PrimitiveType{Kind: PrimitiveU8}, &NamedType{Name: NewIdentifier("matrix", sp(166, 172))}}},
			NewTupleInit([]Expression{
				NewIntegerValue(PrimitiveU8, "1", sp(176, 178)),
				NewArrayInit(NewFieldValue("0", sp(181, 187)), []string{"3", "3"}, sp(180, 193)),
			}, sp(175, 194)),
			sp(152, 195)),
		NewAssign(AssignSimple,
			NewAssignee(NewIdentifier("a", sp(200, 201)), []AssigneeAccess{
				NewAssigneeTuple("0", sp(202, 203)),
			}, sp(200, 203)),
			NewBinary(
				NewImplicitValue("1", sp(206, 207)),
				NewUnary(NewImplicitValue("2", sp(211, 212)), OpNegate, sp(210, 212)),
				OpAdd,
				sp(206, 212)),
			sp(200, 213)),
		NewConditional(
			NewBinary(NewBooleanValue(true, sp(220, 224)), NewBooleanValue(false, sp(228, 233)), OpAnd, sp(220, 233)),
			NewBlock([]Statement{
				NewConsole(&ConsoleAssert{Expression: NewBooleanValue(true, sp(250, 254))}, sp(236, 255)),
			}, sp(234, 257)),
			NewBlock([]Statement{
				NewConsole(&ConsoleLog{Args: NewConsoleArgs([]rune("value {}"), []Expression{
					NewIdentifier("a", sp(280, 281)),
				}, sp(268, 282))}, sp(262, 283)),
			}, sp(260, 285)),
			sp(217, 285)),
		NewIteration(
			NewIdentifier("i", sp(294, 295)),
			&PrimitiveType{Kind: PrimitiveU32},
			NewImplicitValue("0", sp(301, 302)),
			NewImplicitValue("4", sp(306, 307)),
			true,
			NewBlock([]Statement{
				NewExpressionStatement(NewCall(
					NewStaticAccess(NewIdentifier("Point", sp(315, 320)), NewIdentifier("origin", sp(322, 328)), NewTypeCell(nil), sp(315, 328)),
					[]Expression{
						NewTernary(
							NewBooleanValue(true, sp(330, 334)),
							NewCast(NewIdentifier("i", sp(338, 339)), &PrimitiveType{Kind: PrimitiveU8}, sp(338, 345)),
							NewTupleAccess(NewIdentifier("a", sp(350, 351)), "1", sp(350, 353)),
							sp(330, 353)),
						NewMemberAccess(
							NewArrayAccess(
								NewArrayInline([]SpreadOrExpression{
									{Expression: NewCharValue('q', sp(358, 361))},
									{Spread: true, Expression: NewIdentifier("a", sp(366, 367))},
								}, sp(357, 368)),
								NewArrayRangeAccess(NewIdentifier("a", sp(370, 371)), nil, NewImplicitValue("1", sp(374, 375)), sp(370, 376)),
								sp(357, 377)),
							NewIdentifier("x", sp(379, 380)),
							nil,
							sp(357, 380)),
					},
					sp(315, 381)), sp(315, 382)),
			}, sp(310, 384)),
			sp(290, 384)),
		NewReturn(NewGroupTuple(
			GroupCoordinate{Kind: GroupCoordNumber, Number: "1"},
			GroupCoordinate{Kind: GroupCoordSignHigh},
			sp(397, 409)), sp(390, 409)),
	}, sp(150, 411))

	p.Functions.Set("main", NewFunction(
		NewIdentifier("main", sp(140, 144)),
		annotations,
		[]FunctionInput{
			NewFunctionInputVariable(NewIdentifier("seed", sp(145, 149)), true, false, &PrimitiveType{Kind: PrimitiveGroup}, sp(145, 156)),
		},
		true,
		&PrimitiveType{Kind: PrimitiveGroup},
		body,
		"",
		sp(136, 411),
	))

	p.GlobalConsts.Set("LIMIT", NewDefinition(DeclareConst,
		[]*VariableName{NewVariableName(false, NewIdentifier("LIMIT", sp(420, 425)), sp(420, 425))},
		false,
		&PrimitiveType{Kind: PrimitiveU64},
		NewIntegerValue(PrimitiveU64, "64", sp(433, 438)),
		sp(414, 439)))

	return p
}

func TestDecodeProgram_RoundTrip(t *testing.T) {
	original := richProgram()

	first, err := MarshalCanonical(original)
	require.NoError(t, err)

	decoded, err := DecodeProgram(first)
	require.NoError(t, err)

	second, err := MarshalCanonical(decoded)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "decode then re-encode must reproduce the document byte for byte")
}

func TestDecodeProgram_RoundTripPreservesHash(t *testing.T) {
	original := richProgram()
	data, err := MarshalCanonical(original)
	require.NoError(t, err)

	decoded, err := DecodeProgram(data)
	require.NoError(t, err)

	before, err := ProgramHash(original)
	require.NoError(t, err)
	after, err := ProgramHash(decoded)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDecodeProgram_InvalidJSON(t *testing.T) {
	_, err := DecodeProgram([]byte(`{"name": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode program")
}

func TestDecodeProgram_NotAnObject(t *testing.T) {
	_, err := DecodeProgram([]byte(`[1, 2]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected object")
}

func TestDecodeProgram_MissingName(t *testing.T) {
	doc := `{"aliases":[],"circuits":[],"expected_input":[],"functions":[],"global_consts":[],"import_statements":[],"imports":[]}`
	_, err := DecodeProgram([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing "name"`)
}

func TestDecodeProgram_UnknownExpressionKind(t *testing.T) {
	doc := `{
		"name": "bad",
		"expected_input": [],
		"import_statements": [],
		"imports": [],
		"aliases": [],
		"circuits": [],
		"global_consts": [],
		"functions": [
			{
				"name": "main",
				"function": {
					"identifier": {"kind": "identifier", "name": "main", "span": {"start": 0, "end": 4}},
					"annotations": [],
					"input": [],
					"const": false,
					"output": {"kind": "primitive", "primitive": "u32"},
					"block": {
						"kind": "block",
						"statements": [
							{
								"kind": "return",
								"expression": {"kind": "mystery", "span": {"start": 10, "end": 11}},
								"span": {"start": 5, "end": 11}
							}
						],
						"span": {"start": 4, "end": 12}
					},
					"span": {"start": 0, "end": 12}
				}
			}
		]
	}`
	_, err := DecodeProgram([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown expression kind "mystery"`)
}
