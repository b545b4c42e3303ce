package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/ordered"
	"github.com/lumen-lang/lumen/internal/span"
)

func sp(start, end int) span.Span {
	return span.New("main.lm", start, end)
}

func TestMarshalCanonical_EmptyProgram(t *testing.T) {
	p := NewProgram("golden")

	data, err := MarshalCanonical(p)
	require.NoError(t, err)

	want := `{"aliases":[],"circuits":[],"expected_input":[],"functions":[],"global_consts":[],"import_statements":[],"imports":[],"name":"golden"}`
	assert.Equal(t, want, string(data))
}

func TestMarshalCanonicalExpression_SortedKeys(t *testing.T) {
	expr := NewBinary(
		NewImplicitValue("1", sp(4, 5)),
		NewImplicitValue("2", sp(8, 9)),
		OpAdd,
		sp(4, 9),
	)

	data, err := MarshalCanonicalExpression(expr)
	require.NoError(t, err)

	want := `{"kind":"binary","left":{"kind":"implicit","span":{"end":5,"path":"main.lm","start":4},"value":"1"},"op":"add","right":{"kind":"implicit","span":{"end":9,"path":"main.lm","start":8},"value":"2"},"span":{"end":9,"path":"main.lm","start":4}}`
	assert.Equal(t, want, string(data))
}

func TestMarshalCanonicalExpression_NoHTMLEscape(t *testing.T) {
	expr := NewStringValue([]rune("a<b&c>d"), sp(0, 9))

	data, err := MarshalCanonicalExpression(expr)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"a<b&c>d"`, "angle brackets and ampersands must stay literal")
	assert.NotContains(t, string(data), `\u003c`)
	assert.NotContains(t, string(data), `\u0026`)
}

func TestMarshalCanonical_SyntheticSpanOmitsPath(t *testing.T) {
	expr := NewImplicitValue("3", span.New("", 4, 9))

	data, err := MarshalCanonicalExpression(expr)
	require.NoError(t, err)

	want := `{"kind":"implicit","span":{"end":9,"start":4},"value":"3"}`
	assert.Equal(t, want, string(data))
}

func TestMarshalCanonical_Deterministic(t *testing.T) {
	p := NewProgram("repeat")
	block := NewBlock([]Statement{
		NewReturn(NewImplicitValue("1", sp(20, 21)), sp(13, 21)),
	}, sp(11, 23))
	fn := NewFunction(
		NewIdentifier("main", sp(0, 4)),
		ordered.NewMap[string, *Annotation](),
		nil,
		false,
		&PrimitiveType{Kind: PrimitiveU32},
		block,
		"",
		sp(0, 23),
	)
	p.Functions.Set("main", fn)

	first, err := MarshalCanonical(p)
	require.NoError(t, err)
	second, err := MarshalCanonical(p)
	require.NoError(t, err)

	assert.Equal(t, first, second, "canonical form must be byte-stable across calls")
}

func TestMarshalCanonicalValue_RejectsFloats(t *testing.T) {
	_, err := marshalCanonicalValue(map[string]any{"x": 1.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floats are forbidden")
}

func TestMarshalCanonicalValue_RejectsNull(t *testing.T) {
	_, err := marshalCanonicalValue(map[string]any{"x": nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null is forbidden")
}

func TestSortedKeysUTF16(t *testing.T) {
	obj := map[string]any{
		"import_statements": 1,
		"imports":           2,
		"name":              3,
		"aliases":           4,
	}
	keys := sortedKeysUTF16(obj)
	// '_' (0x5F) sorts before 's' (0x73), so the longer key comes first.
	assert.Equal(t, []string{"aliases", "import_statements", "imports", "name"}, keys)
}
