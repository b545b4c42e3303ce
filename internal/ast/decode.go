package ast

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lumen-lang/lumen/internal/ordered"
	"github.com/lumen-lang/lumen/internal/span"
)

// DecodeProgram parses an AST document produced by the parser (or by
// MarshalCanonical) back into a Program. The decoding is strict about kind
// tags and span shape but tolerant of key order and whitespace.
func DecodeProgram(data []byte) (*Program, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}
	obj, err := asObject(raw, "program")
	if err != nil {
		return nil, err
	}
	return decodeProgram(obj)
}

func asObject(v any, what string) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected object, got %T", what, v)
	}
	return obj, nil
}

func getArray(obj map[string]any, key, what string) ([]any, error) {
	v, ok := obj[key]
	if !ok {
		return nil, fmt.Errorf("%s: missing %q", what, key)
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: %q is not an array", what, key)
	}
	return arr, nil
}

func getString(obj map[string]any, key, what string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("%s: missing %q", what, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: %q is not a string", what, key)
	}
	return s, nil
}

func optString(obj map[string]any, key, what string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: %q is not a string", what, key)
	}
	return s, nil
}

func getBool(obj map[string]any, key, what string) (bool, error) {
	v, ok := obj[key]
	if !ok {
		return false, fmt.Errorf("%s: missing %q", what, key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s: %q is not a boolean", what, key)
	}
	return b, nil
}

func getInt(obj map[string]any, key, what string) (int, error) {
	v, ok := obj[key]
	if !ok {
		return 0, fmt.Errorf("%s: missing %q", what, key)
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%s: %q is not a number", what, key)
	}
	n, err := num.Int64()
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer: %w", what, key, err)
	}
	return int(n), nil
}

func decodeSpan(obj map[string]any, what string) (span.Span, error) {
	v, ok := obj["span"]
	if !ok {
		return span.Span{}, fmt.Errorf("%s: missing \"span\"", what)
	}
	spanObj, err := asObject(v, what+".span")
	if err != nil {
		return span.Span{}, err
	}
	start, err := getInt(spanObj, "start", what+".span")
	if err != nil {
		return span.Span{}, err
	}
	end, err := getInt(spanObj, "end", what+".span")
	if err != nil {
		return span.Span{}, err
	}
	path, err := optString(spanObj, "path", what+".span")
	if err != nil {
		return span.Span{}, err
	}
	return span.New(path, start, end), nil
}

func decodeProgram(obj map[string]any) (*Program, error) {
	name, err := getString(obj, "name", "program")
	if err != nil {
		return nil, err
	}
	p := NewProgram(name)

	expected, err := getArray(obj, "expected_input", "program")
	if err != nil {
		return nil, err
	}
	for i, v := range expected {
		in, err := decodeFunctionInput(v, fmt.Sprintf("expected_input[%d]", i))
		if err != nil {
			return nil, err
		}
		p.ExpectedInput = append(p.ExpectedInput, in)
	}

	importStmts, err := getArray(obj, "import_statements", "program")
	if err != nil {
		return nil, err
	}
	for i, v := range importStmts {
		stmt, err := decodeImportStatement(v, fmt.Sprintf("import_statements[%d]", i))
		if err != nil {
			return nil, err
		}
		p.ImportStatements = append(p.ImportStatements, stmt)
	}

	imports, err := getArray(obj, "imports", "program")
	if err != nil {
		return nil, err
	}
	for i, v := range imports {
		what := fmt.Sprintf("imports[%d]", i)
		entry, err := asObject(v, what)
		if err != nil {
			return nil, err
		}
		path, err := getString(entry, "path", what)
		if err != nil {
			return nil, err
		}
		progVal, ok := entry["program"]
		if !ok {
			return nil, fmt.Errorf("%s: missing \"program\"", what)
		}
		progObj, err := asObject(progVal, what+".program")
		if err != nil {
			return nil, err
		}
		sub, err := decodeProgram(progObj)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
		p.Imports.Set(path, sub)
	}

	aliases, err := getArray(obj, "aliases", "program")
	if err != nil {
		return nil, err
	}
	for i, v := range aliases {
		what := fmt.Sprintf("aliases[%d]", i)
		entry, err := asObject(v, what)
		if err != nil {
			return nil, err
		}
		name, err := getString(entry, "name", what)
		if err != nil {
			return nil, err
		}
		alias, err := decodeAlias(entry["alias"], what+".alias")
		if err != nil {
			return nil, err
		}
		p.Aliases.Set(name, alias)
	}

	circuits, err := getArray(obj, "circuits", "program")
	if err != nil {
		return nil, err
	}
	for i, v := range circuits {
		what := fmt.Sprintf("circuits[%d]", i)
		entry, err := asObject(v, what)
		if err != nil {
			return nil, err
		}
		name, err := getString(entry, "name", what)
		if err != nil {
			return nil, err
		}
		circuit, err := decodeCircuit(entry["circuit"], what+".circuit")
		if err != nil {
			return nil, err
		}
		p.Circuits.Set(name, circuit)
	}

	functions, err := getArray(obj, "functions", "program")
	if err != nil {
		return nil, err
	}
	for i, v := range functions {
		what := fmt.Sprintf("functions[%d]", i)
		entry, err := asObject(v, what)
		if err != nil {
			return nil, err
		}
		name, err := getString(entry, "name", what)
		if err != nil {
			return nil, err
		}
		function, err := decodeFunction(entry["function"], what+".function")
		if err != nil {
			return nil, err
		}
		p.Functions.Set(name, function)
	}

	globalConsts, err := getArray(obj, "global_consts", "program")
	if err != nil {
		return nil, err
	}
	for i, v := range globalConsts {
		what := fmt.Sprintf("global_consts[%d]", i)
		entry, err := asObject(v, what)
		if err != nil {
			return nil, err
		}
		names, err := getString(entry, "names", what)
		if err != nil {
			return nil, err
		}
		stmt, err := decodeStatement(entry["definition"], what+".definition")
		if err != nil {
			return nil, err
		}
		def, ok := stmt.(*DefinitionStatement)
		if !ok {
			return nil, fmt.Errorf("%s: definition is not a definition statement", what)
		}
		p.GlobalConsts.Set(names, def)
	}

	return p, nil
}

func decodeFunctionInput(v any, what string) (FunctionInput, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	kind, err := getString(obj, "kind", what)
	if err != nil {
		return nil, err
	}
	sp, err := decodeSpan(obj, what)
	if err != nil {
		return nil, err
	}
	switch kind {
	case kindInputVariable:
		ident, err := decodeIdentifier(obj["identifier"], what+".identifier")
		if err != nil {
			return nil, err
		}
		constant, err := getBool(obj, "const", what)
		if err != nil {
			return nil, err
		}
		mutable, err := getBool(obj, "mutable", what)
		if err != nil {
			return nil, err
		}
		typ, err := decodeType(obj["type"], what+".type")
		if err != nil {
			return nil, err
		}
		return NewFunctionInputVariable(ident, constant, mutable, typ, sp), nil
	case kindInputKeyword:
		return NewInputKeyword(sp), nil
	case kindInputSelf:
		return NewSelfKeyword(sp), nil
	case kindInputMutSelf:
		return NewMutSelfKeyword(sp), nil
	case kindInputConstSelf:
		return NewConstSelfKeyword(sp), nil
	default:
		return nil, fmt.Errorf("%s: unknown function input kind %q", what, kind)
	}
}

func decodeImportStatement(v any, what string) (*ImportStatement, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	tree, err := decodeImportTree(obj["tree"], what+".tree")
	if err != nil {
		return nil, err
	}
	sp, err := decodeSpan(obj, what)
	if err != nil {
		return nil, err
	}
	return NewImportStatement(tree, sp), nil
}

func decodeImportTree(v any, what string) (ImportTree, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	kind, err := getString(obj, "kind", what)
	if err != nil {
		return nil, err
	}
	sp, err := decodeSpan(obj, what)
	if err != nil {
		return nil, err
	}
	switch kind {
	case kindImportLeaf:
		symbol, err := getString(obj, "symbol", what)
		if err != nil {
			return nil, err
		}
		alias, err := optString(obj, "alias", what)
		if err != nil {
			return nil, err
		}
		return NewImportLeaf(symbol, alias, sp), nil
	case kindImportGlob:
		return NewImportGlob(sp), nil
	case kindImportNested:
		prefix, err := getString(obj, "prefix", what)
		if err != nil {
			return nil, err
		}
		rawTrees, err := getArray(obj, "trees", what)
		if err != nil {
			return nil, err
		}
		trees := make([]ImportTree, len(rawTrees))
		for i, t := range rawTrees {
			sub, err := decodeImportTree(t, fmt.Sprintf("%s.trees[%d]", what, i))
			if err != nil {
				return nil, err
			}
			trees[i] = sub
		}
		return NewImportNested(prefix, trees, sp), nil
	default:
		return nil, fmt.Errorf("%s: unknown import tree kind %q", what, kind)
	}
}

func decodeAlias(v any, what string) (*Alias, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	name, err := decodeIdentifier(obj["name"], what+".name")
	if err != nil {
		return nil, err
	}
	represents, err := decodeType(obj["represents"], what+".represents")
	if err != nil {
		return nil, err
	}
	sp, err := decodeSpan(obj, what)
	if err != nil {
		return nil, err
	}
	return NewAlias(name, represents, sp), nil
}

func decodeCircuit(v any, what string) (*Circuit, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	name, err := decodeIdentifier(obj["name"], what+".name")
	if err != nil {
		return nil, err
	}
	rawMembers, err := getArray(obj, "members", what)
	if err != nil {
		return nil, err
	}
	members := make([]CircuitMember, len(rawMembers))
	for i, m := range rawMembers {
		member, err := decodeCircuitMember(m, fmt.Sprintf("%s.members[%d]", what, i))
		if err != nil {
			return nil, err
		}
		members[i] = member
	}
	return &Circuit{Name: name, Members: members}, nil
}

func decodeCircuitMember(v any, what string) (CircuitMember, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	kind, err := getString(obj, "kind", what)
	if err != nil {
		return nil, err
	}
	switch kind {
	case kindInputVariable:
		ident, err := decodeIdentifier(obj["identifier"], what+".identifier")
		if err != nil {
			return nil, err
		}
		typ, err := decodeType(obj["type"], what+".type")
		if err != nil {
			return nil, err
		}
		return &CircuitVariable{Identifier: ident, Type: typ}, nil
	case "function":
		function, err := decodeFunction(obj["function"], what+".function")
		if err != nil {
			return nil, err
		}
		return &CircuitFunction{Function: function}, nil
	default:
		return nil, fmt.Errorf("%s: unknown circuit member kind %q", what, kind)
	}
}

func decodeFunction(v any, what string) (*Function, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	ident, err := decodeIdentifier(obj["identifier"], what+".identifier")
	if err != nil {
		return nil, err
	}
	rawAnnotations, err := getArray(obj, "annotations", what)
	if err != nil {
		return nil, err
	}
	annotations := ordered.NewMap[string, *Annotation]()
	for i, a := range rawAnnotations {
		entryWhat := fmt.Sprintf("%s.annotations[%d]", what, i)
		entry, err := asObject(a, entryWhat)
		if err != nil {
			return nil, err
		}
		name, err := getString(entry, "name", entryWhat)
		if err != nil {
			return nil, err
		}
		annotation, err := decodeAnnotation(entry["annotation"], entryWhat+".annotation")
		if err != nil {
			return nil, err
		}
		annotations.Set(name, annotation)
	}
	rawInput, err := getArray(obj, "input", what)
	if err != nil {
		return nil, err
	}
	input := make([]FunctionInput, len(rawInput))
	for i, in := range rawInput {
		decoded, err := decodeFunctionInput(in, fmt.Sprintf("%s.input[%d]", what, i))
		if err != nil {
			return nil, err
		}
		input[i] = decoded
	}
	constant, err := getBool(obj, "const", what)
	if err != nil {
		return nil, err
	}
	output, err := decodeType(obj["output"], what+".output")
	if err != nil {
		return nil, err
	}
	stmt, err := decodeStatement(obj["block"], what+".block")
	if err != nil {
		return nil, err
	}
	block, ok := stmt.(*Block)
	if !ok {
		return nil, fmt.Errorf("%s: block is not a block statement", what)
	}
	coreMapping, err := optString(obj, "core_mapping", what)
	if err != nil {
		return nil, err
	}
	sp, err := decodeSpan(obj, what)
	if err != nil {
		return nil, err
	}
	return NewFunction(ident, annotations, input, constant, output, block, coreMapping, sp), nil
}

func decodeAnnotation(v any, what string) (*Annotation, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	name, err := decodeIdentifier(obj["name"], what+".name")
	if err != nil {
		return nil, err
	}
	rawArgs, err := getArray(obj, "arguments", what)
	if err != nil {
		return nil, err
	}
	args := make([]string, len(rawArgs))
	for i, a := range rawArgs {
		s, ok := a.(string)
		if !ok {
			return nil, fmt.Errorf("%s.arguments[%d]: not a string", what, i)
		}
		args[i] = s
	}
	sp, err := decodeSpan(obj, what)
	if err != nil {
		return nil, err
	}
	return NewAnnotation(name, args, sp), nil
}

func decodeType(v any, what string) (Type, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	kind, err := getString(obj, "kind", what)
	if err != nil {
		return nil, err
	}
	switch kind {
	case kindTypePrimitive:
		primitive, err := getString(obj, "primitive", what)
		if err != nil {
			return nil, err
		}
		return &PrimitiveType{Kind: PrimitiveKind(primitive)}, nil
	case kindTypeArray:
		element, err := decodeType(obj["element"], what+".element")
		if err != nil {
			return nil, err
		}
		dims, err := decodeStringArray(obj, "dimensions", what)
		if err != nil {
			return nil, err
		}
		return &ArrayType{Element: element, Dimensions: dims}, nil
	case kindTypeTuple:
		rawElems, err := getArray(obj, "elements", what)
		if err != nil {
			return nil, err
		}
		elems := make([]Type, len(rawElems))
		for i, e := range rawElems {
			elem, err := decodeType(e, fmt.Sprintf("%s.elements[%d]", what, i))
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return &TupleType{Elements: elems}, nil
	case kindTypeNamed:
		name, err := decodeIdentifier(obj["name"], what+".name")
		if err != nil {
			return nil, err
		}
		return &NamedType{Name: name}, nil
	case kindTypeSelf:
		return &SelfType{}, nil
	default:
		return nil, fmt.Errorf("%s: unknown type kind %q", what, kind)
	}
}

func decodeStringArray(obj map[string]any, key, what string) ([]string, error) {
	raw, err := getArray(obj, key, what)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s.%s[%d]: not a string", what, key, i)
		}
		out[i] = s
	}
	return out, nil
}

func decodeStatement(v any, what string) (Statement, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	kind, err := getString(obj, "kind", what)
	if err != nil {
		return nil, err
	}
	sp, err := decodeSpan(obj, what)
	if err != nil {
		return nil, err
	}
	switch kind {
	case kindReturn:
		expr, err := decodeExpression(obj["expression"], what+".expression")
		if err != nil {
			return nil, err
		}
		return NewReturn(expr, sp), nil
	case kindDefinition:
		declare, err := getString(obj, "declare", what)
		if err != nil {
			return nil, err
		}
		rawNames, err := getArray(obj, "variable_names", what)
		if err != nil {
			return nil, err
		}
		names := make([]*VariableName, len(rawNames))
		for i, n := range rawNames {
			name, err := decodeVariableName(n, fmt.Sprintf("%s.variable_names[%d]", what, i))
			if err != nil {
				return nil, err
			}
			names[i] = name
		}
		parened, err := getBool(obj, "parened", what)
		if err != nil {
			return nil, err
		}
		typ, err := decodeType(obj["type"], what+".type")
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(obj["value"], what+".value")
		if err != nil {
			return nil, err
		}
		return NewDefinition(DeclarationType(declare), names, parened, typ, value, sp), nil
	case kindAssign:
		operation, err := getString(obj, "operation", what)
		if err != nil {
			return nil, err
		}
		assignee, err := decodeAssignee(obj["assignee"], what+".assignee")
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(obj["value"], what+".value")
		if err != nil {
			return nil, err
		}
		return NewAssign(AssignOperation(operation), assignee, value, sp), nil
	case kindConditional:
		condition, err := decodeExpression(obj["condition"], what+".condition")
		if err != nil {
			return nil, err
		}
		blockStmt, err := decodeStatement(obj["block"], what+".block")
		if err != nil {
			return nil, err
		}
		block, ok := blockStmt.(*Block)
		if !ok {
			return nil, fmt.Errorf("%s: block is not a block statement", what)
		}
		var next Statement
		if _, ok := obj["next"]; ok {
			next, err = decodeStatement(obj["next"], what+".next")
			if err != nil {
				return nil, err
			}
		}
		return NewConditional(condition, block, next, sp), nil
	case kindIteration:
		variable, err := decodeIdentifier(obj["variable"], what+".variable")
		if err != nil {
			return nil, err
		}
		typ, err := decodeType(obj["type"], what+".type")
		if err != nil {
			return nil, err
		}
		start, err := decodeExpression(obj["start"], what+".start")
		if err != nil {
			return nil, err
		}
		stop, err := decodeExpression(obj["stop"], what+".stop")
		if err != nil {
			return nil, err
		}
		inclusive, err := getBool(obj, "inclusive", what)
		if err != nil {
			return nil, err
		}
		blockStmt, err := decodeStatement(obj["block"], what+".block")
		if err != nil {
			return nil, err
		}
		block, ok := blockStmt.(*Block)
		if !ok {
			return nil, fmt.Errorf("%s: block is not a block statement", what)
		}
		return NewIteration(variable, typ, start, stop, inclusive, block, sp), nil
	case kindConsole:
		function, err := decodeConsoleFunction(obj["function"], what+".function")
		if err != nil {
			return nil, err
		}
		return NewConsole(function, sp), nil
	case kindExeStatement:
		expr, err := decodeExpression(obj["expression"], what+".expression")
		if err != nil {
			return nil, err
		}
		return NewExpressionStatement(expr, sp), nil
	case kindBlock:
		rawStmts, err := getArray(obj, "statements", what)
		if err != nil {
			return nil, err
		}
		stmts := make([]Statement, len(rawStmts))
		for i, s := range rawStmts {
			stmt, err := decodeStatement(s, fmt.Sprintf("%s.statements[%d]", what, i))
			if err != nil {
				return nil, err
			}
			stmts[i] = stmt
		}
		return NewBlock(stmts, sp), nil
	default:
		return nil, fmt.Errorf("%s: unknown statement kind %q", what, kind)
	}
}

func decodeVariableName(v any, what string) (*VariableName, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	mutable, err := getBool(obj, "mutable", what)
	if err != nil {
		return nil, err
	}
	ident, err := decodeIdentifier(obj["identifier"], what+".identifier")
	if err != nil {
		return nil, err
	}
	sp, err := decodeSpan(obj, what)
	if err != nil {
		return nil, err
	}
	return NewVariableName(mutable, ident, sp), nil
}

func decodeAssignee(v any, what string) (*Assignee, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	ident, err := decodeIdentifier(obj["identifier"], what+".identifier")
	if err != nil {
		return nil, err
	}
	rawAccesses, err := getArray(obj, "accesses", what)
	if err != nil {
		return nil, err
	}
	accesses := make([]AssigneeAccess, len(rawAccesses))
	for i, a := range rawAccesses {
		access, err := decodeAssigneeAccess(a, fmt.Sprintf("%s.accesses[%d]", what, i))
		if err != nil {
			return nil, err
		}
		accesses[i] = access
	}
	sp, err := decodeSpan(obj, what)
	if err != nil {
		return nil, err
	}
	return NewAssignee(ident, accesses, sp), nil
}

func decodeAssigneeAccess(v any, what string) (AssigneeAccess, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	kind, err := getString(obj, "kind", what)
	if err != nil {
		return nil, err
	}
	switch kind {
	case kindAccArrayRange:
		var left, right Expression
		if _, ok := obj["left"]; ok {
			left, err = decodeExpression(obj["left"], what+".left")
			if err != nil {
				return nil, err
			}
		}
		if _, ok := obj["right"]; ok {
			right, err = decodeExpression(obj["right"], what+".right")
			if err != nil {
				return nil, err
			}
		}
		return &AssigneeArrayRange{Left: left, Right: right}, nil
	case kindAccArrayIndex:
		index, err := decodeExpression(obj["index"], what+".index")
		if err != nil {
			return nil, err
		}
		return &AssigneeArrayIndex{Index: index}, nil
	case kindAccTuple:
		index, err := getString(obj, "index", what)
		if err != nil {
			return nil, err
		}
		sp, err := decodeSpan(obj, what)
		if err != nil {
			return nil, err
		}
		return NewAssigneeTuple(index, sp), nil
	case kindAccMember:
		name, err := decodeIdentifier(obj["name"], what+".name")
		if err != nil {
			return nil, err
		}
		return &AssigneeMember{Name: name}, nil
	default:
		return nil, fmt.Errorf("%s: unknown assignee access kind %q", what, kind)
	}
}

func decodeConsoleFunction(v any, what string) (ConsoleFunction, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	kind, err := getString(obj, "kind", what)
	if err != nil {
		return nil, err
	}
	switch kind {
	case kindConsoleAssert:
		expr, err := decodeExpression(obj["expression"], what+".expression")
		if err != nil {
			return nil, err
		}
		return &ConsoleAssert{Expression: expr}, nil
	case kindConsoleError:
		args, err := decodeConsoleArgs(obj["args"], what+".args")
		if err != nil {
			return nil, err
		}
		return &ConsoleError{Args: args}, nil
	case kindConsoleLog:
		args, err := decodeConsoleArgs(obj["args"], what+".args")
		if err != nil {
			return nil, err
		}
		return &ConsoleLog{Args: args}, nil
	default:
		return nil, fmt.Errorf("%s: unknown console function kind %q", what, kind)
	}
}

func decodeConsoleArgs(v any, what string) (*ConsoleArgs, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	format, err := getString(obj, "format", what)
	if err != nil {
		return nil, err
	}
	rawParams, err := getArray(obj, "parameters", what)
	if err != nil {
		return nil, err
	}
	params := make([]Expression, len(rawParams))
	for i, p := range rawParams {
		param, err := decodeExpression(p, fmt.Sprintf("%s.parameters[%d]", what, i))
		if err != nil {
			return nil, err
		}
		params[i] = param
	}
	sp, err := decodeSpan(obj, what)
	if err != nil {
		return nil, err
	}
	return NewConsoleArgs([]rune(format), params, sp), nil
}

func decodeIdentifier(v any, what string) (*Identifier, error) {
	expr, err := decodeExpression(v, what)
	if err != nil {
		return nil, err
	}
	ident, ok := expr.(*Identifier)
	if !ok {
		return nil, fmt.Errorf("%s: expected identifier", what)
	}
	return ident, nil
}

func decodeExpression(v any, what string) (Expression, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	kind, err := getString(obj, "kind", what)
	if err != nil {
		return nil, err
	}
	sp, err := decodeSpan(obj, what)
	if err != nil {
		return nil, err
	}
	switch kind {
	case kindIdentifier:
		name, err := getString(obj, "name", what)
		if err != nil {
			return nil, err
		}
		return NewIdentifier(name, sp), nil
	case kindBinary:
		op, err := getString(obj, "op", what)
		if err != nil {
			return nil, err
		}
		left, err := decodeExpression(obj["left"], what+".left")
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(obj["right"], what+".right")
		if err != nil {
			return nil, err
		}
		return NewBinary(left, right, BinaryOp(op), sp), nil
	case kindUnary:
		op, err := getString(obj, "op", what)
		if err != nil {
			return nil, err
		}
		inner, err := decodeExpression(obj["inner"], what+".inner")
		if err != nil {
			return nil, err
		}
		return NewUnary(inner, UnaryOp(op), sp), nil
	case kindTernary:
		condition, err := decodeExpression(obj["condition"], what+".condition")
		if err != nil {
			return nil, err
		}
		ifTrue, err := decodeExpression(obj["if_true"], what+".if_true")
		if err != nil {
			return nil, err
		}
		ifFalse, err := decodeExpression(obj["if_false"], what+".if_false")
		if err != nil {
			return nil, err
		}
		return NewTernary(condition, ifTrue, ifFalse, sp), nil
	case kindCast:
		inner, err := decodeExpression(obj["inner"], what+".inner")
		if err != nil {
			return nil, err
		}
		target, err := decodeType(obj["target_type"], what+".target_type")
		if err != nil {
			return nil, err
		}
		return NewCast(inner, target, sp), nil
	case kindArrayAccess:
		array, err := decodeExpression(obj["array"], what+".array")
		if err != nil {
			return nil, err
		}
		index, err := decodeExpression(obj["index"], what+".index")
		if err != nil {
			return nil, err
		}
		return NewArrayAccess(array, index, sp), nil
	case kindArrayRangeAccess:
		array, err := decodeExpression(obj["array"], what+".array")
		if err != nil {
			return nil, err
		}
		var left, right Expression
		if _, ok := obj["left"]; ok {
			left, err = decodeExpression(obj["left"], what+".left")
			if err != nil {
				return nil, err
			}
		}
		if _, ok := obj["right"]; ok {
			right, err = decodeExpression(obj["right"], what+".right")
			if err != nil {
				return nil, err
			}
		}
		return NewArrayRangeAccess(array, left, right, sp), nil
	case kindMemberAccess:
		inner, err := decodeExpression(obj["inner"], what+".inner")
		if err != nil {
			return nil, err
		}
		name, err := decodeIdentifier(obj["name"], what+".name")
		if err != nil {
			return nil, err
		}
		var typ Type
		if _, ok := obj["type"]; ok {
			typ, err = decodeType(obj["type"], what+".type")
			if err != nil {
				return nil, err
			}
		}
		return NewMemberAccess(inner, name, typ, sp), nil
	case kindTupleAccess:
		tuple, err := decodeExpression(obj["tuple"], what+".tuple")
		if err != nil {
			return nil, err
		}
		index, err := getString(obj, "index", what)
		if err != nil {
			return nil, err
		}
		return NewTupleAccess(tuple, index, sp), nil
	case kindStaticAccess:
		inner, err := decodeExpression(obj["inner"], what+".inner")
		if err != nil {
			return nil, err
		}
		name, err := decodeIdentifier(obj["name"], what+".name")
		if err != nil {
			return nil, err
		}
		cell := NewTypeCell(nil)
		if _, ok := obj["type"]; ok {
			typ, err := decodeType(obj["type"], what+".type")
			if err != nil {
				return nil, err
			}
			cell.Set(typ)
		}
		return NewStaticAccess(inner, name, cell, sp), nil
	case kindArrayInline:
		rawElems, err := getArray(obj, "elements", what)
		if err != nil {
			return nil, err
		}
		elems := make([]SpreadOrExpression, len(rawElems))
		for i, e := range rawElems {
			elemWhat := fmt.Sprintf("%s.elements[%d]", what, i)
			elemObj, err := asObject(e, elemWhat)
			if err != nil {
				return nil, err
			}
			spread, err := getBool(elemObj, "spread", elemWhat)
			if err != nil {
				return nil, err
			}
			expr, err := decodeExpression(elemObj["expression"], elemWhat+".expression")
			if err != nil {
				return nil, err
			}
			elems[i] = SpreadOrExpression{Spread: spread, Expression: expr}
		}
		return NewArrayInline(elems, sp), nil
	case kindArrayInit:
		element, err := decodeExpression(obj["element"], what+".element")
		if err != nil {
			return nil, err
		}
		dims, err := decodeStringArray(obj, "dimensions", what)
		if err != nil {
			return nil, err
		}
		return NewArrayInit(element, dims, sp), nil
	case kindTupleInit:
		rawElems, err := getArray(obj, "elements", what)
		if err != nil {
			return nil, err
		}
		elems := make([]Expression, len(rawElems))
		for i, e := range rawElems {
			elem, err := decodeExpression(e, fmt.Sprintf("%s.elements[%d]", what, i))
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return NewTupleInit(elems, sp), nil
	case kindCircuitInit:
		name, err := decodeIdentifier(obj["name"], what+".name")
		if err != nil {
			return nil, err
		}
		rawMembers, err := getArray(obj, "members", what)
		if err != nil {
			return nil, err
		}
		members := make([]*CircuitVariableInitializer, len(rawMembers))
		for i, m := range rawMembers {
			memberWhat := fmt.Sprintf("%s.members[%d]", what, i)
			memberObj, err := asObject(m, memberWhat)
			if err != nil {
				return nil, err
			}
			ident, err := decodeIdentifier(memberObj["identifier"], memberWhat+".identifier")
			if err != nil {
				return nil, err
			}
			var expr Expression
			if _, ok := memberObj["expression"]; ok {
				expr, err = decodeExpression(memberObj["expression"], memberWhat+".expression")
				if err != nil {
					return nil, err
				}
			}
			members[i] = &CircuitVariableInitializer{Identifier: ident, Expression: expr}
		}
		return NewCircuitInit(name, members, sp), nil
	case kindCall:
		function, err := decodeExpression(obj["function"], what+".function")
		if err != nil {
			return nil, err
		}
		rawArgs, err := getArray(obj, "arguments", what)
		if err != nil {
			return nil, err
		}
		args := make([]Expression, len(rawArgs))
		for i, a := range rawArgs {
			arg, err := decodeExpression(a, fmt.Sprintf("%s.arguments[%d]", what, i))
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return NewCall(function, args, sp), nil
	case kindAddress:
		value, err := getString(obj, "value", what)
		if err != nil {
			return nil, err
		}
		return NewAddressValue(value, sp), nil
	case kindBoolean:
		value, err := getBool(obj, "value", what)
		if err != nil {
			return nil, err
		}
		return NewBooleanValue(value, sp), nil
	case kindChar:
		value, err := getString(obj, "value", what)
		if err != nil {
			return nil, err
		}
		runes := []rune(value)
		if len(runes) != 1 {
			return nil, fmt.Errorf("%s: char literal must be exactly one character", what)
		}
		return NewCharValue(runes[0], sp), nil
	case kindField:
		value, err := getString(obj, "value", what)
		if err != nil {
			return nil, err
		}
		return NewFieldValue(value, sp), nil
	case kindImplicit:
		value, err := getString(obj, "value", what)
		if err != nil {
			return nil, err
		}
		return NewImplicitValue(value, sp), nil
	case kindInteger:
		intKind, err := getString(obj, "int_kind", what)
		if err != nil {
			return nil, err
		}
		if !PrimitiveKind(intKind).IsInteger() {
			return nil, fmt.Errorf("%s: %q is not an integer kind", what, intKind)
		}
		value, err := getString(obj, "value", what)
		if err != nil {
			return nil, err
		}
		return NewIntegerValue(PrimitiveKind(intKind), value, sp), nil
	case kindString:
		value, err := getString(obj, "value", what)
		if err != nil {
			return nil, err
		}
		return NewStringValue([]rune(value), sp), nil
	case kindGroupSingle:
		value, err := getString(obj, "value", what)
		if err != nil {
			return nil, err
		}
		return NewSingleGroupValue(value, sp), nil
	case kindGroupTuple:
		x, err := decodeGroupCoordinate(obj["x"], what+".x")
		if err != nil {
			return nil, err
		}
		y, err := decodeGroupCoordinate(obj["y"], what+".y")
		if err != nil {
			return nil, err
		}
		return NewGroupTuple(x, y, sp), nil
	default:
		return nil, fmt.Errorf("%s: unknown expression kind %q", what, kind)
	}
}

func decodeGroupCoordinate(v any, what string) (GroupCoordinate, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return GroupCoordinate{}, err
	}
	kind, err := getString(obj, "kind", what)
	if err != nil {
		return GroupCoordinate{}, err
	}
	coord := GroupCoordinate{Kind: GroupCoordinateKind(kind)}
	if coord.Kind == GroupCoordNumber {
		number, err := getString(obj, "number", what)
		if err != nil {
			return GroupCoordinate{}, err
		}
		coord.Number = number
	}
	return coord, nil
}
