package ast

import (
	"github.com/lumen-lang/lumen/internal/span"
)

// Kind tags used by the document encoding. Every node object carries a
// "kind" field; decode.go dispatches on the same constants.
const (
	kindIdentifier       = "identifier"
	kindBinary           = "binary"
	kindUnary            = "unary"
	kindTernary          = "ternary"
	kindCast             = "cast"
	kindArrayAccess      = "array_access"
	kindArrayRangeAccess = "array_range_access"
	kindMemberAccess     = "member_access"
	kindTupleAccess      = "tuple_access"
	kindStaticAccess     = "static_access"
	kindArrayInline      = "array_inline"
	kindArrayInit        = "array_init"
	kindTupleInit        = "tuple_init"
	kindCircuitInit      = "circuit_init"
	kindCall             = "call"

	kindAddress     = "address"
	kindBoolean     = "boolean"
	kindChar        = "char"
	kindField       = "field"
	kindImplicit    = "implicit"
	kindInteger     = "integer"
	kindString      = "string"
	kindGroupSingle = "group_single"
	kindGroupTuple  = "group_tuple"

	kindReturn        = "return"
	kindDefinition    = "definition"
	kindAssign        = "assign"
	kindConditional   = "conditional"
	kindIteration     = "iteration"
	kindConsole       = "console"
	kindExeStatement  = "expression_statement"
	kindBlock         = "block"
	kindAccArrayRange = "array_range"
	kindAccArrayIndex = "array_index"
	kindAccTuple      = "tuple"
	kindAccMember     = "member"
	kindConsoleAssert = "assert"
	kindConsoleError  = "error"
	kindConsoleLog    = "log"

	kindTypePrimitive = "primitive"
	kindTypeArray     = "array"
	kindTypeTuple     = "tuple"
	kindTypeNamed     = "named"
	kindTypeSelf      = "self"

	kindInputVariable  = "variable"
	kindInputKeyword   = "input_keyword"
	kindInputSelf      = "self"
	kindInputMutSelf   = "mut_self"
	kindInputConstSelf = "const_self"

	kindImportLeaf   = "leaf"
	kindImportGlob   = "glob"
	kindImportNested = "nested"
)

func encodeSpan(sp span.Span) map[string]any {
	obj := map[string]any{
		"start": int64(sp.Start),
		"end":   int64(sp.End),
	}
	if sp.Path != "" {
		obj["path"] = sp.Path
	}
	return obj
}

func encodeProgram(p *Program) map[string]any {
	expected := make([]any, len(p.ExpectedInput))
	for i, in := range p.ExpectedInput {
		expected[i] = encodeFunctionInput(in)
	}
	importStmts := make([]any, len(p.ImportStatements))
	for i, stmt := range p.ImportStatements {
		importStmts[i] = encodeImportStatement(stmt)
	}

	imports := make([]any, 0, p.Imports.Len())
	p.Imports.Range(func(path string, prog *Program) bool {
		imports = append(imports, map[string]any{"path": path, "program": encodeProgram(prog)})
		return true
	})
	aliases := make([]any, 0, p.Aliases.Len())
	p.Aliases.Range(func(name string, alias *Alias) bool {
		aliases = append(aliases, map[string]any{"name": name, "alias": encodeAlias(alias)})
		return true
	})
	circuits := make([]any, 0, p.Circuits.Len())
	p.Circuits.Range(func(name string, circuit *Circuit) bool {
		circuits = append(circuits, map[string]any{"name": name, "circuit": encodeCircuit(circuit)})
		return true
	})
	functions := make([]any, 0, p.Functions.Len())
	p.Functions.Range(func(name string, function *Function) bool {
		functions = append(functions, map[string]any{"name": name, "function": encodeFunction(function)})
		return true
	})
	globalConsts := make([]any, 0, p.GlobalConsts.Len())
	p.GlobalConsts.Range(func(names string, def *DefinitionStatement) bool {
		globalConsts = append(globalConsts, map[string]any{"names": names, "definition": encodeStatement(def)})
		return true
	})

	return map[string]any{
		"name":              p.Name,
		"expected_input":    expected,
		"import_statements": importStmts,
		"imports":           imports,
		"aliases":           aliases,
		"circuits":          circuits,
		"functions":         functions,
		"global_consts":     globalConsts,
	}
}

func encodeFunctionInput(in FunctionInput) map[string]any {
	switch v := in.(type) {
	case *FunctionInputVariable:
		return map[string]any{
			"kind":       kindInputVariable,
			"identifier": encodeExpression(v.Identifier),
			"const":      v.Const,
			"mutable":    v.Mutable,
			"type":       encodeType(v.Type),
			"span":       encodeSpan(v.Span()),
		}
	case *InputKeyword:
		return map[string]any{"kind": kindInputKeyword, "span": encodeSpan(v.Span())}
	case *SelfKeyword:
		return map[string]any{"kind": kindInputSelf, "span": encodeSpan(v.Span())}
	case *MutSelfKeyword:
		return map[string]any{"kind": kindInputMutSelf, "span": encodeSpan(v.Span())}
	case *ConstSelfKeyword:
		return map[string]any{"kind": kindInputConstSelf, "span": encodeSpan(v.Span())}
	default:
		return nil
	}
}

func encodeImportStatement(stmt *ImportStatement) map[string]any {
	return map[string]any{
		"tree": encodeImportTree(stmt.Tree),
		"span": encodeSpan(stmt.Span()),
	}
}

func encodeImportTree(tree ImportTree) map[string]any {
	switch v := tree.(type) {
	case *ImportLeaf:
		obj := map[string]any{
			"kind":   kindImportLeaf,
			"symbol": v.Symbol,
			"span":   encodeSpan(v.Span()),
		}
		if v.Alias != "" {
			obj["alias"] = v.Alias
		}
		return obj
	case *ImportGlob:
		return map[string]any{"kind": kindImportGlob, "span": encodeSpan(v.Span())}
	case *ImportNested:
		trees := make([]any, len(v.Trees))
		for i, sub := range v.Trees {
			trees[i] = encodeImportTree(sub)
		}
		return map[string]any{
			"kind":   kindImportNested,
			"prefix": v.Prefix,
			"trees":  trees,
			"span":   encodeSpan(v.Span()),
		}
	default:
		return nil
	}
}

func encodeAlias(a *Alias) map[string]any {
	return map[string]any{
		"name":       encodeExpression(a.Name),
		"represents": encodeType(a.Represents),
		"span":       encodeSpan(a.Span()),
	}
}

func encodeCircuit(c *Circuit) map[string]any {
	members := make([]any, len(c.Members))
	for i, m := range c.Members {
		members[i] = encodeCircuitMember(m)
	}
	return map[string]any{
		"name":    encodeExpression(c.Name),
		"members": members,
	}
}

func encodeCircuitMember(m CircuitMember) map[string]any {
	switch v := m.(type) {
	case *CircuitVariable:
		return map[string]any{
			"kind":       kindInputVariable,
			"identifier": encodeExpression(v.Identifier),
			"type":       encodeType(v.Type),
		}
	case *CircuitFunction:
		return map[string]any{
			"kind":     "function",
			"function": encodeFunction(v.Function),
		}
	default:
		return nil
	}
}

func encodeFunction(f *Function) map[string]any {
	annotations := make([]any, 0, f.Annotations.Len())
	f.Annotations.Range(func(name string, a *Annotation) bool {
		annotations = append(annotations, map[string]any{"name": name, "annotation": encodeAnnotation(a)})
		return true
	})
	input := make([]any, len(f.Input))
	for i, in := range f.Input {
		input[i] = encodeFunctionInput(in)
	}
	obj := map[string]any{
		"identifier":  encodeExpression(f.Identifier),
		"annotations": annotations,
		"input":       input,
		"const":       f.Const,
		"output":      encodeType(f.Output),
		"block":       encodeStatement(f.Block),
		"span":        encodeSpan(f.Span()),
	}
	if f.CoreMapping != "" {
		obj["core_mapping"] = f.CoreMapping
	}
	return obj
}

func encodeAnnotation(a *Annotation) map[string]any {
	args := make([]any, len(a.Arguments))
	for i, arg := range a.Arguments {
		args[i] = arg
	}
	return map[string]any{
		"name":      encodeExpression(a.Name),
		"arguments": args,
		"span":      encodeSpan(a.Span()),
	}
}

func encodeType(t Type) map[string]any {
	switch v := t.(type) {
	case *PrimitiveType:
		return map[string]any{"kind": kindTypePrimitive, "primitive": string(v.Kind)}
	case *ArrayType:
		dims := make([]any, len(v.Dimensions))
		for i, d := range v.Dimensions {
			dims[i] = d
		}
		return map[string]any{
			"kind":       kindTypeArray,
			"element":    encodeType(v.Element),
			"dimensions": dims,
		}
	case *TupleType:
		elems := make([]any, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = encodeType(e)
		}
		return map[string]any{"kind": kindTypeTuple, "elements": elems}
	case *NamedType:
		return map[string]any{"kind": kindTypeNamed, "name": encodeExpression(v.Name)}
	case *SelfType:
		return map[string]any{"kind": kindTypeSelf}
	default:
		return nil
	}
}

func encodeStatement(s Statement) map[string]any {
	switch v := s.(type) {
	case *ReturnStatement:
		return map[string]any{
			"kind":       kindReturn,
			"expression": encodeExpression(v.Expression),
			"span":       encodeSpan(v.Span()),
		}
	case *DefinitionStatement:
		names := make([]any, len(v.VariableNames))
		for i, n := range v.VariableNames {
			names[i] = encodeVariableName(n)
		}
		return map[string]any{
			"kind":           kindDefinition,
			"declare":        string(v.Declare),
			"variable_names": names,
			"parened":        v.Parened,
			"type":           encodeType(v.Type),
			"value":          encodeExpression(v.Value),
			"span":           encodeSpan(v.Span()),
		}
	case *AssignStatement:
		return map[string]any{
			"kind":      kindAssign,
			"operation": string(v.Operation),
			"assignee":  encodeAssignee(v.Assignee),
			"value":     encodeExpression(v.Value),
			"span":      encodeSpan(v.Span()),
		}
	case *ConditionalStatement:
		obj := map[string]any{
			"kind":      kindConditional,
			"condition": encodeExpression(v.Condition),
			"block":     encodeStatement(v.Block),
			"span":      encodeSpan(v.Span()),
		}
		if v.Next != nil {
			obj["next"] = encodeStatement(v.Next)
		}
		return obj
	case *IterationStatement:
		return map[string]any{
			"kind":      kindIteration,
			"variable":  encodeExpression(v.Variable),
			"type":      encodeType(v.Type),
			"start":     encodeExpression(v.Start),
			"stop":      encodeExpression(v.Stop),
			"inclusive": v.Inclusive,
			"block":     encodeStatement(v.Block),
			"span":      encodeSpan(v.Span()),
		}
	case *ConsoleStatement:
		return map[string]any{
			"kind":     kindConsole,
			"function": encodeConsoleFunction(v.Function),
			"span":     encodeSpan(v.Span()),
		}
	case *ExpressionStatement:
		return map[string]any{
			"kind":       kindExeStatement,
			"expression": encodeExpression(v.Expression),
			"span":       encodeSpan(v.Span()),
		}
	case *Block:
		stmts := make([]any, len(v.Statements))
		for i, stmt := range v.Statements {
			stmts[i] = encodeStatement(stmt)
		}
		return map[string]any{
			"kind":       kindBlock,
			"statements": stmts,
			"span":       encodeSpan(v.Span()),
		}
	default:
		return nil
	}
}

func encodeVariableName(v *VariableName) map[string]any {
	return map[string]any{
		"mutable":    v.Mutable,
		"identifier": encodeExpression(v.Identifier),
		"span":       encodeSpan(v.Span()),
	}
}

func encodeAssignee(a *Assignee) map[string]any {
	accesses := make([]any, len(a.Accesses))
	for i, acc := range a.Accesses {
		accesses[i] = encodeAssigneeAccess(acc)
	}
	return map[string]any{
		"identifier": encodeExpression(a.Identifier),
		"accesses":   accesses,
		"span":       encodeSpan(a.Span()),
	}
}

func encodeAssigneeAccess(acc AssigneeAccess) map[string]any {
	switch v := acc.(type) {
	case *AssigneeArrayRange:
		obj := map[string]any{"kind": kindAccArrayRange}
		if v.Left != nil {
			obj["left"] = encodeExpression(v.Left)
		}
		if v.Right != nil {
			obj["right"] = encodeExpression(v.Right)
		}
		return obj
	case *AssigneeArrayIndex:
		return map[string]any{"kind": kindAccArrayIndex, "index": encodeExpression(v.Index)}
	case *AssigneeTuple:
		return map[string]any{"kind": kindAccTuple, "index": v.Index, "span": encodeSpan(v.Span())}
	case *AssigneeMember:
		return map[string]any{"kind": kindAccMember, "name": encodeExpression(v.Name)}
	default:
		return nil
	}
}

func encodeConsoleFunction(fn ConsoleFunction) map[string]any {
	switch v := fn.(type) {
	case *ConsoleAssert:
		return map[string]any{"kind": kindConsoleAssert, "expression": encodeExpression(v.Expression)}
	case *ConsoleError:
		return map[string]any{"kind": kindConsoleError, "args": encodeConsoleArgs(v.Args)}
	case *ConsoleLog:
		return map[string]any{"kind": kindConsoleLog, "args": encodeConsoleArgs(v.Args)}
	default:
		return nil
	}
}

func encodeConsoleArgs(args *ConsoleArgs) map[string]any {
	params := make([]any, len(args.Parameters))
	for i, p := range args.Parameters {
		params[i] = encodeExpression(p)
	}
	return map[string]any{
		"format":     string(args.Format),
		"parameters": params,
		"span":       encodeSpan(args.Span()),
	}
}

func encodeExpression(e Expression) map[string]any {
	switch v := e.(type) {
	case *Identifier:
		return map[string]any{
			"kind": kindIdentifier,
			"name": v.Name,
			"span": encodeSpan(v.Span()),
		}
	case *BinaryExpression:
		return map[string]any{
			"kind":  kindBinary,
			"op":    string(v.Op),
			"left":  encodeExpression(v.Left),
			"right": encodeExpression(v.Right),
			"span":  encodeSpan(v.Span()),
		}
	case *UnaryExpression:
		return map[string]any{
			"kind":  kindUnary,
			"op":    string(v.Op),
			"inner": encodeExpression(v.Inner),
			"span":  encodeSpan(v.Span()),
		}
	case *TernaryExpression:
		return map[string]any{
			"kind":      kindTernary,
			"condition": encodeExpression(v.Condition),
			"if_true":   encodeExpression(v.IfTrue),
			"if_false":  encodeExpression(v.IfFalse),
			"span":      encodeSpan(v.Span()),
		}
	case *CastExpression:
		return map[string]any{
			"kind":        kindCast,
			"inner":       encodeExpression(v.Inner),
			"target_type": encodeType(v.TargetType),
			"span":        encodeSpan(v.Span()),
		}
	case *ArrayAccess:
		return map[string]any{
			"kind":  kindArrayAccess,
			"array": encodeExpression(v.Array),
			"index": encodeExpression(v.Index),
			"span":  encodeSpan(v.Span()),
		}
	case *ArrayRangeAccess:
		obj := map[string]any{
			"kind":  kindArrayRangeAccess,
			"array": encodeExpression(v.Array),
			"span":  encodeSpan(v.Span()),
		}
		if v.Left != nil {
			obj["left"] = encodeExpression(v.Left)
		}
		if v.Right != nil {
			obj["right"] = encodeExpression(v.Right)
		}
		return obj
	case *MemberAccess:
		obj := map[string]any{
			"kind":  kindMemberAccess,
			"inner": encodeExpression(v.Inner),
			"name":  encodeExpression(v.Name),
			"span":  encodeSpan(v.Span()),
		}
		if v.Type != nil {
			obj["type"] = encodeType(v.Type)
		}
		return obj
	case *TupleAccess:
		return map[string]any{
			"kind":  kindTupleAccess,
			"tuple": encodeExpression(v.Tuple),
			"index": v.Index,
			"span":  encodeSpan(v.Span()),
		}
	case *StaticAccess:
		obj := map[string]any{
			"kind":  kindStaticAccess,
			"inner": encodeExpression(v.Inner),
			"name":  encodeExpression(v.Name),
			"span":  encodeSpan(v.Span()),
		}
		if v.Type != nil && v.Type.Get() != nil {
			obj["type"] = encodeType(v.Type.Get())
		}
		return obj
	case *ArrayInlineExpression:
		elems := make([]any, len(v.Elements))
		for i, el := range v.Elements {
			elems[i] = map[string]any{
				"spread":     el.Spread,
				"expression": encodeExpression(el.Expression),
			}
		}
		return map[string]any{
			"kind":     kindArrayInline,
			"elements": elems,
			"span":     encodeSpan(v.Span()),
		}
	case *ArrayInitExpression:
		dims := make([]any, len(v.Dimensions))
		for i, d := range v.Dimensions {
			dims[i] = d
		}
		return map[string]any{
			"kind":       kindArrayInit,
			"element":    encodeExpression(v.Element),
			"dimensions": dims,
			"span":       encodeSpan(v.Span()),
		}
	case *TupleInitExpression:
		elems := make([]any, len(v.Elements))
		for i, el := range v.Elements {
			elems[i] = encodeExpression(el)
		}
		return map[string]any{
			"kind":     kindTupleInit,
			"elements": elems,
			"span":     encodeSpan(v.Span()),
		}
	case *CircuitInitExpression:
		members := make([]any, len(v.Members))
		for i, m := range v.Members {
			member := map[string]any{"identifier": encodeExpression(m.Identifier)}
			if m.Expression != nil {
				member["expression"] = encodeExpression(m.Expression)
			}
			members[i] = member
		}
		return map[string]any{
			"kind":    kindCircuitInit,
			"name":    encodeExpression(v.Name),
			"members": members,
			"span":    encodeSpan(v.Span()),
		}
	case *CallExpression:
		args := make([]any, len(v.Arguments))
		for i, a := range v.Arguments {
			args[i] = encodeExpression(a)
		}
		return map[string]any{
			"kind":      kindCall,
			"function":  encodeExpression(v.Function),
			"arguments": args,
			"span":      encodeSpan(v.Span()),
		}
	case *AddressValue:
		return map[string]any{"kind": kindAddress, "value": v.Value, "span": encodeSpan(v.Span())}
	case *BooleanValue:
		return map[string]any{"kind": kindBoolean, "value": v.Value, "span": encodeSpan(v.Span())}
	case *CharValue:
		return map[string]any{"kind": kindChar, "value": string(v.Value), "span": encodeSpan(v.Span())}
	case *FieldValue:
		return map[string]any{"kind": kindField, "value": v.Value, "span": encodeSpan(v.Span())}
	case *ImplicitValue:
		return map[string]any{"kind": kindImplicit, "value": v.Value, "span": encodeSpan(v.Span())}
	case *IntegerValue:
		return map[string]any{
			"kind":     kindInteger,
			"int_kind": string(v.Kind),
			"value":    v.Value,
			"span":     encodeSpan(v.Span()),
		}
	case *StringValue:
		return map[string]any{"kind": kindString, "value": string(v.Value), "span": encodeSpan(v.Span())}
	case *SingleGroupValue:
		return map[string]any{"kind": kindGroupSingle, "value": v.Value, "span": encodeSpan(v.Span())}
	case *GroupTuple:
		return map[string]any{
			"kind": kindGroupTuple,
			"x":    encodeGroupCoordinate(v.X),
			"y":    encodeGroupCoordinate(v.Y),
			"span": encodeSpan(v.Span()),
		}
	default:
		return nil
	}
}

func encodeGroupCoordinate(c GroupCoordinate) map[string]any {
	obj := map[string]any{"kind": string(c.Kind)}
	if c.Kind == GroupCoordNumber {
		obj["number"] = c.Number
	}
	return obj
}
