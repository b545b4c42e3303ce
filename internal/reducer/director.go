package reducer

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/ordered"
	"github.com/lumen-lang/lumen/internal/span"
)

// Reduce walks program bottom-up through r and returns the rebuilt root.
// The input tree is never mutated; on failure no partial tree is returned.
func Reduce(program *ast.Program, r Reducer) (*ast.Program, error) {
	return NewDirector(r).ReduceProgram(program)
}

// Director drives a Reducer over a tree in post-order: every child is
// reduced left-to-right in declaration order before its parent's hook runs,
// and the first failure short-circuits the remaining siblings and every
// enclosing reduction.
//
// A Director is single-threaded and carries no state of its own; the only
// traversal state lives in the Reducer.
type Director struct {
	reducer Reducer
}

// NewDirector wraps r in a traversal driver.
func NewDirector(r Reducer) *Director {
	return &Director{reducer: r}
}

// ReduceType reduces a type in the context of the node spanning sp. Types
// carry no span of their own, so the enclosing node's span is threaded
// through for error attribution.
func (d *Director) ReduceType(t ast.Type, sp span.Span) (ast.Type, error) {
	var rebuilt ast.Type
	switch typ := t.(type) {
	case *ast.ArrayType:
		element, err := d.ReduceType(typ.Element, sp)
		if err != nil {
			return nil, err
		}
		rebuilt = &ast.ArrayType{Element: element, Dimensions: typ.Dimensions}
	case *ast.TupleType:
		elements := make([]ast.Type, len(typ.Elements))
		for i, elem := range typ.Elements {
			reduced, err := d.ReduceType(elem, sp)
			if err != nil {
				return nil, err
			}
			elements[i] = reduced
		}
		rebuilt = &ast.TupleType{Elements: elements}
	case *ast.NamedType:
		name, err := d.reducer.ReduceIdentifier(typ.Name)
		if err != nil {
			return nil, err
		}
		rebuilt = &ast.NamedType{Name: name}
	case *ast.PrimitiveType:
		rebuilt = &ast.PrimitiveType{Kind: typ.Kind}
	case *ast.SelfType:
		rebuilt = &ast.SelfType{}
	}
	return d.reducer.ReduceType(t, rebuilt, sp)
}

// ReduceExpression reduces an expression subtree.
func (d *Director) ReduceExpression(e ast.Expression) (ast.Expression, error) {
	var rebuilt ast.Expression
	switch expr := e.(type) {
	case *ast.Identifier:
		identifier, err := d.reducer.ReduceIdentifier(expr)
		if err != nil {
			return nil, err
		}
		rebuilt = identifier
	case ast.ValueExpression:
		value, err := d.ReduceValue(expr)
		if err != nil {
			return nil, err
		}
		rebuilt = value
	case *ast.BinaryExpression:
		left, err := d.ReduceExpression(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := d.ReduceExpression(expr.Right)
		if err != nil {
			return nil, err
		}
		binary, err := d.reducer.ReduceBinary(expr, left, right, expr.Op)
		if err != nil {
			return nil, err
		}
		rebuilt = binary
	case *ast.UnaryExpression:
		inner, err := d.ReduceExpression(expr.Inner)
		if err != nil {
			return nil, err
		}
		unary, err := d.reducer.ReduceUnary(expr, inner, expr.Op)
		if err != nil {
			return nil, err
		}
		rebuilt = unary
	case *ast.TernaryExpression:
		condition, err := d.ReduceExpression(expr.Condition)
		if err != nil {
			return nil, err
		}
		ifTrue, err := d.ReduceExpression(expr.IfTrue)
		if err != nil {
			return nil, err
		}
		ifFalse, err := d.ReduceExpression(expr.IfFalse)
		if err != nil {
			return nil, err
		}
		ternary, err := d.reducer.ReduceTernary(expr, condition, ifTrue, ifFalse)
		if err != nil {
			return nil, err
		}
		rebuilt = ternary
	case *ast.CastExpression:
		inner, err := d.ReduceExpression(expr.Inner)
		if err != nil {
			return nil, err
		}
		targetType, err := d.ReduceType(expr.TargetType, expr.Span())
		if err != nil {
			return nil, err
		}
		cast, err := d.reducer.ReduceCast(expr, inner, targetType)
		if err != nil {
			return nil, err
		}
		rebuilt = cast
	case *ast.ArrayAccess:
		array, err := d.ReduceExpression(expr.Array)
		if err != nil {
			return nil, err
		}
		index, err := d.ReduceExpression(expr.Index)
		if err != nil {
			return nil, err
		}
		access, err := d.reducer.ReduceArrayAccess(expr, array, index)
		if err != nil {
			return nil, err
		}
		rebuilt = access
	case *ast.ArrayRangeAccess:
		array, err := d.ReduceExpression(expr.Array)
		if err != nil {
			return nil, err
		}
		var left, right ast.Expression
		if expr.Left != nil {
			left, err = d.ReduceExpression(expr.Left)
			if err != nil {
				return nil, err
			}
		}
		if expr.Right != nil {
			right, err = d.ReduceExpression(expr.Right)
			if err != nil {
				return nil, err
			}
		}
		access, err := d.reducer.ReduceArrayRangeAccess(expr, array, left, right)
		if err != nil {
			return nil, err
		}
		rebuilt = access
	case *ast.MemberAccess:
		inner, err := d.ReduceExpression(expr.Inner)
		if err != nil {
			return nil, err
		}
		name, err := d.reducer.ReduceIdentifier(expr.Name)
		if err != nil {
			return nil, err
		}
		var typ ast.Type
		if expr.Type != nil {
			typ, err = d.ReduceType(expr.Type, expr.Span())
			if err != nil {
				return nil, err
			}
		}
		access, err := d.reducer.ReduceMemberAccess(expr, inner, name, typ)
		if err != nil {
			return nil, err
		}
		rebuilt = access
	case *ast.TupleAccess:
		tuple, err := d.ReduceExpression(expr.Tuple)
		if err != nil {
			return nil, err
		}
		access, err := d.reducer.ReduceTupleAccess(expr, tuple)
		if err != nil {
			return nil, err
		}
		rebuilt = access
	case *ast.StaticAccess:
		inner, err := d.ReduceExpression(expr.Inner)
		if err != nil {
			return nil, err
		}
		var typ ast.Type
		if expr.Type != nil && expr.Type.Get() != nil {
			typ, err = d.ReduceType(expr.Type.Get(), expr.Span())
			if err != nil {
				return nil, err
			}
		}
		name, err := d.reducer.ReduceIdentifier(expr.Name)
		if err != nil {
			return nil, err
		}
		access, err := d.reducer.ReduceStaticAccess(expr, inner, typ, name)
		if err != nil {
			return nil, err
		}
		rebuilt = access
	case *ast.ArrayInlineExpression:
		elements := make([]ast.SpreadOrExpression, len(expr.Elements))
		for i, elem := range expr.Elements {
			reduced, err := d.ReduceExpression(elem.Expression)
			if err != nil {
				return nil, err
			}
			elements[i] = ast.SpreadOrExpression{Spread: elem.Spread, Expression: reduced}
		}
		inline, err := d.reducer.ReduceArrayInline(expr, elements)
		if err != nil {
			return nil, err
		}
		rebuilt = inline
	case *ast.ArrayInitExpression:
		element, err := d.ReduceExpression(expr.Element)
		if err != nil {
			return nil, err
		}
		init, err := d.reducer.ReduceArrayInit(expr, element)
		if err != nil {
			return nil, err
		}
		rebuilt = init
	case *ast.TupleInitExpression:
		elements := make([]ast.Expression, len(expr.Elements))
		for i, elem := range expr.Elements {
			reduced, err := d.ReduceExpression(elem)
			if err != nil {
				return nil, err
			}
			elements[i] = reduced
		}
		init, err := d.reducer.ReduceTupleInit(expr, elements)
		if err != nil {
			return nil, err
		}
		rebuilt = init
	case *ast.CircuitInitExpression:
		name, err := d.reducer.ReduceIdentifier(expr.Name)
		if err != nil {
			return nil, err
		}
		members := make([]*ast.CircuitVariableInitializer, len(expr.Members))
		for i, member := range expr.Members {
			reduced, err := d.ReduceCircuitVariableInitializer(member)
			if err != nil {
				return nil, err
			}
			members[i] = reduced
		}
		init, err := d.reducer.ReduceCircuitInit(expr, name, members)
		if err != nil {
			return nil, err
		}
		rebuilt = init
	case *ast.CallExpression:
		function, err := d.ReduceExpression(expr.Function)
		if err != nil {
			return nil, err
		}
		arguments := make([]ast.Expression, len(expr.Arguments))
		for i, arg := range expr.Arguments {
			reduced, err := d.ReduceExpression(arg)
			if err != nil {
				return nil, err
			}
			arguments[i] = reduced
		}
		call, err := d.reducer.ReduceCall(expr, function, arguments)
		if err != nil {
			return nil, err
		}
		rebuilt = call
	}
	return d.reducer.ReduceExpression(e, rebuilt)
}

// ReduceValue reduces a literal. String literals fold through ReduceString;
// group literals route through the group hooks; the remaining scalar kinds
// are copied and offered to the summary hook.
func (d *Director) ReduceValue(v ast.ValueExpression) (ast.Expression, error) {
	var rebuilt ast.Expression
	switch value := v.(type) {
	case ast.GroupValue:
		group, err := d.ReduceGroupValue(value)
		if err != nil {
			return nil, err
		}
		rebuilt = group
	case *ast.StringValue:
		folded, err := d.reducer.ReduceString(value.Value, value.Span())
		if err != nil {
			return nil, err
		}
		rebuilt = folded
	case *ast.AddressValue:
		rebuilt = ast.NewAddressValue(value.Value, value.Span())
	case *ast.BooleanValue:
		rebuilt = ast.NewBooleanValue(value.Value, value.Span())
	case *ast.CharValue:
		rebuilt = ast.NewCharValue(value.Value, value.Span())
	case *ast.FieldValue:
		rebuilt = ast.NewFieldValue(value.Value, value.Span())
	case *ast.ImplicitValue:
		rebuilt = ast.NewImplicitValue(value.Value, value.Span())
	case *ast.IntegerValue:
		rebuilt = ast.NewIntegerValue(value.Kind, value.Value, value.Span())
	}
	return d.reducer.ReduceValue(v, rebuilt)
}

// ReduceGroupValue reduces a group literal.
func (d *Director) ReduceGroupValue(v ast.GroupValue) (ast.GroupValue, error) {
	var rebuilt ast.GroupValue
	switch value := v.(type) {
	case *ast.GroupTuple:
		tuple, err := d.reducer.ReduceGroupTuple(value)
		if err != nil {
			return nil, err
		}
		rebuilt = tuple
	case *ast.SingleGroupValue:
		rebuilt = ast.NewSingleGroupValue(value.Value, value.Span())
	}
	return d.reducer.ReduceGroupValue(v, rebuilt)
}

// ReduceCircuitVariableInitializer reduces one member binding of a circuit
// literal, preserving shorthand absence of the expression.
func (d *Director) ReduceCircuitVariableInitializer(init *ast.CircuitVariableInitializer) (*ast.CircuitVariableInitializer, error) {
	identifier, err := d.reducer.ReduceIdentifier(init.Identifier)
	if err != nil {
		return nil, err
	}
	var expression ast.Expression
	if init.Expression != nil {
		expression, err = d.ReduceExpression(init.Expression)
		if err != nil {
			return nil, err
		}
	}
	return d.reducer.ReduceCircuitVariableInitializer(init, identifier, expression)
}

// ReduceStatement reduces a statement subtree.
func (d *Director) ReduceStatement(s ast.Statement) (ast.Statement, error) {
	var rebuilt ast.Statement
	switch stmt := s.(type) {
	case *ast.ReturnStatement:
		expression, err := d.ReduceExpression(stmt.Expression)
		if err != nil {
			return nil, err
		}
		ret, err := d.reducer.ReduceReturn(stmt, expression)
		if err != nil {
			return nil, err
		}
		rebuilt = ret
	case *ast.DefinitionStatement:
		definition, err := d.ReduceDefinition(stmt)
		if err != nil {
			return nil, err
		}
		rebuilt = definition
	case *ast.AssignStatement:
		assignee, err := d.ReduceAssignee(stmt.Assignee)
		if err != nil {
			return nil, err
		}
		value, err := d.ReduceExpression(stmt.Value)
		if err != nil {
			return nil, err
		}
		assign, err := d.reducer.ReduceAssign(stmt, assignee, value)
		if err != nil {
			return nil, err
		}
		rebuilt = assign
	case *ast.ConditionalStatement:
		condition, err := d.ReduceExpression(stmt.Condition)
		if err != nil {
			return nil, err
		}
		block, err := d.ReduceBlock(stmt.Block)
		if err != nil {
			return nil, err
		}
		var next ast.Statement
		if stmt.Next != nil {
			next, err = d.ReduceStatement(stmt.Next)
			if err != nil {
				return nil, err
			}
		}
		conditional, err := d.reducer.ReduceConditional(stmt, condition, block, next)
		if err != nil {
			return nil, err
		}
		rebuilt = conditional
	case *ast.IterationStatement:
		variable, err := d.reducer.ReduceIdentifier(stmt.Variable)
		if err != nil {
			return nil, err
		}
		typ, err := d.ReduceType(stmt.Type, stmt.Span())
		if err != nil {
			return nil, err
		}
		start, err := d.ReduceExpression(stmt.Start)
		if err != nil {
			return nil, err
		}
		stop, err := d.ReduceExpression(stmt.Stop)
		if err != nil {
			return nil, err
		}
		block, err := d.ReduceBlock(stmt.Block)
		if err != nil {
			return nil, err
		}
		iteration, err := d.reducer.ReduceIteration(stmt, variable, typ, start, stop, block)
		if err != nil {
			return nil, err
		}
		rebuilt = iteration
	case *ast.ConsoleStatement:
		function, err := d.ReduceConsoleFunction(stmt.Function)
		if err != nil {
			return nil, err
		}
		console, err := d.reducer.ReduceConsole(stmt, function)
		if err != nil {
			return nil, err
		}
		rebuilt = console
	case *ast.ExpressionStatement:
		expression, err := d.ReduceExpression(stmt.Expression)
		if err != nil {
			return nil, err
		}
		statement, err := d.reducer.ReduceExpressionStatement(stmt, expression)
		if err != nil {
			return nil, err
		}
		rebuilt = statement
	case *ast.Block:
		block, err := d.ReduceBlock(stmt)
		if err != nil {
			return nil, err
		}
		rebuilt = block
	}
	return d.reducer.ReduceStatement(s, rebuilt)
}

// ReduceDefinition reduces a definition statement. Global const entries reuse
// this path directly, without the statement summary hook.
func (d *Director) ReduceDefinition(stmt *ast.DefinitionStatement) (*ast.DefinitionStatement, error) {
	variableNames := make([]*ast.VariableName, len(stmt.VariableNames))
	for i, name := range stmt.VariableNames {
		reduced, err := d.ReduceVariableName(name)
		if err != nil {
			return nil, err
		}
		variableNames[i] = reduced
	}
	typ, err := d.ReduceType(stmt.Type, stmt.Span())
	if err != nil {
		return nil, err
	}
	value, err := d.ReduceExpression(stmt.Value)
	if err != nil {
		return nil, err
	}
	return d.reducer.ReduceDefinition(stmt, variableNames, typ, value)
}

// ReduceVariableName reduces one bound name of a definition.
func (d *Director) ReduceVariableName(name *ast.VariableName) (*ast.VariableName, error) {
	identifier, err := d.reducer.ReduceIdentifier(name.Identifier)
	if err != nil {
		return nil, err
	}
	return d.reducer.ReduceVariableName(name, identifier)
}

// ReduceAssignee reduces an assignment target.
func (d *Director) ReduceAssignee(assignee *ast.Assignee) (*ast.Assignee, error) {
	identifier, err := d.reducer.ReduceIdentifier(assignee.Identifier)
	if err != nil {
		return nil, err
	}
	accesses := make([]ast.AssigneeAccess, len(assignee.Accesses))
	for i, access := range assignee.Accesses {
		reduced, err := d.ReduceAssigneeAccess(access)
		if err != nil {
			return nil, err
		}
		accesses[i] = reduced
	}
	return d.reducer.ReduceAssignee(assignee, identifier, accesses)
}

// ReduceAssigneeAccess reduces one access step of an assignment target.
func (d *Director) ReduceAssigneeAccess(access ast.AssigneeAccess) (ast.AssigneeAccess, error) {
	var rebuilt ast.AssigneeAccess
	switch acc := access.(type) {
	case *ast.AssigneeArrayRange:
		var left, right ast.Expression
		var err error
		if acc.Left != nil {
			left, err = d.ReduceExpression(acc.Left)
			if err != nil {
				return nil, err
			}
		}
		if acc.Right != nil {
			right, err = d.ReduceExpression(acc.Right)
			if err != nil {
				return nil, err
			}
		}
		rebuilt = &ast.AssigneeArrayRange{Left: left, Right: right}
	case *ast.AssigneeArrayIndex:
		index, err := d.ReduceExpression(acc.Index)
		if err != nil {
			return nil, err
		}
		rebuilt = &ast.AssigneeArrayIndex{Index: index}
	case *ast.AssigneeTuple:
		rebuilt = ast.NewAssigneeTuple(acc.Index, acc.Span())
	case *ast.AssigneeMember:
		name, err := d.reducer.ReduceIdentifier(acc.Name)
		if err != nil {
			return nil, err
		}
		rebuilt = &ast.AssigneeMember{Name: name}
	}
	return d.reducer.ReduceAssigneeAccess(access, rebuilt)
}

// ReduceConsoleFunction reduces the payload of a console statement. The
// format text is identity-bearing and copied verbatim; only the parameter
// expressions reduce.
func (d *Director) ReduceConsoleFunction(fn ast.ConsoleFunction) (ast.ConsoleFunction, error) {
	switch f := fn.(type) {
	case *ast.ConsoleAssert:
		expression, err := d.ReduceExpression(f.Expression)
		if err != nil {
			return nil, err
		}
		return &ast.ConsoleAssert{Expression: expression}, nil
	case *ast.ConsoleError:
		args, err := d.ReduceConsoleArgs(f.Args)
		if err != nil {
			return nil, err
		}
		return &ast.ConsoleError{Args: args}, nil
	case *ast.ConsoleLog:
		args, err := d.ReduceConsoleArgs(f.Args)
		if err != nil {
			return nil, err
		}
		return &ast.ConsoleLog{Args: args}, nil
	}
	return fn, nil
}

// ReduceConsoleArgs reduces the parameters of a console call.
func (d *Director) ReduceConsoleArgs(args *ast.ConsoleArgs) (*ast.ConsoleArgs, error) {
	parameters := make([]ast.Expression, len(args.Parameters))
	for i, param := range args.Parameters {
		reduced, err := d.ReduceExpression(param)
		if err != nil {
			return nil, err
		}
		parameters[i] = reduced
	}
	return ast.NewConsoleArgs(args.Format, parameters, args.Span()), nil
}

// ReduceBlock reduces a statement block in execution order.
func (d *Director) ReduceBlock(block *ast.Block) (*ast.Block, error) {
	statements := make([]ast.Statement, len(block.Statements))
	for i, stmt := range block.Statements {
		reduced, err := d.ReduceStatement(stmt)
		if err != nil {
			return nil, err
		}
		statements[i] = reduced
	}
	return d.reducer.ReduceBlock(block, statements)
}

// ReduceProgram reduces a whole compilation unit. Imported programs reduce
// before the entries of the enclosing aggregate; the import graph is assumed
// acyclic (the resolver's contract), so the recursion terminates.
func (d *Director) ReduceProgram(program *ast.Program) (*ast.Program, error) {
	expectedInput := make([]ast.FunctionInput, len(program.ExpectedInput))
	for i, input := range program.ExpectedInput {
		reduced, err := d.ReduceFunctionInput(input)
		if err != nil {
			return nil, err
		}
		expectedInput[i] = reduced
	}

	importStatements := make([]*ast.ImportStatement, len(program.ImportStatements))
	for i, stmt := range program.ImportStatements {
		reduced, err := d.ReduceImportStatement(stmt)
		if err != nil {
			return nil, err
		}
		importStatements[i] = reduced
	}

	imports := ordered.NewMap[string, *ast.Program]()
	for _, path := range program.Imports.Keys() {
		sub, _ := program.Imports.Get(path)
		reduced, err := d.ReduceProgram(sub)
		if err != nil {
			return nil, err
		}
		newPath, newProgram, err := d.reducer.ReduceImport(path, reduced)
		if err != nil {
			return nil, err
		}
		imports.Set(newPath, newProgram)
	}

	aliases := ordered.NewMap[string, *ast.Alias]()
	for _, name := range program.Aliases.Keys() {
		alias, _ := program.Aliases.Get(name)
		reduced, err := d.ReduceAlias(alias)
		if err != nil {
			return nil, err
		}
		aliases.Set(reduced.Name.Name, reduced)
	}

	circuits := ordered.NewMap[string, *ast.Circuit]()
	for _, name := range program.Circuits.Keys() {
		circuit, _ := program.Circuits.Get(name)
		reduced, err := d.ReduceCircuit(circuit)
		if err != nil {
			return nil, err
		}
		circuits.Set(reduced.Name.Name, reduced)
	}

	functions := ordered.NewMap[string, *ast.Function]()
	for _, name := range program.Functions.Keys() {
		function, _ := program.Functions.Get(name)
		reduced, err := d.ReduceFunction(function)
		if err != nil {
			return nil, err
		}
		functions.Set(reduced.Identifier.Name, reduced)
	}

	globalConsts := ordered.NewMap[string, *ast.DefinitionStatement]()
	for _, names := range program.GlobalConsts.Keys() {
		definition, _ := program.GlobalConsts.Get(names)
		reduced, err := d.ReduceDefinition(definition)
		if err != nil {
			return nil, err
		}
		globalConsts.Set(names, reduced)
	}

	return d.reducer.ReduceProgram(program, expectedInput, importStatements, imports, aliases, circuits, functions, globalConsts)
}

// ReduceFunctionInput reduces one declared function input.
func (d *Director) ReduceFunctionInput(input ast.FunctionInput) (ast.FunctionInput, error) {
	var rebuilt ast.FunctionInput
	switch in := input.(type) {
	case *ast.FunctionInputVariable:
		identifier, err := d.reducer.ReduceIdentifier(in.Identifier)
		if err != nil {
			return nil, err
		}
		typ, err := d.ReduceType(in.Type, in.Span())
		if err != nil {
			return nil, err
		}
		variable, err := d.reducer.ReduceFunctionInputVariable(in, identifier, typ)
		if err != nil {
			return nil, err
		}
		rebuilt = variable
	case *ast.InputKeyword:
		rebuilt = ast.NewInputKeyword(in.Span())
	case *ast.SelfKeyword:
		rebuilt = ast.NewSelfKeyword(in.Span())
	case *ast.MutSelfKeyword:
		rebuilt = ast.NewMutSelfKeyword(in.Span())
	case *ast.ConstSelfKeyword:
		rebuilt = ast.NewConstSelfKeyword(in.Span())
	}
	return d.reducer.ReduceFunctionInput(input, rebuilt)
}

// ReduceImportStatement reduces an import statement.
func (d *Director) ReduceImportStatement(stmt *ast.ImportStatement) (*ast.ImportStatement, error) {
	tree, err := d.ReduceImportTree(stmt.Tree)
	if err != nil {
		return nil, err
	}
	return d.reducer.ReduceImportStatement(stmt, tree)
}

// ReduceImportTree reduces an import tree, recursing into nested groups.
func (d *Director) ReduceImportTree(tree ast.ImportTree) (ast.ImportTree, error) {
	var rebuilt ast.ImportTree
	switch t := tree.(type) {
	case *ast.ImportLeaf:
		rebuilt = ast.NewImportLeaf(t.Symbol, t.Alias, t.Span())
	case *ast.ImportGlob:
		rebuilt = ast.NewImportGlob(t.Span())
	case *ast.ImportNested:
		trees := make([]ast.ImportTree, len(t.Trees))
		for i, sub := range t.Trees {
			reduced, err := d.ReduceImportTree(sub)
			if err != nil {
				return nil, err
			}
			trees[i] = reduced
		}
		rebuilt = ast.NewImportNested(t.Prefix, trees, t.Span())
	}
	return d.reducer.ReduceImportTree(tree, rebuilt)
}

// ReduceAlias reduces a type alias declaration.
func (d *Director) ReduceAlias(alias *ast.Alias) (*ast.Alias, error) {
	name, err := d.reducer.ReduceIdentifier(alias.Name)
	if err != nil {
		return nil, err
	}
	represents, err := d.ReduceType(alias.Represents, alias.Span())
	if err != nil {
		return nil, err
	}
	return d.reducer.ReduceAlias(alias, name, represents)
}

// ReduceCircuit reduces a circuit declaration. Entering the circuit context
// is a pass decision, not the driver's: overrides that need the in-circuit
// bit flip it themselves (see Base.WithCircuitScope).
func (d *Director) ReduceCircuit(circuit *ast.Circuit) (*ast.Circuit, error) {
	name, err := d.reducer.ReduceIdentifier(circuit.Name)
	if err != nil {
		return nil, err
	}
	members := make([]ast.CircuitMember, len(circuit.Members))
	for i, member := range circuit.Members {
		reduced, err := d.ReduceCircuitMember(member)
		if err != nil {
			return nil, err
		}
		members[i] = reduced
	}
	return d.reducer.ReduceCircuit(circuit, name, members)
}

// ReduceCircuitMember reduces one circuit member.
func (d *Director) ReduceCircuitMember(member ast.CircuitMember) (ast.CircuitMember, error) {
	var rebuilt ast.CircuitMember
	switch m := member.(type) {
	case *ast.CircuitVariable:
		identifier, err := d.reducer.ReduceIdentifier(m.Identifier)
		if err != nil {
			return nil, err
		}
		typ, err := d.ReduceType(m.Type, m.Identifier.Span())
		if err != nil {
			return nil, err
		}
		rebuilt = &ast.CircuitVariable{Identifier: identifier, Type: typ}
	case *ast.CircuitFunction:
		function, err := d.ReduceFunction(m.Function)
		if err != nil {
			return nil, err
		}
		rebuilt = &ast.CircuitFunction{Function: function}
	}
	return d.reducer.ReduceCircuitMember(member, rebuilt)
}

// ReduceAnnotation reduces a function annotation.
func (d *Director) ReduceAnnotation(annotation *ast.Annotation) (*ast.Annotation, error) {
	name, err := d.reducer.ReduceIdentifier(annotation.Name)
	if err != nil {
		return nil, err
	}
	return d.reducer.ReduceAnnotation(annotation, name)
}

// ReduceFunction reduces a function declaration.
func (d *Director) ReduceFunction(function *ast.Function) (*ast.Function, error) {
	identifier, err := d.reducer.ReduceIdentifier(function.Identifier)
	if err != nil {
		return nil, err
	}

	annotations := ordered.NewMap[string, *ast.Annotation]()
	for _, name := range function.Annotations.Keys() {
		annotation, _ := function.Annotations.Get(name)
		reduced, err := d.ReduceAnnotation(annotation)
		if err != nil {
			return nil, err
		}
		annotations.Set(reduced.Name.Name, reduced)
	}

	input := make([]ast.FunctionInput, len(function.Input))
	for i, in := range function.Input {
		reduced, err := d.ReduceFunctionInput(in)
		if err != nil {
			return nil, err
		}
		input[i] = reduced
	}

	output, err := d.ReduceType(function.Output, function.Span())
	if err != nil {
		return nil, err
	}

	block, err := d.ReduceBlock(function.Block)
	if err != nil {
		return nil, err
	}

	return d.reducer.ReduceFunction(function, identifier, annotations, input, function.Const, output, block)
}
