package reducer

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/ordered"
	"github.com/lumen-lang/lumen/internal/span"
)

// Base implements every Reducer hook as pure reassembly: recursive fields
// come from the already-reduced children, identity-bearing fields are copied
// from the original, and the output span is always the input span. Reducing
// through an unmodified Base yields a structurally equal, freshly allocated
// tree. Base defaults never fail.
//
// Passes embed Base by value and override only the hooks they need. Base is
// per-traversal state (it owns the in-circuit bit) and must not be shared
// between concurrent traversals.
type Base struct {
	inCircuit bool
}

// InCircuit reports whether the traversal is inside a circuit body.
func (b *Base) InCircuit() bool {
	return b.inCircuit
}

// SwapInCircuit flips the in-circuit bit. Callers must pair every entry flip
// with an exit flip on all paths; WithCircuitScope does that pairing
// automatically and is the preferred form.
func (b *Base) SwapInCircuit() {
	b.inCircuit = !b.inCircuit
}

// WithCircuitScope runs fn with the in-circuit bit flipped, restoring the
// prior value on every exit path, including failure.
func (b *Base) WithCircuitScope(fn func() error) error {
	prior := b.inCircuit
	b.inCircuit = !prior
	defer func() { b.inCircuit = prior }()
	return fn()
}

// ReduceType passes the rebuilt type through.
func (b *Base) ReduceType(_ ast.Type, rebuilt ast.Type, _ span.Span) (ast.Type, error) {
	return rebuilt, nil
}

// ReduceExpression passes the rebuilt expression through.
func (b *Base) ReduceExpression(_ ast.Expression, rebuilt ast.Expression) (ast.Expression, error) {
	return rebuilt, nil
}

// ReduceIdentifier rebuilds the identifier from its name and span.
func (b *Base) ReduceIdentifier(identifier *ast.Identifier) (*ast.Identifier, error) {
	return ast.NewIdentifier(identifier.Name, identifier.Span()), nil
}

// ReduceGroupTuple rebuilds the tuple, copying both coordinates verbatim.
func (b *Base) ReduceGroupTuple(groupTuple *ast.GroupTuple) (*ast.GroupTuple, error) {
	return ast.NewGroupTuple(groupTuple.X, groupTuple.Y, groupTuple.Span()), nil
}

// ReduceGroupValue passes the rebuilt group value through.
func (b *Base) ReduceGroupValue(_ ast.GroupValue, rebuilt ast.GroupValue) (ast.GroupValue, error) {
	return rebuilt, nil
}

// ReduceString folds the character sequence and span into a string value
// expression.
func (b *Base) ReduceString(value []rune, sp span.Span) (ast.Expression, error) {
	return ast.NewStringValue(append([]rune(nil), value...), sp), nil
}

// ReduceValue passes the rebuilt value expression through.
func (b *Base) ReduceValue(_ ast.ValueExpression, rebuilt ast.Expression) (ast.Expression, error) {
	return rebuilt, nil
}

// ReduceBinary rebuilds the expression around the reduced operands, carrying
// the operator through.
func (b *Base) ReduceBinary(binary *ast.BinaryExpression, left, right ast.Expression, op ast.BinaryOp) (*ast.BinaryExpression, error) {
	return ast.NewBinary(left, right, op, binary.Span()), nil
}

// ReduceUnary rebuilds the expression around the reduced operand.
func (b *Base) ReduceUnary(unary *ast.UnaryExpression, inner ast.Expression, op ast.UnaryOp) (*ast.UnaryExpression, error) {
	return ast.NewUnary(inner, op, unary.Span()), nil
}

// ReduceTernary rebuilds the expression around the three reduced operands.
func (b *Base) ReduceTernary(ternary *ast.TernaryExpression, condition, ifTrue, ifFalse ast.Expression) (*ast.TernaryExpression, error) {
	return ast.NewTernary(condition, ifTrue, ifFalse, ternary.Span()), nil
}

// ReduceCast rebuilds the cast around the reduced operand and target type.
func (b *Base) ReduceCast(cast *ast.CastExpression, inner ast.Expression, targetType ast.Type) (*ast.CastExpression, error) {
	return ast.NewCast(inner, targetType, cast.Span()), nil
}

// ReduceArrayAccess rebuilds the access around the reduced array and index.
func (b *Base) ReduceArrayAccess(access *ast.ArrayAccess, array, index ast.Expression) (*ast.ArrayAccess, error) {
	return ast.NewArrayAccess(array, index, access.Span()), nil
}

// ReduceArrayRangeAccess rebuilds the access, preserving bound absence
// exactly.
func (b *Base) ReduceArrayRangeAccess(access *ast.ArrayRangeAccess, array ast.Expression, left, right ast.Expression) (*ast.ArrayRangeAccess, error) {
	return ast.NewArrayRangeAccess(array, left, right, access.Span()), nil
}

// ReduceMemberAccess rebuilds the access around the reduced inner expression,
// name, and optional resolved type.
func (b *Base) ReduceMemberAccess(access *ast.MemberAccess, inner ast.Expression, name *ast.Identifier, typ ast.Type) (*ast.MemberAccess, error) {
	return ast.NewMemberAccess(inner, name, typ, access.Span()), nil
}

// ReduceTupleAccess rebuilds the access, carrying the index text through.
func (b *Base) ReduceTupleAccess(access *ast.TupleAccess, tuple ast.Expression) (*ast.TupleAccess, error) {
	return ast.NewTupleAccess(tuple, access.Index, access.Span()), nil
}

// ReduceStaticAccess rebuilds the access with a fresh type cell holding the
// reduced type, keeping the slot assignable after construction.
func (b *Base) ReduceStaticAccess(access *ast.StaticAccess, inner ast.Expression, typ ast.Type, name *ast.Identifier) (*ast.StaticAccess, error) {
	return ast.NewStaticAccess(inner, name, ast.NewTypeCell(typ), access.Span()), nil
}

// ReduceArrayInline rebuilds the literal around the reduced elements.
func (b *Base) ReduceArrayInline(inline *ast.ArrayInlineExpression, elements []ast.SpreadOrExpression) (*ast.ArrayInlineExpression, error) {
	return ast.NewArrayInline(elements, inline.Span()), nil
}

// ReduceArrayInit rebuilds the initializer, copying the dimension text
// verbatim.
func (b *Base) ReduceArrayInit(init *ast.ArrayInitExpression, element ast.Expression) (*ast.ArrayInitExpression, error) {
	return ast.NewArrayInit(element, init.Dimensions, init.Span()), nil
}

// ReduceTupleInit rebuilds the initializer around the reduced elements.
func (b *Base) ReduceTupleInit(init *ast.TupleInitExpression, elements []ast.Expression) (*ast.TupleInitExpression, error) {
	return ast.NewTupleInit(elements, init.Span()), nil
}

// ReduceCircuitVariableInitializer rebuilds the member binding, preserving
// shorthand absence of the expression.
func (b *Base) ReduceCircuitVariableInitializer(_ *ast.CircuitVariableInitializer, identifier *ast.Identifier, expression ast.Expression) (*ast.CircuitVariableInitializer, error) {
	return &ast.CircuitVariableInitializer{Identifier: identifier, Expression: expression}, nil
}

// ReduceCircuitInit rebuilds the literal around the reduced name and members.
func (b *Base) ReduceCircuitInit(init *ast.CircuitInitExpression, name *ast.Identifier, members []*ast.CircuitVariableInitializer) (*ast.CircuitInitExpression, error) {
	return ast.NewCircuitInit(name, members, init.Span()), nil
}

// ReduceCall rebuilds the call around the reduced callee and arguments.
func (b *Base) ReduceCall(call *ast.CallExpression, function ast.Expression, arguments []ast.Expression) (*ast.CallExpression, error) {
	return ast.NewCall(function, arguments, call.Span()), nil
}

// ReduceStatement passes the rebuilt statement through.
func (b *Base) ReduceStatement(_ ast.Statement, rebuilt ast.Statement) (ast.Statement, error) {
	return rebuilt, nil
}

// ReduceReturn rebuilds the statement around the reduced expression.
func (b *Base) ReduceReturn(ret *ast.ReturnStatement, expression ast.Expression) (*ast.ReturnStatement, error) {
	return ast.NewReturn(expression, ret.Span()), nil
}

// ReduceVariableName rebuilds the binding, carrying the mutability flag
// through.
func (b *Base) ReduceVariableName(variableName *ast.VariableName, identifier *ast.Identifier) (*ast.VariableName, error) {
	return ast.NewVariableName(variableName.Mutable, identifier, variableName.Span()), nil
}

// ReduceDefinition rebuilds the statement, carrying the declaration tag and
// parenthesization through.
func (b *Base) ReduceDefinition(definition *ast.DefinitionStatement, variableNames []*ast.VariableName, typ ast.Type, value ast.Expression) (*ast.DefinitionStatement, error) {
	return ast.NewDefinition(definition.Declare, variableNames, definition.Parened, typ, value, definition.Span()), nil
}

// ReduceAssigneeAccess passes the rebuilt access step through.
func (b *Base) ReduceAssigneeAccess(_ ast.AssigneeAccess, rebuilt ast.AssigneeAccess) (ast.AssigneeAccess, error) {
	return rebuilt, nil
}

// ReduceAssignee rebuilds the target around the reduced root and steps.
func (b *Base) ReduceAssignee(assignee *ast.Assignee, identifier *ast.Identifier, accesses []ast.AssigneeAccess) (*ast.Assignee, error) {
	return ast.NewAssignee(identifier, accesses, assignee.Span()), nil
}

// ReduceAssign rebuilds the statement, carrying the operation tag through.
func (b *Base) ReduceAssign(assign *ast.AssignStatement, assignee *ast.Assignee, value ast.Expression) (*ast.AssignStatement, error) {
	return ast.NewAssign(assign.Operation, assignee, value, assign.Span()), nil
}

// ReduceConditional rebuilds the statement, preserving else-branch absence
// exactly.
func (b *Base) ReduceConditional(conditional *ast.ConditionalStatement, condition ast.Expression, block *ast.Block, next ast.Statement) (*ast.ConditionalStatement, error) {
	return ast.NewConditional(condition, block, next, conditional.Span()), nil
}

// ReduceIteration rebuilds the statement, carrying the inclusivity flag
// through.
func (b *Base) ReduceIteration(iteration *ast.IterationStatement, variable *ast.Identifier, typ ast.Type, start, stop ast.Expression, block *ast.Block) (*ast.IterationStatement, error) {
	return ast.NewIteration(variable, typ, start, stop, iteration.Inclusive, block, iteration.Span()), nil
}

// ReduceConsole rebuilds the statement around the reduced console function.
func (b *Base) ReduceConsole(console *ast.ConsoleStatement, function ast.ConsoleFunction) (*ast.ConsoleStatement, error) {
	return ast.NewConsole(function, console.Span()), nil
}

// ReduceExpressionStatement rebuilds the statement around the reduced
// expression.
func (b *Base) ReduceExpressionStatement(statement *ast.ExpressionStatement, expression ast.Expression) (*ast.ExpressionStatement, error) {
	return ast.NewExpressionStatement(expression, statement.Span()), nil
}

// ReduceBlock rebuilds the block around the reduced statement sequence.
func (b *Base) ReduceBlock(block *ast.Block, statements []ast.Statement) (*ast.Block, error) {
	return ast.NewBlock(statements, block.Span()), nil
}

// ReduceProgram reassembles the aggregate, copying Name verbatim.
func (b *Base) ReduceProgram(
	program *ast.Program,
	expectedInput []ast.FunctionInput,
	importStatements []*ast.ImportStatement,
	imports *ordered.Map[string, *ast.Program],
	aliases *ordered.Map[string, *ast.Alias],
	circuits *ordered.Map[string, *ast.Circuit],
	functions *ordered.Map[string, *ast.Function],
	globalConsts *ordered.Map[string, *ast.DefinitionStatement],
) (*ast.Program, error) {
	return &ast.Program{
		Name:             program.Name,
		ExpectedInput:    expectedInput,
		ImportStatements: importStatements,
		Imports:          imports,
		Aliases:          aliases,
		Circuits:         circuits,
		Functions:        functions,
		GlobalConsts:     globalConsts,
	}, nil
}

// ReduceFunctionInputVariable rebuilds the input, carrying the const and
// mutable flags through.
func (b *Base) ReduceFunctionInputVariable(variable *ast.FunctionInputVariable, identifier *ast.Identifier, typ ast.Type) (*ast.FunctionInputVariable, error) {
	return ast.NewFunctionInputVariable(identifier, variable.Const, variable.Mutable, typ, variable.Span()), nil
}

// ReduceFunctionInput passes the rebuilt input through.
func (b *Base) ReduceFunctionInput(_ ast.FunctionInput, rebuilt ast.FunctionInput) (ast.FunctionInput, error) {
	return rebuilt, nil
}

// ReduceImportTree passes the rebuilt tree through.
func (b *Base) ReduceImportTree(_ ast.ImportTree, rebuilt ast.ImportTree) (ast.ImportTree, error) {
	return rebuilt, nil
}

// ReduceImportStatement rebuilds the statement around the reduced tree.
func (b *Base) ReduceImportStatement(statement *ast.ImportStatement, tree ast.ImportTree) (*ast.ImportStatement, error) {
	return ast.NewImportStatement(tree, statement.Span()), nil
}

// ReduceImport passes the import map entry through.
func (b *Base) ReduceImport(path string, program *ast.Program) (string, *ast.Program, error) {
	return path, program, nil
}

// ReduceCircuitMember passes the rebuilt member through.
func (b *Base) ReduceCircuitMember(_ ast.CircuitMember, rebuilt ast.CircuitMember) (ast.CircuitMember, error) {
	return rebuilt, nil
}

// ReduceCircuit rebuilds the declaration around the reduced name and members.
func (b *Base) ReduceCircuit(_ *ast.Circuit, name *ast.Identifier, members []ast.CircuitMember) (*ast.Circuit, error) {
	return &ast.Circuit{Name: name, Members: members}, nil
}

// ReduceAlias rebuilds the declaration around the reduced name and type.
func (b *Base) ReduceAlias(alias *ast.Alias, name *ast.Identifier, represents ast.Type) (*ast.Alias, error) {
	return ast.NewAlias(name, represents, alias.Span()), nil
}

// ReduceAnnotation rebuilds the annotation, copying the argument text
// verbatim.
func (b *Base) ReduceAnnotation(annotation *ast.Annotation, name *ast.Identifier) (*ast.Annotation, error) {
	return ast.NewAnnotation(name, annotation.Arguments, annotation.Span()), nil
}

// ReduceFunction reassembles the declaration, copying CoreMapping verbatim.
func (b *Base) ReduceFunction(
	function *ast.Function,
	identifier *ast.Identifier,
	annotations *ordered.Map[string, *ast.Annotation],
	input []ast.FunctionInput,
	constant bool,
	output ast.Type,
	block *ast.Block,
) (*ast.Function, error) {
	return ast.NewFunction(identifier, annotations, input, constant, output, block, function.CoreMapping, function.Span()), nil
}
