package reducer

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/ordered"
	"github.com/lumen-lang/lumen/internal/span"
)

// Reducer is the reconstruction protocol: one hook per node kind.
//
// Every hook takes the original node (the source of identity-bearing fields:
// span, operator tags, mutability and declaration flags) together with the
// already-reduced values of its recursive children, supplied in declaration
// order, and returns the rebuilt node. Operators and other non-recursive tags
// are carried through, never independently reduced.
//
// The summary hooks (ReduceType, ReduceValue, ReduceExpression,
// ReduceStatement, ReduceAssigneeAccess, ReduceFunctionInput,
// ReduceImportTree, ReduceGroupValue, ReduceCircuitMember) run after the
// specific hook has already produced the concrete variant; their default is
// pure pass-through, giving a pass a single override point for a whole
// category without touching every specific hook.
//
// Implementations embed Base and override only what they need. Any hook may
// fail with an error tied to the node's span; the Director then aborts the
// enclosing reduction without retry or suppression. Hooks may keep pass-local
// state but must not mutate the original tree.
type Reducer interface {
	// InCircuit reports the context-mode bit: whether the traversal is
	// currently inside a circuit body. Identifier resolution rules differ
	// there, so passes branch on it.
	InCircuit() bool

	// SwapInCircuit flips the context-mode bit. The Director never calls it;
	// an override that enters a circuit-bodied construct must pair exactly
	// one flip on entry with one on exit, on every path. Prefer
	// Base.WithCircuitScope, which restores the prior value even on failure.
	SwapInCircuit()

	// Types

	ReduceType(old ast.Type, rebuilt ast.Type, sp span.Span) (ast.Type, error)

	// Expressions

	ReduceExpression(old ast.Expression, rebuilt ast.Expression) (ast.Expression, error)
	ReduceIdentifier(identifier *ast.Identifier) (*ast.Identifier, error)
	ReduceGroupTuple(groupTuple *ast.GroupTuple) (*ast.GroupTuple, error)
	ReduceGroupValue(old ast.GroupValue, rebuilt ast.GroupValue) (ast.GroupValue, error)

	// ReduceString folds a raw character sequence and its span directly into
	// a string ValueExpression. String literals have no node kind of their
	// own, so this hook returns an Expression rather than a dedicated node.
	ReduceString(value []rune, sp span.Span) (ast.Expression, error)

	ReduceValue(old ast.ValueExpression, rebuilt ast.Expression) (ast.Expression, error)
	ReduceBinary(binary *ast.BinaryExpression, left, right ast.Expression, op ast.BinaryOp) (*ast.BinaryExpression, error)
	ReduceUnary(unary *ast.UnaryExpression, inner ast.Expression, op ast.UnaryOp) (*ast.UnaryExpression, error)
	ReduceTernary(ternary *ast.TernaryExpression, condition, ifTrue, ifFalse ast.Expression) (*ast.TernaryExpression, error)
	ReduceCast(cast *ast.CastExpression, inner ast.Expression, targetType ast.Type) (*ast.CastExpression, error)
	ReduceArrayAccess(access *ast.ArrayAccess, array, index ast.Expression) (*ast.ArrayAccess, error)

	// ReduceArrayRangeAccess receives nil for an absent bound and must keep
	// it absent; the default never coerces a missing bound into a value.
	ReduceArrayRangeAccess(access *ast.ArrayRangeAccess, array ast.Expression, left, right ast.Expression) (*ast.ArrayRangeAccess, error)

	ReduceMemberAccess(access *ast.MemberAccess, inner ast.Expression, name *ast.Identifier, typ ast.Type) (*ast.MemberAccess, error)
	ReduceTupleAccess(access *ast.TupleAccess, tuple ast.Expression) (*ast.TupleAccess, error)

	// ReduceStaticAccess places the reduced type into a fresh TypeCell on the
	// rebuilt node: static access type resolution may complete after node
	// construction, and that capability must survive reduction.
	ReduceStaticAccess(access *ast.StaticAccess, inner ast.Expression, typ ast.Type, name *ast.Identifier) (*ast.StaticAccess, error)

	ReduceArrayInline(inline *ast.ArrayInlineExpression, elements []ast.SpreadOrExpression) (*ast.ArrayInlineExpression, error)
	ReduceArrayInit(init *ast.ArrayInitExpression, element ast.Expression) (*ast.ArrayInitExpression, error)
	ReduceTupleInit(init *ast.TupleInitExpression, elements []ast.Expression) (*ast.TupleInitExpression, error)
	ReduceCircuitVariableInitializer(initializer *ast.CircuitVariableInitializer, identifier *ast.Identifier, expression ast.Expression) (*ast.CircuitVariableInitializer, error)
	ReduceCircuitInit(init *ast.CircuitInitExpression, name *ast.Identifier, members []*ast.CircuitVariableInitializer) (*ast.CircuitInitExpression, error)
	ReduceCall(call *ast.CallExpression, function ast.Expression, arguments []ast.Expression) (*ast.CallExpression, error)

	// Statements

	ReduceStatement(old ast.Statement, rebuilt ast.Statement) (ast.Statement, error)
	ReduceReturn(ret *ast.ReturnStatement, expression ast.Expression) (*ast.ReturnStatement, error)
	ReduceVariableName(variableName *ast.VariableName, identifier *ast.Identifier) (*ast.VariableName, error)
	ReduceDefinition(definition *ast.DefinitionStatement, variableNames []*ast.VariableName, typ ast.Type, value ast.Expression) (*ast.DefinitionStatement, error)
	ReduceAssigneeAccess(old ast.AssigneeAccess, rebuilt ast.AssigneeAccess) (ast.AssigneeAccess, error)
	ReduceAssignee(assignee *ast.Assignee, identifier *ast.Identifier, accesses []ast.AssigneeAccess) (*ast.Assignee, error)
	ReduceAssign(assign *ast.AssignStatement, assignee *ast.Assignee, value ast.Expression) (*ast.AssignStatement, error)

	// ReduceConditional receives nil for an absent else branch and must keep
	// it absent.
	ReduceConditional(conditional *ast.ConditionalStatement, condition ast.Expression, block *ast.Block, next ast.Statement) (*ast.ConditionalStatement, error)

	ReduceIteration(iteration *ast.IterationStatement, variable *ast.Identifier, typ ast.Type, start, stop ast.Expression, block *ast.Block) (*ast.IterationStatement, error)
	ReduceConsole(console *ast.ConsoleStatement, function ast.ConsoleFunction) (*ast.ConsoleStatement, error)
	ReduceExpressionStatement(statement *ast.ExpressionStatement, expression ast.Expression) (*ast.ExpressionStatement, error)
	ReduceBlock(block *ast.Block, statements []ast.Statement) (*ast.Block, error)

	// Program

	// ReduceProgram reassembles the aggregate, copying the non-reducible
	// Name verbatim. The rebuilt maps preserve the key sets and iteration
	// order handed in.
	ReduceProgram(
		program *ast.Program,
		expectedInput []ast.FunctionInput,
		importStatements []*ast.ImportStatement,
		imports *ordered.Map[string, *ast.Program],
		aliases *ordered.Map[string, *ast.Alias],
		circuits *ordered.Map[string, *ast.Circuit],
		functions *ordered.Map[string, *ast.Function],
		globalConsts *ordered.Map[string, *ast.DefinitionStatement],
	) (*ast.Program, error)

	ReduceFunctionInputVariable(variable *ast.FunctionInputVariable, identifier *ast.Identifier, typ ast.Type) (*ast.FunctionInputVariable, error)
	ReduceFunctionInput(old ast.FunctionInput, rebuilt ast.FunctionInput) (ast.FunctionInput, error)
	ReduceImportTree(old ast.ImportTree, rebuilt ast.ImportTree) (ast.ImportTree, error)
	ReduceImportStatement(statement *ast.ImportStatement, tree ast.ImportTree) (*ast.ImportStatement, error)

	// ReduceImport rewrites one entry of the program's import map: the dotted
	// qualified path and the (already reduced) imported program.
	ReduceImport(path string, program *ast.Program) (string, *ast.Program, error)

	ReduceCircuitMember(old ast.CircuitMember, rebuilt ast.CircuitMember) (ast.CircuitMember, error)
	ReduceCircuit(circuit *ast.Circuit, name *ast.Identifier, members []ast.CircuitMember) (*ast.Circuit, error)
	ReduceAlias(alias *ast.Alias, name *ast.Identifier, represents ast.Type) (*ast.Alias, error)
	ReduceAnnotation(annotation *ast.Annotation, name *ast.Identifier) (*ast.Annotation, error)

	// ReduceFunction reassembles the declaration, copying the non-reducible
	// CoreMapping backend metadata verbatim.
	ReduceFunction(
		function *ast.Function,
		identifier *ast.Identifier,
		annotations *ordered.Map[string, *ast.Annotation],
		input []ast.FunctionInput,
		constant bool,
		output ast.Type,
		block *ast.Block,
	) (*ast.Function, error)
}
