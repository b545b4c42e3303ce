package ast

import "github.com/lumen-lang/lumen/internal/span"

// DeclarationType tags a definition as let or const.
type DeclarationType string

const (
	DeclareLet   DeclarationType = "let"
	DeclareConst DeclarationType = "const"
)

// AssignOperation tags an assignment statement's operator.
type AssignOperation string

const (
	AssignSimple AssignOperation = "assign"
	AssignAdd    AssignOperation = "add"
	AssignSub    AssignOperation = "sub"
	AssignMul    AssignOperation = "mul"
	AssignDiv    AssignOperation = "div"
	AssignPow    AssignOperation = "pow"
)

// ReturnStatement returns Expression from the enclosing function.
type ReturnStatement struct {
	Expression Expression
	span       span.Span
}

// NewReturn constructs a return statement node.
func NewReturn(expression Expression, sp span.Span) *ReturnStatement {
	return &ReturnStatement{Expression: expression, span: sp}
}

// Span returns the statement's source span.
func (r *ReturnStatement) Span() span.Span { return r.span }

func (*ReturnStatement) stmtNode() {}

// VariableName is one bound name in a definition, with its mutability flag.
type VariableName struct {
	Mutable    bool
	Identifier *Identifier
	span       span.Span
}

// NewVariableName constructs a variable name node.
func NewVariableName(mutable bool, identifier *Identifier, sp span.Span) *VariableName {
	return &VariableName{Mutable: mutable, Identifier: identifier, span: sp}
}

// Span returns the node's source span.
func (v *VariableName) Span() span.Span { return v.span }

// DefinitionStatement is let/const VariableNames: Type = Value.
type DefinitionStatement struct {
	Declare       DeclarationType
	VariableNames []*VariableName
	// Parened records whether a multi-name binding was written with
	// parentheses; it is surface syntax carried through verbatim.
	Parened bool
	Type    Type
	Value   Expression
	span    span.Span
}

// NewDefinition constructs a definition statement node.
func NewDefinition(declare DeclarationType, names []*VariableName, parened bool, typ Type, value Expression, sp span.Span) *DefinitionStatement {
	return &DefinitionStatement{
		Declare:       declare,
		VariableNames: names,
		Parened:       parened,
		Type:          typ,
		Value:         value,
		span:          sp,
	}
}

// Span returns the statement's source span.
func (d *DefinitionStatement) Span() span.Span { return d.span }

func (*DefinitionStatement) stmtNode() {}

// AssigneeAccess is one step in an assignment target path: an array index,
// an array range, a tuple index, or a member name.
type AssigneeAccess interface {
	assigneeAccessNode()
}

// AssigneeArrayRange indexes a range of an array target. Either bound may be
// nil.
type AssigneeArrayRange struct {
	Left  Expression
	Right Expression
}

func (*AssigneeArrayRange) assigneeAccessNode() {}

// AssigneeArrayIndex indexes one element of an array target.
type AssigneeArrayIndex struct {
	Index Expression
}

func (*AssigneeArrayIndex) assigneeAccessNode() {}

// AssigneeTuple selects one tuple component of a target. Index is the decimal
// text as written.
type AssigneeTuple struct {
	Index string
	span  span.Span
}

// NewAssigneeTuple constructs a tuple access step.
func NewAssigneeTuple(index string, sp span.Span) *AssigneeTuple {
	return &AssigneeTuple{Index: index, span: sp}
}

// Span returns the access's source span.
func (a *AssigneeTuple) Span() span.Span { return a.span }

func (*AssigneeTuple) assigneeAccessNode() {}

// AssigneeMember selects a named member of a target.
type AssigneeMember struct {
	Name *Identifier
}

func (*AssigneeMember) assigneeAccessNode() {}

// Assignee is the target of an assignment: a root identifier plus a chain of
// access steps.
type Assignee struct {
	Identifier *Identifier
	Accesses   []AssigneeAccess
	span       span.Span
}

// NewAssignee constructs an assignment target node.
func NewAssignee(identifier *Identifier, accesses []AssigneeAccess, sp span.Span) *Assignee {
	return &Assignee{Identifier: identifier, Accesses: accesses, span: sp}
}

// Span returns the target's source span.
func (a *Assignee) Span() span.Span { return a.span }

// AssignStatement is Assignee op= Value.
type AssignStatement struct {
	Operation AssignOperation
	Assignee  *Assignee
	Value     Expression
	span      span.Span
}

// NewAssign constructs an assignment statement node.
func NewAssign(operation AssignOperation, assignee *Assignee, value Expression, sp span.Span) *AssignStatement {
	return &AssignStatement{Operation: operation, Assignee: assignee, Value: value, span: sp}
}

// Span returns the statement's source span.
func (a *AssignStatement) Span() span.Span { return a.span }

func (*AssignStatement) stmtNode() {}

// ConditionalStatement is if Condition Block else Next. Next is nil when
// there is no else branch, another ConditionalStatement for else-if, or a
// Block statement for a plain else; absence is preserved exactly.
type ConditionalStatement struct {
	Condition Expression
	Block     *Block
	Next      Statement
	span      span.Span
}

// NewConditional constructs a conditional statement node. next may be nil.
func NewConditional(condition Expression, block *Block, next Statement, sp span.Span) *ConditionalStatement {
	return &ConditionalStatement{Condition: condition, Block: block, Next: next, span: sp}
}

// Span returns the statement's source span.
func (c *ConditionalStatement) Span() span.Span { return c.span }

func (*ConditionalStatement) stmtNode() {}

// IterationStatement is for Variable: Type in Start..Stop Block.
type IterationStatement struct {
	Variable  *Identifier
	Type      Type
	Start     Expression
	Stop      Expression
	Inclusive bool
	Block     *Block
	span      span.Span
}

// NewIteration constructs an iteration statement node.
func NewIteration(variable *Identifier, typ Type, start, stop Expression, inclusive bool, block *Block, sp span.Span) *IterationStatement {
	return &IterationStatement{
		Variable:  variable,
		Type:      typ,
		Start:     start,
		Stop:      stop,
		Inclusive: inclusive,
		Block:     block,
		span:      sp,
	}
}

// Span returns the statement's source span.
func (i *IterationStatement) Span() span.Span { return i.span }

func (*IterationStatement) stmtNode() {}

// ConsoleFunction is the payload of a console statement: assert, error, or
// log.
type ConsoleFunction interface {
	consoleFunctionNode()
}

// ConsoleAssert asserts that Expression holds.
type ConsoleAssert struct {
	Expression Expression
}

func (*ConsoleAssert) consoleFunctionNode() {}

// ConsoleArgs is a format string plus its parameter expressions. The format
// text is identity-bearing and copied verbatim.
type ConsoleArgs struct {
	Format     []rune
	Parameters []Expression
	span       span.Span
}

// NewConsoleArgs constructs console call arguments.
func NewConsoleArgs(format []rune, parameters []Expression, sp span.Span) *ConsoleArgs {
	return &ConsoleArgs{Format: format, Parameters: parameters, span: sp}
}

// Span returns the arguments' source span.
func (c *ConsoleArgs) Span() span.Span { return c.span }

// ConsoleError writes a formatted error message.
type ConsoleError struct {
	Args *ConsoleArgs
}

func (*ConsoleError) consoleFunctionNode() {}

// ConsoleLog writes a formatted log message.
type ConsoleLog struct {
	Args *ConsoleArgs
}

func (*ConsoleLog) consoleFunctionNode() {}

// ConsoleStatement is console.assert/error/log(...).
type ConsoleStatement struct {
	Function ConsoleFunction
	span     span.Span
}

// NewConsole constructs a console statement node.
func NewConsole(function ConsoleFunction, sp span.Span) *ConsoleStatement {
	return &ConsoleStatement{Function: function, span: sp}
}

// Span returns the statement's source span.
func (c *ConsoleStatement) Span() span.Span { return c.span }

func (*ConsoleStatement) stmtNode() {}

// ExpressionStatement evaluates Expression for its effects.
type ExpressionStatement struct {
	Expression Expression
	span       span.Span
}

// NewExpressionStatement constructs an expression statement node.
func NewExpressionStatement(expression Expression, sp span.Span) *ExpressionStatement {
	return &ExpressionStatement{Expression: expression, span: sp}
}

// Span returns the statement's source span.
func (e *ExpressionStatement) Span() span.Span { return e.span }

func (*ExpressionStatement) stmtNode() {}

// Block is an ordered statement sequence; order is execution order.
type Block struct {
	Statements []Statement
	span       span.Span
}

// NewBlock constructs a block node.
func NewBlock(statements []Statement, sp span.Span) *Block {
	return &Block{Statements: statements, span: sp}
}

// Span returns the block's source span.
func (b *Block) Span() span.Span { return b.span }

func (*Block) stmtNode() {}
