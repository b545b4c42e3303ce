package ast

import "github.com/lumen-lang/lumen/internal/span"

// BinaryOp tags a binary operator. Operators are identity-bearing: rewrites
// carry them through, they are never independently reduced.
type BinaryOp string

const (
	OpAdd BinaryOp = "add"
	OpSub BinaryOp = "sub"
	OpMul BinaryOp = "mul"
	OpDiv BinaryOp = "div"
	OpPow BinaryOp = "pow"
	OpOr  BinaryOp = "or"
	OpAnd BinaryOp = "and"
	OpEq  BinaryOp = "eq"
	OpNe  BinaryOp = "ne"
	OpGe  BinaryOp = "ge"
	OpGt  BinaryOp = "gt"
	OpLe  BinaryOp = "le"
	OpLt  BinaryOp = "lt"
)

// UnaryOp tags a unary operator.
type UnaryOp string

const (
	OpNot    UnaryOp = "not"
	OpNegate UnaryOp = "negate"
)

// Identifier is a name occurrence.
type Identifier struct {
	Name string
	span span.Span
}

// NewIdentifier constructs an identifier node.
func NewIdentifier(name string, sp span.Span) *Identifier {
	return &Identifier{Name: name, span: sp}
}

// Span returns the identifier's source span.
func (i *Identifier) Span() span.Span { return i.span }

func (*Identifier) exprNode() {}

// BinaryExpression applies Op to Left and Right.
type BinaryExpression struct {
	Left  Expression
	Right Expression
	Op    BinaryOp
	span  span.Span
}

// NewBinary constructs a binary expression node.
func NewBinary(left, right Expression, op BinaryOp, sp span.Span) *BinaryExpression {
	return &BinaryExpression{Left: left, Right: right, Op: op, span: sp}
}

// Span returns the expression's source span.
func (b *BinaryExpression) Span() span.Span { return b.span }

func (*BinaryExpression) exprNode() {}

// UnaryExpression applies Op to Inner.
type UnaryExpression struct {
	Inner Expression
	Op    UnaryOp
	span  span.Span
}

// NewUnary constructs a unary expression node.
func NewUnary(inner Expression, op UnaryOp, sp span.Span) *UnaryExpression {
	return &UnaryExpression{Inner: inner, Op: op, span: sp}
}

// Span returns the expression's source span.
func (u *UnaryExpression) Span() span.Span { return u.span }

func (*UnaryExpression) exprNode() {}

// TernaryExpression is Condition ? IfTrue : IfFalse.
type TernaryExpression struct {
	Condition Expression
	IfTrue    Expression
	IfFalse   Expression
	span      span.Span
}

// NewTernary constructs a ternary expression node.
func NewTernary(condition, ifTrue, ifFalse Expression, sp span.Span) *TernaryExpression {
	return &TernaryExpression{Condition: condition, IfTrue: ifTrue, IfFalse: ifFalse, span: sp}
}

// Span returns the expression's source span.
func (t *TernaryExpression) Span() span.Span { return t.span }

func (*TernaryExpression) exprNode() {}

// CastExpression casts Inner to TargetType.
type CastExpression struct {
	Inner      Expression
	TargetType Type
	span       span.Span
}

// NewCast constructs a cast expression node.
func NewCast(inner Expression, target Type, sp span.Span) *CastExpression {
	return &CastExpression{Inner: inner, TargetType: target, span: sp}
}

// Span returns the expression's source span.
func (c *CastExpression) Span() span.Span { return c.span }

func (*CastExpression) exprNode() {}

// ArrayAccess is Array[Index].
type ArrayAccess struct {
	Array Expression
	Index Expression
	span  span.Span
}

// NewArrayAccess constructs an array access node.
func NewArrayAccess(array, index Expression, sp span.Span) *ArrayAccess {
	return &ArrayAccess{Array: array, Index: index, span: sp}
}

// Span returns the expression's source span.
func (a *ArrayAccess) Span() span.Span { return a.span }

func (*ArrayAccess) exprNode() {}

// ArrayRangeAccess is Array[Left..Right]. Either bound may be nil; an absent
// bound stays absent through every rewrite.
type ArrayRangeAccess struct {
	Array Expression
	Left  Expression
	Right Expression
	span  span.Span
}

// NewArrayRangeAccess constructs an array range access node. left and right
// may be nil.
func NewArrayRangeAccess(array, left, right Expression, sp span.Span) *ArrayRangeAccess {
	return &ArrayRangeAccess{Array: array, Left: left, Right: right, span: sp}
}

// Span returns the expression's source span.
func (a *ArrayRangeAccess) Span() span.Span { return a.span }

func (*ArrayRangeAccess) exprNode() {}

// MemberAccess is Inner.Name. Type is the resolved member type, nil until a
// later pass fills it in.
type MemberAccess struct {
	Inner Expression
	Name  *Identifier
	Type  Type
	span  span.Span
}

// NewMemberAccess constructs a member access node. typ may be nil.
func NewMemberAccess(inner Expression, name *Identifier, typ Type, sp span.Span) *MemberAccess {
	return &MemberAccess{Inner: inner, Name: name, Type: typ, span: sp}
}

// Span returns the expression's source span.
func (m *MemberAccess) Span() span.Span { return m.span }

func (*MemberAccess) exprNode() {}

// TupleAccess is Tuple.Index, with Index carried as a decimal string as
// written in source.
type TupleAccess struct {
	Tuple Expression
	Index string
	span  span.Span
}

// NewTupleAccess constructs a tuple access node.
func NewTupleAccess(tuple Expression, index string, sp span.Span) *TupleAccess {
	return &TupleAccess{Tuple: tuple, Index: index, span: sp}
}

// Span returns the expression's source span.
func (t *TupleAccess) Span() span.Span { return t.span }

func (*TupleAccess) exprNode() {}

// StaticAccess is Inner::Name. The resolved type lives in a shared TypeCell:
// static access resolution may complete after the node exists, so the slot is
// assignable rather than fixed at construction.
type StaticAccess struct {
	Inner Expression
	Name  *Identifier
	Type  *TypeCell
	span  span.Span
}

// NewStaticAccess constructs a static access node with its type cell.
func NewStaticAccess(inner Expression, name *Identifier, cell *TypeCell, sp span.Span) *StaticAccess {
	return &StaticAccess{Inner: inner, Name: name, Type: cell, span: sp}
}

// Span returns the expression's source span.
func (s *StaticAccess) Span() span.Span { return s.span }

func (*StaticAccess) exprNode() {}

// SpreadOrExpression is one element of an inline array literal: a plain
// expression, or a spread of another array.
type SpreadOrExpression struct {
	Spread     bool
	Expression Expression
}

// ArrayInlineExpression is [e1, e2, ...rest].
type ArrayInlineExpression struct {
	Elements []SpreadOrExpression
	span     span.Span
}

// NewArrayInline constructs an inline array literal node.
func NewArrayInline(elements []SpreadOrExpression, sp span.Span) *ArrayInlineExpression {
	return &ArrayInlineExpression{Elements: elements, span: sp}
}

// Span returns the expression's source span.
func (a *ArrayInlineExpression) Span() span.Span { return a.span }

func (*ArrayInlineExpression) exprNode() {}

// ArrayInitExpression is [Element; Dimensions]. Dimensions are carried as
// written in source and never reduced.
type ArrayInitExpression struct {
	Element    Expression
	Dimensions []string
	span       span.Span
}

// NewArrayInit constructs an array initializer node.
func NewArrayInit(element Expression, dimensions []string, sp span.Span) *ArrayInitExpression {
	return &ArrayInitExpression{Element: element, Dimensions: dimensions, span: sp}
}

// Span returns the expression's source span.
func (a *ArrayInitExpression) Span() span.Span { return a.span }

func (*ArrayInitExpression) exprNode() {}

// TupleInitExpression is (e1, e2, ...).
type TupleInitExpression struct {
	Elements []Expression
	span     span.Span
}

// NewTupleInit constructs a tuple initializer node.
func NewTupleInit(elements []Expression, sp span.Span) *TupleInitExpression {
	return &TupleInitExpression{Elements: elements, span: sp}
}

// Span returns the expression's source span.
func (t *TupleInitExpression) Span() span.Span { return t.span }

func (*TupleInitExpression) exprNode() {}

// CircuitVariableInitializer is one member binding in a circuit literal.
// Expression is nil for shorthand bindings (member name doubling as the
// value), and that absence is preserved through rewrites.
type CircuitVariableInitializer struct {
	Identifier *Identifier
	Expression Expression
}

// CircuitInitExpression is Name { members }.
type CircuitInitExpression struct {
	Name    *Identifier
	Members []*CircuitVariableInitializer
	span    span.Span
}

// NewCircuitInit constructs a circuit literal node.
func NewCircuitInit(name *Identifier, members []*CircuitVariableInitializer, sp span.Span) *CircuitInitExpression {
	return &CircuitInitExpression{Name: name, Members: members, span: sp}
}

// Span returns the expression's source span.
func (c *CircuitInitExpression) Span() span.Span { return c.span }

func (*CircuitInitExpression) exprNode() {}

// CallExpression is Function(Arguments...).
type CallExpression struct {
	Function  Expression
	Arguments []Expression
	span      span.Span
}

// NewCall constructs a call expression node.
func NewCall(function Expression, arguments []Expression, sp span.Span) *CallExpression {
	return &CallExpression{Function: function, Arguments: arguments, span: sp}
}

// Span returns the expression's source span.
func (c *CallExpression) Span() span.Span { return c.span }

func (*CallExpression) exprNode() {}
