package ast

import "github.com/lumen-lang/lumen/internal/span"

// ValueExpression is a literal expression. String literals are a value kind,
// not a standalone node kind: a raw character sequence plus a span folds
// directly into a StringValue.
type ValueExpression interface {
	Expression
	valueNode()
}

// AddressValue is an address literal, carried as written in source.
type AddressValue struct {
	Value string
	span  span.Span
}

// NewAddressValue constructs an address literal node.
func NewAddressValue(value string, sp span.Span) *AddressValue {
	return &AddressValue{Value: value, span: sp}
}

// Span returns the literal's source span.
func (v *AddressValue) Span() span.Span { return v.span }

func (*AddressValue) exprNode()  {}
func (*AddressValue) valueNode() {}

// BooleanValue is a boolean literal.
type BooleanValue struct {
	Value bool
	span  span.Span
}

// NewBooleanValue constructs a boolean literal node.
func NewBooleanValue(value bool, sp span.Span) *BooleanValue {
	return &BooleanValue{Value: value, span: sp}
}

// Span returns the literal's source span.
func (v *BooleanValue) Span() span.Span { return v.span }

func (*BooleanValue) exprNode()  {}
func (*BooleanValue) valueNode() {}

// CharValue is a character literal.
type CharValue struct {
	Value rune
	span  span.Span
}

// NewCharValue constructs a character literal node.
func NewCharValue(value rune, sp span.Span) *CharValue {
	return &CharValue{Value: value, span: sp}
}

// Span returns the literal's source span.
func (v *CharValue) Span() span.Span { return v.span }

func (*CharValue) exprNode()  {}
func (*CharValue) valueNode() {}

// FieldValue is a field-element literal, carried as a decimal string because
// field elements exceed machine integer range.
type FieldValue struct {
	Value string
	span  span.Span
}

// NewFieldValue constructs a field literal node.
func NewFieldValue(value string, sp span.Span) *FieldValue {
	return &FieldValue{Value: value, span: sp}
}

// Span returns the literal's source span.
func (v *FieldValue) Span() span.Span { return v.span }

func (*FieldValue) exprNode()  {}
func (*FieldValue) valueNode() {}

// ImplicitValue is a numeric literal with no written type suffix; its type is
// inferred later.
type ImplicitValue struct {
	Value string
	span  span.Span
}

// NewImplicitValue constructs an implicit numeric literal node.
func NewImplicitValue(value string, sp span.Span) *ImplicitValue {
	return &ImplicitValue{Value: value, span: sp}
}

// Span returns the literal's source span.
func (v *ImplicitValue) Span() span.Span { return v.span }

func (*ImplicitValue) exprNode()  {}
func (*ImplicitValue) valueNode() {}

// IntegerValue is a sized integer literal. Kind is one of the integer
// primitive kinds; Value is the decimal text as written.
type IntegerValue struct {
	Kind  PrimitiveKind
	Value string
	span  span.Span
}

// NewIntegerValue constructs a sized integer literal node.
func NewIntegerValue(kind PrimitiveKind, value string, sp span.Span) *IntegerValue {
	return &IntegerValue{Kind: kind, Value: value, span: sp}
}

// Span returns the literal's source span.
func (v *IntegerValue) Span() span.Span { return v.span }

func (*IntegerValue) exprNode()  {}
func (*IntegerValue) valueNode() {}

// StringValue is a string literal, stored as its character sequence.
type StringValue struct {
	Value []rune
	span  span.Span
}

// NewStringValue constructs a string literal node.
func NewStringValue(value []rune, sp span.Span) *StringValue {
	return &StringValue{Value: value, span: sp}
}

// Span returns the literal's source span.
func (v *StringValue) Span() span.Span { return v.span }

func (*StringValue) exprNode()  {}
func (*StringValue) valueNode() {}

// GroupValue is a group-element literal: either a single coordinate with an
// inferred pair, or an explicit (x, y) tuple.
type GroupValue interface {
	ValueExpression
	groupValueNode()
}

// SingleGroupValue is a group literal written as one coordinate.
type SingleGroupValue struct {
	Value string
	span  span.Span
}

// NewSingleGroupValue constructs a single-coordinate group literal node.
func NewSingleGroupValue(value string, sp span.Span) *SingleGroupValue {
	return &SingleGroupValue{Value: value, span: sp}
}

// Span returns the literal's source span.
func (v *SingleGroupValue) Span() span.Span { return v.span }

func (*SingleGroupValue) exprNode()       {}
func (*SingleGroupValue) valueNode()      {}
func (*SingleGroupValue) groupValueNode() {}

// GroupCoordinateKind tags one coordinate of an explicit group tuple.
type GroupCoordinateKind string

const (
	GroupCoordNumber   GroupCoordinateKind = "number"
	GroupCoordSignHigh GroupCoordinateKind = "sign_high"
	GroupCoordSignLow  GroupCoordinateKind = "sign_low"
	GroupCoordInferred GroupCoordinateKind = "inferred"
)

// GroupCoordinate is one coordinate of a group tuple. Number is set only for
// GroupCoordNumber. Coordinates are identity-bearing and copied verbatim by
// rewrites.
type GroupCoordinate struct {
	Kind   GroupCoordinateKind
	Number string
}

// GroupTuple is a group literal written as an explicit (x, y) pair.
type GroupTuple struct {
	X    GroupCoordinate
	Y    GroupCoordinate
	span span.Span
}

// NewGroupTuple constructs an explicit group tuple literal node.
func NewGroupTuple(x, y GroupCoordinate, sp span.Span) *GroupTuple {
	return &GroupTuple{X: x, Y: y, span: sp}
}

// Span returns the literal's source span.
func (v *GroupTuple) Span() span.Span { return v.span }

func (*GroupTuple) exprNode()       {}
func (*GroupTuple) valueNode()      {}
func (*GroupTuple) groupValueNode() {}
