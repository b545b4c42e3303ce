package ast

import "github.com/lumen-lang/lumen/internal/span"

// Node is any AST node with an associated source span.
type Node interface {
	Span() span.Span
}

// Expression is an expression node.
type Expression interface {
	Node
	exprNode()
}

// Statement is a statement node.
type Statement interface {
	Node
	stmtNode()
}

// TypeCell is a single updatable slot holding a Type.
//
// StaticAccess stores its resolved member type in a TypeCell because the type
// may be filled in by a later pass, after the node has been constructed. The
// cell is shared by pointer; assigning through it is visible to every holder.
// This is the only mutable slot in the node model.
type TypeCell struct {
	typ Type
}

// NewTypeCell returns a cell holding t. t may be nil for a not-yet-resolved
// slot.
func NewTypeCell(t Type) *TypeCell {
	return &TypeCell{typ: t}
}

// Get returns the currently held type, or nil if unresolved.
func (c *TypeCell) Get() Type {
	return c.typ
}

// Set assigns the held type.
func (c *TypeCell) Set(t Type) {
	c.typ = t
}
