// Package testutil provides tree fixtures shared by tests across packages.
package testutil

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/ordered"
	"github.com/lumen-lang/lumen/internal/span"
)

// FixturePath is the source path used by all fixture spans.
const FixturePath = "main.lm"

// Sp returns a span into the fixture file.
func Sp(start, end int) span.Span {
	return span.New(FixturePath, start, end)
}

// Ident builds an identifier node.
func Ident(name string, start, end int) *ast.Identifier {
	return ast.NewIdentifier(name, Sp(start, end))
}

// Implicit builds an untyped integer literal.
func Implicit(value string, start, end int) *ast.ImplicitValue {
	return ast.NewImplicitValue(value, Sp(start, end))
}

// U32 builds a u32 literal.
func U32(value string, start, end int) *ast.IntegerValue {
	return ast.NewIntegerValue(ast.PrimitiveU32, value, Sp(start, end))
}

// Binary builds a binary expression.
func Binary(op ast.BinaryOp, left, right ast.Expression, start, end int) *ast.BinaryExpression {
	return ast.NewBinary(left, right, op, Sp(start, end))
}

// Block builds a statement block.
func Block(start, end int, statements ...ast.Statement) *ast.Block {
	return ast.NewBlock(statements, Sp(start, end))
}

// Return builds a return statement.
func Return(expression ast.Expression, start, end int) *ast.ReturnStatement {
	return ast.NewReturn(expression, Sp(start, end))
}

// U32Type returns the u32 primitive type.
func U32Type() ast.Type {
	return &ast.PrimitiveType{Kind: ast.PrimitiveU32}
}

// Function builds a function with no annotations or inputs.
func Function(name string, output ast.Type, block *ast.Block, start, end int) *ast.Function {
	return ast.NewFunction(
		Ident(name, start, start+len(name)),
		ordered.NewMap[string, *ast.Annotation](),
		nil,
		false,
		output,
		block,
		"",
		Sp(start, end),
	)
}

// Program builds a program holding the given functions, keyed and ordered
// by their names.
func Program(name string, functions ...*ast.Function) *ast.Program {
	p := ast.NewProgram(name)
	for _, fn := range functions {
		p.Functions.Set(fn.Identifier.Name, fn)
	}
	return p
}

// ReturnProgram builds a one-function program whose main returns the given
// expression. This is the smallest tree that exercises a full traversal:
// program, function, block, statement, expression.
func ReturnProgram(expression ast.Expression) *ast.Program {
	block := Block(20, 40, Return(expression, 22, 38))
	fn := Function("main", U32Type(), block, 0, 40)
	return Program("test", fn)
}
