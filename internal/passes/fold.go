package passes

import (
	"math/big"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/reducer"
)

// Fold collapses arithmetic over integer literals into the literal result.
// A folded literal takes the span of the expression it replaces. Operations
// that would overflow the operand width, or divide by zero, are left alone
// for the checker to report with the original source positions.
type Fold struct {
	reducer.Base
}

// NewFold returns a constant folding pass.
func NewFold() *Fold {
	return &Fold{}
}

// ReduceExpression folds the rebuilt expression when it is arithmetic over
// literals of the same kind, and passes everything else through.
func (f *Fold) ReduceExpression(expression ast.Expression, rebuilt ast.Expression) (ast.Expression, error) {
	switch e := rebuilt.(type) {
	case *ast.BinaryExpression:
		if folded, ok := foldBinary(e); ok {
			return folded, nil
		}
	case *ast.UnaryExpression:
		if folded, ok := foldUnary(e); ok {
			return folded, nil
		}
	}
	return f.Base.ReduceExpression(expression, rebuilt)
}

func foldBinary(binary *ast.BinaryExpression) (ast.Expression, bool) {
	switch left := binary.Left.(type) {
	case *ast.IntegerValue:
		right, ok := binary.Right.(*ast.IntegerValue)
		if !ok || right.Kind != left.Kind {
			return nil, false
		}
		result, ok := foldInteger(left.Value, right.Value, binary.Op)
		if !ok || !fitsKind(result, left.Kind) {
			return nil, false
		}
		return ast.NewIntegerValue(left.Kind, result.String(), binary.Span()), true
	case *ast.ImplicitValue:
		right, ok := binary.Right.(*ast.ImplicitValue)
		if !ok {
			return nil, false
		}
		result, ok := foldInteger(left.Value, right.Value, binary.Op)
		if !ok {
			return nil, false
		}
		return ast.NewImplicitValue(result.String(), binary.Span()), true
	}
	return nil, false
}

func foldUnary(unary *ast.UnaryExpression) (ast.Expression, bool) {
	if unary.Op != ast.OpNegate {
		return nil, false
	}
	switch inner := unary.Inner.(type) {
	case *ast.IntegerValue:
		value, ok := new(big.Int).SetString(inner.Value, 10)
		if !ok {
			return nil, false
		}
		result := new(big.Int).Neg(value)
		if !fitsKind(result, inner.Kind) {
			return nil, false
		}
		return ast.NewIntegerValue(inner.Kind, result.String(), unary.Span()), true
	case *ast.ImplicitValue:
		value, ok := new(big.Int).SetString(inner.Value, 10)
		if !ok {
			return nil, false
		}
		return ast.NewImplicitValue(new(big.Int).Neg(value).String(), unary.Span()), true
	}
	return nil, false
}

func foldInteger(lhs, rhs string, op ast.BinaryOp) (*big.Int, bool) {
	left, ok := new(big.Int).SetString(lhs, 10)
	if !ok {
		return nil, false
	}
	right, ok := new(big.Int).SetString(rhs, 10)
	if !ok {
		return nil, false
	}
	result := new(big.Int)
	switch op {
	case ast.OpAdd:
		result.Add(left, right)
	case ast.OpSub:
		result.Sub(left, right)
	case ast.OpMul:
		result.Mul(left, right)
	case ast.OpDiv:
		if right.Sign() == 0 {
			return nil, false
		}
		// Truncated division, matching runtime integer semantics.
		result.Quo(left, right)
	default:
		return nil, false
	}
	return result, true
}

func fitsKind(value *big.Int, kind ast.PrimitiveKind) bool {
	var bits uint
	signed := false
	switch kind {
	case ast.PrimitiveU8:
		bits = 8
	case ast.PrimitiveU16:
		bits = 16
	case ast.PrimitiveU32:
		bits = 32
	case ast.PrimitiveU64:
		bits = 64
	case ast.PrimitiveU128:
		bits = 128
	case ast.PrimitiveI8:
		bits, signed = 8, true
	case ast.PrimitiveI16:
		bits, signed = 16, true
	case ast.PrimitiveI32:
		bits, signed = 32, true
	case ast.PrimitiveI64:
		bits, signed = 64, true
	case ast.PrimitiveI128:
		bits, signed = 128, true
	default:
		return false
	}
	one := big.NewInt(1)
	if signed {
		max := new(big.Int).Sub(new(big.Int).Lsh(one, bits-1), one)
		min := new(big.Int).Neg(new(big.Int).Lsh(one, bits-1))
		return value.Cmp(min) >= 0 && value.Cmp(max) <= 0
	}
	max := new(big.Int).Sub(new(big.Int).Lsh(one, bits), one)
	return value.Sign() >= 0 && value.Cmp(max) <= 0
}
