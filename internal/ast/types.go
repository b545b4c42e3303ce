package ast

// Type is a lumen type annotation. Types carry no span of their own; the
// containing node's span covers them.
type Type interface {
	typeNode()
}

// PrimitiveKind names a scalar primitive type.
type PrimitiveKind string

// Scalar primitive kinds. Field and group are the circuit-arithmetic scalars;
// the sized integers follow the usual signed/unsigned ladder.
const (
	PrimitiveAddress PrimitiveKind = "address"
	PrimitiveBoolean PrimitiveKind = "bool"
	PrimitiveChar    PrimitiveKind = "char"
	PrimitiveField   PrimitiveKind = "field"
	PrimitiveGroup   PrimitiveKind = "group"
	PrimitiveU8      PrimitiveKind = "u8"
	PrimitiveU16     PrimitiveKind = "u16"
	PrimitiveU32     PrimitiveKind = "u32"
	PrimitiveU64     PrimitiveKind = "u64"
	PrimitiveU128    PrimitiveKind = "u128"
	PrimitiveI8      PrimitiveKind = "i8"
	PrimitiveI16     PrimitiveKind = "i16"
	PrimitiveI32     PrimitiveKind = "i32"
	PrimitiveI64     PrimitiveKind = "i64"
	PrimitiveI128    PrimitiveKind = "i128"
)

// IsInteger reports whether the kind is a sized integer.
func (k PrimitiveKind) IsInteger() bool {
	switch k {
	case PrimitiveU8, PrimitiveU16, PrimitiveU32, PrimitiveU64, PrimitiveU128,
		PrimitiveI8, PrimitiveI16, PrimitiveI32, PrimitiveI64, PrimitiveI128:
		return true
	}
	return false
}

// PrimitiveType is a scalar primitive type.
type PrimitiveType struct {
	Kind PrimitiveKind
}

func (*PrimitiveType) typeNode() {}

// ArrayType is an array of Element with static Dimensions. Dimensions are
// carried as written in source (decimal strings); the substrate never
// evaluates them.
type ArrayType struct {
	Element    Type
	Dimensions []string
}

func (*ArrayType) typeNode() {}

// TupleType is an ordered tuple of element types.
type TupleType struct {
	Elements []Type
}

func (*TupleType) typeNode() {}

// NamedType references a circuit or alias by name.
type NamedType struct {
	Name *Identifier
}

func (*NamedType) typeNode() {}

// SelfType is the Self type inside a circuit body.
type SelfType struct{}

func (*SelfType) typeNode() {}
