package ast

import (
	"github.com/lumen-lang/lumen/internal/ordered"
	"github.com/lumen-lang/lumen/internal/span"
)

// FunctionInput is one declared input of a function: a typed variable, the
// input keyword, or one of the self receiver forms.
type FunctionInput interface {
	Node
	functionInputNode()
}

// FunctionInputVariable is a named, typed function input.
type FunctionInputVariable struct {
	Identifier *Identifier
	Const      bool
	Mutable    bool
	Type       Type
	span       span.Span
}

// NewFunctionInputVariable constructs a typed function input.
func NewFunctionInputVariable(identifier *Identifier, constant, mutable bool, typ Type, sp span.Span) *FunctionInputVariable {
	return &FunctionInputVariable{
		Identifier: identifier,
		Const:      constant,
		Mutable:    mutable,
		Type:       typ,
		span:       sp,
	}
}

// Span returns the input's source span.
func (f *FunctionInputVariable) Span() span.Span { return f.span }

func (*FunctionInputVariable) functionInputNode() {}

// InputKeyword is the program input bundle parameter.
type InputKeyword struct {
	span span.Span
}

// NewInputKeyword constructs an input keyword parameter.
func NewInputKeyword(sp span.Span) *InputKeyword {
	return &InputKeyword{span: sp}
}

// Span returns the keyword's source span.
func (k *InputKeyword) Span() span.Span { return k.span }

func (*InputKeyword) functionInputNode() {}

// SelfKeyword is the immutable self receiver.
type SelfKeyword struct {
	span span.Span
}

// NewSelfKeyword constructs a self receiver parameter.
func NewSelfKeyword(sp span.Span) *SelfKeyword {
	return &SelfKeyword{span: sp}
}

// Span returns the keyword's source span.
func (k *SelfKeyword) Span() span.Span { return k.span }

func (*SelfKeyword) functionInputNode() {}

// MutSelfKeyword is the mutable self receiver.
type MutSelfKeyword struct {
	span span.Span
}

// NewMutSelfKeyword constructs a mutable self receiver parameter.
func NewMutSelfKeyword(sp span.Span) *MutSelfKeyword {
	return &MutSelfKeyword{span: sp}
}

// Span returns the keyword's source span.
func (k *MutSelfKeyword) Span() span.Span { return k.span }

func (*MutSelfKeyword) functionInputNode() {}

// ConstSelfKeyword is the const self receiver.
type ConstSelfKeyword struct {
	span span.Span
}

// NewConstSelfKeyword constructs a const self receiver parameter.
func NewConstSelfKeyword(sp span.Span) *ConstSelfKeyword {
	return &ConstSelfKeyword{span: sp}
}

// Span returns the keyword's source span.
func (k *ConstSelfKeyword) Span() span.Span { return k.span }

func (*ConstSelfKeyword) functionInputNode() {}

// ImportTree is the body of an import statement: a named leaf with an
// optional alias, a glob, or a nested group under a common prefix.
type ImportTree interface {
	Node
	importTreeNode()
}

// ImportLeaf imports one symbol. Alias is empty when the symbol is imported
// under its own name.
type ImportLeaf struct {
	Symbol string
	Alias  string
	span   span.Span
}

// NewImportLeaf constructs a leaf import. alias may be empty.
func NewImportLeaf(symbol, alias string, sp span.Span) *ImportLeaf {
	return &ImportLeaf{Symbol: symbol, Alias: alias, span: sp}
}

// Span returns the leaf's source span.
func (l *ImportLeaf) Span() span.Span { return l.span }

func (*ImportLeaf) importTreeNode() {}

// ImportGlob imports every symbol of its enclosing prefix.
type ImportGlob struct {
	span span.Span
}

// NewImportGlob constructs a glob import.
func NewImportGlob(sp span.Span) *ImportGlob {
	return &ImportGlob{span: sp}
}

// Span returns the glob's source span.
func (g *ImportGlob) Span() span.Span { return g.span }

func (*ImportGlob) importTreeNode() {}

// ImportNested groups subtrees under a common path prefix.
type ImportNested struct {
	Prefix string
	Trees  []ImportTree
	span   span.Span
}

// NewImportNested constructs a nested import group.
func NewImportNested(prefix string, trees []ImportTree, sp span.Span) *ImportNested {
	return &ImportNested{Prefix: prefix, Trees: trees, span: sp}
}

// Span returns the group's source span.
func (n *ImportNested) Span() span.Span { return n.span }

func (*ImportNested) importTreeNode() {}

// ImportStatement is import Tree;.
type ImportStatement struct {
	Tree ImportTree
	span span.Span
}

// NewImportStatement constructs an import statement node.
func NewImportStatement(tree ImportTree, sp span.Span) *ImportStatement {
	return &ImportStatement{Tree: tree, span: sp}
}

// Span returns the statement's source span.
func (i *ImportStatement) Span() span.Span { return i.span }

// Annotation is @Name(arguments) on a function. Arguments are raw symbol
// text, carried verbatim.
type Annotation struct {
	Name      *Identifier
	Arguments []string
	span      span.Span
}

// NewAnnotation constructs an annotation node.
func NewAnnotation(name *Identifier, arguments []string, sp span.Span) *Annotation {
	return &Annotation{Name: name, Arguments: arguments, span: sp}
}

// Span returns the annotation's source span.
func (a *Annotation) Span() span.Span { return a.span }

// CircuitMember is one member of a circuit declaration: a variable or a
// function.
type CircuitMember interface {
	circuitMemberNode()
}

// CircuitVariable is a typed data member.
type CircuitVariable struct {
	Identifier *Identifier
	Type       Type
}

func (*CircuitVariable) circuitMemberNode() {}

// CircuitFunction is a member function.
type CircuitFunction struct {
	Function *Function
}

func (*CircuitFunction) circuitMemberNode() {}

// Circuit is a circuit declaration: a structured record type with members.
type Circuit struct {
	Name    *Identifier
	Members []CircuitMember
}

// Alias binds a name to a type.
type Alias struct {
	Name       *Identifier
	Represents Type
	span       span.Span
}

// NewAlias constructs a type alias declaration.
func NewAlias(name *Identifier, represents Type, sp span.Span) *Alias {
	return &Alias{Name: name, Represents: represents, span: sp}
}

// Span returns the alias's source span.
func (a *Alias) Span() span.Span { return a.span }

// Function is a function declaration.
//
// CoreMapping names the backend circuit gadget this function lowers to, or is
// empty for ordinary functions. It is backend metadata: rewrites copy it
// verbatim and never inspect it.
type Function struct {
	Identifier  *Identifier
	Annotations *ordered.Map[string, *Annotation]
	Input       []FunctionInput
	Const       bool
	Output      Type
	Block       *Block
	CoreMapping string
	span        span.Span
}

// NewFunction constructs a function declaration node.
func NewFunction(identifier *Identifier, annotations *ordered.Map[string, *Annotation], input []FunctionInput, constant bool, output Type, block *Block, coreMapping string, sp span.Span) *Function {
	return &Function{
		Identifier:  identifier,
		Annotations: annotations,
		Input:       input,
		Const:       constant,
		Output:      output,
		Block:       block,
		CoreMapping: coreMapping,
		span:        sp,
	}
}

// Span returns the function's source span.
func (f *Function) Span() span.Span { return f.span }

// Program is a fully resolved compilation unit.
//
// Name is backend metadata copied verbatim by rewrites. Imports maps dotted
// qualified paths ("pkg.sub.leaf"; segments cannot contain '.') to the
// resolved imported programs. The import graph is resolved upstream and
// assumed acyclic; this layer does not verify it. GlobalConsts maps the
// dotted qualified-name sequence of a const definition to its statement.
//
// The four maps preserve insertion order, and rewrites preserve their key
// sets and iteration order.
type Program struct {
	Name             string
	ExpectedInput    []FunctionInput
	ImportStatements []*ImportStatement
	Imports          *ordered.Map[string, *Program]
	Aliases          *ordered.Map[string, *Alias]
	Circuits         *ordered.Map[string, *Circuit]
	Functions        *ordered.Map[string, *Function]
	GlobalConsts     *ordered.Map[string, *DefinitionStatement]
}

// NewProgram returns an empty program with the given name and initialized
// aggregates.
func NewProgram(name string) *Program {
	return &Program{
		Name:         name,
		Imports:      ordered.NewMap[string, *Program](),
		Aliases:      ordered.NewMap[string, *Alias](),
		Circuits:     ordered.NewMap[string, *Circuit](),
		Functions:    ordered.NewMap[string, *Function](),
		GlobalConsts: ordered.NewMap[string, *DefinitionStatement](),
	}
}
