// Package ast defines the unchecked syntax tree the checker consumes: one
// parsed file's worth of record-type and top-level function declarations.
// Lexing and parsing live upstream of this package; these types are the
// assumed shape of that parser's output, reconstructed here only so the
// checker has something concrete to operate on.
package ast

import "github.com/max1624/jakt/internal/token"

// DefinitionLinkage distinguishes a record type declared in this file from
// one merely forward-declared for external linkage.
type DefinitionLinkage int

const (
	LinkageInternal DefinitionLinkage = iota
	LinkageExternal
)

// DefinitionType distinguishes the two record-type flavors the parser may
// produce. Only Struct is exercised by the checker today; Class is carried
// through because the original compiler's data model distinguishes them,
// even though no test file in this pass exercises Class semantics.
type DefinitionType int

const (
	DefinitionStruct DefinitionType = iota
	DefinitionClass
)

// FunctionLinkage marks how a function was declared. ImplicitConstructor is
// never produced by the parser — it is synthesized by the checker itself —
// but lives on this enum because CheckedFunction.Linkage (internal/check)
// reuses it.
type FunctionLinkage int

const (
	FunctionLinkageInternal FunctionLinkage = iota
	FunctionLinkageExternal
	FunctionLinkageImplicitConstructor
)

// UncheckedType is the syntactic spelling of a type before resolution:
// a bare name, or one of the three structural wrappers, or the absence of
// an annotation (Empty) requesting inference.
type UncheckedType interface {
	Span() token.Span
	uncheckedType()
}

type TypeName struct {
	Name string
	Sp   token.Span
}

func (t *TypeName) Span() token.Span { return t.Sp }
func (*TypeName) uncheckedType()     {}

type TypeVector struct {
	Inner UncheckedType
	Sp    token.Span
}

func (t *TypeVector) Span() token.Span { return t.Sp }
func (*TypeVector) uncheckedType()     {}

type TypeOptional struct {
	Inner UncheckedType
	Sp    token.Span
}

func (t *TypeOptional) Span() token.Span { return t.Sp }
func (*TypeOptional) uncheckedType()     {}

type TypeRawPtr struct {
	Inner UncheckedType
	Sp    token.Span
}

func (t *TypeRawPtr) Span() token.Span { return t.Sp }
func (*TypeRawPtr) uncheckedType()     {}

// TypeEmpty marks the absence of a type annotation; the checker treats it
// as a request for inference.
type TypeEmpty struct {
	Sp token.Span
}

func (t *TypeEmpty) Span() token.Span { return t.Sp }
func (*TypeEmpty) uncheckedType()     {}

// VarDecl is an unchecked variable (or field) declaration: a name, an
// optionally-empty type annotation, and a mutability flag.
type VarDecl struct {
	Name    string
	Ty      UncheckedType
	Mutable bool
	Sp      token.Span
}

// Parameter is one entry of a function's parameter list. The pseudo
// parameter named "this" denotes an implicit method receiver and is never
// labeled at call sites regardless of RequiresLabel.
type Parameter struct {
	RequiresLabel bool
	Variable      VarDecl
}

// Function is an unchecked function or method declaration.
type Function struct {
	Name       string
	NameSpan   token.Span
	Params     []Parameter
	ReturnType UncheckedType
	Block      Block
	Linkage    FunctionLinkage
}

// Struct is an unchecked record-type declaration: its own fields plus the
// methods declared in its body.
type Struct struct {
	Name              string
	Fields            []VarDecl
	Methods           []Function
	DefinitionLinkage DefinitionLinkage
	DefinitionType    DefinitionType
	Span              token.Span
}

// ParsedFile is the syntactic content of one source file: a flat list of
// record-type declarations and a flat list of top-level function
// declarations, in declaration order.
type ParsedFile struct {
	Structs []Struct
	Funs     []Function
}

// Block is an ordered sequence of statements, each introducing its own
// nested scope when checked.
type Block struct {
	Stmts []Statement
}

// Argument is one (possibly labeled) call-site argument.
type Argument struct {
	Label string
	Value Expression
}

// Call is an unchecked call: an optional single-element namespace (a
// record-type name, for `Name::method` or `Name(...)` construction
// syntax), a callee name, and its arguments.
type Call struct {
	Namespace []string
	Name      string
	Args      []Argument
}
