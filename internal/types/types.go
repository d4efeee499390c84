// Package types defines the closed type universe the checker resolves
// every expression and declaration against. A Type is exactly one of the
// constructors below; there is no open extension point, mirroring
// go/types' sealed Type interface (go/types.Type) rather than an
// inheritance hierarchy — the variants carry unrelated payload shapes, so
// an inheritance-style hierarchy would buy nothing here.
package types

import "fmt"

// StructID is a dense, append-only index into Project.Structs. It is never
// aliased against ScopeID or FunctionID even though all three are plain
// ints, so all three are kept as distinct named types to prevent mixing them
// up at call sites.
type StructID int

// BasicKind enumerates the primitive, non-composite members of the type
// universe.
type BasicKind int

const (
	Invalid BasicKind = iota
	Bool
	StringKind
	Void
	Unknown

	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64

	F32
	F64

	// C-interop kinds.
	CChar
	CInt
)

var basicNames = map[BasicKind]string{
	Invalid:    "invalid",
	Bool:       "bool",
	StringKind: "String",
	Void:       "void",
	Unknown:    "unknown",
	I8:         "i8",
	I16:        "i16",
	I32:        "i32",
	I64:        "i64",
	U8:         "u8",
	U16:        "u16",
	U32:        "u32",
	U64:        "u64",
	F32:        "f32",
	F64:        "f64",
	CChar:      "c_char",
	CInt:       "c_int",
}

// Type is the sealed interface implemented by every member of the type
// universe. Equal performs a structural-except-for-Struct comparison:
// constructor and argument equality for every constructor except Struct,
// which compares by StructID (nominal typing).
type Type interface {
	String() string
	Equal(other Type) bool
	isType()
}

// Basic is every non-composite member of the universe: Bool, String, Void,
// Unknown, the eight integer kinds, the two float kinds, and the two
// C-interop kinds.
type Basic struct {
	Kind BasicKind
}

func NewBasic(kind BasicKind) *Basic { return &Basic{Kind: kind} }

func (b *Basic) String() string { return basicNames[b.Kind] }
func (b *Basic) Equal(other Type) bool {
	o, ok := other.(*Basic)
	return ok && o.Kind == b.Kind
}
func (*Basic) isType() {}

var (
	TBool   = NewBasic(Bool)
	TString = NewBasic(StringKind)
	TVoid   = NewBasic(Void)
	TUnk    = NewBasic(Unknown)
	TI8     = NewBasic(I8)
	TI16    = NewBasic(I16)
	TI32    = NewBasic(I32)
	TI64    = NewBasic(I64)
	TU8     = NewBasic(U8)
	TU16    = NewBasic(U16)
	TU32    = NewBasic(U32)
	TU64    = NewBasic(U64)
	TF32    = NewBasic(F32)
	TF64    = NewBasic(F64)
	TCChar  = NewBasic(CChar)
	TCInt   = NewBasic(CInt)
)

// IsInteger reports whether t is one of the eight sized integer kinds.
func IsInteger(t Type) bool {
	b, ok := t.(*Basic)
	if !ok {
		return false
	}
	switch b.Kind {
	case I8, I16, I32, I64, U8, U16, U32, U64:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether t is an integer or float kind.
func IsNumeric(t Type) bool {
	if IsInteger(t) {
		return true
	}
	b, ok := t.(*Basic)
	return ok && (b.Kind == F32 || b.Kind == F64)
}

// Vector is a dynamically-sized homogeneous sequence type.
type Vector struct {
	Elem Type
}

func NewVector(elem Type) *Vector { return &Vector{Elem: elem} }
func (v *Vector) String() string  { return fmt.Sprintf("[%s]", v.Elem) }
func (v *Vector) Equal(other Type) bool {
	o, ok := other.(*Vector)
	return ok && Identical(v.Elem, o.Elem)
}
func (*Vector) isType() {}

// Tuple is a fixed-size heterogeneous sequence type.
type Tuple struct {
	Elems []Type
}

func NewTuple(elems []Type) *Tuple { return &Tuple{Elems: elems} }
func (t *Tuple) String() string {
	s := "("
	for i, e := range t.Elems {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + ")"
}
func (t *Tuple) Equal(other Type) bool {
	o, ok := other.(*Tuple)
	if !ok || len(o.Elems) != len(t.Elems) {
		return false
	}
	for i := range t.Elems {
		if !Identical(t.Elems[i], o.Elems[i]) {
			return false
		}
	}
	return true
}
func (*Tuple) isType() {}

// Optional wraps a type that may or may not be present.
type Optional struct {
	Elem Type
}

func NewOptional(elem Type) *Optional { return &Optional{Elem: elem} }
func (o *Optional) String() string    { return o.Elem.String() + "?" }
func (o *Optional) Equal(other Type) bool {
	v, ok := other.(*Optional)
	return ok && Identical(o.Elem, v.Elem)
}
func (*Optional) isType() {}

// RawPtr is an unsafe raw pointer to a value of the element type.
type RawPtr struct {
	Elem Type
}

func NewRawPtr(elem Type) *RawPtr { return &RawPtr{Elem: elem} }
func (p *RawPtr) String() string  { return "raw " + p.Elem.String() }
func (p *RawPtr) Equal(other Type) bool {
	o, ok := other.(*RawPtr)
	return ok && Identical(p.Elem, o.Elem)
}
func (*RawPtr) isType() {}

// Struct is a reference to a user-defined record type, compared nominally
// by StructID rather than by structural shape.
type Struct struct {
	ID StructID
}

func NewStruct(id StructID) *Struct { return &Struct{ID: id} }
func (s *Struct) String() string    { return fmt.Sprintf("struct#%d", s.ID) }
func (s *Struct) Equal(other Type) bool {
	o, ok := other.(*Struct)
	return ok && o.ID == s.ID
}
func (*Struct) isType() {}

// Identical is the structural (nominal for Struct) equality check. A nil
// Type never equals anything, including another nil, since every checked
// node is expected to carry a concrete Type value (possibly Unknown).
func Identical(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Equal(b)
}

// IsUnknown reports whether t is the Unknown placeholder.
func IsUnknown(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b.Kind == Unknown
}
