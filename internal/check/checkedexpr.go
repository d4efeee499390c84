package check

import (
	"github.com/max1624/jakt/internal/ast"
	"github.com/max1624/jakt/internal/types"
)

// CheckedExpression is the sealed interface every checked expression form
// implements. Ty projects the expression's inferred type; every invariant
// is phrased in terms of this projection, never a type stored separately
// from the node.
type CheckedExpression interface {
	Ty() types.Type
	exprNode()
}

// ToIntegerConstant extracts the canonical IntegerConstant backing e, if e
// is a NumericConstant node; used by integer-literal promotion to
// recognize promotable expressions.
func ToIntegerConstant(e CheckedExpression) (types.IntegerConstant, bool) {
	nc, ok := e.(*NumericConstantExpr)
	if !ok {
		return types.IntegerConstant{}, false
	}
	return nc.Value.IntegerConstant(), true
}

// IsMutable reports whether e denotes a mutable storage location:
// mutability is monotone through IndexedStruct/IndexedExpression and
// otherwise false except for Var, which carries its own mutability flag.
func IsMutable(e CheckedExpression) bool {
	switch v := e.(type) {
	case *VarExpr:
		return v.Variable.Mutable
	case *IndexedStructExpr:
		return IsMutable(v.Expr)
	case *IndexedExpressionExpr:
		return IsMutable(v.Expr)
	default:
		return false
	}
}

type BooleanExpr struct{ Value bool }

func (*BooleanExpr) Ty() types.Type { return types.TBool }
func (*BooleanExpr) exprNode()      {}

type NumericConstantExpr struct {
	Value types.NumericConstant
	Type  types.Type
}

func (e *NumericConstantExpr) Ty() types.Type { return e.Type }
func (*NumericConstantExpr) exprNode()        {}

type QuotedStringExpr struct{ Value string }

func (*QuotedStringExpr) Ty() types.Type { return types.TString }
func (*QuotedStringExpr) exprNode()      {}

// CharacterConstantExpr's type is always CChar, matching the C-interop
// representation a character literal resolves to.
type CharacterConstantExpr struct{ Value rune }

func (*CharacterConstantExpr) Ty() types.Type { return types.TCChar }
func (*CharacterConstantExpr) exprNode()      {}

type UnaryOpExpr struct {
	Expr CheckedExpression
	Op   ast.UnaryOperator
	Type types.Type
}

func (e *UnaryOpExpr) Ty() types.Type { return e.Type }
func (*UnaryOpExpr) exprNode()        {}

type BinaryOpExpr struct {
	LHS  CheckedExpression
	Op   ast.BinaryOperator
	RHS  CheckedExpression
	Type types.Type
}

func (e *BinaryOpExpr) Ty() types.Type { return e.Type }
func (*BinaryOpExpr) exprNode()        {}

type TupleExpr struct {
	Items []CheckedExpression
	Type  types.Type
}

func (e *TupleExpr) Ty() types.Type { return e.Type }
func (*TupleExpr) exprNode()        {}

// VectorExpr's FillSize mirrors the unchecked form's optional repeat-fill
// count expression.
type VectorExpr struct {
	Items    []CheckedExpression
	FillSize CheckedExpression // nil when absent
	Type     types.Type
}

func (e *VectorExpr) Ty() types.Type { return e.Type }
func (*VectorExpr) exprNode()        {}

type IndexedExpressionExpr struct {
	Expr  CheckedExpression
	Index CheckedExpression
	Type  types.Type
}

func (e *IndexedExpressionExpr) Ty() types.Type { return e.Type }
func (*IndexedExpressionExpr) exprNode()        {}

type IndexedTupleExpr struct {
	Expr  CheckedExpression
	Index int
	Type  types.Type
}

func (e *IndexedTupleExpr) Ty() types.Type { return e.Type }
func (*IndexedTupleExpr) exprNode()        {}

type IndexedStructExpr struct {
	Expr  CheckedExpression
	Field string
	Type  types.Type
}

func (e *IndexedStructExpr) Ty() types.Type { return e.Type }
func (*IndexedStructExpr) exprNode()        {}

type CallExpr struct {
	Call CheckedCall
	Type types.Type
}

func (e *CallExpr) Ty() types.Type { return e.Type }
func (*CallExpr) exprNode()        {}

type MethodCallExpr struct {
	Receiver CheckedExpression
	Call     CheckedCall
	Type     types.Type
}

func (e *MethodCallExpr) Ty() types.Type { return e.Type }
func (*MethodCallExpr) exprNode()        {}

type VarExpr struct{ Variable CheckedVariable }

func (e *VarExpr) Ty() types.Type { return e.Variable.Ty }
func (*VarExpr) exprNode()        {}

// OptionalNoneExpr's type is Unknown: the binding context (e.g. a var decl's
// declared type) supplies the concrete Optional(T) elsewhere.
type OptionalNoneExpr struct{ Type types.Type }

func (e *OptionalNoneExpr) Ty() types.Type { return e.Type }
func (*OptionalNoneExpr) exprNode()        {}

// OptionalSomeExpr's Type is Optional(T), where T is the inner
// expression's type.
type OptionalSomeExpr struct {
	Expr CheckedExpression
	Type types.Type
}

func (e *OptionalSomeExpr) Ty() types.Type { return e.Type }
func (*OptionalSomeExpr) exprNode()        {}

type ForcedUnwrapExpr struct {
	Expr CheckedExpression
	Type types.Type
}

func (e *ForcedUnwrapExpr) Ty() types.Type { return e.Type }
func (*ForcedUnwrapExpr) exprNode()        {}

// GarbageExpr is produced both for parser-origin garbage and for a few
// checker-side dead ends (e.g. a method call on a receiver type with no
// methods) that have nothing sensible to return.
type GarbageExpr struct{}

func (*GarbageExpr) Ty() types.Type { return types.TUnk }
func (*GarbageExpr) exprNode()      {}
