package ast

import (
	"github.com/max1624/jakt/internal/token"
	"github.com/max1624/jakt/internal/types"
)

// Expression is the sealed interface implemented by every unchecked
// expression form. Span gives diagnostics a location even before a node
// has been checked.
type Expression interface {
	Span() token.Span
	exprNode()
}

type BooleanLiteral struct {
	Value bool
	Sp    token.Span
}

func (e *BooleanLiteral) Span() token.Span { return e.Sp }
func (*BooleanLiteral) exprNode()          {}

type NumericLiteral struct {
	Value types.IntegerConstant
	Sp    token.Span
}

func (e *NumericLiteral) Span() token.Span { return e.Sp }
func (*NumericLiteral) exprNode()          {}

type QuotedStringLiteral struct {
	Value string
	Sp    token.Span
}

func (e *QuotedStringLiteral) Span() token.Span { return e.Sp }
func (*QuotedStringLiteral) exprNode()          {}

type CharacterLiteral struct {
	Value rune
	Sp    token.Span
}

func (e *CharacterLiteral) Span() token.Span { return e.Sp }
func (*CharacterLiteral) exprNode()          {}

type UnaryOpExpr struct {
	Expr Expression
	Op   UnaryOperator
	Sp   token.Span
}

func (e *UnaryOpExpr) Span() token.Span { return e.Sp }
func (*UnaryOpExpr) exprNode()          {}

type BinaryOpExpr struct {
	LHS Expression
	Op  BinaryOperator
	RHS Expression
	Sp  token.Span
}

func (e *BinaryOpExpr) Span() token.Span { return e.Sp }
func (*BinaryOpExpr) exprNode()          {}

type TupleExpr struct {
	Items []Expression
	Sp    token.Span
}

func (e *TupleExpr) Span() token.Span { return e.Sp }
func (*TupleExpr) exprNode()          {}

// VectorExpr is a vector literal. FillSize, when non-nil, is the
// `[value; count]` repeat-fill form's count expression.
type VectorExpr struct {
	Items    []Expression
	FillSize Expression
	Sp       token.Span
}

func (e *VectorExpr) Span() token.Span { return e.Sp }
func (*VectorExpr) exprNode()          {}

type IndexedExpression struct {
	Expr  Expression
	Index Expression
	Sp    token.Span
}

func (e *IndexedExpression) Span() token.Span { return e.Sp }
func (*IndexedExpression) exprNode()          {}

type IndexedTuple struct {
	Expr  Expression
	Index int
	Sp    token.Span
}

func (e *IndexedTuple) Span() token.Span { return e.Sp }
func (*IndexedTuple) exprNode()          {}

type IndexedStruct struct {
	Expr  Expression
	Field string
	Sp    token.Span
}

func (e *IndexedStruct) Span() token.Span { return e.Sp }
func (*IndexedStruct) exprNode()          {}

type CallExpr struct {
	Call Call
	Sp   token.Span
}

func (e *CallExpr) Span() token.Span { return e.Sp }
func (*CallExpr) exprNode()          {}

type MethodCallExpr struct {
	Expr Expression
	Call Call
	Sp   token.Span
}

func (e *MethodCallExpr) Span() token.Span { return e.Sp }
func (*MethodCallExpr) exprNode()          {}

// VarExpr is a bare identifier reference.
type VarExpr struct {
	Name string
	Sp   token.Span
}

func (e *VarExpr) Span() token.Span { return e.Sp }
func (*VarExpr) exprNode()          {}

type OptionalNoneExpr struct {
	Sp token.Span
}

func (e *OptionalNoneExpr) Span() token.Span { return e.Sp }
func (*OptionalNoneExpr) exprNode()          {}

type OptionalSomeExpr struct {
	Expr Expression
	Sp   token.Span
}

func (e *OptionalSomeExpr) Span() token.Span { return e.Sp }
func (*OptionalSomeExpr) exprNode()          {}

type ForcedUnwrapExpr struct {
	Expr Expression
	Sp   token.Span
}

func (e *ForcedUnwrapExpr) Span() token.Span { return e.Sp }
func (*ForcedUnwrapExpr) exprNode()          {}

// OperatorExpr represents a bare operator token that survived parsing
// without being attached to operands — always a parser-origin error.
type OperatorExpr struct {
	Sp token.Span
}

func (e *OperatorExpr) Span() token.Span { return e.Sp }
func (*OperatorExpr) exprNode()          {}

// GarbageExpr is the parser's tombstone for a syntactically invalid
// expression; the checker re-surfaces it as a diagnostic but never panics
// on it.
type GarbageExpr struct {
	Sp token.Span
}

func (e *GarbageExpr) Span() token.Span { return e.Sp }
func (*GarbageExpr) exprNode()          {}
