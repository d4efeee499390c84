package check

import (
	"github.com/max1624/jakt/internal/ast"
	"github.com/max1624/jakt/internal/token"
	"github.com/max1624/jakt/internal/types"
)

// TypecheckUnaryOperation types a unary operator applied to an
// already-checked operand. Every branch still returns a checked node on
// failure: only the diagnostic differs.
func TypecheckUnaryOperation(project *Project, expr CheckedExpression, op ast.UnaryOperator, span token.Span, scopeID ScopeID, safety SafetyMode) (CheckedExpression, error) {
	exprTy := expr.Ty()

	switch op.Kind {
	case ast.OpTypeCast:
		castTy, err := TypecheckTypename(project, op.CastTo, scopeID)
		return &UnaryOpExpr{Expr: expr, Op: op, Type: castTy}, err

	case ast.OpDereference:
		ptr, ok := exprTy.(*types.RawPtr)
		if !ok {
			return &UnaryOpExpr{Expr: expr, Op: op, Type: types.TUnk}, newDiag(span, "dereference of a non-pointer value")
		}
		if safety != Unsafe {
			return &UnaryOpExpr{Expr: expr, Op: op, Type: ptr.Elem}, newDiag(span, "dereference of raw pointer outside of unsafe block")
		}
		return &UnaryOpExpr{Expr: expr, Op: op, Type: ptr.Elem}, nil

	case ast.OpRawAddress:
		return &UnaryOpExpr{Expr: expr, Op: op, Type: types.NewRawPtr(exprTy)}, nil

	case ast.OpLogicalNot, ast.OpBitwiseNot:
		// Operand type is preserved; no shape constraint checked here by
		// design.
		return &UnaryOpExpr{Expr: expr, Op: op, Type: exprTy}, nil

	case ast.OpNegate:
		if types.IsNumeric(exprTy) {
			return &UnaryOpExpr{Expr: expr, Op: op, Type: exprTy}, nil
		}
		return &UnaryOpExpr{Expr: expr, Op: op, Type: exprTy}, newDiag(span, "negate on non-numeric value")

	case ast.OpPreIncrement, ast.OpPostIncrement, ast.OpPreDecrement, ast.OpPostDecrement:
		if !types.IsNumeric(exprTy) {
			return &UnaryOpExpr{Expr: expr, Op: op, Type: exprTy}, newDiag(span, "unary operation on non-numeric value")
		}
		if !IsMutable(expr) {
			return &UnaryOpExpr{Expr: expr, Op: op, Type: exprTy}, newDiag(span, "increment/decrement of immutable variable")
		}
		return &UnaryOpExpr{Expr: expr, Op: op, Type: exprTy}, nil

	default:
		return &UnaryOpExpr{Expr: expr, Op: op, Type: exprTy}, nil
	}
}

// TypecheckBinaryOperation computes the result type of a binary operator
// applied to already-checked (and, for assignments, already-promoted)
// operands. The result defaults to the LHS type;
// LogicalAnd/LogicalOr are Bool, and the assignment family additionally
// requires operand-type equality and a mutable LHS.
func TypecheckBinaryOperation(lhs CheckedExpression, op ast.BinaryOperator, rhs CheckedExpression, span token.Span) (types.Type, error) {
	ty := lhs.Ty()

	switch op.Kind {
	case ast.OpLogicalAnd, ast.OpLogicalOr:
		return types.TBool, nil

	default:
		if op.Kind.IsAssignment() {
			lhsTy, rhsTy := lhs.Ty(), rhs.Ty()
			if !types.Identical(lhsTy, rhsTy) {
				return lhsTy, newDiag(span, "assignment between incompatible types (%s and %s)", lhsTy, rhsTy)
			}
			if !IsMutable(lhs) {
				return lhsTy, newDiag(span, "assignment to immutable variable")
			}
		}
		return ty, nil
	}
}
