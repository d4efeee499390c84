package check

import (
	"github.com/max1624/jakt/internal/token"
	"github.com/max1624/jakt/internal/types"
)

// TryPromoteConstantExprToType attempts to narrow *expr in place to
// target: if target is not an integer type, or expr is not an integer
// constant, this is a no-op; otherwise expr is replaced with the narrowed
// NumericConstant on success, or a promotion-failure Diagnostic is
// returned (and expr left unchanged) on overflow.
func TryPromoteConstantExprToType(expr *CheckedExpression, target types.Type, span token.Span) error {
	if !types.IsInteger(target) {
		return nil
	}
	constant, ok := ToIntegerConstant(*expr)
	if !ok {
		return nil
	}
	narrowed, fits := types.Promote(constant, target)
	if !fits {
		return newDiag(span, "Integer promotion failed")
	}
	*expr = &NumericConstantExpr{Value: narrowed, Type: narrowed.Ty()}
	return nil
}
