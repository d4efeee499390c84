package check

import (
	"github.com/max1624/jakt/internal/ast"
	"github.com/max1624/jakt/internal/types"
)

// TypecheckExpression recursively types expr, resolving names and
// validating operand shapes. It never returns a nil CheckedExpression,
// even on error: a best-effort node (often typed Unknown, or Garbage) is
// always produced so the caller can keep walking.
func TypecheckExpression(project *Project, expr ast.Expression, scopeID ScopeID, safety SafetyMode) (CheckedExpression, error) {
	switch e := expr.(type) {
	case *ast.BooleanLiteral:
		return &BooleanExpr{Value: e.Value}, nil

	case *ast.NumericLiteral:
		narrowed, _ := types.Promote(e.Value, guessIntegerType(e.Value))
		return &NumericConstantExpr{Value: narrowed, Type: narrowed.Ty()}, nil

	case *ast.QuotedStringLiteral:
		return &QuotedStringExpr{Value: e.Value}, nil

	case *ast.CharacterLiteral:
		return &CharacterConstantExpr{Value: e.Value}, nil

	case *ast.VarExpr:
		if v, ok := project.FindVarInScope(scopeID, e.Name); ok {
			return &VarExpr{Variable: v}, nil
		}
		return &VarExpr{Variable: CheckedVariable{Name: e.Name, Ty: types.TUnk}}, newDiag(e.Sp, "variable not found")

	case *ast.TupleExpr:
		return typecheckTuple(project, e, scopeID, safety)

	case *ast.VectorExpr:
		return typecheckVector(project, e, scopeID, safety)

	case *ast.IndexedExpression:
		return typecheckIndexedExpression(project, e, scopeID, safety)

	case *ast.IndexedTuple:
		return typecheckIndexedTuple(project, e, scopeID, safety)

	case *ast.IndexedStruct:
		return typecheckIndexedStruct(project, e, scopeID, safety)

	case *ast.CallExpr:
		checkedCall, err := TypecheckCall(project, &e.Call, scopeID, e.Sp, safety)
		return &CallExpr{Call: checkedCall, Type: checkedCall.Type}, err

	case *ast.MethodCallExpr:
		return typecheckMethodCallExpr(project, e, scopeID, safety)

	case *ast.OptionalNoneExpr:
		return &OptionalNoneExpr{Type: types.TUnk}, nil

	case *ast.OptionalSomeExpr:
		checkedInner, err := TypecheckExpression(project, e.Expr, scopeID, safety)
		return &OptionalSomeExpr{Expr: checkedInner, Type: types.NewOptional(checkedInner.Ty())}, err

	case *ast.ForcedUnwrapExpr:
		return typecheckForcedUnwrap(project, e, scopeID, safety)

	case *ast.UnaryOpExpr:
		checkedInner, err := TypecheckExpression(project, e.Expr, scopeID, safety)
		checkedUnary, unaryErr := TypecheckUnaryOperation(project, checkedInner, e.Op, e.Sp, scopeID, safety)
		return checkedUnary, firstError(err, unaryErr)

	case *ast.BinaryOpExpr:
		return typecheckBinaryOpExpr(project, e, scopeID, safety)

	case *ast.OperatorExpr:
		return &GarbageExpr{}, newDiag(e.Sp, "garbage in expression")

	case *ast.GarbageExpr:
		return &GarbageExpr{}, newDiag(e.Sp, "garbage in expression")

	default:
		return &GarbageExpr{}, newDiag(expr.Span(), "garbage in expression")
	}
}

// guessIntegerType picks a provisional sized type for a raw literal purely
// so Promote has something to narrow to before the caller's context
// (a var decl's declared type, a parameter type, a binary op's LHS) takes
// over; I64/U64 are the widest of each signedness so this initial pass
// never fails to fit.
func guessIntegerType(c types.IntegerConstant) types.Type {
	if c.Signed {
		return types.TI64
	}
	return types.TU64
}

func typecheckTuple(project *Project, e *ast.TupleExpr, scopeID ScopeID, safety SafetyMode) (CheckedExpression, error) {
	var err error
	items := make([]CheckedExpression, 0, len(e.Items))
	elemTypes := make([]types.Type, 0, len(e.Items))
	for _, item := range e.Items {
		checkedItem, itemErr := TypecheckExpression(project, item, scopeID, safety)
		err = firstError(err, itemErr)
		items = append(items, checkedItem)
		elemTypes = append(elemTypes, checkedItem.Ty())
	}
	return &TupleExpr{Items: items, Type: types.NewTuple(elemTypes)}, err
}

func typecheckVector(project *Project, e *ast.VectorExpr, scopeID ScopeID, safety SafetyMode) (CheckedExpression, error) {
	var err error
	var innerTy types.Type = types.TUnk

	var checkedFillSize CheckedExpression
	if e.FillSize != nil {
		var fillErr error
		checkedFillSize, fillErr = TypecheckExpression(project, e.FillSize, scopeID, safety)
		err = firstError(err, fillErr)
	}

	items := make([]CheckedExpression, 0, len(e.Items))
	for _, v := range e.Items {
		checkedItem, itemErr := TypecheckExpression(project, v, scopeID, safety)
		err = firstError(err, itemErr)

		if types.IsUnknown(innerTy) {
			innerTy = checkedItem.Ty()
		} else if !types.Identical(innerTy, checkedItem.Ty()) {
			err = firstError(err, newDiag(v.Span(), "does not match type of previous values in vector"))
		}
		items = append(items, checkedItem)
	}

	return &VectorExpr{Items: items, FillSize: checkedFillSize, Type: types.NewVector(innerTy)}, err
}

func typecheckIndexedExpression(project *Project, e *ast.IndexedExpression, scopeID ScopeID, safety SafetyMode) (CheckedExpression, error) {
	checkedExpr, err := TypecheckExpression(project, e.Expr, scopeID, safety)
	checkedIdx, idxErr := TypecheckExpression(project, e.Index, scopeID, safety)
	err = firstError(err, idxErr)

	var ty types.Type = types.TUnk
	if vec, ok := checkedExpr.Ty().(*types.Vector); ok {
		if types.IsInteger(checkedIdx.Ty()) {
			ty = vec.Elem
		} else {
			err = firstError(err, newDiag(e.Index.Span(), "index is not an integer"))
		}
	} else {
		err = firstError(err, newDiag(e.Expr.Span(), "index used on value that can't be indexed"))
	}

	return &IndexedExpressionExpr{Expr: checkedExpr, Index: checkedIdx, Type: ty}, err
}

func typecheckIndexedTuple(project *Project, e *ast.IndexedTuple, scopeID ScopeID, safety SafetyMode) (CheckedExpression, error) {
	checkedExpr, err := TypecheckExpression(project, e.Expr, scopeID, safety)

	var ty types.Type = types.TUnk
	if tuple, ok := checkedExpr.Ty().(*types.Tuple); ok {
		if e.Index >= 0 && e.Index < len(tuple.Elems) {
			ty = tuple.Elems[e.Index]
		} else {
			err = firstError(err, newDiag(e.Sp, "tuple index past the end of the tuple"))
		}
	} else {
		err = firstError(err, newDiag(e.Expr.Span(), "tuple index used non-tuple value"))
	}

	return &IndexedTupleExpr{Expr: checkedExpr, Index: e.Index, Type: ty}, err
}

func typecheckIndexedStruct(project *Project, e *ast.IndexedStruct, scopeID ScopeID, safety SafetyMode) (CheckedExpression, error) {
	checkedExpr, err := TypecheckExpression(project, e.Expr, scopeID, safety)

	if st, ok := checkedExpr.Ty().(*types.Struct); ok {
		structure := project.Struct(st.ID)
		for _, field := range structure.Fields {
			if field.Name == e.Field {
				return &IndexedStructExpr{Expr: checkedExpr, Field: e.Field, Type: field.Ty}, err
			}
		}
		err = firstError(err, newDiag(e.Sp, "unknown member of struct: %s.%s", structure.Name, e.Field))
	} else {
		err = firstError(err, newDiag(e.Sp, "member access of non-struct value"))
	}

	return &IndexedStructExpr{Expr: checkedExpr, Field: e.Field, Type: types.TUnk}, err
}

func typecheckForcedUnwrap(project *Project, e *ast.ForcedUnwrapExpr, scopeID ScopeID, safety SafetyMode) (CheckedExpression, error) {
	checkedExpr, err := TypecheckExpression(project, e.Expr, scopeID, safety)

	if opt, ok := checkedExpr.Ty().(*types.Optional); ok {
		return &ForcedUnwrapExpr{Expr: checkedExpr, Type: opt.Elem}, err
	}
	err = firstError(err, newDiag(e.Expr.Span(), "Forced unwrap only works on Optional"))
	return &ForcedUnwrapExpr{Expr: checkedExpr, Type: types.TUnk}, err
}

func typecheckMethodCallExpr(project *Project, e *ast.MethodCallExpr, scopeID ScopeID, safety SafetyMode) (CheckedExpression, error) {
	checkedReceiver, err := TypecheckExpression(project, e.Expr, scopeID, safety)

	switch recvTy := checkedReceiver.Ty().(type) {
	case *types.Struct:
		checkedCall, callErr := TypecheckMethodCall(project, &e.Call, scopeID, e.Sp, recvTy.ID, safety)
		err = firstError(err, callErr)
		return &MethodCallExpr{Receiver: checkedReceiver, Call: checkedCall, Type: checkedCall.Type}, err

	case *types.Basic:
		if recvTy.Kind == types.StringKind {
			return dispatchBuiltinMethodCall(project, checkedReceiver, e, "String", safety, err)
		}
		err = firstError(err, newDiag(e.Expr.Span(), "no methods available on value"))
		return &GarbageExpr{}, err

	default:
		if _, ok := checkedReceiver.Ty().(*types.Vector); ok {
			return dispatchBuiltinMethodCall(project, checkedReceiver, e, "RefVector", safety, err)
		}
		err = firstError(err, newDiag(e.Expr.Span(), "no methods available on value"))
		return &GarbageExpr{}, err
	}
}

// dispatchBuiltinMethodCall resolves a method call against one of the
// externally-seeded pseudo-records: String for string
// receivers, RefVector for vector receivers. Both are looked up by name in
// the top-level scope specifically, bypassing the caller's own scope
// chain, so a user-defined record that happens to share the name can never
// shadow the built-in.
func dispatchBuiltinMethodCall(project *Project, receiver CheckedExpression, e *ast.MethodCallExpr, builtinName string, safety SafetyMode, err error) (CheckedExpression, error) {
	structID, ok := project.FindStructInScope(project.TopLevelScope(), builtinName)
	if !ok {
		err = firstError(err, newDiag(e.Expr.Span(), "no methods available on value"))
		return &GarbageExpr{}, err
	}
	checkedCall, callErr := TypecheckMethodCall(project, &e.Call, project.TopLevelScope(), e.Sp, structID, safety)
	err = firstError(err, callErr)
	return &MethodCallExpr{Receiver: receiver, Call: checkedCall, Type: checkedCall.Type}, err
}

func typecheckBinaryOpExpr(project *Project, e *ast.BinaryOpExpr, scopeID ScopeID, safety SafetyMode) (CheckedExpression, error) {
	checkedLHS, err := TypecheckExpression(project, e.LHS, scopeID, safety)
	checkedRHS, rhsErr := TypecheckExpression(project, e.RHS, scopeID, safety)
	err = firstError(err, rhsErr)

	promoteErr := TryPromoteConstantExprToType(&checkedRHS, checkedLHS.Ty(), e.RHS.Span())
	err = firstError(err, promoteErr)

	ty, opErr := TypecheckBinaryOperation(checkedLHS, e.Op, checkedRHS, e.Sp)
	err = firstError(err, opErr)

	return &BinaryOpExpr{LHS: checkedLHS, Op: e.Op, RHS: checkedRHS, Type: ty}, err
}
