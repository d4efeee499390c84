package check

import (
	"github.com/max1624/jakt/internal/ast"
	"github.com/max1624/jakt/internal/token"
	"github.com/max1624/jakt/internal/types"
)

// resolveCall looks up the callee a (possibly namespaced) call refers to:
// a namespaced call resolves its first namespace segment as a record-type
// name and looks the callee up in that record's inner scope; an
// unnamespaced call walks the ordinary scope chain.
func resolveCall(project *Project, call *ast.Call, span token.Span, scopeID ScopeID) (*CheckedFunction, FunctionID, error) {
	if len(call.Namespace) > 0 {
		namespace := call.Namespace[0]
		structID, ok := project.FindStructInScope(scopeID, namespace)
		if !ok {
			return nil, 0, newDiag(span, "unknown namespace or class: %s", namespace)
		}
		structure := project.Struct(structID)
		funcID, ok := project.FindFunctionInScope(structure.ScopeID, call.Name)
		if !ok {
			return nil, 0, nil
		}
		return project.Function(funcID), funcID, nil
	}

	funcID, ok := project.FindFunctionInScope(scopeID, call.Name)
	if !ok {
		return nil, 0, newDiag(span, "call to unknown function: %s", call.Name)
	}
	return project.Function(funcID), funcID, nil
}

// TypecheckCall resolves and checks a free (non-method) call.
// println/eprintln are a deliberate bridge to the code generator: they
// accept any number of arguments of any type and skip arity/label
// checking entirely.
func TypecheckCall(project *Project, call *ast.Call, scopeID ScopeID, span token.Span, safety SafetyMode) (CheckedCall, error) {
	if call.Name == "println" || call.Name == "eprintln" {
		return typecheckPrintlnCall(project, call, scopeID, safety)
	}

	var err error
	checkedArgs := []CheckedArgument{}
	var returnTy types.Type = types.TUnk

	callee, _, resolveErr := resolveCall(project, call, span, scopeID)
	err = firstError(err, resolveErr)

	if callee != nil {
		returnTy = callee.ReturnType

		if len(callee.Params) != len(call.Args) {
			err = firstError(err, newDiag(span, "wrong number of arguments"))
		} else {
			for idx := range call.Args {
				arg := call.Args[idx]
				param := callee.Params[idx]

				checkedArg, argErr := TypecheckExpression(project, arg.Value, scopeID, safety)
				err = firstError(err, argErr)

				if varExpr, ok := arg.Value.(*ast.VarExpr); ok {
					if varExpr.Name != param.Variable.Name && param.RequiresLabel && arg.Label != param.Variable.Name {
						err = firstError(err, newDiag(arg.Value.Span(), "Wrong parameter name in argument label"))
					}
				} else if param.RequiresLabel && arg.Label != param.Variable.Name {
					err = firstError(err, newDiag(arg.Value.Span(), "Wrong parameter name in argument label"))
				}

				promoteErr := TryPromoteConstantExprToType(&checkedArg, param.Variable.Ty, arg.Value.Span())
				err = firstError(err, promoteErr)

				if !types.Identical(checkedArg.Ty(), param.Variable.Ty) {
					err = firstError(err, newDiag(arg.Value.Span(), "Parameter type mismatch"))
				}

				checkedArgs = append(checkedArgs, CheckedArgument{Label: arg.Label, Value: checkedArg})
			}
		}
	}

	return CheckedCall{Namespace: call.Namespace, Name: call.Name, Args: checkedArgs, Type: returnTy}, err
}

func typecheckPrintlnCall(project *Project, call *ast.Call, scopeID ScopeID, safety SafetyMode) (CheckedCall, error) {
	var err error
	checkedArgs := []CheckedArgument{}
	for _, arg := range call.Args {
		checkedArg, argErr := TypecheckExpression(project, arg.Value, scopeID, safety)
		err = firstError(err, argErr)
		checkedArgs = append(checkedArgs, CheckedArgument{Label: arg.Label, Value: checkedArg})
	}
	return CheckedCall{Namespace: call.Namespace, Name: call.Name, Args: checkedArgs, Type: types.TVoid}, err
}

// TypecheckMethodCall resolves and checks a method call against the
// receiver's record scope. The hidden `this` occupies
// parameter index 0, so call argument i maps to callee parameter i+1.
// Both label-checking branches below read RequiresLabel and the name from
// that same matched parameter, callee.Params[idx+1].
func TypecheckMethodCall(project *Project, call *ast.Call, scopeID ScopeID, span token.Span, structID types.StructID, safety SafetyMode) (CheckedCall, error) {
	var err error
	checkedArgs := []CheckedArgument{}
	var returnTy types.Type = types.TUnk

	structure := project.Struct(structID)
	callee, _, resolveErr := resolveCall(project, call, span, structure.ScopeID)
	err = firstError(err, resolveErr)

	if callee != nil {
		returnTy = callee.ReturnType

		if len(callee.Params) != len(call.Args)+1 {
			err = firstError(err, newDiag(span, "wrong number of arguments"))
		} else {
			for idx := range call.Args {
				arg := call.Args[idx]
				calleeParam := callee.Params[idx+1]

				checkedArg, argErr := TypecheckExpression(project, arg.Value, scopeID, safety)
				err = firstError(err, argErr)

				if varExpr, ok := arg.Value.(*ast.VarExpr); ok {
					if varExpr.Name != calleeParam.Variable.Name && calleeParam.RequiresLabel && arg.Label != calleeParam.Variable.Name {
						err = firstError(err, newDiag(arg.Value.Span(), "Wrong parameter name in argument label"))
					}
				} else if calleeParam.RequiresLabel && arg.Label != calleeParam.Variable.Name {
					err = firstError(err, newDiag(arg.Value.Span(), "Wrong parameter name in argument label"))
				}

				promoteErr := TryPromoteConstantExprToType(&checkedArg, calleeParam.Variable.Ty, arg.Value.Span())
				err = firstError(err, promoteErr)

				if !types.Identical(checkedArg.Ty(), calleeParam.Variable.Ty) {
					err = firstError(err, newDiag(arg.Value.Span(), "Parameter type mismatch"))
				}

				checkedArgs = append(checkedArgs, CheckedArgument{Label: arg.Label, Value: checkedArg})
			}
		}
	}

	return CheckedCall{Name: call.Name, Args: checkedArgs, Type: returnTy}, err
}
