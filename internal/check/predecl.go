package check

import (
	"github.com/max1624/jakt/internal/ast"
	"github.com/max1624/jakt/internal/types"
)

// predeclareStruct creates the record's own inner scope, predeclares every
// method's signature into that scope (so sibling records can already see
// each other once all are predeclared), and registers the record name
// itself in the parent scope — all before any method body or field type
// is resolved, which is what lets record A's methods reference record B
// whose methods reference A.
func predeclareStruct(project *Project, structure *ast.Struct, structID types.StructID, parentScopeID ScopeID) error {
	var err error

	structScopeID := project.CreateScope(parentScopeID)

	for _, fn := range structure.Methods {
		checkedFunction := &CheckedFunction{
			Name:       fn.Name,
			ReturnType: types.TUnk,
			Linkage:    fn.Linkage,
		}

		for _, param := range fn.Params {
			if param.Variable.Name == "this" {
				checkedFunction.Params = append(checkedFunction.Params, CheckedParameter{
					RequiresLabel: false,
					Variable:      CheckedVariable{Name: "this", Ty: types.NewStruct(structID), Mutable: param.Variable.Mutable},
				})
				continue
			}

			paramTy, paramErr := TypecheckTypename(project, param.Variable.Ty, structScopeID)
			err = firstError(err, paramErr)

			checkedFunction.Params = append(checkedFunction.Params, CheckedParameter{
				RequiresLabel: param.RequiresLabel,
				Variable:      CheckedVariable{Name: param.Variable.Name, Ty: paramTy, Mutable: param.Variable.Mutable},
			})
		}

		project.Funs = append(project.Funs, checkedFunction)
		addErr := project.AddFunctionToScope(structScopeID, fn.Name, FunctionID(len(project.Funs)-1), structure.Span)
		err = firstError(err, addErr)
	}

	project.Structs = append(project.Structs, &CheckedStruct{
		Name:              structure.Name,
		ScopeID:           structScopeID,
		DefinitionLinkage: structure.DefinitionLinkage,
		DefinitionType:    structure.DefinitionType,
	})

	addErr := project.AddStructToScope(parentScopeID, structure.Name, structID, structure.Span)
	return firstError(err, addErr)
}

// predeclareFunction is the free-function mirror of predeclareStruct: a
// signature-only CheckedFunction, resolved against the parent (file)
// scope and registered there, with the body left unchecked until pass 2b.
func predeclareFunction(project *Project, fn *ast.Function, parentScopeID ScopeID) error {
	var err error

	checkedFunction := &CheckedFunction{
		Name:       fn.Name,
		ReturnType: types.TUnk,
		Linkage:    fn.Linkage,
	}

	for _, param := range fn.Params {
		paramTy, paramErr := TypecheckTypename(project, param.Variable.Ty, parentScopeID)
		err = firstError(err, paramErr)

		checkedFunction.Params = append(checkedFunction.Params, CheckedParameter{
			RequiresLabel: param.RequiresLabel,
			Variable:      CheckedVariable{Name: param.Variable.Name, Ty: paramTy, Mutable: param.Variable.Mutable},
		})
	}

	project.Funs = append(project.Funs, checkedFunction)
	addErr := project.AddFunctionToScope(parentScopeID, fn.Name, FunctionID(len(project.Funs)-1), fn.NameSpan)
	return firstError(err, addErr)
}
