package check

import (
	"github.com/max1624/jakt/internal/ast"
	"github.com/max1624/jakt/internal/types"
)

// checkStruct resolves every field's type, attaches the resolved field
// list to the struct appended during predeclaration, synthesizes and
// registers the implicit constructor, and checks every method body.
func checkStruct(project *Project, structure *ast.Struct, structID types.StructID, parentScopeID ScopeID) error {
	var err error

	fields := make([]CheckedVarDecl, 0, len(structure.Fields))
	for _, unchecked := range structure.Fields {
		fieldTy, fieldErr := TypecheckTypename(project, unchecked.Ty, parentScopeID)
		err = firstError(err, fieldErr)

		fields = append(fields, CheckedVarDecl{
			Name:    unchecked.Name,
			Ty:      fieldTy,
			Mutable: unchecked.Mutable,
			Span:    unchecked.Sp,
		})
	}

	checkedStruct := project.Struct(structID)
	checkedStruct.Fields = fields

	constructorParams := make([]CheckedParameter, 0, len(fields))
	for _, field := range fields {
		constructorParams = append(constructorParams, CheckedParameter{
			RequiresLabel: true,
			Variable:      CheckedVariable{Name: field.Name, Ty: field.Ty, Mutable: field.Mutable},
		})
	}

	project.Funs = append(project.Funs, &CheckedFunction{
		Name:       structure.Name,
		Linkage:    ast.FunctionLinkageImplicitConstructor,
		Params:     constructorParams,
		ReturnType: types.NewStruct(structID),
	})
	constructorID := FunctionID(len(project.Funs) - 1)

	// The implicit constructor is registered twice — once so
	// `Name::Name(...)`-style lookup inside the record's own scope works,
	// once so plain `Name(...)` construction from outside does too.
	addErr := project.AddFunctionToScope(checkedStruct.ScopeID, structure.Name, constructorID, structure.Span)
	err = firstError(err, addErr)
	addErr = project.AddFunctionToScope(parentScopeID, structure.Name, constructorID, structure.Span)
	err = firstError(err, addErr)

	for i := range structure.Methods {
		methodErr := checkMethod(project, &structure.Methods[i], checkedStruct.ScopeID, structID)
		err = firstError(err, methodErr)
	}

	return err
}

// checkFunction is pass 2b for a free function: build a
// fresh scope for the body, bind each (already-resolved) parameter as a
// variable, check the body, and resolve or infer the return type.
func checkFunction(project *Project, fn *ast.Function, parentScopeID ScopeID) error {
	var err error

	functionScopeID := project.CreateScope(parentScopeID)

	funcID, ok := project.FindFunctionInScope(parentScopeID, fn.Name)
	if !ok {
		panic("internal error: missing previously defined function " + fn.Name)
	}
	checkedFunction := project.Function(funcID)

	for _, param := range checkedFunction.Params {
		addErr := project.AddVarToScope(functionScopeID, param.Variable, fn.NameSpan)
		err = firstError(err, addErr)
	}

	block, blockErr := TypecheckBlock(project, &fn.Block, functionScopeID, Safe)
	err = firstError(err, blockErr)

	declaredReturnTy, retErr := TypecheckTypename(project, fn.ReturnType, parentScopeID)
	err = firstError(err, retErr)

	checkedFunction = project.Function(funcID)
	checkedFunction.Block = block
	checkedFunction.ReturnType = inferReturnType(declaredReturnTy, block)

	return err
}

// checkMethod mirrors checkFunction for a method body,
// looking the method up in the record's own inner scope rather than the
// file scope, and resolving its declared return type against the parent
// (file) scope.
func checkMethod(project *Project, fn *ast.Function, structScopeID ScopeID, structID types.StructID) error {
	var err error

	functionScopeID := project.CreateScope(structScopeID)

	methodID, ok := project.FindFunctionInScope(structScopeID, fn.Name)
	if !ok {
		panic("internal error: we just predeclared this method, but it's not present: " + fn.Name)
	}
	checkedFunction := project.Function(methodID)

	for _, param := range checkedFunction.Params {
		addErr := project.AddVarToScope(functionScopeID, param.Variable, fn.NameSpan)
		err = firstError(err, addErr)
	}

	block, blockErr := TypecheckBlock(project, &fn.Block, functionScopeID, Safe)
	err = firstError(err, blockErr)

	parentScopeID := project.Scopes[structScopeID].Parent
	declaredReturnTy, retErr := TypecheckTypename(project, fn.ReturnType, parentScopeID)
	err = firstError(err, retErr)

	checkedFunction = project.Function(methodID)
	checkedFunction.Block = block
	checkedFunction.ReturnType = inferReturnType(declaredReturnTy, block)

	return err
}

// inferReturnType implements a deliberately narrow rule: if
// the declared return type resolved to Unknown and the block's first
// statement is a Return, adopt that expression's type; any other first
// statement (or no statements at all) implies Void. A concrete declared
// return type always wins.
func inferReturnType(declared types.Type, block CheckedBlock) types.Type {
	if !types.IsUnknown(declared) {
		return declared
	}
	if len(block.Stmts) > 0 {
		if ret, ok := block.Stmts[0].(*ReturnStmt); ok {
			return ret.Expr.Ty()
		}
	}
	return types.TVoid
}
