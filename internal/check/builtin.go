package check

import (
	"github.com/max1624/jakt/internal/ast"
	"github.com/max1624/jakt/internal/token"
	"github.com/max1624/jakt/internal/types"
)

// SeedBuiltins registers the String and RefVector pseudo-records in
// project's top-level scope, before any file is checked against it. These
// are ordinary CheckedStructs from the checker's point of view; they are
// injected fully-formed rather than produced by predeclaration since
// there is no surrounding ast.Struct syntax for them to predeclare from —
// the host language's runtime defines their real shape, and this pass
// only needs enough of it to resolve method calls against.
func SeedBuiltins(project *Project) error {
	topLevel := project.TopLevelScope()

	if err := seedStringStruct(project, topLevel); err != nil {
		return err
	}
	return seedRefVectorStruct(project, topLevel)
}

func seedStringStruct(project *Project, topLevel ScopeID) error {
	structID := types.StructID(len(project.Structs))
	scopeID := project.CreateScope(topLevel)

	project.Structs = append(project.Structs, &CheckedStruct{
		Name:              "String",
		ScopeID:           scopeID,
		DefinitionLinkage: ast.LinkageExternal,
		DefinitionType:    ast.DefinitionClass,
	})

	this := thisParam(structID)
	methods := []*CheckedFunction{
		{Name: "length", Params: []CheckedParameter{this}, ReturnType: types.TI64, Linkage: ast.FunctionLinkageExternal},
		{Name: "is_empty", Params: []CheckedParameter{this}, ReturnType: types.TBool, Linkage: ast.FunctionLinkageExternal},
		{Name: "to_uppercase", Params: []CheckedParameter{this}, ReturnType: types.TString, Linkage: ast.FunctionLinkageExternal},
		{Name: "to_lowercase", Params: []CheckedParameter{this}, ReturnType: types.TString, Linkage: ast.FunctionLinkageExternal},
		{Name: "characters", Params: []CheckedParameter{this}, ReturnType: types.NewVector(types.TCChar), Linkage: ast.FunctionLinkageExternal},
	}
	return registerBuiltinMethods(project, scopeID, methods)
}

func seedRefVectorStruct(project *Project, topLevel ScopeID) error {
	structID := types.StructID(len(project.Structs))
	scopeID := project.CreateScope(topLevel)

	project.Structs = append(project.Structs, &CheckedStruct{
		Name:              "RefVector",
		ScopeID:           scopeID,
		DefinitionLinkage: ast.LinkageExternal,
		DefinitionType:    ast.DefinitionClass,
	})

	this := thisParam(structID)
	methods := []*CheckedFunction{
		{Name: "size", Params: []CheckedParameter{this}, ReturnType: types.TI64, Linkage: ast.FunctionLinkageExternal},
		{Name: "is_empty", Params: []CheckedParameter{this}, ReturnType: types.TBool, Linkage: ast.FunctionLinkageExternal},
		{Name: "clear", Params: []CheckedParameter{this}, ReturnType: types.TVoid, Linkage: ast.FunctionLinkageExternal},
	}
	return registerBuiltinMethods(project, scopeID, methods)
}

func thisParam(structID types.StructID) CheckedParameter {
	return CheckedParameter{
		RequiresLabel: false,
		Variable:      CheckedVariable{Name: "this", Ty: types.NewStruct(structID), Mutable: false},
	}
}

func registerBuiltinMethods(project *Project, scopeID ScopeID, methods []*CheckedFunction) error {
	var err error
	for _, method := range methods {
		project.Funs = append(project.Funs, method)
		addErr := project.AddFunctionToScope(scopeID, method.Name, FunctionID(len(project.Funs)-1), token.Span{})
		err = firstError(err, addErr)
	}
	return err
}
