package check

import (
	"github.com/max1624/jakt/internal/ast"
	"github.com/max1624/jakt/internal/types"
)

var builtinTypeNames = map[string]types.Type{
	"i8":     types.TI8,
	"i16":    types.TI16,
	"i32":    types.TI32,
	"i64":    types.TI64,
	"u8":     types.TU8,
	"u16":    types.TU16,
	"u32":    types.TU32,
	"u64":    types.TU64,
	"f32":    types.TF32,
	"f64":    types.TF64,
	"c_char": types.TCChar,
	"c_int":  types.TCInt,
	"String": types.TString,
	"bool":   types.TBool,
	"void":   types.TVoid,
}

// TypecheckTypename resolves a syntactic type expression to a concrete
// Type. An empty annotation resolves to Unknown, signaling
// "please infer"; any other unrecognized name is looked up as a
// record-type name via the scope chain, producing an "unknown type"
// diagnostic on a miss.
func TypecheckTypename(project *Project, unchecked ast.UncheckedType, scopeID ScopeID) (types.Type, error) {
	switch t := unchecked.(type) {
	case *ast.TypeName:
		if builtin, ok := builtinTypeNames[t.Name]; ok {
			return builtin, nil
		}
		if id, ok := project.FindStructInScope(scopeID, t.Name); ok {
			return types.NewStruct(id), nil
		}
		return types.TUnk, newDiag(t.Sp, "unknown type")
	case *ast.TypeEmpty:
		return types.TUnk, nil
	case *ast.TypeVector:
		inner, err := TypecheckTypename(project, t.Inner, scopeID)
		return types.NewVector(inner), err
	case *ast.TypeOptional:
		inner, err := TypecheckTypename(project, t.Inner, scopeID)
		return types.NewOptional(inner), err
	case *ast.TypeRawPtr:
		inner, err := TypecheckTypename(project, t.Inner, scopeID)
		return types.NewRawPtr(inner), err
	default:
		return types.TUnk, nil
	}
}
