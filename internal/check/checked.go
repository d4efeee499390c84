package check

import (
	"github.com/max1624/jakt/internal/ast"
	"github.com/max1624/jakt/internal/token"
	"github.com/max1624/jakt/internal/types"
)

// CheckedVariable is a resolved variable binding. It carries
// no span: it is looked up by name from a scope, and the span that matters
// for diagnostics is the reference site's, not the declaration's.
type CheckedVariable struct {
	Name    string
	Ty      types.Type
	Mutable bool
}

// CheckedVarDecl is a resolved variable (or field) declaration, spanned so
// redefinition and promotion-failure diagnostics can point back at it.
type CheckedVarDecl struct {
	Name    string
	Ty      types.Type
	Mutable bool
	Span    token.Span
}

// CheckedParameter is one resolved function parameter. The implicit `this`
// receiver parameter always has RequiresLabel == false.
type CheckedParameter struct {
	RequiresLabel bool
	Variable      CheckedVariable
}

// CheckedBlock is the checked form of a statement sequence.
type CheckedBlock struct {
	Stmts []CheckedStatement
}

// CheckedFunction is a resolved function or method.
// IsStatic is computed, not stored, to avoid two copies of truth going out
// of sync.
type CheckedFunction struct {
	Name       string
	ReturnType types.Type
	Params     []CheckedParameter
	Block      CheckedBlock
	Linkage    ast.FunctionLinkage
}

// IsStatic reports whether f has no implicit `this` receiver parameter.
func (f *CheckedFunction) IsStatic() bool {
	for _, p := range f.Params {
		if p.Variable.Name == "this" {
			return false
		}
	}
	return true
}

// CheckedStruct is a resolved record type. ScopeID is the
// record's own dedicated scope, parented to the file scope, in which its
// methods (and the synthesized constructor) are registered so
// `Name::method` lookup works.
type CheckedStruct struct {
	Name              string
	Fields            []CheckedVarDecl
	ScopeID           ScopeID
	DefinitionLinkage ast.DefinitionLinkage
	DefinitionType    ast.DefinitionType
}
