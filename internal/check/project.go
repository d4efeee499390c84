package check

import (
	"github.com/max1624/jakt/internal/token"
	"github.com/max1624/jakt/internal/types"
)

// Project is the append-only container the whole checker run mutates.
// Scopes, Funs and Structs only ever grow: indices handed out during one
// run remain valid for the rest of it, which is what lets method bodies
// and record fields reference each other by id despite being built in
// two passes.
type Project struct {
	Scopes  []*Scope
	Funs    []*CheckedFunction
	Structs []*CheckedStruct
}

// NewProject creates a Project seeded with the single top-level,
// parentless scope. Every file checked against this project shares that
// one ambient top-level scope — there is no module or package system
// beyond a single file plus this one shared scope.
func NewProject() *Project {
	return &Project{
		Scopes: []*Scope{newScope(noParent)},
	}
}

// TopLevelScope is the project-global scope every file's declarations are
// predeclared into.
func (p *Project) TopLevelScope() ScopeID { return 0 }

// CreateScope appends a new scope parented to parent and returns its id.
func (p *Project) CreateScope(parent ScopeID) ScopeID {
	p.Scopes = append(p.Scopes, newScope(parent))
	return ScopeID(len(p.Scopes) - 1)
}

func (p *Project) scope(id ScopeID) *Scope { return p.Scopes[id] }

// AddVarToScope registers var in scope, emitting a redefinition
// Diagnostic if a variable of the same name already exists in that exact
// scope (not its ancestors).
func (p *Project) AddVarToScope(id ScopeID, v CheckedVariable, span token.Span) error {
	s := p.scope(id)
	for _, existing := range s.vars {
		if existing.Name == v.Name {
			return newDiag(span, "redefinition of %s", v.Name)
		}
	}
	s.vars = append(s.vars, v)
	return nil
}

// FindVarInScope walks the parent chain starting at id looking for a
// variable named name, returning its checked form and whether it was
// found.
func (p *Project) FindVarInScope(id ScopeID, name string) (CheckedVariable, bool) {
	for cur := id; cur != noParent; {
		s := p.scope(cur)
		for _, v := range s.vars {
			if v.Name == name {
				return v, true
			}
		}
		cur = s.Parent
	}
	return CheckedVariable{}, false
}

// AddStructToScope registers a record-type name -> StructID binding in
// scope id.
func (p *Project) AddStructToScope(id ScopeID, name string, structID types.StructID, span token.Span) error {
	s := p.scope(id)
	for _, existing := range s.structs {
		if existing.name == name {
			return newDiag(span, "redefinition of %s", name)
		}
	}
	s.structs = append(s.structs, namedStruct{name: name, id: structID})
	return nil
}

// FindStructInScope walks the parent chain looking for a record type named
// name.
func (p *Project) FindStructInScope(id ScopeID, name string) (types.StructID, bool) {
	for cur := id; cur != noParent; {
		s := p.scope(cur)
		for _, entry := range s.structs {
			if entry.name == name {
				return entry.id, true
			}
		}
		cur = s.Parent
	}
	return 0, false
}

// AddFunctionToScope registers a function/method name -> FunctionID
// binding in scope id.
func (p *Project) AddFunctionToScope(id ScopeID, name string, funcID FunctionID, span token.Span) error {
	s := p.scope(id)
	for _, existing := range s.funs {
		if existing.name == name {
			return newDiag(span, "redefinition of %s", name)
		}
	}
	s.funs = append(s.funs, namedFunction{name: name, id: funcID})
	return nil
}

// FindFunctionInScope walks the parent chain looking for a function or
// method named name.
func (p *Project) FindFunctionInScope(id ScopeID, name string) (FunctionID, bool) {
	for cur := id; cur != noParent; {
		s := p.scope(cur)
		for _, entry := range s.funs {
			if entry.name == name {
				return entry.id, true
			}
		}
		cur = s.Parent
	}
	return 0, false
}

// Struct looks up a previously-appended record type by id. Callers rely on
// every Type.Struct(id) ever produced satisfying 0 <= id < len(Structs),
// so this never range-checks; an out-of-range id is an internal
// invariant violation, not a recoverable error.
func (p *Project) Struct(id types.StructID) *CheckedStruct { return p.Structs[id] }

// Function looks up a previously-appended function or method by id.
func (p *Project) Function(id FunctionID) *CheckedFunction { return p.Funs[id] }
