package check

import "github.com/max1624/jakt/internal/types"

// ScopeID is a dense, append-only index into Project.Scopes. Kept as its
// own named type, distinct from types.StructID and FunctionID, so the
// compiler catches a mismatched-id mistake at the call site rather than
// letting it through as a plain int.
type ScopeID int

// FunctionID is a dense, append-only index into Project.Funs.
type FunctionID int

type namedStruct struct {
	name string
	id   types.StructID
}

type namedFunction struct {
	name string
	id   FunctionID
}

// Scope owns three ordered association lists (variables, record-type
// names, function names) and an optional parent. Names are unique within
// one kind within one scope; across kinds a variable and a function may
// share a name. The top-level scope's Parent is -1 (no
// parent).
type Scope struct {
	vars    []CheckedVariable
	structs []namedStruct
	funs    []namedFunction
	Parent  ScopeID
}

const noParent ScopeID = -1

func newScope(parent ScopeID) *Scope {
	return &Scope{Parent: parent}
}
