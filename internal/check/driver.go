package check

import (
	"github.com/max1624/jakt/internal/ast"
	"github.com/max1624/jakt/internal/types"
)

// CheckFile is the top-level driver: it runs the two predeclaration
// passes (1a/1b) followed by the two checking passes (2a/2b) over one
// parsed file against scopeID (ordinarily the project's top-level
// scope), mutating project in place. It returns the first Diagnostic
// encountered across every pass — never an aggregate — while still
// leaving project populated with its best-effort results.
//
// Callers must call SeedBuiltins once per project before the first
// CheckFile call.
func CheckFile(parsed *ast.ParsedFile, scopeID ScopeID, project *Project) error {
	var err error

	structBase := types.StructID(len(project.Structs))

	for i := range parsed.Structs {
		// Predeclare every record ahead of time so mutually-recursive
		// record/method references resolve regardless of declaration
		// order.
		predeclErr := predeclareStruct(project, &parsed.Structs[i], structBase+types.StructID(i), scopeID)
		err = firstError(err, predeclErr)
	}

	for i := range parsed.Funs {
		predeclErr := predeclareFunction(project, &parsed.Funs[i], scopeID)
		err = firstError(err, predeclErr)
	}

	for i := range parsed.Structs {
		checkErr := checkStruct(project, &parsed.Structs[i], structBase+types.StructID(i), scopeID)
		err = firstError(err, checkErr)
	}

	for i := range parsed.Funs {
		checkErr := checkFunction(project, &parsed.Funs[i], scopeID)
		err = firstError(err, checkErr)
	}

	return err
}
