package check

import (
	"github.com/max1624/jakt/internal/ast"
	"github.com/max1624/jakt/internal/types"
)

// TypecheckBlock creates a fresh scope parented to parentScopeID and
// checks every statement of block in order within it.
func TypecheckBlock(project *Project, block *ast.Block, parentScopeID ScopeID, safety SafetyMode) (CheckedBlock, error) {
	var err error
	blockScopeID := project.CreateScope(parentScopeID)

	checked := CheckedBlock{}
	for _, stmt := range block.Stmts {
		checkedStmt, stmtErr := TypecheckStatement(project, stmt, blockScopeID, safety)
		err = firstError(err, stmtErr)
		checked.Stmts = append(checked.Stmts, checkedStmt)
	}
	return checked, err
}

// TypecheckStatement types one statement. An UnsafeBlock
// statement checks its body with safety forced to Unsafe and is re-wrapped
// as a plain BlockStmt: the unsafe tag lives on the mode used while
// checking, not on the resulting node.
func TypecheckStatement(project *Project, stmt ast.Statement, scopeID ScopeID, safety SafetyMode) (CheckedStatement, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		checkedExpr, err := TypecheckExpression(project, s.Expr, scopeID, safety)
		return &ExpressionStmt{Expr: checkedExpr}, err

	case *ast.DeferStmt:
		checkedInner, err := TypecheckStatement(project, s.Stmt, scopeID, safety)
		return &DeferStmt{Stmt: checkedInner}, err

	case *ast.UnsafeBlockStmt:
		checkedBlock, err := TypecheckBlock(project, &s.Block, scopeID, Unsafe)
		return &BlockStmt{Block: checkedBlock}, err

	case *ast.VarDeclStmt:
		return typecheckVarDecl(project, s, scopeID, safety)

	case *ast.IfStmt:
		return typecheckIf(project, s, scopeID, safety)

	case *ast.WhileStmt:
		checkedCond, err := TypecheckExpression(project, s.Cond, scopeID, safety)
		checkedBody, bodyErr := TypecheckBlock(project, &s.Body, scopeID, safety)
		return &WhileStmt{Cond: checkedCond, Body: checkedBody}, firstError(err, bodyErr)

	case *ast.ReturnStmt:
		checkedExpr, err := TypecheckExpression(project, s.Expr, scopeID, safety)
		return &ReturnStmt{Expr: checkedExpr}, err

	case *ast.BlockStmt:
		checkedBlock, err := TypecheckBlock(project, &s.Block, scopeID, safety)
		return &BlockStmt{Block: checkedBlock}, err

	case *ast.GarbageStmt:
		return &GarbageStmt{}, nil

	default:
		return &GarbageStmt{}, nil
	}
}

func typecheckVarDecl(project *Project, s *ast.VarDeclStmt, scopeID ScopeID, safety SafetyMode) (CheckedStatement, error) {
	checkedInit, err := TypecheckExpression(project, s.Init, scopeID, safety)

	declaredTy, tyErr := TypecheckTypename(project, s.Decl.Ty, scopeID)

	var checkedTy types.Type
	if types.IsUnknown(declaredTy) && !types.IsUnknown(checkedInit.Ty()) {
		checkedTy = checkedInit.Ty()
	} else {
		checkedTy = declaredTy
		err = firstError(err, tyErr)
	}

	promoteErr := TryPromoteConstantExprToType(&checkedInit, checkedTy, s.Init.Span())
	err = firstError(err, promoteErr)

	checkedDecl := CheckedVarDecl{Name: s.Decl.Name, Ty: checkedTy, Mutable: s.Decl.Mutable, Span: s.Decl.Sp}

	addErr := project.AddVarToScope(scopeID, CheckedVariable{Name: checkedDecl.Name, Ty: checkedDecl.Ty, Mutable: checkedDecl.Mutable}, checkedDecl.Span)
	err = firstError(err, addErr)

	return &VarDeclStmt{Decl: checkedDecl, Init: checkedInit}, err
}

func typecheckIf(project *Project, s *ast.IfStmt, scopeID ScopeID, safety SafetyMode) (CheckedStatement, error) {
	checkedCond, err := TypecheckExpression(project, s.Cond, scopeID, safety)
	checkedThen, thenErr := TypecheckBlock(project, &s.Then, scopeID, safety)
	err = firstError(err, thenErr)

	var checkedElse CheckedStatement
	if s.Else != nil {
		var elseErr error
		checkedElse, elseErr = TypecheckStatement(project, s.Else, scopeID, safety)
		err = firstError(err, elseErr)
	}

	return &IfStmt{Cond: checkedCond, Then: checkedThen, Else: checkedElse}, err
}
