package ast

import "github.com/max1624/jakt/internal/token"

// Statement is the sealed interface implemented by every unchecked
// statement form.
type Statement interface {
	Span() token.Span
	stmtNode()
}

type ExpressionStmt struct {
	Expr Expression
	Sp   token.Span
}

func (s *ExpressionStmt) Span() token.Span { return s.Sp }
func (*ExpressionStmt) stmtNode()          {}

type DeferStmt struct {
	Stmt Statement
	Sp   token.Span
}

func (s *DeferStmt) Span() token.Span { return s.Sp }
func (*DeferStmt) stmtNode()          {}

// UnsafeBlockStmt switches the checker into Unsafe safety mode for its
// body; it is distinct from BlockStmt purely so the statement checker
// knows to flip SafetyMode when it recurses.
type UnsafeBlockStmt struct {
	Block Block
	Sp    token.Span
}

func (s *UnsafeBlockStmt) Span() token.Span { return s.Sp }
func (*UnsafeBlockStmt) stmtNode()          {}

type VarDeclStmt struct {
	Decl VarDecl
	Init Expression
	Sp   token.Span
}

func (s *VarDeclStmt) Span() token.Span { return s.Sp }
func (*VarDeclStmt) stmtNode()          {}

type IfStmt struct {
	Cond Expression
	Then Block
	Else Statement // nil when no else clause
	Sp   token.Span
}

func (s *IfStmt) Span() token.Span { return s.Sp }
func (*IfStmt) stmtNode()          {}

type BlockStmt struct {
	Block Block
	Sp    token.Span
}

func (s *BlockStmt) Span() token.Span { return s.Sp }
func (*BlockStmt) stmtNode()          {}

type WhileStmt struct {
	Cond Expression
	Body Block
	Sp   token.Span
}

func (s *WhileStmt) Span() token.Span { return s.Sp }
func (*WhileStmt) stmtNode()          {}

type ReturnStmt struct {
	Expr Expression
	Sp   token.Span
}

func (s *ReturnStmt) Span() token.Span { return s.Sp }
func (*ReturnStmt) stmtNode()          {}

type GarbageStmt struct {
	Sp token.Span
}

func (s *GarbageStmt) Span() token.Span { return s.Sp }
func (*GarbageStmt) stmtNode()          {}
