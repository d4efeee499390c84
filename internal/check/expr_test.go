package check

import (
	"testing"

	"github.com/max1624/jakt/internal/ast"
	"github.com/max1624/jakt/internal/token"
	"github.com/max1624/jakt/internal/types"
)

func TestTypecheckExpressionBooleanLiteral(t *testing.T) {
	p := NewProject()
	got, err := TypecheckExpression(p, &ast.BooleanLiteral{Value: true}, p.TopLevelScope(), Safe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, ok := got.(*BooleanExpr)
	if !ok || !b.Value {
		t.Fatalf("got %#v, want BooleanExpr{true}", got)
	}
}

func TestTypecheckExpressionNumericLiteralPromotesToWidest(t *testing.T) {
	p := NewProject()
	got, err := TypecheckExpression(p, &ast.NumericLiteral{Value: types.NewUnsignedConstant(5)}, p.TopLevelScope(), Safe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.Identical(got.Ty(), types.TU64) {
		t.Errorf("got type %v, want u64", got.Ty())
	}
}

func TestTypecheckExpressionVarExprMiss(t *testing.T) {
	p := NewProject()
	_, err := TypecheckExpression(p, &ast.VarExpr{Name: "missing", Sp: token.Span{}}, p.TopLevelScope(), Safe)
	if err == nil {
		t.Fatalf("expected 'variable not found' error")
	}
}

func TestTypecheckExpressionVarExprHit(t *testing.T) {
	p := NewProject()
	top := p.TopLevelScope()
	if err := p.AddVarToScope(top, CheckedVariable{Name: "x", Ty: types.TI32}, token.Span{}); err != nil {
		t.Fatalf("add var failed: %v", err)
	}
	got, err := TypecheckExpression(p, &ast.VarExpr{Name: "x"}, top, Safe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.Identical(got.Ty(), types.TI32) {
		t.Errorf("got %v, want i32", got.Ty())
	}
}

func TestTypecheckExpressionTuple(t *testing.T) {
	p := NewProject()
	expr := &ast.TupleExpr{Items: []ast.Expression{
		&ast.BooleanLiteral{Value: false},
		&ast.NumericLiteral{Value: types.NewSignedConstant(3)},
	}}
	got, err := TypecheckExpression(p, expr, p.TopLevelScope(), Safe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := types.NewTuple([]types.Type{types.TBool, types.TI64})
	if !types.Identical(got.Ty(), want) {
		t.Errorf("got %v, want %v", got.Ty(), want)
	}
}

func TestTypecheckExpressionVectorMismatch(t *testing.T) {
	p := NewProject()
	expr := &ast.VectorExpr{Items: []ast.Expression{
		&ast.NumericLiteral{Value: types.NewSignedConstant(1)},
		&ast.BooleanLiteral{Value: true, Sp: token.Span{Start: 5, End: 6}},
	}}
	_, err := TypecheckExpression(p, expr, p.TopLevelScope(), Safe)
	if err == nil {
		t.Fatalf("expected type-mismatch error across vector elements")
	}
}

func TestTypecheckExpressionIndexedVector(t *testing.T) {
	p := NewProject()
	expr := &ast.IndexedExpression{
		Expr:  &ast.VectorExpr{Items: []ast.Expression{&ast.NumericLiteral{Value: types.NewSignedConstant(1)}}},
		Index: &ast.NumericLiteral{Value: types.NewSignedConstant(0)},
	}
	got, err := TypecheckExpression(p, expr, p.TopLevelScope(), Safe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.Identical(got.Ty(), types.TI64) {
		t.Errorf("got %v, want i64", got.Ty())
	}
}

func TestTypecheckExpressionIndexedTupleOutOfRange(t *testing.T) {
	p := NewProject()
	expr := &ast.IndexedTuple{
		Expr:  &ast.TupleExpr{Items: []ast.Expression{&ast.BooleanLiteral{Value: true}}},
		Index: 4,
		Sp:    token.Span{Start: 0, End: 1},
	}
	_, err := TypecheckExpression(p, expr, p.TopLevelScope(), Safe)
	if err == nil {
		t.Fatalf("expected out-of-range tuple index error")
	}
}

func TestTypecheckExpressionOptionalNoneAndSome(t *testing.T) {
	p := NewProject()

	none, err := TypecheckExpression(p, &ast.OptionalNoneExpr{}, p.TopLevelScope(), Safe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.IsUnknown(none.Ty()) {
		t.Errorf("OptionalNone: got %v, want Unknown", none.Ty())
	}

	some, err := TypecheckExpression(p, &ast.OptionalSomeExpr{Expr: &ast.BooleanLiteral{Value: true}}, p.TopLevelScope(), Safe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.Identical(some.Ty(), types.NewOptional(types.TBool)) {
		t.Errorf("OptionalSome wraps the inner type: got %v, want bool?", some.Ty())
	}
}

func TestTypecheckExpressionForcedUnwrapRequiresOptional(t *testing.T) {
	p := NewProject()
	_, err := TypecheckExpression(p, &ast.ForcedUnwrapExpr{Expr: &ast.BooleanLiteral{Value: true}}, p.TopLevelScope(), Safe)
	if err == nil {
		t.Fatalf("expected error forcing unwrap of a non-optional value")
	}

	wrapped, err := TypecheckExpression(p, &ast.ForcedUnwrapExpr{Expr: &ast.OptionalSomeExpr{Expr: &ast.BooleanLiteral{Value: true}}}, p.TopLevelScope(), Safe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.Identical(wrapped.Ty(), types.TBool) {
		t.Errorf("got %v, want bool", wrapped.Ty())
	}
}

func TestTypecheckExpressionIndexedStruct(t *testing.T) {
	p := NewProject()
	top := p.TopLevelScope()
	scopeID := p.CreateScope(top)
	p.Structs = append(p.Structs, &CheckedStruct{
		Name:    "Point",
		ScopeID: scopeID,
		Fields:  []CheckedVarDecl{{Name: "x", Ty: types.TI32}},
	})
	if err := p.AddStructToScope(top, "Point", 0, token.Span{}); err != nil {
		t.Fatalf("add struct failed: %v", err)
	}
	if err := p.AddVarToScope(top, CheckedVariable{Name: "p", Ty: types.NewStruct(0)}, token.Span{}); err != nil {
		t.Fatalf("add var failed: %v", err)
	}

	got, err := TypecheckExpression(p, &ast.IndexedStruct{Expr: &ast.VarExpr{Name: "p"}, Field: "x"}, top, Safe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.Identical(got.Ty(), types.TI32) {
		t.Errorf("got %v, want i32", got.Ty())
	}

	_, err = TypecheckExpression(p, &ast.IndexedStruct{Expr: &ast.VarExpr{Name: "p"}, Field: "missing"}, top, Safe)
	if err == nil {
		t.Fatalf("expected unknown-member error")
	}
}
