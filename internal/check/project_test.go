package check

import (
	"testing"

	"github.com/max1624/jakt/internal/token"
	"github.com/max1624/jakt/internal/types"
)

func TestAddVarToScopeRejectsRedefinition(t *testing.T) {
	p := NewProject()
	top := p.TopLevelScope()

	v := CheckedVariable{Name: "x", Ty: types.TI64}
	if err := p.AddVarToScope(top, v, token.Span{}); err != nil {
		t.Fatalf("first add should succeed: %v", err)
	}
	if err := p.AddVarToScope(top, v, token.Span{}); err == nil {
		t.Fatalf("expected redefinition error on second add")
	}
}

func TestFindVarInScopeWalksParentChain(t *testing.T) {
	p := NewProject()
	top := p.TopLevelScope()
	child := p.CreateScope(top)

	v := CheckedVariable{Name: "outer", Ty: types.TBool}
	if err := p.AddVarToScope(top, v, token.Span{}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	found, ok := p.FindVarInScope(child, "outer")
	if !ok {
		t.Fatalf("expected to find outer variable from child scope")
	}
	if found.Ty != types.TBool {
		t.Errorf("got type %v, want TBool", found.Ty)
	}

	if _, ok := p.FindVarInScope(top, "nonexistent"); ok {
		t.Errorf("did not expect to find nonexistent var")
	}
}

func TestAddVarToScopeAllowsShadowingInChildScope(t *testing.T) {
	p := NewProject()
	top := p.TopLevelScope()
	child := p.CreateScope(top)

	outer := CheckedVariable{Name: "x", Ty: types.TI64}
	inner := CheckedVariable{Name: "x", Ty: types.TBool}

	if err := p.AddVarToScope(top, outer, token.Span{}); err != nil {
		t.Fatalf("add outer failed: %v", err)
	}
	if err := p.AddVarToScope(child, inner, token.Span{}); err != nil {
		t.Fatalf("shadowing in child scope should not be a redefinition: %v", err)
	}

	found, _ := p.FindVarInScope(child, "x")
	if found.Ty != types.TBool {
		t.Errorf("expected inner shadow to win, got %v", found.Ty)
	}
}

func TestAddStructToScopeRejectsRedefinition(t *testing.T) {
	p := NewProject()
	top := p.TopLevelScope()

	if err := p.AddStructToScope(top, "Point", 0, token.Span{}); err != nil {
		t.Fatalf("first add should succeed: %v", err)
	}
	if err := p.AddStructToScope(top, "Point", 1, token.Span{}); err == nil {
		t.Fatalf("expected redefinition error")
	}
}

func TestFindFunctionInScope(t *testing.T) {
	p := NewProject()
	top := p.TopLevelScope()

	if err := p.AddFunctionToScope(top, "f", 7, token.Span{}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	id, ok := p.FindFunctionInScope(top, "f")
	if !ok || id != 7 {
		t.Fatalf("got (%v, %v), want (7, true)", id, ok)
	}
	if _, ok := p.FindFunctionInScope(top, "g"); ok {
		t.Errorf("did not expect to find g")
	}
}

func TestVarsAndFunsDoNotCollideAcrossKinds(t *testing.T) {
	p := NewProject()
	top := p.TopLevelScope()

	if err := p.AddVarToScope(top, CheckedVariable{Name: "size", Ty: types.TI64}, token.Span{}); err != nil {
		t.Fatalf("add var failed: %v", err)
	}
	if err := p.AddFunctionToScope(top, "size", 0, token.Span{}); err != nil {
		t.Fatalf("a function may share a name with a variable in the same scope: %v", err)
	}
}
