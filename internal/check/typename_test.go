package check

import (
	"testing"

	"github.com/max1624/jakt/internal/ast"
	"github.com/max1624/jakt/internal/token"
	"github.com/max1624/jakt/internal/types"
)

func TestTypecheckTypenameBuiltins(t *testing.T) {
	p := NewProject()
	top := p.TopLevelScope()

	cases := []struct {
		name string
		want types.Type
	}{
		{"i32", types.TI32},
		{"u64", types.TU64},
		{"bool", types.TBool},
		{"String", types.TString},
		{"void", types.TVoid},
	}
	for _, c := range cases {
		got, err := TypecheckTypename(p, &ast.TypeName{Name: c.name}, top)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
		}
		if !types.Identical(got, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestTypecheckTypenameEmptyIsUnknown(t *testing.T) {
	p := NewProject()
	got, err := TypecheckTypename(p, &ast.TypeEmpty{}, p.TopLevelScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.IsUnknown(got) {
		t.Errorf("got %v, want Unknown", got)
	}
}

func TestTypecheckTypenameUnknownNameErrors(t *testing.T) {
	p := NewProject()
	_, err := TypecheckTypename(p, &ast.TypeName{Name: "Nonexistent", Sp: token.Span{Start: 1, End: 2}}, p.TopLevelScope())
	if err == nil {
		t.Fatalf("expected an error for an unresolved type name")
	}
}

func TestTypecheckTypenameResolvesStructName(t *testing.T) {
	p := NewProject()
	top := p.TopLevelScope()
	if err := p.AddStructToScope(top, "Point", 0, token.Span{}); err != nil {
		t.Fatalf("add struct failed: %v", err)
	}
	got, err := TypecheckTypename(p, &ast.TypeName{Name: "Point"}, top)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st, ok := got.(*types.Struct)
	if !ok || st.ID != 0 {
		t.Fatalf("got %v, want Struct(0)", got)
	}
}

func TestTypecheckTypenameComposite(t *testing.T) {
	p := NewProject()
	top := p.TopLevelScope()

	vec, err := TypecheckTypename(p, &ast.TypeVector{Inner: &ast.TypeName{Name: "i32"}}, top)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.Identical(vec, types.NewVector(types.TI32)) {
		t.Errorf("got %v, want Vector(i32)", vec)
	}

	opt, err := TypecheckTypename(p, &ast.TypeOptional{Inner: &ast.TypeName{Name: "bool"}}, top)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.Identical(opt, types.NewOptional(types.TBool)) {
		t.Errorf("got %v, want Optional(bool)", opt)
	}

	ptr, err := TypecheckTypename(p, &ast.TypeRawPtr{Inner: &ast.TypeName{Name: "u8"}}, top)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !types.Identical(ptr, types.NewRawPtr(types.TU8)) {
		t.Errorf("got %v, want RawPtr(u8)", ptr)
	}
}
