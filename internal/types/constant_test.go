package types

import "testing"

func TestCanFitInteger(t *testing.T) {
	cases := []struct {
		name   string
		target Type
		value  IntegerConstant
		want   bool
	}{
		{"u8 fits 255", TU8, NewUnsignedConstant(255), true},
		{"u8 overflows 300", TU8, NewUnsignedConstant(300), false},
		{"i8 fits -128", TI8, NewSignedConstant(-128), true},
		{"i8 overflows -129", TI8, NewSignedConstant(-129), false},
		{"u32 rejects negative", TU32, NewSignedConstant(-1), false},
		{"i64 always fits signed", TI64, NewSignedConstant(-9000000000), true},
		{"u64 always fits unsigned", TU64, NewUnsignedConstant(18446744073709551615), true},
		{"non-integer target never fits", TBool, NewUnsignedConstant(1), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CanFitInteger(c.target, c.value)
			if got != c.want {
				t.Errorf("CanFitInteger(%s, %+v) = %v, want %v", c.target, c.value, got, c.want)
			}
		})
	}
}

func TestPromoteIsValuePreserving(t *testing.T) {
	narrowed, ok := Promote(NewUnsignedConstant(200), TU8)
	if !ok {
		t.Fatalf("expected 200 to fit in u8")
	}
	if narrowed.Kind != NCU8 || narrowed.U8 != 200 {
		t.Fatalf("got %+v, want U8(200)", narrowed)
	}
	back := narrowed.IntegerConstant()
	if back.Signed || back.UnsignedV != 200 {
		t.Fatalf("round trip lost value: %+v", back)
	}
}

func TestPromoteRejectsOverflow(t *testing.T) {
	if _, ok := Promote(NewUnsignedConstant(300), TU8); ok {
		t.Fatalf("expected 300 not to fit in u8")
	}
}

func TestIdenticalIsNominalForStruct(t *testing.T) {
	a := NewStruct(0)
	b := NewStruct(0)
	c := NewStruct(1)

	if !Identical(a, b) {
		t.Errorf("two Struct(0) values should be identical")
	}
	if Identical(a, c) {
		t.Errorf("Struct(0) and Struct(1) must not be identical")
	}
}

func TestIsIntegerAndIsNumeric(t *testing.T) {
	if !IsInteger(TI32) || !IsNumeric(TI32) {
		t.Errorf("i32 should be both integer and numeric")
	}
	if IsInteger(TF64) {
		t.Errorf("f64 should not be an integer")
	}
	if !IsNumeric(TF64) {
		t.Errorf("f64 should be numeric")
	}
	if IsInteger(TBool) || IsNumeric(TBool) {
		t.Errorf("bool should be neither integer nor numeric")
	}
}
