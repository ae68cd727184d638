package field_test

import (
	"encoding/json"
	"math"
	"testing"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/field"
)

func TestCoerceInt64(t *testing.T) {
	accept := []struct {
		in   any
		want int64
	}{
		{int(7), 7},
		{int8(-3), -3},
		{int32(42), 42},
		{int64(1 << 40), 1 << 40},
		{uint16(9), 9},
		{uint64(math.MaxInt64), math.MaxInt64},
		{float64(12), 12},
		{float32(-8), -8},
		{json.Number("99"), 99},
		{"1234", 1234},
		{"-5", -5},
	}
	for _, c := range accept {
		got, fs := field.CoerceInt64(c.in)
		if len(fs) > 0 {
			t.Fatalf("CoerceInt64(%v): %v", c.in, fs)
		}
		if got != c.want {
			t.Fatalf("CoerceInt64(%v) = %d, want %d", c.in, got, c.want)
		}
	}

	reject := []struct {
		in   any
		code string
	}{
		{uint64(math.MaxInt64) + 1, attrspec.CodeOverflow},
		{1.5, attrspec.CodeInvalidType},
		{"12abc", attrspec.CodeInvalidType},
		{json.Number("0.5"), attrspec.CodeInvalidType},
		{true, attrspec.CodeInvalidType},
	}
	for _, c := range reject {
		_, fs := field.CoerceInt64(c.in)
		if len(fs) != 1 || fs[0].Code != c.code {
			t.Fatalf("CoerceInt64(%v): want %s, got %v", c.in, c.code, fs)
		}
	}
}

// Every input the positive variant accepts must also be accepted by its
// parent variant, with the same result.
func TestPositiveInteger_NarrowsParentBound(t *testing.T) {
	pos := attrspec.Must(field.PositiveInteger())
	parent := attrspec.Must(field.Integer())

	inputs := []any{int(0), int64(7), "42", uint8(255), float64(3), json.Number("10"), -1, "x"}
	for _, in := range inputs {
		pv, pfs := pos.Coerce(in)
		if len(pfs) > 0 {
			continue
		}
		gv, gfs := parent.Coerce(in)
		if len(gfs) > 0 {
			t.Fatalf("parent rejected %v accepted by the narrowed bound", in)
		}
		if pv != gv {
			t.Fatalf("bound disagreement on %v: %d vs %d", in, pv, gv)
		}
	}

	_, fs := pos.Coerce(-1)
	if len(fs) != 1 || fs[0].Code != attrspec.CodeTooSmall || fs[0].Rule != "unsigned" {
		t.Fatalf("expected unsigned rejection, got %v", fs)
	}
}

func TestAuto_Traits(t *testing.T) {
	f := attrspec.Must(field.Auto())
	if f.Meta().Editable() {
		t.Fatalf("auto variant must be excluded from editing surfaces")
	}
	if !f.Meta().HasCapability("auto_increment") {
		t.Fatalf("auto variant must carry the auto_increment capability")
	}
	if f.Path() != field.PathAuto {
		t.Fatalf("unexpected path %q", f.Path())
	}
}

func TestPositiveInteger_Trait(t *testing.T) {
	f := attrspec.Must(field.PositiveInteger())
	if !f.Meta().HasCapability("unsigned_relative") {
		t.Fatalf("positive variant must carry the unsigned_relative capability")
	}
}
