package field_test

import (
	"testing"
	"time"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	geom "github.com/twpayne/go-geom"
)

func TestCoerceBool(t *testing.T) {
	accept := map[any]bool{
		true:    true,
		int(0):  false,
		int64(1): true,
		"true":  true,
		"0":     false,
	}
	for in, want := range accept {
		got, fs := field.CoerceBool(in)
		if len(fs) > 0 || got != want {
			t.Fatalf("CoerceBool(%v) = %v %v, want %v", in, got, fs, want)
		}
	}
	for _, in := range []any{2, "yeah", 1.0} {
		if _, fs := field.CoerceBool(in); len(fs) != 1 || fs[0].Code != attrspec.CodeInvalidType {
			t.Fatalf("CoerceBool(%v): expected invalid_type, got %v", in, fs)
		}
	}
}

func TestDecimal_DigitBounds(t *testing.T) {
	price, err := field.Decimal(5, 2)
	if err != nil {
		t.Fatalf("decimal: %v", err)
	}

	if fs := price.Validate("123.45"); len(fs) != 0 {
		t.Fatalf("in-bounds value rejected: %v", fs)
	}
	if fs := price.Validate("123456"); len(fs) != 1 || fs[0].Rule != "max_digits" {
		t.Fatalf("expected max_digits failure, got %v", fs)
	}
	if fs := price.Validate("1.234"); len(fs) != 1 || fs[0].Rule != "decimal_places" {
		t.Fatalf("expected decimal_places failure, got %v", fs)
	}

	got, fs := price.Coerce(decimal.RequireFromString("9.99"))
	if len(fs) > 0 || !got.Equal(decimal.RequireFromString("9.99")) {
		t.Fatalf("decimal passthrough failed: %v %v", got, fs)
	}
}

func TestDecimal_InvalidSpec(t *testing.T) {
	for _, c := range [][2]int{{0, 0}, {3, -1}, {2, 3}} {
		if _, err := field.Decimal(c[0], c[1]); err == nil || !attrspec.IsConfigError(err) {
			t.Fatalf("Decimal(%d, %d): expected ConfigError, got %v", c[0], c[1], err)
		}
	}
}

func TestDate_TruncatesToMidnightUTC(t *testing.T) {
	f := attrspec.Must(field.Date())
	in := time.Date(2024, 6, 15, 13, 45, 30, 0, time.FixedZone("X", 3*3600))
	got, fs := f.Coerce(in)
	if len(fs) > 0 {
		t.Fatalf("coerce: %v", fs)
	}
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	got, fs = f.Coerce("2024-06-15")
	if len(fs) > 0 || !got.Equal(want) {
		t.Fatalf("string date: %v %v", got, fs)
	}
	if _, fs := f.Coerce("June 15"); len(fs) != 1 || fs[0].Code != attrspec.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", fs)
	}
}

func TestDateTime_ParsesRFC3339(t *testing.T) {
	f := attrspec.Must(field.DateTime())
	got, fs := f.Coerce("2024-06-15T10:30:00Z")
	if len(fs) > 0 {
		t.Fatalf("coerce: %v", fs)
	}
	if !got.Equal(time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected parse %v", got)
	}
	if _, fs := f.Coerce("2024-06-15 10:30"); len(fs) != 1 || fs[0].Code != attrspec.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", fs)
	}
}

func TestTimeOfDay_ParsesClock(t *testing.T) {
	f := attrspec.Must(field.TimeOfDay())
	for _, in := range []string{"09:15:30", "09:15"} {
		got, fs := f.Coerce(in)
		if len(fs) > 0 {
			t.Fatalf("coerce %q: %v", in, fs)
		}
		if got.Hour() != 9 || got.Minute() != 15 {
			t.Fatalf("coerce %q: unexpected clock %v", in, got)
		}
	}
	if _, fs := f.Coerce("25:00"); len(fs) != 1 {
		t.Fatalf("expected rejection of impossible clock, got %v", fs)
	}
}

func TestUUID_Coercion(t *testing.T) {
	f := attrspec.Must(field.UUID())
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	got, fs := f.Coerce(id.String())
	if len(fs) > 0 || got != id {
		t.Fatalf("string parse: %v %v", got, fs)
	}
	got, fs = f.Coerce([16]byte(id))
	if len(fs) > 0 || got != id {
		t.Fatalf("byte array: %v %v", got, fs)
	}
	if _, fs := f.Coerce("not-a-uuid"); len(fs) != 1 || fs[0].Code != attrspec.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", fs)
	}
}

func TestGeometry_KindEnforced(t *testing.T) {
	pt := attrspec.Must(field.Geometry(field.Point))

	g, fs := pt.Coerce("POINT (30 10)")
	if len(fs) > 0 {
		t.Fatalf("wkt parse: %v", fs)
	}
	if _, ok := g.(*geom.Point); !ok {
		t.Fatalf("expected point, got %T", g)
	}

	_, fs = pt.Coerce("LINESTRING (30 10, 10 30)")
	if len(fs) != 1 || fs[0].Rule != "geometry_kind" {
		t.Fatalf("expected kind rejection, got %v", fs)
	}

	anyGeo := attrspec.Must(field.Geometry(field.AnyGeometry))
	if _, fs := anyGeo.Coerce("LINESTRING (30 10, 10 30)"); len(fs) != 0 {
		t.Fatalf("any-kind variant rejected a linestring: %v", fs)
	}

	if _, err := field.Geometry("blob"); err == nil || !attrspec.IsConfigError(err) {
		t.Fatalf("expected ConfigError for unknown kind, got %v", err)
	}
}
