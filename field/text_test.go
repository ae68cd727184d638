package field_test

import (
	"testing"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/field"
	"github.com/attrspec/attrspec/record"
)

// Covers the common lifecycle: declare a bounded string attribute, bind
// it to a record type, then write and read through an instance.
func TestChar_Lifecycle(t *testing.T) {
	title, err := field.Char(10)
	if err != nil {
		t.Fatalf("char: %v", err)
	}
	meta := record.NewMeta("Article")
	if err := meta.Contribute("title", title); err != nil {
		t.Fatalf("contribute: %v", err)
	}

	inst := meta.NewInstance()
	if err := title.Write(inst.Access(), "hello"); err != nil {
		t.Fatalf("write: %v", err)
	}
	res, err := title.Read(inst.Access())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if v, ok := res.Value.Get(); !ok || v != "hello" {
		t.Fatalf("expected hello, got %+v", res.Value)
	}

	err = title.Write(inst.Access(), nil)
	fs, ok := attrspec.AsFailures(err)
	if !ok || len(fs) != 1 || fs[0].Code != attrspec.CodeNullRejected {
		t.Fatalf("expected null_rejected, got %v", err)
	}

	if fs := title.Validate("elevenchars"); len(fs) != 1 || fs[0].Code != attrspec.CodeTooLong {
		t.Fatalf("expected too_long past the bound, got %v", fs)
	}
}

func TestChar_InvalidMaxLength(t *testing.T) {
	if _, err := field.Char(0); err == nil || !attrspec.IsConfigError(err) {
		t.Fatalf("expected ConfigError for non-positive max length, got %v", err)
	}
}

// Variant validators come before user-appended ones, in declaration
// order.
func TestChar_BaseValidatorLeads(t *testing.T) {
	f, err := field.Char(5, attrspec.Validators(attrspec.MinLength(2)))
	if err != nil {
		t.Fatalf("char: %v", err)
	}
	vs := f.Meta().Validators()
	if len(vs) != 2 || vs[0].Name() != "max_length" || vs[1].Name() != "min_length" {
		t.Fatalf("unexpected pipeline order: %v", vs)
	}
}

func TestCoerceString(t *testing.T) {
	if s, fs := field.CoerceString(42); len(fs) > 0 || s != "42" {
		t.Fatalf("int widening failed: %q %v", s, fs)
	}
	if s, fs := field.CoerceString(uint8(7)); len(fs) > 0 || s != "7" {
		t.Fatalf("uint widening failed: %q %v", s, fs)
	}
	if _, fs := field.CoerceString(3.14); len(fs) != 1 || fs[0].Code != attrspec.CodeInvalidType {
		t.Fatalf("float must be rejected, got %v", fs)
	}
}

func TestText_Unbounded(t *testing.T) {
	f := attrspec.Must(field.Text())
	long := make([]byte, 1<<16)
	for i := range long {
		long[i] = 'a'
	}
	if fs := f.Validate(string(long)); len(fs) != 0 {
		t.Fatalf("text variant must not bound length: %v", fs)
	}
}
