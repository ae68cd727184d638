package field_test

import (
	"testing"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/field"
	"github.com/attrspec/attrspec/record"
)

// Covers declaring a sequence attribute over a narrowed base: writes go
// element-wise through the base's write bound and reads produce the
// composed slice type.
func TestArrayOf_ElementwiseCoercion(t *testing.T) {
	scores, err := field.ArrayOf(attrspec.Must(field.PositiveInteger()))
	if err != nil {
		t.Fatalf("array: %v", err)
	}
	meta := record.NewMeta("Player")
	if err := meta.Contribute("scores", scores); err != nil {
		t.Fatalf("contribute: %v", err)
	}

	inst := meta.NewInstance()
	if err := scores.Write(inst.Access(), []any{1, "2", int64(3)}); err != nil {
		t.Fatalf("write: %v", err)
	}
	res, err := scores.Read(inst.Access())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	got, ok := res.Value.Get()
	if !ok || len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("unexpected slice %v", got)
	}
}

// Element failures carry their index in the path and the report covers
// every bad element, not just the first.
func TestArrayOf_CollectsElementFailures(t *testing.T) {
	scores, err := field.ArrayOf(attrspec.Must(field.PositiveInteger()))
	if err != nil {
		t.Fatalf("array: %v", err)
	}
	_, fs := scores.Coerce([]any{1, -2, "x", 4})
	if len(fs) != 2 {
		t.Fatalf("expected 2 element failures, got %v", fs)
	}
	if fs[0].Path != "/1" || fs[0].Code != attrspec.CodeTooSmall {
		t.Fatalf("unexpected first failure %+v", fs[0])
	}
	if fs[1].Path != "/2" || fs[1].Code != attrspec.CodeInvalidType {
		t.Fatalf("unexpected second failure %+v", fs[1])
	}
}

func TestArrayOf_NestedBaseForm(t *testing.T) {
	tags, err := field.ArrayOf(attrspec.Must(field.Char(20)), attrspec.Nullable())
	if err != nil {
		t.Fatalf("array: %v", err)
	}
	fm := tags.Deconstruct()
	if fm.Path != field.PathArray {
		t.Fatalf("unexpected path %q", fm.Path)
	}
	if !fm.BoolKwarg("null") {
		t.Fatalf("null flag missing: %v", fm)
	}
	base, ok := fm.FormKwarg("base")
	if !ok {
		t.Fatalf("base form missing: %v", fm)
	}
	if base.Path != field.PathChar {
		t.Fatalf("unexpected base path %q", base.Path)
	}
	if n, ok := base.IntArg(0); !ok || n != 20 {
		t.Fatalf("base max length lost: %v", base)
	}
}

func TestArrayOf_NilBase(t *testing.T) {
	if _, err := field.ArrayOf[int64](nil); err == nil || !attrspec.IsConfigError(err) {
		t.Fatalf("expected ConfigError for nil base, got %v", err)
	}
}
