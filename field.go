package attrspec

import (
	"reflect"

	"github.com/attrspec/attrspec/deconstruct"
	"github.com/attrspec/attrspec/i18n"
)

// Coercer narrows the write bound of a variant: it converts an accepted
// input shape into the read type G. A variant with a looser coercer
// accepts a strict superset of inputs.
type Coercer[G any] func(v any) (G, Failures)

// Field is the generic attribute descriptor. G is the type produced on
// read; the set of accepted write inputs is fixed by the variant's
// Coercer. The nullable flag is set at construction and passes unchanged
// through every variant constructor.
type Field[G any] struct {
	spec   Spec
	path   string
	coerce Coercer[G]
	args   []any
	kwargs func() map[string]any
}

// Bindable is the type-erased descriptor surface a host record type
// consumes at definition time.
type Bindable interface {
	Bind(owner Owner, name string) error
	Meta() *Spec
	Write(at AccessContext, v any) error
	Validate(v any) Failures
	Deconstruct() deconstruct.Form
}

// New constructs a descriptor from a factory path, a variant coercer and
// options. Conflicting options and defaults that fail coercion or
// validation are rejected here, eagerly.
func New[G any](path string, coerce Coercer[G], opts ...Option) (*Field[G], error) {
	if path == "" {
		return nil, configErrf("new", "empty factory path")
	}
	if coerce == nil {
		return nil, configErrf("new", "%s: nil coercer", path)
	}
	f := &Field[G]{path: path, coerce: coerce}
	for _, o := range opts {
		o(&f.spec)
	}
	if f.spec.primaryKey && f.spec.nullable {
		return nil, configErrf("new", "%s: primary_key cannot be nullable", path)
	}
	if f.spec.hasDefault {
		dv, _ := f.spec.DefaultValue()
		if dv != nil {
			g, fs := coerce(dv)
			if len(fs) > 0 {
				return nil, configErrf("new", "%s: default does not coerce: %v", path, fs)
			}
			if fs := f.validateValue(g); len(fs) > 0 {
				return nil, configErrf("new", "%s: default fails validation: %v", path, fs)
			}
		} else if !f.spec.nullable {
			return nil, configErrf("new", "%s: null default on non-nullable field", path)
		}
	}
	for _, c := range f.spec.choices {
		if c.Value == nil {
			continue
		}
		if _, fs := coerce(c.Value); len(fs) > 0 {
			return nil, configErrf("new", "%s: choice %v does not coerce: %v", path, c.Value, fs)
		}
	}
	return f, nil
}

// Must unwraps a constructor result, panicking on configuration errors.
// Intended for declarative, definition-time registration.
func Must[G any](f *Field[G], err error) *Field[G] {
	if err != nil {
		panic(err)
	}
	return f
}

// Meta exposes the descriptor's shared metadata.
func (f *Field[G]) Meta() *Spec { return &f.spec }

// Path returns the factory path used for deconstruction.
func (f *Field[G]) Path() string { return f.path }

// Bind registers the descriptor on its owner; see Spec.Bind.
func (f *Field[G]) Bind(owner Owner, name string) error {
	return f.spec.Bind(owner, name)
}

// Coerce applies the variant's write-bound narrowing to v.
func (f *Field[G]) Coerce(v any) (G, Failures) { return f.coerce(v) }

// Result is what a read produces. Class-level access yields the
// descriptor's own metadata; instance-level access yields a stored
// value. These are distinct channels, not a narrowing of G.
type Result[G any] struct {
	Meta  *Spec
	Value Null[G]
}

// Read resolves the access context and returns either metadata (class
// access) or the stored value. An unset slot resolves to the default
// when one is configured, to null when the field is nullable, and to
// the zero G otherwise.
func (f *Field[G]) Read(at AccessContext) (Result[G], error) {
	st, err := resolveAccess(at, f.spec.nullable)
	if err != nil {
		return Result[G]{}, err
	}
	if st == stateClass {
		return Result[G]{Meta: &f.spec}, nil
	}
	inst, _ := at.Instance()
	raw, ok := inst.Load(f.spec.name)
	if !ok {
		return f.unsetValue(st)
	}
	if raw == nil {
		if st == stateInstanceNullable {
			return Result[G]{}, nil
		}
		// A null slot under a non-nullable field is host corruption;
		// surface it rather than fabricating a value.
		return Result[G]{}, Failures{{Path: "/", Code: CodeNullRejected, Message: i18n.T(CodeNullRejected, nil)}}
	}
	if g, isG := raw.(G); isG {
		return Result[G]{Value: Value(g)}, nil
	}
	g, fs := f.coerce(raw)
	if len(fs) > 0 {
		return Result[G]{}, fs
	}
	return Result[G]{Value: Value(g)}, nil
}

func (f *Field[G]) unsetValue(st accessState) (Result[G], error) {
	if dv, ok := f.spec.DefaultValue(); ok {
		if dv == nil {
			return Result[G]{}, nil
		}
		g, fs := f.coerce(dv)
		if len(fs) > 0 {
			return Result[G]{}, fs
		}
		return Result[G]{Value: Value(g)}, nil
	}
	if st == stateInstanceNullable {
		return Result[G]{}, nil
	}
	var zero G
	return Result[G]{Value: Value(zero)}, nil
}

// Write resolves the access context, coerces and validates v, then
// stores it in the instance slot. Null writes are rejected with a
// null_rejected failure unless the field is nullable. Class-level write
// is a ConfigError: descriptors rebind only through the owner's
// definition-time Contribute step.
func (f *Field[G]) Write(at AccessContext, v any) error {
	st, err := resolveAccess(at, f.spec.nullable)
	if err != nil {
		return err
	}
	if st == stateClass {
		return configErrf("write", "%q: class-level write; rebind through Contribute", f.spec.name)
	}
	inst, _ := at.Instance()
	if n, isNull := v.(Null[G]); isNull {
		if n.Valid {
			v = n.V
		} else {
			v = nil
		}
	}
	if v == nil {
		if st == stateInstanceNonNull {
			return Failures{{Path: "/", Code: CodeNullRejected, Message: i18n.T(CodeNullRejected, nil), Rule: "nullable"}}
		}
		inst.Store(f.spec.name, nil)
		return nil
	}
	g, fs := f.coerce(v)
	if len(fs) > 0 {
		return fs
	}
	if fs := f.validateValue(g); len(fs) > 0 {
		return fs
	}
	inst.Store(f.spec.name, g)
	return nil
}

// Validate runs the full pipeline against v and returns every failure.
// Execution is exhaustive: no failure suppresses the rest. A null v on a
// non-nullable field reports null_rejected first; when a value is
// present the report includes choice membership and every pipeline
// entry.
func (f *Field[G]) Validate(v any) Failures {
	var out Failures
	if n, isNull := v.(Null[G]); isNull {
		if n.Valid {
			v = n.V
		} else {
			v = nil
		}
	}
	if v == nil {
		if !f.spec.nullable {
			out = AppendFailures(out, Failure{Path: "/", Code: CodeNullRejected, Message: i18n.T(CodeNullRejected, nil), Rule: "nullable"})
		}
		return out
	}
	g, fs := f.coerce(v)
	if len(fs) > 0 {
		out = AppendFailures(out, fs...)
		// Predicates guard their own input shapes; keep the run
		// exhaustive over the raw value.
		return AppendFailures(out, f.spec.pipeline.Run(v)...)
	}
	return AppendFailures(out, f.validateValue(g)...)
}

// validateValue checks choice membership and runs the pipeline over an
// already-coerced value.
func (f *Field[G]) validateValue(g G) Failures {
	var out Failures
	if len(f.spec.choices) > 0 && !f.choiceAllowed(g) {
		out = AppendFailures(out, Failure{
			Path:    "/",
			Code:    CodeInvalidChoice,
			Message: i18n.T(CodeInvalidChoice, nil),
			Rule:    "choices",
			Params:  map[string]any{"got": any(g)},
		})
	}
	return AppendFailures(out, f.spec.pipeline.Run(g)...)
}

func (f *Field[G]) choiceAllowed(g G) bool {
	for _, c := range f.spec.choices {
		if c.Value == nil {
			continue
		}
		cv, fs := f.coerce(c.Value)
		if len(fs) > 0 {
			continue
		}
		if reflect.DeepEqual(cv, g) {
			return true
		}
	}
	return false
}

// ColumnRef is the opaque column reference handed to a query layer. The
// core never generates query text from it.
type ColumnRef struct {
	Model  string
	Column string
}

// ColumnRef derives the query-layer reference for a bound descriptor.
func (f *Field[G]) ColumnRef() ColumnRef {
	ref := ColumnRef{Column: f.spec.ColumnName()}
	if owner, ok := f.spec.BoundTo(); ok {
		ref.Model = owner.ModelName()
	}
	return ref
}

// WidgetSpec is the read-only projection a form layer consumes to build
// an independent input widget.
type WidgetSpec struct {
	Name       string
	Nullable   bool
	Editable   bool
	Choices    []Choice
	Validators []Validator
}

// WidgetSpec projects the descriptor for a presentation layer.
func (f *Field[G]) WidgetSpec() WidgetSpec {
	var cs []Choice
	if len(f.spec.choices) > 0 {
		cs = append(cs, f.spec.choices...)
	}
	return WidgetSpec{
		Name:       f.spec.Name(),
		Nullable:   f.spec.Nullable(),
		Editable:   f.spec.Editable(),
		Choices:    cs,
		Validators: f.spec.Validators(),
	}
}

// DeconstructArgs records the variant's positional construction
// arguments, echoed verbatim into the deconstructed form.
func (f *Field[G]) DeconstructArgs(args ...any) *Field[G] {
	f.args = args
	return f
}

// DeconstructKwargs registers a hook contributing variant-specific
// keyword arguments to the deconstructed form.
func (f *Field[G]) DeconstructKwargs(fn func() map[string]any) *Field[G] {
	f.kwargs = fn
	return f
}

// Deconstruct produces the canonical form that reconstructs an
// equivalent descriptor. Options equal to built-in defaults are omitted;
// two descriptors are schema-equivalent iff their forms compare equal.
func (f *Field[G]) Deconstruct() deconstruct.Form {
	kw := map[string]any{}
	s := &f.spec
	if s.nullable {
		kw["null"] = true
	}
	if s.unique {
		kw["unique"] = true
	}
	if s.primaryKey {
		kw["primary_key"] = true
	}
	if s.notEditable {
		kw["editable"] = false
	}
	if s.column != "" && s.column != s.name {
		kw["column"] = s.column
	}
	if s.hasDefault && s.defaultFn == nil {
		kw["default"] = s.defaultVal
	}
	if len(s.choices) > 0 {
		cs := make([]any, len(s.choices))
		for i, c := range s.choices {
			cs[i] = []any{c.Value, c.Label}
		}
		kw["choices"] = cs
	}
	if len(s.caps) > 0 {
		names := make([]any, len(s.caps))
		for i, c := range s.caps {
			names[i] = c.CapabilityName()
		}
		kw["capabilities"] = names
	}
	if f.kwargs != nil {
		for k, v := range f.kwargs() {
			kw[k] = v
		}
	}
	if len(kw) == 0 {
		kw = nil
	}
	return deconstruct.Form{
		Path:   f.path,
		Args:   append([]any(nil), f.args...),
		Kwargs: kw,
	}
}
