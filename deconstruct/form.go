package deconstruct

import (
	"bytes"
	"reflect"

	json "github.com/goccy/go-json"
)

// Form is an ordered (path, args, kwargs) tuple that fully determines an
// equivalent descriptor.
type Form struct {
	Path   string         `json:"path"`
	Args   []any          `json:"args,omitempty"`
	Kwargs map[string]any `json:"kwargs,omitempty"`
}

// Canonical renders the form as deterministic JSON. Map keys are emitted
// in sorted order, so equal forms produce identical bytes.
func (f Form) Canonical() ([]byte, error) {
	return json.Marshal(f)
}

// Equal reports schema equivalence via canonical byte comparison. It
// falls back to a deep compare when a form cannot be serialized.
func (f Form) Equal(g Form) bool {
	fb, ferr := f.Canonical()
	gb, gerr := g.Canonical()
	if ferr != nil || gerr != nil {
		return reflect.DeepEqual(f, g)
	}
	return bytes.Equal(fb, gb)
}

// String renders the canonical JSON, or the path alone when the form
// cannot be serialized.
func (f Form) String() string {
	b, err := f.Canonical()
	if err != nil {
		return f.Path
	}
	return string(b)
}

// Arg returns the i-th positional argument.
func (f Form) Arg(i int) (any, bool) {
	if i < 0 || i >= len(f.Args) {
		return nil, false
	}
	return f.Args[i], true
}

// IntArg returns the i-th positional argument widened to int.
func (f Form) IntArg(i int) (int, bool) {
	v, ok := f.Arg(i)
	if !ok {
		return 0, false
	}
	return asInt(v)
}

// StringArg returns the i-th positional argument as a string.
func (f Form) StringArg(i int) (string, bool) {
	v, ok := f.Arg(i)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Kwarg returns a keyword argument.
func (f Form) Kwarg(name string) (any, bool) {
	v, ok := f.Kwargs[name]
	return v, ok
}

// BoolKwarg returns a keyword argument as a bool; absent reads false.
func (f Form) BoolKwarg(name string) bool {
	v, ok := f.Kwargs[name]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// IntKwarg returns a keyword argument widened to int.
func (f Form) IntKwarg(name string) (int, bool) {
	v, ok := f.Kwargs[name]
	if !ok {
		return 0, false
	}
	return asInt(v)
}

// StringKwarg returns a keyword argument as a string.
func (f Form) StringKwarg(name string) (string, bool) {
	v, ok := f.Kwargs[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// FormKwarg returns a nested form, accepting either a Form value or the
// generic map shape a JSON round trip produces.
func (f Form) FormKwarg(name string) (Form, bool) {
	v, ok := f.Kwargs[name]
	if !ok {
		return Form{}, false
	}
	switch t := v.(type) {
	case Form:
		return t, true
	case map[string]any:
		var out Form
		if p, ok := t["path"].(string); ok {
			out.Path = p
		} else {
			return Form{}, false
		}
		if args, ok := t["args"].([]any); ok {
			out.Args = args
		}
		if kw, ok := t["kwargs"].(map[string]any); ok {
			out.Kwargs = kw
		}
		return out, true
	}
	return Form{}, false
}

// asInt widens the numeric shapes a JSON round trip or direct
// construction can produce.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}
