package field

import (
	"fmt"
	"sync"
	"time"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/deconstruct"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	geom "github.com/twpayne/go-geom"
)

// Factory reconstructs a descriptor from its deconstructed form.
type Factory func(fm deconstruct.Form) (attrspec.Bindable, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register installs a factory under a path. Registering the same path
// twice panics: variant paths are fixed at init time.
func Register(path string, fn Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[path]; dup {
		panic("field: Register called twice for path " + path)
	}
	if fn == nil {
		panic("field: Register with nil factory for path " + path)
	}
	registry[path] = fn
}

// Rebuild reconstructs a descriptor from a form using the registered
// factory for its path. The result deconstructs back to an equal form.
func Rebuild(fm deconstruct.Form) (attrspec.Bindable, error) {
	registryMu.RLock()
	fn, ok := registry[fm.Path]
	registryMu.RUnlock()
	if !ok {
		return nil, &attrspec.ConfigError{Op: "rebuild", Reason: fmt.Sprintf("no factory registered for path %q", fm.Path)}
	}
	return fn(fm)
}

func init() {
	Register(PathInteger, func(fm deconstruct.Form) (attrspec.Bindable, error) {
		opts, err := optionsFromForm(fm)
		if err != nil {
			return nil, err
		}
		return Integer(opts...)
	})
	Register(PathAuto, func(fm deconstruct.Form) (attrspec.Bindable, error) {
		opts, err := optionsFromForm(fm)
		if err != nil {
			return nil, err
		}
		return Auto(opts...)
	})
	Register(PathPositiveInteger, func(fm deconstruct.Form) (attrspec.Bindable, error) {
		opts, err := optionsFromForm(fm)
		if err != nil {
			return nil, err
		}
		return PositiveInteger(opts...)
	})
	Register(PathChar, func(fm deconstruct.Form) (attrspec.Bindable, error) {
		n, ok := fm.IntArg(0)
		if !ok {
			return nil, &attrspec.ConfigError{Op: "rebuild", Reason: PathChar + ": missing max length argument"}
		}
		opts, err := optionsFromForm(fm)
		if err != nil {
			return nil, err
		}
		return Char(n, opts...)
	})
	Register(PathText, func(fm deconstruct.Form) (attrspec.Bindable, error) {
		opts, err := optionsFromForm(fm)
		if err != nil {
			return nil, err
		}
		return Text(opts...)
	})
	Register(PathBoolean, func(fm deconstruct.Form) (attrspec.Bindable, error) {
		opts, err := optionsFromForm(fm)
		if err != nil {
			return nil, err
		}
		return Boolean(opts...)
	})
	Register(PathDecimal, func(fm deconstruct.Form) (attrspec.Bindable, error) {
		digits, ok := fm.IntArg(0)
		if !ok {
			return nil, &attrspec.ConfigError{Op: "rebuild", Reason: PathDecimal + ": missing max digits argument"}
		}
		places, ok := fm.IntArg(1)
		if !ok {
			return nil, &attrspec.ConfigError{Op: "rebuild", Reason: PathDecimal + ": missing decimal places argument"}
		}
		opts, err := optionsFromForm(fm)
		if err != nil {
			return nil, err
		}
		return Decimal(digits, places, opts...)
	})
	Register(PathDate, func(fm deconstruct.Form) (attrspec.Bindable, error) {
		opts, err := optionsFromForm(fm)
		if err != nil {
			return nil, err
		}
		return Date(opts...)
	})
	Register(PathDateTime, func(fm deconstruct.Form) (attrspec.Bindable, error) {
		opts, err := optionsFromForm(fm)
		if err != nil {
			return nil, err
		}
		return DateTime(opts...)
	})
	Register(PathTimeOfDay, func(fm deconstruct.Form) (attrspec.Bindable, error) {
		opts, err := optionsFromForm(fm)
		if err != nil {
			return nil, err
		}
		return TimeOfDay(opts...)
	})
	Register(PathUUID, func(fm deconstruct.Form) (attrspec.Bindable, error) {
		opts, err := optionsFromForm(fm)
		if err != nil {
			return nil, err
		}
		return UUID(opts...)
	})
	Register(PathGeometry, func(fm deconstruct.Form) (attrspec.Bindable, error) {
		kind, ok := fm.StringArg(0)
		if !ok {
			return nil, &attrspec.ConfigError{Op: "rebuild", Reason: PathGeometry + ": missing kind argument"}
		}
		opts, err := optionsFromForm(fm)
		if err != nil {
			return nil, err
		}
		return Geometry(GeometryKind(kind), opts...)
	})
	Register(PathArray, rebuildArray)
}

// rebuildArray reconstructs the nested base first, then dispatches on
// its concrete read type. The registry is explicit: a new base read type
// needs a case here.
func rebuildArray(fm deconstruct.Form) (attrspec.Bindable, error) {
	baseForm, ok := fm.FormKwarg("base")
	if !ok {
		return nil, &attrspec.ConfigError{Op: "rebuild", Reason: PathArray + ": missing base form"}
	}
	base, err := Rebuild(baseForm)
	if err != nil {
		return nil, err
	}
	opts, err := optionsFromForm(fm)
	if err != nil {
		return nil, err
	}
	switch b := base.(type) {
	case *attrspec.Field[int64]:
		return ArrayOf(b, opts...)
	case *attrspec.Field[string]:
		return ArrayOf(b, opts...)
	case *attrspec.Field[bool]:
		return ArrayOf(b, opts...)
	case *attrspec.Field[time.Time]:
		return ArrayOf(b, opts...)
	case *attrspec.Field[uuid.UUID]:
		return ArrayOf(b, opts...)
	case *attrspec.Field[decimal.Decimal]:
		return ArrayOf(b, opts...)
	case *attrspec.Field[geom.T]:
		return ArrayOf(b, opts...)
	}
	return nil, &attrspec.ConfigError{Op: "rebuild", Reason: fmt.Sprintf("%s: unsupported base %q", PathArray, baseForm.Path)}
}

// optionsFromForm restores the shared keyword arguments into options.
// Keyword arguments equal to built-in defaults never appear in a form,
// so absence means default.
func optionsFromForm(fm deconstruct.Form) ([]attrspec.Option, error) {
	var opts []attrspec.Option
	if fm.BoolKwarg("null") {
		opts = append(opts, attrspec.Nullable())
	}
	if fm.BoolKwarg("unique") {
		opts = append(opts, attrspec.Unique())
	}
	if fm.BoolKwarg("primary_key") {
		opts = append(opts, attrspec.PrimaryKey())
	}
	if v, ok := fm.Kwarg("editable"); ok {
		if b, isBool := v.(bool); isBool && !b {
			opts = append(opts, attrspec.NotEditable())
		}
	}
	if col, ok := fm.StringKwarg("column"); ok {
		opts = append(opts, attrspec.Column(col))
	}
	if dv, ok := fm.Kwarg("default"); ok {
		opts = append(opts, attrspec.Default(dv))
	}
	if raw, ok := fm.Kwarg("choices"); ok {
		pairs, isList := raw.([]any)
		if !isList {
			return nil, &attrspec.ConfigError{Op: "rebuild", Reason: fmt.Sprintf("%s: malformed choices", fm.Path)}
		}
		cs := make([]attrspec.Choice, 0, len(pairs))
		for _, p := range pairs {
			pair, isPair := p.([]any)
			if !isPair || len(pair) != 2 {
				return nil, &attrspec.ConfigError{Op: "rebuild", Reason: fmt.Sprintf("%s: malformed choice entry", fm.Path)}
			}
			label, _ := pair[1].(string)
			cs = append(cs, attrspec.Choice{Value: pair[0], Label: label})
		}
		opts = append(opts, attrspec.Choices(cs...))
	}
	if raw, ok := fm.Kwarg("capabilities"); ok {
		names, isList := raw.([]any)
		if !isList {
			return nil, &attrspec.ConfigError{Op: "rebuild", Reason: fmt.Sprintf("%s: malformed capabilities", fm.Path)}
		}
		caps := make([]attrspec.Capability, 0, len(names))
		for _, n := range names {
			name, _ := n.(string)
			c, known := capabilityByName(name)
			if !known {
				return nil, &attrspec.ConfigError{Op: "rebuild", Reason: fmt.Sprintf("%s: unknown capability %q", fm.Path, name)}
			}
			caps = append(caps, c)
		}
		opts = append(opts, attrspec.Caps(caps...))
	}
	return opts, nil
}
