package record

import (
	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/i18n"
)

// Instance owns the per-record value slots the bound descriptors read
// and write. Slot mutation is the instance's responsibility; descriptors
// only mediate access.
type Instance struct {
	meta   *Meta
	values map[string]any
}

// Meta returns the owning record type.
func (in *Instance) Meta() *Meta { return in.meta }

// Load implements attrspec.Instance.
func (in *Instance) Load(attr string) (any, bool) {
	v, ok := in.values[attr]
	return v, ok
}

// Store implements attrspec.Instance.
func (in *Instance) Store(attr string, v any) {
	in.values[attr] = v
}

// Access builds the instance-level access context for this record.
func (in *Instance) Access() attrspec.AccessContext {
	return attrspec.InstanceAccess(in.meta, in)
}

// Set writes an attribute by name through its descriptor.
func (in *Instance) Set(attr string, v any) error {
	f, ok := in.meta.Field(attr)
	if !ok {
		return &attrspec.ConfigError{Op: "set", Reason: in.meta.ModelName() + ": unknown attribute " + attr}
	}
	return f.Write(in.Access(), v)
}

// ValidateAll validates every slot against its descriptor and aggregates
// the failures into one report, prefixing each path with the attribute
// name. Unset non-nullable attributes without a default report required.
func (in *Instance) ValidateAll() attrspec.Failures {
	var out attrspec.Failures
	for _, name := range in.meta.AttrNames() {
		f, _ := in.meta.Field(name)
		spec := f.Meta()
		v, ok := in.values[name]
		if !ok {
			if dv, has := spec.DefaultValue(); has {
				v = dv
			} else if !spec.Nullable() {
				out = attrspec.AppendFailures(out, attrspec.Failure{
					Path:    "/" + name,
					Code:    attrspec.CodeRequired,
					Message: i18n.T(attrspec.CodeRequired, nil),
					Rule:    "required",
				})
				continue
			} else {
				continue
			}
		}
		for _, fl := range f.Validate(v) {
			fl.Path = "/" + name + trimRoot(fl.Path)
			out = attrspec.AppendFailures(out, fl)
		}
	}
	return out
}

func trimRoot(p string) string {
	if p == "/" {
		return ""
	}
	return p
}
