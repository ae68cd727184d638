package field

import (
	"fmt"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/i18n"
)

const PathArray = "field.ArrayOf"

// ArrayOf builds a sequence descriptor over a base field. Writes accept
// a slice whose elements satisfy the base's write bound; reads produce a
// slice of the base's read type. The base field's deconstructed form is
// nested under the "base" keyword argument.
func ArrayOf[G any](base *attrspec.Field[G], opts ...attrspec.Option) (*attrspec.Field[[]G], error) {
	if base == nil {
		return nil, &attrspec.ConfigError{Op: "new", Reason: PathArray + ": nil base field"}
	}
	f, err := attrspec.New[[]G](PathArray, coerceSlice(base), opts...)
	if err != nil {
		return nil, err
	}
	return f.DeconstructKwargs(func() map[string]any {
		return map[string]any{"base": base.Deconstruct()}
	}), nil
}

func coerceSlice[G any](base *attrspec.Field[G]) attrspec.Coercer[[]G] {
	return func(v any) ([]G, attrspec.Failures) {
		switch s := v.(type) {
		case []G:
			out := make([]G, len(s))
			copy(out, s)
			return out, nil
		case []any:
			out := make([]G, 0, len(s))
			var all attrspec.Failures
			for i, e := range s {
				g, fs := base.Coerce(e)
				if len(fs) > 0 {
					for _, f := range fs {
						f.Path = fmt.Sprintf("/%d%s", i, trimRootPath(f.Path))
						all = attrspec.AppendFailures(all, f)
					}
					continue
				}
				out = append(out, g)
			}
			if len(all) > 0 {
				return nil, all
			}
			return out, nil
		}
		return nil, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil)}}
	}
}

// trimRootPath drops the root pointer so element paths render as /0, not /0/.
func trimRootPath(p string) string {
	if p == "/" {
		return ""
	}
	return p
}
