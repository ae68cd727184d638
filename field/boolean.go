package field

import (
	"strconv"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/i18n"
)

const PathBoolean = "field.Boolean"

// Boolean builds a descriptor reading bool and accepting boolean-like
// inputs on write.
func Boolean(opts ...attrspec.Option) (*attrspec.Field[bool], error) {
	return attrspec.New[bool](PathBoolean, CoerceBool, opts...)
}

// CoerceBool accepts bools, 0/1 integers and strconv-style boolean
// strings ("true", "t", "1", ...).
func CoerceBool(v any) (bool, attrspec.Failures) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case int:
		if b == 0 || b == 1 {
			return b == 1, nil
		}
	case int64:
		if b == 0 || b == 1 {
			return b == 1, nil
		}
	case string:
		if p, err := strconv.ParseBool(b); err == nil {
			return p, nil
		}
	}
	return false, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil)}}
}
