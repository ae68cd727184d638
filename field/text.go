package field

import (
	"fmt"
	"reflect"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/i18n"
)

const (
	PathChar = "field.Char"
	PathText = "field.Text"
)

// Char builds a length-bounded string descriptor. maxLength caps the
// value in runes and is echoed as the variant's positional argument.
func Char(maxLength int, opts ...attrspec.Option) (*attrspec.Field[string], error) {
	if maxLength <= 0 {
		return nil, &attrspec.ConfigError{Op: "new", Reason: fmt.Sprintf("%s: max length must be positive, got %d", PathChar, maxLength)}
	}
	base := []attrspec.Option{attrspec.Validators(attrspec.MaxLength(maxLength))}
	f, err := attrspec.New[string](PathChar, CoerceString, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	return f.DeconstructArgs(maxLength), nil
}

// Text builds an unbounded string descriptor.
func Text(opts ...attrspec.Option) (*attrspec.Field[string], error) {
	return attrspec.New[string](PathText, CoerceString, opts...)
}

// CoerceString is the text variants' write bound: strings, integers and
// Stringer values.
func CoerceString(v any) (string, attrspec.Failures) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", reflect.ValueOf(s).Int()), nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", reflect.ValueOf(s).Uint()), nil
	}
	return "", attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil)}}
}
