package field

import (
	"encoding/json"
	"math"
	"strconv"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/i18n"
)

// PathInteger is the factory path of the integer variant.
const (
	PathInteger         = "field.Integer"
	PathAuto            = "field.Auto"
	PathPositiveInteger = "field.PositiveInteger"
)

// Integer builds a descriptor reading int64 and accepting numbers or
// numeric strings on write.
func Integer(opts ...attrspec.Option) (*attrspec.Field[int64], error) {
	f, err := attrspec.New[int64](PathInteger, CoerceInt64, opts...)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Auto builds an integer descriptor whose value is assigned by storage.
// It is excluded from editing surfaces and carries the AutoIncrement
// capability.
func Auto(opts ...attrspec.Option) (*attrspec.Field[int64], error) {
	base := []attrspec.Option{attrspec.NotEditable(), attrspec.Caps(AutoIncrement{})}
	f, err := attrspec.New[int64](PathAuto, CoerceInt64, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// PositiveInteger tightens Integer's write bound to non-negative inputs
// and carries the UnsignedRelative capability for column-type mapping.
func PositiveInteger(opts ...attrspec.Option) (*attrspec.Field[int64], error) {
	base := []attrspec.Option{attrspec.Caps(UnsignedRelative{})}
	f, err := attrspec.New[int64](PathPositiveInteger, coercePositiveInt64, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// CoerceInt64 is the integer variant's write bound: signed and unsigned
// integers, integral floats, json.Number and numeric strings.
func CoerceInt64(v any) (int64, attrspec.Failures) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, attrspec.Failures{{Path: "/", Code: attrspec.CodeOverflow, Message: i18n.T(attrspec.CodeOverflow, nil)}}
		}
		return int64(n), nil
	case float32:
		return coerceIntFromFloat(float64(n))
	case float64:
		return coerceIntFromFloat(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil), Cause: err}}
		}
		return i, nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil), Cause: err}}
		}
		return i, nil
	}
	return 0, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil)}}
}

func coerceIntFromFloat(f float64) (int64, attrspec.Failures) {
	if math.Trunc(f) != f {
		return 0, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: "fractional part not allowed for integer"}}
	}
	if f < math.MinInt64 || f > math.MaxInt64 {
		return 0, attrspec.Failures{{Path: "/", Code: attrspec.CodeOverflow, Message: i18n.T(attrspec.CodeOverflow, nil)}}
	}
	return int64(f), nil
}

// coercePositiveInt64 narrows CoerceInt64: everything it accepts is also
// accepted by the parent bound.
func coercePositiveInt64(v any) (int64, attrspec.Failures) {
	i, fs := CoerceInt64(v)
	if len(fs) > 0 {
		return 0, fs
	}
	if i < 0 {
		return 0, attrspec.Failures{{Path: "/", Code: attrspec.CodeTooSmall, Message: i18n.T(attrspec.CodeTooSmall, nil), Rule: "unsigned", Params: map[string]any{"got": i}}}
	}
	return i, nil
}
