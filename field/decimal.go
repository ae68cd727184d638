package field

import (
	"encoding/json"
	"fmt"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/i18n"
	"github.com/shopspring/decimal"
)

const PathDecimal = "field.Decimal"

// Decimal builds a fixed-point descriptor reading decimal.Decimal.
// maxDigits caps total significant digits and places caps digits after
// the point; both are echoed as positional arguments.
func Decimal(maxDigits, places int, opts ...attrspec.Option) (*attrspec.Field[decimal.Decimal], error) {
	if maxDigits <= 0 || places < 0 || places > maxDigits {
		return nil, &attrspec.ConfigError{Op: "new", Reason: fmt.Sprintf("%s: invalid digits spec (%d, %d)", PathDecimal, maxDigits, places)}
	}
	base := []attrspec.Option{attrspec.Validators(maxDigitsCheck(maxDigits), decimalPlacesCheck(places))}
	f, err := attrspec.New[decimal.Decimal](PathDecimal, CoerceDecimal, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	return f.DeconstructArgs(maxDigits, places), nil
}

// CoerceDecimal accepts decimals, numeric strings, integers, floats and
// json.Number values.
func CoerceDecimal(v any) (decimal.Decimal, attrspec.Failures) {
	switch d := v.(type) {
	case decimal.Decimal:
		return d, nil
	case string:
		out, err := decimal.NewFromString(d)
		if err != nil {
			return decimal.Zero, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil), Cause: err}}
		}
		return out, nil
	case json.Number:
		out, err := decimal.NewFromString(string(d))
		if err != nil {
			return decimal.Zero, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil), Cause: err}}
		}
		return out, nil
	case int:
		return decimal.NewFromInt(int64(d)), nil
	case int64:
		return decimal.NewFromInt(d), nil
	case float64:
		return decimal.NewFromFloat(d), nil
	}
	return decimal.Zero, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil)}}
}

func maxDigitsCheck(maxDigits int) attrspec.Validator {
	return attrspec.ValidatorFunc{
		Rule: "max_digits",
		Fn: func(v any) *attrspec.Failure {
			d, ok := v.(decimal.Decimal)
			if !ok || d.NumDigits() <= maxDigits {
				return nil
			}
			return &attrspec.Failure{
				Code:    attrspec.CodeTooBig,
				Message: i18n.T(attrspec.CodeTooBig, nil),
				Params:  map[string]any{"max_digits": maxDigits, "got": d.NumDigits()},
			}
		},
	}
}

func decimalPlacesCheck(places int) attrspec.Validator {
	return attrspec.ValidatorFunc{
		Rule: "decimal_places",
		Fn: func(v any) *attrspec.Failure {
			d, ok := v.(decimal.Decimal)
			if !ok || d.Exponent() >= -int32(places) {
				return nil
			}
			return &attrspec.Failure{
				Code:    attrspec.CodeTooBig,
				Message: i18n.T(attrspec.CodeTooBig, nil),
				Params:  map[string]any{"decimal_places": places, "got": -d.Exponent()},
			}
		},
	}
}
