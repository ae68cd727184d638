package attrspec

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/attrspec/attrspec/i18n"
	"github.com/shopspring/decimal"
)

// MinValue returns a validator rejecting numeric values below min
// (inclusive). Non-numeric values are ignored by this guard (type
// failures are handled by coercion).
func MinValue(min float64) Validator {
	return ValidatorFunc{
		Rule: "min_value",
		Fn: func(v any) *Failure {
			f, ok := asFloat(v)
			if !ok || f >= min {
				return nil
			}
			return &Failure{
				Code:    CodeTooSmall,
				Message: i18n.T(CodeTooSmall, nil),
				Params:  map[string]any{"min": min, "got": f},
			}
		},
	}
}

// MaxValue returns a validator rejecting numeric values above max
// (inclusive).
func MaxValue(max float64) Validator {
	return ValidatorFunc{
		Rule: "max_value",
		Fn: func(v any) *Failure {
			f, ok := asFloat(v)
			if !ok || f <= max {
				return nil
			}
			return &Failure{
				Code:    CodeTooBig,
				Message: i18n.T(CodeTooBig, nil),
				Params:  map[string]any{"max": max, "got": f},
			}
		},
	}
}

// MinLength returns a validator rejecting strings shorter than n runes.
func MinLength(n int) Validator {
	return ValidatorFunc{
		Rule: "min_length",
		Fn: func(v any) *Failure {
			s, ok := v.(string)
			if !ok || utf8.RuneCountInString(s) >= n {
				return nil
			}
			return &Failure{
				Code:    CodeTooShort,
				Message: i18n.T(CodeTooShort, nil),
				Params:  map[string]any{"min": n, "got": utf8.RuneCountInString(s)},
			}
		},
	}
}

// MaxLength returns a validator rejecting strings longer than n runes.
func MaxLength(n int) Validator {
	return ValidatorFunc{
		Rule: "max_length",
		Fn: func(v any) *Failure {
			s, ok := v.(string)
			if !ok || utf8.RuneCountInString(s) <= n {
				return nil
			}
			return &Failure{
				Code:    CodeTooLong,
				Message: i18n.T(CodeTooLong, nil),
				Params:  map[string]any{"max": n, "got": utf8.RuneCountInString(s)},
			}
		},
	}
}

// Pattern returns a validator rejecting strings that do not match re.
func Pattern(re *regexp.Regexp) Validator {
	return ValidatorFunc{
		Rule: "pattern",
		Fn: func(v any) *Failure {
			s, ok := v.(string)
			if !ok || re.MatchString(s) {
				return nil
			}
			return &Failure{
				Code:    CodePattern,
				Message: i18n.T(CodePattern, nil),
				Params:  map[string]any{"pattern": re.String()},
			}
		},
	}
}

// asFloat widens the common numeric shapes to float64 for range checks.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8, int16, int32, int64:
		return float64(reflect.ValueOf(n).Int()), true
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(n).Uint()), true
	case float32, float64:
		return reflect.ValueOf(n).Convert(reflect.TypeOf(float64(0))).Float(), true
	case json.Number:
		if f, err := strconv.ParseFloat(string(n), 64); err == nil {
			return f, true
		}
	case decimal.Decimal:
		return n.InexactFloat64(), true
	}
	return 0, false
}
