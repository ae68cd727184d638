package field

import (
	"time"

	attrspec "github.com/attrspec/attrspec"
	"github.com/attrspec/attrspec/codec"
	"github.com/attrspec/attrspec/i18n"
)

const (
	PathDate      = "field.Date"
	PathDateTime  = "field.DateTime"
	PathTimeOfDay = "field.TimeOfDay"
)

// Date builds a calendar-date descriptor. Writes accept time.Time values
// or date strings; the stored value is truncated to midnight UTC.
func Date(opts ...attrspec.Option) (*attrspec.Field[time.Time], error) {
	return attrspec.New[time.Time](PathDate, coerceDate, opts...)
}

// DateTime builds a timestamp descriptor accepting time.Time values or
// RFC3339 strings.
func DateTime(opts ...attrspec.Option) (*attrspec.Field[time.Time], error) {
	return attrspec.New[time.Time](PathDateTime, coerceDateTime, opts...)
}

// TimeOfDay builds a wall-clock descriptor accepting time.Time values or
// "15:04[:05]" strings.
func TimeOfDay(opts ...attrspec.Option) (*attrspec.Field[time.Time], error) {
	return attrspec.New[time.Time](PathTimeOfDay, coerceClock, opts...)
}

func coerceDate(v any) (time.Time, attrspec.Failures) {
	switch t := v.(type) {
	case time.Time:
		return codec.TruncateToDate(t), nil
	case string:
		out, err := codec.ParseDate(t)
		if err != nil {
			return time.Time{}, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidFormat, Message: i18n.T(attrspec.CodeInvalidFormat, nil), Cause: err}}
		}
		return out, nil
	}
	return time.Time{}, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil)}}
}

func coerceDateTime(v any) (time.Time, attrspec.Failures) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		out, err := codec.ParseRFC3339(t)
		if err != nil {
			return time.Time{}, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidFormat, Message: i18n.T(attrspec.CodeInvalidFormat, nil), Cause: err}}
		}
		return out, nil
	}
	return time.Time{}, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil)}}
}

func coerceClock(v any) (time.Time, attrspec.Failures) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		out, err := codec.ParseClock(t)
		if err != nil {
			return time.Time{}, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidFormat, Message: i18n.T(attrspec.CodeInvalidFormat, nil), Cause: err}}
		}
		return out, nil
	}
	return time.Time{}, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidType, Message: i18n.T(attrspec.CodeInvalidType, nil)}}
}
