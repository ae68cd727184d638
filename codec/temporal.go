package codec

import (
	"context"
	"time"

	attrspec "github.com/attrspec/attrspec"
)

// TimeRFC3339 returns a Codec that converts between RFC3339 strings and
// time.Time. Encoding normalizes to UTC.
func TimeRFC3339() attrspec.Codec[string, time.Time] {
	return rfc3339Codec{}
}

type rfc3339Codec struct{}

func (rfc3339Codec) Decode(ctx context.Context, a string) (time.Time, error) {
	t, err := ParseRFC3339(a)
	if err != nil {
		return time.Time{}, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidFormat, Message: "invalid RFC3339 time", Cause: err}}
	}
	return t, nil
}

func (rfc3339Codec) Encode(ctx context.Context, b time.Time) (string, error) {
	return FormatRFC3339(b), nil
}

// DateOnly returns a Codec for calendar dates ("2006-01-02").
func DateOnly() attrspec.Codec[string, time.Time] {
	return dateCodec{}
}

type dateCodec struct{}

func (dateCodec) Decode(ctx context.Context, a string) (time.Time, error) {
	t, err := ParseDate(a)
	if err != nil {
		return time.Time{}, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidFormat, Message: "invalid date", Cause: err}}
	}
	return t, nil
}

func (dateCodec) Encode(ctx context.Context, b time.Time) (string, error) {
	return b.Format(time.DateOnly), nil
}

// ClockTime returns a Codec for wall-clock times ("15:04:05", seconds
// optional on decode).
func ClockTime() attrspec.Codec[string, time.Time] {
	return clockCodec{}
}

type clockCodec struct{}

func (clockCodec) Decode(ctx context.Context, a string) (time.Time, error) {
	t, err := ParseClock(a)
	if err != nil {
		return time.Time{}, attrspec.Failures{{Path: "/", Code: attrspec.CodeInvalidFormat, Message: "invalid clock time", Cause: err}}
	}
	return t, nil
}

func (clockCodec) Encode(ctx context.Context, b time.Time) (string, error) {
	return b.Format(time.TimeOnly), nil
}

// ParseRFC3339 accepts RFC3339 with or without fractional seconds.
func ParseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

// FormatRFC3339 normalizes to UTC and formats using RFC3339Nano (Go
// trims trailing zeros).
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseDate parses a calendar date, truncating any coincidental time
// component to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := ParseRFC3339(s)
	if err != nil {
		return time.Time{}, err
	}
	return TruncateToDate(t), nil
}

// ParseClock parses a wall-clock time on the zero date.
func ParseClock(s string) (time.Time, error) {
	if t, err := time.Parse(time.TimeOnly, s); err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}

// TruncateToDate drops the clock component, keeping year/month/day in
// UTC.
func TruncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
