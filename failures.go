package attrspec

import (
	"errors"
	"fmt"
	"strings"
)

// Failure codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeNullRejected  = "null_rejected"
	CodeInvalidChoice = "invalid_choice"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodePattern       = "pattern"
	CodeInvalidFormat = "invalid_format"
	CodeOverflow      = "overflow"
)

// Failure represents a single validation entry.
type Failure struct {
	Path    string // JSON Pointer (for example: /tags/2).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"max":10, "got":42})
	// for i18n and observability.
	Params map[string]any
	// Rule optionally records the validator name that produced this failure.
	Rule string
}

// Failures is a collection of validation failures that implements error.
type Failures []Failure

// Error summarizes the first few failures.
func (fs Failures) Error() string {
	if len(fs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(fs)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		f := fs[i]
		// e.g. null_rejected at /
		fmt.Fprintf(b, "%s at %s", f.Code, f.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendFailures appends failures to the destination, initializing the
// slice when needed.
func AppendFailures(dst Failures, more ...Failure) Failures {
	if dst == nil {
		dst = Failures{}
	}
	dst = append(dst, more...)
	return dst
}

// AsFailures extracts Failures from an error using errors.As internally.
func AsFailures(err error) (Failures, bool) {
	if err == nil {
		return nil, false
	}
	var fs Failures
	if errors.As(err, &fs) {
		return fs, true
	}
	return nil, false
}
