package attrspec

import (
	"errors"
	"fmt"
)

// ConfigError reports a fatal descriptor misconfiguration detected at
// construction or bind time: conflicting options, a second bind, choices
// demanded but absent. It halts the operation that raised it and is
// never collected into Failures.
type ConfigError struct {
	Op     string // the operation that failed, e.g. "bind", "new"
	Reason string
}

func (e *ConfigError) Error() string {
	return "attrspec: " + e.Op + ": " + e.Reason
}

func configErrf(op, format string, args ...any) *ConfigError {
	return &ConfigError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is a ConfigError, unwrapping as
// needed.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
