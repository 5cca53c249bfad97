package domain

import "errors"

// Common domain errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidStage = errors.New("invalid interview stage")
)

// ConfigError reports a profile, scoring or question-bank misconfiguration.
// Loaders return it at startup so a broken configuration can never reach the
// scoring path.
type ConfigError struct {
	Section string
	Reason  string
}

func (e *ConfigError) Error() string {
	return "invalid configuration [" + e.Section + "]: " + e.Reason
}

func NewConfigError(section, reason string) *ConfigError {
	return &ConfigError{Section: section, Reason: reason}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
