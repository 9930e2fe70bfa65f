package actions

import "fmt"

// ConfigurationError is fatal to an action invocation before any network
// call: an unsupported action name or a missing credential or parameter.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

func configErrorf(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
