package options

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ConfigurationError reports options or arguments that make a lookup
// impossible. It is always returned before any request is sent.
type ConfigurationError struct {
	Err error
}

// NewConfigurationError formats a ConfigurationError.
func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Err: fmt.Errorf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid lookup configuration: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// configurationErrors wraps the accumulated problems, or returns nil when
// there are none.
func configurationErrors(result *multierror.Error) error {
	if result.ErrorOrNil() == nil {
		return nil
	}
	result.ErrorFormat = listFormat
	return &ConfigurationError{Err: result}
}

func listFormat(es []error) string {
	msgs := make([]string, len(es))
	for i, err := range es {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
