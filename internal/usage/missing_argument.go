package usage

import "fmt"

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("da: missing required argument '%s'", arg),
	}
}

// InvalidValue is returned when an argument is present but unusable.
func InvalidValue(arg, value, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf("da: invalid %s '%s': %s", arg, value, reason),
	}
}

// InvalidConfigKey is returned for keys outside the config catalogue.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("da: '%s' is not a valid config key. See 'da config list'.", key),
	}
}

// InvalidPattern wraps a grammar error from a user supplied pattern.
func InvalidPattern(err error) *Error {
	return &Error{
		Kind:    ErrInvalidPattern,
		Message: fmt.Sprintf("da: invalid pattern: %v", err),
	}
}
