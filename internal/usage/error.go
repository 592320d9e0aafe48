package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnrecognizedCommand
	ErrNoMatch
	ErrMissingArgument
	ErrInvalidValue
	ErrInvalidPattern
	ErrInvalidConfigKey
)

// Exit codes:
//
//	Exit 1: nothing matched, or the environment failed
//	  - Unknown errors
//	  - Unrecognized command
//	  - No match (pattern try)
//	  - Invalid config key
//
//	Exit 2: User input errors
//	  - Missing argument
//	  - Invalid value
//	  - Invalid pattern
var exitCodes = map[ErrorKind]int{
	ErrUnknown:             1,
	ErrUnrecognizedCommand: 1,
	ErrNoMatch:             1,
	ErrMissingArgument:     2,
	ErrInvalidValue:        2,
	ErrInvalidPattern:      2,
	ErrInvalidConfigKey:    1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // overrides the code derived from Kind when non-zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

var _ error = (*Error)(nil)
