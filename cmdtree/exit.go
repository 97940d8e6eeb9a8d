package cmdtree

import "errors"

// ExitCoder maps parse error categories to process exit codes. The parser
// never terminates the process; callers resolve a code and exit themselves.
type ExitCoder struct {
	codes    map[ErrorType]int
	fallback int
}

// NewExitCoder returns a coder with conventional defaults: misusage errors
// map to 2, unknown commands to 127, everything else to 1.
func NewExitCoder() *ExitCoder {
	return &ExitCoder{
		codes: map[ErrorType]int{
			ErrorTypeUnknownOption:    2,
			ErrorTypeMissingValue:     2,
			ErrorTypeInvalidValue:     2,
			ErrorTypeTooFewArguments:  2,
			ErrorTypeTooManyArguments: 2,
			ErrorTypeUnknownCommand:   127,
			ErrorTypeConfig:           1,
		},
		fallback: 1,
	}
}

// Define overrides the exit code for one error category.
func (e *ExitCoder) Define(typ ErrorType, code int) *ExitCoder {
	e.codes[typ] = code
	return e
}

// Resolve converts an error to an exit code. nil resolves to 0; errors that
// are not *ParseError values resolve to the fallback code.
func (e *ExitCoder) Resolve(err error) int {
	if err == nil {
		return 0
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		if code, ok := e.codes[pe.Type]; ok {
			return code
		}
	}
	return e.fallback
}
