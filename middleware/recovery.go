package middleware

import (
	"fmt"
	"runtime"
)

// RecoveryError wraps a panic raised by an action.
type RecoveryError struct {
	Panic any
	Stack []byte
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("action panicked: %v", e.Panic)
}

// Recovery converts a panic in the wrapped action into a *RecoveryError
// carrying the stack at the panic site.
func Recovery() Middleware {
	return func(next Action) Action {
		return func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := make([]byte, 4096)
					n := runtime.Stack(stack, false)
					err = &RecoveryError{Panic: r, Stack: stack[:n]}
				}
			}()
			return next()
		}
	}
}
