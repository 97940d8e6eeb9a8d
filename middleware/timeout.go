package middleware

import (
	"context"
	"fmt"
	"time"
)

// TimeoutError reports that an action exceeded its deadline.
type TimeoutError struct {
	Duration time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("action timed out after %s", e.Duration)
}

// Timeout bounds the wrapped action's execution. The action keeps running in
// its goroutine after the deadline; callers that need cooperative cancellation
// should check their own context inside the action.
func Timeout(d time.Duration) Middleware {
	return func(next Action) Action {
		return func() error {
			ctx, cancel := context.WithTimeout(context.Background(), d)
			defer cancel()

			done := make(chan error, 1)
			go func() { done <- next() }()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return &TimeoutError{Duration: d}
			}
		}
	}
}
