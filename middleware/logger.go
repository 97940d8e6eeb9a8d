package middleware

import (
	"fmt"
	"io"
	"time"
)

// Logger writes a line before and after the wrapped action runs, tagged with
// name. Durations are rounded to the millisecond.
func Logger(w io.Writer, name string) Middleware {
	return func(next Action) Action {
		return func() error {
			start := time.Now()
			fmt.Fprintf(w, "%s: started\n", name)

			err := next()

			elapsed := time.Since(start).Round(time.Millisecond)
			if err != nil {
				fmt.Fprintf(w, "%s: failed after %s: %v\n", name, elapsed, err)
			} else {
				fmt.Fprintf(w, "%s: completed in %s\n", name, elapsed)
			}
			return err
		}
	}
}
