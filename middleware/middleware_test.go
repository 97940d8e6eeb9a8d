//nolint:testpackage // using package name 'middleware' to match the package under test
package middleware

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

// TestChainApplyOrder verifies the first middleware becomes the outermost
// wrapper.
func TestChainApplyOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next Action) Action {
			return func() error {
				order = append(order, name)
				return next()
			}
		}
	}

	chain := New(tag("outer"), tag("inner"))
	action := chain.Apply(func() error {
		order = append(order, "action")
		return nil
	})

	if err := action(); err != nil {
		t.Fatalf("Action failed: %v", err)
	}
	want := "outer,inner,action"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestChainUseAppends verifies Use extends without mutating the receiver's
// visible contents.
func TestChainUseAppends(t *testing.T) {
	noop := func(next Action) Action { return next }
	base := New(noop)
	extended := base.Use(noop, noop)

	if len(base) != 1 {
		t.Errorf("Expected base length 1, got %d", len(base))
	}
	if len(extended) != 3 {
		t.Errorf("Expected extended length 3, got %d", len(extended))
	}
}

// TestChainUseNoSharedBacking verifies two chains derived from the same base
// never overwrite each other, even when the base has spare capacity.
func TestChainUseNoSharedBacking(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next Action) Action {
			return func() error {
				order = append(order, name)
				return next()
			}
		}
	}

	base := make(Chain, 0, 4)
	base = base.Use(tag("base"))

	first := base.Use(tag("first"))
	second := base.Use(tag("second"))

	if err := first.Apply(func() error { return nil })(); err != nil {
		t.Fatalf("Action failed: %v", err)
	}
	want := "base,first"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if len(second) != 2 {
		t.Errorf("Expected second chain length 2, got %d", len(second))
	}
}

// TestEmptyChain verifies applying an empty chain returns the action
// untouched in behavior.
func TestEmptyChain(t *testing.T) {
	invoked := false
	action := Chain(nil).Apply(func() error {
		invoked = true
		return nil
	})
	if err := action(); err != nil || !invoked {
		t.Errorf("Expected passthrough, invoked=%v err=%v", invoked, err)
	}
}

// TestRecovery verifies panics become RecoveryError values with a stack.
func TestRecovery(t *testing.T) {
	action := Recovery()(func() error {
		panic("kaboom")
	})

	err := action()
	var re *RecoveryError
	if !errors.As(err, &re) {
		t.Fatalf("Expected RecoveryError, got %v", err)
	}
	if re.Panic != "kaboom" {
		t.Errorf("Expected panic value 'kaboom', got %v", re.Panic)
	}
	if len(re.Stack) == 0 {
		t.Error("Expected a captured stack")
	}
	if re.Error() != "action panicked: kaboom" {
		t.Errorf("Unexpected message: %q", re.Error())
	}
}

// TestRecoveryPassThrough verifies ordinary errors are not wrapped.
func TestRecoveryPassThrough(t *testing.T) {
	boom := errors.New("boom")
	action := Recovery()(func() error { return boom })
	if err := action(); !errors.Is(err, boom) {
		t.Errorf("Expected original error, got %v", err)
	}
}

// TestTimeoutExpires verifies a slow action yields a TimeoutError.
func TestTimeoutExpires(t *testing.T) {
	action := Timeout(10 * time.Millisecond)(func() error {
		time.Sleep(time.Second)
		return nil
	})

	err := action()
	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("Expected TimeoutError, got %v", err)
	}
	if te.Duration != 10*time.Millisecond {
		t.Errorf("Expected recorded duration 10ms, got %v", te.Duration)
	}
}

// TestTimeoutCompletes verifies a fast action's result passes through.
func TestTimeoutCompletes(t *testing.T) {
	boom := errors.New("boom")
	action := Timeout(time.Second)(func() error { return boom })
	if err := action(); !errors.Is(err, boom) {
		t.Errorf("Expected original error, got %v", err)
	}
}

// TestLogger verifies the start and completion lines.
func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	action := Logger(&buf, "deploy")(func() error { return nil })

	if err := action(); err != nil {
		t.Fatalf("Action failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "deploy: started") {
		t.Errorf("Expected start line, got %q", out)
	}
	if !strings.Contains(out, "deploy: completed in") {
		t.Errorf("Expected completion line, got %q", out)
	}
}

// TestLoggerFailure verifies the failure line carries the error.
func TestLoggerFailure(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")
	action := Logger(&buf, "deploy")(func() error { return boom })

	if err := action(); !errors.Is(err, boom) {
		t.Fatalf("Expected original error, got %v", err)
	}
	if !strings.Contains(buf.String(), "deploy: failed after") || !strings.Contains(buf.String(), "boom") {
		t.Errorf("Expected failure line with error, got %q", buf.String())
	}
}
