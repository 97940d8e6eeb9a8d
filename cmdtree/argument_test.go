//nolint:testpackage // using package name 'cmdtree' to reach unexported helpers
package cmdtree

import (
	"errors"
	"testing"
	"time"
)

// TestTypedArguments verifies each typed constructor converts its token.
func TestTypedArguments(t *testing.T) {
	var name string
	var count int64
	var port uint16
	var ratio float64
	var enabled bool
	var wait time.Duration

	p := New("test").
		Argument(StringArgument("name", "", &name)).
		Argument(IntArgument("count", "", &count)).
		Argument(UintArgument("port", "", &port)).
		Argument(FloatArgument("ratio", "", &ratio)).
		Argument(BoolArgument("enabled", "", &enabled)).
		Argument(DurationArgument("wait", "", &wait)).
		Action(func() error { return nil })

	_, err := p.Parse([]string{"app", "web", "-3", "8080", "0.75", "true", "250ms"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if name != "web" || count != -3 || port != 8080 || ratio != 0.75 || !enabled || wait != 250*time.Millisecond {
		t.Errorf("Unexpected bindings: %q %d %d %v %v %v", name, count, port, ratio, enabled, wait)
	}
}

// TestArgumentConversionError verifies the error names the argument site.
func TestArgumentConversionError(t *testing.T) {
	var port uint16
	p := New("test").
		Argument(UintArgument("port", "", &port)).
		Action(func() error { return nil })

	_, err := p.Parse([]string{"app", "eighty"})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected ParseError, got %v", err)
	}
	want := "argument 'port' is not a valid uint16 value: 'eighty'"
	if pe.Error() != want {
		t.Errorf("Expected %q, got %q", want, pe.Error())
	}
}

// TestBoolArgumentRequiresLiteral verifies boolean positionals never default
// to true; the token itself must be a boolean literal.
func TestBoolArgumentRequiresLiteral(t *testing.T) {
	var force bool
	p := New("test").
		Argument(BoolArgument("force", "", &force)).
		Action(func() error { return nil })

	if _, err := p.Parse([]string{"app", "maybe"}); err == nil {
		t.Error("Expected error for non-literal boolean token")
	}
	if _, err := p.Parse([]string{"app", "false"}); err != nil {
		t.Errorf("Parse failed: %v", err)
	}
	if force {
		t.Error("Expected force=false")
	}
}

// TestNegativeIntegerToken verifies a leading minus token is treated as a
// flag, not a positional, under the default prefix.
func TestNegativeIntegerToken(t *testing.T) {
	var count int64
	p := New("test").
		Argument(IntArgument("count", "", &count)).
		Action(func() error { return nil })

	// "-5" looks like a flag named "5" and there is no such option.
	_, err := p.Parse([]string{"app", "-5"})
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Type != ErrorTypeUnknownOption {
		t.Errorf("Expected unknown_option for '-5', got %v", err)
	}

	// Under a non-dash prefix the same token binds as a positional.
	var count2 int64
	p2 := New("test").
		WithPrefix('+').
		Argument(IntArgument("count", "", &count2)).
		Action(func() error { return nil })
	if _, err := p2.Parse([]string{"app", "-5"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if count2 != -5 {
		t.Errorf("Expected count=-5, got %d", count2)
	}
}

// TestCustomArgumentCallback verifies NewArgument wires an arbitrary
// callback.
func TestCustomArgumentCallback(t *testing.T) {
	var tokens []string
	p := New("test").
		Argument(NewArgument("a", "", func(value string, ctx *Context) error {
			tokens = append(tokens, ctx.Name+"="+value)
			return nil
		})).
		Argument(NewArgument("b", "", func(value string, ctx *Context) error {
			tokens = append(tokens, ctx.Name+"="+value)
			return nil
		})).
		Action(func() error { return nil })

	if _, err := p.Parse([]string{"app", "one", "two"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(tokens) != 2 || tokens[0] != "a=one" || tokens[1] != "b=two" {
		t.Errorf("Expected ordered bindings, got %v", tokens)
	}
}
