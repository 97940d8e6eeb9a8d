package cmdtree

import "time"

// ArgumentFunc is the conversion callback bound to a positional argument.
// Unlike options, a positional argument always receives a value.
type ArgumentFunc func(value string, ctx *Context) error

// Argument is a declared positional argument. Declaration order is binding
// order: the n-th declared argument receives the n-th positional token.
type Argument struct {
	Name        string
	Description string

	bind ArgumentFunc
}

// NewArgument builds a positional argument with an explicit conversion
// callback.
func NewArgument(name, description string, fn ArgumentFunc) Argument {
	return Argument{Name: name, Description: description, bind: fn}
}

// Bind invokes the conversion callback for the argument's token.
func (a *Argument) Bind(value string, ctx *Context) error {
	return a.bind(value, ctx)
}

// Typed argument constructors, mirroring the option constructors. Boolean
// positionals differ from boolean options: the value is always required and
// parsed as a boolean literal.

// StringArgument stores the raw token verbatim.
func StringArgument(name, description string, dest *string) Argument {
	return NewArgument(name, description, func(value string, _ *Context) error {
		*dest = value
		return nil
	})
}

// IntArgument parses a signed integer of the destination's width.
func IntArgument[T Signed](name, description string, dest *T) Argument {
	return NewArgument(name, description, func(value string, ctx *Context) error {
		return convertSigned(dest, "argument", ctx.Name, value)
	})
}

// UintArgument parses an unsigned integer of the destination's width.
func UintArgument[T Unsigned](name, description string, dest *T) Argument {
	return NewArgument(name, description, func(value string, ctx *Context) error {
		return convertUnsigned(dest, "argument", ctx.Name, value)
	})
}

// FloatArgument parses a floating point number of the destination's width.
func FloatArgument[T Float](name, description string, dest *T) Argument {
	return NewArgument(name, description, func(value string, ctx *Context) error {
		return convertFloat(dest, "argument", ctx.Name, value)
	})
}

// BoolArgument parses the token as a boolean literal.
func BoolArgument(name, description string, dest *bool) Argument {
	return NewArgument(name, description, func(value string, ctx *Context) error {
		return convertBool(dest, "argument", ctx.Name, value)
	})
}

// DurationArgument parses a Go duration literal.
func DurationArgument(name, description string, dest *time.Duration) Argument {
	return NewArgument(name, description, func(value string, ctx *Context) error {
		return convertDuration(dest, "argument", ctx.Name, value)
	})
}
