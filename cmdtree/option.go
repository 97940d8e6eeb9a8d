package cmdtree

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Arity classifies whether an option consumes a value token.
type Arity int

const (
	// ValueRequired means the option must receive a value, either inline
	// (name=value) or as the following token.
	ValueRequired Arity = iota
	// ValueOptional means the option accepts a value but also works bare.
	ValueOptional
	// ValueNone means the option carries no value of its own. A value may
	// still reach the callback through lookahead; the callback decides what
	// to do with it.
	ValueNone
)

// OptionFunc is the conversion callback bound to an option. A nil value means
// the option was matched without a value token.
type OptionFunc func(value *string, ctx *Context) error

// Option is a named flag belonging to one command's option set. Alias names
// are compared case-sensitively. Options are built once when the command tree
// is assembled and never mutated during parsing.
type Option struct {
	Names       []string
	Description string
	Arity       Arity
	EnvVars     []string

	bind OptionFunc
}

// NewOption builds an option with an explicit arity and conversion callback.
func NewOption(names []string, description string, arity Arity, fn OptionFunc) Option {
	return Option{Names: names, Description: description, Arity: arity, bind: fn}
}

// Match reports whether name is one of the option's aliases.
func (o *Option) Match(name string) bool {
	for _, n := range o.Names {
		if n == name {
			return true
		}
	}
	return false
}

// Bind invokes the conversion callback for a matched token.
func (o *Option) Bind(value *string, ctx *Context) error {
	return o.bind(value, ctx)
}

// FromEnv returns a copy of the option that additionally reads the given
// environment variables during Parser.BindEnv. The first variable that is set
// wins.
func (o Option) FromEnv(vars ...string) Option {
	o.EnvVars = vars
	return o
}

// Numeric type sets. A single generic conversion per class replaces one
// constructor per primitive width.

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Float interface {
	~float32 | ~float64
}

func bitSize[T any]() int {
	var zero T
	return reflect.TypeOf(zero).Bits()
}

func conversionError(site, name, typeName, value string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeInvalidValue,
		Option:  name,
		Message: fmt.Sprintf("%s '%s' is not a valid %s value: '%s'", site, name, typeName, value),
	}
}

func convertSigned[T Signed](dest *T, site, name, value string) error {
	v, err := strconv.ParseInt(value, 10, bitSize[T]())
	if err != nil {
		return conversionError(site, name, fmt.Sprintf("%T", *dest), value)
	}
	*dest = T(v)
	return nil
}

func convertUnsigned[T Unsigned](dest *T, site, name, value string) error {
	v, err := strconv.ParseUint(value, 10, bitSize[T]())
	if err != nil {
		return conversionError(site, name, fmt.Sprintf("%T", *dest), value)
	}
	*dest = T(v)
	return nil
}

func convertFloat[T Float](dest *T, site, name, value string) error {
	v, err := strconv.ParseFloat(value, bitSize[T]())
	if err != nil {
		return conversionError(site, name, fmt.Sprintf("%T", *dest), value)
	}
	*dest = T(v)
	return nil
}

func convertBool(dest *bool, site, name, value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return conversionError(site, name, "bool", value)
	}
	*dest = v
	return nil
}

func convertDuration(dest *time.Duration, site, name, value string) error {
	v, err := time.ParseDuration(value)
	if err != nil {
		return conversionError(site, name, "duration", value)
	}
	*dest = v
	return nil
}

// Typed option constructors. Each closes over its destination so distinct
// options share no state; a destination is written at most once per matched
// token.

// StringOption stores the raw value verbatim.
func StringOption(names []string, description string, dest *string) Option {
	return NewOption(names, description, ValueRequired, func(value *string, _ *Context) error {
		*dest = *value
		return nil
	})
}

// IntOption parses a signed integer of the destination's width.
func IntOption[T Signed](names []string, description string, dest *T) Option {
	return NewOption(names, description, ValueRequired, func(value *string, ctx *Context) error {
		return convertSigned(dest, "option", ctx.Name, *value)
	})
}

// UintOption parses an unsigned integer of the destination's width.
func UintOption[T Unsigned](names []string, description string, dest *T) Option {
	return NewOption(names, description, ValueRequired, func(value *string, ctx *Context) error {
		return convertUnsigned(dest, "option", ctx.Name, *value)
	})
}

// FloatOption parses a floating point number of the destination's width.
func FloatOption[T Float](names []string, description string, dest *T) Option {
	return NewOption(names, description, ValueRequired, func(value *string, ctx *Context) error {
		return convertFloat(dest, "option", ctx.Name, *value)
	})
}

// BoolOption sets the destination to true when the option appears without a
// value; with a value, the value is parsed as a boolean literal.
func BoolOption(names []string, description string, dest *bool) Option {
	return NewOption(names, description, ValueOptional, func(value *string, ctx *Context) error {
		if value == nil {
			*dest = true
			return nil
		}
		return convertBool(dest, "option", ctx.Name, *value)
	})
}

// DurationOption parses a Go duration literal such as "1h30m".
func DurationOption(names []string, description string, dest *time.Duration) Option {
	return NewOption(names, description, ValueRequired, func(value *string, ctx *Context) error {
		return convertDuration(dest, "option", ctx.Name, *value)
	})
}
