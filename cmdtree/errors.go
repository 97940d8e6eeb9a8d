package cmdtree

import (
	"errors"
	"fmt"

	"github.com/cmdtree/go-cmdtree/internal/fuzzy"
)

// ErrorType categorizes parse failures. Categories drive suggestion logic and
// exit-code mapping; the message alone is what the parser guarantees.
type ErrorType string

const (
	ErrorTypeUnknownOption    ErrorType = "unknown_option"
	ErrorTypeUnknownCommand   ErrorType = "unknown_command"
	ErrorTypeMissingValue     ErrorType = "missing_value"
	ErrorTypeInvalidValue     ErrorType = "invalid_value"
	ErrorTypeTooFewArguments  ErrorType = "too_few_arguments"
	ErrorTypeTooManyArguments ErrorType = "too_many_arguments"
	ErrorTypeConfig           ErrorType = "config"
)

// ParseError is the structured error value every failure path returns. It is
// data, never a panic; the first error encountered unwinds directly to the
// Parse caller.
type ParseError struct {
	Type       ErrorType
	Message    string
	Option     string
	Command    string
	Suggestion string
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (did you mean '%s'?)", e.Message, e.Suggestion)
	}
	return e.Message
}

// ErrorHandler decorates parse errors with fuzzy-matched suggestions. It is
// opt-in and never alters the core message, only the Suggestion field.
type ErrorHandler struct {
	suggestOptions  bool
	suggestCommands bool
	maxDistance     int
}

// NewErrorHandler creates an error handler with suggestions disabled.
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{maxDistance: 2}
}

// SuggestOptions enables suggestions for unknown option errors.
func (h *ErrorHandler) SuggestOptions(enabled bool) *ErrorHandler {
	h.suggestOptions = enabled
	return h
}

// SuggestCommands enables suggestions for unknown command errors.
func (h *ErrorHandler) SuggestCommands(enabled bool) *ErrorHandler {
	h.suggestCommands = enabled
	return h
}

// MaxDistance sets the maximum edit distance for suggestions.
func (h *ErrorHandler) MaxDistance(distance int) *ErrorHandler {
	h.maxDistance = distance
	return h
}

// Decorate returns the error with a suggestion attached when it reports an
// unknown option or command and a close enough candidate exists anywhere in
// the parser's tree. The passed error is never mutated; decoration yields a
// copy. Other errors pass through untouched.
func (h *ErrorHandler) Decorate(err error, p *Parser) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	decorated := *pe
	switch pe.Type {
	case ErrorTypeUnknownOption:
		if h.suggestOptions && pe.Option != "" {
			decorated.Suggestion = fuzzy.FindBest(pe.Option, collectOptionNames(p.root), h.maxDistance)
		}
	case ErrorTypeUnknownCommand:
		if h.suggestCommands && pe.Command != "" {
			decorated.Suggestion = fuzzy.FindBest(pe.Command, collectCommandNames(p.root), h.maxDistance)
		}
	case ErrorTypeMissingValue, ErrorTypeInvalidValue, ErrorTypeTooFewArguments,
		ErrorTypeTooManyArguments, ErrorTypeConfig:
		// No suggestions for these.
	}
	return &decorated
}

func collectOptionNames(cmd *Command) []string {
	var names []string
	for i := range cmd.options {
		names = append(names, cmd.options[i].Names...)
	}
	for _, sub := range cmd.subcommands {
		names = append(names, collectOptionNames(sub)...)
	}
	return names
}

func collectCommandNames(cmd *Command) []string {
	var names []string
	for name, sub := range cmd.subcommands {
		names = append(names, name)
		names = append(names, collectCommandNames(sub)...)
	}
	return names
}
