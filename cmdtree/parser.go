// Package cmdtree implements a recursive, tree-structured command-line parser.
// A Parser owns an immutable command tree; Parse resolves an argument vector
// into either the terminal action of the deepest matched command or a
// structured *ParseError. The parser never invokes the action itself.
package cmdtree

import (
	"fmt"
	"strings"

	cmdio "github.com/cmdtree/go-cmdtree/io"
	"github.com/cmdtree/go-cmdtree/middleware"
)

// Default token grammar characters.
const (
	DefaultPrefix         = '-'
	DefaultValueSeparator = '='
)

// Parser is the command tree's entry point. It carries the shared token
// grammar configuration and the IO sink used by the built-in help and version
// options. The tree is read-only during parsing, so independent parses over
// independent parsers are safe to run concurrently.
type Parser struct {
	prefix         byte
	valueSeparator byte
	root           *Command
	io             *cmdio.IOManager
}

// New builds a parser whose root command carries the application description
// and the given top-level options.
func New(description string, options ...Option) *Parser {
	p := &Parser{
		prefix:         DefaultPrefix,
		valueSeparator: DefaultValueSeparator,
		io:             cmdio.New(),
	}
	p.root = newCommand("", description)
	p.root.options = append(p.root.options, options...)
	return p
}

// WithPrefix sets the flag prefix character (default '-').
func (p *Parser) WithPrefix(c byte) *Parser {
	p.prefix = c
	return p
}

// WithValueSeparator sets the inline name/value separator (default '=').
func (p *Parser) WithValueSeparator(c byte) *Parser {
	p.valueSeparator = c
	return p
}

// WithIO replaces the IO manager used by help and version rendering.
func (p *Parser) WithIO(m *cmdio.IOManager) *Parser {
	p.io = m
	return p
}

// Prefix returns the configured flag prefix character.
func (p *Parser) Prefix() byte { return p.prefix }

// ValueSeparator returns the configured inline value separator.
func (p *Parser) ValueSeparator() byte { return p.valueSeparator }

// IO returns the parser's IO manager.
func (p *Parser) IO() *cmdio.IOManager { return p.io }

// Description returns the application description held by the root command.
func (p *Parser) Description() string { return p.root.description }

// Root returns the root command node.
func (p *Parser) Root() *Command { return p.root }

// Option appends options to the root command.
func (p *Parser) Option(opts ...Option) *Parser {
	p.root.options = append(p.root.options, opts...)
	return p
}

// Argument appends positional arguments to the root command.
func (p *Parser) Argument(args ...Argument) *Parser {
	p.root.arguments = append(p.root.arguments, args...)
	return p
}

// Action sets the root command's terminal action.
func (p *Parser) Action(fn ActionFunc) *Parser {
	p.root.action = fn
	return p
}

// Use appends middleware to the root command. Root middleware wraps every
// resolved action in the tree.
func (p *Parser) Use(mw ...middleware.Middleware) *Parser {
	p.root.chain = p.root.chain.Use(mw...)
	return p
}

// Command attaches a subcommand to the root and returns its builder.
func (p *Parser) Command(name, description string) *CommandBuilder {
	sub := newCommand(name, description)
	p.root.subcommands[name] = sub
	return &CommandBuilder{command: sub, parser: p}
}

// Parse resolves an argument vector against the command tree. Index 0 is the
// program name; it is recorded in the Context but never matched. An empty
// vector succeeds only when the root command has neither positional arguments
// nor subcommands to satisfy.
func (p *Parser) Parse(args []string) (*ParseResult, error) {
	if len(args) == 0 {
		if len(p.root.arguments) == 0 && len(p.root.subcommands) == 0 {
			return newParseResult(p.root, p.root.chain), nil
		}
		return nil, &ParseError{Type: ErrorTypeTooFewArguments, Message: "not enough arguments"}
	}

	ctx := Context{Args: args, Offset: 1, Name: args[0], Parser: p}
	return parseCommand(p.root, ctx, p.root.chain)
}

// splitOption splits one flag token into its name and optional inline value.
// The name starts after one prefix character, or after two for long-form
// tokens; it runs until the value separator or the end of the token.
func splitOption(token string, prefix, separator byte) (string, *string) {
	start := 1
	if len(token) > 1 && token[1] == prefix {
		start = 2
	}
	if start >= len(token) {
		return "", nil
	}

	rest := token[start:]
	if i := strings.IndexByte(rest, separator); i >= 0 {
		value := rest[i+1:]
		return rest[:i], &value
	}
	return rest, nil
}

// matchOptions consumes flag tokens left to right starting at ctx.Offset and
// returns the index of the first positional token. A bare flag followed by a
// token that does not start with the prefix character consumes that token as
// its value regardless of declared arity; arity is checked afterwards. Every
// option whose alias set contains the extracted name is invoked.
func matchOptions(ctx Context, options []Option) (int, error) {
	p := ctx.Parser
	firstPositional := ctx.Offset

	for i := ctx.Offset; i < len(ctx.Args); i++ {
		token := ctx.Args[i]
		if len(token) == 0 || token[0] != p.prefix {
			// Not a flag, stop processing.
			break
		}

		name, value := splitOption(token, p.prefix, p.valueSeparator)

		if value == nil && i+1 < len(ctx.Args) {
			next := ctx.Args[i+1]
			if len(next) == 0 || next[0] != p.prefix {
				value = &next
				i++
			}
		}

		matched := 0
		optCtx := Context{Args: ctx.Args, Offset: i, Name: name, Parser: p}
		for idx := range options {
			opt := &options[idx]
			if !opt.Match(name) {
				continue
			}
			if value == nil && opt.Arity == ValueRequired {
				return 0, &ParseError{
					Type:    ErrorTypeMissingValue,
					Option:  name,
					Message: fmt.Sprintf("option '%s' expects a value, none were given", name),
				}
			}
			matched++
			if err := opt.Bind(value, &optCtx); err != nil {
				return 0, err
			}
		}

		if matched == 0 {
			return 0, &ParseError{
				Type:    ErrorTypeUnknownOption,
				Option:  name,
				Message: fmt.Sprintf("unexpected option '%s'", name),
			}
		}

		firstPositional = i + 1
	}

	return firstPositional, nil
}

// parseCommand drives one level of command resolution: match this command's
// options, then either descend into a subcommand, bind positional arguments,
// or resolve the terminal action. The first error encountered aborts the
// level and unwinds to the Parse caller.
func parseCommand(cmd *Command, ctx Context, chain middleware.Chain) (*ParseResult, error) {
	firstPositional, err := matchOptions(ctx, cmd.options)
	if err != nil {
		return nil, err
	}

	if firstPositional < len(ctx.Args) {
		switch {
		case len(cmd.subcommands) > 0:
			name := ctx.Args[firstPositional]
			sub, ok := cmd.subcommands[name]
			if !ok {
				return nil, &ParseError{
					Type:    ErrorTypeUnknownCommand,
					Command: name,
					Message: fmt.Sprintf("command '%s' not supported", name),
				}
			}
			subCtx := Context{Args: ctx.Args, Offset: firstPositional + 1, Name: name, Parser: ctx.Parser}
			return parseCommand(sub, subCtx, chain.Use(sub.chain...))

		case len(cmd.arguments) > 0:
			argCtx := Context{Args: ctx.Args, Offset: firstPositional, Parser: ctx.Parser}
			if err := bindArguments(cmd, argCtx); err != nil {
				return nil, err
			}
			return newParseResult(cmd, chain), nil

		default:
			return nil, &ParseError{Type: ErrorTypeTooManyArguments, Message: "unexpected arguments given"}
		}
	}

	if len(cmd.arguments) == 0 && len(cmd.subcommands) == 0 {
		return newParseResult(cmd, chain), nil
	}
	return nil, &ParseError{Type: ErrorTypeTooFewArguments, Message: "not enough arguments"}
}

// bindArguments binds the command's declared positionals left to right, one
// token each. Token count must match the declaration count exactly.
func bindArguments(cmd *Command, ctx Context) error {
	remaining := len(ctx.Args) - ctx.Offset
	if remaining < len(cmd.arguments) {
		return &ParseError{Type: ErrorTypeTooFewArguments, Message: "not enough arguments"}
	}
	if remaining > len(cmd.arguments) {
		return &ParseError{Type: ErrorTypeTooManyArguments, Message: "unexpected arguments given"}
	}

	for i := range cmd.arguments {
		arg := &cmd.arguments[i]
		argCtx := Context{Args: ctx.Args, Offset: ctx.Offset + i, Name: arg.Name, Parser: ctx.Parser}
		if err := arg.Bind(ctx.Args[ctx.Offset+i], &argCtx); err != nil {
			return err
		}
	}
	return nil
}
