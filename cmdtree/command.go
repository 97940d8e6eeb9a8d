package cmdtree

import (
	"github.com/cmdtree/go-cmdtree/middleware"
)

// ActionFunc is the terminal action of a command: a zero-argument callable
// invoked by the caller once parsing resolves, never by the parser itself.
type ActionFunc func() error

// idleAction is the terminal action of commands built without one.
func idleAction() error { return nil }

// Command is a node in the command tree: a description, an ordered option
// set, an ordered positional argument set, named subcommands and a terminal
// action. Commands are immutable once the tree is built; parsing only reads
// them.
type Command struct {
	name        string
	description string
	options     []Option
	arguments   []Argument
	subcommands map[string]*Command
	action      ActionFunc
	chain       middleware.Chain
}

func newCommand(name, description string) *Command {
	return &Command{
		name:        name,
		description: description,
		subcommands: make(map[string]*Command),
		action:      idleAction,
	}
}

// Name returns the command name. The root command's name is empty; its
// display name is the program name from the argument vector.
func (c *Command) Name() string { return c.name }

// Description returns the command description.
func (c *Command) Description() string { return c.description }

// Options returns the command's option set. The slice must be treated as
// read-only.
func (c *Command) Options() []Option { return c.options }

// Arguments returns the declared positional arguments in binding order.
func (c *Command) Arguments() []Argument { return c.arguments }

// Subcommands returns the subcommand map. The map must be treated as
// read-only.
func (c *Command) Subcommands() map[string]*Command { return c.subcommands }

// Lookup finds a direct subcommand by exact, case-sensitive name.
func (c *Command) Lookup(name string) (*Command, bool) {
	sub, ok := c.subcommands[name]
	return sub, ok
}

// CommandBuilder provides the fluent API for assembling the command tree.
type CommandBuilder struct {
	command *Command
	parser  *Parser
	parent  *CommandBuilder
}

// Option appends options to the command's option set.
func (b *CommandBuilder) Option(opts ...Option) *CommandBuilder {
	b.command.options = append(b.command.options, opts...)
	return b
}

// Argument appends positional arguments; declaration order is binding order.
func (b *CommandBuilder) Argument(args ...Argument) *CommandBuilder {
	b.command.arguments = append(b.command.arguments, args...)
	return b
}

// Action sets the command's terminal action.
func (b *CommandBuilder) Action(fn ActionFunc) *CommandBuilder {
	b.command.action = fn
	return b
}

// Use appends middleware wrapped around this command's action. Middleware
// accumulates down the tree: a subcommand's effective chain is its ancestors'
// chains followed by its own.
func (b *CommandBuilder) Use(mw ...middleware.Middleware) *CommandBuilder {
	b.command.chain = b.command.chain.Use(mw...)
	return b
}

// Command attaches a nested subcommand and returns its builder.
func (b *CommandBuilder) Command(name, description string) *CommandBuilder {
	sub := newCommand(name, description)
	b.command.subcommands[name] = sub
	return &CommandBuilder{command: sub, parser: b.parser, parent: b}
}

// Parent returns the builder of the enclosing command, or nil for direct
// children of the root.
func (b *CommandBuilder) Parent() *CommandBuilder { return b.parent }

// Root returns the owning parser for continued chaining.
func (b *CommandBuilder) Root() *Parser { return b.parser }
