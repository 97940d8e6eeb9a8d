package cmdtree

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"

	"github.com/cmdtree/go-cmdtree/help"
)

// PrintVersion returns a ready-made -v/--version option. It is an ordinary
// option with no dispatcher special-casing: matching it prints the version
// line to the parser's output sink and parsing continues.
func PrintVersion(appName string, version *semver.Version) Option {
	return NewOption([]string{"v", "version"}, "Print version", ValueNone,
		func(_ *string, ctx *Context) error {
			help.NewVersionPrinter(appName, version).Print(ctx.Parser.IO().Out())
			return nil
		})
}

// PrintHelp returns a ready-made -h/--help option. Without a value it prints
// usage for the root command; with a value naming a top-level subcommand it
// prints that subcommand's usage instead.
func PrintHelp() Option {
	return NewOption([]string{"h", "help"}, "Print help", ValueNone,
		func(value *string, ctx *Context) error {
			p := ctx.Parser
			f := help.NewFormatter(p.IO().Out(), rune(p.Prefix())).WithColor(p.IO().ColorEnabled())

			if value == nil {
				name := ""
				if len(ctx.Args) > 0 {
					name = ctx.Args[0]
				}
				f.Format(commandInfo(name, p.root))
				return nil
			}

			sub, ok := p.root.Lookup(*value)
			if !ok {
				return &ParseError{
					Type:    ErrorTypeUnknownCommand,
					Command: *value,
					Message: fmt.Sprintf("unknown command '%s'", *value),
				}
			}
			f.Format(commandInfo(*value, sub))
			return nil
		})
}

// commandInfo converts a command node into the renderer's data shape.
// Subcommands are listed name-sorted with one level of detail.
func commandInfo(name string, cmd *Command) help.CommandInfo {
	info := help.CommandInfo{Name: name, Description: cmd.description}

	for i := range cmd.options {
		opt := &cmd.options[i]
		info.Options = append(info.Options, help.OptionInfo{
			Names:       opt.Names,
			Description: opt.Description,
		})
	}
	for i := range cmd.arguments {
		arg := &cmd.arguments[i]
		info.Arguments = append(info.Arguments, help.ArgumentInfo{
			Name:        arg.Name,
			Description: arg.Description,
		})
	}

	names := make([]string, 0, len(cmd.subcommands))
	for n := range cmd.subcommands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		info.Commands = append(info.Commands, help.CommandInfo{
			Name:        n,
			Description: cmd.subcommands[n].description,
		})
	}
	return info
}
