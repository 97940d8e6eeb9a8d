// Package help renders usage and version text for a command tree. It consumes
// plain data shapes rather than parser types so the parser can depend on it
// without a cycle.
package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
)

// OptionInfo describes one option for rendering.
type OptionInfo struct {
	Names       []string
	Description string
}

// ArgumentInfo describes one positional argument for rendering.
type ArgumentInfo struct {
	Name        string
	Description string
}

// CommandInfo describes a command for rendering. For subcommand listings only
// Name and Description are populated.
type CommandInfo struct {
	Name        string
	Description string
	Options     []OptionInfo
	Arguments   []ArgumentInfo
	Commands    []CommandInfo
}

// Formatter writes usage text to a caller-provided sink.
type Formatter struct {
	w        io.Writer
	prefix   rune
	colorize bool
}

// NewFormatter builds a formatter writing to w, rendering option names with
// the given prefix character.
func NewFormatter(w io.Writer, prefix rune) *Formatter {
	return &Formatter{w: w, prefix: prefix}
}

// WithColor toggles bold section headers. Callers should enable it only when
// the sink is a color-capable terminal.
func (f *Formatter) WithColor(enabled bool) *Formatter {
	f.colorize = enabled
	return f
}

// Format writes the full usage block for one command.
func (f *Formatter) Format(info CommandInfo) {
	fmt.Fprintf(f.w, "Usage: %s%s\n", info.Name, f.usageSuffix(info))
	if info.Description != "" {
		fmt.Fprintf(f.w, "\n%s\n", info.Description)
	}

	if len(info.Options) > 0 {
		fmt.Fprintf(f.w, "\n%s\n", f.header("Options:"))
		width := 0
		rendered := make([]string, len(info.Options))
		for i, opt := range info.Options {
			rendered[i] = f.optionNames(opt.Names)
			if len(rendered[i]) > width {
				width = len(rendered[i])
			}
		}
		for i, opt := range info.Options {
			fmt.Fprintf(f.w, "  %-*s  %s\n", width, rendered[i], opt.Description)
		}
	}

	if len(info.Arguments) > 0 {
		fmt.Fprintf(f.w, "\n%s\n", f.header("Arguments:"))
		width := 0
		for _, arg := range info.Arguments {
			if len(arg.Name) > width {
				width = len(arg.Name)
			}
		}
		for _, arg := range info.Arguments {
			fmt.Fprintf(f.w, "  %-*s  %s\n", width, arg.Name, arg.Description)
		}
	}

	if len(info.Commands) > 0 {
		fmt.Fprintf(f.w, "\n%s\n", f.header("Commands:"))
		width := 0
		for _, cmd := range info.Commands {
			if len(cmd.Name) > width {
				width = len(cmd.Name)
			}
		}
		for _, cmd := range info.Commands {
			fmt.Fprintf(f.w, "  %-*s  %s\n", width, cmd.Name, cmd.Description)
		}
	}
}

func (f *Formatter) usageSuffix(info CommandInfo) string {
	var b strings.Builder
	if len(info.Options) > 0 {
		b.WriteString(" [options]")
	}
	if len(info.Commands) > 0 {
		b.WriteString(" <command>")
	}
	for _, arg := range info.Arguments {
		fmt.Fprintf(&b, " <%s>", arg.Name)
	}
	return b.String()
}

// optionNames renders an alias list: one prefix character for single-letter
// names, two for longer ones, matching the tokenizer's grammar.
func (f *Formatter) optionNames(names []string) string {
	parts := make([]string, len(names))
	for i, name := range names {
		if len(name) == 1 {
			parts[i] = string(f.prefix) + name
		} else {
			parts[i] = string(f.prefix) + string(f.prefix) + name
		}
	}
	return strings.Join(parts, ", ")
}

func (f *Formatter) header(s string) string {
	if f.colorize {
		return color.New(color.Bold).Sprint(s)
	}
	return s
}

// VersionPrinter renders the application's version line.
type VersionPrinter struct {
	name    string
	version *semver.Version
}

// NewVersionPrinter builds a printer for the given application name and
// semantic version.
func NewVersionPrinter(name string, version *semver.Version) *VersionPrinter {
	return &VersionPrinter{name: name, version: version}
}

// Print writes "name version X.Y.Z" to w.
func (v *VersionPrinter) Print(w io.Writer) {
	fmt.Fprintf(w, "%s version %s\n", v.name, v.version)
}
