package cmdtree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Configuration precedence is layered by call order: LoadConfig first, then
// BindEnv, then Parse. Each layer writes through the same option bindings the
// matcher uses, so later layers overwrite earlier ones and type conversion
// policy stays in one place.

// LoadConfig applies option values from a YAML or TOML file, chosen by
// extension. Top-level scalar keys bind to root options by alias name; a
// nested table whose key names a subcommand applies to that subcommand's
// options, recursively.
func (p *Parser) LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ParseError{
			Type:    ErrorTypeConfig,
			Message: fmt.Sprintf("cannot read config file '%s': %v", path, err),
		}
	}

	tree := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return &ParseError{
				Type:    ErrorTypeConfig,
				Message: fmt.Sprintf("cannot parse config file '%s': %v", path, err),
			}
		}
	case ".toml":
		if err := toml.Unmarshal(data, &tree); err != nil {
			return &ParseError{
				Type:    ErrorTypeConfig,
				Message: fmt.Sprintf("cannot parse config file '%s': %v", path, err),
			}
		}
	default:
		return &ParseError{
			Type:    ErrorTypeConfig,
			Message: fmt.Sprintf("unsupported config format '%s'", filepath.Ext(path)),
		}
	}

	return p.applyConfig(p.root, tree)
}

func (p *Parser) applyConfig(cmd *Command, tree map[string]any) error {
	for key, raw := range tree {
		if sub, ok := cmd.subcommands[key]; ok {
			if nested, ok := raw.(map[string]any); ok {
				if err := p.applyConfig(sub, nested); err != nil {
					return err
				}
				continue
			}
		}

		value := fmt.Sprint(raw)
		ctx := Context{Name: key, Parser: p}
		matched := 0
		for i := range cmd.options {
			opt := &cmd.options[i]
			if !opt.Match(key) {
				continue
			}
			matched++
			v := value
			if err := opt.Bind(&v, &ctx); err != nil {
				return err
			}
		}
		if matched == 0 {
			return &ParseError{
				Type:    ErrorTypeUnknownOption,
				Option:  key,
				Message: fmt.Sprintf("unexpected option '%s' in config file", key),
			}
		}
	}
	return nil
}

// BindEnv walks the whole tree and applies environment values to every option
// that declared EnvVars via Option.FromEnv. For each option the first set
// variable wins.
func (p *Parser) BindEnv() error {
	return p.bindEnv(p.root)
}

func (p *Parser) bindEnv(cmd *Command) error {
	for i := range cmd.options {
		opt := &cmd.options[i]
		for _, name := range opt.EnvVars {
			value, ok := os.LookupEnv(name)
			if !ok {
				continue
			}
			ctx := Context{Name: opt.Names[0], Parser: p}
			if err := opt.Bind(&value, &ctx); err != nil {
				return err
			}
			break
		}
	}
	for _, sub := range cmd.subcommands {
		if err := p.bindEnv(sub); err != nil {
			return err
		}
	}
	return nil
}
