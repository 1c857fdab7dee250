package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/remote-input/hidinject/internal/configpaths"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file for a specific command.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"server,send"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output  string `help:"Destination file path (defaults to current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

// templateCLI is the part of the command tree config files can address.
type templateCLI struct {
	Server Server `cmd:""`
	Send   Send   `cmd:""`
}

// setting is one configurable flag: the command path it lives under, its
// kong flag name and its default value.
type setting struct {
	path  []string
	flag  string
	value any
}

// Run writes a template holding every setting of the command at its default.
func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	settings, err := commandSettings(c.Command)
	if err != nil {
		return err
	}
	data, err := renderTemplate(format, settings)
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		dest = c.Command + "." + configpaths.Ext(format)
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// commandSettings walks the parsed command tree below command and returns
// its settings. Only flags with an environment binding count as settings;
// per-invocation flags such as stick positions are left out.
func commandSettings(command string) ([]setting, error) {
	parser, err := kong.New(&templateCLI{}, kong.Name("hidinject"))
	if err != nil {
		return nil, err
	}
	for _, n := range parser.Model.Children {
		if n.Type == kong.CommandNode && n.Name == command {
			var out []setting
			collectSettings(n, []string{n.Name}, &out)
			return out, nil
		}
	}
	return nil, fmt.Errorf("unknown command %q; expected 'server' or 'send'", command)
}

func collectSettings(n *kong.Node, path []string, out *[]setting) {
	for _, f := range n.Flags {
		if f.Hidden || len(f.Envs) == 0 {
			continue
		}
		*out = append(*out, setting{path: path, flag: f.Name, value: defaultValue(f.Value)})
	}
	for _, child := range n.Children {
		if child.Type != kong.CommandNode {
			continue
		}
		collectSettings(child, append(append([]string(nil), path...), child.Name), out)
	}
}

var durationType = reflect.TypeOf(time.Duration(0))

// defaultValue converts a flag default into the scalar a config decoder
// would produce for it.
func defaultValue(v *kong.Value) any {
	t := v.Target.Type()
	def := v.Default
	if t == durationType {
		if def == "" {
			return "0s"
		}
		return def
	}
	switch t.Kind() {
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(def, 10, 64)
		return n
	case reflect.Float32, reflect.Float64:
		f, _ := strconv.ParseFloat(def, 64)
		return f
	}
	return def
}

// renderTemplate lays settings out the way each configuration loader
// resolves them:
//
//	json  nested on ".", "-" spelled "_", command path ignored
//	toml  flat keys equal to the flag names
//	yaml  nested on the command path, flag name as the leaf key
func renderTemplate(format string, settings []setting) ([]byte, error) {
	switch format {
	case "json":
		root := map[string]any{}
		for _, s := range settings {
			setNested(root, strings.Split(strings.ReplaceAll(s.flag, "-", "_"), "."), s.value)
		}
		return json.MarshalIndent(root, "", "  ")
	case "toml":
		root := map[string]any{}
		for _, s := range settings {
			root[s.flag] = s.value
		}
		return toml.Marshal(root)
	case "yaml":
		root := map[string]any{}
		for _, s := range settings {
			setNested(root, append(append([]string(nil), s.path...), s.flag), s.value)
		}
		return yaml.Marshal(root)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

func setNested(m map[string]any, keys []string, v any) {
	for _, k := range keys[:len(keys)-1] {
		child, ok := m[k].(map[string]any)
		if !ok {
			child = map[string]any{}
			m[k] = child
		}
		m = child
	}
	m[keys[len(keys)-1]] = v
}
