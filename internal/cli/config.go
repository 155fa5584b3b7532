// Package cli wires the command-line surface: cobra commands, layered
// koanf configuration and the optional watch loop.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/meshkit/derivgen/compiler/gen"
)

// Config is the resolved CLI configuration. Sources are layered in
// ascending priority: built-in defaults, config file, DERIVGEN_*
// environment variables, command-line flags.
type Config struct {
	Input    string          `koanf:"input"`
	Target   string          `koanf:"target"`
	Package  string          `koanf:"package"`
	Header   string          `koanf:"header"`
	Manifest bool            `koanf:"manifest"`
	Strict   bool            `koanf:"strict"`
	Verbose  bool            `koanf:"verbose"`
	Watch    bool            `koanf:"watch"`
	Fields   []gen.FieldSpec `koanf:"fields"`
}

// defaultConfigFiles are probed, in order, when no config file is given
// explicitly.
var defaultConfigFiles = []string{"derivgen.yaml", "derivgen.yml"}

// LoadConfig resolves the configuration. An explicitly given config file
// must exist; the probed defaults are optional. flags may be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"input":    "tables_cleaned.cxx",
		"target":   "generated",
		"package":  gen.DefaultPackage,
		"manifest": true,
	}, "."), nil); err != nil {
		return nil, err
	}

	switch {
	case path != "":
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	default:
		for _, p := range defaultConfigFiles {
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if err := k.Load(file.Provider(p), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config %s: %w", p, err)
			}
			break
		}
	}

	if err := k.Load(env.Provider("DERIVGEN_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "DERIVGEN_")), "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k,
			func(f *pflag.Flag) (string, interface{}) {
				return f.Name, posflag.FlagVal(flags, f)
			}), nil); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Fields) == 0 {
		cfg.Fields = gen.DefaultFields()
	}
	return &cfg, nil
}
