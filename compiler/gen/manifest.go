package gen

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// manifestEntry is the serialized form of one generation request. The
// manifest is the machine-readable handoff to the downstream stencil-body
// generator.
type manifestEntry struct {
	Name      string `yaml:"name"`
	Field     string `yaml:"field"`
	Direction string `yaml:"direction"`
	Mode      string `yaml:"mode"`
	Method    string `yaml:"method"`
	Stencil   string `yaml:"stencil"`
	Flux      bool   `yaml:"flux"`
	Staggered bool   `yaml:"staggered"`
}

// writeManifest serializes the recorded requests, in emission order, into
// the target directory.
func (g *Generator) writeManifest() error {
	entries := make([]manifestEntry, 0, g.reqs.Len())
	for _, r := range g.reqs.All() {
		entries = append(entries, manifestEntry{
			Name:      r.Name,
			Field:     r.Field,
			Direction: r.Direction,
			Mode:      string(r.Mode),
			Method:    r.Method.Name,
			Stencil:   r.Method.Func,
			Flux:      r.Flux(),
			Staggered: r.Staggered(),
		})
	}
	buf, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.cfg.Target, manifestFile), buf, 0o644)
}
