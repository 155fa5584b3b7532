package gen

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
)

// Artifact file names, in emission order.
const (
	apiFile      = "deriv_api.go"
	dispatchFile = "deriv_dispatch.go"
	indexFile    = "deriv_index.go"
	initFile     = "deriv_init.go"
	manifestFile = "stencil_requests.yaml"
)

// Generator renders the dispatch code for one table registry. A run is
// single-threaded and single-pass: table discovery order, entry order and
// the configured field/direction enumeration fully determine the output,
// so re-running on identical input yields byte-identical files.
type Generator struct {
	cfg  *Config
	reg  *Registry
	reqs *Requests
}

// NewGenerator creates a generator for the registry with the given options.
func NewGenerator(reg *Registry, opts ...Option) (*Generator, error) {
	cfg := DefaultConfig()
	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, reg: reg, reqs: NewRequests()}, nil
}

// Requests returns the deduplicated generation-request sequence built by
// the last Generate call, in emission order. This is the handoff to the
// downstream stencil-body generator.
func (g *Generator) Requests() []*Request {
	return g.reqs.All()
}

// Generate renders every artifact into the target directory.
func (g *Generator) Generate(ctx context.Context) error {
	if g.cfg.Target == "" {
		return NewConfigError("Target", nil, "missing target directory: use WithTarget()")
	}
	if len(g.cfg.Fields) == 0 {
		return NewConfigError("Fields", nil, "no field types configured")
	}
	if g.cfg.Strict {
		for _, t := range g.reg.Tables() {
			if err := t.Verify(); err != nil {
				return err
			}
		}
	}
	if err := os.MkdirAll(g.cfg.Target, 0o755); err != nil {
		return err
	}
	g.reqs = NewRequests()

	// Dispatch generation fills the request tracker, so it must render
	// before the manifest is written. File order itself follows the
	// artifact numbering.
	files := []struct {
		name string
		file *jen.File
	}{
		{apiFile, g.genAPI()},
		{dispatchFile, g.genDispatch()},
		{indexFile, g.genIndex()},
		{initFile, g.genInit()},
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		slog.Debug("writing artifact", "file", f.name)
		if err := g.writeFile(f.file, f.name); err != nil {
			return err
		}
	}
	if g.cfg.Manifest {
		return g.writeManifest()
	}
	return nil
}

// activeTemplates returns the fixed template enumeration restricted to the
// families that have at least one parsed table. Declarations and index
// functions are only emitted for families whose dispatch targets exist.
func (g *Generator) activeTemplates() []template {
	var out []template
	for _, tpl := range templates {
		for _, t := range g.reg.tables {
			if t.format == tpl.format && !t.Empty() {
				out = append(out, tpl)
				break
			}
		}
	}
	return out
}

// newFile creates a new file with the configured header comment.
func (g *Generator) newFile() *jen.File {
	f := jen.NewFile(g.cfg.Package)
	f.HeaderComment(g.cfg.Header)
	return f
}

// writeFile renders a file into the target directory.
func (g *Generator) writeFile(f *jen.File, name string) error {
	out, err := os.Create(filepath.Join(g.cfg.Target, name))
	if err != nil {
		return err
	}
	defer out.Close()
	return f.Render(out)
}
