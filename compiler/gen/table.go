package gen

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/meshkit/derivgen/compiler/scan"
)

// template binds a table-name prefix to the naming template of the
// generated dispatch functions and to the flow classification of the
// template family.
type template struct {
	prefix string
	format string
	flow   bool
}

// templates is the fixed prefix rule. Any other table-name prefix is a
// fatal configuration error: code generation has no degraded mode.
var templates = []template{
	{prefix: "First", format: "indexDD%s"},
	{prefix: "Second", format: "indexD2D%s2"},
	{prefix: "Upwind", format: "indexVDD%s", flow: true},
	{prefix: "Flux", format: "indexFDD%s", flow: true},
}

// Table is a named, ordered collection of entries, unique by canonical
// method name. Tables are homogeneous by construction: every entry agrees
// on category and staggering, so classification inspects the first entry
// only. This is an assumed invariant; Verify runs the optional strict check.
type Table struct {
	Name string

	format  string
	entries []*Entry
}

// NewTable parses the tuples of one scanned block into a table. Skip-listed
// methods are logged and dropped; duplicate names coalesce to the first
// occurrence; any other malformed tuple aborts with a GrammarError.
func NewTable(name string, tuples [][]string) (*Table, error) {
	t := &Table{Name: name}
	for _, tpl := range templates {
		if strings.HasPrefix(name, tpl.prefix) {
			t.format = tpl.format
			break
		}
	}
	if t.format == "" {
		return nil, NewGrammarError(name, "", "unexpected differencing table prefix", nil)
	}
	seen := make(map[string]bool)
	for _, tuple := range tuples {
		e, err := NewEntry(tuple)
		switch {
		case IsUnsupportedError(err):
			slog.Warn("skipping unsupported method", "table", name, "reason", err)
			continue
		case err != nil:
			if ge, ok := err.(*GrammarError); ok {
				ge.Table = name
			}
			return nil, err
		case e == nil:
			continue
		}
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		e.table = t
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// Entries returns the surviving entries in source order.
func (t *Table) Entries() []*Entry {
	return t.entries
}

// Empty reports whether every entry of the table was dropped.
func (t *Table) Empty() bool {
	return len(t.entries) == 0
}

// Flux reports whether this is a flux table.
func (t *Table) Flux() bool {
	return len(t.entries) > 0 && t.entries[0].Category == CategoryFlux
}

// Upwind reports whether this is an upwind table.
func (t *Table) Upwind() bool {
	return len(t.entries) > 0 && t.entries[0].Category == CategoryUpwind
}

// Flow reports whether the table's methods take a velocity operand.
func (t *Table) Flow() bool {
	return t.Flux() || t.Upwind()
}

// Staggered reports whether the table maps to staggered stencils.
func (t *Table) Staggered() bool {
	return len(t.entries) > 0 && t.entries[0].Staggered()
}

// FuncName applies the naming template to a direction, e.g. "indexDDX".
func (t *Table) FuncName(dir string) string {
	return fmt.Sprintf(t.format, strings.ToUpper(dir))
}

// FullName is FuncName plus the staggering suffix, e.g. "indexDDX_non_stag".
func (t *Table) FullName(dir string) string {
	if t.Staggered() {
		return t.FuncName(dir) + "_stag"
	}
	return t.FuncName(dir) + "_non_stag"
}

// DefaultVar names the per-(direction, category) default-method variable the
// generated dispatch code falls back to, e.g. "default_x_FirstDeriv" for
// FirstDerivTable or "default_y_UpwindStagDeriv" for UpwindStagTable.
func (t *Table) DefaultVar(dir string) string {
	base := strings.TrimSuffix(t.Name, "Table")
	if t.Flow() {
		base += "Deriv"
	}
	return fmt.Sprintf("default_%s_%s", dir, base)
}

// Verify checks the homogeneity assumption the generator otherwise trusts:
// every entry agrees with the first on category and staggering.
func (t *Table) Verify() error {
	if len(t.entries) < 2 {
		return nil
	}
	first := t.entries[0]
	for _, e := range t.entries[1:] {
		if e.Category != first.Category || e.Staggered() != first.Staggered() {
			return NewGrammarError(t.Name, e.Name, "table is not homogeneous", nil)
		}
	}
	return nil
}

// Registry owns every table and, transitively, every entry for the lifetime
// of one generation run. Discovery order is preserved: it determines the
// textual order of the emitted declarations.
type Registry struct {
	tables []*Table
	byName map[string]*Table

	// Descriptions holds the rows of the reserved descriptions block; it is
	// never registered as a method table.
	Descriptions *Descriptions
}

// BuildRegistry turns scanned blocks into the table registry. The reserved
// descriptions block is captured separately; everything else must be a
// differencing table with a known prefix.
func BuildRegistry(blocks []scan.Block) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Table)}
	for _, b := range blocks {
		if b.Name == scan.DescriptionsTable {
			d, err := NewDescriptions(scan.Tuples(b.Raw))
			if err != nil {
				return nil, err
			}
			r.Descriptions = d
			continue
		}
		t, err := NewTable(b.Name, scan.Tuples(b.Raw))
		if err != nil {
			return nil, err
		}
		if r.byName[t.Name] != nil {
			continue
		}
		r.byName[t.Name] = t
		r.tables = append(r.tables, t)
	}
	if r.Descriptions == nil {
		r.Descriptions = emptyDescriptions()
	}
	return r, nil
}

// Tables returns every registered table in discovery order.
func (r *Registry) Tables() []*Table {
	return r.tables
}

// Table returns the table with the given name, or nil.
func (r *Registry) Table(name string) *Table {
	return r.byName[name]
}
