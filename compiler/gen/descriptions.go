package gen

import (
	"strings"
)

// Description is one row of the method-description table: the canonical
// method identifier, the user-facing configuration key, and the
// human-readable description. It is consumed only by initialization-code
// generation.
type Description struct {
	Method string
	Key    string
	Text   string
}

// Descriptions holds the rows of the reserved descriptions block together
// with a normalized key index built once at construction.
type Descriptions struct {
	rows  []Description
	byKey map[string]string // lower-cased user key -> canonical method name
}

// NewDescriptions builds the registry from raw {method, key, text} tuples.
func NewDescriptions(tuples [][]string) (*Descriptions, error) {
	d := emptyDescriptions()
	for _, t := range tuples {
		if len(t) != 3 {
			return nil, NewGrammarError(scanDescriptionsName, strings.Join(t, ","),
				"description row must be a {method, key, text} tuple", nil)
		}
		row := Description{Method: t[0], Key: t[1], Text: t[2]}
		d.rows = append(d.rows, row)
		if _, ok := d.byKey[strings.ToLower(row.Key)]; !ok {
			d.byKey[strings.ToLower(row.Key)] = row.Method
		}
	}
	return d, nil
}

// scanDescriptionsName mirrors scan.DescriptionsTable without importing it
// here; table.go keeps the single routing point.
const scanDescriptionsName = "DiffNameTable"

func emptyDescriptions() *Descriptions {
	return &Descriptions{byKey: make(map[string]string)}
}

// Rows returns every description row in source order.
func (d *Descriptions) Rows() []Description {
	return d.rows
}

// Canonical resolves a user-facing key, case-insensitively, to the canonical
// method identifier.
func (d *Descriptions) Canonical(key string) (string, bool) {
	m, ok := d.byKey[strings.ToLower(key)]
	return m, ok
}

// ForTable returns the description rows restricted to the methods of one
// table, in table-entry order then description order. This is the option
// order the emitted initialization code enumerates.
func (d *Descriptions) ForTable(t *Table) []Description {
	var out []Description
	for _, e := range t.Entries() {
		for _, row := range d.rows {
			if row.Method == e.Name {
				out = append(out, row)
			}
		}
	}
	return out
}
