package gen

import (
	"fmt"
	"strings"
)

// Category classifies which of the three stencil slots a method occupies.
// The categories are mutually exclusive: a well-formed entry sets exactly
// one of them.
type Category int

const (
	CategoryNormal Category = iota
	CategoryUpwind
	CategoryFlux
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case CategoryNormal:
		return "normal"
	case CategoryUpwind:
		return "upwind"
	case CategoryFlux:
		return "flux"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// nullRef is the sentinel marking an absent stencil reference in a tuple.
const nullRef = "NULL"

// stagMarker is the suffix identifying the staggered variant of a stencil
// function.
const stagMarker = "stag"

// unsupported lists methods the generator permanently refuses to handle.
// They are dropped with a warning, never an error.
var unsupported = map[string]string{
	"DIFF_W3":      "WENO3 - too hard",
	"DIFF_SPLIT":   "SPLIT - too different",
	"DIFF_NND":     "NND - probably broken",
	"DIFF_DEFAULT": "DEFAULT - just a limiter",
}

// Entry is one differencing method as it appears in a table.
type Entry struct {
	// Name is the canonical method identifier, e.g. "DIFF_C2".
	Name string
	// Category is the single stencil slot the method occupies.
	Category Category
	// Func is the per-direction stencil implementation the method maps to.
	Func string

	table *Table
}

// NewEntry classifies one raw tuple of the form
// {name, normalRef, upwindRef, fluxRef}.
//
// It returns (nil, nil) for a tuple that declares a method name with no
// implementation (all three references NULL), an UnsupportedError for
// skip-listed methods, and a GrammarError for any other invalid shape.
func NewEntry(fields []string) (*Entry, error) {
	if len(fields) != 4 {
		return nil, NewGrammarError("", strings.Join(fields, ","),
			"entry must be a {name, normal, upwind, flux} tuple", nil)
	}
	name := fields[0]
	if reason, ok := unsupported[name]; ok {
		return nil, NewUnsupportedError(name, reason)
	}
	var (
		cat  Category
		fn   string
		refs int
	)
	for i, c := range []Category{CategoryNormal, CategoryUpwind, CategoryFlux} {
		if fields[i+1] != nullRef {
			cat = c
			fn = fields[i+1]
			refs++
		}
	}
	switch {
	case refs == 0:
		// A method name with no implementation contributes nothing.
		return nil, nil
	case refs > 1:
		return nil, NewGrammarError("", name,
			"more than one stencil reference set", nil)
	}
	return &Entry{Name: name, Category: cat, Func: fn}, nil
}

// Staggered reports whether the underlying stencil is the staggered variant.
func (e *Entry) Staggered() bool {
	return strings.HasSuffix(e.Func, stagMarker)
}

// Flow reports whether the method needs a velocity operand in addition to
// the field being differenced.
func (e *Entry) Flow() bool {
	return e.Category == CategoryUpwind || e.Category == CategoryFlux
}

// Table returns the owning table. It is set once the owning table finishes
// parsing and is a back-reference, not an ownership edge.
func (e *Entry) Table() *Table {
	return e.table
}
