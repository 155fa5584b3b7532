// Package scan extracts named table blocks from free-form source text.
//
// The input grammar is narrow by design: zero or more top-level bracketed
// initializers of the form
//
//	<ignored tokens> Name[] = { { f0, f1, f2, f3 }, ... };
//
// embedded in text that may contain arbitrary unrelated content. There is no
// nesting beyond the two levels shown, and string literals carry no escapes,
// so a depth counter over braces is sufficient to disambiguate.
package scan

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Block is one top-level bracketed initializer captured from the input.
type Block struct {
	// Name is the third whitespace-separated token of the declaration,
	// trimmed at the first '[' (e.g. "FirstDerivTable" for
	// "static DiffNameLookup FirstDerivTable[] = { ... };").
	Name string

	// Raw holds the declaration head plus the full bracketed body.
	Raw string
}

// DescriptionsTable is the reserved block name carrying the
// (method, key, description) rows. It is routed separately from the
// differencing tables.
const DescriptionsTable = "DiffNameTable"

// minNameLen guards against anonymous and helper blocks: array initializers
// with one- or two-character names are not differencing tables.
const minNameLen = 3

// ErrUnbalanced reports that the brace depth did not return to zero at EOF,
// or dropped below zero mid-stream.
var ErrUnbalanced = errors.New("scan: unbalanced braces in table source")

// Scan reads the stream and returns every named top-level block in source
// order. Blocks whose derived name is shorter than three characters are
// dropped silently.
func Scan(r io.Reader) ([]Block, error) {
	var (
		br     = bufio.NewReader(r)
		depth  int
		head   strings.Builder // current line prefix while outside any block
		buf    strings.Builder // accumulating block text
		blocks []Block
	)
	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch c {
		case '{':
			if depth == 0 {
				buf.Reset()
				buf.WriteString(head.String())
			}
			depth++
			buf.WriteRune(c)
		case '}':
			depth--
			if depth < 0 {
				return nil, ErrUnbalanced
			}
			buf.WriteRune(c)
			if depth == 0 {
				raw := buf.String()
				if name := blockName(raw); len(name) >= minNameLen {
					blocks = append(blocks, Block{Name: name, Raw: raw})
				}
				buf.Reset()
			}
		case '\n':
			if depth > 0 {
				buf.WriteRune(c)
			} else {
				head.Reset()
			}
		default:
			if depth > 0 {
				buf.WriteRune(c)
			} else {
				head.WriteRune(c)
			}
		}
	}
	if depth != 0 {
		return nil, ErrUnbalanced
	}
	return blocks, nil
}

// blockName derives the table name from a raw block: the third
// whitespace-separated token of the declaration, cut at the first bracket.
// Returns "" when the declaration has fewer than three tokens.
func blockName(raw string) string {
	tokens := strings.Fields(raw)
	if len(tokens) < 3 {
		return ""
	}
	name, _, _ := strings.Cut(tokens[2], "[")
	return name
}

// Tuples splits a block body into its depth-2 entries. Each entry is the
// comma-separated tuple between one pair of inner braces, with fields
// whitespace-trimmed and double quotes stripped. Quotes are plain characters
// in this grammar, never nesting or escaping.
func Tuples(raw string) [][]string {
	var (
		depth int
		cur   strings.Builder
		out   [][]string
	)
	for _, c := range raw {
		switch c {
		case '{':
			depth++
			if depth == 2 {
				cur.Reset()
			}
		case '}':
			if depth == 2 {
				out = append(out, splitTuple(cur.String()))
			}
			depth--
		default:
			if depth == 2 {
				cur.WriteRune(c)
			}
		}
	}
	return out
}

func splitTuple(s string) []string {
	parts := strings.Split(s, ",")
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = strings.TrimSpace(strings.ReplaceAll(p, `"`, ""))
	}
	return fields
}
