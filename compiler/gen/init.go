package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// initCategory is one of the four method families the initialization code
// resolves defaults for. tableSuffix reconstructs the table name the family
// dispatches into; fallback is the method key tried when the configuration
// sets nothing.
type initCategory struct {
	name        string
	tableSuffix string
	fallback    string
}

var initCategories = []initCategory{
	{name: "First", tableSuffix: "DerivTable", fallback: "C2"},
	{name: "Second", tableSuffix: "DerivTable", fallback: "C2"},
	{name: "Upwind", tableSuffix: "Table", fallback: "U1"},
	{name: "Flux", tableSuffix: "Table", fallback: "U1"},
}

// initStags enumerates the staggering variants of every family: the plain
// slot and the staggered one.
var initStags = []string{"", "Stag"}

// genInit renders the runtime initialization: the process-wide default
// method variables and derivsInit, which resolves each of them from user
// configuration with per-slot key priority and case-insensitive matching.
// The direction set is taken from the first configured field, which spans
// all others.
func (g *Generator) genInit() *jen.File {
	f := g.newFile()
	dirs := g.cfg.Fields[0].Directions

	f.Comment("Process-wide default methods, resolved once by derivsInit.")
	f.Var().DefsFunc(func(defs *jen.Group) {
		for _, dir := range dirs {
			for _, cat := range initCategories {
				for _, stag := range initStags {
					defs.Id(defaultVarName(dir, cat.name, stag)).Id(identDiffMethod)
				}
			}
		}
	})

	f.Comment("derivsInit resolves the default differencing methods from the user")
	f.Comment("configuration. It must run before any derivative is taken.")
	f.Func().Id("derivsInit").Params(jen.Id("options").Op("*").Id(identOptions)).BlockFunc(func(body *jen.Group) {
		body.Var().Id("name").String()
		body.Var().Id("dirOption").Op("*").Id(identOptions)
		for _, dir := range dirs {
			body.Id(identOutput).Dot("Printf").Call(
				jen.Lit(fmt.Sprintf("\tSetting derivatives for direction %s:\n", dir)),
			)
			body.Id("dirOption").Op("=").Id("options").Dot("Section").Call(jen.Lit("dd" + dir))
			for _, cat := range initCategories {
				for _, stag := range initStags {
					g.initSlot(body, dir, cat, stag)
				}
			}
		}
	})
	return f
}

// defaultVarName names the per-(direction, family, staggering) default
// variable, e.g. "default_x_FirstDeriv" or "default_y_UpwindStagDeriv".
func defaultVarName(dir, cat, stag string) string {
	return fmt.Sprintf("default_%s_%s%sDeriv", dir, cat, stag)
}

// initSlot renders the resolution of one (direction, family, staggering)
// slot: pick the configured key by priority, then match it against the
// described methods of the slot's table.
func (g *Generator) initSlot(body *jen.Group, dir string, cat initCategory, stag string) {
	slot := cat.name + stag
	body.Comment(fmt.Sprintf("defaults for dd%s / %s", dir, slot))

	// Staggered slots try their own key first, then fall back to the plain
	// family key, then to the catch-all.
	keys := []string{cat.name, "all"}
	if stag != "" {
		keys = append([]string{slot}, keys...)
	}
	isSet := func(k string) *jen.Statement {
		return jen.Id("dirOption").Dot("IsSet").Call(jen.Lit(k))
	}
	getName := func(k string) *jen.Statement {
		return jen.Id("name").Op("=").Id("dirOption").Dot("Get").Call(jen.Lit(k), jen.Lit(cat.fallback))
	}
	resolve := jen.If(isSet(keys[0])).Block(getName(keys[0]))
	for _, k := range keys[1:] {
		resolve.Else().If(isSet(k)).Block(getName(k))
	}
	resolve.Else().Block(jen.Id("name").Op("=").Lit(cat.fallback))
	body.Add(resolve)

	fail := func(options string) *jen.Statement {
		return jen.Panic(jen.Qual("fmt", "Sprintf").Call(
			jen.Lit(fmt.Sprintf(
				"Don't know what diff method to use for %s (direction %s, tried to use %%s)!\nOptions are:%s",
				slot, dir, options)),
			jen.Id("name"),
		))
	}

	t := g.reg.Table(slot + cat.tableSuffix)
	if t == nil || t.Empty() {
		// No table, no dispatch to default into. The variable still exists
		// so the declaration surface is uniform.
		return
	}
	rows := g.reg.Descriptions.ForTable(t)
	if len(rows) == 0 {
		body.Add(fail(""))
		return
	}

	varName := defaultVarName(dir, cat.name, stag)
	match := func(row Description) *jen.Statement {
		return jen.Qual("strings", "EqualFold").Call(jen.Id("name"), jen.Lit(row.Key))
	}
	assign := func(row Description) []jen.Code {
		return []jen.Code{
			jen.Id(varName).Op("=").Id(row.Method),
			jen.Id(identOutput).Dot("Printf").Call(
				jen.Lit(fmt.Sprintf("\t%15s : %s\n", slot, row.Text)),
			),
		}
	}
	var options string
	for _, row := range rows {
		options += "\n * " + row.Key + ": " + row.Text
	}
	pick := jen.If(match(rows[0])).Block(assign(rows[0])...)
	for _, row := range rows[1:] {
		pick.Else().If(match(row)).Block(assign(row)...)
	}
	pick.Else().Block(fail(options))
	body.Add(pick)
}
