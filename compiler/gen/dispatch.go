package gen

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dave/jennifer/jen"
)

// genDispatch renders one dispatch method per (table, field, direction): a
// switch over the requested method that calls the matching concrete stencil
// body, interpolating operands across staggering boundaries where the
// classification demands it. Rendering a branch also records the concrete
// body it calls as a generation request.
func (g *Generator) genDispatch() *jen.File {
	f := g.newFile()
	for _, t := range g.reg.Tables() {
		if t.Empty() {
			slog.Debug("table has no surviving methods, skipping dispatch", "table", t.Name)
			continue
		}
		for _, fs := range g.cfg.Fields {
			for _, dir := range fs.Directions {
				g.dispatchFunc(f, t, fs, dir)
			}
		}
	}
	return f
}

func (g *Generator) dispatchFunc(f *jen.File, t *Table, fs FieldSpec, dir string) {
	name := t.FullName(dir)
	var params []jen.Code
	if t.Flow() {
		params = append(params, jen.Id("v").Id(fs.Name))
	}
	params = append(params,
		jen.Id("outloc").Id(identCellLoc),
		jen.Id("method").Id(identDiffMethod),
	)
	f.Func().Params(jen.Id("f").Id(fs.Name)).Id(name).Params(params...).Id(fs.Name).BlockFunc(func(body *jen.Group) {
		body.If(jen.Id("method").Op("==").Id(diffDefault)).Block(
			jen.Id("method").Op("=").Id(t.DefaultVar(dir)),
		)
		body.If(jen.Id("outloc").Op("==").Id(cellDefault)).Block(
			jen.Id("outloc").Op("=").Id("f").Dot("Location").Call(),
		)
		body.Switch(jen.Id("method")).BlockFunc(func(sw *jen.Group) {
			for _, e := range t.Entries() {
				sw.Case(jen.Id(e.Name)).Block(g.dispatchCase(t, e, fs, dir)...)
			}
			sw.Default().Block(jen.Panic(jen.Qual("fmt", "Sprintf").Call(
				jen.Lit(unknownMethodMsg(t, fs, name)),
				jen.Id("method"),
			)))
		})
	})
}

// dispatchCase renders one case body. The shape depends only on the table
// classification: flow methods carry the velocity operand, staggered tables
// pick between the on/off variants by output location, everything else is a
// single call to the norm variant.
func (g *Generator) dispatchCase(t *Table, e *Entry, fs FieldSpec, dir string) []jen.Code {
	low := cellLow(dir)
	switch {
	case t.Flow() && t.Staggered():
		on := g.record(t, e, fs, dir, ModeOn)
		off := g.record(t, e, fs, dir, ModeOff)
		return []jen.Code{
			jen.If(jen.Id("outloc").Op("==").Id(low)).Block(
				jen.Return(jen.Id("f").Dot(on).Call(
					jen.Id("v").Dot("InterpTo").Call(jen.Id(cellCentre)),
				)),
			),
			jen.Return(jen.Id("f").Dot("InterpTo").Call(jen.Id(cellCentre)).
				Dot(off).Call(jen.Id("v")).
				Dot("InterpTo").Call(jen.Id("outloc"))),
		}
	case t.Flow():
		norm := g.record(t, e, fs, dir, ModeNorm)
		return []jen.Code{
			jen.If(jen.Id("v").Dot("Location").Call().Op("==").Id("f").Dot("Location").Call()).Block(
				jen.Return(jen.Id("f").Dot(norm).Call(jen.Id("v")).
					Dot("InterpTo").Call(jen.Id("outloc"))),
			),
			jen.Return(jen.Id("f").Dot("InterpTo").Call(jen.Id(cellCentre)).
				Dot(norm).Call(jen.Id("v").Dot("InterpTo").Call(jen.Id(cellCentre))).
				Dot("InterpTo").Call(jen.Id("outloc"))),
		}
	case t.Staggered():
		on := g.record(t, e, fs, dir, ModeOn)
		off := g.record(t, e, fs, dir, ModeOff)
		return []jen.Code{
			jen.If(jen.Id("outloc").Op("==").Id(low)).Block(
				jen.Return(jen.Id("f").Dot("InterpTo").Call(jen.Id(cellCentre)).Dot(on).Call()),
			),
			jen.Return(jen.Id("f").Dot(off).Call().Dot("InterpTo").Call(jen.Id("outloc"))),
		}
	default:
		norm := g.record(t, e, fs, dir, ModeNorm)
		return []jen.Code{
			jen.Return(jen.Id("f").Dot(norm).Call().Dot("InterpTo").Call(jen.Id("outloc"))),
		}
	}
}

// record registers the concrete stencil body a branch calls and returns its
// symbol name.
func (g *Generator) record(t *Table, e *Entry, fs FieldSpec, dir string, mode Mode) string {
	name := fmt.Sprintf("%s_%s_%s", t.FuncName(dir), mode, e.Name)
	g.reqs.Add(&Request{
		Name:      name,
		Field:     fs.Name,
		Direction: dir,
		Mode:      mode,
		Method:    e,
	})
	return name
}

// unknownMethodMsg builds the panic format string of the default branch,
// listing every method the dispatch actually supports.
func unknownMethodMsg(t *Table, fs FieldSpec, fullName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s.%s: unknown method %%d.\nSupported methods are", fs.Name, fullName)
	for _, e := range t.Entries() {
		b.WriteString("\n * " + e.Name)
	}
	b.WriteString("\nNote FFTs are not (yet) supported.")
	return b.String()
}
