package gen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
)

// genIndex renders the public index functions: one method per
// (active template family, field, direction) that resolves the output
// location, short-circuits degenerate meshes and decides between the
// staggered and the non-staggered dispatch.
func (g *Generator) genIndex() *jen.File {
	f := g.newFile()
	for _, tpl := range g.activeTemplates() {
		for _, fs := range g.cfg.Fields {
			for _, dir := range fs.Directions {
				g.indexFunc(f, tpl, fs, dir)
			}
		}
	}
	return f
}

func (g *Generator) indexFunc(f *jen.File, tpl template, fs FieldSpec, dir string) {
	name := fmt.Sprintf(tpl.format, strings.ToUpper(dir))
	low := cellLow(dir)

	var params []jen.Code
	if tpl.flow {
		params = append(params, jen.Id("v").Id(fs.Name))
	}
	params = append(params,
		jen.Id("outloc").Id(identCellLoc),
		jen.Id("method").Id(identDiffMethod),
		jen.Id("_").Id(identRegion),
	)

	// The staggering decision looks at the velocity for flow methods and at
	// the differenced field otherwise.
	operand := "f"
	if tpl.flow {
		operand = "v"
	}
	var delegate []jen.Code
	if tpl.flow {
		delegate = append(delegate, jen.Id("v"))
	}
	delegate = append(delegate, jen.Id("outloc"), jen.Id("method"))

	f.Commentf("%s picks between the staggered and the non-staggered dispatch for %s.", name, fs.Name)
	f.Func().Params(jen.Id("f").Id(fs.Name)).Id(name).Params(params...).Id(fs.Name).BlockFunc(func(body *jen.Group) {
		body.If(jen.Id("outloc").Op("==").Id(cellDefault)).Block(
			jen.Id("outloc").Op("=").Id("f").Dot("Location").Call(),
		)
		if tpl.flow {
			body.If(jen.Id("outloc").Op("!=").Id("f").Dot("Location").Call()).Block(
				jen.Panic(jen.Lit(fmt.Sprintf(
					"%s.%s: unhandled case for shifting.\nf.Location() == outloc is required!",
					fs.Name, name))),
			)
		}
		body.If(jen.Id("f").Dot("Mesh").Call().Dot(localN(dir)).Op("==").Lit(1)).Block(
			jen.Id("result").Op(":=").Id("f").Dot("ZeroLike").Call(),
			jen.Id("result").Dot("SetLocation").Call(jen.Id("outloc")),
			jen.Return(jen.Id("result")),
		)
		body.If(
			jen.Parens(jen.Id("outloc").Op("==").Id(low)).
				Op("!=").
				Parens(jen.Id(operand).Dot("Location").Call().Op("==").Id(low)),
		).Block(
			jen.Comment("going onto a staggered grid or coming from one"),
			jen.Return(jen.Id("f").Dot(name+"_stag").Call(delegate...)),
		)
		body.Return(jen.Id("f").Dot(name + "_non_stag").Call(delegate...))
	})
}
