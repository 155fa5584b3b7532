package gen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
)

// genAPI renders the declaration surface: per field type an interface
// listing every generated derivative entry point, with a compile-time
// assertion that the field actually implements it. The interface pins the
// signatures without restating the method bodies.
func (g *Generator) genAPI() *jen.File {
	f := g.newFile()
	for _, fs := range g.cfg.Fields {
		iface := "derivOps" + fs.Name
		f.Commentf("%s lists the derivative entry points generated for %s.", iface, fs.Name)
		f.Type().Id(iface).InterfaceFunc(func(i *jen.Group) {
			for _, tpl := range g.activeTemplates() {
				for _, dir := range fs.Directions {
					name := fmt.Sprintf(tpl.format, strings.ToUpper(dir))
					var params []jen.Code
					if tpl.flow {
						params = append(params, jen.Id("v").Id(fs.Name))
					}
					params = append(params,
						jen.Id("outloc").Id(identCellLoc),
						jen.Id("method").Id(identDiffMethod),
						jen.Id("region").Id(identRegion),
					)
					i.Id(name).Params(params...).Id(fs.Name)
				}
			}
		})
		f.Var().Id("_").Id(iface).Op("=").Id(fs.Name).Values()
	}
	return f
}
