package gen

import "strings"

// Identifiers of the mesh runtime that the emitted code references. The
// generated files compile as part of the mesh package, so everything here
// is a same-package name, not an import.
const (
	identCellLoc    = "CellLoc"
	identDiffMethod = "DiffMethod"
	identRegion     = "Region"
	identOptions    = "Options"
	identOutput     = "output"

	cellDefault = "CELL_DEFAULT"
	cellCentre  = "CELL_CENTRE"
	diffDefault = "DIFF_DEFAULT"
)

// cellLow names the staggered low-location sentinel of a direction,
// e.g. "CELL_XLOW".
func cellLow(dir string) string {
	return "CELL_" + strings.ToUpper(dir) + "LOW"
}

// localN names the mesh size field of a direction, e.g. "LocalNx".
func localN(dir string) string {
	return "LocalN" + dir
}
