package gen

// FieldSpec names a mesh field type and the directions it varies along.
// The order of fields and directions is part of the output contract:
// together with table discovery order it fixes the textual order of every
// emitted declaration.
type FieldSpec struct {
	Name       string   `koanf:"name" yaml:"name"`
	Directions []string `koanf:"directions" yaml:"directions"`
}

// DefaultFields matches the overload set of the mesh runtime.
func DefaultFields() []FieldSpec {
	return []FieldSpec{
		{Name: "Field3D", Directions: []string{"x", "y", "z"}},
		{Name: "Field2D", Directions: []string{"x", "y"}},
	}
}

// defaultHeader is added at the top of each generated file.
const defaultHeader = "Code generated by derivgen. DO NOT EDIT."

// DefaultPackage is the package name of the emitted files. The generated
// code defines methods on the field types, so it must compile as part of
// the mesh package itself.
const DefaultPackage = "mesh"

// Config carries the settings of one generation run.
type Config struct {
	// Package is the package name of the emitted files.
	Package string
	// Target is the output directory.
	Target string
	// Header is the comment placed at the top of each generated file.
	Header string
	// Fields enumerates the field types (and their directions) to generate
	// dispatch code for.
	Fields []FieldSpec
	// Manifest controls whether the generation-request sequence is also
	// written as a YAML manifest for the downstream stencil generator.
	Manifest bool
	// Strict enables the table homogeneity verification pass.
	Strict bool
}

// DefaultConfig returns a Config with the standard settings.
func DefaultConfig() *Config {
	return &Config{
		Package:  DefaultPackage,
		Header:   defaultHeader,
		Fields:   DefaultFields(),
		Manifest: true,
	}
}
