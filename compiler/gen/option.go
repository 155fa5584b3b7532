package gen

// Option configures code generation.
type Option func(*Config) error

// WithPackage sets the package name of the emitted files.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithHeader sets the file header comment.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithFields sets the field types to generate dispatch code for.
// The first field's directions also drive initialization-code generation.
func WithFields(fields ...FieldSpec) Option {
	return func(c *Config) error {
		if len(fields) == 0 {
			return NewConfigError("Fields", nil, "at least one field type is required")
		}
		for _, f := range fields {
			if f.Name == "" || len(f.Directions) == 0 {
				return NewConfigError("Fields", f.Name, "field needs a name and at least one direction")
			}
		}
		c.Fields = fields
		return nil
	}
}

// WithManifest controls whether the request manifest file is written.
func WithManifest(enabled bool) Option {
	return func(c *Config) error {
		c.Manifest = enabled
		return nil
	}
}

// WithStrict enables the table homogeneity verification pass.
func WithStrict(enabled bool) Option {
	return func(c *Config) error {
		c.Strict = enabled
		return nil
	}
}

// Apply applies options to the config. It returns the first error
// encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}
