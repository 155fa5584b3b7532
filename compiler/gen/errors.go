// Package gen builds the differencing-method model from scanned table
// blocks and emits the runtime dispatch code.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure categories of one generation run.
var (
	// ErrGrammar indicates malformed table input: a bad table-name prefix or
	// an entry with an invalid combination of stencil references. Always
	// fatal; no partial output is usable.
	ErrGrammar = errors.New("derivgen: table grammar error")
	// ErrConsistency indicates a stencil body attached to a generation
	// request with a disagreeing flux/staggered classification. Fatal; this
	// is a modeling bug, not a data bug.
	ErrConsistency = errors.New("derivgen: request consistency error")
	// ErrUnsupportedMethod indicates a recognized but deliberately
	// unimplemented method. Informational; the entry is skipped.
	ErrUnsupportedMethod = errors.New("derivgen: unsupported method")
	// ErrMissingConfig indicates a generator configuration error.
	ErrMissingConfig = errors.New("derivgen: missing configuration")
)

// GrammarError reports malformed table input.
type GrammarError struct {
	Table   string // table name, if known
	Entry   string // offending entry or tuple, if known
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GrammarError) Error() string {
	var b strings.Builder
	b.WriteString("derivgen: grammar error")
	if e.Table != "" {
		b.WriteString(" in table ")
		b.WriteString(e.Table)
	}
	if e.Entry != "" {
		b.WriteString(" entry ")
		b.WriteString(e.Entry)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GrammarError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GrammarError.
func (e *GrammarError) Is(target error) bool {
	return target == ErrGrammar
}

// NewGrammarError creates a new GrammarError.
func NewGrammarError(table, entry, message string, cause error) *GrammarError {
	return &GrammarError{
		Table:   table,
		Entry:   entry,
		Message: message,
		Cause:   cause,
	}
}

// ConsistencyError reports a stencil body whose classification disagrees
// with the request it was attached to.
type ConsistencyError struct {
	Request string // generated function name of the request
	Stencil string // name of the stencil body
	Message string
}

// Error implements the error interface.
func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("derivgen: consistency error for request %q (stencil %q): %s",
		e.Request, e.Stencil, e.Message)
}

// Is reports whether the target matches the sentinel error for ConsistencyError.
func (e *ConsistencyError) Is(target error) bool {
	return target == ErrConsistency
}

// NewConsistencyError creates a new ConsistencyError.
func NewConsistencyError(request, stencil, message string) *ConsistencyError {
	return &ConsistencyError{
		Request: request,
		Stencil: stencil,
		Message: message,
	}
}

// UnsupportedError reports a method on the permanent skip list.
type UnsupportedError struct {
	Method string
	Reason string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("derivgen: unsupported method %s: %s", e.Method, e.Reason)
}

// Is reports whether the target matches the sentinel error for UnsupportedError.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupportedMethod
}

// NewUnsupportedError creates a new UnsupportedError.
func NewUnsupportedError(method, reason string) *UnsupportedError {
	return &UnsupportedError{Method: method, Reason: reason}
}

// ConfigError represents a generator configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("derivgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("derivgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// IsGrammarError reports whether the error is a GrammarError.
func IsGrammarError(err error) bool {
	var ge *GrammarError
	return errors.As(err, &ge)
}

// IsConsistencyError reports whether the error is a ConsistencyError.
func IsConsistencyError(err error) bool {
	var ce *ConsistencyError
	return errors.As(err, &ce)
}

// IsUnsupportedError reports whether the error is an UnsupportedError.
func IsUnsupportedError(err error) bool {
	var ue *UnsupportedError
	return errors.As(err, &ue)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
