package datapkg

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by a Source when no raw content exists.
	ErrNotFound = errors.New("data not found")
	// ErrUnsupported is returned by a coercion step that cannot produce the
	// requested representation.
	ErrUnsupported = errors.New("unsupported representation")
	// ErrNotImplemented marks a resolution path that has no implementation,
	// such as default data-source discovery.
	ErrNotImplemented = errors.New("not implemented")
	// ErrUnknownPackage is returned when a package name is not registered.
	ErrUnknownPackage = errors.New("unknown package")
	// ErrDuplicateBinding is recorded when a representation type is bound twice.
	ErrDuplicateBinding = errors.New("duplicate provider binding")
)

// ConfigurationError reports that a package's provider metadata cannot be
// determined.
type ConfigurationError struct {
	Package string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Package == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error in package %q: %v", e.Package, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// CoercionError reports that the chosen provider failed or that its result
// could not be adapted into the requested representation.
type CoercionError struct {
	Package string
	Type    Type
	Err     error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot produce %s from package %q: %v", e.Type, e.Package, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// ParseError is returned by a Loader that cannot thaw its input.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s data: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
