// Package registry is the capability registry for data packages.
//
// The Registry stores every data package known to an application instance,
// together with the Taxonomy that relates representation types to each
// other. It answers the metadata question "what can this package provide",
// optionally filtered to a representation type, without ever invoking a
// provider function.
//
// Packages are registered once during startup, normally by compiled-in Go
// modules and by manifests loaded from disk, and the registry is then
// validated so that malformed declarations are reported before any
// consumer asks for data.
package registry
