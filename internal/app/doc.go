// Package app contains the core application logic. It wires the logger, the
// data package registry and the resolver together, decoupled from any
// specific entrypoint like a CLI.
package app
