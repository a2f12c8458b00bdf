// Package datapkg defines data packages: named, versioned units whose entire
// value is a data structure rather than behavior.
//
// A Package binds representation types to provider functions. The bindings
// are declared once, through a Builder, and never change afterwards:
//
//	pkg := datapkg.Define("Config", "1.0.0").
//		Provide("IniMap", iniProvider).
//		Provide("JsonDoc", jsonProvider).
//		Explicit("IniMap", "JsonDoc").
//		Build()
//
// Deciding which representation a consumer receives is the job of the
// registry and resolver packages; datapkg only carries the metadata and the
// per-call Handle that provider functions receive.
package datapkg
