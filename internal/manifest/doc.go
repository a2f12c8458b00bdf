// Package manifest declares data packages in HCL files.
//
// A manifest describes where a package's data lives, how it is thawed and
// which representations it offers; no Go code is needed:
//
//	type "JsonDoc" {
//	  is_a = ["Document"]
//	}
//
//	package "Config" {
//	  version  = "1.0.0"
//	  source   = "config.yaml"
//	  provides = ["Settings", "Document"]
//
//	  representation "Settings" {
//	    schema = object({ name = string, port = number })
//	  }
//	}
//
// Instead of source, a package may carry its content inline in a `data`
// attribute, typically a heredoc; it then needs an explicit loader.
//
// Every manifest package is bound to "Raw" (the bytes of its content) and
// "Document" (the thawed structure). Each representation block adds a
// binding that converts the document into a cty.Value of its schema.
package manifest
