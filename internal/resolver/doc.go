// Package resolver produces data instances from data packages.
//
// A Resolver asks the registry which representations a package provides,
// optionally filtered, picks the first one and hands it to a Coercer
// together with a fresh handle. Exactly one coercion, and therefore at most
// one provider invocation, happens per Get call: when the chosen
// representation fails, Get fails instead of trying the next candidate.
//
// Get distinguishes three outcomes:
//
//   - an instance (ok == true),
//   - Absent (ok == false, err == nil) when nothing matches the request,
//   - an error: *datapkg.ConfigurationError for broken metadata or
//     *datapkg.CoercionError when the chosen provider or coercion failed.
package resolver
