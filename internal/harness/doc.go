// Package harness runs YAML-defined conformance scenarios.
//
// A scenario names a serialized program document, a pass sequence to run
// over it, and assertions on the resulting trace. Golden files hold the
// canonical form of the output document, so a scenario pins both the
// behavior of the passes and the stability of the encoding.
package harness
