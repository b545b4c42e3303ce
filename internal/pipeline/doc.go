// Package pipeline chains tree rewrites into runs.
//
// A Runner executes a fixed sequence of passes over a program, fail-fast:
// the first pass error aborts the run and surfaces with the failing pass
// named. Each pass boundary is hashed, so a run leaves a verifiable trace
// of document identities from source to output.
//
// Persistence is optional. With a store attached, the runner records the
// run, its per-pass trace, and a content-addressed snapshot of every
// intermediate document.
package pipeline
