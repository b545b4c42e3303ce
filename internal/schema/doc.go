// Package schema validates serialized program documents against the
// embedded CUE definition before they are decoded into trees. Catching a
// malformed document here gives positioned, field-level errors instead of
// a decode failure deep inside a nested node.
package schema
