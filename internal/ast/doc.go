// Package ast defines the lumen abstract syntax tree.
//
// This package is the foundational layer of the front end: every other
// internal package imports ast; ast imports only span and ordered. The node
// set is closed: each grammar construct is one struct behind one of the
// category interfaces (Type, Expression, Statement, and the declaration
// kinds), discriminated by unexported marker methods so the compiler enforces
// exhaustiveness wherever code switches over a category.
//
// Key design constraints:
//   - Every node carries its source span as an opaque provenance token;
//     nothing in this package or its consumers recomputes spans from children.
//   - Nodes are never mutated in place. Transformations build whole new trees
//     bottom-up (see internal/reducer); the one sanctioned exception is the
//     TypeCell on StaticAccess, whose resolved type may be assigned after the
//     node is constructed.
//   - Node identity is structural. No code may rely on pointer equality
//     between nodes for correctness.
//   - Canonical serialization (canonical.go, hash.go) uses sorted keys and
//     NFC-normalized strings so content addressing is stable across runs.
package ast
