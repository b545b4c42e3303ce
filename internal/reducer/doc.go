// Package reducer implements the reconstruction protocol for the lumen AST.
//
// A Reducer supplies one reconstruction hook per node kind. Each hook
// receives the original node plus the already-reduced values of its recursive
// children and returns a new node of the same kind. Base implements every
// hook as pure reassembly, so reducing a tree through an unmodified Base is
// an identity transformation up to structural equality (and fresh
// allocation). A pass embeds Base and overrides exactly the hooks it needs;
// every unoverridden hook keeps the reassembly behavior, never a no-op that
// drops children.
//
// The Director realizes the descent order the hook contract assumes: a
// post-order depth-first walk, children reduced left-to-right in declaration
// order, short-circuiting on the first failure. A failing child aborts its
// parent's reduction all the way to the root; no partial tree is produced.
//
// The substrate decides nothing about what to transform. It performs no I/O,
// spawns nothing, and caches nothing; concurrent traversals must each use an
// independent Reducer instance, since the in-circuit context bit is
// per-traversal state.
package reducer
