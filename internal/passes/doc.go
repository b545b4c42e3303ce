// Package passes holds the built-in tree rewrites. Each pass embeds
// reducer.Base and overrides only the hooks it cares about, so every
// untouched node kind reconstructs unchanged.
package passes
