// Package template defines the renderer-agnostic template seam used by the
// control primitives. Implementations live in subpackages; gotemplate wraps a
// pongo2 template set.
package template
