// Package surface provides the character-grid drawing target that widgets render into.
//
// A Surface is addressed by (column, row) and accepts single-cell writes carrying an
// opaque Attr. Writes outside the surface are dropped silently, so widgets never need
// to clip themselves. Grid is the in-memory implementation used by the host loop; it
// can be flattened to plain text or to ANSI-styled output.
package surface
