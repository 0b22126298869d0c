// Package dnd implements drag-to-reorder for lists rendered by a
// frame-driven host. The host feeds pointer state and the previous frame's
// item rectangles into Engine.Tick once per frame and gets back every item's
// animated render position, the live display order, and a completion or
// cancellation event when a drag session ends. The package does no drawing
// and no hit testing; see cmd/dnd-demo for a bubbletea host.
package dnd
