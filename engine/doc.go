// Package engine drives the native Phy-Engine shared library.
//
// Open locates and loads the library (ctypes-style runtime loading via
// purego, no cgo), Library.Build constructs an engine-side circuit from a
// flattened netlist, and Circuit exposes the analysis lifecycle:
//
//	Build → (Configure → Analyze → Sample)* → Close
//
// A Circuit owns one opaque engine object plus two engine-allocated
// position buffers. Close releases them exactly once and is idempotent;
// every other operation fails fast afterwards. Circuits are not safe for
// concurrent use: confine each one to a single goroutine for its entire
// lifetime.
//
// Analysis inside the engine blocks the calling goroutine for the duration
// of the native computation; the engine exposes no cancellation primitive.
//
// The one-shot Analyze function covers the common case and guarantees the
// circuit is released on every path.
package engine
