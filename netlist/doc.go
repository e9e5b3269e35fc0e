// Package netlist flattens a circuit element graph into the parallel
// numeric arrays the Phy-Engine constructor consumes.
//
// Build walks the input elements once and emits element codes, the
// concatenated property stream, and flat wire endpoint quadruples, while
// tracking the ordered subset of non-ground elements. That retained list is
// the component order the engine uses for every result offset array it
// returns.
//
// Building is pure: no I/O and no foreign calls, so it is testable without
// the native engine.
package netlist
