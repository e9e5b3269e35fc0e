// Package phyengine bridges an in-memory circuit description to the
// natively-compiled Phy-Engine analysis library.
//
// The bridge flattens a graph of typed circuit elements and wires into the
// numeric arrays the engine consumes, drives one analysis pass through the
// engine's C ABI, and decodes the engine's flat result buffers back into
// per-element measurements. Circuit solving itself is entirely the engine's
// job; this module only performs translation and lifetime management around
// an analysis invocation.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	phyengine/           Root package with the Element and Wire capability types
//	├── element/         Engine code table and element-to-code encoding
//	├── netlist/         Pure flattening of elements and wires into engine arrays
//	├── engine/          Library discovery, foreign calls, circuit lifecycle, sampling
//	└── errors/          Structured error types for debugging
//
// Data flows one way:
//
//	elements + wires → netlist.Build → engine.Library.Build → Configure/Analyze
//	                                   → Sample → per-element measurements
//
// # Quick Start
//
// One-shot analysis with automatic resource cleanup:
//
//	sample, err := engine.Analyze(elements, wires,
//		engine.WithKind(engine.AnalysisDC))
//	if err != nil {
//		return err
//	}
//	volts := sample.PinVoltage[resistor]
//
// Or manage the circuit lifecycle explicitly for repeated runs:
//
//	lib, err := engine.Open("")
//	nl, err := netlist.Build(elements, wires)
//	c, err := lib.Build(nl)
//	defer c.Close()
//
// The engine's shared library is located through an explicit path, the
// PHYSICSLAB_PHYENGINE_LIB environment variable, or a set of platform
// default names searched across candidate directories.
package phyengine
