package engine

import (
	"go.uber.org/zap"

	"github.com/physicslab/phyengine"
	"github.com/physicslab/phyengine/element"
	"github.com/physicslab/phyengine/errors"
	"github.com/physicslab/phyengine/netlist"
)

// Circuit owns one engine-side circuit object together with the two
// engine-allocated position buffers returned by the constructor. Close
// releases all three exactly once.
//
// A Circuit is not safe for concurrent use. Confine it to a single
// goroutine for its entire lifetime; no internal locking is provided and
// none is needed within one owner.
type Circuit struct {
	api      engineAPI
	handle   uintptr
	vecPos   uintptr
	chunkPos uintptr
	elements []phyengine.Element // retained, in engine component order
	codes    []int32
	closed   bool
}

// Sample holds one analysis pass's measurements, decoded per retained
// element. All values are copied out of the engine's buffers, so a Sample
// stays valid after the circuit is closed.
type Sample struct {
	// Elements lists the retained elements in engine component order.
	Elements []phyengine.Element

	// PinVoltage maps each retained element to its pin voltages, one per
	// pin in pin order.
	PinVoltage map[phyengine.Element][]float64

	// PinDigital maps each retained element to its pin logic levels.
	PinDigital map[phyengine.Element][]bool

	// BranchCurrent maps each retained element to its branch currents.
	BranchCurrent map[phyengine.Element][]float64
}

// Build constructs the engine-side circuit from a flattened netlist.
func (l *Library) Build(nl *netlist.Netlist) (*Circuit, error) {
	return buildCircuit(l, nl)
}

func buildCircuit(api engineAPI, nl *netlist.Netlist) (*Circuit, error) {
	props := nl.Properties
	if len(props) == 0 {
		// The constructor dereferences the property pointer even for
		// circuits with no property-bearing components.
		props = []float64{0}
	}

	out, ok := api.createCircuit(nl.Codes, nl.Wires, props)
	if !ok {
		return nil, errors.NativeCall(errors.PhaseBuild, "create_circuit", 0)
	}

	// The engine is authoritative for how many components survived its
	// internal reduction; its offset arrays are sized to that count.
	retained := nl.Retained
	codes := nl.RetainedCodes
	if out.compCount < len(retained) {
		retained = retained[:out.compCount]
		codes = codes[:out.compCount]
	}

	Logger().Debug("built circuit",
		zap.Int("elements", len(nl.Codes)),
		zap.Int("components", len(retained)),
		zap.Int("wires", len(nl.Wires)/4))

	return &Circuit{
		api:      api,
		handle:   out.handle,
		vecPos:   out.vecPos,
		chunkPos: out.chunkPos,
		elements: retained,
		codes:    codes,
	}, nil
}

// Elements returns the retained elements in engine component order.
func (c *Circuit) Elements() []phyengine.Element {
	out := make([]phyengine.Element, len(c.elements))
	copy(out, c.elements)
	return out
}

// Config selects the analysis mode and its kind-specific parameters.
type Config struct {
	Kind AnalysisKind

	// TransientStep and TransientStop must be positive for AnalysisTR
	// and AnalysisTROP; other kinds ignore them.
	TransientStep float64
	TransientStop float64

	// Omega is the angular frequency, required non-zero for AnalysisAC
	// and AnalysisACOP; other kinds ignore it.
	Omega float64
}

// Configure sets the analysis mode on the engine-side circuit. It may be
// called again between analysis passes.
func (c *Circuit) Configure(cfg Config) error {
	if c.closed {
		return errors.Closed(errors.PhaseConfigure, "Configure")
	}
	if !cfg.Kind.valid() {
		return errors.InvalidAnalysisKind(uint32(cfg.Kind))
	}
	if cfg.Kind.transient() && (cfg.TransientStep <= 0 || cfg.TransientStop <= 0) {
		return errors.MissingParameter(cfg.Kind.String(), "positive transient step and stop")
	}
	if cfg.Kind.frequency() && cfg.Omega == 0 {
		return errors.MissingParameter(cfg.Kind.String(), "angular frequency omega")
	}

	if rc := c.api.setAnalyzeType(c.handle, uint32(cfg.Kind)); rc != 0 {
		return errors.NativeCall(errors.PhaseConfigure, "circuit_set_analyze_type", rc)
	}
	if cfg.Kind.transient() {
		if rc := c.api.setTransient(c.handle, cfg.TransientStep, cfg.TransientStop); rc != 0 {
			return errors.NativeCall(errors.PhaseConfigure, "circuit_set_tr", rc)
		}
	}
	if cfg.Kind.frequency() {
		if rc := c.api.setOmega(c.handle, cfg.Omega); rc != 0 {
			return errors.NativeCall(errors.PhaseConfigure, "circuit_set_ac_omega", rc)
		}
	}
	return nil
}

// Analyze runs one analysis pass. The call blocks for the duration of the
// native computation. The circuit remains usable for further Configure,
// Analyze and Sample calls.
func (c *Circuit) Analyze() error {
	if c.closed {
		return errors.Closed(errors.PhaseAnalyze, "Analyze")
	}
	if rc := c.api.runAnalysis(c.handle); rc != 0 {
		return errors.NativeCall(errors.PhaseAnalyze, "circuit_analyze", rc)
	}
	return nil
}

// StepLogicClock advances the engine's logic clock by one step, settling
// sequential digital components after an analysis pass.
func (c *Circuit) StepLogicClock() error {
	if c.closed {
		return errors.Closed(errors.PhaseAnalyze, "StepLogicClock")
	}
	if rc := c.api.stepClock(c.handle); rc != 0 {
		return errors.NativeCall(errors.PhaseAnalyze, "circuit_digital_clk", rc)
	}
	return nil
}

// Sample reads the most recent analysis results and decodes them per
// retained element using the engine's offset arrays.
func (c *Circuit) Sample() (*Sample, error) {
	if c.closed {
		return nil, errors.Closed(errors.PhaseSample, "Sample")
	}

	compCount := len(c.elements)
	totalPins := 0
	for _, e := range c.elements {
		totalPins += e.PinCount()
	}
	totalBranches := 0
	for _, code := range c.codes {
		totalBranches += element.BranchCount(code)
	}
	// The branch table undercounts for some codes; the engine never
	// reports fewer currents in total than pins.
	if totalBranches < totalPins {
		totalBranches = totalPins
	}

	voltage := make([]float64, max(1, totalPins))
	voltageOrd := make([]uintptr, compCount+1)
	current := make([]float64, max(1, totalBranches))
	currentOrd := make([]uintptr, compCount+1)
	digital := make([]bool, max(1, totalPins))
	digitalOrd := make([]uintptr, compCount+1)

	rc := c.api.sample(c.handle, c.vecPos, c.chunkPos, compCount,
		voltage, voltageOrd, current, currentOrd, digital, digitalOrd)
	if rc != 0 {
		return nil, errors.NativeCall(errors.PhaseSample, "circuit_sample", rc)
	}

	s := &Sample{
		Elements:      make([]phyengine.Element, compCount),
		PinVoltage:    make(map[phyengine.Element][]float64, compCount),
		PinDigital:    make(map[phyengine.Element][]bool, compCount),
		BranchCurrent: make(map[phyengine.Element][]float64, compCount),
	}
	copy(s.Elements, c.elements)
	for i, e := range c.elements {
		s.PinVoltage[e] = sliceRange(voltage, voltageOrd[i], voltageOrd[i+1])
		s.PinDigital[e] = sliceRange(digital, digitalOrd[i], digitalOrd[i+1])
		s.BranchCurrent[e] = sliceRange(current, currentOrd[i], currentOrd[i+1])
	}
	return s, nil
}

// sliceRange copies buf[lo:hi), clamped to the buffer bounds.
func sliceRange[T any](buf []T, lo, hi uintptr) []T {
	if hi > uintptr(len(buf)) {
		hi = uintptr(len(buf))
	}
	if lo > hi {
		lo = hi
	}
	out := make([]T, hi-lo)
	copy(out, buf[lo:hi])
	return out
}

// Close releases the engine-side circuit and the two position buffers.
// Close is idempotent; after the first call every other operation fails
// with a handle-closed error.
func (c *Circuit) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.api.destroy(c.handle, c.vecPos, c.chunkPos)
	c.handle = 0
	c.vecPos = 0
	c.chunkPos = 0
	Logger().Debug("closed circuit", zap.Int("components", len(c.elements)))
	return nil
}
