package engine

import (
	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/physicslab/phyengine/errors"
)

// createOut carries the outputs of create_circuit: the opaque circuit
// handle, the two engine-allocated position buffers, and the number of
// components the engine retained.
type createOut struct {
	handle    uintptr
	vecPos    uintptr
	chunkPos  uintptr
	compCount int
}

// engineAPI is the foreign surface of the engine library. The circuit
// lifecycle runs against this interface so it can be exercised with an
// in-process fake.
type engineAPI interface {
	createCircuit(codes, wires []int32, props []float64) (createOut, bool)
	setAnalyzeType(handle uintptr, kind uint32) int32
	setTransient(handle uintptr, step, stop float64) int32
	setOmega(handle uintptr, omega float64) int32
	runAnalysis(handle uintptr) int32
	stepClock(handle uintptr) int32
	sample(handle, vecPos, chunkPos uintptr, compCount int,
		voltage []float64, voltageOrd []uintptr,
		current []float64, currentOrd []uintptr,
		digital []bool, digitalOrd []uintptr) int32
	destroy(handle, vecPos, chunkPos uintptr)
}

// libFuncs holds the registered foreign entry points. C size_t maps to
// uintptr, int to int32, double to float64; slice arguments are passed as
// pointers to their first element, nil slices as NULL.
type libFuncs struct {
	createCircuit  func(codes []int32, codeCount uintptr, wires []int32, wireCount uintptr, props []float64, vecPos, chunkPos *uintptr, compCount *uintptr) uintptr
	destroyCircuit func(handle, vecPos, chunkPos uintptr)
	setAnalyzeType func(handle uintptr, kind uint32) int32
	setTransient   func(handle uintptr, step, stop float64) int32
	setACOmega     func(handle uintptr, omega float64) int32
	analyze        func(handle uintptr) int32
	digitalClk     func(handle uintptr) int32
	sample         func(handle, vecPos, chunkPos, compCount uintptr,
		voltage []float64, voltageOrd []uintptr,
		current []float64, currentOrd []uintptr,
		digital []bool, digitalOrd []uintptr) int32
}

// Library is a loaded Phy-Engine shared library. One Library may serve any
// number of circuits; each circuit is closed independently. The library
// itself stays mapped for the process lifetime.
type Library struct {
	path string
	fns  libFuncs
}

// Open loads the engine shared library. An empty path runs the discovery
// chain (see Locate).
func Open(path string) (*Library, error) {
	resolved, err := Locate(path)
	if err != nil {
		return nil, err
	}

	handle, err := dlopen(resolved)
	if err != nil {
		return nil, errors.New(errors.PhaseResolve, errors.KindEngineNotAvailable).
			Detail("load %s", resolved).
			Cause(err).
			Build()
	}

	lib := &Library{path: resolved}
	if err := lib.register(handle); err != nil {
		return nil, err
	}

	Logger().Debug("loaded engine library", zap.String("path", resolved))
	return lib, nil
}

// Path returns the resolved library path.
func (l *Library) Path() string { return l.path }

// register binds all foreign entry points. RegisterLibFunc panics when a
// symbol is missing; fold that into an error naming the symbol.
func (l *Library) register(handle uintptr) (err error) {
	symbol := ""
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.PhaseResolve, errors.KindEngineNotAvailable).
				Detail("bind %s: %v", symbol, r).
				Build()
		}
	}()

	bind := func(fptr any, name string) {
		symbol = name
		purego.RegisterLibFunc(fptr, handle, name)
	}
	bind(&l.fns.createCircuit, "create_circuit")
	bind(&l.fns.destroyCircuit, "destroy_circuit")
	bind(&l.fns.setAnalyzeType, "circuit_set_analyze_type")
	bind(&l.fns.setTransient, "circuit_set_tr")
	bind(&l.fns.setACOmega, "circuit_set_ac_omega")
	bind(&l.fns.analyze, "circuit_analyze")
	bind(&l.fns.digitalClk, "circuit_digital_clk")
	bind(&l.fns.sample, "circuit_sample")
	return nil
}

// engineAPI implementation over the registered entry points.

func (l *Library) createCircuit(codes, wires []int32, props []float64) (createOut, bool) {
	var out createOut
	var count uintptr
	handle := l.fns.createCircuit(
		codes, uintptr(len(codes)),
		wires, uintptr(len(wires)),
		props,
		&out.vecPos, &out.chunkPos, &count,
	)
	if handle == 0 {
		return createOut{}, false
	}
	out.handle = handle
	out.compCount = int(count)
	return out, true
}

func (l *Library) setAnalyzeType(handle uintptr, kind uint32) int32 {
	return l.fns.setAnalyzeType(handle, kind)
}

func (l *Library) setTransient(handle uintptr, step, stop float64) int32 {
	return l.fns.setTransient(handle, step, stop)
}

func (l *Library) setOmega(handle uintptr, omega float64) int32 {
	return l.fns.setACOmega(handle, omega)
}

func (l *Library) runAnalysis(handle uintptr) int32 {
	return l.fns.analyze(handle)
}

func (l *Library) stepClock(handle uintptr) int32 {
	return l.fns.digitalClk(handle)
}

func (l *Library) sample(handle, vecPos, chunkPos uintptr, compCount int,
	voltage []float64, voltageOrd []uintptr,
	current []float64, currentOrd []uintptr,
	digital []bool, digitalOrd []uintptr) int32 {
	return l.fns.sample(handle, vecPos, chunkPos, uintptr(compCount),
		voltage, voltageOrd, current, currentOrd, digital, digitalOrd)
}

func (l *Library) destroy(handle, vecPos, chunkPos uintptr) {
	l.fns.destroyCircuit(handle, vecPos, chunkPos)
}
