package engine

import (
	"slices"
)

// fakeComp scripts the per-component results the fake engine reports.
type fakeComp struct {
	voltages []float64
	digitals []bool
	currents []float64
}

// fakeEngine implements engineAPI in-process so the circuit lifecycle and
// the sample decoding can be tested without the native library.
type fakeEngine struct {
	comps     []fakeComp
	compCount int // reported by create_circuit; 0 means len(comps)

	failCreate bool
	rcByCall   map[string]int32

	createdCodes []int32
	createdWires []int32
	createdProps []float64

	kind   uint32
	trStep float64
	trStop float64
	omega  float64

	analyzeCalls int
	clockCalls   int
	destroyCalls int

	lastVoltageLen int
	lastCurrentLen int
	lastDigitalLen int
	lastVoltageBuf []float64
}

const (
	fakeHandle   uintptr = 0xC1
	fakeVecPos   uintptr = 0xA1
	fakeChunkPos uintptr = 0xB2
)

func (f *fakeEngine) rc(call string) int32 {
	return f.rcByCall[call]
}

func (f *fakeEngine) createCircuit(codes, wires []int32, props []float64) (createOut, bool) {
	if f.failCreate {
		return createOut{}, false
	}
	f.createdCodes = slices.Clone(codes)
	f.createdWires = slices.Clone(wires)
	f.createdProps = slices.Clone(props)
	n := f.compCount
	if n == 0 {
		n = len(f.comps)
	}
	return createOut{handle: fakeHandle, vecPos: fakeVecPos, chunkPos: fakeChunkPos, compCount: n}, true
}

func (f *fakeEngine) setAnalyzeType(handle uintptr, kind uint32) int32 {
	f.kind = kind
	return f.rc("circuit_set_analyze_type")
}

func (f *fakeEngine) setTransient(handle uintptr, step, stop float64) int32 {
	f.trStep, f.trStop = step, stop
	return f.rc("circuit_set_tr")
}

func (f *fakeEngine) setOmega(handle uintptr, omega float64) int32 {
	f.omega = omega
	return f.rc("circuit_set_ac_omega")
}

func (f *fakeEngine) runAnalysis(handle uintptr) int32 {
	f.analyzeCalls++
	return f.rc("circuit_analyze")
}

func (f *fakeEngine) stepClock(handle uintptr) int32 {
	f.clockCalls++
	return f.rc("circuit_digital_clk")
}

func (f *fakeEngine) sample(handle, vecPos, chunkPos uintptr, compCount int,
	voltage []float64, voltageOrd []uintptr,
	current []float64, currentOrd []uintptr,
	digital []bool, digitalOrd []uintptr) int32 {
	if rc := f.rc("circuit_sample"); rc != 0 {
		return rc
	}
	f.lastVoltageLen = len(voltage)
	f.lastCurrentLen = len(current)
	f.lastDigitalLen = len(digital)
	f.lastVoltageBuf = voltage

	var vo, co, do uintptr
	for i := 0; i < compCount && i < len(f.comps); i++ {
		comp := f.comps[i]
		voltageOrd[i] = vo
		currentOrd[i] = co
		digitalOrd[i] = do
		vo += uintptr(copy(voltage[vo:], comp.voltages))
		co += uintptr(copy(current[co:], comp.currents))
		for _, d := range comp.digitals {
			digital[do] = d
			do++
		}
	}
	voltageOrd[compCount] = vo
	currentOrd[compCount] = co
	digitalOrd[compCount] = do
	return 0
}

func (f *fakeEngine) destroy(handle, vecPos, chunkPos uintptr) {
	f.destroyCalls++
}

// testElement is a minimal phyengine.Element for engine tests.
type testElement struct {
	model string
	props map[string]any
	pins  int
}

func (e *testElement) ModelID() string { return e.model }

func (e *testElement) Property(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

func (e *testElement) PinCount() int { return e.pins }

func ground() *testElement {
	return &testElement{model: "Ground Component", pins: 1}
}

func resistor(ohms float64) *testElement {
	return &testElement{model: "Resistor", props: map[string]any{"电阻": ohms}, pins: 2}
}

func battery(volts float64) *testElement {
	return &testElement{model: "Battery Source", props: map[string]any{"电压": volts}, pins: 2}
}

func logicInput(on bool) *testElement {
	return &testElement{model: "Logic Input", props: map[string]any{"开关": on}, pins: 1}
}

func logicOutput() *testElement {
	return &testElement{model: "Logic Output", pins: 1}
}

func andGate() *testElement {
	return &testElement{model: "And Gate", pins: 3}
}
