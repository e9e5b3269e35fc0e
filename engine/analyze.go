package engine

import (
	"github.com/physicslab/phyengine"
	"github.com/physicslab/phyengine/netlist"
)

type options struct {
	libPath string
	kind    AnalysisKind
	trStep  float64
	trStop  float64
	omega   float64
	clock   bool
	api     engineAPI
}

// Option configures the one-shot Analyze entry point.
type Option func(*options)

// WithLibraryPath uses an explicit engine library path instead of the
// discovery chain.
func WithLibraryPath(path string) Option {
	return func(o *options) { o.libPath = path }
}

// WithKind selects the analysis mode. The default is AnalysisDC.
func WithKind(k AnalysisKind) Option {
	return func(o *options) { o.kind = k }
}

// WithTransient sets the transient step and stop times used by AnalysisTR
// and AnalysisTROP.
func WithTransient(step, stop float64) Option {
	return func(o *options) {
		o.trStep = step
		o.trStop = stop
	}
}

// WithOmega sets the angular frequency used by AnalysisAC and AnalysisACOP.
func WithOmega(omega float64) Option {
	return func(o *options) { o.omega = omega }
}

// WithLogicClock advances the logic clock once after the analysis pass,
// settling sequential digital components.
func WithLogicClock() Option {
	return func(o *options) { o.clock = true }
}

// withAPI substitutes the foreign surface. Test hook.
func withAPI(api engineAPI) Option {
	return func(o *options) { o.api = api }
}

// Analyze flattens the circuit, builds it in the engine, runs one analysis
// pass, and samples the results. The engine-side circuit is released on
// every path; a build failure leaves nothing to release.
func Analyze(elements []phyengine.Element, wires []phyengine.Wire, opts ...Option) (*Sample, error) {
	o := options{kind: AnalysisDC, trStep: 1e-6, trStop: 1e-6}
	for _, opt := range opts {
		opt(&o)
	}

	nl, err := netlist.Build(elements, wires)
	if err != nil {
		return nil, err
	}

	api := o.api
	if api == nil {
		lib, err := Open(o.libPath)
		if err != nil {
			return nil, err
		}
		api = lib
	}

	c, err := buildCircuit(api, nl)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	cfg := Config{
		Kind:          o.kind,
		TransientStep: o.trStep,
		TransientStop: o.trStop,
		Omega:         o.omega,
	}
	if err := c.Configure(cfg); err != nil {
		return nil, err
	}
	if err := c.Analyze(); err != nil {
		return nil, err
	}
	if o.clock {
		if err := c.StepLogicClock(); err != nil {
			return nil, err
		}
	}
	return c.Sample()
}
