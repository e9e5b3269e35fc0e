package netlist

import (
	"github.com/physicslab/phyengine"
	"github.com/physicslab/phyengine/element"
	"github.com/physicslab/phyengine/errors"
)

// Netlist is the flattened form of one circuit, ready for the engine
// constructor.
type Netlist struct {
	// Codes holds one engine code per input element, in input order.
	Codes []int32

	// Properties is the concatenation of each non-ground element's scalar
	// properties, in input order. Each block's length equals the code's
	// declared arity.
	Properties []float64

	// Wires holds flat endpoint quadruples: source element index, source
	// pin, target element index, target pin. Indices refer to positions
	// in the input element sequence, not the retained list.
	Wires []int32

	// Retained is the ordered subsequence of input elements with
	// non-ground codes. It is provisional until the engine reports its
	// own component count after construction.
	Retained []phyengine.Element

	// RetainedCodes holds the engine code of each retained element.
	RetainedCodes []int32
}

// Build flattens elements and wires into a Netlist.
//
// A wire whose endpoint does not resolve to an element in the input
// sequence is dropped without error. That leniency can mask a caller bug
// and may become a hard failure; TestBuild_UnresolvableWireDropped pins the
// current behavior so a change is deliberate.
func Build(elements []phyengine.Element, wires []phyengine.Wire) (*Netlist, error) {
	if len(elements) == 0 {
		return nil, errors.EmptyCircuit()
	}

	index := make(map[phyengine.Element]int, len(elements))
	for i, e := range elements {
		index[e] = i
	}

	nl := &Netlist{
		Codes: make([]int32, 0, len(elements)),
	}

	for _, e := range elements {
		code, props, err := element.Encode(e)
		if err != nil {
			return nil, err
		}
		nl.Codes = append(nl.Codes, code)
		if code == element.CodeGround {
			continue
		}

		want, ok := element.PropArity(code)
		if !ok {
			return nil, errors.New(errors.PhaseBuild, errors.KindUnsupportedElement).
				Element(e.ModelID()).
				Detail("no property arity entry for engine code %d", code).
				Value(code).
				Build()
		}
		if len(props) != want {
			return nil, errors.ArityMismatch(e.ModelID(), code, want, len(props))
		}

		nl.Properties = append(nl.Properties, props...)
		nl.Retained = append(nl.Retained, e)
		nl.RetainedCodes = append(nl.RetainedCodes, code)
	}

	for _, w := range wires {
		si, ok := index[w.Source.Element]
		if !ok {
			continue
		}
		ti, ok := index[w.Target.Element]
		if !ok {
			continue
		}
		nl.Wires = append(nl.Wires, int32(si), int32(w.Source.Pin), int32(ti), int32(w.Target.Pin))
	}

	return nl, nil
}
