package phyengine

// Element is the read-only capability the bridge requires from a circuit
// component. Implementations are expected to be pointer-shaped: element
// values are used as map keys for wire resolution and result decoding, so
// two distinct components must never compare equal.
type Element interface {
	// ModelID returns the stable identifier of the component's type,
	// e.g. "Resistor" or "And Gate". It selects the engine code.
	ModelID() string

	// Property looks up a named scalar property. The second return is
	// false when the property is absent or still an unresolved
	// placeholder in the hosting save format.
	Property(name string) (any, bool)

	// PinCount returns the number of pins the component exposes, in the
	// order the engine reports per-pin results.
	PinCount() int
}

// Endpoint is one end of a wire: a component pin.
type Endpoint struct {
	Element Element
	Pin     int
}

// Wire connects two component pins. Direction carries no meaning; Source
// and Target only fix the emission order of the endpoint quadruple.
type Wire struct {
	Source Endpoint
	Target Endpoint
}
