// Package errors provides structured error types for the Phy-Engine bridge.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes context specific to the bridge:
// the offending element's model ID, the property key involved, the foreign
// entry point that failed, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindMissingProperty).
//		Element("Resistor").
//		Property("电阻").
//		Detail("required property is absent").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedElement("Buzzer")
//	err := errors.NativeCall(errors.PhaseBuild, "create_circuit", 0)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when their Phase and Kind agree,
// so callers can test for a category without constructing the full context.
package errors
