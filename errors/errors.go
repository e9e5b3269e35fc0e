package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the bridge the error occurred
type Phase string

const (
	PhaseResolve   Phase = "resolve"   // locating the engine shared library
	PhaseEncode    Phase = "encode"    // element to engine code and properties
	PhaseBuild     Phase = "build"     // netlist flattening and circuit construction
	PhaseConfigure Phase = "configure" // analysis configuration
	PhaseAnalyze   Phase = "analyze"   // analysis execution
	PhaseSample    Phase = "sample"    // result sampling and decoding
)

// Kind categorizes the error
type Kind string

const (
	KindEngineNotAvailable  Kind = "engine_not_available"
	KindEmptyCircuit        Kind = "empty_circuit"
	KindUnsupportedElement  Kind = "unsupported_element"
	KindMissingProperty     Kind = "missing_property"
	KindInvalidPropertyType Kind = "invalid_property_type"
	KindInvalidProperty     Kind = "invalid_property"
	KindArityMismatch       Kind = "arity_mismatch"
	KindInvalidAnalysisKind Kind = "invalid_analysis_kind"
	KindMissingParameter    Kind = "missing_parameter"
	KindNativeCall          Kind = "native_call"
	KindHandleClosed        Kind = "handle_closed"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Element  string // model ID of the offending element, if any
	Property string // property key involved, if any
	Call     string // foreign entry point that failed, if any
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Call != "" {
		b.WriteString(": ")
		b.WriteString(e.Call)
	}

	if e.Element != "" {
		b.WriteString(": element ")
		b.WriteString(e.Element)
		if e.Property != "" {
			b.WriteString(" property ")
			b.WriteString(e.Property)
		}
	} else if e.Property != "" {
		b.WriteString(": property ")
		b.WriteString(e.Property)
	}

	if e.Detail != "" {
		if e.Call != "" || e.Element != "" || e.Property != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Element sets the model ID of the offending element
func (b *Builder) Element(modelID string) *Builder {
	b.err.Element = modelID
	return b
}

// Property sets the property key involved
func (b *Builder) Property(key string) *Builder {
	b.err.Property = key
	return b
}

// Call sets the foreign entry point that failed
func (b *Builder) Call(name string) *Builder {
	b.err.Call = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// EngineNotAvailable reports that the engine shared library could not be
// located. searched lists every location that was tried.
func EngineNotAvailable(searched []string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindEngineNotAvailable,
		Detail: fmt.Sprintf("Phy-Engine shared library not found; searched %s", strings.Join(searched, ", ")),
		Value:  searched,
	}
}

// EmptyCircuit reports a build attempt over zero elements
func EmptyCircuit() *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindEmptyCircuit,
		Detail: "circuit has no elements",
	}
}

// UnsupportedElement reports a model ID with no engine code mapping
func UnsupportedElement(modelID string) *Error {
	return &Error{
		Phase:   PhaseEncode,
		Kind:    KindUnsupportedElement,
		Element: modelID,
		Detail:  "no engine code mapping for this element",
	}
}

// MissingProperty reports a required property that is absent or unresolved
func MissingProperty(modelID, key string) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindMissingProperty,
		Element:  modelID,
		Property: key,
		Detail:   "required property is absent or unresolved",
	}
}

// InvalidPropertyType reports a property value that is not numeric
func InvalidPropertyType(modelID, key string, value any) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindInvalidPropertyType,
		Element:  modelID,
		Property: key,
		Detail:   fmt.Sprintf("value %v (%T) is not numeric", value, value),
		Value:    value,
	}
}

// InvalidProperty reports a property value outside its valid domain
func InvalidProperty(modelID, key, detail string) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindInvalidProperty,
		Element:  modelID,
		Property: key,
		Detail:   detail,
	}
}

// ArityMismatch reports a property count that differs from the code table's
// declared arity
func ArityMismatch(modelID string, code int32, want, got int) *Error {
	return &Error{
		Phase:   PhaseBuild,
		Kind:    KindArityMismatch,
		Element: modelID,
		Detail:  fmt.Sprintf("code %d expects %d properties, got %d", code, want, got),
		Value:   code,
	}
}

// InvalidAnalysisKind reports an unrecognized analysis kind
func InvalidAnalysisKind(value any) *Error {
	return &Error{
		Phase:  PhaseConfigure,
		Kind:   KindInvalidAnalysisKind,
		Detail: fmt.Sprintf("unknown analysis kind: %v", value),
		Value:  value,
	}
}

// MissingParameter reports an absent kind-specific configuration parameter
func MissingParameter(kind, param string) *Error {
	return &Error{
		Phase:  PhaseConfigure,
		Kind:   KindMissingParameter,
		Detail: fmt.Sprintf("%s analysis requires %s", kind, param),
	}
}

// NativeCall reports a foreign call that returned a failure status or a
// null handle
func NativeCall(phase Phase, call string, rc int32) *Error {
	detail := "returned NULL"
	if rc != 0 {
		detail = fmt.Sprintf("rc=%d", rc)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindNativeCall,
		Call:   call,
		Detail: detail,
		Value:  rc,
	}
}

// Closed reports an operation attempted after the circuit was released
func Closed(phase Phase, op string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindHandleClosed,
		Detail: fmt.Sprintf("%s called on a closed circuit", op),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
