package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseClassify Phase = "classify" // kind assignment and capability probes
	PhaseEncode   Phase = "encode"   // graph traversal and token emission
	PhaseFormat   Phase = "format"   // temporal and identifier rendering
	PhaseFallback Phase = "fallback" // user-supplied fallback hook
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidString   Kind = "invalid_string"
	KindIntegerOverflow Kind = "integer_overflow"
	KindIntegerRange    Kind = "integer_range"
	KindNonStringKey    Kind = "non_string_key"
	KindRecursionLimit  Kind = "recursion_limit"
	KindFallbackLimit   Kind = "fallback_limit"
	KindFallbackFailed  Kind = "fallback_failed"
	KindUnsupportedType Kind = "unsupported_type"
	KindTimeHasZone     Kind = "time_has_zone"
	KindUnsupportedZone Kind = "unsupported_zone"
	KindFieldMissing    Kind = "field_missing"
	KindContract        Kind = "contract"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	TypeName string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.TypeName != "" {
		b.WriteString(": host type ")
		b.WriteString(e.TypeName)
	}

	if e.Detail != "" {
		if e.TypeName != "" {
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

// Path sets the location path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// TypeName sets the offending host type name
func (b *Builder) TypeName(t string) *Builder {
	b.err.TypeName = t
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

// InvalidString reports text the host marked as invalidly encoded.
func InvalidString(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidString,
		Detail: "string is not valid UTF-8",
	}
}

// IntegerOverflow reports an integer beyond the signed 64-bit range.
func IntegerOverflow(typeName string) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindIntegerOverflow,
		TypeName: typeName,
		Detail:   "integer exceeds 64-bit range",
	}
}

// IntegerRange reports an integer outside the strict 53-bit range.
func IntegerRange(value int64) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindIntegerRange,
		Detail: "integer exceeds 53-bit range",
		Value:  value,
	}
}

// NonStringKey reports a mapping key that is not a string.
func NonStringKey(typeName string) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindNonStringKey,
		TypeName: typeName,
		Detail:   "map key must be a string",
	}
}

// RecursionLimit reports that structural nesting exceeded the depth bound.
func RecursionLimit() *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindRecursionLimit,
		Detail: "recursion limit reached",
	}
}

// FallbackLimit reports that the fallback hook was invoked too many times.
func FallbackLimit() *Error {
	return &Error{
		Phase:  PhaseFallback,
		Kind:   KindFallbackLimit,
		Detail: "fallback serializer exceeds recursion limit",
	}
}

// FallbackFailed reports an error raised by the fallback hook.
func FallbackFailed(typeName string, cause error) *Error {
	return &Error{
		Phase:    PhaseFallback,
		Kind:     KindFallbackFailed,
		TypeName: typeName,
		Detail:   "fallback hook raised an error",
		Cause:    cause,
	}
}

// NotSerializable reports a value of unrecognized type with no usable
// fallback.
func NotSerializable(typeName string) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindUnsupportedType,
		TypeName: typeName,
		Detail:   "type is not JSON serializable",
	}
}

// TimeHasZone reports a bare time value carrying timezone information.
func TimeHasZone() *Error {
	return &Error{
		Phase:  PhaseFormat,
		Kind:   KindTimeHasZone,
		Detail: "time value must not carry timezone information",
	}
}

// UnsupportedZone reports a date-time zone with no canonical rendering.
func UnsupportedZone() *Error {
	return &Error{
		Phase:  PhaseFormat,
		Kind:   KindUnsupportedZone,
		Detail: "timezone is not supported: use UTC or a fixed offset",
	}
}

// FieldMissing reports a structured-record field that could not be read.
func FieldMissing(typeName, field string) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindFieldMissing,
		TypeName: typeName,
		Detail:   fmt.Sprintf("record field %q could not be read", field),
	}
}

// Contract reports a handle whose type descriptor and accessor surface
// disagree.
func Contract(phase Phase, typeName, accessor string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindContract,
		TypeName: typeName,
		Detail:   fmt.Sprintf("handle does not implement %s", accessor),
	}
}
