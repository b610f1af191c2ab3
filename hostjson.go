package hostjson

import "iter"

// Type is a host type descriptor. Descriptors are compared by pointer
// identity: two values share a type exactly when their Type() results are
// the same *Type. The canonical descriptors below cover the closed set of
// kinds the encoder understands natively; hosts mint descriptors for
// anything else with NewType.
type Type struct {
	name string
}

// NewType creates a host type descriptor. Each call returns a distinct
// identity, so hosts should create one descriptor per type and reuse it.
func NewType(name string) *Type {
	return &Type{name: name}
}

// Name returns the host-visible type name used in diagnostics.
func (t *Type) Name() string {
	return t.name
}

// Canonical type descriptors. Host values that want native JSON treatment
// must return one of these from Type().
var (
	TypeString   = NewType("string")
	TypeInt      = NewType("int")
	TypeList     = NewType("list")
	TypeMap      = NewType("map")
	TypeBool     = NewType("bool")
	TypeNone     = NewType("null")
	TypeFloat    = NewType("float")
	TypeTuple    = NewType("tuple")
	TypeDateTime = NewType("datetime")
	TypeDate     = NewType("date")
	TypeTime     = NewType("time")
	TypeUUID     = NewType("uuid")
)

// Value is an opaque handle to a host-managed value. The encoder borrows
// handles for the duration of one call and never mutates or retains them.
//
// A handle's Type determines which accessor interface the encoder asserts
// after classification. A value whose Type claims a canonical descriptor
// but which does not implement the matching accessor violates the contract
// and fails the call.
type Value interface {
	Type() *Type
}

// StringValue is the accessor for TypeString values. StringBytes reports
// ok=false when the host considers the underlying text invalidly encoded;
// the returned bytes are borrowed and must not be retained.
type StringValue interface {
	Value
	StringBytes() ([]byte, bool)
}

// IntValue is the accessor for TypeInt values. Int64 reports ok=false when
// the host's native integer does not fit a signed 64-bit value.
type IntValue interface {
	Value
	Int64() (int64, bool)
}

// FloatValue is the accessor for TypeFloat values.
type FloatValue interface {
	Value
	Float64() float64
}

// BoolValue is the accessor for TypeBool values.
type BoolValue interface {
	Value
	Bool() bool
}

// SequenceValue is the accessor for TypeList and TypeTuple values, and for
// the field-name sequence of structured records. Iteration order is the
// host's insertion order.
type SequenceValue interface {
	Value
	Len() int
	Index(i int) Value
}

// MappingValue is the accessor for TypeMap values. Entries yields
// key/value pairs in insertion order. Keys are handles themselves so that
// non-string keys can be detected and rejected.
type MappingValue interface {
	Value
	Entries() iter.Seq2[Value, Value]
}

// AttrValue exposes attribute-by-name lookup. It serves two purposes:
// capability probing during classification (the FieldsAttr probe) and
// field reads while flattening structured records. A failed host-level
// lookup is reported as absence (ok=false), never as an error.
type AttrValue interface {
	Value
	Attr(name string) (Value, bool)
}

// FieldsAttr is the reserved attribute name probed to detect structured
// records. Its value must be a SequenceValue of field-name strings in
// declaration order.
const FieldsAttr = "__fields__"

// DateParts holds a calendar date. Year is 1-9999, Month 1-12, Day 1-31.
// All components must be non-negative; the formatter zero-pads and does
// not render a sign.
type DateParts struct {
	Year  int
	Month int
	Day   int
}

// TimeParts holds a wall-clock time with microsecond resolution. All
// components must be non-negative.
type TimeParts struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// Zone classifies the timezone attached to a date-time value. Only UTC and
// fixed offsets have a canonical rendering; ZoneUnsupported marks zones the
// host cannot reduce to a fixed offset.
type Zone uint8

const (
	ZoneNaive Zone = iota
	ZoneUTC
	ZoneFixed
	ZoneUnsupported
)

// DateValue is the accessor for TypeDate values.
type DateValue interface {
	Value
	DateParts() DateParts
}

// TimeValue is the accessor for TypeTime values. HasZone reports whether
// the host attached timezone information; bare times with a zone are
// rejected during encoding.
type TimeValue interface {
	Value
	TimeParts() TimeParts
	HasZone() bool
}

// DateTimeValue is the accessor for TypeDateTime values. Zone returns the
// zone classification and, for ZoneFixed, the offset east of UTC in
// seconds.
type DateTimeValue interface {
	Value
	DateParts() DateParts
	TimeParts() TimeParts
	Zone() (Zone, int)
}

// UUIDValue is the accessor for TypeUUID values. The bytes are the
// big-endian 128-bit identifier.
type UUIDValue interface {
	Value
	UUIDBytes() [16]byte
}

// Option is the immutable configuration bitmask for one encode call.
// Options combine with bitwise OR.
type Option uint8

const (
	// StrictInteger restricts integers to the range exactly representable
	// by an IEEE-754 double, [-(2^53)+1, (2^53)-1].
	StrictInteger Option = 1

	// SerializeRecord enables structured-record detection via the
	// FieldsAttr probe.
	SerializeRecord Option = 1 << 4

	// SerializeUUID enables native rendering of TypeUUID values.
	SerializeUUID Option = 1 << 5
)

// Has reports whether all bits of flag are set.
func (o Option) Has(flag Option) bool {
	return o&flag == flag
}

// Fallback converts a value of unrecognized type into a replacement value,
// which is then classified and encoded in its place. Returning an error
// aborts the call. Returning (nil, nil) signals the hook cannot convert
// the value. The hook is borrowed for one call and may be invoked
// recursively up to the fallback-call bound.
type Fallback func(Value) (Value, error)
