package hostval

import (
	hostjson "github.com/wippyai/hostjson"
)

// Record is a value with a declared, ordered set of named fields. It
// exposes the reserved fields attribute the encoder probes for, so it is
// detected as a structured record when SerializeRecord is set and falls
// back to unrecognized otherwise.
type Record struct {
	typ    *hostjson.Type
	fields []string
	values map[string]hostjson.Value
}

// NewRecord creates an empty record of the given host type. Reuse one
// *hostjson.Type per record shape so classification stays a pure function
// of type identity.
func NewRecord(typ *hostjson.Type) *Record {
	return &Record{typ: typ, values: make(map[string]hostjson.Value)}
}

func (r *Record) Type() *hostjson.Type { return r.typ }

// Set declares a field (appending to the declaration order on first use)
// and assigns its value. Assigning a field that Declare already named
// keeps its original position.
func (r *Record) Set(name string, value hostjson.Value) *Record {
	if !r.declared(name) {
		r.fields = append(r.fields, name)
	}
	r.values[name] = value
	return r
}

// Declare adds field names to the declaration order without assigning
// values. Reading a declared-but-unassigned field fails, which the
// encoder treats as terminal.
func (r *Record) Declare(names ...string) *Record {
	for _, name := range names {
		if !r.declared(name) {
			r.fields = append(r.fields, name)
		}
	}
	return r
}

func (r *Record) declared(name string) bool {
	for _, f := range r.fields {
		if f == name {
			return true
		}
	}
	return false
}

func (r *Record) Attr(name string) (hostjson.Value, bool) {
	if name == hostjson.FieldsAttr {
		fields := make(Tuple, len(r.fields))
		for i, f := range r.fields {
			fields[i] = Str(f)
		}
		return fields, true
	}
	v, ok := r.values[name]
	return v, ok
}
