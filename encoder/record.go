package encoder

import (
	hostjson "github.com/wippyai/hostjson"
	"github.com/wippyai/hostjson/errors"
)

// encodeRecord flattens a structured record into an ordered JSON object:
// the reserved fields attribute supplies the field names in declaration
// order, and each name is read back through attribute lookup. Any field
// that cannot be read is terminal for the call.
func encodeRecord(sink Sink, v hostjson.Value, st state) error {
	if st.depth == recursionLimit {
		return errors.RecursionLimit()
	}
	a, ok := v.(hostjson.AttrValue)
	if !ok {
		return errors.Contract(errors.PhaseEncode, v.Type().Name(), "AttrValue")
	}
	fieldsVal, ok := a.Attr(hostjson.FieldsAttr)
	if !ok {
		// Classification saw the attribute; losing it mid-call means the
		// host mutated the value during encoding.
		return errors.FieldMissing(v.Type().Name(), hostjson.FieldsAttr)
	}
	fields, ok := fieldsVal.(hostjson.SequenceValue)
	if !ok {
		return errors.Contract(errors.PhaseEncode, v.Type().Name(), "SequenceValue for "+hostjson.FieldsAttr)
	}

	child := st
	child.depth++

	sink.BeginObject()
	for i, n := 0, fields.Len(); i < n; i++ {
		if i > 0 {
			sink.Comma()
		}

		nameVal, ok := fields.Index(i).(hostjson.StringValue)
		if !ok {
			return errors.Contract(errors.PhaseEncode, v.Type().Name(), "StringValue field name")
		}
		name, ok := nameVal.StringBytes()
		if !ok {
			return errors.InvalidString(errors.PhaseEncode)
		}
		sink.String(name)
		sink.Colon()

		fieldVal, ok := a.Attr(string(name))
		if !ok {
			return errors.FieldMissing(v.Type().Name(), string(name))
		}
		if err := encodeValue(sink, fieldVal, child); err != nil {
			return err
		}
	}
	sink.EndObject()
	return nil
}
