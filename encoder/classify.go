package encoder

import (
	hostjson "github.com/wippyai/hostjson"
)

// Classify maps a host value to its semantic kind under the given options.
// It is pure and O(1): a fixed-priority chain of type-descriptor identity
// comparisons, never a subtype or duck-typed probe. The two opt-in kinds
// are the only exceptions: uuid requires its flag, and record detection
// runs an attribute-presence probe for hostjson.FieldsAttr, where a failed
// host-level lookup counts as absence and falls through to unrecognized.
func Classify(v hostjson.Value, opts hostjson.Option) Kind {
	switch v.Type() {
	case hostjson.TypeString:
		return KindString
	case hostjson.TypeInt:
		return KindInt
	case hostjson.TypeList:
		return KindList
	case hostjson.TypeMap:
		return KindMap
	case hostjson.TypeBool:
		return KindBool
	case hostjson.TypeNone:
		return KindNone
	case hostjson.TypeFloat:
		return KindFloat
	case hostjson.TypeTuple:
		return KindTuple
	case hostjson.TypeDateTime:
		return KindDateTime
	case hostjson.TypeDate:
		return KindDate
	case hostjson.TypeTime:
		return KindTime
	}

	if opts.Has(hostjson.SerializeUUID) && v.Type() == hostjson.TypeUUID {
		return KindUUID
	}

	if opts.Has(hostjson.SerializeRecord) {
		if a, ok := v.(hostjson.AttrValue); ok {
			if _, present := a.Attr(hostjson.FieldsAttr); present {
				return KindRecord
			}
		}
	}

	return KindUnrecognized
}
