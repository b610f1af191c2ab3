package encoder

// Kind is the closed semantic classification assigned to a host value
// before encoding. Exactly one kind is assigned per value; assignment is a
// total function of the value's type identity and the option bitmask.
type Kind uint8

const (
	KindUnrecognized Kind = iota
	KindString
	KindInt
	KindList
	KindMap
	KindBool
	KindNone
	KindFloat
	KindTuple
	KindDateTime
	KindDate
	KindTime
	KindUUID
	KindRecord
)

var kindNames = [...]string{
	KindUnrecognized: "unrecognized",
	KindString:       "string",
	KindInt:          "int",
	KindList:         "list",
	KindMap:          "map",
	KindBool:         "bool",
	KindNone:         "none",
	KindFloat:        "float",
	KindTuple:        "tuple",
	KindDateTime:     "datetime",
	KindDate:         "date",
	KindTime:         "time",
	KindUUID:         "uuid",
	KindRecord:       "record",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsContainer reports whether values of this kind hold nested values and
// therefore count against the recursion depth bound.
func (k Kind) IsContainer() bool {
	switch k {
	case KindList, KindMap, KindTuple, KindRecord:
		return true
	default:
		return false
	}
}
