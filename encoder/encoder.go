package encoder

import (
	"go.uber.org/zap"

	hostjson "github.com/wippyai/hostjson"
	"github.com/wippyai/hostjson/errors"
)

// https://tools.ietf.org/html/rfc7159#section-6
// "[-(2**53)+1, (2**53)-1]"
const (
	strictIntMin = -9007199254740991
	strictIntMax = 9007199254740991
)

// recursionLimit bounds both structural nesting depth and fallback-hook
// invocations. The two counters are independent but share the constant.
const recursionLimit = 255

// state is the per-call traversal state, passed by value so depth reflects
// true structural depth along the current path.
type state struct {
	fallback      hostjson.Fallback
	opts          hostjson.Option
	depth         uint8
	fallbackCalls uint8
}

// Encode serializes the value graph rooted at root into one complete
// minified JSON document. The fallback hook, if non-nil, is consulted for
// values of unrecognized type. On any error the partial output is
// discarded and the error returned instead.
func Encode(root hostjson.Value, fallback hostjson.Fallback, opts hostjson.Option) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := encodeValue(buf, root, state{fallback: fallback, opts: opts}); err != nil {
		Logger().Debug("encode failed",
			zap.String("rootType", root.Type().Name()),
			zap.Error(err))
		return nil, err
	}

	// Copy out since the buffer returns to the pool
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// EncodeTo streams the token sequence for root into a caller-supplied
// sink. The sink's contents are unspecified after an error.
func EncodeTo(sink Sink, root hostjson.Value, fallback hostjson.Fallback, opts hostjson.Option) error {
	return encodeValue(sink, root, state{fallback: fallback, opts: opts})
}

func encodeValue(sink Sink, v hostjson.Value, st state) error {
	switch Classify(v, st.opts) {
	case KindString:
		s, ok := v.(hostjson.StringValue)
		if !ok {
			return errors.Contract(errors.PhaseEncode, v.Type().Name(), "StringValue")
		}
		text, ok := s.StringBytes()
		if !ok {
			return errors.InvalidString(errors.PhaseEncode)
		}
		sink.String(text)
		return nil

	case KindInt:
		iv, ok := v.(hostjson.IntValue)
		if !ok {
			return errors.Contract(errors.PhaseEncode, v.Type().Name(), "IntValue")
		}
		n, ok := iv.Int64()
		if !ok {
			return errors.IntegerOverflow(v.Type().Name())
		}
		if st.opts.Has(hostjson.StrictInteger) && (n > strictIntMax || n < strictIntMin) {
			return errors.IntegerRange(n)
		}
		sink.Int64(n)
		return nil

	case KindNone:
		sink.Null()
		return nil

	case KindFloat:
		f, ok := v.(hostjson.FloatValue)
		if !ok {
			return errors.Contract(errors.PhaseEncode, v.Type().Name(), "FloatValue")
		}
		sink.Float64(f.Float64())
		return nil

	case KindBool:
		b, ok := v.(hostjson.BoolValue)
		if !ok {
			return errors.Contract(errors.PhaseEncode, v.Type().Name(), "BoolValue")
		}
		sink.Bool(b.Bool())
		return nil

	case KindDateTime:
		return encodeDateTime(sink, v)

	case KindDate:
		return encodeDate(sink, v)

	case KindTime:
		return encodeTime(sink, v)

	case KindUUID:
		return encodeUUID(sink, v)

	case KindList, KindTuple:
		return encodeSequence(sink, v, st)

	case KindMap:
		return encodeMapping(sink, v, st)

	case KindRecord:
		return encodeRecord(sink, v, st)

	default:
		return encodeFallback(sink, v, st)
	}
}

func encodeSequence(sink Sink, v hostjson.Value, st state) error {
	if st.depth == recursionLimit {
		return errors.RecursionLimit()
	}
	seq, ok := v.(hostjson.SequenceValue)
	if !ok {
		return errors.Contract(errors.PhaseEncode, v.Type().Name(), "SequenceValue")
	}

	child := st
	child.depth++

	sink.BeginArray()
	for i, n := 0, seq.Len(); i < n; i++ {
		if i > 0 {
			sink.Comma()
		}
		if err := encodeValue(sink, seq.Index(i), child); err != nil {
			return err
		}
	}
	sink.EndArray()
	return nil
}

func encodeMapping(sink Sink, v hostjson.Value, st state) error {
	if st.depth == recursionLimit {
		return errors.RecursionLimit()
	}
	m, ok := v.(hostjson.MappingValue)
	if !ok {
		return errors.Contract(errors.PhaseEncode, v.Type().Name(), "MappingValue")
	}

	child := st
	child.depth++

	sink.BeginObject()
	first := true
	for key, val := range m.Entries() {
		if !first {
			sink.Comma()
		}
		first = false

		if key.Type() != hostjson.TypeString {
			return errors.NonStringKey(key.Type().Name())
		}
		ks, ok := key.(hostjson.StringValue)
		if !ok {
			return errors.Contract(errors.PhaseEncode, key.Type().Name(), "StringValue")
		}
		text, ok := ks.StringBytes()
		if !ok {
			return errors.InvalidString(errors.PhaseEncode)
		}
		sink.String(text)
		sink.Colon()

		if err := encodeValue(sink, val, child); err != nil {
			return err
		}
	}
	sink.EndObject()
	return nil
}

func encodeFallback(sink Sink, v hostjson.Value, st state) error {
	typeName := v.Type().Name()
	if st.fallback == nil {
		return errors.NotSerializable(typeName)
	}
	if st.fallbackCalls == recursionLimit {
		return errors.FallbackLimit()
	}

	replacement, err := st.fallback(v)
	if err != nil {
		return errors.FallbackFailed(typeName, err)
	}
	if replacement == nil {
		return errors.NotSerializable(typeName)
	}

	// The replacement re-enters classification with the fallback budget
	// consumed; structural depth is unchanged.
	child := st
	child.fallbackCalls++
	return encodeValue(sink, replacement, child)
}
