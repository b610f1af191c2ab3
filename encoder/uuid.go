package encoder

import (
	hostjson "github.com/wippyai/hostjson"
	"github.com/wippyai/hostjson/errors"
)

// uuidGroups marks the byte indexes after which a hyphen is inserted,
// producing the canonical 8-4-4-4-12 grouping.
var uuidGroups = [16]bool{3: true, 5: true, 7: true, 9: true}

func appendUUID(dst []byte, u [16]byte) []byte {
	for i, b := range u {
		dst = append(dst, hexDigits[b>>4], hexDigits[b&0xF])
		if uuidGroups[i] {
			dst = append(dst, '-')
		}
	}
	return dst
}

func encodeUUID(sink Sink, v hostjson.Value) error {
	u, ok := v.(hostjson.UUIDValue)
	if !ok {
		return errors.Contract(errors.PhaseFormat, v.Type().Name(), "UUIDValue")
	}
	var scratch [36]byte
	sink.String(appendUUID(scratch[:0], u.UUIDBytes()))
	return nil
}
