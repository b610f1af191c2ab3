package encoder

import (
	hostjson "github.com/wippyai/hostjson"
	"github.com/wippyai/hostjson/errors"
)

// Canonical temporal renderings:
//
//	date       YYYY-MM-DD
//	time       HH:MM:SS[.ffffff]
//	datetime   YYYY-MM-DDTHH:MM:SS[.ffffff](Z|±HH:MM|)
//
// Fractional seconds appear only when nonzero and always as six digits.
// At most 32 bytes, so callers format into a stack scratch buffer.
const temporalScratch = 40

func appendPadded(dst []byte, v, width int) []byte {
	var tmp [8]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	for pad := width - (len(tmp) - i); pad > 0; pad-- {
		dst = append(dst, '0')
	}
	return append(dst, tmp[i:]...)
}

func appendDate(dst []byte, d hostjson.DateParts) []byte {
	dst = appendPadded(dst, d.Year, 4)
	dst = append(dst, '-')
	dst = appendPadded(dst, d.Month, 2)
	dst = append(dst, '-')
	return appendPadded(dst, d.Day, 2)
}

func appendClock(dst []byte, t hostjson.TimeParts) []byte {
	dst = appendPadded(dst, t.Hour, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, t.Minute, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, t.Second, 2)
	if t.Microsecond != 0 {
		dst = append(dst, '.')
		dst = appendPadded(dst, t.Microsecond, 6)
	}
	return dst
}

func appendOffset(dst []byte, seconds int) []byte {
	sign := byte('+')
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	dst = append(dst, sign)
	dst = appendPadded(dst, seconds/3600, 2)
	dst = append(dst, ':')
	return appendPadded(dst, (seconds%3600)/60, 2)
}

func encodeDate(sink Sink, v hostjson.Value) error {
	d, ok := v.(hostjson.DateValue)
	if !ok {
		return errors.Contract(errors.PhaseFormat, v.Type().Name(), "DateValue")
	}
	var scratch [temporalScratch]byte
	sink.String(appendDate(scratch[:0], d.DateParts()))
	return nil
}

func encodeTime(sink Sink, v hostjson.Value) error {
	t, ok := v.(hostjson.TimeValue)
	if !ok {
		return errors.Contract(errors.PhaseFormat, v.Type().Name(), "TimeValue")
	}
	if t.HasZone() {
		return errors.TimeHasZone()
	}
	var scratch [temporalScratch]byte
	sink.String(appendClock(scratch[:0], t.TimeParts()))
	return nil
}

func encodeDateTime(sink Sink, v hostjson.Value) error {
	dt, ok := v.(hostjson.DateTimeValue)
	if !ok {
		return errors.Contract(errors.PhaseFormat, v.Type().Name(), "DateTimeValue")
	}

	var scratch [temporalScratch]byte
	buf := appendDate(scratch[:0], dt.DateParts())
	buf = append(buf, 'T')
	buf = appendClock(buf, dt.TimeParts())

	switch zone, offset := dt.Zone(); zone {
	case hostjson.ZoneNaive:
		// no suffix
	case hostjson.ZoneUTC:
		buf = append(buf, 'Z')
	case hostjson.ZoneFixed:
		buf = appendOffset(buf, offset)
	default:
		return errors.UnsupportedZone()
	}

	sink.String(buf)
	return nil
}
