package encoder

import (
	"math"
	"strconv"
)

// Sink receives the JSON token stream produced by the encoder. The
// encoder drives separator placement itself, so implementations are plain
// token writers with no nesting state of their own.
//
// String is handed raw text bytes and is responsible for quoting and
// escaping. Float64 emits the IEEE-754 double verbatim: NaN and the
// infinities are written as-is and produce non-conformant JSON, matching
// upstream JSON semantics where rejecting them is the caller's business.
type Sink interface {
	BeginArray()
	EndArray()
	BeginObject()
	EndObject()
	Comma()
	Colon()
	String(b []byte)
	Int64(v int64)
	Float64(v float64)
	Bool(v bool)
	Null()

	// Bytes returns the accumulated output. The slice is only valid until
	// the next write.
	Bytes() []byte
}

// Buffer is the minified in-memory Sink. Output is UTF-8 JSON text with no
// insignificant whitespace and no trailing newline.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a Buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

func (b *Buffer) BeginArray()  { b.buf = append(b.buf, '[') }
func (b *Buffer) EndArray()    { b.buf = append(b.buf, ']') }
func (b *Buffer) BeginObject() { b.buf = append(b.buf, '{') }
func (b *Buffer) EndObject()   { b.buf = append(b.buf, '}') }
func (b *Buffer) Comma()       { b.buf = append(b.buf, ',') }
func (b *Buffer) Colon()       { b.buf = append(b.buf, ':') }

func (b *Buffer) Bool(v bool) {
	if v {
		b.buf = append(b.buf, "true"...)
	} else {
		b.buf = append(b.buf, "false"...)
	}
}

func (b *Buffer) Null() {
	b.buf = append(b.buf, "null"...)
}

func (b *Buffer) Int64(v int64) {
	b.buf = strconv.AppendInt(b.buf, v, 10)
}

func (b *Buffer) Float64(v float64) {
	// Shortest representation that round-trips, switching to exponent
	// form outside [1e-6, 1e21) the same way encoding/json does.
	format := byte('f')
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	b.buf = strconv.AppendFloat(b.buf, v, format, -1, 64)
	if format == 'e' {
		// strconv pads single-digit exponents: e-09 -> e-9
		if n := len(b.buf); n >= 4 && b.buf[n-4] == 'e' && b.buf[n-3] == '-' && b.buf[n-2] == '0' {
			b.buf[n-2] = b.buf[n-1]
			b.buf = b.buf[:n-1]
		}
	}
}

// escapes maps each byte below 0x20 plus '"' and '\\' to its short escape
// letter, or 'u' for the \u00XX form.
var escapes = [256]byte{
	'"': '"', '\\': '\\',
	'\b': 'b', '\f': 'f', '\n': 'n', '\r': 'r', '\t': 't',
}

const hexDigits = "0123456789abcdef"

func (b *Buffer) String(s []byte) {
	b.buf = append(b.buf, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		b.buf = append(b.buf, s[start:i]...)
		if esc := escapes[c]; esc != 0 {
			b.buf = append(b.buf, '\\', esc)
		} else {
			b.buf = append(b.buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		}
		start = i + 1
	}
	b.buf = append(b.buf, s[start:]...)
	b.buf = append(b.buf, '"')
}

func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Reset truncates the buffer without releasing its storage.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}
