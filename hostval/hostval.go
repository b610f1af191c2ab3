package hostval

import (
	"iter"
	"math/big"
	"unicode/utf8"
	"unsafe"

	"github.com/google/uuid"

	hostjson "github.com/wippyai/hostjson"
)

// Str is a text value. StringBytes reports invalid encoding for text that
// is not valid UTF-8, which the encoder surfaces as an invalid-string
// error.
type Str string

func (Str) Type() *hostjson.Type { return hostjson.TypeString }

func (s Str) StringBytes() ([]byte, bool) {
	if !utf8.ValidString(string(s)) {
		return nil, false
	}
	if len(s) == 0 {
		return nil, true
	}
	// Zero-copy view; the encoder only borrows it for the call.
	return unsafe.Slice(unsafe.StringData(string(s)), len(s)), true
}

// Int is a 64-bit integer value.
type Int int64

func (Int) Type() *hostjson.Type { return hostjson.TypeInt }

func (i Int) Int64() (int64, bool) { return int64(i), true }

// BigInt is an arbitrary-precision integer value, modeling hosts whose
// native integers exceed 64 bits. Int64 reports failure when the value
// does not fit, which the encoder surfaces as an integer-overflow error.
type BigInt struct {
	X *big.Int
}

func (BigInt) Type() *hostjson.Type { return hostjson.TypeInt }

func (b BigInt) Int64() (int64, bool) {
	if b.X == nil || !b.X.IsInt64() {
		return 0, false
	}
	return b.X.Int64(), true
}

// Float is an IEEE-754 double value.
type Float float64

func (Float) Type() *hostjson.Type { return hostjson.TypeFloat }

func (f Float) Float64() float64 { return float64(f) }

// Bool is a boolean value.
type Bool bool

func (Bool) Type() *hostjson.Type { return hostjson.TypeBool }

func (b Bool) Bool() bool { return bool(b) }

// None is the null value.
type None struct{}

func (None) Type() *hostjson.Type { return hostjson.TypeNone }

// List is a mutable ordered container.
type List []hostjson.Value

func (List) Type() *hostjson.Type { return hostjson.TypeList }

func (l List) Len() int { return len(l) }

func (l List) Index(i int) hostjson.Value { return l[i] }

// Tuple is an immutable ordered container.
type Tuple []hostjson.Value

func (Tuple) Type() *hostjson.Type { return hostjson.TypeTuple }

func (t Tuple) Len() int { return len(t) }

func (t Tuple) Index(i int) hostjson.Value { return t[i] }

// Pair is one Dict entry. Keys are handles so that non-string keys can be
// represented (and rejected by the encoder).
type Pair struct {
	Key   hostjson.Value
	Value hostjson.Value
}

// Dict is an insertion-ordered key/value container.
type Dict struct {
	pairs []Pair
}

// NewDict returns an empty Dict.
func NewDict() *Dict {
	return &Dict{}
}

func (*Dict) Type() *hostjson.Type { return hostjson.TypeMap }

// Set appends an entry, preserving insertion order. Entries with equal
// keys are kept as given; key uniqueness is the host's business.
func (d *Dict) Set(key, value hostjson.Value) *Dict {
	d.pairs = append(d.pairs, Pair{Key: key, Value: value})
	return d
}

// SetString appends an entry under a string key.
func (d *Dict) SetString(key string, value hostjson.Value) *Dict {
	return d.Set(Str(key), value)
}

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.pairs) }

func (d *Dict) Entries() iter.Seq2[hostjson.Value, hostjson.Value] {
	return func(yield func(hostjson.Value, hostjson.Value) bool) {
		for _, p := range d.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// UUID is a 128-bit identifier value.
type UUID uuid.UUID

func (UUID) Type() *hostjson.Type { return hostjson.TypeUUID }

func (u UUID) UUIDBytes() [16]byte { return [16]byte(u) }

// Foreign is a value of a host-minted type outside the closed kind set.
// The encoder classifies it as unrecognized and routes it through the
// fallback hook.
type Foreign struct {
	T *hostjson.Type
}

func (f Foreign) Type() *hostjson.Type { return f.T }
