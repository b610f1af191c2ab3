package encoder

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"math/big"
	"sync"
	"testing"

	gojson "github.com/goccy/go-json"

	hostjson "github.com/wippyai/hostjson"
	"github.com/wippyai/hostjson/errors"
	"github.com/wippyai/hostjson/hostval"
)

func mustEncode(t *testing.T, v hostjson.Value, fallback hostjson.Fallback, opts hostjson.Option) []byte {
	t.Helper()
	out, err := Encode(v, fallback, opts)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	return out
}

func expectError(t *testing.T, v hostjson.Value, fallback hostjson.Fallback, opts hostjson.Option, target *errors.Error) error {
	t.Helper()
	_, err := Encode(v, fallback, opts)
	if err == nil {
		t.Fatal("Encode() succeeded, want error")
	}
	if !stderrors.Is(err, target) {
		t.Fatalf("Encode() error = %v, want kind %s", err, target.Kind)
	}
	return err
}

func TestEncode_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		value    hostjson.Value
		expected string
	}{
		{"string", hostval.Str("hello"), `"hello"`},
		{"empty string", hostval.Str(""), `""`},
		{"unicode string", hostval.Str("héllo 🌍"), `"héllo 🌍"`},
		{"int", hostval.Int(42), `42`},
		{"negative int", hostval.Int(-7), `-7`},
		{"int64 extremes", hostval.Int(-9223372036854775808), `-9223372036854775808`},
		{"big int in range", hostval.BigInt{X: big.NewInt(123)}, `123`},
		{"bool true", hostval.Bool(true), `true`},
		{"bool false", hostval.Bool(false), `false`},
		{"none", hostval.None{}, `null`},
		{"float", hostval.Float(2.5), `2.5`},
		{"float negative", hostval.Float(-0.25), `-0.25`},
		{"float integral", hostval.Float(3), `3`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustEncode(t, tt.value, nil, 0)
			if string(out) != tt.expected {
				t.Errorf("Encode() = %s, want %s", out, tt.expected)
			}
		})
	}
}

func TestEncode_Containers(t *testing.T) {
	tests := []struct {
		name     string
		value    hostjson.Value
		expected string
	}{
		{"empty list", hostval.List{}, `[]`},
		{"empty tuple", hostval.Tuple{}, `[]`},
		{"empty map", hostval.NewDict(), `{}`},
		{
			"list of scalars",
			hostval.List{hostval.Int(1), hostval.Str("two"), hostval.Bool(false)},
			`[1,"two",false]`,
		},
		{
			"tuple renders as array",
			hostval.Tuple{hostval.None{}, hostval.Float(1.5)},
			`[null,1.5]`,
		},
		{
			"nested mixed",
			hostval.NewDict().
				SetString("a", hostval.Int(1)).
				SetString("b", hostval.List{hostval.Bool(true), hostval.None{}, hostval.Float(2.5)}),
			`{"a":1,"b":[true,null,2.5]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustEncode(t, tt.value, nil, 0)
			if string(out) != tt.expected {
				t.Errorf("Encode() = %s, want %s", out, tt.expected)
			}
		})
	}
}

func TestEncode_MapOrderPreserved(t *testing.T) {
	d := hostval.NewDict()
	for _, k := range []string{"zulu", "alpha", "mike", "bravo"} {
		d.SetString(k, hostval.Int(1))
	}
	out := mustEncode(t, d, nil, 0)
	expected := `{"zulu":1,"alpha":1,"mike":1,"bravo":1}`
	if string(out) != expected {
		t.Errorf("Encode() = %s, want %s", out, expected)
	}
}

// Round-trip: encode, then parse with an independent JSON implementation
// and compare values.
func TestEncode_RoundTrip(t *testing.T) {
	doc := hostval.NewDict().
		SetString("name", hostval.Str("wasm")).
		SetString("count", hostval.Int(17)).
		SetString("ratio", hostval.Float(0.5)).
		SetString("tags", hostval.List{hostval.Str("a"), hostval.Str("b")}).
		SetString("extra", hostval.None{})

	out := mustEncode(t, doc, nil, 0)

	var parsed map[string]any
	if err := gojson.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if parsed["name"] != "wasm" {
		t.Errorf("name = %v", parsed["name"])
	}
	if parsed["count"] != float64(17) {
		t.Errorf("count = %v", parsed["count"])
	}
	if parsed["ratio"] != 0.5 {
		t.Errorf("ratio = %v", parsed["ratio"])
	}
	tags, ok := parsed["tags"].([]any)
	if !ok || len(tags) != 2 || tags[0] != "a" || tags[1] != "b" {
		t.Errorf("tags = %v", parsed["tags"])
	}
	if v, present := parsed["extra"]; !present || v != nil {
		t.Errorf("extra = %v (present=%v)", v, present)
	}
}

func TestEncode_StrictInteger(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		opts  hostjson.Option
		ok    bool
	}{
		{"max exact double", 9007199254740991, hostjson.StrictInteger, true},
		{"min exact double", -9007199254740991, hostjson.StrictInteger, true},
		{"above max strict", 9007199254740992, hostjson.StrictInteger, false},
		{"below min strict", -9007199254740992, hostjson.StrictInteger, false},
		{"above max lenient", 9007199254740992, 0, true},
		{"int64 max lenient", 9223372036854775807, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(hostval.Int(tt.value), nil, tt.opts)
			if tt.ok {
				if err != nil {
					t.Fatalf("Encode() error: %v", err)
				}
				if string(out) != fmt.Sprintf("%d", tt.value) {
					t.Errorf("Encode() = %s", out)
				}
				return
			}
			if !stderrors.Is(err, errors.IntegerRange(tt.value)) {
				t.Fatalf("Encode() error = %v, want integer_range", err)
			}
		})
	}
}

func TestEncode_IntegerOverflow(t *testing.T) {
	tooWide := new(big.Int).Lsh(big.NewInt(1), 70)
	expectError(t, hostval.BigInt{X: tooWide}, nil, 0, errors.IntegerOverflow(""))

	// Strict mode must not mask the overflow check.
	expectError(t, hostval.BigInt{X: tooWide}, nil, hostjson.StrictInteger, errors.IntegerOverflow(""))
}

func TestEncode_InvalidString(t *testing.T) {
	expectError(t, hostval.Str("ok\xff\xfe"), nil, 0, errors.InvalidString(errors.PhaseEncode))
}

func TestEncode_NonStringKey(t *testing.T) {
	tests := []struct {
		name string
		key  hostjson.Value
	}{
		{"int key", hostval.Int(1)},
		{"none key", hostval.None{}},
		{"bool key", hostval.Bool(true)},
		{"tuple key", hostval.Tuple{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := hostval.NewDict().Set(tt.key, hostval.Str("v"))
			err := expectError(t, d, nil, 0, errors.NonStringKey(""))
			var structured *errors.Error
			if stderrors.As(err, &structured) && structured.TypeName != tt.key.Type().Name() {
				t.Errorf("TypeName = %q, want %q", structured.TypeName, tt.key.Type().Name())
			}
		})
	}
}

func TestEncode_InvalidKeyEncoding(t *testing.T) {
	d := hostval.NewDict().Set(hostval.Str("\xf0\x28"), hostval.Int(1))
	expectError(t, d, nil, 0, errors.InvalidString(errors.PhaseEncode))
}

func TestEncode_UnrecognizedWithoutFallback(t *testing.T) {
	socket := hostval.Foreign{T: hostjson.NewType("socket")}
	err := expectError(t, socket, nil, 0, errors.NotSerializable(""))
	if got := err.Error(); !bytes.Contains([]byte(got), []byte("socket")) {
		t.Errorf("error %q should name the offending type", got)
	}
}

func TestEncode_FallbackReplacement(t *testing.T) {
	socket := hostval.Foreign{T: hostjson.NewType("socket")}
	fallback := func(v hostjson.Value) (hostjson.Value, error) {
		return hostval.Str("X"), nil
	}
	out := mustEncode(t, socket, fallback, 0)
	if string(out) != `"X"` {
		t.Errorf("Encode() = %s, want \"X\"", out)
	}
}

func TestEncode_FallbackInsideContainer(t *testing.T) {
	socketType := hostjson.NewType("socket")
	doc := hostval.NewDict().
		SetString("conn", hostval.Foreign{T: socketType}).
		SetString("n", hostval.Int(1))
	fallback := func(v hostjson.Value) (hostjson.Value, error) {
		return hostval.NewDict().SetString("fd", hostval.Int(3)), nil
	}
	out := mustEncode(t, doc, fallback, 0)
	expected := `{"conn":{"fd":3},"n":1}`
	if string(out) != expected {
		t.Errorf("Encode() = %s, want %s", out, expected)
	}
}

func TestEncode_FallbackError(t *testing.T) {
	socket := hostval.Foreign{T: hostjson.NewType("socket")}
	boom := stderrors.New("boom")
	fallback := func(v hostjson.Value) (hostjson.Value, error) {
		return nil, boom
	}
	err := expectError(t, socket, fallback, 0, errors.FallbackFailed("", nil))
	if !stderrors.Is(err, boom) {
		t.Error("hook error should be reachable through errors.Is")
	}
}

func TestEncode_FallbackDeclines(t *testing.T) {
	// A hook returning no replacement and no error cannot convert the
	// value; the type stays unserializable.
	socket := hostval.Foreign{T: hostjson.NewType("socket")}
	fallback := func(v hostjson.Value) (hostjson.Value, error) {
		return nil, nil
	}
	expectError(t, socket, fallback, 0, errors.NotSerializable(""))
}

func TestEncode_ErrorDiscardsPartialOutput(t *testing.T) {
	d := hostval.NewDict().
		SetString("good", hostval.Int(1)).
		SetString("bad", hostval.Foreign{T: hostjson.NewType("socket")})
	out, err := Encode(d, nil, 0)
	if err == nil {
		t.Fatal("Encode() succeeded, want error")
	}
	if out != nil {
		t.Errorf("Encode() returned partial output: %s", out)
	}
}

func TestEncode_ConcurrentCalls(t *testing.T) {
	doc := hostval.NewDict().
		SetString("a", hostval.Int(1)).
		SetString("b", hostval.List{hostval.Bool(true), hostval.None{}, hostval.Float(2.5)})
	expected := `{"a":1,"b":[true,null,2.5]}`

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				out, err := Encode(doc, nil, 0)
				if err != nil {
					t.Errorf("Encode() error: %v", err)
					return
				}
				if string(out) != expected {
					t.Errorf("Encode() = %s, want %s", out, expected)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestEncodeTo_CallerSink(t *testing.T) {
	sink := NewBuffer(64)
	doc := hostval.List{hostval.Int(1), hostval.Int(2)}
	if err := EncodeTo(sink, doc, nil, 0); err != nil {
		t.Fatalf("EncodeTo() error: %v", err)
	}
	if string(sink.Bytes()) != `[1,2]` {
		t.Errorf("sink = %s", sink.Bytes())
	}
}
