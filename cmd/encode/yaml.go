package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	hostjson "github.com/wippyai/hostjson"
	"github.com/wippyai/hostjson/hostval"
)

// YAML is the input notation because it keeps mapping keys in document
// order, which the encoder must preserve. Parsing works on yaml.Node
// directly; decoding into map[string]any would lose the ordering.
//
// Two local tags extend the scalar set:
//
//	!uuid <canonical-text>      identifier value
//	!record { k: v, ... }       structured record (field order as written)

// recordTypes memoizes one type descriptor per record tag so repeated
// records classify identically.
type yamlLoader struct {
	recordTypes map[string]*hostjson.Type
}

func newYAMLLoader() *yamlLoader {
	return &yamlLoader{recordTypes: make(map[string]*hostjson.Type)}
}

// Load parses one YAML document into a value graph.
func (l *yamlLoader) Load(data []byte) (hostjson.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return hostval.None{}, nil
	}
	return l.convert(root.Content[0])
}

func (l *yamlLoader) convert(n *yaml.Node) (hostjson.Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return l.scalar(n)

	case yaml.SequenceNode:
		out := make(hostval.List, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := l.convert(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case yaml.MappingNode:
		if strings.HasPrefix(n.Tag, "!record") {
			return l.record(n)
		}
		d := hostval.NewDict()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := l.convert(n.Content[i])
			if err != nil {
				return nil, err
			}
			val, err := l.convert(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			d.Set(key, val)
		}
		return d, nil

	case yaml.AliasNode:
		return l.convert(n.Alias)

	default:
		return nil, fmt.Errorf("line %d: unsupported node kind", n.Line)
	}
}

func (l *yamlLoader) scalar(n *yaml.Node) (hostjson.Value, error) {
	switch n.Tag {
	case "!!null":
		return hostval.None{}, nil

	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, scalarErr(n, err)
		}
		return hostval.Bool(b), nil

	case "!!int":
		v, err := strconv.ParseInt(n.Value, 0, 64)
		if err == nil {
			return hostval.Int(v), nil
		}
		// Wider than 64 bits; keep the value so the encoder can report
		// the overflow itself.
		x, ok := new(big.Int).SetString(n.Value, 0)
		if !ok {
			return nil, scalarErr(n, fmt.Errorf("bad integer %q", n.Value))
		}
		return hostval.BigInt{X: x}, nil

	case "!!float":
		// yaml resolves integers wider than 64 bits as floats. Keep them
		// integral so the encoder reports the overflow instead of
		// silently truncating to a double.
		if isIntegerLiteral(n.Value) {
			x, ok := new(big.Int).SetString(n.Value, 10)
			if !ok {
				return nil, scalarErr(n, fmt.Errorf("bad integer %q", n.Value))
			}
			return hostval.BigInt{X: x}, nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, scalarErr(n, err)
		}
		return hostval.Float(f), nil

	case "!!timestamp":
		return timestamp(n)

	case "!uuid":
		u, err := uuid.Parse(n.Value)
		if err != nil {
			return nil, scalarErr(n, err)
		}
		return hostval.UUID(u), nil

	default:
		return hostval.Str(n.Value), nil
	}
}

// timestamp maps date-only scalars to a date value and full timestamps
// to a date-time. A trailing Z selects UTC, an explicit offset a fixed
// zone, and a bare timestamp stays naive.
func timestamp(n *yaml.Node) (hostjson.Value, error) {
	if t, err := time.Parse(time.DateOnly, n.Value); err == nil {
		return hostval.Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
	}

	var t time.Time
	if err := n.Decode(&t); err != nil {
		return nil, scalarErr(n, err)
	}
	switch {
	case strings.HasSuffix(n.Value, "Z"), strings.HasSuffix(n.Value, "z"):
		return hostval.DateTimeUTC(t), nil
	case hasOffset(n.Value):
		return hostval.DateTimeOffset(t), nil
	default:
		return hostval.DateTimeNaive(t), nil
	}
}

// isIntegerLiteral reports whether s is a plain decimal integer with no
// fraction or exponent.
func isIntegerLiteral(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func hasOffset(s string) bool {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[i+1:]
	} else if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[i+1:]
	} else {
		return false
	}
	return strings.ContainsAny(s, "+-")
}

// record converts a !record mapping into a structured record. A tag
// suffix names the record type: !record:Point mints (once) a type named
// Point.
func (l *yamlLoader) record(n *yaml.Node) (hostjson.Value, error) {
	name := "record"
	if rest, ok := strings.CutPrefix(n.Tag, "!record:"); ok && rest != "" {
		name = rest
	}
	typ, ok := l.recordTypes[name]
	if !ok {
		typ = hostjson.NewType(name)
		l.recordTypes[name] = typ
	}

	r := hostval.NewRecord(typ)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: record field name must be a scalar", key.Line)
		}
		val, err := l.convert(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		r.Set(key.Value, val)
	}
	return r, nil
}

func scalarErr(n *yaml.Node, err error) error {
	return fmt.Errorf("line %d: %w", n.Line, err)
}
