package hostjson

import "testing"

func TestType_Identity(t *testing.T) {
	a := NewType("widget")
	b := NewType("widget")
	if a == b {
		t.Error("separately minted descriptors must not be identical")
	}
	if a.Name() != "widget" || b.Name() != "widget" {
		t.Errorf("Name() = %q, %q", a.Name(), b.Name())
	}
}

func TestCanonicalDescriptors(t *testing.T) {
	names := map[*Type]string{
		TypeString:   "string",
		TypeInt:      "int",
		TypeList:     "list",
		TypeMap:      "map",
		TypeBool:     "bool",
		TypeNone:     "null",
		TypeFloat:    "float",
		TypeTuple:    "tuple",
		TypeDateTime: "datetime",
		TypeDate:     "date",
		TypeTime:     "time",
		TypeUUID:     "uuid",
	}
	if len(names) != 12 {
		t.Fatalf("descriptor set has %d entries", len(names))
	}
	for typ, want := range names {
		if typ.Name() != want {
			t.Errorf("Name() = %q, want %q", typ.Name(), want)
		}
	}
}

func TestOption_Has(t *testing.T) {
	tests := []struct {
		name string
		opts Option
		flag Option
		want bool
	}{
		{"zero has nothing", 0, StrictInteger, false},
		{"single flag", StrictInteger, StrictInteger, true},
		{"combined flags", StrictInteger | SerializeUUID, SerializeUUID, true},
		{"combined misses third", StrictInteger | SerializeUUID, SerializeRecord, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Has(tt.flag); got != tt.want {
				t.Errorf("Has() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOption_BitPositions(t *testing.T) {
	if StrictInteger != 1 {
		t.Errorf("StrictInteger = %d", StrictInteger)
	}
	if SerializeRecord != 1<<4 {
		t.Errorf("SerializeRecord = %d", SerializeRecord)
	}
	if SerializeUUID != 1<<5 {
		t.Errorf("SerializeUUID = %d", SerializeUUID)
	}
}
