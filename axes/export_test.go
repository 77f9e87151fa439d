package axes

import (
	"bytes"
	"errors"
	"testing"

	"github.com/milk9111/axiscontrols/input"
)

func TestExportRoundTrip(t *testing.T) {
	m := NewManager(input.NewVirtual())
	populate(t, m)

	for _, a := range m.Axes(Local) {
		t.Run(a.Name(), func(t *testing.T) {
			data, err := Marshal(a)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if !bytes.Contains(data, []byte("type: "+string(a.Type()))) {
				t.Fatalf("document missing type:\n%s", data)
			}

			b, err := Unmarshal(data, m.Device())
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !a.Equals(b) {
				t.Fatalf("imported axis differs:\n%s", data)
			}
		})
	}
}

func TestUnmarshalRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown_type", "type: Bogus\nname: x\n", ErrUnknownType},
		{"missing_name", "type: Key\n", ErrEmptyName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tc.doc), input.NewVirtual()); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := Unmarshal([]byte("type: [unclosed"), input.NewVirtual()); err == nil {
		t.Fatalf("expected yaml error")
	}
}
