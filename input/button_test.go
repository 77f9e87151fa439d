package input

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	dev := NewVirtual()
	dev.Keys = map[string]bool{"A": true, "ArrowLeft": true}

	cases := []struct {
		name    string
		id      string
		wantID  string
		wantNil bool
		wantErr error
	}{
		{"empty", "", "", true, nil},
		{"none", NoneID, "", true, nil},
		{"key", "key-A", "key-A", false, nil},
		{"key_unknown", "key-Banana", "", true, ErrUnknownButton},
		{"key_missing_name", "key-", "", true, ErrMalformedID},
		{"joy", "joy1-7", "joy1-7", false, nil},
		{"joy_bad_index", "joy1-x", "", true, ErrMalformedID},
		{"joy_no_separator", "joy17", "", true, ErrMalformedID},
		{"hat", "hat0-left", "hat0-left", false, nil},
		{"hat_bad_direction", "hat0-sideways", "", true, ErrMalformedID},
		{"unknown_prefix", "mouse-1", "", true, ErrUnknownButton},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := Parse(dev, c.id)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.wantNil {
				if b != nil {
					t.Fatalf("expected nil button, got %v", b.ID())
				}
				return
			}
			if b == nil || b.ID() != c.wantID {
				t.Fatalf("expected id %q, got %v", c.wantID, b)
			}
		})
	}
}

func TestButtonValues(t *testing.T) {
	dev := NewVirtual()

	key, _ := Parse(dev, "key-Space")
	joy, _ := Parse(dev, "joy0-2")
	hat, _ := Parse(dev, "hat0-up")

	if key.Value() != 0 || !key.Connected() {
		t.Fatalf("released key should read 0 and be connected")
	}
	dev.Press("Space", true)
	if key.Value() != 1 {
		t.Fatalf("pressed key should read 1")
	}

	if joy.Connected() || hat.Connected() {
		t.Fatalf("gamepad buttons should be disconnected before the pad is plugged in")
	}
	dev.Connect(0)
	dev.SetButton(0, 2, true)
	dev.SetHat(0, HatUp, true)
	if joy.Value() != 1 || hat.Value() != 1 {
		t.Fatalf("expected pad buttons to read 1, got joy=%v hat=%v", joy.Value(), hat.Value())
	}

	dev.Disconnect(0)
	if joy.Value() != 0 || hat.Value() != 0 {
		t.Fatalf("disconnected pad should read 0")
	}
}

func TestSame(t *testing.T) {
	dev := NewVirtual()
	a, _ := Parse(dev, "key-A")
	b, _ := Parse(dev, "key-A")
	c, _ := Parse(dev, "key-B")

	if !Same(a, b) {
		t.Fatalf("same id should compare equal")
	}
	if Same(a, c) {
		t.Fatalf("different ids should not compare equal")
	}
	if !Same(nil, nil) || Same(a, nil) {
		t.Fatalf("nil handling wrong")
	}
}
