package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownButton = errors.New("input: unknown button id")
	ErrMalformedID   = errors.New("input: malformed button id")
)

// NoneID is persisted in place of an unbound button.
const NoneID = "None"

// Button is a single digital input. Value is 1 while held and 0 otherwise.
type Button interface {
	ID() string
	Connected() bool
	Value() float64
}

// Key is a keyboard key, encoded as "key-<name>".
type Key struct {
	dev  Device
	name string
}

func NewKey(dev Device, name string) *Key {
	return &Key{dev: dev, name: name}
}

func (k *Key) ID() string { return "key-" + k.name }

// Connected is always true, keyboards are assumed present.
func (k *Key) Connected() bool { return true }

func (k *Key) Value() float64 {
	if k == nil || k.dev == nil || !k.dev.KeyPressed(k.name) {
		return 0
	}
	return 1
}

// JoystickButton is a raw gamepad button, encoded as "joy<pad>-<button>".
type JoystickButton struct {
	dev    Device
	pad    int
	button int
}

func NewJoystickButton(dev Device, pad, button int) *JoystickButton {
	return &JoystickButton{dev: dev, pad: pad, button: button}
}

func (b *JoystickButton) ID() string {
	return fmt.Sprintf("joy%d-%d", b.pad, b.button)
}

func (b *JoystickButton) Connected() bool {
	return b != nil && b.dev != nil && b.dev.GamepadConnected(b.pad)
}

func (b *JoystickButton) Value() float64 {
	if !b.Connected() || !b.dev.ButtonPressed(b.pad, b.button) {
		return 0
	}
	return 1
}

// HatButton is one direction of a gamepad hat, encoded as "hat<pad>-<direction>".
type HatButton struct {
	dev Device
	pad int
	dir HatDirection
}

func NewHatButton(dev Device, pad int, dir HatDirection) *HatButton {
	return &HatButton{dev: dev, pad: pad, dir: dir}
}

func (b *HatButton) ID() string {
	return fmt.Sprintf("hat%d-%s", b.pad, b.dir)
}

func (b *HatButton) Connected() bool {
	return b != nil && b.dev != nil && b.dev.GamepadConnected(b.pad)
}

func (b *HatButton) Value() float64 {
	if !b.Connected() || !b.dev.HatPressed(b.pad, b.dir) {
		return 0
	}
	return 1
}

// Parse turns a persisted identifier back into a button bound to dev.
// An empty id or NoneID yields a nil button and no error.
func Parse(dev Device, id string) (Button, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == NoneID {
		return nil, nil
	}

	switch {
	case strings.HasPrefix(id, "key-"):
		name := strings.TrimPrefix(id, "key-")
		if name == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedID, id)
		}
		if dev != nil && !dev.KnownKey(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownButton, id)
		}
		return NewKey(dev, name), nil
	case strings.HasPrefix(id, "joy"):
		pad, rest, err := splitPad(strings.TrimPrefix(id, "joy"))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedID, id, err)
		}
		button, err := strconv.Atoi(rest)
		if err != nil || button < 0 {
			return nil, fmt.Errorf("%w: %q: bad button index", ErrMalformedID, id)
		}
		return NewJoystickButton(dev, pad, button), nil
	case strings.HasPrefix(id, "hat"):
		pad, rest, err := splitPad(strings.TrimPrefix(id, "hat"))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedID, id, err)
		}
		dir := HatDirection(rest)
		if !dir.valid() {
			return nil, fmt.Errorf("%w: %q: bad hat direction", ErrMalformedID, id)
		}
		return NewHatButton(dev, pad, dir), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownButton, id)
}

// ID returns the persisted identifier of b, NoneID when b is nil.
func ID(b Button) string {
	if b == nil {
		return NoneID
	}
	return b.ID()
}

// Same reports whether two buttons are bound to the same physical input.
func Same(a, b Button) bool {
	return ID(a) == ID(b)
}

func splitPad(s string) (int, string, error) {
	pad, rest, ok := strings.Cut(s, "-")
	if !ok {
		return 0, "", errors.New("missing separator")
	}
	n, err := strconv.Atoi(pad)
	if err != nil || n < 0 {
		return 0, "", errors.New("bad pad index")
	}
	return n, rest, nil
}
