// Package ebitendev polls keyboard, gamepads and cursor through ebiten.
package ebitendev

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/axiscontrols/input"
)

// Device implements input.Device on top of ebiten's polling API. It must be
// read from the goroutine running the ebiten game loop.
type Device struct {
	keys map[string]ebiten.Key
	ids  []ebiten.GamepadID

	// width and height are the logical screen size cursor positions are
	// reported in, as returned by the game's Layout.
	width, height int
}

func New() *Device {
	return &Device{keys: make(map[string]ebiten.Key)}
}

// Poll refreshes the connected gamepad list. Call once per frame before the
// axes update.
func (d *Device) Poll() {
	if d == nil {
		return
	}
	d.ids = ebiten.AppendGamepadIDs(d.ids[:0])
}

func (d *Device) key(name string) (ebiten.Key, bool) {
	if k, ok := d.keys[name]; ok {
		return k, true
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, false
	}
	d.keys[name] = k
	return k, true
}

func (d *Device) KnownKey(name string) bool {
	if d == nil {
		return false
	}
	_, ok := d.key(name)
	return ok
}

func (d *Device) KeyPressed(name string) bool {
	if d == nil {
		return false
	}
	k, ok := d.key(name)
	return ok && ebiten.IsKeyPressed(k)
}

func (d *Device) gamepad(pad int) (ebiten.GamepadID, bool) {
	if d == nil || pad < 0 || pad >= len(d.ids) {
		return 0, false
	}
	return d.ids[pad], true
}

// GamepadConnected treats pad as an index into the connected gamepad list,
// ordered as ebiten reports it.
func (d *Device) GamepadConnected(pad int) bool {
	_, ok := d.gamepad(pad)
	return ok
}

func (d *Device) ButtonPressed(pad, button int) bool {
	id, ok := d.gamepad(pad)
	if !ok || button < 0 || button >= ebiten.GamepadButtonCount(id) {
		return false
	}
	return ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(button))
}

var hatButtons = map[input.HatDirection]ebiten.StandardGamepadButton{
	input.HatUp:    ebiten.StandardGamepadButtonLeftTop,
	input.HatDown:  ebiten.StandardGamepadButtonLeftBottom,
	input.HatLeft:  ebiten.StandardGamepadButtonLeftLeft,
	input.HatRight: ebiten.StandardGamepadButtonLeftRight,
}

// HatPressed reads the D-pad through the standard gamepad layout when the
// controller provides one.
func (d *Device) HatPressed(pad int, dir input.HatDirection) bool {
	id, ok := d.gamepad(pad)
	if !ok || !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return false
	}
	b, ok := hatButtons[dir]
	return ok && ebiten.IsStandardGamepadButtonPressed(id, b)
}

func (d *Device) AxisValue(pad, axis int) float64 {
	id, ok := d.gamepad(pad)
	if !ok || axis < 0 || axis >= ebiten.GamepadAxisCount(id) {
		return 0
	}
	v := ebiten.GamepadAxisValue(id, ebiten.GamepadAxisType(axis))
	return max(-1, min(1, v))
}

func (d *Device) Cursor() (int, int) {
	return ebiten.CursorPosition()
}

// SetScreenSize records the logical size the game lays out. Call it from
// Layout so cursor positions and screen size share units after a resize.
func (d *Device) SetScreenSize(w, h int) {
	if d == nil {
		return
	}
	d.width, d.height = w, h
}

// ScreenSize is the logical size set by SetScreenSize, falling back to the
// window size before the first Layout.
func (d *Device) ScreenSize() (int, int) {
	if d != nil && d.width > 0 && d.height > 0 {
		return d.width, d.height
	}
	return ebiten.WindowSize()
}

var _ input.Device = (*Device)(nil)
