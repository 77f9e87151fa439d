package input

// HatDirection identifies one of the four directions of a gamepad hat.
type HatDirection string

const (
	HatUp    HatDirection = "up"
	HatDown  HatDirection = "down"
	HatLeft  HatDirection = "left"
	HatRight HatDirection = "right"
)

func (d HatDirection) valid() bool {
	switch d {
	case HatUp, HatDown, HatLeft, HatRight:
		return true
	}
	return false
}

// Device is the raw input backend buttons and axes read from.
type Device interface {
	// KnownKey reports whether name is a key this device can poll.
	KnownKey(name string) bool
	KeyPressed(name string) bool

	GamepadConnected(pad int) bool
	ButtonPressed(pad, button int) bool
	HatPressed(pad int, dir HatDirection) bool
	// AxisValue returns the position of a gamepad axis in [-1, 1].
	AxisValue(pad, axis int) float64

	Cursor() (x, y int)
	ScreenSize() (w, h int)
}
