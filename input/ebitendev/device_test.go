package ebitendev

import (
	"testing"

	"github.com/milk9111/axiscontrols/axes"
)

func TestScreenSizeFollowsLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		cursorX       int
		want          float64
	}{
		{"centre", 1280, 720, 640, 0},
		{"right_edge", 1280, 720, 1280, 1},
		{"left_quarter", 1280, 720, 320, -0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := New()
			d.SetScreenSize(tc.width, tc.height)
			w, h := d.ScreenSize()
			if w != tc.width || h != tc.height {
				t.Fatalf("ScreenSize = %dx%d, want %dx%d", w, h, tc.width, tc.height)
			}

			a := axes.NewMouseAxis("mouse", cursorAt{Device: d, x: tc.cursorX, y: tc.height / 2})
			a.Update(0)
			if got := a.InputValue(); got != tc.want {
				t.Fatalf("InputValue = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNilDeviceIsSafe(t *testing.T) {
	var d *Device
	d.Poll()
	d.SetScreenSize(10, 10)
	if d.KnownKey("A") || d.KeyPressed("A") || d.GamepadConnected(0) {
		t.Fatalf("nil device should report nothing")
	}
}

// cursorAt pins the cursor so the test does not depend on a window.
type cursorAt struct {
	*Device
	x, y int
}

func (c cursorAt) Cursor() (int, int) { return c.x, c.y }
