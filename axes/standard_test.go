package axes

import (
	"math"
	"testing"

	"github.com/milk9111/axiscontrols/input"
)

func TestStandardAxis(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(a *StandardAxis, dev *input.Virtual)
		ticks  int
		expect func(v float64) bool
	}{
		{
			name:   "integrates_directly",
			setup:  func(a *StandardAxis, dev *input.Virtual) { dev.Press("Right", true) },
			ticks:  1,
			expect: func(v float64) bool { return math.Abs(v-0.1) < 1e-9 },
		},
		{
			name: "invert_flips_direction",
			setup: func(a *StandardAxis, dev *input.Virtual) {
				a.Invert = true
				dev.Press("Right", true)
			},
			ticks:  3,
			expect: func(v float64) bool { return v < 0 },
		},
		{
			name: "sensitivity_scales",
			setup: func(a *StandardAxis, dev *input.Virtual) {
				a.Sensitivity = 4
				dev.Press("Left", true)
			},
			ticks:  1,
			expect: func(v float64) bool { return math.Abs(v+0.4) < 1e-9 },
		},
		{
			name:   "saturates",
			setup:  func(a *StandardAxis, dev *input.Virtual) { dev.Press("Right", true) },
			ticks:  50,
			expect: func(v float64) bool { return v == 1 },
		},
		{
			name:   "rests_at_center",
			setup:  func(a *StandardAxis, dev *input.Virtual) {},
			ticks:  10,
			expect: func(v float64) bool { return v == 0 },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dev := input.NewVirtual()
			a := NewStandardAxis("throttle", dev)
			a.PositiveBind = input.NewKey(dev, "Right")
			a.NegativeBind = input.NewKey(dev, "Left")
			a.Initialise()

			tc.setup(a, dev)
			tick(a, 0.1, tc.ticks)
			if !tc.expect(a.OutputValue()) {
				t.Fatalf("unexpected output %v", a.OutputValue())
			}
		})
	}
}

func TestStandardAxisReturnsToCenter(t *testing.T) {
	dev := input.NewVirtual()
	a := NewStandardAxis("throttle", dev)
	a.NegativeBind = input.NewKey(dev, "Left")

	dev.Press("Left", true)
	tick(a, 0.1, 20)
	dev.Press("Left", false)

	for i := 0; i < 30; i++ {
		a.Update(0.1)
		if a.OutputValue() > 0 {
			t.Fatalf("tick %d: overshot to %v", i, a.OutputValue())
		}
	}
	if a.OutputValue() != 0 {
		t.Fatalf("expected rest at center, got %v", a.OutputValue())
	}
}
