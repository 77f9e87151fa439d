package axes

import (
	"math/rand"
	"testing"

	"github.com/milk9111/axiscontrols/input"
)

func newTestKeyAxis(dev *input.Virtual) *KeyAxis {
	a := NewKeyAxis("steer", dev)
	a.PositiveBind = input.NewKey(dev, "D")
	a.NegativeBind = input.NewKey(dev, "A")
	a.Initialise()
	return a
}

func tick(a Axis, dt float64, n int) {
	for i := 0; i < n; i++ {
		a.Update(dt)
	}
}

func TestKeyAxisOutputStaysClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dev := input.NewVirtual()

	for trial := 0; trial < 50; trial++ {
		a := newTestKeyAxis(dev)
		a.Sensitivity = rng.Float64() * 50
		a.Gravity = rng.Float64() * 50
		a.Momentum = rng.Float64() * 2
		if trial%3 == 0 {
			a.Momentum = 0
		}
		a.Snap = rng.Intn(2) == 0

		for i := 0; i < 1000; i++ {
			dev.Press("D", rng.Intn(2) == 0)
			dev.Press("A", rng.Intn(3) == 0)
			a.Update(0.001 + rng.Float64()*0.5)
			if v := a.OutputValue(); v < -1 || v > 1 {
				t.Fatalf("trial %d tick %d: output %v out of range", trial, i, v)
			}
		}
	}
}

func TestKeyAxisSettlesWithoutOvershoot(t *testing.T) {
	dev := input.NewVirtual()
	a := newTestKeyAxis(dev)

	dev.Press("D", true)
	tick(a, 0.1, 20)
	if a.OutputValue() != 1 {
		t.Fatalf("expected output pinned at 1, got %v", a.OutputValue())
	}
	if a.Speed() != 0 {
		t.Fatalf("speed should be zero at the rail, got %v", a.Speed())
	}

	dev.Press("D", false)
	prev := a.OutputValue()
	settled := -1
	for i := 0; i < 40; i++ {
		a.Update(0.1)
		v := a.OutputValue()
		if v < 0 {
			t.Fatalf("tick %d: output overshot below center: %v", i, v)
		}
		if v > prev {
			t.Fatalf("tick %d: output moved back up from %v to %v", i, prev, v)
		}
		if v == 0 && settled < 0 {
			settled = i
		}
		prev = v
	}
	if settled < 0 {
		t.Fatalf("output never settled, last value %v", prev)
	}
	if a.OutputValue() != 0 || a.Speed() != 0 {
		t.Fatalf("expected rest at center, got value=%v speed=%v", a.OutputValue(), a.Speed())
	}
}

func TestKeyAxisSnap(t *testing.T) {
	cases := []struct {
		name string
		snap bool
		want func(v float64) bool
	}{
		{"snap_drops_to_center", true, func(v float64) bool { return v == 0 }},
		{"no_snap_sweeps", false, func(v float64) bool { return v > 0 && v < 1 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dev := input.NewVirtual()
			a := newTestKeyAxis(dev)
			a.Snap = c.snap

			dev.Press("D", true)
			tick(a, 0.1, 20)

			dev.Press("D", false)
			dev.Press("A", true)
			a.Update(0.1)

			if !c.want(a.OutputValue()) {
				t.Fatalf("unexpected output after reversing input: %v", a.OutputValue())
			}
			if c.snap && a.Speed() != 0 {
				t.Fatalf("snap should zero the speed, got %v", a.Speed())
			}
		})
	}
}

func TestKeyAxisRawPassthrough(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	dev := input.NewVirtual()
	a := newTestKeyAxis(dev)
	a.Raw = true

	for i := 0; i < 200; i++ {
		dev.Press("D", rng.Intn(2) == 0)
		dev.Press("A", rng.Intn(2) == 0)
		a.Update(0.05)
		if a.OutputValue() != a.InputValue() {
			t.Fatalf("tick %d: raw output %v != input %v", i, a.OutputValue(), a.InputValue())
		}
	}
}

func TestKeyAxisRawKeepsIntegrating(t *testing.T) {
	dev := input.NewVirtual()
	a := newTestKeyAxis(dev)
	a.Raw = true

	dev.Press("D", true)
	tick(a, 0.1, 3)
	dev.Press("D", false)
	a.Raw = false

	if v := a.OutputValue(); v <= 0 || v >= 1 {
		t.Fatalf("expected partially integrated output after leaving raw mode, got %v", v)
	}
}

func TestKeyAxisMomentum(t *testing.T) {
	dev := input.NewVirtual()
	instant := newTestKeyAxis(dev)
	heavy := newTestKeyAxis(dev)
	heavy.Momentum = 1

	dev.Press("D", true)
	instant.Update(0.1)
	heavy.Update(0.1)

	if !(heavy.OutputValue() > 0 && heavy.OutputValue() < instant.OutputValue()) {
		t.Fatalf("momentum should slow the response: heavy=%v instant=%v", heavy.OutputValue(), instant.OutputValue())
	}

	tick(heavy, 0.1, 200)
	if heavy.OutputValue() != 1 || heavy.Speed() != 0 {
		t.Fatalf("expected heavy axis pinned with zero speed, got value=%v speed=%v", heavy.OutputValue(), heavy.Speed())
	}
}

func TestKeyAxisDisconnected(t *testing.T) {
	dev := input.NewVirtual()
	a := NewKeyAxis("pad", dev)
	a.PositiveBind = input.NewJoystickButton(dev, 0, 1)

	if a.Connected() || a.Status() != StatusDisconnected {
		t.Fatalf("expected disconnected status, got %v", a.Status())
	}
	if a.InputValue() != 0 {
		t.Fatalf("disconnected input should read 0")
	}

	dev.Connect(0)
	if a.Status() != StatusOK {
		t.Fatalf("expected OK once connected, got %v", a.Status())
	}

	unbound := NewKeyAxis("empty", dev)
	if !unbound.Connected() {
		t.Fatalf("an axis without bindings is connected")
	}
}

func TestKeyAxisCloneHasFreshState(t *testing.T) {
	dev := input.NewVirtual()
	a := newTestKeyAxis(dev)
	a.Sensitivity = 2.5
	a.Gravity = 0.75
	a.Momentum = 0.3
	a.Snap = true

	dev.Press("D", true)
	tick(a, 0.1, 5)

	c := a.Clone().(*KeyAxis)
	if !a.Equals(c) {
		t.Fatalf("clone should equal source")
	}
	if c.OutputValue() != 0 || c.Speed() != 0 {
		t.Fatalf("clone should start at rest, got value=%v speed=%v", c.OutputValue(), c.Speed())
	}

	c.Gravity = 5
	if a.Equals(c) {
		t.Fatalf("changing a tunable should break equality")
	}

	a.Initialise()
	if a.OutputValue() != 0 || a.Speed() != 0 {
		t.Fatalf("initialise should zero state")
	}
}
