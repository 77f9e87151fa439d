package axes

import (
	"math"

	"github.com/milk9111/axiscontrols/input"
	"github.com/milk9111/axiscontrols/store"
)

// smoothRate is how many times per second a smoothed controller axis closes
// the gap to its target.
const smoothRate = 10.0

// ControllerAxis reads one analog gamepad axis and reshapes it.
type ControllerAxis struct {
	base

	Pad  int
	Axis int

	Sensitivity float64
	// Curvature is the exponent applied to the magnitude after the deadzone.
	Curvature float64
	Deadzone  float64
	// OffsetX is added to the raw value before shaping, OffsetY after.
	OffsetX float64
	OffsetY float64
	Invert  bool
	Smooth  bool

	value float64
}

func NewControllerAxis(name string, dev input.Device) *ControllerAxis {
	return &ControllerAxis{
		base:        base{name: name, dev: dev},
		Sensitivity: 1,
		Curvature:   1,
	}
}

func (a *ControllerAxis) Type() Type { return TypeController }

func (a *ControllerAxis) Connected() bool {
	return a.dev != nil && a.dev.GamepadConnected(a.Pad)
}

func (a *ControllerAxis) Status() Status { return bindingStatus(a.Connected()) }

func (a *ControllerAxis) InputValue() float64 {
	if !a.Connected() {
		return 0
	}
	return a.dev.AxisValue(a.Pad, a.Axis)
}

func (a *ControllerAxis) OutputValue() float64 { return a.value }

func (a *ControllerAxis) Initialise() {
	a.value = 0
}

// Process applies the shaping pipeline to a raw axis reading.
func (a *ControllerAxis) Process(raw float64) float64 {
	x := raw + a.OffsetX
	m := math.Abs(x)
	if m <= a.Deadzone || a.Deadzone >= 1 {
		m = 0
	} else {
		m = min(1, (m-a.Deadzone)/(1-a.Deadzone))
	}
	if a.Curvature > 0 && m > 0 {
		m = math.Pow(m, a.Curvature)
	}

	v := sign(x) * m * a.Sensitivity
	if a.Invert {
		v = -v
	}
	return clamp(v + a.OffsetY)
}

func (a *ControllerAxis) Update(dt float64) {
	target := a.Process(a.InputValue())
	if !a.Smooth {
		a.value = target
		return
	}
	a.value = clamp(a.value + (target-a.value)*min(1, dt*smoothRate))
}

func (a *ControllerAxis) Clone() Axis {
	clone := NewControllerAxis(a.name, a.dev)
	clone.Pad = a.Pad
	clone.Axis = a.Axis
	clone.Sensitivity = a.Sensitivity
	clone.Curvature = a.Curvature
	clone.Deadzone = a.Deadzone
	clone.OffsetX = a.OffsetX
	clone.OffsetY = a.OffsetY
	clone.Invert = a.Invert
	clone.Smooth = a.Smooth
	clone.transient = a.transient
	return clone
}

var controllerAxisFields = []string{
	"pad", "axis", "sensitivity", "curvature", "deadzone", "offset-x", "offset-y", "invert", "smooth",
}

func (a *ControllerAxis) Load(f store.Fields) {
	a.Pad = f.Int(a.key("pad"), a.Pad)
	a.Axis = f.Int(a.key("axis"), a.Axis)
	a.Sensitivity = f.Float(a.key("sensitivity"), a.Sensitivity)
	a.Curvature = f.Float(a.key("curvature"), a.Curvature)
	a.Deadzone = f.Float(a.key("deadzone"), a.Deadzone)
	a.OffsetX = f.Float(a.key("offset-x"), a.OffsetX)
	a.OffsetY = f.Float(a.key("offset-y"), a.OffsetY)
	a.Invert = f.Bool(a.key("invert"), a.Invert)
	a.Smooth = f.Bool(a.key("smooth"), a.Smooth)
}

func (a *ControllerAxis) Save(f store.Fields) {
	f.SetString(a.key("type"), string(a.Type()))
	f.SetInt(a.key("pad"), a.Pad)
	f.SetInt(a.key("axis"), a.Axis)
	f.SetFloat(a.key("sensitivity"), a.Sensitivity)
	f.SetFloat(a.key("curvature"), a.Curvature)
	f.SetFloat(a.key("deadzone"), a.Deadzone)
	f.SetFloat(a.key("offset-x"), a.OffsetX)
	f.SetFloat(a.key("offset-y"), a.OffsetY)
	f.SetBool(a.key("invert"), a.Invert)
	f.SetBool(a.key("smooth"), a.Smooth)
}

func (a *ControllerAxis) Delete(f store.Fields) {
	a.remove(f, controllerAxisFields...)
}

func (a *ControllerAxis) Equals(other Axis) bool {
	o, ok := other.(*ControllerAxis)
	if !ok || o == nil {
		return false
	}
	return a.name == o.name &&
		a.Pad == o.Pad &&
		a.Axis == o.Axis &&
		a.Sensitivity == o.Sensitivity &&
		a.Curvature == o.Curvature &&
		a.Deadzone == o.Deadzone &&
		a.OffsetX == o.OffsetX &&
		a.OffsetY == o.OffsetY &&
		a.Invert == o.Invert &&
		a.Smooth == o.Smooth
}
