package axes

import (
	"math"

	"github.com/milk9111/axiscontrols/input"
	"github.com/milk9111/axiscontrols/store"
)

// KeyAxis drives its output from a pair of digital inputs with tunable
// sensitivity, return-to-center gravity and inertia.
type KeyAxis struct {
	base

	// Sensitivity scales how fast input moves the output.
	Sensitivity float64
	// Gravity pulls the output back to zero while no input is held.
	Gravity float64
	// Momentum is the inertia of the output speed. Zero responds instantly.
	Momentum float64
	// Snap drops the output to zero when the opposite input is pressed.
	Snap bool
	// Raw exposes the input value directly as output.
	Raw bool

	PositiveBind input.Button
	NegativeBind input.Button

	last  float64
	speed float64
	value float64
}

func NewKeyAxis(name string, dev input.Device) *KeyAxis {
	return &KeyAxis{
		base:        base{name: name, dev: dev},
		Sensitivity: 1,
		Gravity:     1,
	}
}

func (a *KeyAxis) Type() Type { return TypeKey }

func (a *KeyAxis) Connected() bool {
	return bindConnected(a.PositiveBind) && bindConnected(a.NegativeBind)
}

func (a *KeyAxis) Status() Status { return bindingStatus(a.Connected()) }

// InputValue is 1 while only the positive bind is held, -1 while only the
// negative one is, and 0 for both or neither.
func (a *KeyAxis) InputValue() float64 {
	return bindValue(a.PositiveBind) - bindValue(a.NegativeBind)
}

func (a *KeyAxis) OutputValue() float64 {
	if a.Raw {
		return clamp(a.InputValue())
	}
	return a.value
}

func (a *KeyAxis) Initialise() {
	a.speed = 0
	a.value = 0
	a.last = 0
}

// Update integrates the output even in Raw mode so switching Raw off
// continues from a consistent state.
func (a *KeyAxis) Update(dt float64) {
	in := a.InputValue()

	gravity := a.Gravity
	if a.value > 0 {
		gravity = -a.Gravity
	}
	force := in*a.Sensitivity + (1-math.Abs(in))*gravity

	if a.Momentum == 0 {
		a.speed = force
	} else {
		a.speed += force * dt / a.Momentum
	}
	a.value = clamp(a.value + a.speed*dt)

	if a.Snap && math.Abs(a.value-in) > 1 {
		a.speed = 0
		a.value = 0
	}
	// Coasting back on gravity alone must not overshoot the center.
	if in == 0 && a.Gravity != 0 && (a.last > 0) != (a.value > 0) {
		a.speed = 0
		a.value = 0
	}
	a.last = a.value

	if a.value == -1 || a.value == 1 {
		a.speed = 0
	}
}

// Speed returns the current rate of change of the output.
func (a *KeyAxis) Speed() float64 { return a.speed }

func (a *KeyAxis) Clone() Axis {
	clone := NewKeyAxis(a.name, a.dev)
	clone.Sensitivity = a.Sensitivity
	clone.Gravity = a.Gravity
	clone.Momentum = a.Momentum
	clone.Snap = a.Snap
	clone.Raw = a.Raw
	clone.PositiveBind = a.PositiveBind
	clone.NegativeBind = a.NegativeBind
	clone.transient = a.transient
	return clone
}

var keyAxisFields = []string{"sensitivity", "gravity", "momentum", "snap", "raw", "positive", "negative"}

func (a *KeyAxis) Load(f store.Fields) {
	a.Sensitivity = f.Float(a.key("sensitivity"), a.Sensitivity)
	a.Gravity = f.Float(a.key("gravity"), a.Gravity)
	a.Momentum = f.Float(a.key("momentum"), a.Momentum)
	a.Snap = f.Bool(a.key("snap"), a.Snap)
	a.Raw = f.Bool(a.key("raw"), a.Raw)
	a.PositiveBind = a.button(f, "positive", a.PositiveBind)
	a.NegativeBind = a.button(f, "negative", a.NegativeBind)
}

func (a *KeyAxis) Save(f store.Fields) {
	f.SetString(a.key("type"), string(a.Type()))
	f.SetFloat(a.key("sensitivity"), a.Sensitivity)
	f.SetFloat(a.key("gravity"), a.Gravity)
	f.SetFloat(a.key("momentum"), a.Momentum)
	f.SetBool(a.key("snap"), a.Snap)
	f.SetBool(a.key("raw"), a.Raw)
	f.SetString(a.key("positive"), input.ID(a.PositiveBind))
	f.SetString(a.key("negative"), input.ID(a.NegativeBind))
}

func (a *KeyAxis) Delete(f store.Fields) {
	a.remove(f, keyAxisFields...)
}

func (a *KeyAxis) Equals(other Axis) bool {
	o, ok := other.(*KeyAxis)
	if !ok || o == nil {
		return false
	}
	return a.name == o.name &&
		a.Sensitivity == o.Sensitivity &&
		a.Gravity == o.Gravity &&
		a.Momentum == o.Momentum &&
		a.Snap == o.Snap &&
		a.Raw == o.Raw &&
		input.Same(a.PositiveBind, o.PositiveBind) &&
		input.Same(a.NegativeBind, o.NegativeBind)
}
