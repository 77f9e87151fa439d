// Package controls routes axis outputs onto actuator properties of machine
// blocks. Each block instance owns a fixed list of controls chosen by its
// block type; a control maps a [-1, 1] axis output into its [Min, Center,
// Max] range and hands the result to the block.
package controls

import (
	"errors"
	"math"
)

var (
	ErrEmptyBlockID  = errors.New("controls: empty block id")
	ErrBlockNotFound = errors.New("controls: block not found")
)

// Control binds one actuator property of one block instance to an axis.
// The block is referenced by id only and resolved when the control is applied.
type Control interface {
	// Name identifies the actuator property, e.g. "ANGLE" or "SPEED".
	Name() string
	BlockID() string
	Settings() *Settings
	// Map converts an axis output into the control's range.
	Map(v float64) float64
	// Apply drives target with an already mapped value. It reports false
	// when target lacks the actuator this control drives.
	Apply(target any, value float64) bool
}

// Settings are the user tunables of a control. Copying controls between
// blocks copies Settings and nothing else.
type Settings struct {
	Enabled bool
	Axis    string
	Min     float64
	Center  float64
	Max     float64
}

// CopyFrom copies every tunable from src.
func (s *Settings) CopyFrom(src *Settings) {
	if s == nil || src == nil {
		return
	}
	*s = *src
}

// BlockLookup resolves block instances by id. A removed block is a normal
// not-found result.
type BlockLookup interface {
	Block(id string) (any, bool)
}

// Actuator interfaces implemented by blocks.
type (
	AngleSetter interface {
		SetAngle(degrees float64)
	}
	InputSetter interface {
		SetInput(v float64)
	}
	SliderSetter interface {
		// SetSlider reports false if the block has no slider of that name.
		SetSlider(name string, v float64) bool
	}
	PositionSetter interface {
		SetPosition(v float64)
	}
	VectorSetter interface {
		SetVector(axis VectorAxis, v float64)
	}
)

type base struct {
	name         string
	block        string
	positiveOnly bool
	settings     Settings
}

func (b *base) Name() string { return b.name }

func (b *base) BlockID() string { return b.block }

func (b *base) Settings() *Settings { return &b.settings }

// PositiveOnly reports whether the whole axis range maps onto [Min, Max]
// instead of splitting at Center.
func (b *base) PositiveOnly() bool { return b.positiveOnly }

func (b *base) Map(v float64) float64 {
	return mapRange(&b.settings, b.positiveOnly, v)
}

func mapRange(s *Settings, positiveOnly bool, v float64) float64 {
	if math.IsNaN(v) {
		v = 0
	}
	v = max(-1, min(1, v))
	if positiveOnly {
		return lerp(s.Min, s.Max, (v+1)/2)
	}
	if v > 0 {
		return lerp(s.Center, s.Max, v)
	}
	return lerp(s.Center, s.Min, -v)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
