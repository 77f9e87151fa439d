package controls

const (
	NameInput    = "INPUT"
	NameAngle    = "ANGLE"
	NamePosition = "POSITION"
)

// InputControl replaces the block's key input with an analog value.
type InputControl struct{ base }

func NewInputControl(block string) *InputControl {
	return &InputControl{base{
		name:     NameInput,
		block:    block,
		settings: Settings{Min: -1, Center: 0, Max: 1},
	}}
}

// NewPositiveInputControl maps the whole axis onto [0, 1], for blocks that
// only pull one way.
func NewPositiveInputControl(block string) *InputControl {
	c := NewInputControl(block)
	c.positiveOnly = true
	c.settings = Settings{Min: 0, Center: 0.5, Max: 1}
	return c
}

func (c *InputControl) Apply(target any, v float64) bool {
	s, ok := target.(InputSetter)
	if ok {
		s.SetInput(v)
	}
	return ok
}

// SliderControl drives one named slider of the block.
type SliderControl struct{ base }

func NewSliderControl(block, slider string) *SliderControl {
	return &SliderControl{base{
		name:     slider,
		block:    block,
		settings: Settings{Min: 0, Center: 1, Max: 2},
	}}
}

func newPositiveSlider(block, slider string) *SliderControl {
	c := NewSliderControl(block, slider)
	c.positiveOnly = true
	return c
}

func (c *SliderControl) Apply(target any, v float64) bool {
	s, ok := target.(SliderSetter)
	return ok && s.SetSlider(c.name, v)
}

// AngleControl sets a steering angle in degrees.
type AngleControl struct{ base }

func NewAngleControl(block string) *AngleControl {
	return &AngleControl{base{
		name:     NameAngle,
		block:    block,
		settings: Settings{Min: -45, Center: 0, Max: 45},
	}}
}

func (c *AngleControl) Apply(target any, v float64) bool {
	s, ok := target.(AngleSetter)
	if ok {
		s.SetAngle(v)
	}
	return ok
}

// PositionControl sets an extension as a fraction of the full stroke.
type PositionControl struct{ base }

func NewPositionControl(block string) *PositionControl {
	return &PositionControl{base{
		name:     NamePosition,
		block:    block,
		settings: Settings{Min: 0, Center: 0.5, Max: 1},
	}}
}

func (c *PositionControl) Apply(target any, v float64) bool {
	s, ok := target.(PositionSetter)
	if ok {
		s.SetPosition(v)
	}
	return ok
}

type VectorAxis int

const (
	VectorX VectorAxis = iota
	VectorY
	VectorZ
)

func (a VectorAxis) String() string {
	switch a {
	case VectorY:
		return "Y"
	case VectorZ:
		return "Z"
	}
	return "X"
}

// VectorControl sets one component of a thrust vector.
type VectorControl struct {
	base
	Axis VectorAxis
}

func NewVectorControl(block string, axis VectorAxis) *VectorControl {
	return &VectorControl{
		base: base{
			name:     "VECTOR " + axis.String(),
			block:    block,
			settings: Settings{Min: -1, Center: 0, Max: 1},
		},
		Axis: axis,
	}
}

func (c *VectorControl) Apply(target any, v float64) bool {
	s, ok := target.(VectorSetter)
	if ok {
		s.SetVector(c.Axis, v)
	}
	return ok
}

var (
	_ Control = (*InputControl)(nil)
	_ Control = (*SliderControl)(nil)
	_ Control = (*AngleControl)(nil)
	_ Control = (*PositionControl)(nil)
	_ Control = (*VectorControl)(nil)
)
