package machine

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/axiscontrols/controls"
)

const (
	// spinRate is the angular velocity, in radians per second, of a
	// rotating block at full input and a SPEED slider of 1.
	spinRate = 2 * math.Pi
	// steerRate is how many degrees per second a steering block turns at
	// full input and a ROTATION SPEED slider of 1.
	steerRate = 90.0
	thrust    = 50.0

	defaultStroke = 32.0
	defaultSize   = 16.0
)

// Block is one simulated machine part. It implements the actuator setters
// its controls call; values take effect on the next Update.
type Block struct {
	ID   string
	Type string

	spec   BlockSpec
	body   *cp.Body
	shape  *cp.Shape
	home   cp.Vector
	stroke float64

	angle    float64
	input    float64
	position float64
	vector   [3]float64
	sliders  map[string]float64
}

func newBlock(spec BlockSpec) *Block {
	b := &Block{
		ID:      spec.ID,
		Type:    spec.Type,
		spec:    spec,
		home:    cp.Vector{X: spec.X, Y: spec.Y},
		stroke:  spec.Stroke,
		angle:   spec.Angle,
		sliders: make(map[string]float64),
	}
	if b.stroke <= 0 {
		b.stroke = defaultStroke
	}

	hasInput := false
	for _, c := range controls.NewBlockControls(spec.Type, spec.ID) {
		switch c := c.(type) {
		case *controls.SliderControl:
			b.sliders[c.Name()] = 1
		case *controls.InputControl:
			hasInput = true
		case *controls.Group:
			hasInput = true
		}
	}
	// Blocks without an input control run at full input.
	if !hasInput {
		b.input = 1
	}
	for name, v := range spec.Sliders {
		b.sliders[name] = v
	}

	mass := spec.Mass
	if mass <= 0 {
		mass = 1
	}
	w, h := spec.Width, spec.Height
	if w <= 0 {
		w = defaultSize
	}
	if h <= 0 {
		h = defaultSize
	}

	var moment float64
	if spec.Radius > 0 {
		moment = cp.MomentForCircle(mass, 0, spec.Radius, cp.Vector{})
	} else {
		moment = cp.MomentForBox(mass, w, h)
	}
	b.body = cp.NewBody(mass, moment)
	b.body.SetPosition(b.home)
	b.body.SetAngle(spec.Angle * math.Pi / 180)

	if spec.Radius > 0 {
		b.shape = cp.NewCircle(b.body, spec.Radius, cp.Vector{})
	} else {
		b.shape = cp.NewBox(b.body, w, h, 0)
	}
	b.shape.SetFriction(0.7)
	return b
}

func (b *Block) SetAngle(degrees float64) { b.angle = degrees }

func (b *Block) SetInput(v float64) { b.input = v }

func (b *Block) SetPosition(v float64) { b.position = max(0, min(1, v)) }

func (b *Block) SetVector(axis controls.VectorAxis, v float64) {
	if axis < controls.VectorX || axis > controls.VectorZ {
		return
	}
	b.vector[axis] = v
}

func (b *Block) SetSlider(name string, v float64) bool {
	if _, ok := b.sliders[name]; !ok {
		return false
	}
	b.sliders[name] = v
	return true
}

func (b *Block) Angle() float64    { return b.angle }
func (b *Block) Input() float64    { return b.input }
func (b *Block) Position() float64 { return b.position }

func (b *Block) Vector(axis controls.VectorAxis) float64 {
	if axis < controls.VectorX || axis > controls.VectorZ {
		return 0
	}
	return b.vector[axis]
}

func (b *Block) Slider(name string) (float64, bool) {
	v, ok := b.sliders[name]
	return v, ok
}

// Body exposes the physics body, e.g. for drawing.
func (b *Block) Body() *cp.Body { return b.body }

func (b *Block) slider(name string) float64 {
	if v, ok := b.sliders[name]; ok {
		return v
	}
	return 1
}

// actuate pushes the block's current setpoints into its body.
func (b *Block) actuate(dt float64) {
	switch b.Type {
	case controls.BlockWheel, controls.BlockLargeWheel, controls.BlockPoweredCog, controls.BlockDrill,
		controls.BlockRopeWinch, controls.BlockSpinningBlock, controls.BlockCircularSaw:
		b.body.SetAngularVelocity(b.input * b.slider("SPEED") * spinRate)

	case controls.BlockSteeringBlock, controls.BlockSteeringHinge:
		b.angle += b.input * b.slider("ROTATION SPEED") * steerRate * dt
		b.body.SetAngle(b.angle * math.Pi / 180)
		b.body.SetAngularVelocity(0)

	case controls.BlockPiston:
		b.body.SetPosition(cp.Vector{X: b.home.X, Y: b.home.Y - b.position*b.stroke})
		b.body.SetVelocity(0, 0)

	case controls.BlockVectorThruster:
		// The simulation is planar; Z is kept for callers but has no effect.
		v := b.body.Velocity()
		b.body.SetVelocity(v.X+b.vector[controls.VectorX]*thrust*dt, v.Y+b.vector[controls.VectorY]*thrust*dt)
	}
}

// advance integrates setpoints that move on their own, such as a piston
// driven by raw input instead of a target position.
func (b *Block) advance(dt float64) {
	if b.Type != controls.BlockPiston || b.input == 0 {
		return
	}
	b.SetPosition(b.position + b.input*b.slider("SPEED")*dt)
}
