// Package machine simulates a machine of blocks on a chipmunk space. Blocks
// implement the actuator setters controls drive.
package machine

import (
	"errors"
	"fmt"
	"maps"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/axiscontrols/store"
)

var (
	ErrEmptyID        = errors.New("machine: empty block id")
	ErrDuplicateBlock = errors.New("machine: duplicate block id")
	ErrUnknownBlock   = errors.New("machine: unknown block")
)

type Machine struct {
	Name string

	gravity float64
	space   *cp.Space
	order   []string
	blocks  map[string]*Block
	data    *store.MemoryBlob
}

// New builds a machine from spec. The embedded data blob starts as a copy of
// spec.Data.
func New(spec *Spec) (*Machine, error) {
	if spec == nil {
		spec = &Spec{}
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: spec.Gravity})

	m := &Machine{
		Name:    spec.Name,
		gravity: spec.Gravity,
		space:   space,
		blocks:  make(map[string]*Block, len(spec.Blocks)),
		data:    store.NewMemoryBlob(maps.Clone(spec.Data)),
	}
	for _, bs := range spec.Blocks {
		m.add(newBlock(bs))
	}
	return m, nil
}

// Load reads and builds the machine file at path.
func Load(path string) (*Machine, error) {
	spec, err := LoadSpec(path)
	if err != nil {
		return nil, err
	}
	return New(spec)
}

func (m *Machine) add(b *Block) {
	m.space.AddBody(b.body)
	m.space.AddShape(b.shape)
	m.blocks[b.ID] = b
	m.order = append(m.order, b.ID)
}

// AddBlock adds a block at runtime.
func (m *Machine) AddBlock(spec BlockSpec) (*Block, error) {
	if m == nil {
		return nil, ErrUnknownBlock
	}
	if spec.ID == "" {
		return nil, ErrEmptyID
	}
	if _, ok := m.blocks[spec.ID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateBlock, spec.ID)
	}
	b := newBlock(spec)
	m.add(b)
	return b, nil
}

// RemoveBlock destroys a block and its body.
func (m *Machine) RemoveBlock(id string) error {
	if m == nil {
		return ErrUnknownBlock
	}
	b, ok := m.blocks[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownBlock, id)
	}
	m.space.RemoveShape(b.shape)
	m.space.RemoveBody(b.body)
	delete(m.blocks, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Block resolves a block by id for the control layer.
func (m *Machine) Block(id string) (any, bool) {
	b, ok := m.Get(id)
	if !ok {
		return nil, false
	}
	return b, true
}

func (m *Machine) Get(id string) (*Block, bool) {
	if m == nil {
		return nil, false
	}
	b, ok := m.blocks[id]
	return b, ok
}

// Blocks lists blocks in file order.
func (m *Machine) Blocks() []*Block {
	if m == nil {
		return nil
	}
	out := make([]*Block, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.blocks[id])
	}
	return out
}

// Data is the machine-embedded blob machine axes and controls are saved in.
func (m *Machine) Data() *store.MemoryBlob {
	if m == nil {
		return nil
	}
	return m.data
}

func (m *Machine) Space() *cp.Space {
	if m == nil {
		return nil
	}
	return m.space
}

// Update pushes block setpoints into their bodies and steps the space by dt
// seconds.
func (m *Machine) Update(dt float64) {
	if m == nil || dt <= 0 {
		return
	}
	for _, id := range m.order {
		b := m.blocks[id]
		b.advance(dt)
		b.actuate(dt)
	}
	m.space.Step(dt)
}

// Spec captures the machine layout with current setpoints and data.
func (m *Machine) Spec() *Spec {
	if m == nil {
		return nil
	}
	spec := &Spec{Name: m.Name, Gravity: m.gravity, Data: m.data.Data()}
	for _, b := range m.Blocks() {
		bs := b.spec
		bs.Angle = b.angle
		bs.Sliders = make(map[string]float64, len(b.sliders))
		for k, v := range b.sliders {
			bs.Sliders[k] = v
		}
		spec.Blocks = append(spec.Blocks, bs)
	}
	return spec
}

// Save writes the machine, with its data blob, to path.
func (m *Machine) Save(path string) error {
	if m == nil {
		return ErrUnknownBlock
	}
	return WriteSpec(path, m.Spec())
}
