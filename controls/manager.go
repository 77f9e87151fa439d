package controls

import (
	"log"

	"github.com/milk9111/axiscontrols/axes"
)

type entry struct {
	blockType string
	controls  []Control
}

// Manager caches the controls of every block instance it has seen and
// applies the active ones each tick. It is not safe for concurrent use.
type Manager struct {
	axes   axes.Resolver
	blocks BlockLookup
	logger *log.Logger

	order []string
	byID  map[string]*entry
}

// NewManager routes axes resolved by r onto blocks found through blocks.
// Either may be nil; controls then never resolve.
func NewManager(r axes.Resolver, blocks BlockLookup) *Manager {
	return &Manager{
		axes:   r,
		blocks: blocks,
		byID:   make(map[string]*entry),
	}
}

func (m *Manager) SetLogger(l *log.Logger) {
	if m == nil {
		return
	}
	m.logger = l
}

func (m *Manager) logf(format string, args ...any) {
	if m.logger != nil {
		m.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// SetBlocks swaps the block lookup, e.g. when a new machine is loaded.
func (m *Manager) SetBlocks(blocks BlockLookup) {
	if m == nil {
		return
	}
	m.blocks = blocks
}

// BlockControls returns the controls of block id, building the defaults for
// blockType on first use. Later calls return the cached list whatever type
// they pass. An unknown block type has no controls.
func (m *Manager) BlockControls(blockType, id string) []Control {
	if m == nil || id == "" {
		return nil
	}
	if e, ok := m.byID[id]; ok {
		return e.controls
	}
	e := &entry{blockType: blockType, controls: NewBlockControls(blockType, id)}
	m.byID[id] = e
	m.order = append(m.order, id)
	return e.controls
}

// BlockControl returns the control called name on block id.
func (m *Manager) BlockControl(blockType, id, name string) (Control, bool) {
	for _, c := range m.BlockControls(blockType, id) {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Controls returns the cached controls of id without building any.
func (m *Manager) Controls(id string) ([]Control, bool) {
	if m == nil {
		return nil, false
	}
	e, ok := m.byID[id]
	if !ok {
		return nil, false
	}
	return e.controls, true
}

// BlockType returns the type a cached block was built for.
func (m *Manager) BlockType(id string) (string, bool) {
	if m == nil {
		return "", false
	}
	e, ok := m.byID[id]
	if !ok {
		return "", false
	}
	return e.blockType, true
}

// Blocks lists cached block ids in the order they were first seen.
func (m *Manager) Blocks() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.order...)
}

// Forget drops the cached controls of a destroyed block.
func (m *Manager) Forget(id string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.byID[id]; !ok {
		return false
	}
	delete(m.byID, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear drops every cached block.
func (m *Manager) Clear() {
	if m == nil {
		return
	}
	m.order = nil
	m.byID = make(map[string]*entry)
}

func (m *Manager) active(c Control) bool {
	s := c.Settings()
	if !s.Enabled || s.Axis == "" || m.axes == nil {
		return false
	}
	_, ok := m.axes.Get(s.Axis)
	return ok
}

func (m *Manager) collect(controls []Control, out []Control) []Control {
	for _, c := range controls {
		if g, ok := c.(*Group); ok {
			out = m.collect(g.members, out)
			continue
		}
		if m.active(c) {
			out = append(out, c)
		}
	}
	return out
}

// ActiveBlockControls returns the enabled controls of id whose axis
// currently resolves. Group members are listed in place of their group.
func (m *Manager) ActiveBlockControls(id string) []Control {
	if m == nil {
		return nil
	}
	e, ok := m.byID[id]
	if !ok {
		return nil
	}
	return m.collect(e.controls, nil)
}

// ActiveControls returns the active controls of every cached block.
func (m *Manager) ActiveControls() []Control {
	if m == nil {
		return nil
	}
	var out []Control
	for _, id := range m.order {
		out = m.collect(m.byID[id].controls, out)
	}
	return out
}

// CopyBlockControls copies the settings of src's controls onto the
// controls of dst with the same name. Controls without a counterpart are
// skipped, as is a copy where either block is not cached.
func (m *Manager) CopyBlockControls(src, dst string) {
	if m == nil || src == dst {
		return
	}
	from, ok := m.byID[src]
	if !ok {
		return
	}
	to, ok := m.byID[dst]
	if !ok {
		return
	}
	copyControls(from.controls, to.controls)
}

func copyControls(from, to []Control) {
	for _, s := range from {
		for _, d := range to {
			if s.Name() != d.Name() {
				continue
			}
			sg, sok := s.(*Group)
			dg, dok := d.(*Group)
			switch {
			case sok && dok:
				copyControls(sg.members, dg.members)
				dg.Select(sg.Selected())
			case !sok && !dok:
				d.Settings().CopyFrom(s.Settings())
			}
		}
	}
}

// Apply maps the output of each active control's axis and drives its
// block. It returns how many controls reached a block.
func (m *Manager) Apply() int {
	if m == nil || m.blocks == nil {
		return 0
	}
	n := 0
	for _, c := range m.ActiveControls() {
		ax, ok := m.axes.Get(c.Settings().Axis)
		if !ok {
			continue
		}
		block, ok := m.blocks.Block(c.BlockID())
		if !ok {
			continue
		}
		if c.Apply(block, c.Map(ax.OutputValue())) {
			n++
		}
	}
	return n
}
