package controls

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/milk9111/axiscontrols/store"
)

const countKey = "controls-count"

func rowKey(i int, field string) string {
	return "controls-" + strconv.Itoa(i) + "-" + field
}

// Key returns the persistence key of one field of a block's control.
func Key(block, control, field string) string {
	return "control-" + block + "-" + control + "-" + field
}

var settingFields = []string{"enabled", "axis", "min", "center", "max"}

func loadSettings(f store.Fields, block, name string, s *Settings) {
	s.Enabled = f.Bool(Key(block, name, "enabled"), s.Enabled)
	s.Axis = f.String(Key(block, name, "axis"), s.Axis)
	s.Min = f.Float(Key(block, name, "min"), s.Min)
	s.Center = f.Float(Key(block, name, "center"), s.Center)
	s.Max = f.Float(Key(block, name, "max"), s.Max)
}

func saveSettings(f store.Fields, block, name string, s *Settings) {
	f.SetBool(Key(block, name, "enabled"), s.Enabled)
	f.SetString(Key(block, name, "axis"), s.Axis)
	f.SetFloat(Key(block, name, "min"), s.Min)
	f.SetFloat(Key(block, name, "center"), s.Center)
	f.SetFloat(Key(block, name, "max"), s.Max)
}

func eachKey(controls []Control, block string, fn func(key string)) {
	for _, c := range controls {
		if g, ok := c.(*Group); ok {
			fn(Key(block, g.name, "selected"))
			eachKey(g.members, block, fn)
			continue
		}
		for _, field := range settingFields {
			fn(Key(block, c.Name(), field))
		}
	}
}

// Save writes the settings of every cached block into the machine blob,
// replacing what an earlier Save wrote.
func (m *Manager) Save(b store.Blob) {
	if m == nil || b == nil {
		return
	}
	f := store.BlobFields(b)
	erase(f)

	n := 0
	for _, id := range m.order {
		e := m.byID[id]
		if len(e.controls) == 0 {
			continue
		}
		f.SetString(rowKey(n, "block"), id)
		f.SetString(rowKey(n, "type"), e.blockType)
		save(f, id, e.controls)
		n++
	}
	f.SetInt(countKey, n)
}

func save(f store.Fields, block string, controls []Control) {
	for _, c := range controls {
		if g, ok := c.(*Group); ok {
			f.SetString(Key(block, g.name, "selected"), g.selected)
			save(f, block, g.members)
			continue
		}
		saveSettings(f, block, c.Name(), c.Settings())
	}
}

// erase removes the rows and control keys of the previous save.
func erase(f store.Fields) {
	count := f.Int(countKey, 0)
	for i := 0; i < count; i++ {
		id := f.String(rowKey(i, "block"), "")
		if id != "" {
			eachKey(NewBlockControls(f.String(rowKey(i, "type"), ""), id), id, f.Remove)
		}
		f.Remove(rowKey(i, "block"))
		f.Remove(rowKey(i, "type"))
	}
	f.Remove(countKey)
}

// Load replaces the cache with the controls saved in b. Rows that cannot be
// restored are logged and skipped; the rest load.
func (m *Manager) Load(b store.Blob) error {
	if m == nil || b == nil {
		return nil
	}
	f := store.BlobFields(b)
	m.Clear()

	var errs []error
	count := f.Int(countKey, 0)
	for i := 0; i < count; i++ {
		id := f.String(rowKey(i, "block"), "")
		blockType := f.String(rowKey(i, "type"), "")
		if id == "" {
			err := fmt.Errorf("controls: row %d: %w", i, ErrEmptyBlockID)
			m.logf("%v", err)
			errs = append(errs, err)
			continue
		}
		if _, dup := m.byID[id]; dup {
			m.logf("controls: block %s listed twice, keeping the first row", id)
			continue
		}

		controls := m.BlockControls(blockType, id)
		if len(controls) == 0 {
			m.logf("controls: block %s type=%q has no controls", id, blockType)
			continue
		}
		load(f, id, controls)
	}
	m.logf("controls: loaded blocks=%d active=%d", len(m.order), len(m.ActiveControls()))
	return errors.Join(errs...)
}

func load(f store.Fields, block string, controls []Control) {
	for _, c := range controls {
		if g, ok := c.(*Group); ok {
			load(f, block, g.members)
			g.Select(f.String(Key(block, g.name, "selected"), g.selected))
			continue
		}
		loadSettings(f, block, c.Name(), c.Settings())
	}
}
