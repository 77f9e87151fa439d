package controls

// Group holds mutually exclusive controls of one block: at most one member
// is enabled at a time. The group itself never drives the block.
type Group struct {
	base
	members  []Control
	selected string
}

// NewGroup builds a group whose members keep the given order. Every member
// starts disabled.
func NewGroup(block, name string, members ...Control) *Group {
	g := &Group{base: base{name: name, block: block}}
	for _, c := range members {
		if c == nil {
			continue
		}
		c.Settings().Enabled = false
		g.members = append(g.members, c)
	}
	return g
}

func (g *Group) Members() []Control {
	return append([]Control(nil), g.members...)
}

func (g *Group) Member(name string) (Control, bool) {
	for _, c := range g.members {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Selected returns the name of the enabled member, "" if none.
func (g *Group) Selected() string { return g.selected }

// Select enables the named member and disables every other one. A name
// that matches no member disables them all.
func (g *Group) Select(name string) {
	g.selected = ""
	for _, c := range g.members {
		on := c.Name() == name
		c.Settings().Enabled = on
		if on {
			g.selected = name
		}
	}
	g.settings.Enabled = g.selected != ""
}

func (g *Group) Apply(any, float64) bool { return false }

var _ Control = (*Group)(nil)
