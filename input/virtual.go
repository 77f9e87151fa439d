package input

// Virtual is a programmable Device. Headless runs and tests press its keys
// and move its axes directly instead of polling hardware.
type Virtual struct {
	// Keys lists the key names KnownKey accepts. Nil accepts every name.
	Keys map[string]bool

	pressed map[string]bool
	pads    map[int]*virtualPad
	cursorX int
	cursorY int
	screenW int
	screenH int
}

type virtualPad struct {
	buttons map[int]bool
	hats    map[HatDirection]bool
	axes    map[int]float64
}

func NewVirtual() *Virtual {
	return &Virtual{
		pressed: make(map[string]bool),
		pads:    make(map[int]*virtualPad),
		screenW: 1280,
		screenH: 720,
	}
}

func (v *Virtual) KnownKey(name string) bool {
	if v == nil || v.Keys == nil {
		return name != ""
	}
	return v.Keys[name]
}

func (v *Virtual) KeyPressed(name string) bool {
	return v != nil && v.pressed[name]
}

// Press holds or releases a key.
func (v *Virtual) Press(name string, down bool) {
	if v == nil {
		return
	}
	if down {
		v.pressed[name] = true
		return
	}
	delete(v.pressed, name)
}

// Connect plugs in a gamepad at index pad.
func (v *Virtual) Connect(pad int) {
	if v == nil {
		return
	}
	if _, ok := v.pads[pad]; ok {
		return
	}
	v.pads[pad] = &virtualPad{
		buttons: make(map[int]bool),
		hats:    make(map[HatDirection]bool),
		axes:    make(map[int]float64),
	}
}

// Disconnect unplugs a gamepad, dropping its state.
func (v *Virtual) Disconnect(pad int) {
	if v == nil {
		return
	}
	delete(v.pads, pad)
}

func (v *Virtual) GamepadConnected(pad int) bool {
	if v == nil {
		return false
	}
	_, ok := v.pads[pad]
	return ok
}

func (v *Virtual) SetButton(pad, button int, down bool) {
	if p := v.pad(pad); p != nil {
		p.buttons[button] = down
	}
}

func (v *Virtual) ButtonPressed(pad, button int) bool {
	p := v.pad(pad)
	return p != nil && p.buttons[button]
}

func (v *Virtual) SetHat(pad int, dir HatDirection, down bool) {
	if p := v.pad(pad); p != nil {
		p.hats[dir] = down
	}
}

func (v *Virtual) HatPressed(pad int, dir HatDirection) bool {
	p := v.pad(pad)
	return p != nil && p.hats[dir]
}

// SetAxis moves a gamepad axis. Values outside [-1, 1] are clamped.
func (v *Virtual) SetAxis(pad, axis int, value float64) {
	if p := v.pad(pad); p != nil {
		p.axes[axis] = max(-1, min(1, value))
	}
}

func (v *Virtual) AxisValue(pad, axis int) float64 {
	p := v.pad(pad)
	if p == nil {
		return 0
	}
	return p.axes[axis]
}

func (v *Virtual) SetCursor(x, y int) {
	if v == nil {
		return
	}
	v.cursorX, v.cursorY = x, y
}

func (v *Virtual) Cursor() (int, int) {
	if v == nil {
		return 0, 0
	}
	return v.cursorX, v.cursorY
}

func (v *Virtual) SetScreenSize(w, h int) {
	if v == nil {
		return
	}
	v.screenW, v.screenH = w, h
}

func (v *Virtual) ScreenSize() (int, int) {
	if v == nil {
		return 0, 0
	}
	return v.screenW, v.screenH
}

func (v *Virtual) pad(pad int) *virtualPad {
	if v == nil {
		return nil
	}
	return v.pads[pad]
}
