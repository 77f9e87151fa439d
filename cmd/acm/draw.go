package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/axiscontrols/axes"
	"github.com/milk9111/axiscontrols/machine"
	"golang.org/x/image/colornames"
)

const (
	dotSize = 4

	barWidth  = 160
	barHeight = 10
	rowHeight = 18
)

func statusColor(s axes.Status) color.Color {
	switch s {
	case axes.StatusDisconnected:
		return colornames.Orange
	case axes.StatusError:
		return colornames.Crimson
	}
	return colornames.Limegreen
}

// drawAxes lists every axis with a bar from the center of its range to its
// output.
func drawAxes(screen *ebiten.Image, m *axes.Manager, x, y int) {
	for _, ns := range []axes.Namespace{axes.Local, axes.Machine} {
		for _, a := range m.Axes(ns) {
			label := fmt.Sprintf("%-8s %-10s %+.2f", ns, a.Name(), a.OutputValue())
			ebitenutil.DebugPrintAt(screen, label, x, y)

			bx := float32(x + 200)
			by := float32(y + 3)
			vector.FillRect(screen, bx, by, barWidth, barHeight, colornames.Dimgray, false)

			mid := bx + barWidth/2
			w := float32(a.OutputValue()) * barWidth / 2
			if w < 0 {
				mid, w = mid+w, -w
			}
			vector.FillRect(screen, mid, by, w, barHeight, statusColor(a.Status()), false)
			y += rowHeight
		}
	}
}

// machineOffset shifts the machine clear of the axis list.
var machineOffset = cp.Vector{X: 300, Y: 0}

func drawMachine(screen *ebiten.Image, m *machine.Machine) {
	if m == nil {
		return
	}
	cp.DrawSpace(m.Space(), &spaceDrawer{screen: screen, machine: m, offset: machineOffset, zoom: 1})
}

// spaceDrawer outlines chipmunk shapes in world units shifted by offset and
// scaled by zoom.
type spaceDrawer struct {
	screen  *ebiten.Image
	machine *machine.Machine
	offset  cp.Vector
	zoom    float64
}

func (d *spaceDrawer) toScreen(v cp.Vector) (float32, float32) {
	return float32(v.X*d.zoom + d.offset.X), float32(v.Y*d.zoom + d.offset.Y)
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	x, y := d.toScreen(pos)
	r := float32(radius * d.zoom)
	vector.StrokeCircle(d.screen, x, y, r, 1, fcolor(outline), true)
	// Spoke so wheel rotation is visible.
	ex, ey := d.toScreen(pos.Add(cp.ForAngle(angle).Mult(radius)))
	vector.StrokeLine(d.screen, x, y, ex, ey, 1, fcolor(outline), true)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, 1, fill)
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, float32(max(1, 2*radius*d.zoom)), fill)
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count < 2 || len(verts) < count {
		return
	}
	var path vector.Path
	for i, v := range verts[:count] {
		x, y := d.toScreen(v)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	vector.StrokePath(d.screen, &path, fcolor(outline), true, &vector.StrokeOptions{Width: 1})
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = dotSize
	}
	x, y := d.toScreen(pos)
	half := float32(size * d.zoom / 2)
	vector.FillRect(d.screen, x-half, y-half, 2*half, 2*half, fcolor(fill), false)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_CONSTRAINTS
}

func (d *spaceDrawer) OutlineColor() cp.FColor { return named(colornames.Lightsteelblue, 1) }

// ShapeColor dims shapes whose body has come to rest.
func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if body := shape.Body(); body != nil && body.IsSleeping() {
		return named(colornames.Slategray, 0.6)
	}
	return named(colornames.Cornflowerblue, 0.6)
}

func (d *spaceDrawer) ConstraintColor() cp.FColor { return named(colornames.Gold, 1) }

func (d *spaceDrawer) CollisionPointColor() cp.FColor { return named(colornames.Tomato, 1) }

// Data hands the machine to the draw callbacks.
func (d *spaceDrawer) Data() interface{} { return d.machine }

func (d *spaceDrawer) line(a, b cp.Vector, width float32, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, width, fcolor(c), true)
}

func named(c color.RGBA, alpha float32) cp.FColor {
	return cp.FColor{R: float32(c.R) / 0xff, G: float32(c.G) / 0xff, B: float32(c.B) / 0xff, A: alpha}
}

// fcolor converts chipmunk's float colour, saturating each channel.
func fcolor(c cp.FColor) color.Color {
	channel := func(v float32) uint8 {
		return uint8(math.Round(float64(max(0, min(1, v))) * 0xff))
	}
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}
