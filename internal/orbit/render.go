package orbit

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/0x0caf/color-dancing/internal/config"
)

// Point is a position relative to the screen center, y pointing up.
type Point struct {
	X, Y float64
}

// Op selects the primitive a Command draws.
type Op uint8

const (
	OpClear Op = iota
	OpCircle
	OpRect
	OpTriangle
)

// Command is a single drawing primitive. Rect and triangle commands are
// centered on Center.
type Command struct {
	Op       Op
	Center   Point
	Radius   float64
	Width    float64
	Height   float64
	Rotation float64
	Fill     color.Color
	Stroke   color.Color
}

// Canvas is the drawing surface provided by the host.
type Canvas interface {
	Clear(bg color.Color)
	Circle(center Point, radius float64, fill, stroke color.Color)
	Rect(center Point, w, h float64, fill, stroke color.Color)
	Triangle(center Point, w, h, rotation float64, fill, stroke color.Color)
}

// Background is the dark gray the canvas is wiped to between orbits.
var Background = colorful.Color{R: config.BackgroundGray, G: config.BackgroundGray, B: config.BackgroundGray}

// Render maps s to the commands for one frame. Only Clearing and Advancing
// draw anything; other phases leave the previous frame in place.
func Render(s *State) []Command {
	switch s.Phase {
	case Clearing:
		return []Command{{Op: OpClear, Fill: Background}}
	case Advancing:
		return []Command{shapeCommand(s)}
	default:
		return nil
	}
}

func shapeCommand(s *State) Command {
	deg := float64(s.AngleStep) / float64(s.MaxAngleStep) * 360
	angle := deg * math.Pi / 180
	size := float64(s.Radius)

	cmd := Command{
		Center: Point{
			X: math.Sin(angle) * s.Distance,
			Y: math.Cos(angle) * s.Distance,
		},
		Fill:   color.Transparent,
		Stroke: s.DrawColor.Unit(),
	}
	switch s.Shape {
	case Square:
		cmd.Op = OpRect
		cmd.Width, cmd.Height = size, size
	case IsoTriangle:
		cmd.Op = OpTriangle
		cmd.Width, cmd.Height = size, size
		cmd.Rotation = angle
	default:
		cmd.Op = OpCircle
		cmd.Radius = size
	}
	return cmd
}

// Apply draws cmd onto c.
func (cmd Command) Apply(c Canvas) {
	switch cmd.Op {
	case OpClear:
		c.Clear(cmd.Fill)
	case OpCircle:
		c.Circle(cmd.Center, cmd.Radius, cmd.Fill, cmd.Stroke)
	case OpRect:
		c.Rect(cmd.Center, cmd.Width, cmd.Height, cmd.Fill, cmd.Stroke)
	case OpTriangle:
		c.Triangle(cmd.Center, cmd.Width, cmd.Height, cmd.Rotation, cmd.Fill, cmd.Stroke)
	}
}

// Replay applies cmds to c in order.
func Replay(c Canvas, cmds []Command) {
	for _, cmd := range cmds {
		cmd.Apply(c)
	}
}

// TriangleVertices returns the corners of an isoceles triangle of base w and
// height h centered on center, apex first, rotated counterclockwise by
// rotation radians.
func TriangleVertices(center Point, w, h, rotation float64) [3]Point {
	pts := [3]Point{
		{0, h / 2},
		{-w / 2, -h / 2},
		{w / 2, -h / 2},
	}
	sin, cos := math.Sincos(rotation)
	for i, p := range pts {
		pts[i] = Point{
			X: center.X + p.X*cos - p.Y*sin,
			Y: center.Y + p.X*sin + p.Y*cos,
		}
	}
	return pts
}
