package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/0x0caf/color-dancing/internal/config"
	"github.com/0x0caf/color-dancing/internal/orbit"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image3x3Center).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// canvas is an offscreen image that keeps its contents between frames, so
// every shape drawn during an orbit stays visible until the next clear.
type canvas struct {
	img *ebiten.Image
}

func newCanvas(w, h int) *canvas {
	return &canvas{img: ebiten.NewImage(w, h)}
}

func (c *canvas) Clear(bg color.Color) {
	c.img.Fill(bg)
}

func (c *canvas) Circle(center orbit.Point, radius float64, fill, stroke color.Color) {
	x, y := toScreen(center, c.img.Bounds().Dx(), c.img.Bounds().Dy())
	if visible(fill) {
		vector.DrawFilledCircle(c.img, x, y, float32(radius), fill, true)
	}
	vector.StrokeCircle(c.img, x, y, float32(radius), config.StrokeWidth, stroke, true)
}

func (c *canvas) Rect(center orbit.Point, w, h float64, fill, stroke color.Color) {
	x, y := toScreen(center, c.img.Bounds().Dx(), c.img.Bounds().Dy())
	left, top := x-float32(w)/2, y-float32(h)/2
	if visible(fill) {
		vector.DrawFilledRect(c.img, left, top, float32(w), float32(h), fill, true)
	}
	vector.StrokeRect(c.img, left, top, float32(w), float32(h), config.StrokeWidth, stroke, true)
}

func (c *canvas) Triangle(center orbit.Point, w, h, rotation float64, fill, stroke color.Color) {
	bw, bh := c.img.Bounds().Dx(), c.img.Bounds().Dy()

	var path vector.Path
	for i, p := range orbit.TriangleVertices(center, w, h, rotation) {
		x, y := toScreen(p, bw, bh)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	if visible(fill) {
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		c.drawPath(vs, is, fill)
	}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:      config.StrokeWidth,
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	})
	c.drawPath(vs, is, stroke)
}

func (c *canvas) drawPath(vs []ebiten.Vertex, is []uint16, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.img.DrawTriangles(vs, is, whiteSubImage, op)
}
