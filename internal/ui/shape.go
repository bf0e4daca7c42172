package ui

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) is inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// cornerRadius maps a 0..1 roundness to a radius, 1 being a full half of the
// shorter side.
func (r Rect) cornerRadius(roundness float64) float64 {
	return math.Min(r.W, r.H) * math.Max(0, math.Min(roundness, 1)) / 2
}

func roundedPath(r Rect, roundness float64) *vector.Path {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	rad := float32(r.cornerRadius(roundness))

	var p vector.Path
	p.MoveTo(x+rad, y)
	p.ArcTo(x+w, y, x+w, y+h, rad)
	p.ArcTo(x+w, y+h, x, y+h, rad)
	p.ArcTo(x, y+h, x, y, rad)
	p.ArcTo(x, y, x+w, y, rad)
	p.Close()
	return &p
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = float32(c.A) / 0xff
	}
	dst.DrawTriangles(vs, is, white(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// FillRoundedRect fills r with rounded corners.
func FillRoundedRect(dst *ebiten.Image, r Rect, roundness float64, clr color.Color) {
	vs, is := roundedPath(r, roundness).AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr)
}

// StrokeRoundedRect outlines r with rounded corners.
func StrokeRoundedRect(dst *ebiten.Image, r Rect, roundness, width float64, clr color.Color) {
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	}
	vs, is := roundedPath(r, roundness).AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawVertices(dst, vs, is, clr)
}
