package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
)

// whiteImage is the source texture of filled triangles; vertex colors tint it.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// ScreenRenderer draws boids as filled, outlined triangles on an ebiten image.
type ScreenRenderer struct {
	Target       *ebiten.Image
	Fill         color.Color
	Outline      color.Color
	OutlineWidth float32
}

var _ flock.Renderer = (*ScreenRenderer)(nil)

func NewScreenRenderer() *ScreenRenderer {
	return &ScreenRenderer{
		Fill:         color.RGBA{R: 130, G: 130, B: 130, A: 255},
		Outline:      color.Black,
		OutlineWidth: 0.6,
	}
}

// DrawTriangle implements flock.Renderer.
func (r *ScreenRenderer) DrawTriangle(apex, left, right geometry.Vector2D) {
	if r.Target == nil {
		return
	}
	cr, cg, cb, ca := toFloat(r.Fill)
	vertices := []ebiten.Vertex{
		vertex(apex, cr, cg, cb, ca),
		vertex(left, cr, cg, cb, ca),
		vertex(right, cr, cg, cb, ca),
	}
	indices := []uint16{0, 1, 2}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	r.Target.DrawTriangles(vertices, indices, whiteImage, op)

	r.strokeLine(apex, left)
	r.strokeLine(left, right)
	r.strokeLine(right, apex)
}

func (r *ScreenRenderer) strokeLine(from, to geometry.Vector2D) {
	vector.StrokeLine(r.Target,
		float32(from.X), float32(from.Y),
		float32(to.X), float32(to.Y),
		r.OutlineWidth, r.Outline, true)
}

func vertex(p geometry.Vector2D, cr, cg, cb, ca float32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: float32(p.X),
		DstY: float32(p.Y),
		SrcX: 1, SrcY: 1,
		ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
	}
}

// toFloat converts a color to the premultiplied [0, 1] components ebiten vertices use.
func toFloat(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}
