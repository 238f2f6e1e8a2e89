package flock

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
)

// Triangle dimensions used by Agent.Draw.
const (
	bodyLength    = 15.0
	bodyHalfWidth = 5.0
)

// Renderer is the drawing surface an Agent renders itself on.
type Renderer interface {
	DrawTriangle(apex, left, right geometry.Vector2D)
}

// Agent is a single boid.
// Fields are exported so renderers and snapshots can read them; only the
// Flock that owns an Agent mutates it.
type Agent struct {
	Pos geometry.Vector2D
	Vel geometry.Vector2D
	Acc geometry.Vector2D // reset to zero by every Integrate
}

// NewAgent creates an agent at (x, y) with each velocity component drawn
// uniformly from [-1, 1]. The velocity is not normalized and may be zero.
func NewAgent(x, y float64, rng *rand.Rand) Agent {
	return Agent{
		Pos: geometry.Vector2D{X: x, Y: y},
		Vel: geometry.Vector2D{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
		},
	}
}

// Accumulate adds a steering force to the acceleration. No cap is applied
// here, each force is clamped where it is computed.
func (a *Agent) Accumulate(force geometry.Vector2D) {
	a.Acc = a.Acc.Add(force)
}

// Wrap moves an agent that left the world back inside it.
// A negative coordinate becomes size - coordinate (which lands past the
// opposite edge and is folded back by the modulo branch on a later frame);
// a coordinate past the edge is reduced modulo size.
func (a *Agent) Wrap(width, height float64) {
	a.Pos.X = wrapAxis(a.Pos.X, width)
	a.Pos.Y = wrapAxis(a.Pos.Y, height)
}

func wrapAxis(p, size float64) float64 {
	if p < 0 {
		return size - p
	} else if p > size {
		return math.Mod(p, size)
	}
	return p
}

// Integrate applies the accumulated acceleration, caps the speed at
// maxSpeed, moves the agent and clears the acceleration.
func (a *Agent) Integrate(maxSpeed float64) {
	a.Vel = a.Vel.Add(a.Acc).ClampLen(maxSpeed)
	a.Pos = a.Pos.Add(a.Vel)
	a.Acc = geometry.Zero
}

// Seek steers toward target with three times the usual force cap.
// It is not part of the per-frame flocking path.
func (a *Agent) Seek(target geometry.Vector2D, cfg Config) {
	desired := target.Sub(a.Pos)
	a.Accumulate(desired.Sub(a.Vel).ClampLen(cfg.MaxForce * 3))
}

// Bounds pushes the agent back toward the middle of a width x height world
// once it is within cfg.BoundsMargin of an edge.
// It is not part of the per-frame flocking path.
func (a *Agent) Bounds(width, height float64, cfg Config) {
	var desired geometry.Vector2D
	if a.Pos.X > width-cfg.BoundsMargin {
		desired = desired.Add(geometry.Vector2D{X: -cfg.MaxSpeed, Y: a.Vel.Y})
	}
	if a.Pos.X < cfg.BoundsMargin {
		desired = desired.Add(geometry.Vector2D{X: cfg.MaxSpeed, Y: a.Vel.Y})
	}
	if a.Pos.Y > height-cfg.BoundsMargin {
		desired = desired.Add(geometry.Vector2D{X: a.Vel.X, Y: -cfg.MaxSpeed})
	}
	if a.Pos.Y < cfg.BoundsMargin {
		desired = desired.Add(geometry.Vector2D{X: a.Vel.X, Y: cfg.MaxSpeed})
	}

	if desired.LenSqr() > 0 {
		a.Accumulate(desired.Sub(a.Vel).ClampLen(cfg.MaxForce))
	}
}

// Heading is the unit direction of travel. A stopped agent faces +X.
func (a Agent) Heading() geometry.Vector2D {
	return a.Vel.NormalizeOr(geometry.Vector2D{X: 1, Y: 0})
}

// Triangle returns the apex and the two base vertices of the agent's shape.
func (a Agent) Triangle() (apex, left, right geometry.Vector2D) {
	dir := a.Heading()
	back := a.Pos.Sub(dir.Mul(bodyLength))
	side := dir.Perp().Mul(bodyHalfWidth)
	return a.Pos, back.Add(side), back.Sub(side)
}

// Draw renders the agent as a triangle pointing along its velocity.
func (a Agent) Draw(r Renderer) {
	apex, left, right := a.Triangle()
	r.DrawTriangle(apex, left, right)
}
