// Package flock implements Reynolds-style flocking: every frame each agent
// looks at every other agent (exact O(n²), no spatial index), blends
// separation, alignment and cohesion into one capped steering force, then
// wraps around the world edges and integrates its motion.
//
// A Flock is not safe for concurrent use. Callers drive it from a single
// goroutine (a game loop, an actor) one call at a time.
package flock

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
)

// Flock owns an ordered set of agents and the pairwise displacement cache.
type Flock struct {
	cfg    Config
	rng    *rand.Rand
	agents []Agent

	// displacement is a row-major n*n buffer: cell (i, j) holds
	// agents[j].Pos - agents[i].Pos as of the last rebuild.
	displacement []geometry.Vector2D
	n            int // dimension of displacement
}

// New creates a flock of n agents all placed at origin.
// rng seeds the agents' initial velocities and those of agents added later;
// a nil rng uses a randomly seeded generator. A negative n is treated as 0.
func New(n int, origin geometry.Vector2D, cfg Config, rng *rand.Rand) *Flock {
	if n < 0 {
		n = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f := &Flock{
		cfg:    cfg,
		rng:    rng,
		agents: make([]Agent, 0, n),
	}
	for i := 0; i < n; i++ {
		f.agents = append(f.agents, NewAgent(origin.X, origin.Y, rng))
	}
	f.resizeCache(n)
	return f
}

// FromAgents creates a flock from explicit agent states, copied in order.
// Useful to replay a known state deterministically.
func FromAgents(agents []Agent, cfg Config, rng *rand.Rand) *Flock {
	f := New(0, geometry.Zero, cfg, rng)
	f.agents = append(f.agents, agents...)
	f.resizeCache(len(f.agents))
	return f
}

// Config returns the tuning the flock was built with.
func (f *Flock) Config() Config {
	return f.cfg
}

// SetConfig retunes the flock from the next Update on. An invalid cfg is
// rejected and the current tuning kept.
func (f *Flock) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	f.cfg = cfg
	return nil
}

// Len returns the number of agents.
func (f *Flock) Len() int {
	return len(f.agents)
}

// Agent returns a copy of the i-th agent.
func (f *Flock) Agent(i int) Agent {
	return f.agents[i]
}

// Agents returns a copy of every agent in collection order.
func (f *Flock) Agents() []Agent {
	out := make([]Agent, len(f.agents))
	copy(out, f.agents)
	return out
}

// Displacement returns the cached vector from agent i to agent j.
// It reflects the positions at the start of the last Update and panics if
// i or j is outside the cached dimension.
func (f *Flock) Displacement(i, j int) geometry.Vector2D {
	if i < 0 || j < 0 || i >= f.n || j >= f.n {
		panic("flock: displacement index out of range")
	}
	return f.displacement[i*f.n+j]
}

// CacheSize returns the dimension of the displacement cache, which lags
// Len() after AddBoid until the next Update.
func (f *Flock) CacheSize() int {
	return f.n
}

// AddBoid appends a new agent at (x, y). The displacement cache is resized
// by the next Update.
func (f *Flock) AddBoid(x, y float64) {
	f.agents = append(f.agents, NewAgent(x, y, f.rng))
}

// Update advances the simulation by one frame in a width x height world.
func (f *Flock) Update(width, height float64) {
	f.rebuildDisplacements()
	f.flock()
	for i := range f.agents {
		a := &f.agents[i]
		a.Wrap(width, height)
		a.Integrate(f.cfg.MaxSpeed)
	}
}

// Draw renders every agent in collection order. It does not mutate the flock.
func (f *Flock) Draw(r Renderer) {
	for _, a := range f.agents {
		a.Draw(r)
	}
}

// resizeCache makes the buffer n*n, reusing its backing array when it is
// large enough. Contents are undefined until the next rebuild.
func (f *Flock) resizeCache(n int) {
	size := n * n
	if cap(f.displacement) < size {
		f.displacement = make([]geometry.Vector2D, size)
	} else {
		f.displacement = f.displacement[:size]
		clear(f.displacement)
	}
	f.n = n
}

func (f *Flock) rebuildDisplacements() {
	n := len(f.agents)
	if n != f.n {
		f.resizeCache(n)
	}
	for i := 0; i < n; i++ {
		f.displacement[i*n+i] = geometry.Zero
		for j := i + 1; j < n; j++ {
			d := f.agents[j].Pos.Sub(f.agents[i].Pos)
			f.displacement[i*n+j] = d
			f.displacement[j*n+i] = d.Neg()
		}
	}
}

// accumulators are the raw, unnormalized per-rule sums for one agent.
type accumulators struct {
	separation geometry.Vector2D
	align      geometry.Vector2D
	cohesion   geometry.Vector2D
}

// neighbourSums scans every agent against agent i. Self is excluded by the
// distance > 0 test, as is any agent sharing i's exact position.
func (f *Flock) neighbourSums(i int) accumulators {
	var acc accumulators
	row := f.displacement[i*f.n : (i+1)*f.n]
	for j, d := range row {
		dist := d.Len()
		if dist <= 0 {
			continue
		}
		if dist < f.cfg.AlignRadius {
			acc.align = acc.align.Add(f.agents[j].Vel)
		}
		if dist < f.cfg.CohesionRadius {
			acc.cohesion = acc.cohesion.Add(f.agents[j].Pos)
		}
		if dist < f.cfg.SeparationRadius {
			acc.separation = acc.separation.Sub(d.Mul(1 / dist))
		}
	}
	return acc
}

// steer blends the three rules with equal weight into a desired velocity.
func (f *Flock) steer(acc accumulators) geometry.Vector2D {
	return acc.separation.NormalizeOrZero().Mul(f.cfg.MaxSpeed).
		Add(acc.align.NormalizeOrZero().Mul(f.cfg.MaxSpeed)).
		Add(acc.cohesion.NormalizeOrZero().Mul(f.cfg.MaxSpeed))
}

func (f *Flock) flock() {
	for i := range f.agents {
		desired := f.steer(f.neighbourSums(i))
		// Only the larger component is tested: a desired velocity pointing
		// into the (-,-) quadrant applies no force.
		if desired.MaxElement() > 0 {
			a := &f.agents[i]
			a.Accumulate(desired.Sub(a.Vel).ClampLen(f.cfg.MaxForce))
		}
	}
}
