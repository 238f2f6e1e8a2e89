package simulation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
)

// WorldActorName is the name the world is spawned under.
const WorldActorName = "world"

// WorldActor is the single owner of the Flock. The mailbox delivers one
// message at a time, so ticks and spawns never overlap.
type WorldActor struct {
	flock *flock.Flock
	cfg   *Config
	frame uint64
	// Communication with UI
	snapshotCh chan<- *Snapshot
	// --- Benchmark Stats ---
	tickCount   int
	spawnCount  int
	lastLogTime time.Time
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor creates the world logic unit around an existing flock.
// snapshotCh may be nil when nobody renders the world.
func NewWorldActor(snapshotCh chan<- *Snapshot, cfg *Config, f *flock.Flock) *WorldActor {
	return &WorldActor{
		flock:       f,
		cfg:         cfg,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

// NewFlock builds the initial flock described by cfg, centred in the world.
func NewFlock(cfg *Config) *flock.Flock {
	center := geometry.Vector2D{X: cfg.WorldWidth / 2, Y: cfg.WorldHeight / 2}
	return flock.New(cfg.NumBoids, center, cfg.Flock, newRand(cfg.Seed))
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SpawnWorld starts a WorldActor holding a fresh flock.
func SpawnWorld(ctx context.Context, system actor.ActorSystem, cfg *Config, snapshotCh chan<- *Snapshot) (*actor.PID, error) {
	pid, err := system.Spawn(ctx, WorldActorName, NewWorldActor(snapshotCh, cfg, NewFlock(cfg)))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}
	return pid, nil
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World is hatching %d boids...", w.flock.Len())
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Info("World Started.")

	case *structpb.Struct:
		cmd, err := ParseCommand(msg)
		if err != nil {
			ctx.Logger().Errorf("World dropped command: %v", err)
			ctx.Unhandled()
			return
		}
		switch cmd.Op {
		case OpTick:
			w.step(cmd.X, cmd.Y)
			w.logBenchmarks(ctx.Logger())
			w.pushSnapshot()
		case OpAddBoid:
			w.flock.AddBoid(cmd.X, cmd.Y)
			w.spawnCount++
			ctx.Logger().Debugf("Boid #%d added at (%.1f, %.1f)", w.flock.Len(), cmd.X, cmd.Y)
		case OpSetParams:
			if err := w.flock.SetConfig(cmd.Params); err != nil {
				ctx.Logger().Errorf("World kept its tuning: %v", err)
				return
			}
			ctx.Logger().Debugf("World retuned: %+v", cmd.Params)
		case OpGetStats:
			ctx.Response(w.stats().ToProto())
		}

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World is shutdown after %d frames", w.frame)
	return nil
}

// step advances the flock by one frame in a width x height world.
func (w *WorldActor) step(width, height float64) {
	w.flock.Update(width, height)
	w.frame++
	w.tickCount++
}

func (w *WorldActor) stats() Stats {
	return ComputeStats(w.frame, w.flock.Agents())
}

func (w *WorldActor) logBenchmarks(logger golog.Logger) {
	if time.Since(w.lastLogTime) >= time.Second {
		logger.Infof("📊 TICK RATE: %d/sec | Spawned: %d | %s", w.tickCount, w.spawnCount, w.stats())
		w.tickCount = 0
		w.spawnCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- &Snapshot{Frame: w.frame, Agents: w.flock.Agents()}:
	default:
		// UI busy, skip frame
	}
}
