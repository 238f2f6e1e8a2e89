// Package game is the interactive ebiten front-end: it forwards ticks and
// mouse spawns to the world actor and draws the snapshots it sends back.
package game

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tochemey/goakt/v3/actor"

	"github.com/lao-tseu-is-alive/go-boids-flock/internal/simulation"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/ui"
)

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *simulation.Snapshot
	lastState  *simulation.Snapshot
	renderer   *ScreenRenderer

	// UI Controls
	panel         *ui.UIPanel
	widgetPause   *ui.Checkbox
	widgetStats   *ui.Checkbox
	stepButton    *ui.Button
	stepRequested bool

	// Live tuning, sent to the world when a slider moves
	sliderSpeed      *ui.Slider
	sliderSeparation *ui.Slider
	sliderCohesion   *ui.Slider
	tuning           flock.Config

	cfg *simulation.Config
	// Live world size, updated by Layout
	width, height int

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

func New(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem) (*Game, error) {
	// Buffer to avoid blocking the world
	snapshotCh := make(chan *simulation.Snapshot, 10)

	worldPID, err := simulation.SpawnWorld(ctx, system, cfg, snapshotCh)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &simulation.Snapshot{}, // Avoid nil pointer
		renderer:   NewScreenRenderer(),
		cfg:        cfg,
		width:      int(cfg.WorldWidth),
		height:     int(cfg.WorldHeight),
		tuning:     cfg.Flock,
	}

	g.panel = ui.NewUIPanel(10, 10, 180, "Boids")
	g.widgetPause = g.panel.AddCheckbox("Pause", false)
	g.widgetStats = g.panel.AddCheckbox("Show stats", true)
	g.stepButton = g.panel.AddButton("Step", func() { g.stepRequested = true })
	g.sliderSpeed = g.panel.AddSlider("Max speed", 0.5, 10, cfg.Flock.MaxSpeed)
	g.sliderSeparation = g.panel.AddSlider("Separation", 5, 100, cfg.Flock.SeparationRadius)
	g.sliderCohesion = g.panel.AddSlider("Cohesion", 5, 150, cfg.Flock.CohesionRadius)

	return g, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel
	g.panel.Update()
	g.stepButton.Disabled = !g.widgetPause.Value
	if err := g.syncTuning(); err != nil {
		return err
	}

	// 2. Retrieve Latest State (Non-blocking)
Loop:
	for {
		select {
		case snap := <-g.snapshotCh:
			g.lastState = snap
		default:
			break Loop
		}
	}

	// 3. Spawn while the left button is held over the world
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !g.panel.Contains(float64(mx), float64(my)) {
		if err := actor.Tell(g.ctx, g.worldPID, simulation.NewAddBoid(float64(mx), float64(my))); err != nil {
			return fmt.Errorf("failed to add boid: %w", err)
		}
	}

	// 4. Trigger Simulation Step with the current window size
	if !g.widgetPause.Value || g.stepRequested {
		g.stepRequested = false
		if err := actor.Tell(g.ctx, g.worldPID, simulation.NewTick(float64(g.width), float64(g.height))); err != nil {
			return fmt.Errorf("failed to tick world: %w", err)
		}
	}
	return nil
}

// syncTuning tells the world about slider moves since the last frame.
func (g *Game) syncTuning() error {
	next := g.tuning
	next.MaxSpeed = g.sliderSpeed.Value
	next.SeparationRadius = g.sliderSeparation.Value
	next.CohesionRadius = g.sliderCohesion.Value
	if next == g.tuning {
		return nil
	}
	if err := actor.Tell(g.ctx, g.worldPID, simulation.NewSetParams(next)); err != nil {
		return fmt.Errorf("failed to retune world: %w", err)
	}
	g.tuning = next
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.White)

	// 1. Draw all boids from the last known snapshot
	g.renderer.Target = screen
	g.lastState.Draw(g.renderer)

	// 2. Draw UI Panel
	g.panel.Draw(screen)

	// 3. Display timing breakdown on the right side
	if g.widgetStats.Value {
		msg := fmt.Sprintf("Boids: %d\nFrame: %d\n\nFPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms",
			len(g.lastState.Agents),
			g.lastState.Frame,
			ebiten.ActualFPS(),
			ebiten.ActualTPS(),
			g.updateAvg,
			g.drawAvg)
		// Debug text is white, give it a dark backdrop on the white world
		x := float32(g.width - 160)
		vector.FillRect(screen, x, 5, 150, 125, color.RGBA{R: 40, G: 40, B: 45, A: 200}, true)
		ebitenutil.DebugPrintAt(screen, msg, g.width-150, 10)
	}
}

// Layout follows the window size, so the world wraps on the live dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
