package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/urfave/cli"

	"github.com/lao-tseu-is-alive/go-boids-flock/internal/game"
	"github.com/lao-tseu-is-alive/go-boids-flock/internal/simulation"
)

func main() {
	if err := makeapp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "boids"
	app.Usage = "Reynolds flocking in a wrap-around world"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "JSON or TOML configuration file"},
		cli.IntFlag{Name: "boids, n", Value: -1, Usage: "Number of boids at start (overrides the config)"},
		cli.BoolFlag{Name: "headless", Usage: "Run without a window and print the final stats"},
		cli.IntFlag{Name: "frames", Value: 1000, Usage: "Frames to simulate in headless mode"},
		cli.Uint64Flag{Name: "seed", Usage: "Random seed, 0 picks one (overrides the config)"},
		cli.BoolFlag{Name: "verbose, v", Usage: "Enable debug logging"},
	}
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.Bool("headless") {
		runner := simulation.NewRunner(cfg, simulation.NewFlock(cfg), logger)
		st, err := runner.Run(ctx, c.Int("frames"))
		if err != nil {
			return err
		}
		fmt.Println(st)
		return nil
	}

	system, err := actor.NewActorSystem("BoidsWorld",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return fmt.Errorf("failed to start actor system: %w", err)
	}
	defer func() { _ = system.Stop(context.Background()) }()

	g, err := game.New(ctx, cfg, system)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TicksPerSecond)
	return ebiten.RunGame(g)
}

// loadConfig reads --config when given and applies the command line overrides.
func loadConfig(c *cli.Context) (*simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = simulation.LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if n := c.Int("boids"); n >= 0 {
		cfg.NumBoids = n
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if c.Bool("verbose") {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}
