package simulation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/flock"
)

//go:embed config.schema.json
var configSchema string

type Config struct {
	// World Dimensions (initial window size, the live size comes from the window)
	WorldWidth  float64 `json:"worldWidth" toml:"world_width"`
	WorldHeight float64 `json:"worldHeight" toml:"world_height"`

	// Population
	NumBoids int    `json:"numBoids" toml:"num_boids"`
	Seed     uint64 `json:"seed" toml:"seed"` // 0 picks a random seed

	TicksPerSecond int    `json:"ticksPerSecond" toml:"ticks_per_second"`
	LogLevel       string `json:"logLevel" toml:"log_level"` // debug, info, error or off

	// Steering constants handed to the flock
	Flock flock.Config `json:"flock" toml:"flock"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:     800,
		WorldHeight:    600,
		NumBoids:       100,
		TicksPerSecond: 60,
		LogLevel:       "info",
		Flock:          flock.DefaultConfig(),
	}
}

// LoadConfig loads configuration from a JSON or TOML file, on top of DefaultConfig.
// JSON files are validated against the embedded schema first.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	switch ext := strings.ToLower(filepath.Ext(configFile)); ext {
	case ".json":
		if err := loadJSON(configFile, cfg); err != nil {
			return nil, err
		}
	case ".toml":
		if _, err := toml.DecodeFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadJSON(configFile string, cfg *Config) error {
	// 1. Compile Schema
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct, fields absent from the file keep their defaults
	if err := json.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// Validate checks the values a schema cannot see (TOML files skip the schema).
func (c *Config) Validate() error {
	if !(c.WorldWidth > 0) || !(c.WorldHeight > 0) {
		return fmt.Errorf("world must have a positive size, got %vx%v", c.WorldWidth, c.WorldHeight)
	}
	if c.NumBoids < 0 {
		return fmt.Errorf("numBoids must be >= 0, got %d", c.NumBoids)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticksPerSecond must be > 0, got %d", c.TicksPerSecond)
	}
	if _, _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return c.Flock.Validate()
}

// NewLogger builds the goakt logger matching LogLevel.
func (c *Config) NewLogger() golog.Logger {
	level, enabled, err := parseLogLevel(c.LogLevel)
	if err != nil || !enabled {
		return golog.DiscardLogger
	}
	return golog.New(level, os.Stdout)
}

func parseLogLevel(s string) (level golog.Level, enabled bool, err error) {
	switch strings.ToLower(s) {
	case "debug":
		return golog.DebugLevel, true, nil
	case "", "info":
		return golog.InfoLevel, true, nil
	case "error":
		return golog.ErrorLevel, true, nil
	case "off":
		return golog.InfoLevel, false, nil
	default:
		return golog.InfoLevel, false, fmt.Errorf("unknown log level %q", s)
	}
}
