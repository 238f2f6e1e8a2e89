package simulation

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/flock"
)

// Commands understood by the WorldActor. They travel as structpb.Struct
// envelopes: an "op" string plus the op's numeric arguments.
const (
	OpTick     = "tick"     // width, height
	OpAddBoid  = "add_boid" // x, y
	OpGetStats = "stats"    // no argument, replied with a Stats struct

	// OpSetParams carries every flock.Config field under its json name.
	OpSetParams = "set_params"
)

const opField = "op"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMalformedCommand = errors.New("malformed command")
)

// Command is the decoded form of a WorldActor message.
type Command struct {
	Op string
	// Tick: world width and height. AddBoid: spawn coordinates.
	X, Y float64
	// SetParams: the new steering constants.
	Params flock.Config
}

// NewTick asks the world to advance one frame in a width x height world.
func NewTick(width, height float64) *structpb.Struct {
	return newCommand(OpTick, map[string]float64{"width": width, "height": height})
}

// NewAddBoid asks the world to add a boid at (x, y).
func NewAddBoid(x, y float64) *structpb.Struct {
	return newCommand(OpAddBoid, map[string]float64{"x": x, "y": y})
}

// NewStatsRequest asks the world for its current Stats.
func NewStatsRequest() *structpb.Struct {
	return newCommand(OpGetStats, nil)
}

// NewSetParams asks the world to retune its flock with cfg.
func NewSetParams(cfg flock.Config) *structpb.Struct {
	return newCommand(OpSetParams, map[string]float64{
		"maxSpeed":         cfg.MaxSpeed,
		"maxForce":         cfg.MaxForce,
		"separationRadius": cfg.SeparationRadius,
		"alignRadius":      cfg.AlignRadius,
		"cohesionRadius":   cfg.CohesionRadius,
		"boundsMargin":     cfg.BoundsMargin,
	})
}

func newCommand(op string, args map[string]float64) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(args)+1)
	fields[opField] = structpb.NewStringValue(op)
	for k, v := range args {
		fields[k] = structpb.NewNumberValue(v)
	}
	return &structpb.Struct{Fields: fields}
}

// ParseCommand decodes a command envelope built by one of the New* constructors.
func ParseCommand(msg *structpb.Struct) (Command, error) {
	if msg == nil {
		return Command{}, fmt.Errorf("%w: nil message", ErrMalformedCommand)
	}
	opValue, ok := msg.GetFields()[opField]
	if !ok {
		return Command{}, fmt.Errorf("%w: missing %q", ErrMalformedCommand, opField)
	}
	op, ok := opValue.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return Command{}, fmt.Errorf("%w: %q is not a string", ErrMalformedCommand, opField)
	}

	cmd := Command{Op: op.StringValue}
	var err error
	switch cmd.Op {
	case OpTick:
		if cmd.X, err = numberField(msg, "width"); err != nil {
			return Command{}, err
		}
		if cmd.Y, err = numberField(msg, "height"); err != nil {
			return Command{}, err
		}
	case OpAddBoid:
		if cmd.X, err = numberField(msg, "x"); err != nil {
			return Command{}, err
		}
		if cmd.Y, err = numberField(msg, "y"); err != nil {
			return Command{}, err
		}
	case OpSetParams:
		p := &cmd.Params
		for name, dst := range map[string]*float64{
			"maxSpeed":         &p.MaxSpeed,
			"maxForce":         &p.MaxForce,
			"separationRadius": &p.SeparationRadius,
			"alignRadius":      &p.AlignRadius,
			"cohesionRadius":   &p.CohesionRadius,
			"boundsMargin":     &p.BoundsMargin,
		} {
			if *dst, err = numberField(msg, name); err != nil {
				return Command{}, err
			}
		}
	case OpGetStats:
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Op)
	}
	return cmd, nil
}

func numberField(msg *structpb.Struct, name string) (float64, error) {
	v, ok := msg.GetFields()[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrMalformedCommand, name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedCommand, name)
	}
	return n.NumberValue, nil
}
