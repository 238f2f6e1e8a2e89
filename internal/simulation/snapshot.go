package simulation

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
)

// Snapshot is a copy of the flock taken right after a frame, safe to read
// from another goroutine while the world keeps simulating.
type Snapshot struct {
	Frame  uint64
	Agents []flock.Agent
}

// Draw renders the captured agents in flock order.
func (s *Snapshot) Draw(r flock.Renderer) {
	if s == nil {
		return
	}
	for _, a := range s.Agents {
		a.Draw(r)
	}
}

// Stats summarises a flock at a given frame.
type Stats struct {
	Frame     uint64
	Agents    int
	MeanSpeed float64
	MaxSpeed  float64
	Centroid  geometry.Vector2D
}

func (s Stats) String() string {
	return fmt.Sprintf("frame %d: %d boids, mean speed %.3f, max speed %.3f, centroid %s",
		s.Frame, s.Agents, s.MeanSpeed, s.MaxSpeed, s.Centroid)
}

// ComputeStats aggregates speed and position over agents.
func ComputeStats(frame uint64, agents []flock.Agent) Stats {
	st := Stats{Frame: frame, Agents: len(agents)}
	if len(agents) == 0 {
		return st
	}
	positions := make([]geometry.Vector2D, len(agents))
	total := 0.0
	for i, a := range agents {
		speed := a.Vel.Len()
		total += speed
		st.MaxSpeed = math.Max(st.MaxSpeed, speed)
		positions[i] = a.Pos
	}
	st.MeanSpeed = total / float64(len(agents))
	st.Centroid = geometry.Centroid(positions)
	return st
}

// ToProto encodes the stats as the reply of an OpGetStats request.
func (s Stats) ToProto() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"frame":     structpb.NewNumberValue(float64(s.Frame)),
		"agents":    structpb.NewNumberValue(float64(s.Agents)),
		"meanSpeed": structpb.NewNumberValue(s.MeanSpeed),
		"maxSpeed":  structpb.NewNumberValue(s.MaxSpeed),
		"centroidX": structpb.NewNumberValue(s.Centroid.X),
		"centroidY": structpb.NewNumberValue(s.Centroid.Y),
	}}
}

// StatsFromProto decodes a reply built by Stats.ToProto.
func StatsFromProto(msg *structpb.Struct) (Stats, error) {
	var (
		st     Stats
		values [6]float64
	)
	for i, name := range []string{"frame", "agents", "meanSpeed", "maxSpeed", "centroidX", "centroidY"} {
		v, err := numberField(msg, name)
		if err != nil {
			return Stats{}, err
		}
		values[i] = v
	}
	st.Frame = uint64(values[0])
	st.Agents = int(values[1])
	st.MeanSpeed = values[2]
	st.MaxSpeed = values[3]
	st.Centroid = geometry.Vector2D{X: values[4], Y: values[5]}
	return st, nil
}
