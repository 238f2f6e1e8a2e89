package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/flock"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		msg  *structpb.Struct
		want Command
	}{
		{"tick", NewTick(800, 600), Command{Op: OpTick, X: 800, Y: 600}},
		{"add boid", NewAddBoid(12.5, -3), Command{Op: OpAddBoid, X: 12.5, Y: -3}},
		{"stats", NewStatsRequest(), Command{Op: OpGetStats}},
		{"set params", NewSetParams(flock.DefaultConfig()), Command{Op: OpSetParams, Params: flock.DefaultConfig()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.msg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		msg     *structpb.Struct
		wantErr error
	}{
		{"nil", nil, ErrMalformedCommand},
		{"no op", &structpb.Struct{Fields: map[string]*structpb.Value{}}, ErrMalformedCommand},
		{"numeric op", &structpb.Struct{Fields: map[string]*structpb.Value{
			opField: structpb.NewNumberValue(1),
		}}, ErrMalformedCommand},
		{"unknown op", newCommand("explode", nil), ErrUnknownCommand},
		{"set params without margin", newCommand(OpSetParams, map[string]float64{
			"maxSpeed": 1, "maxForce": 1, "separationRadius": 1, "alignRadius": 1, "cohesionRadius": 1,
		}), ErrMalformedCommand},
		{"tick without height", newCommand(OpTick, map[string]float64{"width": 10}), ErrMalformedCommand},
		{"add boid with text coordinate", &structpb.Struct{Fields: map[string]*structpb.Value{
			opField: structpb.NewStringValue(OpAddBoid),
			"x":     structpb.NewStringValue("left"),
			"y":     structpb.NewNumberValue(1),
		}}, ErrMalformedCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCommand(tt.msg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
