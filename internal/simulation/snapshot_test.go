package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
)

type countingRenderer struct {
	apexes []geometry.Vector2D
}

func (r *countingRenderer) DrawTriangle(apex, _, _ geometry.Vector2D) {
	r.apexes = append(r.apexes, apex)
}

func TestComputeStats(t *testing.T) {
	agents := []flock.Agent{
		{Pos: geometry.Vector2D{X: 0, Y: 0}, Vel: geometry.Vector2D{X: 3, Y: 4}},
		{Pos: geometry.Vector2D{X: 10, Y: 20}, Vel: geometry.Vector2D{X: 1, Y: 0}},
	}
	st := ComputeStats(9, agents)

	assert.Equal(t, uint64(9), st.Frame)
	assert.Equal(t, 2, st.Agents)
	assert.InDelta(t, 3.0, st.MeanSpeed, 1e-12)
	assert.InDelta(t, 5.0, st.MaxSpeed, 1e-12)
	assert.Equal(t, geometry.Vector2D{X: 5, Y: 10}, st.Centroid)
	assert.Contains(t, st.String(), "2 boids")
}

func TestComputeStats_Empty(t *testing.T) {
	st := ComputeStats(3, nil)
	assert.Equal(t, Stats{Frame: 3}, st)
}

func TestStatsProto(t *testing.T) {
	want := Stats{Frame: 120, Agents: 64, MeanSpeed: 2.5, MaxSpeed: 3, Centroid: geometry.Vector2D{X: 400, Y: 300}}
	got, err := StatsFromProto(want.ToProto())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = StatsFromProto(&structpb.Struct{})
	assert.ErrorIs(t, err, ErrMalformedCommand)
}

func TestSnapshot_Draw(t *testing.T) {
	snap := &Snapshot{Frame: 1, Agents: []flock.Agent{
		{Pos: geometry.Vector2D{X: 1, Y: 1}},
		{Pos: geometry.Vector2D{X: 2, Y: 2}},
	}}
	r := &countingRenderer{}
	snap.Draw(r)
	assert.Equal(t, []geometry.Vector2D{{X: 1, Y: 1}, {X: 2, Y: 2}}, r.apexes)

	var empty *Snapshot
	assert.NotPanics(t, func() { empty.Draw(r) })
}
