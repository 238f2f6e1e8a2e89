package simulation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	golog "github.com/tochemey/goakt/v3/log"
)

func TestRunner_Run(t *testing.T) {
	cfg := testConfig(30)
	r := NewRunner(cfg, NewFlock(cfg), golog.DiscardLogger)

	st, err := r.Run(context.Background(), 120)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), st.Frame)
	assert.Equal(t, 30, st.Agents)
	assert.LessOrEqual(t, st.MaxSpeed, cfg.Flock.MaxSpeed+1e-9)
	assert.True(t, st.Centroid.IsFinite())

	// A second run continues from where the first stopped.
	st, err = r.Run(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(130), st.Frame)
}

func TestRunner_Deterministic(t *testing.T) {
	cfg := testConfig(40)
	a := NewRunner(cfg, NewFlock(cfg), nil)
	b := NewRunner(cfg, NewFlock(cfg), nil)

	_, err := a.Run(context.Background(), 200)
	require.NoError(t, err)
	_, err = b.Run(context.Background(), 200)
	require.NoError(t, err)

	assert.Equal(t, a.Flock().Agents(), b.Flock().Agents())
}

func TestRunner_Cancelled(t *testing.T) {
	cfg := testConfig(10)
	r := NewRunner(cfg, NewFlock(cfg), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st, err := r.Run(ctx, 50)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(0), st.Frame)
}

func TestRunner_EmptyFlock(t *testing.T) {
	cfg := testConfig(0)
	r := NewRunner(cfg, NewFlock(cfg), nil)

	st, err := r.Run(context.Background(), 25)
	require.NoError(t, err)
	assert.Equal(t, 0, st.Agents)
	assert.Equal(t, 0, r.Flock().Len())
}
