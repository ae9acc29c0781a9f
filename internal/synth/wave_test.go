package synth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	clock uint32
	delta int32
	fast  bool
}

type recorder struct {
	events []event
	err    error
}

func (r *recorder) AddDelta(clock uint32, delta int32) error {
	r.events = append(r.events, event{clock, delta, false})
	return r.err
}

func (r *recorder) AddDeltaFast(clock uint32, delta int32) error {
	r.events = append(r.events, event{clock, delta, true})
	return r.err
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape("square")
	require.NoError(t, err)
	assert.Equal(t, Square, s)

	s, err = ParseShape("saw")
	require.NoError(t, err)
	assert.Equal(t, "saw", s.String())

	_, err = ParseShape("sine")
	require.ErrorIs(t, err, ErrInvalidWave)
	assert.Equal(t, "Shape(7)", Shape(7).String())
}

func TestNewWave_Invalid(t *testing.T) {
	_, err := NewWave(Square, 1, 100)
	require.ErrorIs(t, err, ErrInvalidWave)
	_, err = NewWave(Saw, 10, 100)
	require.ErrorIs(t, err, ErrInvalidWave)
	_, err = NewWave(Square, 100, -1)
	require.ErrorIs(t, err, ErrInvalidWave)
	_, err = NewWave(Shape(9), 100, 1)
	require.ErrorIs(t, err, ErrInvalidWave)

	_, err = NewWaveForFrequency(Square, 1e6, 0, 0.5)
	require.ErrorIs(t, err, ErrInvalidWave)
	_, err = NewWaveForFrequency(Square, 1e6, 440, 1.5)
	require.ErrorIs(t, err, ErrInvalidWave)
}

func TestSquare_Deltas(t *testing.T) {
	w, err := NewWave(Square, 100, 1000)
	require.NoError(t, err)

	r := &recorder{}
	require.NoError(t, w.Run(r, 120))
	assert.Equal(t, []event{{0, 1000, false}, {50, -2000, false}, {100, 2000, false}}, r.events)

	// The next frame continues the same schedule from its own clock 0.
	r.events = nil
	require.NoError(t, w.Run(r, 100))
	assert.Equal(t, []event{{30, -2000, false}, {80, 2000, false}}, r.events)
	assert.Equal(t, int32(1000), w.Level())
}

func TestSaw_Cycle(t *testing.T) {
	w, err := NewWave(Saw, 160, 1500)
	require.NoError(t, err)
	w.SetFast(true)

	r := &recorder{}
	require.NoError(t, w.Run(r, 170))

	require.Len(t, r.events, SawSteps+1)
	var level int32
	for i, e := range r.events {
		assert.True(t, e.fast)
		assert.Equal(t, uint32(10*i), e.clock)
		level += e.delta
		if i < SawSteps {
			assert.Equal(t, int32(-1500+200*i), level, "step %d", i)
		}
	}
	assert.Equal(t, int32(-1500), level, "cycle restarts at the bottom")
}

func TestNewWaveForFrequency(t *testing.T) {
	w, err := NewWaveForFrequency(Square, 3263400, 3263400.0/8192, 0.25)
	require.NoError(t, err)

	r := &recorder{}
	require.NoError(t, w.Run(r, 8193))
	require.Len(t, r.events, 3)
	assert.Equal(t, uint32(4096), r.events[1].clock)
	assert.Equal(t, int32(8192), r.events[0].delta)
}

func TestRun_PropagatesError(t *testing.T) {
	w, err := NewWave(Square, 10, 5)
	require.NoError(t, err)

	sentinel := errors.New("full")
	err = w.Run(&recorder{err: sentinel}, 100)
	require.ErrorIs(t, err, sentinel)
}
