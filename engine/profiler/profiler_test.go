package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestTickLogsOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithInterval(500*time.Millisecond), WithClock(clock.now))

	clock.advance(100 * time.Millisecond)
	assert.False(t, p.Tick())
	clock.advance(100 * time.Millisecond)
	assert.False(t, p.Tick())

	clock.advance(300 * time.Millisecond)
	assert.True(t, p.Tick())

	// the window restarts after logging
	clock.advance(100 * time.Millisecond)
	assert.False(t, p.Tick())
}

func TestStatsTotals(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithInterval(time.Second), WithClock(clock.now))

	p.Tick()
	p.Tick()
	p.Drop()
	p.SetRebuilds(2)
	clock.advance(2 * time.Second)
	assert.True(t, p.Tick())

	p.Drop()
	p.SetRebuilds(3)

	assert.Equal(t, Stats{Frames: 3, Dropped: 2, Rebuilds: 3}, p.Stats())
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithClock(nil))
	assert.Equal(t, time.Second, p.updateInterval)
	assert.NotNil(t, p.now)
}

func TestCountOnlyTouchesTotals(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithClock(clock.now))

	p.Count()
	p.Count()
	assert.Equal(t, 2, p.Stats().Frames)
	assert.Equal(t, 0, p.frameCount)
}
