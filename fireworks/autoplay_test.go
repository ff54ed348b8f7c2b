package fireworks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAutoPlay(t *testing.T) {
	show, clock, _ := newTestShow(640, 480)
	r := NewRand(5)
	a := NewAutoPlay(DefaultConfig())
	assert.False(t, a.Enabled)

	// Disabled: nothing happens no matter how long we wait.
	clock.Advance(time.Hour)
	a.Step(clock.Now(), show, &r)
	assert.Equal(t, 0, show.Pending())

	a.Toggle(clock.Now())
	assert.True(t, a.Enabled)
	clock.Advance(799 * time.Millisecond)
	a.Step(clock.Now(), show, &r)
	assert.Equal(t, 0, show.Pending())

	clock.Advance(time.Millisecond)
	a.Step(clock.Now(), show, &r)
	n := show.Pending()
	assert.True(t, n >= 1 && n <= 3, "volley of %d", n)

	// The first rocket of the volley leaves at once.
	show.RunDue()
	assert.Len(t, show.World.Rockets, 1)

	// Calling Step again in the same instant doesn't fire a second volley.
	a.Step(clock.Now(), show, &r)
	assert.Equal(t, n-1, show.Pending())

	a.Toggle(clock.Now())
	clock.Advance(10 * time.Second)
	a.Step(clock.Now(), show, &r)
	assert.Equal(t, n-1, show.Pending())
}

func TestAutoPlay_VolleySizes(t *testing.T) {
	show, clock, _ := newTestShow(640, 480)
	show.Stagger = 0
	r := NewRand(8)
	a := NewAutoPlay(DefaultConfig())
	a.Toggle(clock.Now())

	sizes := map[int]bool{}
	for range 100 {
		clock.Advance(a.Interval)
		a.Step(clock.Now(), show, &r)
		sizes[show.Pending()] = true
		show.RunDue()
	}
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, sizes)
}

func TestAutoPlay_LateFrameFiresOnce(t *testing.T) {
	show, clock, _ := newTestShow(640, 480)
	show.Stagger = 0
	r := NewRand(3)
	a := NewAutoPlay(DefaultConfig())
	a.MinCount, a.MaxCount = 1, 1
	a.Toggle(clock.Now())

	clock.Advance(5 * a.Interval)
	a.Step(clock.Now(), show, &r)
	a.Step(clock.Now(), show, &r)
	assert.Equal(t, 1, show.Pending())

	clock.Advance(a.Interval)
	a.Step(clock.Now(), show, &r)
	assert.Equal(t, 2, show.Pending())
}
