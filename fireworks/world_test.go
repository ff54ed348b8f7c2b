package fireworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld(0)
	assert.Empty(t, w.ActiveRockets())
	assert.Empty(t, w.ActiveFragments())
	assert.Equal(t, StartHue, w.Hue)
}

func TestWorld_SpawnRocketUsesCurrentHue(t *testing.T) {
	w := NewWorld(0)
	w.Step()
	w.Step()
	w.SpawnRocket(Pt{0, 0}, Pt{10, 10})
	require.Len(t, w.Rockets, 1)
	r := w.Rockets[0]
	assert.Equal(t, StartHue+2*HueStep, r.Hue)
	assert.True(t, r.Brightness >= RocketMinBrightness && r.Brightness < RocketMaxBrightness)
	assert.Equal(t, int64(1), w.NLaunched)
}

func TestWorld_DetonateAddsBurst(t *testing.T) {
	w := NewWorld(0)
	w.Detonate(Pt{5, 6}, 300)
	require.Len(t, w.Fragments, FragmentsPerBurst)
	for _, f := range w.Fragments {
		assert.Equal(t, Pt{5, 6}, f.Pos)
		assert.True(t, f.Hue >= 250 && f.Hue < 350)
	}
	assert.Empty(t, w.Rockets)
}

// A rocket launched from (50, 100) towards (50, 0) needs 25 frames to cover
// the 100 pixels. In the frame it arrives it is replaced by 30 fragments.
func TestWorld_RocketDetonatesAtTarget(t *testing.T) {
	w := NewWorld(1)
	w.SpawnRocket(Pt{50, 100}, Pt{50, 0})
	rocketHue := w.Rockets[0].Hue

	for frame := 1; frame <= 24; frame++ {
		prev := w.Rockets[0].DistanceTraveled
		w.Step()
		require.Len(t, w.Rockets, 1, "frame %d", frame)
		require.Empty(t, w.Fragments, "frame %d", frame)
		assert.GreaterOrEqual(t, w.Rockets[0].DistanceTraveled, prev)
	}

	w.Step()
	assert.Empty(t, w.Rockets)
	require.Len(t, w.Fragments, FragmentsPerBurst)
	assert.Equal(t, int64(1), w.NDetonated)
	for _, f := range w.Fragments {
		// The fragments already moved once, during the frame of the explosion,
		// so the target is their previous position.
		assert.Equal(t, Pt{50, 0}, f.Trail.Newest())
		assert.InDelta(t, rocketHue, f.Hue, FragmentHueSpread)
		assert.Less(t, f.Alpha, FragmentStartAlpha)
	}
}

func TestWorld_FragmentRemovedInExactFrame(t *testing.T) {
	w := NewWorld(0)
	w.Fragments = append(w.Fragments, NewFragment(Pt{0, 0}, 0, 5, 0, 60, 0.02))
	for frame := 1; frame <= 48; frame++ {
		w.Step()
		require.Len(t, w.Fragments, 1, "frame %d", frame)
	}
	// The 49th update takes the alpha down to 0.02, so the fragment is gone
	// before the 50th frame is drawn.
	w.Step()
	assert.Empty(t, w.Fragments)
}

func TestWorld_RemovalDoesNotSkipNeighbors(t *testing.T) {
	w := NewWorld(0)
	// Alternate fragments that die on the first step with fragments that
	// live on.
	for i := range 10 {
		decay := 0.01
		if i%2 == 0 {
			decay = 0.6
		}
		w.Fragments = append(w.Fragments, NewFragment(Pt{float64(i), 0}, 0, 1, 0, 60, decay))
	}
	w.Step()
	require.Len(t, w.Fragments, 5)
	for _, f := range w.Fragments {
		assert.Equal(t, 0.01, f.Decay)
		assert.InDelta(t, 0.99, f.Alpha, 1e-12)
	}
}

func TestWorld_HueAdvancesEveryFrame(t *testing.T) {
	w := NewWorld(0)
	for frame := 1; frame <= 1000; frame++ {
		prev := w.Hue
		w.Step()
		assert.Equal(t, prev+HueStep, w.Hue)
	}
	assert.Equal(t, StartHue+1000*HueStep, w.Hue)
	assert.Equal(t, int64(1000), w.FrameIdx)
}

func TestWorld_IndependentInstances(t *testing.T) {
	w1 := NewWorld(0)
	w2 := NewWorld(0)
	w1.Step()
	w1.SpawnRocket(Pt{0, 0}, Pt{1, 1})
	assert.Equal(t, StartHue, w2.Hue)
	assert.Empty(t, w2.Rockets)
}

func TestWorld_ManyRocketsRunToCompletion(t *testing.T) {
	w := NewWorld(5)
	for i := range 50 {
		w.SpawnRocket(Pt{500, 1000}, Pt{float64(i * 20), float64(i * 10)})
	}
	require.NotPanics(t, func() {
		for range 500 {
			w.Step()
		}
	})
	assert.Empty(t, w.Rockets)
	assert.Empty(t, w.Fragments)
	assert.Equal(t, int64(50), w.NDetonated)
}

// BenchmarkWorldStep measures a busy frame: 20 rockets in the air and the
// fragments of 20 explosions.
func BenchmarkWorldStep(b *testing.B) {
	base := NewWorld(0)
	for i := range 20 {
		base.SpawnRocket(Pt{500, 1000}, Pt{float64(i * 50), 1e9})
		base.Detonate(Pt{float64(i * 50), 300}, 120)
	}
	for b.Loop() {
		w := base
		w.Rockets = append([]Rocket(nil), base.Rockets...)
		w.Fragments = append([]Fragment(nil), base.Fragments...)
		w.Step()
	}
}
