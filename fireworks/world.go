package fireworks

import "slices"

const (
	StartHue = 120.0
	HueStep  = 0.5
)

// World rules
// - Rockets fly in a straight line from their launch point towards their
// target, accelerating every frame.
// - A rocket that reaches its target explodes into FragmentsPerBurst fragments
// at the target and disappears in the same frame.
// - Fragments slow down, fall and fade out, then disappear.
// - Each frame all the rockets move first, then all the fragments, including
// the ones that appeared during this frame.
// - The hue used for new rockets drifts a little every frame and never resets.
// Hue values above 360 are fine, colors wrap around the hue circle.

type World struct {
	Rockets    []Rocket
	Fragments  []Fragment
	Hue        float64
	FrameIdx   int64
	NLaunched  int64
	NDetonated int64
	Rand       Rand
}

func NewWorld(seed int64) (w World) {
	w.Hue = StartHue
	w.Rand = NewRand(seed)
	return
}

// SpawnRocket adds a rocket flying from start to target, colored with the
// current hue. Targets outside the surface are allowed.
func (w *World) SpawnRocket(start Pt, target Pt) {
	brightness := w.Rand.RFloat(RocketMinBrightness, RocketMaxBrightness)
	w.Rockets = append(w.Rockets, NewRocket(start, target, w.Hue, brightness))
	w.NLaunched++
}

// Detonate adds a burst of fragments at pos, colored around hue.
func (w *World) Detonate(pos Pt, hue float64) {
	for range FragmentsPerBurst {
		w.Fragments = append(w.Fragments, RandomFragment(&w.Rand, pos, hue))
	}
	w.NDetonated++
}

func (w *World) Step() {
	// Iterate backwards so that deleting the current element doesn't shift
	// any element we haven't visited yet.
	for i := len(w.Rockets) - 1; i >= 0; i-- {
		r := &w.Rockets[i]
		if r.Step() {
			// Detonate only appends to Fragments so r is still valid here.
			w.Detonate(r.Target, r.Hue)
			w.Rockets = slices.Delete(w.Rockets, i, i+1)
		}
	}

	// The rocket pass is done, so len(w.Fragments) already includes the
	// fragments of this frame's explosions and they get their first step now.
	for i := len(w.Fragments) - 1; i >= 0; i-- {
		if w.Fragments[i].Step() {
			w.Fragments = slices.Delete(w.Fragments, i, i+1)
		}
	}

	w.Hue += HueStep
	w.FrameIdx++
}

// ActiveRockets returns the live rockets in the order they are drawn.
// The returned slice is owned by the World and is only valid until the next
// call to Step.
func (w *World) ActiveRockets() []Rocket {
	return w.Rockets
}

// ActiveFragments returns the live fragments in the order they are drawn.
// Same ownership rules as ActiveRockets.
func (w *World) ActiveFragments() []Fragment {
	return w.Fragments
}
