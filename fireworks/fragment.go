package fireworks

import "math"

const (
	FragmentTrailLen   = 5
	FragmentsPerBurst  = 30
	FragmentFriction   = 0.95
	FragmentGravity    = 1.0
	FragmentHueSpread  = 50.0
	FragmentMinSpeed   = 1.0
	FragmentMaxSpeed   = 10.0
	FragmentMinLight   = 50.0
	FragmentMaxLight   = 80.0
	FragmentMinDecay   = 0.015
	FragmentMaxDecay   = 0.03
	FragmentStartAlpha = 1.0
)

// Fragment is one particle of an explosion. It flies away from the point of
// the explosion, slows down, falls and fades out.
type Fragment struct {
	Pos        Pt
	Trail      Trail
	Angle      float64
	Speed      float64
	Friction   float64
	Gravity    float64
	Hue        float64
	Brightness float64
	Alpha      float64
	Decay      float64
}

func NewFragment(pos Pt, angle, speed, hue, brightness, decay float64) (f Fragment) {
	f.Pos = pos
	f.Trail = NewTrail(FragmentTrailLen, pos)
	f.Angle = angle
	f.Speed = speed
	f.Friction = FragmentFriction
	f.Gravity = FragmentGravity
	f.Hue = hue
	f.Brightness = brightness
	f.Alpha = FragmentStartAlpha
	f.Decay = decay
	return
}

// RandomFragment creates a fragment of an explosion at pos, with a color
// close to hue and a random direction, speed, brightness and lifetime.
func RandomFragment(r *Rand, pos Pt, hue float64) Fragment {
	return NewFragment(pos,
		r.RFloat(0, math.Pi*2),
		r.RFloat(FragmentMinSpeed, FragmentMaxSpeed),
		r.RFloat(hue-FragmentHueSpread, hue+FragmentHueSpread),
		r.RFloat(FragmentMinLight, FragmentMaxLight),
		r.RFloat(FragmentMinDecay, FragmentMaxDecay))
}

// Step advances the fragment by one frame. It returns true if the fragment
// faded out and must be removed.
// A fragment is gone once its alpha drops to its own decay rate, not to 0.
// Fragments that fade slower also linger at a slightly higher alpha before
// vanishing. This matches how the effect has always looked, so keep it.
func (f *Fragment) Step() (extinct bool) {
	f.Trail.Push(f.Pos)
	f.Speed *= f.Friction
	f.Pos.X += math.Cos(f.Angle) * f.Speed
	f.Pos.Y += math.Sin(f.Angle)*f.Speed + f.Gravity
	f.Alpha -= f.Decay
	return f.Alpha <= f.Decay
}
