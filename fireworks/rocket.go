package fireworks

import "math"

const (
	RocketTrailLen      = 3
	RocketStartSpeed    = 2.0
	RocketAcceleration  = 1.05
	RocketMinBrightness = 50.0
	RocketMaxBrightness = 70.0
	// The ring drawn around the target grows from TargetRadiusMin by
	// TargetRadiusStep each frame and starts over once it reaches
	// TargetRadiusMax.
	TargetRadiusMin  = 1.0
	TargetRadiusMax  = 8.0
	TargetRadiusStep = 0.3
)

// Rocket is a firework on its way up, from Start to Target.
// Start, Target, Angle, Hue and Brightness never change after the rocket is
// created.
type Rocket struct {
	Start            Pt
	Target           Pt
	Pos              Pt
	DistanceToTarget float64
	DistanceTraveled float64
	Trail            Trail
	Angle            float64
	Speed            float64
	Brightness       float64
	TargetRadius     float64
	Hue              float64
}

func NewRocket(start Pt, target Pt, hue float64, brightness float64) (r Rocket) {
	r.Start = start
	r.Target = target
	r.Pos = start
	r.DistanceToTarget = start.DistTo(target)
	r.Trail = NewTrail(RocketTrailLen, start)
	d := start.To(target)
	r.Angle = math.Atan2(d.Y, d.X)
	r.Speed = RocketStartSpeed
	r.Brightness = brightness
	r.TargetRadius = TargetRadiusMin
	r.Hue = hue
	return
}

// Step advances the rocket by one frame. It returns true if the rocket
// reached its target during this frame. An arrived rocket keeps its last
// position, the caller is expected to detonate and discard it.
func (r *Rocket) Step() (arrived bool) {
	r.Trail.Push(r.Pos)

	if r.TargetRadius < TargetRadiusMax {
		r.TargetRadius += TargetRadiusStep
	} else {
		r.TargetRadius = TargetRadiusMin
	}

	r.Speed *= RocketAcceleration
	v := Pt{math.Cos(r.Angle) * r.Speed, math.Sin(r.Angle) * r.Speed}

	// Distance is measured from the launch point, so it only grows as long as
	// the rocket flies in a straight line away from Start.
	next := r.Pos.Plus(v)
	traveled := r.Start.DistTo(next)
	Assert(traveled >= r.DistanceTraveled)
	r.DistanceTraveled = traveled

	if r.DistanceTraveled >= r.DistanceToTarget {
		return true
	}
	r.Pos = next
	return false
}
