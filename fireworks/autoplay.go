package fireworks

import "time"

// AutoPlay launches a few rockets at regular intervals while it is enabled,
// so that the show goes on without anyone clicking.
type AutoPlay struct {
	Interval time.Duration
	MinCount int64
	MaxCount int64
	Enabled  bool
	next     time.Time
}

func NewAutoPlay(c Config) AutoPlay {
	return AutoPlay{
		Interval: time.Duration(c.AutoPlayIntervalMs) * time.Millisecond,
		MinCount: c.AutoPlayMinCount,
		MaxCount: c.AutoPlayMaxCount,
	}
}

// Toggle switches AutoPlay on or off. The first volley comes one Interval
// after switching on, not immediately.
func (a *AutoPlay) Toggle(now time.Time) {
	a.Enabled = !a.Enabled
	if a.Enabled {
		a.next = now.Add(a.Interval)
	}
}

// Step must be called every frame. When a volley is due it asks show for a
// random number of rockets between MinCount and MaxCount.
// A frame that comes late fires a single volley, missed volleys are not
// made up for.
func (a *AutoPlay) Step(now time.Time, show *Show, r *Rand) {
	if !a.Enabled || a.Interval <= 0 || now.Before(a.next) {
		return
	}
	show.Launch(int(r.RInt(a.MinCount, a.MaxCount)))
	a.next = a.next.Add(a.Interval)
	if !a.next.After(now) {
		a.next = now.Add(a.Interval)
	}
}
