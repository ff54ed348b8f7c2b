package fireworks

import "time"

// Clock tells the time to a Show. Tests replace it so that staggered
// launches can be released without waiting.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
