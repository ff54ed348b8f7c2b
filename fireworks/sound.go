package fireworks

// SoundType names the sounds a show could play. Nothing plays them yet.
type SoundType int64

const (
	SoundLaunch SoundType = iota
	SoundExplosion
)
