package fireworks

import (
	"log/slog"
	"slices"
	"time"
)

// DefaultStagger is the delay between two rockets started by the same
// Launch call.
const DefaultStagger = 200 * time.Millisecond

// Show connects a World to a Surface and to whoever controls the show.
//
// A Show is not safe for concurrent use. Everything, including Launch and
// LaunchAt, must be called from the goroutine that calls Frame. That is
// always the case for the ebiten and terminal front ends: input handling and
// drawing happen on the same goroutine.
type Show struct {
	World   World
	Stagger time.Duration
	clock   Clock
	surface Surface
	pending []pendingLaunch
}

// pendingLaunch is a rocket requested by Launch that is not in the air yet.
type pendingLaunch struct {
	due time.Time
}

func NewShow(clock Clock, seed int64) *Show {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Show{
		World:   NewWorld(seed),
		Stagger: DefaultStagger,
		clock:   clock,
	}
}

// Start attaches the surface the show is drawn on. Frame does nothing until
// Start is called.
func (s *Show) Start(surface Surface) {
	if surface == nil {
		s.Stop()
		return
	}
	s.surface = surface
	w, h := surface.Size()
	Logger().Info("show started", "width", w, "height", h)
}

// Stop detaches the surface. Launches that are still pending are kept but
// they turn into no-ops when they come due, unless the show is started
// again before that.
func (s *Show) Stop() {
	if s.surface == nil {
		return
	}
	s.surface = nil
	Logger().Info("show stopped",
		"frames", s.World.FrameIdx,
		"launched", s.World.NLaunched,
		"detonated", s.World.NDetonated)
}

func (s *Show) Surface() Surface {
	return s.surface
}

// Resize is called when the host window changes size. Whatever was drawn so
// far is lost, which is acceptable since it fades away in a few frames
// anyway.
func (s *Show) Resize(width int, height int) {
	if s.surface == nil {
		return
	}
	w, h := s.surface.Size()
	if w == width && h == height {
		return
	}
	s.surface.Resize(width, height)
	Logger().Debug("surface resized", "width", width, "height", height)
}

// Launch requests count rockets aimed at random points in the top half of
// the surface. The first one leaves at once, the others follow at intervals
// of Stagger. Launch returns immediately.
func (s *Show) Launch(count int) {
	if _, _, ok := s.surfaceReady(); !ok {
		Logger().Debug("launch ignored, no surface", "count", count)
		return
	}
	now := s.clock.Now()
	for i := range count {
		s.pending = append(s.pending, pendingLaunch{
			due: now.Add(time.Duration(i) * s.Stagger),
		})
	}
	// Keep the queue ordered by due time, so that RunDue can stop at the
	// first launch that isn't due yet.
	slices.SortStableFunc(s.pending, func(a, b pendingLaunch) int {
		return a.due.Compare(b.due)
	})
}

// LaunchAt sends one rocket from the bottom center of the surface to (x, y),
// in surface coordinates.
func (s *Show) LaunchAt(x float64, y float64) {
	w, h, ok := s.surfaceReady()
	if !ok {
		Logger().Debug("launch ignored, no surface", "x", x, "y", y)
		return
	}
	target := Pt{x, y}
	if !target.IsFinite() {
		Logger().Debug("launch ignored, invalid target", "x", x, "y", y)
		return
	}
	s.World.SpawnRocket(bottomCenter(w, h), target)
}

// Pending returns how many launches requested by Launch haven't happened yet.
func (s *Show) Pending() int {
	return len(s.pending)
}

// RunDue releases every pending launch whose time has come. Each one reads
// the size of the surface at that moment, so a resize between Launch and the
// actual launch is taken into account.
func (s *Show) RunDue() {
	now := s.clock.Now()
	n := 0
	for n < len(s.pending) && !s.pending[n].due.After(now) {
		n++
	}
	if n == 0 {
		return
	}
	for range n {
		w, h, ok := s.surfaceReady()
		if !ok {
			// The surface went away after Launch was called.
			continue
		}
		fw, fh := float64(w), float64(h)
		target := Pt{s.World.Rand.RFloat(0, fw), s.World.Rand.RFloat(0, fh/2)}
		s.World.SpawnRocket(bottomCenter(w, h), target)
	}
	s.pending = slices.Delete(s.pending, 0, n)
}

// Frame runs one frame of the show: pending launches, drawing, then the
// simulation step. The host calls Frame once per display refresh.
// Drawing happens before stepping, so every frame shows the positions
// computed at the end of the previous frame.
func (s *Show) Frame() {
	s.RunDue()
	if s.surface == nil {
		return
	}
	DrawWorld(s.surface, &s.World)

	nDetonated := s.World.NDetonated
	s.World.Step()
	if s.World.NDetonated != nDetonated {
		Logger().Debug("detonation",
			"frame", s.World.FrameIdx,
			"count", s.World.NDetonated-nDetonated,
			"fragments", len(s.World.Fragments))
	}
}

// surfaceReady returns the size of the surface and whether it is possible to
// launch anything on it.
func (s *Show) surfaceReady() (width int, height int, ok bool) {
	if s.surface == nil {
		return 0, 0, false
	}
	width, height = s.surface.Size()
	return width, height, width > 0 && height > 0
}

func bottomCenter(width int, height int) Pt {
	return Pt{float64(width) / 2, float64(height)}
}

// LogValue lets a Show be logged as a single attribute.
func (s *Show) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("frame", s.World.FrameIdx),
		slog.Int("rockets", len(s.World.Rockets)),
		slog.Int("fragments", len(s.World.Fragments)),
		slog.Int("pending", len(s.pending)),
	)
}
