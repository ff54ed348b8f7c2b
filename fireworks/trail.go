package fireworks

// MaxTrailLen is the longest trail any entity keeps.
const MaxTrailLen = 5

// Trail is a small ring buffer holding the most recent positions of an
// entity. It is always full: a new trail has every slot set to the spawn
// position, and every Push overwrites the oldest sample.
// Trail has no pointers inside so copying an entity copies its trail.
type Trail struct {
	pts  [MaxTrailLen]Pt
	size int
	head int // index of the newest sample
}

func NewTrail(size int, pos Pt) (t Trail) {
	if size < 1 || size > MaxTrailLen {
		panic("invalid trail size")
	}
	t.size = size
	for i := range size {
		t.pts[i] = pos
	}
	return
}

func (t *Trail) Len() int {
	return t.size
}

// Push records pos as the newest sample, discarding the oldest.
func (t *Trail) Push(pos Pt) {
	t.head = (t.head + 1) % t.size
	t.pts[t.head] = pos
}

func (t *Trail) Newest() Pt {
	return t.pts[t.head]
}

// Oldest is the sample the trail segment is drawn from.
func (t *Trail) Oldest() Pt {
	return t.pts[(t.head+1)%t.size]
}

// At returns the i-th sample, where 0 is the newest and Len()-1 the oldest.
func (t *Trail) At(i int) Pt {
	return t.pts[((t.head-i)%t.size+t.size)%t.size]
}
