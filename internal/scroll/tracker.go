// Package scroll turns raw viewport offsets into normalized scroll signals.
package scroll

// Direction classifies the movement of a scroll event.
type Direction int

const (
	None Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Signal is the normalized output of one observed scroll position.
type Signal struct {
	Direction Direction
	Y         int
	Delta     int
}

// Tracker tracks the last observed position and classifies deltas. Movements
// within the epsilon deadband keep the previous direction so jitter from
// fractional or inertial scrolling never flips the bar.
type Tracker struct {
	epsilon int
	lastY   int
	dir     Direction
	subs    []func(Signal)
}

// NewTracker returns a tracker with the given jitter deadband.
func NewTracker(epsilon int) *Tracker {
	if epsilon < 0 {
		epsilon = 0
	}
	return &Tracker{epsilon: epsilon}
}

// Subscribe registers a listener invoked synchronously on every Observe.
func (t *Tracker) Subscribe(fn func(Signal)) {
	if fn != nil {
		t.subs = append(t.subs, fn)
	}
}

// Observe consumes the current scroll position, updates tracker state, and
// emits the resulting signal to subscribers.
func (t *Tracker) Observe(y int) Signal {
	delta := y - t.lastY
	switch {
	case delta > t.epsilon:
		t.dir = Down
	case delta < -t.epsilon:
		t.dir = Up
	}
	t.lastY = y
	sig := Signal{Direction: t.dir, Y: y, Delta: delta}
	for _, fn := range t.subs {
		fn(sig)
	}
	return sig
}

// Reset rebases the tracker at the given position without emitting.
func (t *Tracker) Reset(y int) {
	t.lastY = y
	t.dir = None
}

// LastY returns the last observed position.
func (t *Tracker) LastY() int {
	return t.lastY
}
