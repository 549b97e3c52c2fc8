package mot

// LifecycleState describes where a track sits in its match history.
type LifecycleState int

const (
	// Tentative is a track's state for the frame it was spawned on: it
	// has exactly one detection behind it and has not yet survived a
	// second match.
	Tentative LifecycleState = iota
	// Tracking is a track that was matched on the most recent step.
	Tracking
	// Coasting is a track that went unmatched on the most recent step
	// but has not yet exceeded its maximum age.
	Coasting
)

// Track is a single tracked object's persistent state. The Tracker owns
// every Track exclusively; nothing outside the package holds a pointer to
// one.
type Track struct {
	id              uint64
	kf              *kalmanFilter
	rect            Rectangle // filter-derived, not the raw detection
	lastTS          float64
	age             int
	timeSinceUpdate int
	state           LifecycleState
}

func newTrack(id uint64, det Rectangle, ts, sigma, measurementNoise float64) *Track {
	return &Track{
		id:     id,
		kf:     newKalmanFilter(det, sigma, measurementNoise),
		rect:   det,
		lastTS: ts,
		state:  Tentative,
	}
}

func (t *Track) predict(ts, sigma float64) {
	dt := ts - t.lastTS
	if dt <= 0 {
		dt = 1e-6
	}
	t.kf.sigma = sigma
	t.kf.predict(dt)
	t.rect = t.kf.rect()
	t.age++
	t.timeSinceUpdate++
	if t.timeSinceUpdate > 0 {
		t.state = Coasting
	}
}

func (t *Track) correct(det Rectangle, ts float64) error {
	if err := t.kf.correct(det); err != nil {
		return err
	}
	t.rect = t.kf.rect()
	t.lastTS = ts
	t.timeSinceUpdate = 0
	t.state = Tracking
	return nil
}

// ID returns the track's stable identity.
func (t *Track) ID() uint64 { return t.id }

// Rect returns the track's current filter-derived rectangle.
func (t *Track) Rect() Rectangle { return t.rect }

// TrackView is a read-only snapshot of a track, safe to hand to callers that
// must not be able to mutate the engine's internal state.
type TrackView struct {
	ID   uint64
	Rect Rectangle
}

func (t *Track) view() TrackView {
	return TrackView{ID: t.id, Rect: t.rect}
}
