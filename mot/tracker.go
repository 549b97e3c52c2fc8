package mot

// Detection is a single bounding box reported for one frame, in normalized
// image coordinates.
type Detection = Rectangle

// Label pairs a detection with the identity of the track it was assigned
// to for one frame. A track id appears at most once per frame's labels; a
// detection that started a new track still produces a label, using that
// track's freshly allocated id.
type Label struct {
	TrackID uint64
	Det     Detection
}

// Params configures the tracker engine's gating and noise behavior.
type Params struct {
	// MaxDist gates out any track/detection pair whose centers, in
	// normalized image coordinates, are farther apart than this.
	MaxDist float64
	// MaxAge is the number of consecutive unmatched frames a track
	// tolerates before it is retired.
	MaxAge int
	// Alpha weights IoU against center-distance in the cost function;
	// higher favors IoU.
	Alpha float64
	// ProcessNoise is sigma^2 in the Kalman filter's Q(dt, sigma^2).
	ProcessNoise float64
	// MeasurementNoise is the diagonal of the Kalman filter's R.
	MeasurementNoise float64
}

// DefaultParams returns the tracker's documented defaults.
func DefaultParams() Params {
	return Params{
		MaxDist:          0.15,
		MaxAge:           5,
		Alpha:            0.7,
		ProcessNoise:     1e-2,
		MeasurementNoise: 1e-2,
	}
}

// Engine is the per-frame predict/associate/update tracker. It is not safe
// for concurrent use by multiple goroutines; independent instances may run
// concurrently.
type Engine struct {
	params Params
	tracks []*Track
	nextID uint64
}

// NewEngine constructs a tracker engine with the given parameters.
func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

// Tracks returns a read-only snapshot of the engine's current tracks, in no
// particular order. Callers must not use it to mutate engine state.
func (e *Engine) Tracks() []TrackView {
	views := make([]TrackView, len(e.tracks))
	for i, t := range e.tracks {
		views[i] = t.view()
	}
	return views
}

// Step advances the engine by one frame: every existing track is predicted
// to ts, matched against dets by minimum-cost gated assignment, corrected
// on a match, and a new track is spawned for every detection left over.
// Tracks that have gone unmatched for more than MaxAge consecutive frames
// are retired before Step returns. The returned labels are in the same
// order as dets.
func (e *Engine) Step(ts float64, dets []Detection) ([]Label, error) {
	for i, d := range dets {
		if !d.finite() {
			return nil, newInvariantViolation("detection %d is non-finite: %+v", i, d)
		}
	}

	for _, t := range e.tracks {
		t.predict(ts, e.params.ProcessNoise)
	}

	nTracks := len(e.tracks)
	nDets := len(dets)
	n := maxInt(nTracks, nDets)

	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
		if i < nTracks {
			for j := 0; j < nDets; j++ {
				cost[i][j] = pairCost(e.tracks[i].rect, dets[j], e.params.MaxDist, e.params.Alpha)
			}
		}
		// Dummy rows (i >= nTracks) and dummy columns (j >= nDets) stay
		// at their zero value, per the padding convention.
	}

	assignment, err := solveAssignment(cost)
	if err != nil {
		return nil, wrapInvariantViolation(err, "assignment solver failed")
	}

	detToTrack := make([]int, nDets)
	for i := range detToTrack {
		detToTrack[i] = -1
	}
	for i := 0; i < nTracks; i++ {
		j := assignment[i]
		if j < nDets && cost[i][j] < BigCost {
			detToTrack[j] = i
		}
	}

	for j, i := range detToTrack {
		if i < 0 {
			continue
		}
		if err := e.tracks[i].correct(dets[j], ts); err != nil {
			return nil, wrapInvariantViolation(err, "track correction failed")
		}
	}

	labels := make([]Label, nDets)
	for j, det := range dets {
		if i := detToTrack[j]; i >= 0 {
			labels[j] = Label{TrackID: e.tracks[i].id, Det: det}
			continue
		}
		id := e.nextID
		e.nextID++
		track := newTrack(id, det, ts, e.params.ProcessNoise, e.params.MeasurementNoise)
		e.tracks = append(e.tracks, track)
		labels[j] = Label{TrackID: id, Det: det}
	}

	kept := e.tracks[:0]
	for _, t := range e.tracks {
		if t.timeSinceUpdate <= e.params.MaxAge {
			kept = append(kept, t)
		}
	}
	e.tracks = kept

	return labels, nil
}
