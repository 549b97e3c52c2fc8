// Package driver feeds timestamped detection batches into a tracker engine
// and collects the per-frame labelings it produces.
package driver

import (
	"time"

	"github.com/levicriley/tracking-solution/mot"
)

// Frame is one timestamped batch of detections, ready to be stepped through
// an engine.
type Frame struct {
	Timestamp  time.Time
	Detections []mot.Detection
}

// FrameResult pairs an input frame's timestamp with the labels the engine
// produced for it.
type FrameResult struct {
	Timestamp time.Time
	Labels    []mot.Label
}

// Run drives engine over frames in order, one Step call per frame, and
// returns the collected results in the same order. It performs no
// validation of its own - frames are assumed already validated by the
// caller - and returns immediately on the first Step error, since the
// engine considers itself poisoned at that point.
//
// If onFrame is not nil, it is called after each Step, before the next
// frame advances the engine, with that frame's result and a snapshot of
// the engine's live track set - including tracks that went unmatched this
// frame and so are absent from result.Labels.
func Run(frames []Frame, engine *mot.Engine, onFrame func(index int, result FrameResult, tracks []mot.TrackView)) ([]FrameResult, error) {
	results := make([]FrameResult, 0, len(frames))
	for i, frame := range frames {
		labels, err := engine.Step(timestampToSeconds(frame.Timestamp), frame.Detections)
		if err != nil {
			return nil, err
		}
		result := FrameResult{Timestamp: frame.Timestamp, Labels: labels}
		results = append(results, result)
		if onFrame != nil {
			onFrame(i, result, engine.Tracks())
		}
	}
	return results, nil
}

// RunStream is the streaming counterpart of Run, for callers that do not
// want to materialize the whole input in memory. It preserves the same
// per-frame ordering guarantee and closes both channels once frames is
// drained or a Step fails.
func RunStream(frames <-chan Frame, engine *mot.Engine) (<-chan FrameResult, <-chan error) {
	results := make(chan FrameResult)
	errs := make(chan error, 1)
	go func() {
		defer close(results)
		defer close(errs)
		for frame := range frames {
			labels, err := engine.Step(timestampToSeconds(frame.Timestamp), frame.Detections)
			if err != nil {
				errs <- err
				return
			}
			results <- FrameResult{Timestamp: frame.Timestamp, Labels: labels}
		}
	}()
	return results, errs
}

func timestampToSeconds(ts time.Time) float64 {
	return float64(ts.Unix()) + float64(ts.Nanosecond())/1e9
}
