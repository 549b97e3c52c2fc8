// Package ingest parses the tracker's input JSON document into timestamped
// detection batches and serializes its output JSON document from the
// labelings a driver collects.
package ingest

import (
	"github.com/levicriley/tracking-solution/driver"
)

// Frame is an alias of driver.Frame, since ingest's job is simply to
// produce driver-ready frames from the input document.
type Frame = driver.Frame

// outputFrame and outputTrack mirror the output JSON schema exactly, field
// for field, so encoding/json can marshal them directly with no
// intermediate manipulation.
type outputFrame struct {
	Timestamp string        `json:"timestamp"`
	Tracks    []outputTrack `json:"tracks"`
}

type outputTrack struct {
	ID int64   `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	W  float64 `json:"w"`
	H  float64 `json:"h"`
}

func toOutputFrame(result driver.FrameResult) outputFrame {
	tracks := make([]outputTrack, len(result.Labels))
	for i, l := range result.Labels {
		tracks[i] = outputTrack{
			ID: int64(l.TrackID),
			X:  l.Det.X,
			Y:  l.Det.Y,
			W:  l.Det.Width,
			H:  l.Det.Height,
		}
	}
	return outputFrame{
		Timestamp: FormatTimestamp(result.Timestamp),
		Tracks:    tracks,
	}
}
