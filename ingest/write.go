package ingest

import (
	"encoding/json"
	"os"

	"github.com/levicriley/tracking-solution/driver"
)

// SaveFrames writes the tracker's output JSON document: one object per
// input frame, in order, each carrying the canonical timestamp and the
// raw detection rectangles associated to a track that frame.
func SaveFrames(path string, results []driver.FrameResult) error {
	frames := make([]outputFrame, len(results))
	for i, r := range results {
		frames[i] = toOutputFrame(r)
	}
	data, err := json.MarshalIndent(frames, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ioFailure(path, err)
	}
	return nil
}
