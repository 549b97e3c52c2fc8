package ingest

import (
	"os"

	"github.com/tidwall/gjson"

	"github.com/levicriley/tracking-solution/mot"
)

// LoadFrames reads the tracker's input JSON document: a chronological array
// of frame objects, each carrying a timestamp and a list of detections. A
// detection with w <= 0 or h <= 0, a missing required field, or an
// unparseable timestamp fails the whole load with a MalformedInputError
// naming the offending timestamp or field.
func LoadFrames(path string) ([]Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioFailure(path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, malformedInput("", "", "input is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, malformedInput("", "", "input document must be a JSON array of frames")
	}

	var frames []Frame
	var parseErr error
	root.ForEach(func(_, frame gjson.Result) bool {
		tsField := frame.Get("timestamp")
		if !tsField.Exists() {
			parseErr = malformedInput("", "timestamp", "frame is missing required field")
			return false
		}
		ts, err := ParseTimestamp(tsField.String())
		if err != nil {
			parseErr = malformedInput(tsField.String(), "timestamp", "unparseable timestamp: %v", err)
			return false
		}

		detsField := frame.Get("detections")
		if !detsField.Exists() {
			parseErr = malformedInput(tsField.String(), "detections", "frame is missing required field")
			return false
		}
		if !detsField.IsArray() {
			parseErr = malformedInput(tsField.String(), "detections", "detections must be an array")
			return false
		}

		var dets []mot.Detection
		detsField.ForEach(func(_, det gjson.Result) bool {
			x, y, w, h := det.Get("x"), det.Get("y"), det.Get("w"), det.Get("h")
			if !x.Exists() || !y.Exists() || !w.Exists() || !h.Exists() {
				parseErr = malformedInput(tsField.String(), "detections", "detection is missing x/y/w/h")
				return false
			}
			if w.Float() <= 0 || h.Float() <= 0 {
				parseErr = malformedInput(tsField.String(), "detections", "detection has non-positive w or h")
				return false
			}
			dets = append(dets, mot.Detection{X: x.Float(), Y: y.Float(), Width: w.Float(), Height: h.Float()})
			return true
		})
		if parseErr != nil {
			return false
		}

		frames = append(frames, Frame{Timestamp: ts, Detections: dets})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return frames, nil
}
