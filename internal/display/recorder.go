// internal/display/recorder.go
package display

// Recorder is an in-memory Driver.
// Every Present snapshots the back buffer into Frames.
type Recorder struct {
	buffer []Line
	Clears int
	Frames [][]Line
}

func (r *Recorder) Clear() error {
	r.Clears++
	r.buffer = nil
	return nil
}

func (r *Recorder) DrawText(x, y int, text string) error {
	r.buffer = append(r.buffer, Line{X: x, Y: y, Text: text})
	return nil
}

func (r *Recorder) Present() error {
	frame := make([]Line, len(r.buffer))
	copy(frame, r.buffer)
	r.Frames = append(r.Frames, frame)
	return nil
}

// NonEmptyFrames returns presented frames that carried any text.
func (r *Recorder) NonEmptyFrames() [][]Line {
	var out [][]Line
	for _, f := range r.Frames {
		if len(f) > 0 {
			out = append(out, f)
		}
	}
	return out
}
