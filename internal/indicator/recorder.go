// internal/indicator/recorder.go
package indicator

// Recorder is an in-memory Driver that keeps every flushed colour.
// Used in tests.
type Recorder struct {
	pending RGB
	Shown   []RGB
}

func (r *Recorder) SetColor(c RGB) error {
	r.pending = c
	return nil
}

func (r *Recorder) Show() error {
	r.Shown = append(r.Shown, r.pending)
	return nil
}

// Last returns the most recently shown colour and whether anything was shown.
func (r *Recorder) Last() (RGB, bool) {
	if len(r.Shown) == 0 {
		return RGB{}, false
	}
	return r.Shown[len(r.Shown)-1], true
}
