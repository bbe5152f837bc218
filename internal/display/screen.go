// internal/display/screen.go
package display

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Driver is the write-only text panel.
// DrawText and Clear only touch the back buffer; Present makes it visible.
type Driver interface {
	Clear() error
	DrawText(x, y int, text string) error
	Present() error
}

// Line is one piece of text at a fixed pixel position.
type Line struct {
	X, Y int
	Text string
}

// Screen wraps a Driver with page-level operations.
type Screen struct {
	drv Driver
	log *logrus.Entry
}

// NewScreen wraps drv.
func NewScreen(drv Driver, log *logrus.Entry) *Screen {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Screen{
		drv: drv,
		log: log.WithField("component", "display"),
	}
}

// Show replaces the panel content with lines and presents it.
func (s *Screen) Show(lines ...Line) {
	var errs []string

	if err := s.drv.Clear(); err != nil {
		errs = append(errs, fmt.Sprintf("clear: %v", err))
	}
	for _, ln := range lines {
		if err := s.drv.DrawText(ln.X, ln.Y, ln.Text); err != nil {
			errs = append(errs, fmt.Sprintf("draw %q at (%d,%d): %v", ln.Text, ln.X, ln.Y, err))
		}
	}
	if err := s.drv.Present(); err != nil {
		errs = append(errs, fmt.Sprintf("present: %v", err))
	}

	if len(errs) > 0 {
		s.log.Warnf("show failed: %s", strings.Join(errs, " | "))
	}
}

// ClearBuffer empties the back buffer without presenting it.
func (s *Screen) ClearBuffer() {
	if err := s.drv.Clear(); err != nil {
		s.log.Warnf("clear failed: %v", err)
	}
}

// Blank clears the panel and presents the empty frame.
func (s *Screen) Blank() {
	s.Show()
}
