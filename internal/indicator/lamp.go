// internal/indicator/lamp.go
package indicator

import (
	"github.com/sirupsen/logrus"
)

// Driver is the write-only RGB pixel hardware.
type Driver interface {
	SetColor(c RGB) error
	Show() error
}

// Lamp is the single setter for the indicator.
// Every Set is a SetColor immediately followed by Show, so a colour is
// never latched without being flushed.
type Lamp struct {
	drv Driver
	log *logrus.Entry
}

// NewLamp wraps drv.
func NewLamp(drv Driver, log *logrus.Entry) *Lamp {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Lamp{
		drv: drv,
		log: log.WithField("component", "indicator"),
	}
}

// Set drives the pixel to c. Driver failures are logged and swallowed;
// the indicator is best-effort output with no readback.
func (l *Lamp) Set(c Color) {
	if err := l.drv.SetColor(c.RGB()); err != nil {
		l.log.Warnf("set color %s failed: %v", c, err)
		return
	}
	if err := l.drv.Show(); err != nil {
		l.log.Warnf("show %s failed: %v", c, err)
	}
}
