// internal/panel/tee.go
package panel

import (
	"errors"
	"strings"

	"github.com/tamzrod/linkmon/internal/indicator"
)

// Device is a combined indicator + display driver.
type Device interface {
	SetColor(c indicator.RGB) error
	Show() error
	Clear() error
	DrawText(x, y int, text string) error
	Present() error
}

// Tee fans every call out to all devices.
// A failing device never stops delivery to the others.
type Tee []Device

func (t Tee) SetColor(c indicator.RGB) error {
	return t.each(func(d Device) error { return d.SetColor(c) })
}

func (t Tee) Show() error {
	return t.each(func(d Device) error { return d.Show() })
}

func (t Tee) Clear() error {
	return t.each(func(d Device) error { return d.Clear() })
}

func (t Tee) DrawText(x, y int, text string) error {
	return t.each(func(d Device) error { return d.DrawText(x, y, text) })
}

func (t Tee) Present() error {
	return t.each(func(d Device) error { return d.Present() })
}

func (t Tee) each(fn func(Device) error) error {
	var errs []string
	for _, d := range t {
		if err := fn(d); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return errors.New("panel: " + strings.Join(errs, " | "))
	}
	return nil
}
