// internal/panel/term/term.go
package term

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tamzrod/linkmon/internal/indicator"
	"github.com/tamzrod/linkmon/internal/panel"
)

var (
	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(panel.Columns)

	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Panel renders the indicator and display to a terminal.
// Each Show or Present redraws the whole panel.
type Panel struct {
	out io.Writer
	now func() time.Time

	pending indicator.RGB
	back    panel.Frame
	shown   panel.State
}

// New renders to out.
func New(out io.Writer) (*Panel, error) {
	if out == nil {
		return nil, errors.New("panel term: writer required")
	}
	return &Panel{
		out:   out,
		now:   time.Now,
		back:  panel.NewFrame(),
		shown: panel.State{Frame: panel.NewFrame()},
	}, nil
}

// ---- indicator.Driver ----

func (p *Panel) SetColor(c indicator.RGB) error {
	p.pending = c
	return nil
}

func (p *Panel) Show() error {
	p.shown.Color = p.pending
	p.shown.Shows++
	return p.render()
}

// ---- display.Driver ----

func (p *Panel) Clear() error {
	p.back.Clear()
	return nil
}

func (p *Panel) DrawText(x, y int, text string) error {
	p.back.Draw(x, y, text)
	return nil
}

func (p *Panel) Present() error {
	p.shown.Frame = p.back
	p.shown.Presents++
	return p.render()
}

// Render returns the panel as it would be drawn now.
func (p *Panel) Render() string {
	hex := p.shown.Color.Hex()
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render("    ")

	lines := p.shown.Frame.Lines()
	for i, ln := range lines {
		lines[i] = fmt.Sprintf("%-*s", panel.Columns, ln)
	}
	screen := frameStyle.Render(strings.Join(lines, "\n"))

	caption := captionStyle.Render(fmt.Sprintf("%s  %s", p.now().Format("15:04:05"), hex))
	return lipgloss.JoinHorizontal(lipgloss.Top, swatch, " ", screen) + "\n" + caption + "\n"
}

func (p *Panel) render() error {
	if _, err := io.WriteString(p.out, p.Render()); err != nil {
		return fmt.Errorf("panel term: %w", err)
	}
	return nil
}
