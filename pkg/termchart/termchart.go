// Package termchart draws a [chart.Scene] as a horizontal bar chart made of
// block glyphs.
//
// The chart's view box is scaled onto the available terminal columns while
// keeping its proportions; each band becomes one terminal line.
package termchart

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MacroPower/genebar/pkg/chart"
)

var _ chart.Backend = (*Chart)(nil)

// Eighth-block glyphs for fractional bar ends, indexed by eighths.
var partialBlocks = []string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

const fullBlock = "█"

// Styles used by [Chart.View].
type Styles struct {
	Axis    lipgloss.Style
	Bar     lipgloss.Style
	Exiting lipgloss.Style
	Label   lipgloss.Style
	Empty   lipgloss.Style
}

// DefaultStyles returns the default chart colors.
func DefaultStyles() Styles {
	return Styles{
		Axis:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Bar:     lipgloss.NewStyle().Foreground(lipgloss.Color("#69b3a2")),
		Exiting: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}

// Chart is an animated terminal [chart.Backend].
type Chart struct {
	scene  *chart.Scene
	now    func() time.Time
	styles Styles
	width  int
}

// Option configures a [Chart].
type Option func(*Chart)

// WithClock replaces the time source used to drive transitions.
func WithClock(now func() time.Time) Option {
	return func(c *Chart) {
		c.now = now
	}
}

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(c *Chart) {
		c.styles = s
	}
}

// New creates an empty [Chart] that is width columns wide.
func New(width int, opts ...Option) *Chart {
	c := &Chart{
		scene:  chart.NewScene(),
		now:    time.Now,
		styles: DefaultStyles(),
		width:  width,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Apply starts animating towards p.
func (c *Chart) Apply(p chart.Plan) error {
	c.scene.Apply(p, c.now())

	return nil
}

// Advance moves transitions to the current time and reports whether any are
// still running.
func (c *Chart) Advance() bool {
	return c.scene.Advance(c.now())
}

// Animating reports whether a transition is running.
func (c *Chart) Animating() bool {
	return c.scene.Animating()
}

// Settle jumps every transition to its end.
func (c *Chart) Settle() {
	c.scene.Settle()
}

// SetWidth sets the number of columns available.
func (c *Chart) SetWidth(cols int) {
	c.width = cols
}

// Scene returns the underlying scene.
func (c *Chart) Scene() *chart.Scene {
	return c.scene
}

type row struct {
	bar   chart.Element
	label *chart.Element
	tick  *chart.Tick
}

// rows pairs each drawn bar with its label and axis tick, top to bottom.
func (c *Chart) rows() []row {
	labels := map[string]chart.Element{}
	for _, l := range c.scene.Labels() {
		labels[l.Key] = l
	}

	ticks := map[string]chart.Tick{}
	for _, t := range c.scene.Axis() {
		ticks[t.Key] = t
	}

	bars := c.scene.Bars()
	out := make([]row, 0, len(bars))

	for _, b := range bars {
		r := row{bar: b}
		if l, ok := labels[b.Key]; ok {
			r.label = &l
		}

		if t, ok := ticks[b.Key]; ok && !b.Exiting {
			r.tick = &t
		}

		out = append(out, r)
	}

	return out
}

// Rows returns the number of lines [Chart.View] draws for bars.
func (c *Chart) Rows() int {
	return len(c.scene.Bars())
}

// Tooltip returns the full name of the entry drawn on line i.
func (c *Chart) Tooltip(i int) (string, bool) {
	rows := c.rows()
	if i < 0 || i >= len(rows) || rows[i].tick == nil {
		return "", false
	}

	return rows[i].tick.Tooltip, true
}

// scale returns the number of columns per view box unit.
func (c *Chart) scale() float64 {
	vb := c.scene.Frame().ViewBox
	if vb.Width <= 0 || c.width <= 0 {
		return 0
	}

	return float64(c.width) / vb.Width
}

// View draws the chart.
func (c *Chart) View() string {
	rows := c.rows()
	if len(rows) == 0 {
		return c.styles.Empty.Render("No genes.")
	}

	k := c.scale()
	frame := c.scene.Frame()

	axisWidth := int(math.Round(frame.Margin.Left * k))
	for _, r := range rows {
		if r.tick != nil {
			axisWidth = max(axisWidth, lipgloss.Width(r.tick.Text)+1)
		}
	}

	lines := make([]string, 0, len(rows))

	for _, r := range rows {
		text := ""
		if r.tick != nil {
			text = r.tick.Text
		}

		axis := c.styles.Axis.Width(axisWidth - 1).Align(lipgloss.Right).Render(text)

		barStyle := c.styles.Bar
		if r.bar.Exiting {
			barStyle = c.styles.Exiting
		}

		bar := blocks(r.bar.Attrs.Width * k)
		line := axis + " " + barStyle.Render(bar)

		if r.label != nil {
			col := int(math.Round(r.label.Attrs.X * k))
			gap := max(1, col-lipgloss.Width(bar))
			line += strings.Repeat(" ", gap) + c.styles.Label.Render(r.label.Attrs.Text)
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// blocks renders a bar cols wide, using eighth blocks for the remainder.
func blocks(cols float64) string {
	if cols <= 0 || math.IsNaN(cols) {
		return ""
	}

	full := int(cols)
	eighths := int((cols - float64(full)) * 8)

	return strings.Repeat(fullBlock, full) + partialBlocks[eighths]
}
