package chart

import (
	"slices"

	"github.com/MacroPower/genebar/pkg/ledger"
)

// Viewport describes the surface the chart is mounted in, in logical units.
type Viewport struct {
	// Width is the width of the whole viewport.
	Width float64
	// ContainerWidth is the width of the mount point. Zero means unknown.
	ContainerWidth float64
}

// ViewBox is the internal coordinate system of the drawing surface.
type ViewBox struct {
	Width  float64
	Height float64
}

// Bar is one bar of a laid out chart.
type Bar struct {
	Key    string
	Y      float64
	Width  float64
	Height float64
}

// Label is the value label drawn past the end of a bar.
type Label struct {
	Key  string
	Text string
	X    float64
	Y    float64
}

// Tick is one category on the vertical axis.
type Tick struct {
	Key string
	// Text is the possibly truncated name that is displayed.
	Text string
	// Tooltip is the full name.
	Tooltip string
	// Y is the center of the tick's band.
	Y float64
}

// Frame is the target visual state for one snapshot. Coordinates are
// relative to the plot area, which is offset by Margin inside ViewBox.
type Frame struct {
	Bars      []Bar
	Labels    []Label
	Axis      []Tick
	Margin    Margin
	ViewBox   ViewBox
	Width     float64
	Height    float64
	Bandwidth float64
}

// Keys returns the bar keys in display order.
func (f Frame) Keys() []string {
	keys := make([]string, 0, len(f.Bars))
	for _, b := range f.Bars {
		keys = append(keys, b.Key)
	}

	return keys
}

// Sorted returns a copy of entries ordered by value, largest first. Entries
// with equal values keep their relative order.
func Sorted(entries []ledger.Entry) []ledger.Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b ledger.Entry) int {
		return b.Value.Cmp(a.Value)
	})

	return sorted
}

// PlotWidth returns the width of the plot area for vp.
func (c Config) PlotWidth(vp Viewport) float64 {
	if vp.Width >= c.Breakpoint {
		return c.FixedWidth
	}

	container := vp.ContainerWidth
	if container <= 0 {
		container = c.FallbackContainerWidth
	}

	return max(0, container-c.Margin.Left-c.Margin.Right)
}

// Layout computes the [Frame] for entries on vp.
func Layout(entries []ledger.Entry, vp Viewport, cfg Config) Frame {
	sorted := Sorted(entries)

	width := cfg.PlotWidth(vp)
	rows := float64(len(sorted))
	height := rows*cfg.RowHeight + cfg.Margin.Top + cfg.Margin.Bottom

	maxValue := 0.0
	keys := make([]string, 0, len(sorted))

	for _, e := range sorted {
		maxValue = max(maxValue, e.Value.InexactFloat64())
		keys = append(keys, e.Name)
	}

	x := Linear{Max: maxValue, Width: width}
	y := NewBand(keys, rows*cfg.RowHeight, cfg.BandPadding)
	bw := y.Bandwidth()

	f := Frame{
		Margin:    cfg.Margin,
		ViewBox:   ViewBox{Width: width + cfg.Margin.Left + cfg.Margin.Right, Height: height},
		Width:     width,
		Height:    height,
		Bandwidth: bw,
		Bars:      make([]Bar, 0, len(sorted)),
		Labels:    make([]Label, 0, len(sorted)),
		Axis:      make([]Tick, 0, len(sorted)),
	}

	for _, e := range sorted {
		pos, _ := y.Position(e.Name)
		barWidth := x.Scale(e.Value.InexactFloat64())

		f.Bars = append(f.Bars, Bar{Key: e.Name, Y: pos, Width: barWidth, Height: bw})
		f.Labels = append(f.Labels, Label{
			Key:  e.Name,
			Text: e.Value.String(),
			X:    barWidth + cfg.LabelOffsetX,
			Y:    pos + bw/2 + cfg.LabelOffsetY,
		})
		f.Axis = append(f.Axis, Tick{
			Key:     e.Name,
			Text:    cfg.Truncate(e.Name),
			Tooltip: e.Name,
			Y:       pos + bw/2,
		})
	}

	return f
}
