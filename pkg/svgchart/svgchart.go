// Package svgchart renders the settled state of a chart as a standalone SVG
// document.
//
// The document scales responsively: it is 100% wide with a fixed view box
// and preserves its aspect ratio. Each bar is a rect, each value a text
// element of class "label", and the category axis is a group of ticks whose
// truncated text carries the full name as a title tooltip.
package svgchart

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/MacroPower/genebar/pkg/chart"
)

// DefaultMountID is the element id of the chart's mount point.
const DefaultMountID = "gene-bar-chart"

const (
	barFill   = "#69b3a2"
	labelFill = "#444"
	axisFill  = "#333"
	fontStyle = "font-size: 16px; font-family: Arial, sans-serif; fill: %s"
	tickSize  = 6
	tickPad   = 3
)

var _ chart.Backend = (*Chart)(nil)

// Chart is a static [chart.Backend]: every plan is applied and settled
// immediately.
type Chart struct {
	scene   *chart.Scene
	mountID string
}

// Option configures a [Chart].
type Option func(*Chart)

// WithMountID sets the id attribute of the root svg element.
func WithMountID(id string) Option {
	return func(c *Chart) {
		c.mountID = id
	}
}

// New creates an empty [Chart].
func New(opts ...Option) *Chart {
	c := &Chart{
		scene:   chart.NewScene(),
		mountID: DefaultMountID,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Apply settles p into the document.
func (c *Chart) Apply(p chart.Plan) error {
	c.scene.Apply(p, time.Time{})
	c.scene.Settle()

	return nil
}

type svgDocument struct {
	XMLName             xml.Name `xml:"svg"`
	Xmlns               string   `xml:"xmlns,attr"`
	ID                  string   `xml:"id,attr,omitempty"`
	Width               string   `xml:"width,attr"`
	Height              string   `xml:"height,attr"`
	ViewBox             string   `xml:"viewBox,attr"`
	PreserveAspectRatio string   `xml:"preserveAspectRatio,attr"`
	Plot                svgPlot  `xml:"g"`
}

type svgPlot struct {
	Transform string    `xml:"transform,attr"`
	Bars      []svgRect `xml:"rect"`
	Labels    []svgText `xml:"text"`
	Axis      svgAxis   `xml:"g"`
}

type svgRect struct {
	Key    string `xml:"data-key,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Fill   string `xml:"fill,attr"`
}

type svgText struct {
	Class  string    `xml:"class,attr,omitempty"`
	Key    string    `xml:"data-key,attr,omitempty"`
	X      string    `xml:"x,attr"`
	Y      string    `xml:"y,attr,omitempty"`
	DY     string    `xml:"dy,attr,omitempty"`
	Anchor string    `xml:"text-anchor,attr,omitempty"`
	Style  string    `xml:"style,attr"`
	Text   string    `xml:",chardata"`
	Title  *svgTitle `xml:"title,omitempty"`
}

type svgTitle struct {
	Text string `xml:",chardata"`
}

type svgAxis struct {
	Class  string    `xml:"class,attr"`
	Domain svgPath   `xml:"path"`
	Ticks  []svgTick `xml:"g"`
}

type svgPath struct {
	Class  string `xml:"class,attr"`
	D      string `xml:"d,attr"`
	Stroke string `xml:"stroke,attr"`
	Fill   string `xml:"fill,attr"`
}

type svgTick struct {
	Class     string  `xml:"class,attr"`
	Transform string  `xml:"transform,attr"`
	Line      svgLine `xml:"line"`
	Text      svgText `xml:"text"`
}

type svgLine struct {
	X2     string `xml:"x2,attr"`
	Stroke string `xml:"stroke,attr"`
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func (c *Chart) document() svgDocument {
	f := c.scene.Frame()

	doc := svgDocument{
		Xmlns:               "http://www.w3.org/2000/svg",
		ID:                  c.mountID,
		Width:               "100%",
		Height:              num(f.Height),
		ViewBox:             fmt.Sprintf("0 0 %s %s", num(f.ViewBox.Width), num(f.ViewBox.Height)),
		PreserveAspectRatio: "xMidYMid meet",
		Plot: svgPlot{
			Transform: fmt.Sprintf("translate(%s, %s)", num(f.Margin.Left), num(f.Margin.Top)),
			Axis: svgAxis{
				Class: "y-axis",
				Domain: svgPath{
					Class:  "domain",
					D:      fmt.Sprintf("M-%d,0.5H0.5V%sH-%d", tickSize, num(f.Height-f.Margin.Top-f.Margin.Bottom+0.5), tickSize),
					Stroke: "currentColor",
					Fill:   "none",
				},
			},
		},
	}

	for _, b := range c.scene.Bars() {
		doc.Plot.Bars = append(doc.Plot.Bars, svgRect{
			Key:    b.Key,
			Y:      num(b.Attrs.Y),
			Width:  num(b.Attrs.Width),
			Height: num(b.Attrs.Height),
			Fill:   barFill,
		})
	}

	for _, l := range c.scene.Labels() {
		doc.Plot.Labels = append(doc.Plot.Labels, svgText{
			Class: "label",
			Key:   l.Key,
			X:     num(l.Attrs.X),
			Y:     num(l.Attrs.Y),
			Style: fmt.Sprintf(fontStyle, labelFill),
			Text:  l.Attrs.Text,
		})
	}

	for _, t := range c.scene.Axis() {
		doc.Plot.Axis.Ticks = append(doc.Plot.Axis.Ticks, svgTick{
			Class:     "tick",
			Transform: fmt.Sprintf("translate(0,%s)", num(t.Y)),
			Line:      svgLine{X2: strconv.Itoa(-tickSize), Stroke: "currentColor"},
			Text: svgText{
				X:      strconv.Itoa(-(tickSize + tickPad)),
				DY:     "0.32em",
				Anchor: "end",
				Style:  fmt.Sprintf(fontStyle, axisFill),
				Text:   t.Text,
				Title:  &svgTitle{Text: t.Tooltip},
			},
		})
	}

	return doc
}

// Encode writes the SVG document to w.
func (c *Chart) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}

	enc := xml.NewEncoder(w)

	if err := enc.Encode(c.document()); err != nil {
		return fmt.Errorf("failed to encode svg: %w", err)
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}

	return nil
}

// EncodeGzip writes the document gzip-compressed (svgz) to w.
func (c *Chart) EncodeGzip(w io.Writer) error {
	zw := gzip.NewWriter(w)

	if err := c.Encode(zw); err != nil {
		return err
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to compress svg: %w", err)
	}

	return nil
}
