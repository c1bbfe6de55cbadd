package chart

import (
	"fmt"
	"time"
)

// Op is the reconciliation outcome for one keyed element.
type Op int

const (
	// OpEnter creates an element that was not in the previous frame.
	OpEnter Op = iota
	// OpUpdate moves an element that is in both frames.
	OpUpdate
	// OpExit removes an element that is no longer in the frame.
	OpExit
)

func (o Op) String() string {
	switch o {
	case OpEnter:
		return "enter"
	case OpUpdate:
		return "update"
	case OpExit:
		return "exit"
	}

	return fmt.Sprintf("Op(%d)", int(o))
}

// Kind identifies the element type an [Instruction] applies to.
type Kind int

const (
	KindBar Kind = iota
	KindLabel
)

func (k Kind) String() string {
	switch k {
	case KindBar:
		return "bar"
	case KindLabel:
		return "label"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Attrs are the animatable attributes of an element. Bars use Y, Width and
// Height; labels use X, Y and Text.
type Attrs struct {
	Text   string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Lerp interpolates between a and b. Text snaps to b.
func (a Attrs) Lerp(b Attrs, t float64) Attrs {
	lerp := func(x, y float64) float64 { return x + (y-x)*t }

	return Attrs{
		Text:   b.Text,
		X:      lerp(a.X, b.X),
		Y:      lerp(a.Y, b.Y),
		Width:  lerp(a.Width, b.Width),
		Height: lerp(a.Height, b.Height),
	}
}

// Instruction tells a backend how to animate one element.
type Instruction struct {
	Key string
	// From is the initial state of an entering element. Updates and exits
	// start from whatever the element currently shows.
	From     Attrs
	To       Attrs
	Duration time.Duration
	Kind     Kind
	Op       Op
}

// Remove reports whether the element is discarded once the transition ends.
func (i Instruction) Remove() bool {
	return i.Op == OpExit
}

// Plan is the set of instructions that takes a backend from one frame to the
// next.
type Plan struct {
	Bars   []Instruction
	Labels []Instruction
	// Axis is rebuilt from scratch on every render.
	Axis  []Tick
	Frame Frame
}

// Counts returns how many instructions of each op the plan holds, over bars
// and labels.
func (p Plan) Counts() map[Op]int {
	counts := map[Op]int{}
	for _, i := range p.Bars {
		counts[i.Op]++
	}

	for _, i := range p.Labels {
		counts[i.Op]++
	}

	return counts
}

// Reconcile matches next against prev by key. Instructions for elements in
// next come first, in display order, followed by exits in prev order.
func Reconcile(prev, next Frame, cfg Config) Plan {
	return Plan{
		Bars:   reconcileBars(prev.Bars, next.Bars, cfg),
		Labels: reconcileLabels(prev.Labels, next.Labels, cfg),
		Axis:   next.Axis,
		Frame:  next,
	}
}

func reconcileBars(prev, next []Bar, cfg Config) []Instruction {
	seen := make(map[string]bool, len(prev))
	for _, b := range prev {
		seen[b.Key] = true
	}

	out := make([]Instruction, 0, len(next)+len(prev))
	kept := make(map[string]bool, len(next))

	for _, b := range next {
		kept[b.Key] = true
		to := Attrs{Y: b.Y, Width: b.Width, Height: b.Height}

		if seen[b.Key] {
			out = append(out, Instruction{
				Kind: KindBar, Op: OpUpdate, Key: b.Key,
				To: to, Duration: cfg.UpdateDuration,
			})

			continue
		}

		out = append(out, Instruction{
			Kind: KindBar, Op: OpEnter, Key: b.Key,
			From:     Attrs{Y: b.Y, Width: 0, Height: b.Height},
			To:       to,
			Duration: cfg.EnterDuration,
		})
	}

	for _, b := range prev {
		if kept[b.Key] {
			continue
		}

		out = append(out, Instruction{
			Kind: KindBar, Op: OpExit, Key: b.Key,
			To:       Attrs{Y: b.Y, Width: 0, Height: b.Height},
			Duration: cfg.ExitDuration,
		})
	}

	return out
}

func reconcileLabels(prev, next []Label, cfg Config) []Instruction {
	seen := make(map[string]bool, len(prev))
	for _, l := range prev {
		seen[l.Key] = true
	}

	out := make([]Instruction, 0, len(next)+len(prev))
	kept := make(map[string]bool, len(next))

	for _, l := range next {
		kept[l.Key] = true
		to := Attrs{X: l.X, Y: l.Y, Text: l.Text}

		if seen[l.Key] {
			out = append(out, Instruction{
				Kind: KindLabel, Op: OpUpdate, Key: l.Key,
				To: to, Duration: cfg.UpdateDuration,
			})

			continue
		}

		out = append(out, Instruction{
			Kind: KindLabel, Op: OpEnter, Key: l.Key,
			From:     Attrs{X: 0, Y: l.Y, Text: l.Text},
			To:       to,
			Duration: cfg.EnterDuration,
		})
	}

	for _, l := range prev {
		if kept[l.Key] {
			continue
		}

		out = append(out, Instruction{
			Kind: KindLabel, Op: OpExit, Key: l.Key,
			To:       Attrs{X: 0, Y: l.Y, Text: l.Text},
			Duration: cfg.LabelExitDuration,
		})
	}

	return out
}
