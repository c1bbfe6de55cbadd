package chart

import (
	"cmp"
	"slices"
	"time"
)

// Element is a drawn bar or label.
type Element struct {
	Key   string
	Attrs Attrs
	Kind  Kind
	// Exiting is set while the element animates out.
	Exiting bool
}

type elementID struct {
	key  string
	kind Kind
}

type transition struct {
	start  time.Time
	from   Attrs
	to     Attrs
	dur    time.Duration
	remove bool
}

type sceneElement struct {
	tr *transition
	Element
}

// Scene is the live state of an animated backend. It applies plans as
// transitions and interpolates element attributes as time advances. Updates
// start from the element's current attributes, so a plan applied in the
// middle of a transition continues smoothly.
type Scene struct {
	elements map[elementID]*sceneElement
	axis     []Tick
	frame    Frame
	ease     func(float64) float64
}

// NewScene creates an empty [Scene].
func NewScene() *Scene {
	return &Scene{
		elements: map[elementID]*sceneElement{},
		ease:     EaseCubicInOut,
	}
}

// Apply starts the transitions in p at now.
func (s *Scene) Apply(p Plan, now time.Time) {
	for _, i := range p.Bars {
		s.apply(i, now)
	}

	for _, i := range p.Labels {
		s.apply(i, now)
	}

	s.axis = slices.Clone(p.Axis)
	s.frame = p.Frame
}

func (s *Scene) apply(i Instruction, now time.Time) {
	id := elementID{key: i.Key, kind: i.Kind}
	el, ok := s.elements[id]

	switch i.Op {
	case OpEnter:
		el = &sceneElement{Element: Element{Key: i.Key, Kind: i.Kind, Attrs: i.From}}
		s.elements[id] = el

	case OpUpdate:
		if !ok {
			el = &sceneElement{Element: Element{Key: i.Key, Kind: i.Kind, Attrs: i.To}}
			s.elements[id] = el
		}

		el.Exiting = false
		el.Attrs.Text = i.To.Text

	case OpExit:
		if !ok {
			return
		}

		el.Exiting = true
	}

	el.tr = &transition{
		start:  now,
		from:   el.Attrs,
		to:     i.To,
		dur:    i.Duration,
		remove: i.Remove(),
	}

	s.step(id, el, now)
}

// Advance moves every transition to now. It reports whether any transition
// is still running.
func (s *Scene) Advance(now time.Time) bool {
	for id, el := range s.elements {
		s.step(id, el, now)
	}

	return s.Animating()
}

// Settle completes every transition immediately.
func (s *Scene) Settle() {
	for id, el := range s.elements {
		if el.tr != nil {
			s.finish(id, el)
		}
	}
}

// Animating reports whether any transition is pending.
func (s *Scene) Animating() bool {
	for _, el := range s.elements {
		if el.tr != nil {
			return true
		}
	}

	return false
}

func (s *Scene) step(id elementID, el *sceneElement, now time.Time) {
	tr := el.tr
	if tr == nil {
		return
	}

	elapsed := now.Sub(tr.start)
	if tr.dur <= 0 || elapsed >= tr.dur {
		s.finish(id, el)

		return
	}

	t := max(0, float64(elapsed)/float64(tr.dur))
	el.Attrs = tr.from.Lerp(tr.to, s.ease(t))
}

func (s *Scene) finish(id elementID, el *sceneElement) {
	el.Attrs = el.tr.to
	remove := el.tr.remove
	el.tr = nil

	if remove {
		delete(s.elements, id)
	}
}

// Bars returns the bars currently drawn, top to bottom.
func (s *Scene) Bars() []Element {
	return s.collect(KindBar)
}

// Labels returns the labels currently drawn, top to bottom.
func (s *Scene) Labels() []Element {
	return s.collect(KindLabel)
}

// Element returns the element of kind with key.
func (s *Scene) Element(kind Kind, key string) (Element, bool) {
	el, ok := s.elements[elementID{key: key, kind: kind}]
	if !ok {
		return Element{}, false
	}

	return el.Element, true
}

// Axis returns the ticks of the last applied plan.
func (s *Scene) Axis() []Tick {
	return slices.Clone(s.axis)
}

// Frame returns the target frame of the last applied plan.
func (s *Scene) Frame() Frame {
	return s.frame
}

func (s *Scene) collect(kind Kind) []Element {
	out := []Element{}
	for id, el := range s.elements {
		if id.kind == kind {
			out = append(out, el.Element)
		}
	}

	slices.SortFunc(out, func(a, b Element) int {
		return cmp.Or(cmp.Compare(a.Attrs.Y, b.Attrs.Y), cmp.Compare(a.Key, b.Key))
	})

	return out
}

// EaseCubicInOut is symmetric cubic easing.
func EaseCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}

	t -= 2

	return (t*t*t + 2) / 2
}
