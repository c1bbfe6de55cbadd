package chart

// Linear maps the domain [0, Max] onto the range [0, Width].
type Linear struct {
	Max   float64
	Width float64
}

// Scale maps v into the range. A non-positive domain maps everything to 0.
func (s Linear) Scale(v float64) float64 {
	if s.Max <= 0 {
		return 0
	}

	return v / s.Max * s.Width
}

// Band divides a range into evenly spaced bands, one per domain key. Inner
// and outer padding are both Padding, expressed as a fraction of the step,
// and the bands are centered in the range.
type Band struct {
	index     map[string]int
	start     float64
	step      float64
	bandwidth float64
}

// NewBand builds a [Band] over keys spanning [0, extent].
func NewBand(keys []string, extent, padding float64) Band {
	n := float64(len(keys))
	step := extent / max(1, n-padding+padding*2)
	start := (extent - step*(n-padding)) * 0.5

	index := make(map[string]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}

	return Band{
		index:     index,
		start:     start,
		step:      step,
		bandwidth: step * (1 - padding),
	}
}

// Position returns the start of key's band.
func (b Band) Position(key string) (float64, bool) {
	i, ok := b.index[key]
	if !ok {
		return 0, false
	}

	return b.start + b.step*float64(i), true
}

// Bandwidth returns the height of each band.
func (b Band) Bandwidth() float64 {
	return b.bandwidth
}

// Step returns the distance between the starts of adjacent bands.
func (b Band) Step() float64 {
	return b.step
}
