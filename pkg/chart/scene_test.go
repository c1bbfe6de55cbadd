package chart_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/genebar/pkg/chart"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestScene_EnterAnimatesWidth(t *testing.T) {
	t.Parallel()

	cfg := chart.DefaultConfig()
	s := chart.NewScene()
	s.Apply(chart.Reconcile(chart.Frame{}, chart.Layout(entries("A", 10), wide, cfg), cfg), epoch)

	bar, ok := s.Element(chart.KindBar, "A")
	require.True(t, ok)
	assert.Zero(t, bar.Attrs.Width)
	assert.True(t, s.Animating())

	assert.True(t, s.Advance(epoch.Add(cfg.EnterDuration/2)))
	bar, _ = s.Element(chart.KindBar, "A")
	assert.InDelta(t, 300.0, bar.Attrs.Width, 1e-9)

	assert.False(t, s.Advance(epoch.Add(cfg.EnterDuration)))
	bar, _ = s.Element(chart.KindBar, "A")
	assert.InDelta(t, 600.0, bar.Attrs.Width, 1e-9)
}

func TestScene_ExitRemovesAfterTransition(t *testing.T) {
	t.Parallel()

	cfg := chart.DefaultConfig()
	s := chart.NewScene()
	one := chart.Layout(entries("A", 10, "B", 5), wide, cfg)
	two := chart.Layout(entries("A", 10), wide, cfg)

	s.Apply(chart.Reconcile(chart.Frame{}, one, cfg), epoch)
	s.Settle()

	s.Apply(chart.Reconcile(one, two, cfg), epoch)

	bar, ok := s.Element(chart.KindBar, "B")
	require.True(t, ok)
	assert.True(t, bar.Exiting)

	s.Advance(epoch.Add(cfg.ExitDuration))

	_, ok = s.Element(chart.KindBar, "B")
	assert.False(t, ok)
	_, ok = s.Element(chart.KindLabel, "B")
	assert.False(t, ok)
	assert.Len(t, s.Bars(), 1)
}

func TestScene_UpdateStartsFromCurrent(t *testing.T) {
	t.Parallel()

	cfg := chart.DefaultConfig()
	s := chart.NewScene()
	one := chart.Layout(entries("A", 10), wide, cfg)

	s.Apply(chart.Reconcile(chart.Frame{}, one, cfg), epoch)
	s.Advance(epoch.Add(cfg.EnterDuration / 2))

	mid, _ := s.Element(chart.KindBar, "A")

	// Re-rendering the same frame mid-flight continues from the current width.
	s.Apply(chart.Reconcile(one, one, cfg), epoch.Add(cfg.EnterDuration/2))

	now, _ := s.Element(chart.KindBar, "A")
	assert.InDelta(t, mid.Attrs.Width, now.Attrs.Width, 1e-9)

	s.Settle()
	done, _ := s.Element(chart.KindBar, "A")
	assert.InDelta(t, 600.0, done.Attrs.Width, 1e-9)
}

func TestScene_ReenterWhileExiting(t *testing.T) {
	t.Parallel()

	cfg := chart.DefaultConfig()
	s := chart.NewScene()
	one := chart.Layout(entries("A", 10), wide, cfg)

	s.Apply(chart.Reconcile(chart.Frame{}, one, cfg), epoch)
	s.Settle()
	s.Apply(chart.Reconcile(one, chart.Frame{}, cfg), epoch)
	s.Apply(chart.Reconcile(chart.Frame{}, one, cfg), epoch.Add(time.Millisecond))
	s.Settle()

	bar, ok := s.Element(chart.KindBar, "A")
	require.True(t, ok)
	assert.False(t, bar.Exiting)
	assert.InDelta(t, 600.0, bar.Attrs.Width, 1e-9)
}

func TestEaseCubicInOut(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.0, chart.EaseCubicInOut(0), 1e-9)
	assert.InDelta(t, 0.5, chart.EaseCubicInOut(0.5), 1e-9)
	assert.InDelta(t, 1.0, chart.EaseCubicInOut(1), 1e-9)
	assert.Less(t, chart.EaseCubicInOut(0.25), 0.25)
}
