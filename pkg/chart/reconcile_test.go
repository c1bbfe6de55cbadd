package chart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/genebar/pkg/chart"
)

func ops(is []chart.Instruction) map[string]chart.Op {
	out := map[string]chart.Op{}
	for _, i := range is {
		out[i.Key] = i.Op
	}

	return out
}

func TestReconcile_EnterUpdateExit(t *testing.T) {
	t.Parallel()

	cfg := chart.DefaultConfig()
	prev := chart.Layout(entries("A", 10, "B", 20), wide, cfg)
	next := chart.Layout(entries("B", 5, "C", 30), wide, cfg)

	p := chart.Reconcile(prev, next, cfg)

	want := map[string]chart.Op{"A": chart.OpExit, "B": chart.OpUpdate, "C": chart.OpEnter}
	assert.Equal(t, want, ops(p.Bars))
	assert.Equal(t, want, ops(p.Labels))
	assert.Equal(t, map[chart.Op]int{chart.OpEnter: 2, chart.OpUpdate: 2, chart.OpExit: 2}, p.Counts())

	// Exits come after the elements of the next frame.
	require.Len(t, p.Bars, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{p.Bars[0].Key, p.Bars[1].Key, p.Bars[2].Key})

	for _, i := range p.Bars {
		switch i.Op {
		case chart.OpEnter:
			assert.Zero(t, i.From.Width)
			assert.InDelta(t, i.To.Y, i.From.Y, 1e-9)
			assert.InDelta(t, 600.0, i.To.Width, 1e-9)
			assert.Equal(t, cfg.EnterDuration, i.Duration)
			assert.False(t, i.Remove())
		case chart.OpUpdate:
			assert.InDelta(t, 100.0, i.To.Width, 1e-9)
			assert.Equal(t, cfg.UpdateDuration, i.Duration)
		case chart.OpExit:
			assert.Zero(t, i.To.Width)
			assert.Equal(t, cfg.ExitDuration, i.Duration)
			assert.True(t, i.Remove())
		}
	}

	for _, i := range p.Labels {
		switch i.Op {
		case chart.OpEnter:
			assert.Zero(t, i.From.X)
			assert.Equal(t, "30", i.From.Text)
		case chart.OpUpdate:
			assert.Equal(t, "5", i.To.Text)
			assert.InDelta(t, 105.0, i.To.X, 1e-9)
		case chart.OpExit:
			assert.Zero(t, i.To.X)
			assert.Equal(t, cfg.LabelExitDuration, i.Duration)
		}
	}

	assert.Equal(t, next.Axis, p.Axis)
}

func TestReconcile_FromEmpty(t *testing.T) {
	t.Parallel()

	cfg := chart.DefaultConfig()
	next := chart.Layout(entries("A", 1), wide, cfg)

	p := chart.Reconcile(chart.Frame{}, next, cfg)
	assert.Equal(t, map[chart.Op]int{chart.OpEnter: 2}, p.Counts())
}

func TestReconcile_SameFrameOnlyUpdates(t *testing.T) {
	t.Parallel()

	cfg := chart.DefaultConfig()
	f := chart.Layout(entries("A", 1, "B", 2), wide, cfg)

	p := chart.Reconcile(f, f, cfg)
	assert.Equal(t, map[chart.Op]int{chart.OpUpdate: 4}, p.Counts())
}
