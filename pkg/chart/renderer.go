package chart

import (
	"fmt"
	"log/slog"

	"github.com/MacroPower/genebar/pkg/ledger"
)

// Backend draws plans onto a concrete surface.
type Backend interface {
	Apply(p Plan) error
}

// Renderer turns ledger snapshots into plans for a [Backend]. It remembers
// the last frame it rendered so that successive renders reconcile by key.
type Renderer struct {
	backend Backend
	prev    Frame
	cfg     Config
}

// NewRenderer creates a [Renderer] drawing onto b.
func NewRenderer(b Backend, cfg Config) *Renderer {
	return &Renderer{backend: b, cfg: cfg}
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Render lays out entries for vp, reconciles against the previous render and
// applies the plan. The layout is recomputed on every call, since both the
// viewport and the row count may have changed.
func (r *Renderer) Render(entries []ledger.Entry, vp Viewport) (Plan, error) {
	next := Layout(entries, vp, r.cfg)
	plan := Reconcile(r.prev, next, r.cfg)

	slog.Debug("render",
		"entries", len(entries),
		"width", next.Width,
		"height", next.Height,
		"enter", plan.Counts()[OpEnter],
		"update", plan.Counts()[OpUpdate],
		"exit", plan.Counts()[OpExit],
	)

	if err := r.backend.Apply(plan); err != nil {
		return plan, fmt.Errorf("failed to apply plan: %w", err)
	}

	r.prev = next

	return plan, nil
}
