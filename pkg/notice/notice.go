// Package notice implements a transient, dismissible message banner for
// Bubble Tea programs.
//
// A [Notice] is Hidden, Visible or FadingOut. Showing a message starts an
// expiry timer; dismissing a visible message fades it out and clears it
// after a short delay. Timers are [tea.Tick] commands tagged with a
// generation number: every transition bumps the generation, so a timer
// that was superseded delivers a message that [Notice.Update] ignores. At
// most one timer is live at any time.
package notice

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	DefaultTimeout   = 2000 * time.Millisecond
	DefaultFadeDelay = 300 * time.Millisecond
)

// State is the lifecycle state of a [Notice].
type State int

const (
	StateHidden State = iota
	StateVisible
	StateFadingOut
)

func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateVisible:
		return "visible"
	case StateFadingOut:
		return "fading"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// ExpiredMsg is delivered when the auto-hide timer of a notice fires.
type ExpiredMsg struct {
	gen uint64
}

// FadedMsg is delivered when the fade-out delay of a dismissed notice ends.
type FadedMsg struct {
	gen uint64
}

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")).
			Padding(0, 1)
	fadingStyle = bannerStyle.Faint(true).Background(lipgloss.Color("52"))
)

// Notice is a single transient message.
type Notice struct {
	message   string
	state     State
	gen       uint64
	timeout   time.Duration
	fadeDelay time.Duration
}

// Option configures a [Notice].
type Option func(*Notice)

// WithTimeout sets how long a notice stays visible before it expires.
func WithTimeout(d time.Duration) Option {
	return func(n *Notice) {
		n.timeout = d
	}
}

// WithFadeDelay sets how long a dismissed notice fades before it clears.
func WithFadeDelay(d time.Duration) Option {
	return func(n *Notice) {
		n.fadeDelay = d
	}
}

// New creates a hidden [Notice].
func New(opts ...Option) *Notice {
	n := &Notice{
		timeout:   DefaultTimeout,
		fadeDelay: DefaultFadeDelay,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Show displays msg and returns the command for its expiry timer. Any timer
// already pending is cancelled.
func (n *Notice) Show(msg string) tea.Cmd {
	n.gen++
	n.message = msg
	n.state = StateVisible

	gen := n.gen
	slog.Debug("show notice", "message", msg, "gen", gen)

	return tea.Tick(n.timeout, func(_ time.Time) tea.Msg {
		return ExpiredMsg{gen: gen}
	})
}

// Dismiss starts fading a visible notice out and returns the command for
// the fade delay. It returns nil when nothing is visible.
func (n *Notice) Dismiss() tea.Cmd {
	if n.state != StateVisible {
		return nil
	}

	n.gen++
	n.state = StateFadingOut

	gen := n.gen
	slog.Debug("dismiss notice", "gen", gen)

	return tea.Tick(n.fadeDelay, func(_ time.Time) tea.Msg {
		return FadedMsg{gen: gen}
	})
}

// Clear hides the notice immediately and cancels any pending timer.
func (n *Notice) Clear() {
	n.gen++
	n.state = StateHidden
	n.message = ""
}

// Update applies timer messages. It reports whether msg belonged to the
// notice, stale or not.
func (n *Notice) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case ExpiredMsg:
		if msg.gen == n.gen && n.state == StateVisible {
			n.gen++
			n.state = StateHidden
		}

		return true

	case FadedMsg:
		if msg.gen == n.gen && n.state == StateFadingOut {
			n.gen++
			n.state = StateHidden
			n.message = ""
		}

		return true
	}

	return false
}

// State returns the current state.
func (n *Notice) State() State {
	return n.state
}

// Message returns the text last shown. It survives expiry and is cleared by
// a completed fade or [Notice.Clear].
func (n *Notice) Message() string {
	return n.message
}

// Visible reports whether the notice is on screen, including while fading.
func (n *Notice) Visible() bool {
	return n.state != StateHidden
}

// Fading reports whether the fade effect is applied.
func (n *Notice) Fading() bool {
	return n.state == StateFadingOut
}

// View renders the notice as a banner no wider than width.
func (n *Notice) View(width int) string {
	if !n.Visible() {
		return ""
	}

	style := bannerStyle
	if n.Fading() {
		style = fadingStyle
	}

	msg := strings.Trim(n.message, "\r\n")

	return style.MaxWidth(max(0, width)).Render(msg)
}
