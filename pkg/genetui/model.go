package genetui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MacroPower/genebar/pkg/chart"
	"github.com/MacroPower/genebar/pkg/ledger"
	"github.com/MacroPower/genebar/pkg/notice"
	"github.com/MacroPower/genebar/pkg/termchart"
)

// CellUnits is the number of chart viewport units per terminal column.
const CellUnits = 8

const defaultWidth = 80

// Lines of the view, top to bottom, before the chart starts.
const (
	lineTitle = iota
	_
	lineName
	lineAmount
	_
	lineNotice
	_
	lineChart
)

const (
	fieldName = iota
	fieldAmount
)

// Model is the interactive gene ledger.
type Model struct {
	form     *ledger.Form
	renderer *chart.Renderer
	chart    *termchart.Chart
	notice   *notice.Notice
	keys     keyMap
	tooltip  string
	logs     []string
	inputs   []textinput.Model
	help     help.Model
	focus    int
	width    int
	height   int
	ticking  bool
}

// Option configures a [Model].
type Option func(*options)

type options struct {
	notice *notice.Notice
	clock  func() time.Time
	config chart.Config
}

// WithConfig sets the chart configuration.
func WithConfig(cfg chart.Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithNotice replaces the notice banner, e.g. to change its timeouts.
func WithNotice(n *notice.Notice) Option {
	return func(o *options) {
		o.notice = n
	}
}

// WithClock replaces the time source driving chart animations.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// NewModel creates a [Model] editing l.
func NewModel(l *ledger.Ledger, opts ...Option) *Model {
	o := &options{
		config: chart.DefaultConfig(),
		clock:  time.Now,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.notice == nil {
		o.notice = notice.New()
	}

	tc := termchart.New(defaultWidth, termchart.WithClock(o.clock))

	name := textinput.New()
	name.Prompt = "Gene   > "
	name.Placeholder = "name"
	name.CharLimit = 64

	amount := textinput.New()
	amount.Prompt = "Amount > "
	amount.Placeholder = "value"
	amount.CharLimit = 32

	m := &Model{
		form:     ledger.NewForm(l),
		renderer: chart.NewRenderer(tc, o.config),
		chart:    tc,
		notice:   o.notice,
		keys:     defaultKeyMap(),
		inputs:   []textinput.Model{name, amount},
		help:     help.New(),
		width:    defaultWidth,
	}
	m.setFocus(fieldName)

	return m
}

// Ledger returns the ledger being edited.
func (m *Model) Ledger() *ledger.Ledger {
	return m.form.Ledger()
}

// Notice returns the notice banner.
func (m *Model) Notice() *notice.Notice {
	return m.notice
}

// Chart returns the terminal chart backend.
func (m *Model) Chart() *termchart.Chart {
	return m.chart
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.render())
}

//nolint:ireturn // Third-party.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.notice.Update(msg) {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.chart.SetWidth(msg.Width)

		return m, m.render()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case frameMsg:
		if m.chart.Advance() {
			return m, nextFrame()
		}

		m.ticking = false

		return m, nil

	case teaMsgWriteLog:
		m.logs = append(m.logs, formatLog(msg, m.width))
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}

		return m, nil
	}

	return m, m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Add):
		return m.submit(ledger.OpAdd)

	case key.Matches(msg, m.keys.Remove):
		return m.submit(ledger.OpRemove)

	case key.Matches(msg, m.keys.Next):
		return m.setFocus((m.focus + 1) % len(m.inputs))

	case key.Matches(msg, m.keys.Prev):
		return m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
	}

	return m.updateFocused(msg)
}

// handleMouse treats any click outside the input fields as a request to
// dismiss the notice, and shows the full name of the axis label under the
// pointer.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	row := msg.Y - lineChart
	m.tooltip = ""

	if tip, ok := m.chart.Tooltip(row); ok {
		m.tooltip = tip
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	switch msg.Y {
	case lineName:
		return m.setFocus(fieldName)
	case lineAmount:
		return m.setFocus(fieldAmount)
	}

	return m.notice.Dismiss()
}

func (m *Model) submit(op ledger.Op) tea.Cmd {
	m.form.SetName(m.inputs[fieldName].Value())
	m.form.SetAmount(ledger.ParseAmount(m.inputs[fieldAmount].Value()))

	out := m.form.Submit(op)

	for i := range m.inputs {
		m.inputs[i].Reset()
	}

	cmds := []tea.Cmd{m.setFocus(fieldName)}

	if out.ClearNotice {
		m.notice.Clear()
	}

	if out.Notice != "" {
		slog.Info("rejected operation", "op", op.String(), "err", out.Err)
		cmds = append(cmds, m.notice.Show(out.Notice))
	}

	if out.Changed {
		cmds = append(cmds, m.render())
	}

	return tea.Batch(cmds...)
}

// render draws the current snapshot and starts the animation loop if it is
// not already running.
func (m *Model) render() tea.Cmd {
	vp := chart.Viewport{
		Width:          float64(m.width * CellUnits),
		ContainerWidth: float64(m.width * CellUnits),
	}

	if _, err := m.renderer.Render(m.Ledger().Snapshot(), vp); err != nil {
		slog.Error("failed to render chart", "err", err)

		return nil
	}

	if m.ticking || !m.chart.Animating() {
		return nil
	}

	m.ticking = true

	return nextFrame()
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i

	var cmd tea.Cmd

	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
			m.inputs[j].PromptStyle = focusedStyle
			m.inputs[j].TextStyle = focusedStyle

			continue
		}

		m.inputs[j].Blur()
		m.inputs[j].PromptStyle = blurredStyle
		m.inputs[j].TextStyle = blurredStyle
	}

	return cmd
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	return cmd
}

func (m *Model) View() string {
	lines := make([]string, lineChart, lineChart+m.chart.Rows()+4+len(m.logs))
	lines[lineTitle] = titleStyle.Render("Gene expression")
	lines[lineName] = m.inputs[fieldName].View()
	lines[lineAmount] = m.inputs[fieldAmount].View()
	lines[lineNotice] = m.notice.View(m.width)

	lines = append(lines, m.chart.View(), "")
	lines = append(lines, tooltipStyle.Render(m.tooltip))
	lines = append(lines, m.help.View(m.keys))
	lines = append(lines, m.logs...)

	return strings.Join(lines, "\n")
}
