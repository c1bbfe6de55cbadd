package genetui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tooltipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true)
	logStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// frameInterval is the delay between animation frames.
const frameInterval = time.Second / 60

// maxLogLines is the number of log lines kept below the help footer.
const maxLogLines = 3

type (
	// Sent to write a log message.
	teaMsgWriteLog string

	// Sent on every animation frame.
	frameMsg time.Time
)

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func formatLog(msg teaMsgWriteLog, width int) string {
	logMsg := strings.Trim(string(msg), "\r\n")

	return logStyle.MaxWidth(max(0, width)).Render(logMsg)
}

type keyMap struct {
	Add    key.Binding
	Remove key.Binding
	Next   key.Binding
	Prev   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		Remove: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "remove"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Next, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Add, k.Remove}, {k.Next, k.Prev, k.Quit}}
}
