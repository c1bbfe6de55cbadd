package genetui

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MacroPower/genebar/pkg/log"
)

// logBufferSize is the number of log records queued for the program before
// new records are dropped.
const logBufferSize = 64

// App runs a [Model] as a full-screen program. Log records written while
// the program runs are shown in a pane below the help footer instead of
// corrupting the screen.
type App struct {
	model *Model
	p     *tea.Program
	in    io.Reader
	out   io.Writer
	logs  chan teaMsgWriteLog
}

// NewApp creates an [App] for m and routes the default logger through it.
func NewApp(in io.Reader, out io.Writer, logLevel string, m *Model) (*App, error) {
	a := &App{
		model: m,
		in:    in,
		out:   out,
		logs:  make(chan teaMsgWriteLog, logBufferSize),
	}

	handler, err := log.CreateHandler(a, logLevel, log.FormatText)
	if err != nil {
		return nil, fmt.Errorf("failed to create log handler: %w", err)
	}

	slog.SetDefault(slog.New(handler))

	return a, nil
}

// Write queues a log record for the program. It never blocks: records are
// logged from inside Update, on the goroutine that would have to receive
// them, so a full queue drops the record.
func (a *App) Write(p []byte) (int, error) {
	select {
	case a.logs <- teaMsgWriteLog(string(p)):
	default:
	}

	return len(p), nil
}

// forwardLogs sends queued log records to the program until done is closed.
func (a *App) forwardLogs(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case msg := <-a.logs:
			a.p.Send(msg)
		}
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.p = tea.NewProgram(a.model,
		tea.WithContext(ctx),
		tea.WithInput(a.in),
		tea.WithOutput(a.out),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	done := make(chan struct{})
	defer close(done)

	go a.forwardLogs(done)

	if _, err := a.p.Run(); err != nil {
		return fmt.Errorf("failed to launch tui: %w", err)
	}

	return nil
}
