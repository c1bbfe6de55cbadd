package genetui_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MacroPower/genebar/pkg/genetui"
	"github.com/MacroPower/genebar/pkg/ledger"
	"github.com/MacroPower/genebar/pkg/notice"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func seeded() *ledger.Ledger {
	return ledger.New(
		ledger.Entry{Name: "GENE1", Value: decimal.NewFromInt(10)},
		ledger.Entry{Name: "GENE2", Value: decimal.NewFromInt(20)},
	)
}

func finalModel(t *testing.T, tm *teatest.TestModel) *genetui.Model {
	t.Helper()

	require.NoError(t, tm.Quit())

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second))
	m, ok := fm.(*genetui.Model)
	require.True(t, ok)

	return m
}

func TestModel_AddMergesAndRenders(t *testing.T) {
	t.Parallel()

	m := genetui.NewModel(seeded())
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("GENE2"))
		},
	)

	tm.Type("gene3")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("30")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("GENE3"))
		},
	)

	tm.Type("gene1")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("5")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	got := finalModel(t, tm)

	e, ok := got.Ledger().Lookup("GENE1")
	require.True(t, ok)
	assert.Equal(t, "15", e.Value.String())
	assert.Equal(t, 3, got.Ledger().Len())
}

func TestModel_RemoveMissingShowsNotice(t *testing.T) {
	t.Parallel()

	m := genetui.NewModel(seeded())
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	tm.Type("y")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("1")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlR})

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte(`Gene "y" does not exist.`))
		},
	)

	got := finalModel(t, tm)
	assert.Equal(t, notice.StateVisible, got.Notice().State())
	assert.Equal(t, 2, got.Ledger().Len())
}

func TestModel_RemoveDepletesEntry(t *testing.T) {
	t.Parallel()

	m := genetui.NewModel(seeded())
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	tm.Type("Gene2")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("20")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlR})

	got := finalModel(t, tm)
	_, ok := got.Ledger().Lookup("GENE2")
	assert.False(t, ok)
	assert.Equal(t, 1, got.Ledger().Len())
}

func TestModel_InvalidInputIgnored(t *testing.T) {
	t.Parallel()

	m := genetui.NewModel(seeded())
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	tm.Type("gene9")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("-4")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	got := finalModel(t, tm)
	assert.Equal(t, 2, got.Ledger().Len())
	assert.Equal(t, notice.StateHidden, got.Notice().State())
}

func TestModel_NoticeExpires(t *testing.T) {
	t.Parallel()

	n := notice.New(notice.WithTimeout(50 * time.Millisecond))
	m := genetui.NewModel(seeded(), genetui.WithNotice(n))
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	tm.Type("missing")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("1")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlR})

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("does not exist"))
		},
	)

	time.Sleep(200 * time.Millisecond)

	got := finalModel(t, tm)
	assert.Equal(t, notice.StateHidden, got.Notice().State())
}

func TestModel_ClickOutsideDismissesNotice(t *testing.T) {
	t.Parallel()

	n := notice.New(notice.WithFadeDelay(10 * time.Millisecond))
	m := genetui.NewModel(seeded(), genetui.WithNotice(n))
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	tm.Type("missing")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("1")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlR})

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("does not exist"))
		},
	)

	// A click on the input fields does not dismiss.
	tm.Send(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	// A click anywhere else does.
	tm.Send(tea.MouseMsg{X: 3, Y: 30, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	time.Sleep(200 * time.Millisecond)

	got := finalModel(t, tm)
	assert.Equal(t, notice.StateHidden, got.Notice().State())
	assert.Empty(t, got.Notice().Message())
}

func TestModel_ClickOnInputKeepsNotice(t *testing.T) {
	t.Parallel()

	m := genetui.NewModel(seeded())
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	tm.Type("missing")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("1")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlR})

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("does not exist"))
		},
	)

	tm.Send(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	got := finalModel(t, tm)
	assert.Equal(t, notice.StateVisible, got.Notice().State())
}

func TestModel_HoverShowsTooltip(t *testing.T) {
	t.Parallel()

	l := ledger.New(ledger.Entry{Name: "APOLIPOPROTEIN", Value: decimal.NewFromInt(3)})
	m := genetui.NewModel(l)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("APOLIP..."))
		},
	)

	tm.Send(tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionMotion})

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("APOLIPOPROTEIN"))
		},
	)

	require.NoError(t, tm.Quit())
}

func TestModel_AnimationSettles(t *testing.T) {
	t.Parallel()

	m := genetui.NewModel(seeded())
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	time.Sleep(800 * time.Millisecond)

	got := finalModel(t, tm)
	assert.False(t, got.Chart().Animating())
}

func TestModel_LogsShownBelowHelp(t *testing.T) {
	t.Parallel()

	m := genetui.NewModel(seeded())
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	tm.Send(genetui.TeaMsgWriteLog("first record\n"))
	tm.Send(genetui.TeaMsgWriteLog("second record\n"))

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("second record"))
		},
	)

	view := finalModel(t, tm).View()

	help := strings.Index(view, "quit")
	first := strings.Index(view, "first record")
	second := strings.Index(view, "second record")

	require.NotEqual(t, -1, help)
	require.NotEqual(t, -1, first)
	assert.Greater(t, first, help)
	assert.Greater(t, second, first)
}
