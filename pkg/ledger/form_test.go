package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/genebar/pkg/ledger"
)

func TestForm_AddResetsPending(t *testing.T) {
	t.Parallel()

	f := ledger.NewForm(ledger.New())
	f.SetName("gene1")
	f.SetAmount(ledger.ParseAmount("10"))

	out := f.Submit(ledger.OpAdd)
	require.NoError(t, out.Err)
	assert.True(t, out.Changed)
	assert.False(t, out.ClearNotice)
	assert.True(t, f.Pending().IsZero())
	requireValue(t, f.Ledger(), "GENE1", 10)
}

func TestForm_InvalidInputIsSilent(t *testing.T) {
	t.Parallel()

	f := ledger.NewForm(ledger.New())
	f.SetName("gene1")

	out := f.Submit(ledger.OpAdd)
	require.ErrorIs(t, out.Err, ledger.ErrInvalidInput)
	assert.False(t, out.Changed)
	assert.Empty(t, out.Notice)
	assert.True(t, f.Pending().IsZero())
	assert.Equal(t, 0, f.Ledger().Len())
}

func TestForm_RemoveMissingProducesNotice(t *testing.T) {
	t.Parallel()

	l := ledger.New(ledger.Entry{Name: "X", Value: decimal.NewFromInt(5)})
	f := ledger.NewForm(l)
	f.SetName("Y")
	f.SetAmount(ledger.ParseAmount("1"))

	out := f.Submit(ledger.OpRemove)
	require.ErrorIs(t, out.Err, ledger.ErrEntryNotFound)
	assert.False(t, out.Changed)
	assert.False(t, out.ClearNotice)
	assert.Equal(t, `Gene "Y" does not exist.`, out.Notice)
	assert.True(t, f.Pending().IsZero())
	requireValue(t, l, "X", 5)
}

func TestForm_RemoveClearsNotice(t *testing.T) {
	t.Parallel()

	l := ledger.New(ledger.Entry{Name: "X", Value: decimal.NewFromInt(5)})
	f := ledger.NewForm(l)
	f.SetName("x")
	f.SetAmount(ledger.ParseAmount("5"))

	out := f.Submit(ledger.OpRemove)
	require.NoError(t, out.Err)
	assert.True(t, out.Changed)
	assert.True(t, out.ClearNotice)
	assert.Equal(t, 0, l.Len())
}
