package ledger

import (
	"errors"
	"fmt"
	"log/slog"
)

// Op is a form action.
type Op int

const (
	OpAdd Op = iota
	OpRemove
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	}

	return fmt.Sprintf("Op(%d)", int(o))
}

// Outcome tells the caller what a submitted form changed.
type Outcome struct {
	// Err is the error returned by the ledger, if any.
	Err error
	// Notice is a message to show the user. Empty when there is nothing to
	// show.
	Notice string
	// Changed is true when the ledger was mutated and must be re-rendered.
	Changed bool
	// ClearNotice is true when any visible notice should be cleared.
	ClearNotice bool
}

// Form pairs a [Ledger] with the [Pending] input being edited.
type Form struct {
	ledger  *Ledger
	pending Pending
}

// NewForm creates a [Form] that mutates l.
func NewForm(l *Ledger) *Form {
	return &Form{ledger: l}
}

// Ledger returns the ledger the form mutates.
func (f *Form) Ledger() *Ledger {
	return f.ledger
}

// Pending returns the current input.
func (f *Form) Pending() Pending {
	return f.pending
}

// SetName replaces the pending name.
func (f *Form) SetName(name string) {
	f.pending.Name = name
}

// SetAmount replaces the pending amount.
func (f *Form) SetAmount(a Amount) {
	f.pending.Amount = a
}

// Submit applies op with the pending input and resets the input, whether
// or not the operation was accepted. Invalid input is dropped without a
// notice.
func (f *Form) Submit(op Op) Outcome {
	p := f.pending
	f.pending = Pending{}

	var err error

	switch op {
	case OpAdd:
		err = f.ledger.Add(p)
	case OpRemove:
		err = f.ledger.Remove(p)
	default:
		err = fmt.Errorf("%w: unknown op %s", ErrInvalidInput, op)
	}

	if errors.Is(err, ErrInvalidInput) {
		slog.Debug("dropped invalid input", "op", op.String(), "name", p.Name, "amount", p.Amount.String())

		return Outcome{Err: err}
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		slog.Debug("entry not found", "op", op.String(), "name", nf.Name)

		return Outcome{Err: err, Notice: nf.Error()}
	}

	return Outcome{
		Changed:     true,
		ClearNotice: op == OpRemove,
	}
}
