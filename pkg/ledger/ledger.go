package ledger

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is a named, positive quantity.
type Entry struct {
	Name  string
	Value decimal.Decimal
}

func (e Entry) String() string {
	return fmt.Sprintf("%s=%s", e.Name, e.Value)
}

// Key returns the case-insensitive identity of the entry.
func (e Entry) Key() string {
	return Key(e.Name)
}

// Key folds name into the form used for identity comparisons. The name is
// upper-cased first, so a typed name and the [DisplayName] it is stored
// under always share a key.
func Key(name string) string {
	return cases.Fold().String(DisplayName(name))
}

// DisplayName returns the form a new entry is stored under.
func DisplayName(name string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(name))
}

// Ledger is an ordered collection of [Entry] values with unique
// case-insensitive names. It is not safe for concurrent use; it is owned by
// the event loop that mutates it.
type Ledger struct {
	entries []Entry
}

// New creates a [Ledger] seeded with entries. Seed entries go through
// [Ledger.Add], so duplicate names merge and invalid rows are skipped.
func New(entries ...Entry) *Ledger {
	l := &Ledger{}
	l.Seed(entries...)

	return l
}

// Seed adds entries as if each were submitted through [Ledger.Add].
func (l *Ledger) Seed(entries ...Entry) {
	for _, e := range entries {
		err := l.Add(Pending{Name: e.Name, Amount: SomeAmount(e.Value)})
		if err != nil {
			slog.Debug("skipping seed entry", "entry", e.String(), "err", err)
		}
	}
}

// Add merges p into the ledger. An existing entry with the same
// case-insensitive name grows by the amount; otherwise a new entry is
// appended under the upper-cased name.
func (l *Ledger) Add(p Pending) error {
	if !p.Valid() {
		return ErrInvalidInput
	}

	amount, _ := p.Amount.Get()

	if i := l.index(p.Name); i >= 0 {
		l.entries[i].Value = l.entries[i].Value.Add(amount)
		slog.Debug("increased entry", "name", l.entries[i].Name, "value", l.entries[i].Value.String())

		return nil
	}

	e := Entry{Name: DisplayName(p.Name), Value: amount}
	l.entries = append(l.entries, e)
	slog.Debug("added entry", "name", e.Name, "value", e.Value.String())

	return nil
}

// Remove subtracts p's amount from the matching entry, deleting the entry
// when its value reaches zero or below. It returns a [*NotFoundError] if no
// entry matches.
func (l *Ledger) Remove(p Pending) error {
	if !p.Valid() {
		return ErrInvalidInput
	}

	i := l.index(p.Name)
	if i < 0 {
		return &NotFoundError{Name: p.Name}
	}

	amount, _ := p.Amount.Get()
	remaining := l.entries[i].Value.Sub(amount)

	if !remaining.IsPositive() {
		slog.Debug("deleted entry", "name", l.entries[i].Name)
		l.entries = slices.Delete(l.entries, i, i+1)

		return nil
	}

	l.entries[i].Value = remaining
	slog.Debug("decreased entry", "name", l.entries[i].Name, "value", remaining.String())

	return nil
}

// Lookup finds an entry by case-insensitive name.
func (l *Ledger) Lookup(name string) (Entry, bool) {
	i := l.index(name)
	if i < 0 {
		return Entry{}, false
	}

	return l.entries[i], true
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Snapshot returns a copy of the entries in ledger order.
func (l *Ledger) Snapshot() []Entry {
	return slices.Clone(l.entries)
}

func (l *Ledger) index(name string) int {
	key := Key(name)

	return slices.IndexFunc(l.entries, func(e Entry) bool {
		return e.Key() == key
	})
}
