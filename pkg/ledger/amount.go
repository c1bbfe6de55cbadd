package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is an optional quantity. The zero value is absent.
type Amount struct {
	value   decimal.Decimal
	present bool
}

// SomeAmount returns a present [Amount].
func SomeAmount(d decimal.Decimal) Amount {
	return Amount{value: d, present: true}
}

// NoAmount returns an absent [Amount].
func NoAmount() Amount {
	return Amount{}
}

// ParseAmount parses user text. Empty or unparsable text yields an absent
// [Amount]; the sign is preserved, so callers still need [Amount.Positive].
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoAmount()
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return NoAmount()
	}

	return SomeAmount(d)
}

// Get returns the amount and whether it is present.
func (a Amount) Get() (decimal.Decimal, bool) {
	return a.value, a.present
}

// Present reports whether a value was supplied.
func (a Amount) Present() bool {
	return a.present
}

// Positive reports whether the amount is present and greater than zero.
func (a Amount) Positive() bool {
	return a.present && a.value.IsPositive()
}

func (a Amount) String() string {
	if !a.present {
		return ""
	}

	return a.value.String()
}

// Pending is the transient form state for a single add or remove.
type Pending struct {
	Name   string
	Amount Amount
}

// Valid reports whether p names an entry and carries a positive amount.
func (p Pending) Valid() bool {
	return strings.TrimSpace(p.Name) != "" && p.Amount.Positive()
}

// IsZero reports whether p is the empty form state.
func (p Pending) IsZero() bool {
	return p.Name == "" && !p.Amount.Present()
}
