// Package rounding fixes the decimal rounding contract for monetary
// amounts: which mode applies, at how many fraction digits, and which
// arithmetic conditions must abort an operation instead of degrading it
// silently.
package rounding

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Conditions a Policy can trap. An engine computing under a Policy returns
// the matching sentinel instead of a result when the trap is enabled.
var (
	ErrInexact        = errors.New("rounding: inexact result")
	ErrOverflow       = errors.New("rounding: overflow")
	ErrUnderflow      = errors.New("rounding: underflow")
	ErrDivisionByZero = errors.New("rounding: division by zero")
)

// Mode selects how a digit past the last kept place is resolved.
type Mode uint8

const (
	// HalfEven rounds to the nearest kept value, ties to the even digit.
	HalfEven Mode = iota
	// HalfUp rounds to the nearest kept value, ties away from zero.
	HalfUp
	// Down truncates toward zero.
	Down
	// Up rounds away from zero.
	Up
)

func (m Mode) String() string {
	switch m {
	case HalfEven:
		return "half-even"
	case HalfUp:
		return "half-up"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Policy is the rounding contract for one currency: results are rounded
// with Mode at Scale fraction digits, and any trapped condition aborts the
// operation instead of producing a value.
type Policy struct {
	Mode  Mode
	Scale int

	TrapInexact        bool
	TrapOverflow       bool
	TrapUnderflow      bool
	TrapDivisionByZero bool
}

// ForScale returns the policy monetary arithmetic uses for a currency
// carrying the given number of fraction digits: banker's rounding at that
// scale with every trap enabled.
func ForScale(scale int) Policy {
	return Policy{
		Mode:               HalfEven,
		Scale:              scale,
		TrapInexact:        true,
		TrapOverflow:       true,
		TrapUnderflow:      true,
		TrapDivisionByZero: true,
	}
}

// Round applies the policy to d. When TrapInexact is set and rounding
// would lose a digit, Round reports ErrInexact and no result.
func (p Policy) Round(d decimal.Decimal) (decimal.Decimal, error) {
	var r decimal.Decimal
	switch p.Mode {
	case HalfUp:
		r = d.Round(int32(p.Scale))
	case Down:
		r = d.RoundDown(int32(p.Scale))
	case Up:
		r = d.RoundUp(int32(p.Scale))
	default:
		r = d.RoundBank(int32(p.Scale))
	}
	if p.TrapInexact && !r.Equal(d) {
		return decimal.Decimal{}, ErrInexact
	}
	return r, nil
}
