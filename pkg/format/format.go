// Package format builds locale-correct monetary formatting functions.
//
// A function produced here is pure: the currency code, scale, symbol,
// style and locale are captured at construction and never change, and no
// formatter state is shared between calls, so one function may be invoked
// from any number of goroutines.
package format

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/amirasaad/moneykit/pkg/locale"
)

// Func renders one monetary amount.
type Func func(amount decimal.Decimal) string

// New builds the formatting function for one currency under one locale.
//
// The code is pinned onto loc so display conventions follow the code
// rather than the locale's native currency. A non-empty symbol wins;
// otherwise the pinned locale's own symbol for the code is used, falling
// back to the code itself when the platform knows nothing about it.
// Amounts are rounded half-to-even at scale before rendering; the cash
// style rounds to the currency's cash denomination instead.
//
// Rendering panics on amounts whose rounded value cannot be represented
// exactly anymore (beyond roughly fifteen significant digits): fabricating
// approximate output would corrupt monetary data downstream.
func New(code string, scale int, symbol string, style Style, loc locale.Locale) (Func, error) {
	if code == "" {
		return nil, fmt.Errorf("format: empty currency code")
	}
	if scale < 0 {
		return nil, fmt.Errorf("format: negative scale %d for %s", scale, code)
	}
	pinned, err := loc.WithCurrency(code)
	if err != nil {
		return nil, fmt.Errorf("format: %s under %s: %w", code, loc, err)
	}

	displayScale, increment := scale, 0
	if style == StyleCurrencyCash {
		// Custom codes carry no cash data; they keep standard rounding.
		if cs, inc, err := locale.CashRounding(code); err == nil {
			displayScale, increment = cs, inc
		}
	}

	var symbolText string
	switch style {
	case StyleDecimal, StyleCurrencyISO:
		// No symbol in these compositions.
	default:
		symbolText = symbol
		if symbolText == "" {
			symbolText = lookupSymbol(pinned, code, style)
		}
	}

	tag := pinned.Tag()
	return func(amount decimal.Decimal) string {
		rounded := roundDisplay(amount, displayScale, increment)
		num := render(tag, rounded, displayScale)
		switch style {
		case StyleDecimal:
			return num
		case StyleCurrencyISO:
			return code + " " + num
		default:
			return symbolText + " " + num
		}
	}, nil
}

// lookupSymbol reads the display symbol from platform data, preferring the
// narrow variant for the narrow style. When the platform has no symbol to
// offer, the alphabetic code stands in, matching the platform's own
// fallback chain.
func lookupSymbol(pinned locale.Locale, code string, style Style) string {
	var (
		sym string
		err error
	)
	if style == StyleCurrencyNarrow {
		sym, err = pinned.NarrowSymbol(code)
	} else {
		sym, err = pinned.CurrencySymbol(code)
	}
	if err != nil || sym == "" {
		return code
	}
	return sym
}

// roundDisplay rounds half-to-even at scale; a cash increment above one
// minor unit rounds to that step instead (CHF cash: steps of 0.05).
func roundDisplay(d decimal.Decimal, scale, increment int) decimal.Decimal {
	if increment > 1 {
		step := decimal.New(int64(increment), -int32(scale))
		return d.Div(step).RoundBank(0).Mul(step)
	}
	return d.RoundBank(int32(scale))
}

// render produces the localized digits. The printer is constructed fresh
// on every call; nothing stateful survives between invocations.
func render(tag language.Tag, d decimal.Decimal, scale int) string {
	f, _ := d.Float64()
	if !decimal.NewFromFloat(f).Equal(d) {
		panic(fmt.Sprintf("format: amount %s is beyond exact rendering", d))
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(f, number.Scale(scale)))
}
