package format

import (
	"fmt"
	"strings"
)

// Style selects how a formatted amount is composed.
type Style uint8

const (
	// StyleCurrency renders the localized number behind the currency
	// symbol. This is the default style.
	StyleCurrency Style = iota
	// StyleDecimal renders the bare localized number.
	StyleDecimal
	// StyleCurrencyISO renders the number behind the alphabetic code.
	StyleCurrencyISO
	// StyleCurrencyNarrow prefers the narrowest symbol variant.
	StyleCurrencyNarrow
	// StyleCurrencyCash rounds to the currency's cash denomination first.
	StyleCurrencyCash
)

func (s Style) String() string {
	switch s {
	case StyleCurrency:
		return "currency"
	case StyleDecimal:
		return "decimal"
	case StyleCurrencyISO:
		return "iso"
	case StyleCurrencyNarrow:
		return "narrow"
	case StyleCurrencyCash:
		return "cash"
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// ParseStyle resolves the style names used in configuration and on the
// command line. The empty string means the default style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "currency":
		return StyleCurrency, nil
	case "decimal":
		return StyleDecimal, nil
	case "iso":
		return StyleCurrencyISO, nil
	case "narrow":
		return StyleCurrencyNarrow, nil
	case "cash":
		return StyleCurrencyCash, nil
	}
	return 0, fmt.Errorf("format: unknown style %q", name)
}
