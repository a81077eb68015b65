package currency

import (
	"fmt"

	"github.com/amirasaad/moneykit/pkg/locale"
)

// Metadata is the resolved description of one currency: an immutable
// (code, scale, symbol) triple. Values are built by NewMetadata,
// ResolveCode or ResolveLocale and never change afterwards.
type Metadata struct {
	code   string
	scale  int
	symbol string
}

// NewMetadata builds metadata from explicit values, stored verbatim: no
// inference, no validation.
func NewMetadata(code string, scale int, symbol string) Metadata {
	return Metadata{code: code, scale: scale, symbol: symbol}
}

// Code reports the alphabetic currency code.
func (m Metadata) Code() string { return m.code }

// Scale reports the number of fraction digits amounts carry.
func (m Metadata) Scale() int { return m.scale }

// Symbol reports the display symbol, "" when the currency has none.
func (m Metadata) Symbol() string { return m.symbol }

// ResolveCode derives metadata for an alphabetic code from platform locale
// data. A locale carrying only the currency override is synthesized; the
// symbol comes from that locale's lookup ("" when it offers nothing beyond
// the code) and the scale from the platform's fraction-digit data. A code
// the platform knows nothing about is a configuration error.
func ResolveCode(code string) (Metadata, error) {
	loc, err := locale.Und.WithCurrency(code)
	if err != nil {
		return Metadata{}, fmt.Errorf("currency: resolving %q: %w", code, err)
	}
	return resolve(code, loc)
}

// ResolveLocale derives metadata from a resolved locale: the code from the
// locale's own currency (the pinned override first, the country's currency
// second; a locale carrying neither is a configuration error), symbol and
// scale as in ResolveCode.
func ResolveLocale(loc locale.Locale) (Metadata, error) {
	code, ok := loc.CurrencyCode()
	if !ok {
		return Metadata{}, fmt.Errorf("currency: locale %s carries no currency", loc)
	}
	return resolve(code, loc)
}

func resolve(code string, loc locale.Locale) (Metadata, error) {
	symbol, err := loc.CurrencySymbol(code)
	if err != nil {
		return Metadata{}, fmt.Errorf("currency: resolving %q: %w", code, err)
	}
	scale, err := locale.InferScale(code)
	if err != nil {
		return Metadata{}, fmt.Errorf("currency: resolving %q: %w", code, err)
	}
	return Metadata{code: code, scale: scale, symbol: symbol}, nil
}
