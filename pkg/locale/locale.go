// Package locale wraps the platform locale service used for monetary
// display: identifier canonicalization, currency pinning, symbol and
// fraction-digit lookup, and detection of the device locale.
//
// Canonical identifiers are BCP 47 tags; a currency override travels in
// the Unicode cu extension ("en-US-u-cu-jpy"). POSIX identifiers
// ("en_US.UTF-8") and ICU keyword identifiers ("fr_FR@currency=EUR") are
// accepted on input and normalized.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Und is the undetermined locale, the neutral base for synthesized
// identifiers.
var Und Locale

// Locale is an immutable, canonicalized locale value.
type Locale struct {
	tag language.Tag
}

// Parse resolves a locale identifier to a Locale. Keywords other than
// currency are dropped during canonicalization.
func Parse(id string) (Locale, error) {
	base, code, err := normalize(id)
	if err != nil {
		return Locale{}, err
	}
	tag, err := language.Parse(base)
	if err != nil {
		return Locale{}, fmt.Errorf("locale: parsing %q: %w", id, err)
	}
	loc := Locale{tag: tag}
	if code != "" {
		if loc, err = loc.WithCurrency(code); err != nil {
			return Locale{}, fmt.Errorf("locale: parsing %q: %w", id, err)
		}
	}
	return loc, nil
}

// MustParse is Parse for identifiers known at compile time.
func MustParse(id string) Locale {
	loc, err := Parse(id)
	if err != nil {
		panic(err)
	}
	return loc
}

// Canonicalize returns the canonical form of a locale identifier, with any
// currency keyword carried as the cu extension.
func Canonicalize(id string) (string, error) {
	loc, err := Parse(id)
	if err != nil {
		return "", err
	}
	return loc.String(), nil
}

// normalize rewrites POSIX and ICU spellings into BCP 47: the codeset
// suffix is dropped, underscores become hyphens, and a currency keyword is
// split off for pinning.
func normalize(id string) (base, code string, err error) {
	s := strings.TrimSpace(id)
	if s == "" {
		return "", "", errors.New("locale: empty identifier")
	}
	if at := strings.IndexByte(s, '@'); at >= 0 {
		for _, kv := range strings.Split(s[at+1:], ";") {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				continue
			}
			if strings.EqualFold(strings.TrimSpace(k), "currency") {
				code = strings.TrimSpace(v)
			}
		}
		s = s[:at]
	}
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" {
		s = "und"
	}
	return s, code, nil
}

// String returns the canonical identifier.
func (l Locale) String() string {
	return l.tag.String()
}

// Tag exposes the underlying language tag for rendering collaborators.
func (l Locale) Tag() language.Tag {
	return l.tag
}

// WithCurrency returns a copy of l with code pinned as its currency
// override, so symbol and display choices follow the code rather than the
// locale's native currency.
func (l Locale) WithCurrency(code string) (Locale, error) {
	tag, err := l.tag.SetTypeForKey("cu", strings.ToLower(code))
	if err != nil {
		return Locale{}, fmt.Errorf("locale: pinning currency %q: %w", code, err)
	}
	return Locale{tag: tag}, nil
}

// CurrencyCode reports the currency governing l: the pinned override when
// present, otherwise the currency of l's country. ok is false when neither
// yields one.
func (l Locale) CurrencyCode() (code string, ok bool) {
	if v := l.tag.TypeForKey("cu"); v != "" {
		return strings.ToUpper(v), true
	}
	reg, conf := l.tag.Region()
	if conf < language.High || !reg.IsCountry() {
		return "", false
	}
	unit, ok := currency.FromRegion(reg)
	if !ok {
		return "", false
	}
	return unit.String(), true
}

// CurrencySymbol reports the symbol l uses for the given code, "" when the
// locale offers nothing beyond the alphabetic code itself. Codes absent
// from platform data are an error.
func (l Locale) CurrencySymbol(code string) (string, error) {
	return l.symbol(code, currency.Symbol)
}

// NarrowSymbol is CurrencySymbol for the narrowest symbol variant ("$"
// where the standard form is "US$").
func (l Locale) NarrowSymbol(code string) (string, error) {
	return l.symbol(code, currency.NarrowSymbol)
}

func (l Locale) symbol(code string, form currency.Formatter) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("locale: no currency data for %q: %w", code, err)
	}
	sym := message.NewPrinter(l.tag).Sprint(form(unit))
	if sym == unit.String() {
		// The lookup fell through to the code: no distinct symbol here.
		return "", nil
	}
	return sym, nil
}

// InferScale reports the number of fraction digits the platform prescribes
// for amounts in the given currency (JPY 0, USD 2, BHD 3).
func InferScale(code string) (int, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 0, fmt.Errorf("locale: no currency data for %q: %w", code, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale, nil
}

// CashRounding reports the fraction digits and rounding increment used for
// cash amounts in the given currency (CHF: 2 digits, steps of 5).
func CashRounding(code string) (scale, increment int, err error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 0, 0, fmt.Errorf("locale: no currency data for %q: %w", code, err)
	}
	scale, increment = currency.Cash.Rounding(unit)
	return scale, increment, nil
}
