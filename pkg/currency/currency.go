// Package currency describes currencies for monetary values: the
// capability every currency type exposes, refinements for ISO, custom and
// crypto currencies, the resolver deriving metadata from platform locale
// data, and the shared per-type instances behind the predefined
// currencies.
package currency

import (
	"fmt"

	"github.com/amirasaad/moneykit/pkg/format"
	"github.com/amirasaad/moneykit/pkg/locale"
	"github.com/amirasaad/moneykit/pkg/rounding"
)

// Currency is the capability every currency type exposes: an alphabetic
// code, the number of fraction digits amounts carry, and a display symbol
// ("" when the currency has none).
type Currency interface {
	Code() string
	Scale() int
	Symbol() string
}

// Optional refinements a concrete type may provide to replace the default
// behaviors below.
type (
	styleOverride    interface{ DefaultStyle() format.Style }
	behaviorOverride interface{ Behaviors() rounding.Policy }
)

// DefaultStyle reports the formatting style used for c when the caller
// does not choose one: the symbol-led currency style, unless the type
// overrides it.
func DefaultStyle(c Currency) format.Style {
	if o, ok := c.(styleOverride); ok {
		return o.DefaultStyle()
	}
	return format.StyleCurrency
}

// Behaviors reports the rounding policy governing arithmetic over amounts
// of c: banker's rounding at the currency's scale with every trap enabled,
// unless the type overrides it.
func Behaviors(c Currency) rounding.Policy {
	if o, ok := c.(behaviorOverride); ok {
		return o.Behaviors()
	}
	return rounding.ForScale(c.Scale())
}

// Format builds a formatting function for amounts of c in the given style
// under the given locale.
func Format(c Currency, style format.Style, loc locale.Locale) (format.Func, error) {
	return format.New(c.Code(), c.Scale(), c.Symbol(), style, loc)
}

// FormatID is Format for a locale identifier string. The identifier is
// canonicalized and honored for every currency kind; use FormatSystem when
// the device locale should govern display instead.
func FormatID(c Currency, style format.Style, id string) (format.Func, error) {
	loc, err := locale.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("currency %s: %w", c.Code(), err)
	}
	return Format(c, style, loc)
}

// FormatSystem is Format under the device's current locale: only c's code
// is pinned, every other display convention follows the device.
func FormatSystem(c Currency, style format.Style) (format.Func, error) {
	return Format(c, style, locale.System())
}
