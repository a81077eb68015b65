package currency

import "github.com/amirasaad/moneykit/pkg/locale"

// Local is the currency of the device's current locale. Its shared
// instance is resolved once from the system locale and frozen for the
// process lifetime; locale changes after that are not observed.
type Local struct{}

// SharedInstance returns the device currency's resolved instance.
func (Local) SharedInstance() *Instance {
	return sharedFor[Local](func() (Metadata, error) {
		return ResolveLocale(locale.System())
	})
}

func (c Local) Code() string   { return c.SharedInstance().Code() }
func (c Local) Scale() int     { return c.SharedInstance().Scale() }
func (c Local) Symbol() string { return c.SharedInstance().Symbol() }
