package currency

// ISOCurrency is the refinement for currencies listed in the ISO 4217
// registry: every value of a conforming type shares one instance, resolved
// from platform locale data on first access and frozen afterwards.
type ISOCurrency interface {
	Currency
	SharedInstance() *Instance
}

// isoInstance caches the shared instance for T, resolving its metadata
// from the alphabetic code.
func isoInstance[T Currency](code string) *Instance {
	return sharedFor[T](func() (Metadata, error) { return ResolveCode(code) })
}

// USD is the United States dollar.
type USD struct{}

// SharedInstance returns the one resolved instance behind every USD value.
func (USD) SharedInstance() *Instance { return isoInstance[USD]("USD") }

func (c USD) Code() string   { return c.SharedInstance().Code() }
func (c USD) Scale() int     { return c.SharedInstance().Scale() }
func (c USD) Symbol() string { return c.SharedInstance().Symbol() }

// EUR is the euro.
type EUR struct{}

func (EUR) SharedInstance() *Instance { return isoInstance[EUR]("EUR") }

func (c EUR) Code() string   { return c.SharedInstance().Code() }
func (c EUR) Scale() int     { return c.SharedInstance().Scale() }
func (c EUR) Symbol() string { return c.SharedInstance().Symbol() }

// GBP is the pound sterling.
type GBP struct{}

func (GBP) SharedInstance() *Instance { return isoInstance[GBP]("GBP") }

func (c GBP) Code() string   { return c.SharedInstance().Code() }
func (c GBP) Scale() int     { return c.SharedInstance().Scale() }
func (c GBP) Symbol() string { return c.SharedInstance().Symbol() }

// JPY is the Japanese yen. Amounts carry no fraction digits.
type JPY struct{}

func (JPY) SharedInstance() *Instance { return isoInstance[JPY]("JPY") }

func (c JPY) Code() string   { return c.SharedInstance().Code() }
func (c JPY) Scale() int     { return c.SharedInstance().Scale() }
func (c JPY) Symbol() string { return c.SharedInstance().Symbol() }
