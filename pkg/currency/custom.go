package currency

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Custom marks currencies defined by the application rather than resolved
// from the ISO registry.
type Custom interface {
	Currency
	CustomCurrency()
}

// Crypto marks cryptocurrency definitions. The marker is nominal: call
// sites constrained to Crypto do not accept other custom currencies.
type Crypto interface {
	Custom
	CryptoCurrency()
}

// definition carries the validated fields of a currency definition. The
// code's format is deliberately unconstrained; only presence and a
// non-negative scale are enforced.
type definition struct {
	Code  string `validate:"required"`
	Scale int    `validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type customCurrency struct {
	Metadata
}

func (customCurrency) CustomCurrency() {}

type cryptoCurrency struct {
	customCurrency
}

func (cryptoCurrency) CryptoCurrency() {}

// Define builds a custom currency from explicit metadata, stored verbatim.
// An empty symbol is a currency without one.
func Define(code string, scale int, symbol string) (Custom, error) {
	if err := validate.Struct(definition{Code: code, Scale: scale}); err != nil {
		return nil, fmt.Errorf("currency: defining %q: %w", code, err)
	}
	return customCurrency{Metadata: NewMetadata(code, scale, symbol)}, nil
}

// MustDefine is Define for definitions known at compile time.
func MustDefine(code string, scale int, symbol string) Custom {
	c, err := Define(code, scale, symbol)
	if err != nil {
		panic(err)
	}
	return c
}

// DefineCrypto builds a cryptocurrency definition.
func DefineCrypto(code string, scale int, symbol string) (Crypto, error) {
	c, err := Define(code, scale, symbol)
	if err != nil {
		return nil, err
	}
	return cryptoCurrency{customCurrency: c.(customCurrency)}, nil
}

// MustDefineCrypto is DefineCrypto for definitions known at compile time.
func MustDefineCrypto(code string, scale int, symbol string) Crypto {
	c, err := DefineCrypto(code, scale, symbol)
	if err != nil {
		panic(err)
	}
	return c
}

// Bitcoin carries eight fraction digits, one satoshi.
var Bitcoin = MustDefineCrypto("BTC", 8, "₿")
