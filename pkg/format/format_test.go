package format_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/moneykit/pkg/format"
	"github.com/amirasaad/moneykit/pkg/locale"
)

func mustFunc(t *testing.T, code string, scale int, symbol string, style format.Style, id string) format.Func {
	t.Helper()
	f, err := format.New(code, scale, symbol, style, locale.MustParse(id))
	require.NoError(t, err, "failed to build formatting func for test")
	return f
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err, "failed to parse decimal for test")
	return d
}

func TestNew_Styles(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		code   string
		scale  int
		symbol string
		style  format.Style
		id     string
		amount string
		want   string
	}{
		{"currency en-US", "USD", 2, "", format.StyleCurrency, "en-US", "1234.5", "$ 1,234.50"},
		{"currency zero", "USD", 2, "", format.StyleCurrency, "en-US", "0", "$ 0.00"},
		{"currency negative", "USD", 2, "", format.StyleCurrency, "en-US", "-1234.5", "$ -1,234.50"},
		{"decimal de-DE", "EUR", 2, "", format.StyleDecimal, "de-DE", "1234.5", "1.234,50"},
		{"iso code leads", "USD", 2, "", format.StyleCurrencyISO, "en-US", "1234.5", "USD 1,234.50"},
		{"narrow symbol en-GB", "USD", 2, "", format.StyleCurrencyNarrow, "en-GB", "1", "$ 1.00"},
		{"wide symbol en-GB", "USD", 2, "", format.StyleCurrency, "en-GB", "1", "US$ 1.00"},
		{"explicit symbol wins", "USD", 2, "BUCKS", format.StyleCurrency, "en-US", "1", "BUCKS 1.00"},
		{"unknown code falls back to code", "WOW", 2, "", format.StyleCurrency, "en-US", "1", "WOW 1.00"},
		{"zero scale no fraction", "JPY", 0, "", format.StyleCurrency, "en-US", "1000", "¥ 1,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := mustFunc(t, tt.code, tt.scale, tt.symbol, tt.style, tt.id)
			assert.Equal(t, tt.want, f(dec(t, tt.amount)))
		})
	}
}

func TestNew_RoundsHalfToEven(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		code   string
		scale  int
		id     string
		amount string
		want   string
	}{
		{"tie to even low", "USD", 2, "en-US", "2.345", "$ 2.34"},
		{"tie to even high", "USD", 2, "en-US", "2.355", "$ 2.36"},
		{"plain round up", "USD", 2, "en-US", "2.346", "$ 2.35"},
		{"zero scale tie to even", "JPY", 0, "en-US", "1000.5", "¥ 1,000"},
		{"zero scale tie to even odd", "JPY", 0, "en-US", "1001.5", "¥ 1,002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := mustFunc(t, tt.code, tt.scale, "", format.StyleCurrency, tt.id)
			assert.Equal(t, tt.want, f(dec(t, tt.amount)))
		})
	}
}

func TestNew_CashDenomination(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// CHF cash rounds to 0.05 steps; en-US has no symbol for it, so the
	// code stands in.
	f := mustFunc(t, "CHF", 2, "", format.StyleCurrencyCash, "en-US")
	assert.Equal("CHF 2.35", f(dec(t, "2.337")))
	assert.Equal("CHF 2.30", f(dec(t, "2.32")))
	// Ties between steps resolve to the even multiple.
	assert.Equal("CHF 2.30", f(dec(t, "2.325")))

	// Currencies without a cash denomination keep standard rounding.
	f = mustFunc(t, "USD", 2, "", format.StyleCurrencyCash, "en-US")
	assert.Equal("$ 2.34", f(dec(t, "2.345")))

	// Custom codes carry no cash data and keep the given scale.
	f = mustFunc(t, "WOW", 3, "w", format.StyleCurrencyCash, "en-US")
	assert.Equal("w 2.345", f(dec(t, "2.345")))
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	_, err := format.New("", 2, "", format.StyleCurrency, locale.MustParse("en-US"))
	assert.Error(err)

	_, err = format.New("USD", -1, "", format.StyleCurrency, locale.MustParse("en-US"))
	assert.Error(err)

	// A code the cu extension cannot carry fails at construction.
	_, err = format.New("£!", 2, "", format.StyleCurrency, locale.MustParse("en-US"))
	assert.Error(err)
}

func TestFunc_PanicsBeyondExactRendering(t *testing.T) {
	t.Parallel()

	f := mustFunc(t, "USD", 2, "", format.StyleCurrency, "en-US")
	assert.Panics(t, func() {
		f(dec(t, "12345678901234567890.12"))
	})
}

func TestFunc_Deterministic(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	f := mustFunc(t, "EUR", 2, "", format.StyleCurrency, "de-DE")
	amount := dec(t, "98765.43")
	first := f(amount)
	for range 10 {
		assert.Equal(first, f(amount))
	}
}

func TestFunc_ConcurrentUse(t *testing.T) {
	t.Parallel()

	f := mustFunc(t, "USD", 2, "", format.StyleCurrency, "en-US")

	amounts := []string{"0", "0.005", "1", "2.345", "99.99", "1234.5", "-7.125"}
	want := make([]string, len(amounts))
	for i, a := range amounts {
		want[i] = f(dec(t, a))
	}

	var wg sync.WaitGroup
	numGoroutines := 100
	got := make([][]string, numGoroutines)
	for g := range numGoroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]string, len(amounts))
			for i, a := range amounts {
				d, _ := decimal.NewFromString(a)
				out[i] = f(d)
			}
			got[g] = out
		}()
	}
	wg.Wait()

	for g := range numGoroutines {
		assert.Equal(t, want, got[g], "goroutine %d diverged from serial results", g)
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for name, want := range map[string]format.Style{
		"":         format.StyleCurrency,
		"currency": format.StyleCurrency,
		"decimal":  format.StyleDecimal,
		"iso":      format.StyleCurrencyISO,
		"narrow":   format.StyleCurrencyNarrow,
		"cash":     format.StyleCurrencyCash,
		" Cash ":   format.StyleCurrencyCash,
	} {
		got, err := format.ParseStyle(name)
		assert.NoError(err, "style %q", name)
		assert.Equal(want, got, "style %q", name)
	}

	_, err := format.ParseStyle("fancy")
	assert.Error(err)

	// Round trip for every style name.
	for _, s := range []format.Style{
		format.StyleCurrency, format.StyleDecimal, format.StyleCurrencyISO,
		format.StyleCurrencyNarrow, format.StyleCurrencyCash,
	} {
		got, err := format.ParseStyle(s.String())
		assert.NoError(err)
		assert.Equal(s, got)
	}
}
