// moneykit inspects currency metadata and formats amounts the way a
// device in a given locale would display them.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirasaad/moneykit/pkg/config"
	"github.com/amirasaad/moneykit/pkg/currency"
	"github.com/amirasaad/moneykit/pkg/format"
	"github.com/amirasaad/moneykit/pkg/locale"
)

func usage() {
	fmt.Println("Usage: moneykit <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  info <code>                  resolved metadata and rounding policy for a code")
	fmt.Println("  local                        metadata of the device currency")
	fmt.Println("  locale <identifier>          canonical form and currency of a locale identifier")
	fmt.Println("  fmt <code> <amount> [locale] format an amount (style/locale default from config)")
	fmt.Println("  resolved                     shared instances resolved so far in this process")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load configuration:", err)
		os.Exit(1)
	}
	logger := setupLogger(cfg.Log).With("run_id", uuid.New())

	switch cmd := os.Args[1]; cmd {
	case "info":
		if len(os.Args) < 3 {
			fmt.Println("Usage: moneykit info <code>")
			return
		}
		runInfo(logger, os.Args[2])
	case "local":
		runLocal(logger)
	case "locale":
		if len(os.Args) < 3 {
			fmt.Println("Usage: moneykit locale <identifier>")
			return
		}
		runLocale(logger, os.Args[2])
	case "fmt":
		if len(os.Args) < 4 {
			fmt.Println("Usage: moneykit fmt <code> <amount> [locale]")
			return
		}
		id := cfg.Display.Locale
		if len(os.Args) > 4 {
			id = os.Args[4]
		}
		runFmt(logger, cfg, os.Args[2], os.Args[3], id)
	case "resolved":
		runResolved()
	default:
		fmt.Println("Unknown command:", cmd)
		usage()
	}
}

func runInfo(logger *slog.Logger, code string) {
	m, err := currency.ResolveCode(code)
	if err != nil {
		logger.Error("resolution failed", "code", code, "error", err)
		os.Exit(1)
	}
	printMetadata(m)
}

func runLocal(logger *slog.Logger) {
	sys := locale.System()
	logger.Info("device locale detected", "locale", sys.String())

	local := currency.Local{}
	fmt.Printf("device locale: %s\n", sys)
	printMetadata(local.SharedInstance().Metadata)
}

func runLocale(logger *slog.Logger, id string) {
	canonical, err := locale.Canonicalize(id)
	if err != nil {
		logger.Error("canonicalization failed", "identifier", id, "error", err)
		os.Exit(1)
	}
	fmt.Printf("canonical: %s\n", canonical)

	loc := locale.MustParse(id)
	m, err := currency.ResolveLocale(loc)
	if err != nil {
		logger.Warn("locale carries no resolvable currency", "identifier", canonical, "error", err)
		return
	}
	printMetadata(m)
}

func runFmt(logger *slog.Logger, cfg *config.App, code, rawAmount, id string) {
	style, err := format.ParseStyle(cfg.Display.Style)
	if err != nil {
		logger.Error("bad display style in configuration", "style", cfg.Display.Style, "error", err)
		os.Exit(1)
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		fmt.Println("Invalid amount:", err)
		return
	}

	m, err := currency.ResolveCode(code)
	if err != nil {
		logger.Error("resolution failed", "code", code, "error", err)
		os.Exit(1)
	}

	var f format.Func
	if id != "" {
		f, err = currency.FormatID(m, style, id)
	} else {
		f, err = currency.FormatSystem(m, style)
	}
	if err != nil {
		logger.Error("formatter construction failed", "code", code, "locale", id, "error", err)
		os.Exit(1)
	}

	fmt.Println(f(amount))
}

func runResolved() {
	resolved := currency.Resolved()
	if len(resolved) == 0 {
		fmt.Println("No shared instances resolved yet.")
		return
	}
	for _, m := range resolved {
		printMetadata(m)
	}
}

func printMetadata(m currency.Metadata) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	symbol := m.Symbol()
	if symbol == "" {
		symbol = "(none)"
	}

	p := currency.Behaviors(m)
	fmt.Printf("%s  scale=%d  symbol=%s  rounding=%s\n",
		bold(m.Code()), m.Scale(), green(symbol), p.Mode)
}
