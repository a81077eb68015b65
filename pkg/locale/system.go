package locale

import (
	"log/slog"
	"os"
	"sync"

	"golang.org/x/text/language"
)

// Locale environment variables in precedence order. LC_MONETARY outranks
// LANG because currency display is what this library reads the locale for.
var systemEnv = [...]string{"LC_ALL", "LC_MONETARY", "LANG"}

var systemOnce = sync.OnceValue(detectSystem)

// System reports the device's current locale. It is detected once per
// process and frozen; environment changes after that are not observed.
func System() Locale {
	return systemOnce()
}

func detectSystem() Locale {
	for _, name := range systemEnv {
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		if base, _, err := normalize(raw); err != nil || base == "C" || base == "POSIX" {
			continue
		}
		loc, err := Parse(raw)
		if err != nil {
			slog.Warn("skipping unparsable locale from environment",
				"var", name, "value", raw, "error", err)
			continue
		}
		return loc
	}
	slog.Warn("no usable locale in environment, assuming en-US")
	return Locale{tag: language.AmericanEnglish}
}
