package config

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[moneykit]"`
}

// Display selects how the CLI formats amounts when no flags are given.
type Display struct {
	Style  string `envconfig:"STYLE" default:"currency"`
	Locale string `envconfig:"LOCALE" default:""`
}

type App struct {
	Env     string   `envconfig:"APP_ENV" default:"development"`
	Log     *Log     `envconfig:"LOG"`
	Display *Display `envconfig:"DISPLAY"`
}
