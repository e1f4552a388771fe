package config

// App holds the settings shared by every slimkit application.
type App struct {
	Name        string      `env:"APP_NAME" envDefault:"slimkit"`
	Environment Environment `env:"APP_ENV" envDefault:"development"`
	Debug       bool        `env:"APP_DEBUG" envDefault:"false"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFormat is text or json. Empty picks the environment default.
	LogFormat string `env:"LOG_FORMAT"`

	// DefaultLanguage is used when a request does not ask for one.
	DefaultLanguage string `env:"DEFAULT_LANG" envDefault:"en"`
}

// LoadApp loads the App settings from the environment.
func LoadApp() (App, error) {
	var cfg App
	if err := Load(&cfg); err != nil {
		return App{}, err
	}
	return cfg, nil
}
