// Package config reads application settings from the process environment.
//
// Struct based configuration is parsed with github.com/caarlos0/env/v11 and
// cached per type, so every package can call Load with its own struct
// without re-parsing the environment:
//
//	type MailConfig struct {
//		From string `env:"MAIL_FROM,required"`
//	}
//
//	var cfg MailConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// The first Load reads ./.env when it exists. LoadEnv reads other files
// without touching variables that are already set; LoadFile reads a settings
// file and overrides them, which suits deployments that ship configuration as
// a file instead of through the environment. Both use github.com/joho/godotenv.
//
// Bool, String and Date read single settings with a fallback. App collects the
// settings every application shares, and Environment names the deployment
// stage.
//
// ResetCache and ForceReload exist for tests that change the environment.
package config
