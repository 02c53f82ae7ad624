package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process settings read from ARCADE_* variables. Command line
// flags take precedence; these only change the flag defaults.
type Env struct {
	DBPath   string `env:"ARCADE_DB" envDefault:"~/.arcade/scores.db"`
	LogLevel string `env:"ARCADE_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"ARCADE_LOG_FILE" envDefault:"~/.arcade/arcade.log"`
	FPS      int    `env:"ARCADE_FPS" envDefault:"60"`
	SSHAddr  string `env:"ARCADE_SSH_ADDR" envDefault:":23234"`
	HostKey  string `env:"ARCADE_HOST_KEY"`
}

// LoadEnv reads Env from the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
