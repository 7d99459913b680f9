package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Env carries the environment fallbacks for connection settings.
type Env struct {
	Host     string `env:"ARCHIVA_HOST"`
	Username string `env:"ARCHIVA_USR" envDefault:"guest"`
	Password string `env:"ARCHIVA_PWD"`
}

func ParseEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &e, nil
}
