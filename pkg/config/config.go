package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config configuración del juego, leída de variables de entorno
type Config struct {
	Lives     int           `env:"HANGMAN_LIVES" envDefault:"6"`
	TimeLimit time.Duration `env:"HANGMAN_TIME_LIMIT" envDefault:"15s"`

	WordsFile   string `env:"HANGMAN_WORDS_FILE" envDefault:"words.txt"`
	PhrasesFile string `env:"HANGMAN_PHRASES_FILE" envDefault:"phrases.txt"`

	// Redis es opcional; vacío lo desactiva
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	WordAPIURL     string        `env:"HANGMAN_WORD_API_URL"`
	WordLength     int           `env:"HANGMAN_WORD_LENGTH" envDefault:"6"`
	WordAPITimeout time.Duration `env:"HANGMAN_WORD_API_TIMEOUT" envDefault:"5s"`
}

// Load lee la configuración del entorno del proceso y la valida
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadEnvironment igual que Load pero leyendo solo las variables dadas
func LoadEnvironment(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica que los valores tengan sentido
func (c *Config) Validate() error {
	var errs []error
	if c.Lives <= 0 {
		errs = append(errs, fmt.Errorf("HANGMAN_LIVES debe ser positivo: %d", c.Lives))
	}
	if c.TimeLimit <= 0 {
		errs = append(errs, fmt.Errorf("HANGMAN_TIME_LIMIT debe ser positivo: %s", c.TimeLimit))
	}
	if c.WordLength <= 0 {
		errs = append(errs, fmt.Errorf("HANGMAN_WORD_LENGTH debe ser positivo: %d", c.WordLength))
	}
	return errors.Join(errs...)
}
