package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings holds process-level options read from the environment.
// Command-line flags take precedence over these values.
type Settings struct {
	Host             string        `env:"HANOI_HOST" envDefault:"localhost"`
	Port             int           `env:"HANOI_PORT" envDefault:"8080"`
	ConfigDir        string        `env:"HANOI_CONFIG_DIR" envDefault:"configs"`
	AutoplayInterval time.Duration `env:"HANOI_AUTOPLAY_INTERVAL" envDefault:"300ms"`
	SessionTTL       time.Duration `env:"HANOI_SESSION_TTL" envDefault:"24h"`
	Debug            bool          `env:"HANOI_DEBUG"`

	NgrokEnabled bool   `env:"NGROK_ENABLED"`
	NgrokAuth    string `env:"NGROK_AUTHTOKEN"`
	NgrokDomain  string `env:"NGROK_DOMAIN"`
}

// LoadSettings parses Settings from the environment
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the ranges of the parsed settings
func (s *Settings) Validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("settings: port must be between 1 and 65535, got %d", s.Port)
	}
	if s.ConfigDir == "" {
		return fmt.Errorf("settings: config dir is required")
	}
	if s.AutoplayInterval <= 0 {
		return fmt.Errorf("settings: autoplay interval must be positive, got %s", s.AutoplayInterval)
	}
	if s.SessionTTL <= 0 {
		return fmt.Errorf("settings: session ttl must be positive, got %s", s.SessionTTL)
	}
	return nil
}

// Addr returns host:port
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
