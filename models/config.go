package models

import (
	"os"
	"strings"

	"github.com/rohanthewiz/serr"
)

// ============================================================================
// Application Configuration
//
// Loads server settings from environment variables so deployment
// configuration stays outside the binary.
// ============================================================================

// Config holds the settings for the web host.
type Config struct {
	Address       string // Listen address (LANGFILTER_ADDRESS)
	LogLevel      string // Logger level (LANGFILTER_LOG_LEVEL)
	LanguagesFile string // Optional JSON catalog override (LANGFILTER_LANGUAGES_FILE)
}

const (
	defaultAddress  = ":8000"
	defaultLogLevel = "info"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// LoadConfig reads configuration from environment variables, applying
// defaults for anything unset.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Address:  defaultAddress,
		LogLevel: defaultLogLevel,
	}

	if addr := os.Getenv("LANGFILTER_ADDRESS"); addr != "" {
		cfg.Address = addr
	}
	if level := os.Getenv("LANGFILTER_LOG_LEVEL"); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	cfg.LanguagesFile = os.Getenv("LANGFILTER_LANGUAGES_FILE")

	if err := cfg.Validate(); err != nil {
		return nil, serr.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// Validate checks the loaded values before the server starts.
func (c *Config) Validate() error {
	if !strings.Contains(c.Address, ":") {
		return serr.New("LANGFILTER_ADDRESS must be host:port or :port, got " + c.Address)
	}

	for _, lvl := range validLogLevels {
		if c.LogLevel == lvl {
			return nil
		}
	}
	return serr.New("LANGFILTER_LOG_LEVEL must be one of " + strings.Join(validLogLevels, ", "))
}
