package blogscan

import "time"

// Loader modes.
const (
	ModeBrowser = "browser"
	ModeHTTP    = "http"
)

// Config holds scan settings.
type Config struct {
	Sites       []Site        `mapstructure:"sites"`
	Mode        string        `mapstructure:"mode"`
	Settle      SettlePolicy  `mapstructure:"settle"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Concurrency int           `mapstructure:"concurrency"`
	RateLimit   float64       `mapstructure:"rate_limit"`
	Stealth     bool          `mapstructure:"stealth"`
	DBPath      string        `mapstructure:"db_path"`
}

// DefaultConfig returns a Config that scans the default sites one at a time
// in a headless browser.
func DefaultConfig() *Config {
	return &Config{
		Sites:       DefaultSites(),
		Mode:        ModeBrowser,
		Settle:      DefaultSettlePolicy(),
		Timeout:     30 * time.Second,
		Concurrency: 1,
		RateLimit:   1.0,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.Mode != ModeBrowser && c.Mode != ModeHTTP {
		return Errorf(EINVALID, "unknown mode %q (want %q or %q)", c.Mode, ModeBrowser, ModeHTTP)
	}
	if c.Concurrency < 1 {
		return Errorf(EINVALID, "concurrency must be at least 1")
	}
	if c.RateLimit <= 0 {
		return Errorf(EINVALID, "rate limit must be positive")
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	if c.Settle.IdleTime <= 0 || c.Settle.Timeout <= 0 {
		return Errorf(EINVALID, "settle idle time and timeout must be positive")
	}
	for i := range c.Sites {
		if err := c.Sites[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
