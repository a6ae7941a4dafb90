package httpclient

import (
	"fmt"
	"time"
)

const (
	defaultRequestTimeout = 30 * time.Second
)

// Config configures the HTTP client.
type Config struct {
	// BaseURL is the base URL prepended to all request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// RequestTimeout bounds the wait for response headers. Defaults to 30s.
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`

	// TransferTimeout bounds the whole exchange including the body
	// transfer. Defaults to twice RequestTimeout.
	TransferTimeout time.Duration `yaml:"transfer_timeout" mapstructure:"transfer_timeout"`

	// Auth configures default authentication applied to all requests.
	// Individual requests can override this.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	if c.TransferTimeout <= 0 {
		c.TransferTimeout = 2 * c.RequestTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("httpclient: request timeout must be positive")
	}
	if c.TransferTimeout < c.RequestTimeout {
		return fmt.Errorf("httpclient: transfer timeout must not be shorter than request timeout")
	}
	return nil
}
