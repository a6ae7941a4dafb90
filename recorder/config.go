package recorder

import (
	"time"

	"github.com/kbukum/speechkit/util"
)

// Config holds the recording controller timings.
type Config struct {
	// MaxDuration caps a recording before it is stopped automatically.
	MaxDuration time.Duration `mapstructure:"max_duration" validate:"gt=0"`
	// SuccessDisplay is how long the success state is shown before
	// returning to idle.
	SuccessDisplay time.Duration `mapstructure:"success_display" validate:"gt=0"`
	// ErrorDisplay is how long the error state is shown before
	// returning to idle.
	ErrorDisplay time.Duration `mapstructure:"error_display" validate:"gt=0"`
}

// ApplyDefaults fills zero fields with production defaults.
func (c *Config) ApplyDefaults() {
	c.MaxDuration = util.Coalesce(c.MaxDuration, 60*time.Second)
	c.SuccessDisplay = util.Coalesce(c.SuccessDisplay, 1500*time.Millisecond)
	c.ErrorDisplay = util.Coalesce(c.ErrorDisplay, 3*time.Second)
}
