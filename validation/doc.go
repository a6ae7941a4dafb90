// Package validation provides struct-tag validation for speechkit
// configuration types, using the validator library.
//
//	type Config struct {
//	    Model   string        `mapstructure:"model" validate:"required"`
//	    Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
//	}
//	err := validation.Validate(cfg)
package validation
