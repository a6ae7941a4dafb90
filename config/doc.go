// Package config loads speechkit configuration from config.yml, .env
// files, and environment variables, with env taking priority over
// packaged values.
//
// It also implements credential resolution for the transcription
// provider: packaged value, then environment variable, then runtime
// override, rejecting empty and placeholder values at each step.
//
//	var cfg AppConfig
//	if err := config.Load("speechkit", &cfg); err != nil { ... }
//
//	resolver := &config.APIKeyResolver{Packaged: cfg.Whisper.APIKey}
//	key := resolver.Resolve()
package config
