package config

import (
	"os"
	"strings"
	"sync"
)

// PlaceholderAPIKey is the literal value shipped in packaged
// configuration before a real key is supplied. It is rejected at every
// resolution step.
const PlaceholderAPIKey = "YOUR_API_KEY"

// DefaultAPIKeyEnvVar is the environment variable consulted when the
// packaged configuration carries no usable key.
const DefaultAPIKeyEnvVar = "SPEECHKIT_API_KEY"

// APIKeyResolver resolves the transcription credential in priority
// order: packaged configuration value, then environment variable, then
// a runtime-settable override. Empty and placeholder values are
// rejected at each step.
type APIKeyResolver struct {
	// Packaged is the value from packaged configuration (config.yml).
	Packaged string
	// EnvVar is the environment variable to consult. Defaults to
	// DefaultAPIKeyEnvVar when empty.
	EnvVar string

	mu       sync.RWMutex
	override string
}

// SetOverride installs a runtime override, e.g. a key the user typed
// into a settings screen. An empty or placeholder override clears it.
func (r *APIKeyResolver) SetOverride(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if usable(key) {
		r.override = strings.TrimSpace(key)
	} else {
		r.override = ""
	}
}

// Resolve returns the first usable credential, or an empty string when
// none is configured. Callers treat empty as missing.
func (r *APIKeyResolver) Resolve() string {
	if usable(r.Packaged) {
		return strings.TrimSpace(r.Packaged)
	}

	envVar := r.EnvVar
	if envVar == "" {
		envVar = DefaultAPIKeyEnvVar
	}
	if v := os.Getenv(envVar); usable(v) {
		return strings.TrimSpace(v)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.override
}

// usable reports whether a candidate credential is non-empty and not
// the packaged placeholder.
func usable(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != PlaceholderAPIKey
}
