package provider

import "context"

// Provider is the minimal contract a pluggable backend satisfies: a
// stable name and a readiness check the selector can consult.
type Provider interface {
	// Name returns the backend's unique name, e.g. "whisper".
	Name() string
	// IsAvailable reports whether the backend can serve requests now,
	// which for remote services includes holding a usable credential.
	IsAvailable(ctx context.Context) bool
}

// Factory creates a backend instance from a configuration map.
type Factory[T Provider] func(cfg map[string]any) (T, error)
