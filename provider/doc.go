// Package provider implements a generic registry and manager for
// pluggable backends. Domain packages (transcription) declare their own
// Provider interface embedding provider.Provider and reuse the generic
// Registry, Manager, and Selector machinery.
package provider
