// Package logger provides structured logging for speechkit components,
// built on zerolog. Components obtain a tagged logger via Get("name")
// or by wrapping the global logger with WithComponent.
//
// Output defaults to stderr; the host application owns stdout.
package logger
