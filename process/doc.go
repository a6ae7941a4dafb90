// Package process runs external commands with process-group signaling
// and bounded shutdown. Run executes one-shot commands; Start manages
// long-lived subprocesses such as audio recorders that must be stopped
// gracefully so they can finalize their output.
package process
