// Package recorder implements the push-to-talk recording lifecycle. A
// Controller owns one capture backend and one transcription provider
// and moves through idle, recording, processing, and a short success or
// error display window before returning to idle. At most one recording
// cycle is active at a time; a 60 second cap stops runaway recordings
// through the same path as a manual stop.
package recorder
