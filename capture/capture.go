package capture

import (
	"context"
	"os"
	"sync/atomic"
)

// Backend records audio from the system input device. Implementations
// must be safe for concurrent use; the recorder drives one cycle at a
// time but may poll CurrentAmplitude from another goroutine.
type Backend interface {
	// Start begins a capture session. Returns ALREADY_IN_PROGRESS if a
	// session is live and SESSION_SETUP_FAILED if the device or tooling
	// cannot be initialized.
	Start(ctx context.Context) error
	// Stop ends the session and returns the recorded artifact. Returns
	// NOTHING_TO_STOP if no session is live and EMPTY_OR_CORRUPT if the
	// output file is missing or zero bytes (the file is deleted first).
	Stop() (*Artifact, error)
	// CurrentAmplitude reports the normalized input level in [0, 1].
	// Zero when no session is live.
	CurrentAmplitude() float64
	// PermissionGranted reports whether the backend can record at all.
	PermissionGranted() bool
}

// Artifact is a finished recording on disk. The recorder owns its
// lifetime and removes it after transcription regardless of outcome.
type Artifact struct {
	Path            string
	SizeBytes       int64
	DurationSeconds float64

	removed atomic.Bool
}

// Remove deletes the underlying file. Idempotent; a missing file is not
// an error.
func (a *Artifact) Remove() error {
	if a == nil || a.Path == "" {
		return nil
	}
	if !a.removed.CompareAndSwap(false, true) {
		return nil
	}
	if err := os.Remove(a.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
