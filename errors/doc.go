// Package errors defines the speechkit error taxonomy.
//
// Errors are grouped by origin: capture (microphone/session), state
// (recorder transitions), network/transport (upload), and
// protocol/content (response handling). All of them are recovered at
// the recorder boundary; none crash the process.
//
// # Usage
//
//	if err := backend.Start(ctx); err != nil {
//	    if errors.HasCode(err, errors.ErrCodePermissionDenied) {
//	        // prompt for microphone access
//	    }
//	}
package errors
