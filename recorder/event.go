package recorder

import "github.com/kbukum/speechkit/errors"

// Event describes a single state transition.
type Event struct {
	// CycleID identifies the recording cycle the transition belongs to.
	CycleID string
	// State is the state entered.
	State State
	// Reason is why the transition happened (see the Reason constants).
	Reason string
	// Transcript carries the text on success transitions.
	Transcript string
	// Err carries the failure on error transitions.
	Err *errors.AppError
}

// Sink observes state transitions. OnTransition is invoked synchronously
// inside the transition, so implementations must return quickly and must
// not call back into the Controller.
type Sink interface {
	OnTransition(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) OnTransition(e Event) { f(e) }
