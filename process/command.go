package process

import (
	"io"
	"time"
)

// Command describes a subprocess: a short-lived probe for Run or a
// long-lived capture session for Start. The binary is resolved via PATH.
type Command struct {
	Binary string
	Args   []string
	// Stdin provides input to the process. May be nil.
	Stdin io.Reader
	// GracePeriod is how long to wait after the stop signal before the
	// process group is killed. Defaults to 5 seconds if zero.
	GracePeriod time.Duration
}
