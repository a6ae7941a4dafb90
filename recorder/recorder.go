package recorder

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/speechkit/capture"
	"github.com/kbukum/speechkit/errors"
	"github.com/kbukum/speechkit/logger"
	"github.com/kbukum/speechkit/transcription"
	"github.com/kbukum/speechkit/validation"
)

var errClosed = stderrors.New("recorder is closed")

// Snapshot is a point-in-time view of the controller.
type Snapshot struct {
	State      State
	CycleID    string
	Transcript string
	Err        *errors.AppError
}

// Option configures a Controller.
type Option func(*Controller)

// WithSink installs a transition observer.
func WithSink(s Sink) Option {
	return func(c *Controller) { c.sink = s }
}

// WithLogger overrides the controller's logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// Controller drives the recording lifecycle: at most one active cycle,
// an auto-stop timeout, and bounded success/error display windows. All
// transitions are guarded by the cycle ID so a stale timer or a late
// transcription result can never touch a newer cycle.
type Controller struct {
	cfg      Config
	backend  capture.Backend
	provider transcription.Provider
	sink     Sink
	log      *logger.Logger

	// test seam
	newTimer func(d time.Duration, f func()) *time.Timer

	mu           sync.Mutex
	state        State
	cycleID      string
	transcript   string
	lastErr      *errors.AppError
	timeoutTimer *time.Timer
	displayTimer *time.Timer
	closed       bool
}

// New builds a Controller. Defaults are applied to cfg before validation.
func New(cfg Config, backend capture.Backend, provider transcription.Provider, opts ...Option) (*Controller, error) {
	cfg.ApplyDefaults()
	if err := validation.Validate(cfg); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:      cfg,
		backend:  backend,
		provider: provider,
		log:      logger.Get("recorder"),
		state:    StateIdle,
		newTimer: time.AfterFunc,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Begin starts a new recording cycle. Allowed from idle, success, and
// error (cutting the display window short); any other state returns
// ALREADY_RECORDING.
func (c *Controller) Begin(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.SessionSetupFailed(errClosed)
	}

	switch c.state {
	case StateIdle:
	case StateSuccess, StateError:
		c.stopDisplayLocked()
	default:
		return errors.AlreadyRecording()
	}

	c.cycleID = uuid.NewString()
	if err := c.backend.Start(ctx); err != nil {
		// A failed start leaves the machine where a caller can retry
		// immediately; the error travels back instead of occupying the
		// display window.
		appErr := errors.AsAppError(err)
		c.transitionLocked(StateIdle, ReasonStartFailed, "", appErr)
		return appErr
	}

	c.transitionLocked(StateRecording, ReasonBegin, "", nil)

	id := c.cycleID
	c.timeoutTimer = c.newTimer(c.cfg.MaxDuration, func() { c.timeout(id) })
	return nil
}

// End stops the active recording and starts transcription. Only valid
// while recording; any other state returns NOT_RECORDING.
func (c *Controller) End(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRecording {
		return errors.NotRecording()
	}
	if appErr := c.finishLocked(ctx, ReasonEnd); appErr != nil {
		return appErr
	}
	return nil
}

// timeout fires when MaxDuration elapses. It converges on the same stop
// path as End; downstream cannot tell the two apart.
func (c *Controller) timeout(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cycleID != id || c.state != StateRecording {
		return
	}
	_ = c.finishLocked(context.Background(), ReasonTimeout)
}

// finishLocked stops capture and hands the artifact to transcription.
// A backend stop failure short-circuits straight to the error state.
func (c *Controller) finishLocked(ctx context.Context, reason string) *errors.AppError {
	c.stopTimeoutLocked()

	artifact, err := c.backend.Stop()
	if err != nil {
		appErr := errors.AsAppError(err)
		c.transitionLocked(StateError, ReasonStopFailed, "", appErr)
		c.armDisplayLocked(c.cfg.ErrorDisplay)
		return appErr
	}

	c.transitionLocked(StateProcessing, reason, "", nil)

	// The upload must survive the caller's context; only the values
	// (trace, deadline-free) carry over.
	go c.process(context.WithoutCancel(ctx), c.cycleID, artifact)
	return nil
}

// process runs the transcription call off the lock and applies the
// outcome if the cycle is still current. The artifact is deleted on
// every path.
func (c *Controller) process(ctx context.Context, id string, artifact *capture.Artifact) {
	defer func() {
		if err := artifact.Remove(); err != nil {
			c.log.Warn("artifact cleanup failed", logger.Fields(
				logger.FieldPath, artifact.Path,
				logger.FieldError, err.Error(),
			))
		}
	}()

	resp, err := c.provider.Transcribe(ctx, transcription.Request{AudioPath: artifact.Path})

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cycleID != id || c.state != StateProcessing {
		return
	}

	if err != nil {
		appErr := errors.AsAppError(err)
		c.transitionLocked(StateError, ReasonTranscribeFailed, "", appErr)
		c.armDisplayLocked(c.cfg.ErrorDisplay)
		return
	}

	c.transitionLocked(StateSuccess, ReasonTranscribed, resp.Text, nil)
	c.armDisplayLocked(c.cfg.SuccessDisplay)
}

// displayElapsed returns the controller to idle after the display window.
func (c *Controller) displayElapsed(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cycleID != id {
		return
	}
	if c.state != StateSuccess && c.state != StateError {
		return
	}
	c.displayTimer = nil
	c.transitionLocked(StateIdle, ReasonDisplayElapsed, "", nil)
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the current state with the cycle's transcript or error.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:      c.state,
		CycleID:    c.cycleID,
		Transcript: c.transcript,
		Err:        c.lastErr,
	}
}

// Amplitude reports the live input level, 0 outside a recording.
func (c *Controller) Amplitude() float64 {
	return c.backend.CurrentAmplitude()
}

// Close tears down timers and any live capture. The controller cannot
// be reused afterwards. Idempotent.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.stopTimeoutLocked()
	c.stopDisplayLocked()

	if c.state == StateRecording {
		if artifact, err := c.backend.Stop(); err == nil {
			_ = artifact.Remove()
		}
	}
	c.transitionLocked(StateIdle, ReasonClosed, "", nil)
	return nil
}

func (c *Controller) transitionLocked(next State, reason, transcript string, appErr *errors.AppError) {
	prev := c.state
	c.state = next
	c.transcript = transcript
	c.lastErr = appErr

	fields := logger.Fields(
		logger.FieldCycleID, c.cycleID,
		logger.FieldState, string(next),
		logger.FieldReason, reason,
		"from", string(prev),
	)
	if appErr != nil {
		fields[logger.FieldError] = appErr.Error()
		c.log.Warn("state transition", fields)
	} else {
		c.log.Debug("state transition", fields)
	}

	if c.sink != nil {
		c.sink.OnTransition(Event{
			CycleID:    c.cycleID,
			State:      next,
			Reason:     reason,
			Transcript: transcript,
			Err:        appErr,
		})
	}
}

func (c *Controller) armDisplayLocked(d time.Duration) {
	id := c.cycleID
	c.displayTimer = c.newTimer(d, func() { c.displayElapsed(id) })
}

func (c *Controller) stopTimeoutLocked() {
	if c.timeoutTimer != nil {
		c.timeoutTimer.Stop()
		c.timeoutTimer = nil
	}
}

func (c *Controller) stopDisplayLocked() {
	if c.displayTimer != nil {
		c.displayTimer.Stop()
		c.displayTimer = nil
	}
}
