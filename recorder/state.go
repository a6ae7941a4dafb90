package recorder

// State is the recording lifecycle state.
type State string

const (
	// StateIdle means no recording cycle is active.
	StateIdle State = "idle"
	// StateRecording means audio capture is live.
	StateRecording State = "recording"
	// StateProcessing means capture has stopped and transcription is in flight.
	StateProcessing State = "processing"
	// StateSuccess means a transcript was produced; shown briefly before idle.
	StateSuccess State = "success"
	// StateError means the cycle failed; shown briefly before idle.
	StateError State = "error"
)

// Transition reasons carried on events.
const (
	ReasonBegin            = "begin"
	ReasonEnd              = "end"
	ReasonTimeout          = "timeout"
	ReasonTranscribed      = "transcribed"
	ReasonStartFailed      = "start_failed"
	ReasonStopFailed       = "stop_failed"
	ReasonTranscribeFailed = "transcribe_failed"
	ReasonDisplayElapsed   = "display_elapsed"
	ReasonClosed           = "closed"
)
