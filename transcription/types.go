package transcription

// Request holds parameters for a transcription call.
type Request struct {
	// AudioPath is the path to the audio file to transcribe.
	AudioPath string `json:"audio_path"`
	// Model overrides the provider's configured model.
	Model string `json:"model,omitempty"`
	// Language is the expected language of the audio (e.g. "en").
	// Empty means the provider auto-detects.
	Language string `json:"language,omitempty"`
	// Format is the desired response format ("json", "verbose_json").
	Format string `json:"format,omitempty"`
}

// Response holds the result of a transcription call. Text is always
// populated; the remaining fields only appear with verbose formats.
type Response struct {
	Task     string `json:"task,omitempty"`
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
	// Duration is the audio duration in seconds.
	Duration float64   `json:"duration,omitempty"`
	Segments []Segment `json:"segments,omitempty"`
}

// Segment is a time-aligned portion of a transcript.
type Segment struct {
	ID               int     `json:"id"`
	Seek             int     `json:"seek,omitempty"`
	Start            float64 `json:"start"`
	End              float64 `json:"end"`
	Text             string  `json:"text"`
	Tokens           []int   `json:"tokens,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
	AvgLogprob       float64 `json:"avg_logprob,omitempty"`
	CompressionRatio float64 `json:"compression_ratio,omitempty"`
	NoSpeechProb     float64 `json:"no_speech_prob,omitempty"`
	Words            []Word  `json:"words,omitempty"`
}

// Word is a word-level timestamp within a segment.
type Word struct {
	Word        string  `json:"word"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Probability float64 `json:"probability,omitempty"`
}
