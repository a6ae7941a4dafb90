// Package transcription defines the provider interface and common types
// for speech-to-text backends.
//
// It follows speechkit's provider pattern with a pluggable registry for
// runtime-selectable backends.
//
// # Backends
//
//   - transcription/whisper: OpenAI-compatible Whisper API
//
// # Usage
//
//	m := transcription.NewManager()
//	m.Register(whisper.ProviderName, whisper.Factory())
//	_ = m.Initialize(whisper.ProviderName, map[string]any{"api_key": key})
//	p, _ := m.Get(ctx)
//	result, err := p.Transcribe(ctx, transcription.Request{AudioPath: path})
package transcription
