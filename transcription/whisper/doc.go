// Package whisper implements transcription.Provider against an
// OpenAI-compatible audio transcriptions API (Groq by default). One
// multipart upload per call, with credential resolution through the
// packaged key, environment variable, and runtime override chain.
package whisper
