// Package capture records microphone audio to disk. Backend is the
// contract the recorder drives; FFmpegBackend implements it with an
// ffmpeg subprocess that encodes AAC into a scratch .m4a while teeing
// PCM to stdout for amplitude metering.
package capture
