package speechkit

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kbukum/speechkit/capture"
	"github.com/kbukum/speechkit/config"
	"github.com/kbukum/speechkit/recorder"
	"github.com/kbukum/speechkit/transcription"
)

type fakeBackend struct {
	started bool
	path    string
}

func (b *fakeBackend) Start(_ context.Context) error {
	b.started = true
	return nil
}

func (b *fakeBackend) Stop() (*capture.Artifact, error) {
	b.started = false
	return &capture.Artifact{Path: b.path, SizeBytes: 4}, nil
}

func (b *fakeBackend) CurrentAmplitude() float64 { return 0 }
func (b *fakeBackend) PermissionGranted() bool   { return true }

type fakeProvider struct{ text string }

func (p *fakeProvider) Name() string                       { return "fake" }
func (p *fakeProvider) IsAvailable(_ context.Context) bool { return true }
func (p *fakeProvider) Transcribe(_ context.Context, _ transcription.Request) (*transcription.Response, error) {
	return &transcription.Response{Text: p.text}, nil
}

func TestNew_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.m4a")
	if err := os.WriteFile(path, []byte("data"), 0o600); err != nil {
		t.Fatal(err)
	}

	events := make(chan recorder.Event, 16)
	app, err := New(Settings{},
		WithBackend(&fakeBackend{path: path}),
		WithProvider(&fakeProvider{text: "dictated text"}),
		WithSink(recorder.SinkFunc(func(e recorder.Event) { events <- e })),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = app.Close() }()

	if err := app.Recorder.Begin(context.Background()); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := app.Recorder.End(context.Background()); err != nil {
		t.Fatalf("End: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case e := <-events:
			if e.State == recorder.StateSuccess {
				if e.Transcript != "dictated text" {
					t.Errorf("transcript = %q", e.Transcript)
				}
				return
			}
		case <-deadline:
			t.Fatal("never reached success state")
		}
	}
}

func TestNew_DefaultsApplied(t *testing.T) {
	app, err := New(Settings{},
		WithBackend(&fakeBackend{}),
		WithProvider(&fakeProvider{}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = app.Close() }()

	// Logging middleware wraps the provider but keeps its identity.
	if app.Provider.Name() != "fake" {
		t.Errorf("provider name = %q", app.Provider.Name())
	}
	if app.Recorder.State() != recorder.StateIdle {
		t.Errorf("initial state = %q", app.Recorder.State())
	}
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yml")
	content := `
recorder:
  max_duration: 30s
whisper:
  model: custom-model
  api_key: test-key
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(config.WithConfigFile(cfgPath))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Recorder.MaxDuration != 30*time.Second {
		t.Errorf("max duration = %v", s.Recorder.MaxDuration)
	}
	if s.Whisper.Model != "custom-model" {
		t.Errorf("model = %q", s.Whisper.Model)
	}
}
