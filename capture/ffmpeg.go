package capture

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/speechkit/errors"
	"github.com/kbukum/speechkit/logger"
	"github.com/kbukum/speechkit/process"
)

// FFmpegConfig configures the ffmpeg capture backend.
type FFmpegConfig struct {
	// Binary is the ffmpeg executable. Defaults to "ffmpeg".
	Binary string `mapstructure:"binary"`
	// InputFormat is the ffmpeg input demuxer (pulse, alsa, avfoundation).
	InputFormat string `mapstructure:"input_format"`
	// InputDevice selects the input source within the demuxer.
	InputDevice string `mapstructure:"input_device"`
	// ScratchDir holds recording files. Defaults to os.TempDir().
	ScratchDir string `mapstructure:"scratch_dir"`
	// SampleRate and Channels apply to the encoded output.
	SampleRate int    `mapstructure:"sample_rate" validate:"gte=0"`
	Channels   int    `mapstructure:"channels" validate:"gte=0"`
	Bitrate    string `mapstructure:"bitrate"`
	// StopGrace bounds the wait for ffmpeg to finalize the container
	// after SIGINT before the process group is killed.
	StopGrace time.Duration `mapstructure:"stop_grace"`
	// StartupProbe is how long Start watches for an immediate exit
	// before declaring the session live.
	StartupProbe time.Duration `mapstructure:"startup_probe"`
}

// ApplyDefaults fills zero fields with production defaults.
func (c *FFmpegConfig) ApplyDefaults() {
	if c.Binary == "" {
		c.Binary = "ffmpeg"
	}
	if c.InputFormat == "" {
		c.InputFormat = "pulse"
	}
	if c.InputDevice == "" {
		c.InputDevice = "default"
	}
	if c.ScratchDir == "" {
		c.ScratchDir = os.TempDir()
	}
	if c.SampleRate == 0 {
		c.SampleRate = 16000
	}
	if c.Channels == 0 {
		c.Channels = 1
	}
	if c.Bitrate == "" {
		c.Bitrate = "64k"
	}
	if c.StopGrace == 0 {
		c.StopGrace = 2 * time.Second
	}
	if c.StartupProbe == 0 {
		c.StartupProbe = 250 * time.Millisecond
	}
}

// FFmpegBackend records the input device to an AAC .m4a file while
// teeing mono PCM to stdout for live amplitude metering.
type FFmpegBackend struct {
	cfg FFmpegConfig
	log *logger.Logger

	// test seams
	newCommand   func(path string) process.Command
	probeCommand func() process.Command

	mu      sync.Mutex
	proc    *process.Proc
	stdout  io.ReadCloser
	meter   *meter
	path    string
	started time.Time
}

// NewFFmpegBackend builds a backend with defaults applied.
func NewFFmpegBackend(cfg FFmpegConfig) *FFmpegBackend {
	cfg.ApplyDefaults()
	b := &FFmpegBackend{
		cfg: cfg,
		log: logger.Get("capture"),
	}
	b.newCommand = b.command
	b.probeCommand = b.probe
	return b
}

func (b *FFmpegBackend) command(path string) process.Command {
	c := b.cfg
	args := []string{
		"-nostdin",
		"-hide_banner",
		"-loglevel", "warning",
		"-f", c.InputFormat,
		"-i", c.InputDevice,
		"-map", "0:a",
		"-ac", strconv.Itoa(c.Channels),
		"-ar", strconv.Itoa(c.SampleRate),
		"-c:a", "aac",
		"-b:a", c.Bitrate,
		"-y", path,
		"-map", "0:a",
		"-ac", "1",
		"-ar", "16000",
		"-f", "s16le",
		"pipe:1",
	}
	return process.Command{Binary: c.Binary, Args: args}
}

// probeTimeout bounds the capability probe run.
const probeTimeout = 2 * time.Second

func (b *FFmpegBackend) probe() process.Command {
	return process.Command{
		Binary:      b.cfg.Binary,
		Args:        []string{"-version"},
		GracePeriod: time.Second,
	}
}

// PermissionGranted reports whether the capture binary is present and
// runnable, verified by executing it with -version.
func (b *FFmpegBackend) PermissionGranted() bool {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	res, err := process.Run(ctx, b.probeCommand())
	return err == nil && res.ExitCode == 0
}

// Start launches ffmpeg recording into a fresh scratch file.
func (b *FFmpegBackend) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.proc != nil {
		return errors.AlreadyInProgress()
	}
	if !b.PermissionGranted() {
		return errors.PermissionDenied().
			WithCause(fmt.Errorf("capture binary %q not found", b.cfg.Binary))
	}

	path := filepath.Join(b.cfg.ScratchDir, uuid.NewString()+".m4a")
	proc, stdout, err := process.Start(b.newCommand(path))
	if err != nil {
		return errors.SessionSetupFailed(err)
	}

	// Watch for an immediate exit so a bad device fails Start instead
	// of surfacing later as a corrupt artifact.
	probe := time.NewTimer(b.cfg.StartupProbe)
	defer probe.Stop()
	select {
	case <-proc.Done():
		_ = stdout.Close()
		_ = os.Remove(path)
		return errors.SessionSetupFailed(
			fmt.Errorf("capture process exited during startup: %s", string(proc.Stderr())))
	case <-ctx.Done():
		_ = proc.Stop(b.cfg.StopGrace)
		_ = stdout.Close()
		_ = os.Remove(path)
		return errors.SessionSetupFailed(ctx.Err())
	case <-probe.C:
	}

	m := newMeter()
	go m.run(stdout)

	b.proc = proc
	b.stdout = stdout
	b.meter = m
	b.path = path
	b.started = time.Now()

	b.log.Debug("capture started", logger.Fields(logger.FieldPath, path))
	return nil
}

// Stop signals ffmpeg to finalize the file and validates the result.
func (b *FFmpegBackend) Stop() (*Artifact, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.proc == nil {
		return nil, errors.NothingToStop()
	}

	proc, stdout, m, path, started := b.proc, b.stdout, b.meter, b.path, b.started
	b.proc, b.stdout, b.meter, b.path = nil, nil, nil, ""

	stopErr := proc.Stop(b.cfg.StopGrace)
	<-m.done
	_ = stdout.Close()
	if stopErr != nil {
		b.log.Warn("capture stop", logger.Fields(
			logger.FieldError, stopErr.Error(),
			logger.FieldPath, path,
		))
	}

	info, statErr := os.Stat(path)
	if statErr != nil || info.Size() == 0 {
		_ = os.Remove(path)
		return nil, errors.EmptyOrCorrupt(path)
	}

	art := &Artifact{
		Path:            path,
		SizeBytes:       info.Size(),
		DurationSeconds: time.Since(started).Seconds(),
	}
	b.log.Debug("capture stopped", logger.Fields(
		logger.FieldPath, path,
		logger.FieldSizeBytes, art.SizeBytes,
	))
	return art, nil
}

// CurrentAmplitude returns the live RMS level, 0 when idle.
func (b *FFmpegBackend) CurrentAmplitude() float64 {
	b.mu.Lock()
	m := b.meter
	b.mu.Unlock()
	if m == nil {
		return 0
	}
	return m.Level()
}
