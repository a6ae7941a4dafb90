// Package speechkit wires microphone capture, the recording state
// machine, and Whisper transcription into a ready-to-use dictation
// pipeline. Libraries embedding a keyboard or voice input surface
// construct an App and drive it through Recorder.
package speechkit

import (
	"github.com/kbukum/speechkit/capture"
	"github.com/kbukum/speechkit/config"
	"github.com/kbukum/speechkit/logger"
	"github.com/kbukum/speechkit/observability"
	"github.com/kbukum/speechkit/recorder"
	"github.com/kbukum/speechkit/transcription"
	"github.com/kbukum/speechkit/transcription/whisper"
	"github.com/kbukum/speechkit/version"
)

// ServiceName is used for config resolution and telemetry resources.
const ServiceName = "speechkit"

// Settings is the top-level configuration tree, loadable from
// config.yml and SPEECHKIT_* environment variables via Load.
type Settings struct {
	Logging  logger.Config        `mapstructure:"logging"`
	Recorder recorder.Config      `mapstructure:"recorder"`
	Capture  capture.FFmpegConfig `mapstructure:"capture"`
	Whisper  whisper.Config       `mapstructure:"whisper"`
}

// Load resolves Settings from config files and the environment.
func Load(opts ...config.LoaderOption) (Settings, error) {
	var s Settings
	if err := config.Load(ServiceName, &s, opts...); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Option customizes App construction.
type Option func(*appOptions)

type appOptions struct {
	backend  capture.Backend
	provider transcription.Provider
	sink     recorder.Sink
	metrics  *observability.Metrics
	tracing  bool
}

// WithBackend substitutes the capture backend, e.g. for platforms
// without ffmpeg or for tests.
func WithBackend(b capture.Backend) Option {
	return func(o *appOptions) { o.backend = b }
}

// WithProvider substitutes the transcription provider.
func WithProvider(p transcription.Provider) Option {
	return func(o *appOptions) { o.provider = p }
}

// WithSink installs a state transition observer on the recorder.
func WithSink(s recorder.Sink) Option {
	return func(o *appOptions) { o.sink = s }
}

// WithMetrics records transcription metrics through the given instruments.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *appOptions) { o.metrics = m }
}

// WithTracing wraps transcription calls in OpenTelemetry spans.
func WithTracing() Option {
	return func(o *appOptions) { o.tracing = true }
}

// App is a fully wired dictation pipeline.
type App struct {
	Settings Settings
	Recorder *recorder.Controller
	Backend  capture.Backend
	Provider transcription.Provider
	Logger   *logger.Logger
}

// New builds an App from Settings. The logger is initialized globally;
// the capture backend and Whisper provider come from Settings unless
// overridden by options.
//
// The provider chain always carries the logging middleware; hosts that
// want a quiet pipeline raise Settings.Logging.Level (the middleware
// logs successes at debug) rather than unwrapping the chain.
func New(s Settings, opts ...Option) (*App, error) {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}

	logger.Init(s.Logging)
	log := logger.Get(ServiceName)

	backend := o.backend
	if backend == nil {
		backend = capture.NewFFmpegBackend(s.Capture)
	}

	prov := o.provider
	if prov == nil {
		p, err := whisper.NewProvider(s.Whisper)
		if err != nil {
			return nil, err
		}
		prov = p
	}

	prov = transcription.WithLogging(prov, logger.Get("transcription"))
	if o.metrics != nil {
		prov = transcription.WithMetrics(prov, o.metrics)
	}
	if o.tracing {
		prov = transcription.WithTracing(prov)
	}

	var recOpts []recorder.Option
	if o.sink != nil {
		recOpts = append(recOpts, recorder.WithSink(o.sink))
	}
	ctrl, err := recorder.New(s.Recorder, backend, prov, recOpts...)
	if err != nil {
		return nil, err
	}

	log.Info("speechkit initialized", logger.Fields(
		"version", version.GetShortVersion(),
		logger.FieldProvider, prov.Name(),
	))

	return &App{
		Settings: s,
		Recorder: ctrl,
		Backend:  backend,
		Provider: prov,
		Logger:   log,
	}, nil
}

// Close releases the recorder and any live capture session.
func (a *App) Close() error {
	return a.Recorder.Close()
}
