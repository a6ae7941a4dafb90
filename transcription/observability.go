package transcription

import (
	"context"
	"time"

	"github.com/kbukum/speechkit/errors"
	"github.com/kbukum/speechkit/logger"
	"github.com/kbukum/speechkit/observability"
)

// WithTracing wraps a Provider with OpenTelemetry span creation.
// Each call creates a span named "transcription.{provider}".
func WithTracing(p Provider) Provider {
	return &tracingProvider{inner: p}
}

type tracingProvider struct {
	inner Provider
}

func (p *tracingProvider) Name() string                         { return p.inner.Name() }
func (p *tracingProvider) IsAvailable(ctx context.Context) bool { return p.inner.IsAvailable(ctx) }

func (p *tracingProvider) Transcribe(ctx context.Context, req Request) (*Response, error) {
	ctx, span := observability.StartSpan(ctx, "transcription."+p.inner.Name())
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrProvider, p.inner.Name())
	if req.Model != "" {
		observability.SetSpanAttribute(ctx, observability.AttrModel, req.Model)
	}

	resp, err := p.inner.Transcribe(ctx, req)
	if err != nil {
		observability.SetSpanAttribute(ctx, observability.AttrErrorCode, string(errors.CodeOf(err)))
		observability.SetSpanError(ctx, err)
	}
	return resp, err
}

// WithMetrics wraps a Provider with metric recording.
// Records operation count, duration, and errors.
func WithMetrics(p Provider, metrics *observability.Metrics) Provider {
	return &metricsProvider{inner: p, metrics: metrics}
}

type metricsProvider struct {
	inner   Provider
	metrics *observability.Metrics
}

func (p *metricsProvider) Name() string                         { return p.inner.Name() }
func (p *metricsProvider) IsAvailable(ctx context.Context) bool { return p.inner.IsAvailable(ctx) }

func (p *metricsProvider) Transcribe(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := p.inner.Transcribe(ctx, req)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		p.metrics.RecordError(ctx, string(errors.CodeOf(err)), p.inner.Name())
	}
	p.metrics.RecordOperation(ctx, p.inner.Name(), "transcribe", status, duration)

	return resp, err
}

// WithLogging wraps a Provider with call logging.
func WithLogging(p Provider, log *logger.Logger) Provider {
	return &loggingProvider{inner: p, log: log}
}

type loggingProvider struct {
	inner Provider
	log   *logger.Logger
}

func (p *loggingProvider) Name() string                         { return p.inner.Name() }
func (p *loggingProvider) IsAvailable(ctx context.Context) bool { return p.inner.IsAvailable(ctx) }

func (p *loggingProvider) Transcribe(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := p.inner.Transcribe(ctx, req)
	duration := time.Since(start)

	fields := map[string]interface{}{
		logger.FieldProvider: p.inner.Name(),
		logger.FieldDuration: duration.String(),
	}

	if err != nil {
		fields[logger.FieldError] = err.Error()
		p.log.Error("transcription failed", fields)
	} else {
		p.log.Debug("transcription completed", fields)
	}

	return resp, err
}
