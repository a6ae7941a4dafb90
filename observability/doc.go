// Package observability provides OpenTelemetry tracing and metrics
// integration for the speechkit pipeline.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("speechkit"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, &cfg)
//	metrics, err := observability.NewMetrics(observability.Meter("speechkit"))
//
// Providers are wrapped with tracing/metrics via the middleware in the
// transcription package; nothing here is wired unless the host
// initializes it.
package observability
