package bridge

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/viant/ue5-mcp-bridge/bridge"

// Observer records tool invocations into OpenTelemetry.
type Observer struct {
	tracer      trace.Tracer
	invocations metric.Int64Counter
	latency     metric.Float64Histogram
}

// NewObserver creates an observer bound to meter and tracer.
func NewObserver(meter metric.Meter, tracer trace.Tracer) (*Observer, error) {
	invocations, err := meter.Int64Counter(
		"ue5.tool.invocations",
		metric.WithDescription("Number of tool invocations"),
	)
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram(
		"ue5.tool.latency",
		metric.WithDescription("Tool latency in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	return &Observer{tracer: tracer, invocations: invocations, latency: latency}, nil
}

// defaultObserver uses the global providers.
func defaultObserver() *Observer {
	ret, err := NewObserver(otel.GetMeterProvider().Meter(instrumentationName), otel.GetTracerProvider().Tracer(instrumentationName))
	if err != nil {
		otel.Handle(err)
		return &Observer{tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
	}
	return ret
}

func (o *Observer) start(ctx context.Context, tool string) (context.Context, trace.Span) {
	return o.tracer.Start(ctx, "ue5.tool.invoke",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("tool_name", tool)))
}

func (o *Observer) finish(ctx context.Context, span trace.Span, tool, method string, result *Result, elapsed time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("tool_name", tool),
		attribute.Bool("success", !result.Failed()),
	}
	if method != "" {
		attrs = append(attrs, attribute.String("rpc.method", method))
	}
	if result.Failed() {
		attrs = append(attrs, attribute.String("error_kind", string(result.Failure.Kind)))
		span.SetStatus(codes.Error, result.Failure.Message)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.SetAttributes(attrs...)
	span.End()

	options := metric.WithAttributes(attrs...)
	if o.invocations != nil {
		o.invocations.Add(ctx, 1, options)
	}
	if o.latency != nil {
		o.latency.Record(ctx, elapsed.Seconds(), options)
	}
}
