package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/trace"
)

// Endpoint is where one kind of signal is exported to. The grpc endpoint
// wins when both are set, with neither set the exporter falls back to the
// OTEL_EXPORTER_OTLP_* environment variables over http.
type Endpoint struct {
	GrpcEndpoint string            `json:"grpc_endpoint"`
	HttpEndpoint string            `json:"http_endpoint"`
	Headers      map[string]string `json:"headers"`
}

func (e Endpoint) grpc() bool {
	return e.GrpcEndpoint != ""
}

type Exporters struct {
	Traces  Endpoint `json:"traces"`
	Metrics Endpoint `json:"metrics"`
}

// Config is the contents of telemetry.json5.
type Config struct {
	Otlp Exporters `json:"otlp"`
}

func newSpanExporter(ctx context.Context, e Endpoint) (trace.SpanExporter, error) {
	slog.Debug("span exporter", "grpc", e.grpc(), "grpc_endpoint", e.GrpcEndpoint, "http_endpoint", e.HttpEndpoint)

	if e.grpc() {
		return otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpointURL(e.GrpcEndpoint),
			otlptracegrpc.WithHeaders(e.Headers),
		)
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithHeaders(e.Headers)}
	if e.HttpEndpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpointURL(e.HttpEndpoint))
	}
	return otlptracehttp.New(ctx, opts...)
}

func newMetricExporter(ctx context.Context, e Endpoint) (metric.Exporter, error) {
	slog.Debug("metric exporter", "grpc", e.grpc(), "grpc_endpoint", e.GrpcEndpoint, "http_endpoint", e.HttpEndpoint)

	if e.grpc() {
		return otlpmetricgrpc.New(
			ctx,
			otlpmetricgrpc.WithEndpointURL(e.GrpcEndpoint),
			otlpmetricgrpc.WithHeaders(e.Headers),
		)
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithHeaders(e.Headers)}
	if e.HttpEndpoint != "" {
		opts = append(opts, otlpmetrichttp.WithEndpointURL(e.HttpEndpoint))
	}
	return otlpmetrichttp.New(ctx, opts...)
}
