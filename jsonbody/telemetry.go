package jsonbody

import (
	"context"
	"net/http"
	"strings"
	"time"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/Roshick/go-autumn-payload/jsonbody"

type outcome string

const (
	outcomeSuccess   outcome = "success"
	outcomeMalformed outcome = "malformed"
	outcomeInvalid   outcome = "invalid"
	outcomeAborted   outcome = "aborted"
)

type telemetry struct {
	tracer      trace.Tracer
	extractions metric.Int64Counter
	durations   metric.Float64Histogram
}

func newTelemetry(meterProvider metric.MeterProvider, tracerProvider trace.TracerProvider) *telemetry {
	if meterProvider == nil {
		meterProvider = otel.GetMeterProvider()
	}
	if tracerProvider == nil {
		tracerProvider = otel.GetTracerProvider()
	}
	t := &telemetry{
		tracer: tracerProvider.Tracer(instrumentationName),
	}

	meter := meterProvider.Meter(instrumentationName)
	extractions, err := meter.Int64Counter(
		"http.server.request.body.extractions",
		metric.WithDescription("Number of request body extractions, partitioned by outcome, error code, target type and route."),
	)
	if err != nil {
		aulogging.Logger.NoCtx().Error().WithErr(err).Print("failed to initialize request body extraction counter")
	} else {
		t.extractions = extractions
	}

	durations, err := meter.Float64Histogram(
		"http.server.request.body.extraction.seconds",
		metric.WithDescription("How long it took to read, parse and validate request bodies."),
		metric.WithUnit("s"),
	)
	if err != nil {
		aulogging.Logger.NoCtx().Error().WithErr(err).Print("failed to initialize request body extraction histogram")
	} else {
		t.durations = durations
	}

	return t
}

func (t *telemetry) record(ctx context.Context, req *http.Request, target string, result outcome, code string, start time.Time) {
	attributes := metric.WithAttributes(
		attribute.String("outcome", string(result)),
		attribute.String("code", code),
		attribute.String("target", target),
		attribute.String("route", routePattern(req)),
	)
	if t.extractions != nil {
		t.extractions.Add(ctx, 1, attributes)
	}
	if t.durations != nil {
		t.durations.Record(ctx, time.Since(start).Seconds(), attributes)
	}
}

func routePattern(req *http.Request) string {
	routeCtx := chi.RouteContext(req.Context())
	if routeCtx == nil {
		return req.URL.Path
	}
	pattern := strings.Join(routeCtx.RoutePatterns, "")
	return strings.Replace(pattern, "/*/", "/", -1)
}
