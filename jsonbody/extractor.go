package jsonbody

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Roshick/go-autumn-payload/deserr"
	weberrors "github.com/Roshick/go-autumn-payload/errors"
	"github.com/Roshick/go-autumn-payload/logging"
	aulogging "github.com/StephanHCB/go-autumn-logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ErrAborted is returned when the request was cancelled before its body was
// fully read. No response error exists for it; the client is gone.
var ErrAborted = errors.New("request body extraction aborted")

// Extraction holds the typed result of a successful extraction. E records
// which error contract validated the value.
type Extraction[T any, E deserr.DeserializeError] struct {
	value T
}

func (e Extraction[T, E]) IntoInner() T {
	return e.value
}

// Extractor //

type ExtractorOptions struct {
	Collector Collector
	// MeterProvider and TracerProvider default to the otel globals.
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

func DefaultExtractorOptions() *ExtractorOptions {
	return &ExtractorOptions{
		Collector: NewBodyCollector(nil),
	}
}

// Extractor turns request bodies into T. It keeps no per-request state and is
// safe for concurrent use.
type Extractor[T any, E deserr.DeserializeError, P deserr.FromValue[T, E]] struct {
	collector Collector
	target    string
	telemetry *telemetry
}

func NewExtractor[T any, E deserr.DeserializeError, P deserr.FromValue[T, E]](opts *ExtractorOptions) *Extractor[T, E, P] {
	if opts == nil {
		opts = DefaultExtractorOptions()
	}
	collector := opts.Collector
	if collector == nil {
		collector = NewBodyCollector(nil)
	}

	var zero T
	return &Extractor[T, E, P]{
		collector: collector,
		target:    fmt.Sprintf("%T", zero),
		telemetry: newTelemetry(opts.MeterProvider, opts.TracerProvider),
	}
}

// Extract reads the body of req and converts it into T.
//
// A body that cannot be collected or parsed yields a *errors.ResponseError
// with code MalformedPayload. A parsed body rejected by T yields the response
// error of the E it was rejected with. If the request context ends while the
// body is being read, the returned error wraps ErrAborted and T is never
// deserialized.
func (x *Extractor[T, E, P]) Extract(req *http.Request) (Extraction[T, E], error) {
	ctx, span := x.telemetry.tracer.Start(req.Context(), "jsonbody.Extract",
		trace.WithAttributes(attribute.String("jsonbody.target", x.target)))
	defer span.End()
	start := time.Now()

	value, err := x.collector.Collect(req.WithContext(ctx))
	if err != nil {
		if cause := context.Cause(ctx); cause != nil {
			x.telemetry.record(ctx, req, x.target, outcomeAborted, "", start)
			span.SetStatus(codes.Error, "aborted")
			aulogging.Logger.Ctx(x.logContext(ctx, outcomeAborted, "")).Info().WithErr(cause).Printf("request body extraction for %s aborted", x.target)
			return Extraction[T, E]{}, fmt.Errorf("%w: %w", ErrAborted, cause)
		}
		responseErr := weberrors.NewMalformedPayloadResponse(err)
		x.reject(ctx, span, req, outcomeMalformed, responseErr, start)
		return Extraction[T, E]{}, responseErr
	}

	result, deserializeErr := deserr.Deserialize[T, E, P](value)
	var none E
	if deserializeErr != none {
		responseErr := deserializeErr.ResponseError()
		if responseErr == nil {
			responseErr = weberrors.NewInternalResponse()
		}
		x.reject(ctx, span, req, outcomeInvalid, responseErr, start)
		return Extraction[T, E]{}, responseErr
	}

	x.telemetry.record(ctx, req, x.target, outcomeSuccess, "", start)
	return Extraction[T, E]{value: result}, nil
}

func (x *Extractor[T, E, P]) reject(ctx context.Context, span trace.Span, req *http.Request, result outcome, responseErr *weberrors.ResponseError, start time.Time) {
	x.telemetry.record(ctx, req, x.target, result, responseErr.Code, start)
	span.SetStatus(codes.Error, responseErr.Code)
	aulogging.Logger.Ctx(x.logContext(ctx, result, responseErr.Code)).Debug().Printf("rejected request body for %s: %s", x.target, responseErr.Message)
}

func (x *Extractor[T, E, P]) logContext(ctx context.Context, result outcome, code string) context.Context {
	args := []any{
		logging.LogFieldPayloadTarget, x.target,
		logging.LogFieldPayloadOutcome, string(result),
		logging.LogFieldLogger, "request.body",
	}
	if code != "" {
		args = append(args, logging.LogFieldErrorCode, code)
	}
	return logging.ContextWithFields(ctx, args...)
}

// Extract reads the body of req into T with default options. Every call builds
// a new collector and new telemetry instruments; long-lived callers such as
// handlers should create one Extractor with NewExtractor and reuse it.
func Extract[T any, E deserr.DeserializeError, P deserr.FromValue[T, E]](req *http.Request) (Extraction[T, E], error) {
	return NewExtractor[T, E, P](nil).Extract(req)
}
