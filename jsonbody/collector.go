package jsonbody

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Roshick/go-autumn-payload/header"
	"github.com/valyala/fastjson"
)

const DefaultMaxBodyBytes int64 = 10 << 20

var (
	ErrBodyRead             = errors.New("failed to read request body")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
)

// Collector reads a request body and parses it into an untyped JSON value.
type Collector interface {
	Collect(req *http.Request) (*fastjson.Value, error)
}

// BodyCollector //

type BodyCollectorOptions struct {
	// MaxBodyBytes limits the body size; zero or less disables the limit.
	MaxBodyBytes int64
	// ContentTypes lists the accepted media types; empty accepts any.
	ContentTypes []string
}

func DefaultBodyCollectorOptions() *BodyCollectorOptions {
	return &BodyCollectorOptions{
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

type BodyCollector struct {
	opts *BodyCollectorOptions
}

func NewBodyCollector(opts *BodyCollectorOptions) *BodyCollector {
	if opts == nil {
		opts = DefaultBodyCollectorOptions()
	}
	return &BodyCollector{opts: opts}
}

// Collect reads the whole body, stopping early once the request context is
// done. In that case the context cause is returned and nothing is parsed.
func (c *BodyCollector) Collect(req *http.Request) (*fastjson.Value, error) {
	ctx := req.Context()
	if cause := context.Cause(ctx); cause != nil {
		return nil, cause
	}

	if err := c.checkContentType(req); err != nil {
		return nil, err
	}

	limit := c.opts.MaxBodyBytes
	if limit > 0 && req.ContentLength > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, limit)
	}

	var body []byte
	if req.Body != nil {
		var reader io.Reader = &contextReader{ctx: ctx, reader: req.Body}
		if limit > 0 {
			reader = io.LimitReader(reader, limit+1)
		}

		var err error
		if body, err = io.ReadAll(reader); err != nil {
			if cause := context.Cause(ctx); cause != nil {
				return nil, cause
			}
			return nil, fmt.Errorf("%w: %w", ErrBodyRead, err)
		}
	}

	if limit > 0 && int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, limit)
	}

	// fastjson.Parse accepts NaN and Inf and does not check encoding.
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid UTF-8", ErrInvalidJSON)
	}
	if err := fastjson.ValidateBytes(body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	value, err := fastjson.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return value, nil
}

func (c *BodyCollector) checkContentType(req *http.Request) error {
	if len(c.opts.ContentTypes) == 0 {
		return nil
	}

	contentType := req.Header.Get(header.ContentType)
	if contentType == "" {
		return fmt.Errorf("%w: missing %s header, expected one of %s", ErrUnsupportedMediaType, header.ContentType, strings.Join(c.opts.ContentTypes, ", "))
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedMediaType, err)
	}
	if !slices.Contains(c.opts.ContentTypes, mediaType) {
		return fmt.Errorf("%w: got %s, expected one of %s", ErrUnsupportedMediaType, mediaType, strings.Join(c.opts.ContentTypes, ", "))
	}
	return nil
}

type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (r *contextReader) Read(p []byte) (int, error) {
	if cause := context.Cause(r.ctx); cause != nil {
		return 0, cause
	}
	return r.reader.Read(p)
}
