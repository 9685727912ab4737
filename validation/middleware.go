package validation

import (
	"errors"
	"net/http"

	"github.com/Roshick/go-autumn-payload/deserr"
	weberrors "github.com/Roshick/go-autumn-payload/errors"
	"github.com/Roshick/go-autumn-payload/jsonbody"
	"github.com/go-chi/render"
)

// ContextRequestBodyMiddleware //

type ContextRequestBodyMiddlewareOptions struct {
	Extractor *jsonbody.ExtractorOptions
}

func DefaultContextRequestBodyMiddlewareOptions() *ContextRequestBodyMiddlewareOptions {
	return &ContextRequestBodyMiddlewareOptions{
		Extractor: jsonbody.DefaultExtractorOptions(),
	}
}

// NewContextRequestBodyMiddleware extracts T from the request body and makes it
// available through RequestBodyFromContext. Rejected bodies are answered with
// the rendered response error; aborted requests get no response at all.
func NewContextRequestBodyMiddleware[T any, E deserr.DeserializeError, P deserr.FromValue[T, E]](opts *ContextRequestBodyMiddlewareOptions) func(next http.Handler) http.Handler {
	if opts == nil {
		opts = DefaultContextRequestBodyMiddlewareOptions()
	}
	extractor := jsonbody.NewExtractor[T, E, P](opts.Extractor)

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, req *http.Request) {
			extraction, err := extractor.Extract(req)
			if err != nil {
				var responseErr *weberrors.ResponseError
				if !errors.As(err, &responseErr) {
					return
				}
				if err = render.Render(w, req, responseErr); err != nil {
					panic(err)
				}
				return
			}
			ctx := contextWithRequestBody(req.Context(), extraction.IntoInner())
			next.ServeHTTP(w, req.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
