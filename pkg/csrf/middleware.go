package csrf

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/slimkit/pkg/logger"
)

type options struct {
	logger       *slog.Logger
	errorHandler func(http.ResponseWriter, *http.Request, error)
	skip         func(*http.Request) bool
}

type Option func(*options)

// WithLogger sets the logger used for rejected requests.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithErrorHandler replaces the default 400 response. err wraps
// ErrInvalidToken for rejected requests and carries store failures
// otherwise.
func WithErrorHandler(h func(http.ResponseWriter, *http.Request, error)) Option {
	return func(o *options) {
		if h != nil {
			o.errorHandler = h
		}
	}
}

// WithSkip exempts matching requests from the token check. They still get a
// token in their context.
func WithSkip(fn func(*http.Request) bool) Option {
	return func(o *options) { o.skip = fn }
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	if errors.Is(err, ErrInvalidToken) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func unsafeMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// Middleware makes sure every client has a token in store, rejects unsafe
// requests that do not echo it back in the Param form field or the Header
// header, and exposes the token to handlers through Token.
func Middleware(store Store, opts ...Option) func(http.Handler) http.Handler {
	if store == nil {
		panic("csrf: nil store")
	}
	o := options{
		logger:       logger.Discard(),
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.With(logger.Component("csrf"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := store.Load(r)
			if errors.Is(err, ErrTokenNotFound) {
				token = NewToken()
				err = store.Save(w, r, token)
			}
			if err != nil {
				log.ErrorContext(r.Context(), "csrf token store failed", logger.Error(err))
				o.errorHandler(w, r, err)
				return
			}

			if unsafeMethod(r.Method) && (o.skip == nil || !o.skip(r)) {
				got := submittedToken(r)
				if got == "" {
					got = r.Header.Get(Header)
				}
				if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
					log.ErrorContext(r.Context(), "missing or invalid csrf token",
						logger.Method(r.Method),
						logger.Path(r.URL.Path),
						slog.Bool("provided", got != ""),
					)
					o.errorHandler(w, r, ErrInvalidToken)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), token)))
		})
	}
}

// maxFormBody matches the limit net/http applies to urlencoded bodies.
const maxFormBody = 10 << 20

// submittedToken reads Param from the request body. net/http only parses
// bodies of POST, PUT and PATCH, so urlencoded DELETE bodies are parsed
// here, stored in r.PostForm and put back for the next handler.
func submittedToken(r *http.Request) string {
	if r.Method != http.MethodDelete || r.PostForm != nil || r.Body == nil {
		return r.PostFormValue(Param)
	}
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt != "application/x-www-form-urlencoded" {
		return ""
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxFormBody))
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return ""
	}
	vals, err := url.ParseQuery(string(raw))
	if err != nil {
		return ""
	}
	r.PostForm = vals
	return vals.Get(Param)
}
