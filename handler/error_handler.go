package handler

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrymomot/slimkit/binder"
	"github.com/dmitrymomot/slimkit/pkg/form"
	"github.com/dmitrymomot/slimkit/pkg/logger"
)

// Classify maps err to a status code and a machine readable key.
func Classify(err error) (int, string) {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, httpErr.Key
	case errors.Is(err, form.ErrValidationFailed):
		return http.StatusUnprocessableEntity, "validation_error"
	case errors.Is(err, form.ErrInvalidInput),
		errors.Is(err, binder.ErrInvalidJSON):
		return http.StatusBadRequest, ErrBadRequest.Key
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, ErrUnsupportedMedia.Key
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the body.
		return 499, "client_closed_request"
	}
	return http.StatusInternalServerError, ErrInternalServerError.Key
}

func wantsJSON(r *http.Request) bool {
	for part := range strings.SplitSeq(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && (mt == "application/json" || strings.HasSuffix(mt, "+json")) {
			return true
		}
	}
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mt == "application/json"
}

// NewErrorHandler logs err and renders it as JSON for API clients or plain
// text otherwise. Client errors log at warn, server errors at error. Server
// error bodies never include err's text.
func NewErrorHandler[C Context](log *slog.Logger) ErrorHandler[C] {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("handler"))

	return func(ctx C, err error) {
		r, w := ctx.Request(), ctx.ResponseWriter()
		status, key := Classify(err)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.Log(ctx, level, "request failed",
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Status(status),
			logger.Error(err),
		)

		if wantsJSON(r) {
			if rerr := JSONError(err).Render(w, r); rerr != nil {
				log.ErrorContext(ctx, "render error response", logger.Error(rerr))
			}
			return
		}

		msg := http.StatusText(status)
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			msg = verr.Error()
		}
		if msg == "" {
			msg = key
		}
		http.Error(w, msg, status)
	}
}
