package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slimkit/pkg/logger"
	"github.com/dmitrymomot/slimkit/pkg/requestid"
)

func serve(t *testing.T, mw func(http.Handler) http.Handler, header, value string) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var seen string
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		req.Header.Set(header, value)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates ID when missing", func(t *testing.T) {
		t.Parallel()
		id, rec := serve(t, requestid.Middleware, requestid.Header, "")
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Header().Get(requestid.Header))
	})

	t.Run("reuses valid IDs", func(t *testing.T) {
		t.Parallel()
		for _, valid := range []string{"abc123", "test_request-id", "550e8400-e29b-41d4-a716-446655440000"} {
			id, rec := serve(t, requestid.Middleware, requestid.Header, valid)
			assert.Equal(t, valid, id)
			assert.Equal(t, valid, rec.Header().Get(requestid.Header))
		}
	})

	t.Run("replaces invalid IDs", func(t *testing.T) {
		t.Parallel()
		for _, invalid := range []string{
			"test@request#id",
			"test request id",
			"test/request/id",
			"<script>alert(1)</script>",
			strings.Repeat("a", 129),
		} {
			id, rec := serve(t, requestid.Middleware, requestid.Header, invalid)
			assert.NotEqual(t, invalid, id)
			assert.NotEmpty(t, id)
			assert.Equal(t, id, rec.Header().Get(requestid.Header))
		}
	})

	t.Run("custom header and generator", func(t *testing.T) {
		t.Parallel()
		mw := requestid.New(requestid.WithHeader("X-Trace-ID"), requestid.WithGenerator(func() string { return "fixed" }))

		id, rec := serve(t, mw, "X-Trace-ID", "")
		assert.Equal(t, "fixed", id)
		assert.Equal(t, "fixed", rec.Header().Get("X-Trace-ID"))
		assert.Empty(t, rec.Header().Get(requestid.Header))

		id, _ = serve(t, mw, "X-Trace-ID", "given")
		assert.Equal(t, "given", id)
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := requestid.WithContext(context.Background(), "test-id")
	assert.Equal(t, "test-id", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithTextFormatter(),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	log.InfoContext(context.Background(), "without")
	assert.NotContains(t, buf.String(), "request_id")

	log.InfoContext(requestid.WithContext(context.Background(), "abc"), "with")
	assert.Contains(t, buf.String(), "request_id=abc")
}
