package csrf

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

const (
	// Param is the form field carrying the token on unsafe requests.
	Param = "csrf_token"
	// Header is checked when the form field is absent.
	Header = "X-CSRF-Token"
)

type ctxKey struct{}

// NewToken returns 64 hex characters from two random UUIDs.
func NewToken() string {
	a, b := uuid.New(), uuid.New()
	return strings.ReplaceAll(a.String()+b.String(), "-", "")
}

// WithToken stores token in ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

// Token returns the request's token, or "" outside the middleware.
func Token(ctx context.Context) string {
	token, _ := ctx.Value(ctxKey{}).(string)
	return token
}

// TemplateData returns the field name and token for rendering hidden inputs.
func TemplateData(ctx context.Context) map[string]string {
	return map[string]string{
		"csrf_param": Param,
		"csrf_token": Token(ctx),
	}
}
