package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slimkit/pkg/cookie"
)

const (
	secret    = "this-is-a-very-long-secret-key-32-chars-long"
	oldSecret = "this-is-old-very-long-secret-key-32-chars-ok"
)

// roundTrip copies cookies written to rec into a fresh request.
func roundTrip(rec *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{"no secrets", nil, cookie.ErrNoSecret},
		{"blank secrets", []string{"", ""}, cookie.ErrNoSecret},
		{"short secret", []string{"short"}, cookie.ErrSecretTooShort},
		{"short rotated secret", []string{secret, "short"}, cookie.ErrSecretTooShort},
		{"valid", []string{secret}, nil},
		{"rotation", []string{secret, oldSecret}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cookie.New(tt.secrets)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestJar_SetGet(t *testing.T) {
	t.Parallel()

	jar, err := cookie.New([]string{secret}, cookie.WithSecure(true))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	jar.Set(rec, "theme", "dark", cookie.WithMaxAge(60))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "dark", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 60, c.MaxAge)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	got, err := jar.Get(roundTrip(rec), "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	_, err = jar.Get(httptest.NewRequest(http.MethodGet, "/", nil), "theme")
	assert.ErrorIs(t, err, cookie.ErrNotFound)
}

func TestJar_Signed(t *testing.T) {
	t.Parallel()

	jar, err := cookie.New([]string{secret})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	jar.SetSigned(rec, "token", "abc|123.x")
	assert.NotContains(t, rec.Result().Cookies()[0].Value, "abc|123")

	got, err := jar.GetSigned(roundTrip(rec), "token")
	require.NoError(t, err)
	assert.Equal(t, "abc|123.x", got)
}

func TestJar_SignedTampering(t *testing.T) {
	t.Parallel()

	jar, err := cookie.New([]string{secret})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	jar.SetSigned(rec, "token", "value")
	signed := rec.Result().Cookies()[0].Value
	encValue, encSig, _ := strings.Cut(signed, ".")

	tests := map[string]struct {
		value string
		want  error
	}{
		"unsigned":         {"value", cookie.ErrInvalidFormat},
		"bad encoding":     {"!!." + encSig, cookie.ErrInvalidFormat},
		"bad sig encoding": {encValue + ".!!", cookie.ErrInvalidFormat},
		"swapped value":    {"b3RoZXI." + encSig, cookie.ErrInvalidSignature},
		"truncated sig":    {encValue + "." + encSig[:10], cookie.ErrInvalidSignature},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(&http.Cookie{Name: "token", Value: tt.value})
			_, err := jar.GetSigned(r, "token")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestJar_SecretRotation(t *testing.T) {
	t.Parallel()

	old, err := cookie.New([]string{oldSecret})
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	old.SetSigned(rec, "token", "value")

	rotated, err := cookie.New([]string{secret, oldSecret})
	require.NoError(t, err)
	got, err := rotated.GetSigned(roundTrip(rec), "token")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	fresh, err := cookie.New([]string{secret})
	require.NoError(t, err)
	_, err = fresh.GetSigned(roundTrip(rec), "token")
	assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
}

func TestJar_Delete(t *testing.T) {
	t.Parallel()

	jar, err := cookie.New([]string{secret}, cookie.WithPath("/app"), cookie.WithDomain("example.com"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	jar.Delete(rec, "token")

	c := rec.Result().Cookies()[0]
	assert.Equal(t, "token", c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.Equal(t, "/app", c.Path)
	assert.Equal(t, "example.com", c.Domain)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := cookie.Config{
		Secrets:  " " + secret + " ,, " + oldSecret,
		Path:     "/",
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
	assert.Equal(t, []string{secret, oldSecret}, cfg.SecretList())

	jar, err := cookie.NewFromConfig(cfg, cookie.WithHTTPOnly(false))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	jar.Set(rec, "a", "b")
	c := rec.Result().Cookies()[0]
	assert.True(t, c.Secure)
	assert.False(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)

	_, err = cookie.NewFromConfig(cookie.Config{})
	assert.ErrorIs(t, err, cookie.ErrNoSecret)
}
