package binder_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slimkit/binder"
	"github.com/dmitrymomot/slimkit/pkg/form"
)

type signup struct {
	Email string
	Age   int
	Tags  []string
	TOS   bool

	loaded int
}

func (s *signup) Expect(f *form.Form) {
	f.RequireEmail("email").
		ExpectInt("age", form.WithDefault(18)).
		ExpectStringArray("tags").
		RequireTrue("tos")
}

func (s *signup) Load(f *form.Form) {
	s.Email = f.String("email")
	s.Age = f.Int("age")
	s.Tags = f.Strings("tags")
	s.TOS = f.Bool("tos")
	s.loaded++
}

type search struct {
	Query string
	Page  int
	ID    int
}

func (s *search) Expect(f *form.Form) {
	f.ExpectString("q").ExpectInt("page", form.WithDefault(1)).ExpectInt("id")
}

func (s *search) Load(f *form.Form) {
	s.Query, s.Page, s.ID = f.String("q"), f.Int("page"), f.Int("id")
}

func postForm(target string, body url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		r := postForm("/", url.Values{
			"email":  {"bob@example.com"},
			"tags[]": {"go", "web"},
			"tos":    {"on"},
		})
		var req signup
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "bob@example.com", req.Email)
		assert.Equal(t, 18, req.Age)
		assert.Equal(t, []string{"go", "web"}, req.Tags)
		assert.True(t, req.TOS)
		assert.Equal(t, 1, req.loaded)
	})

	t.Run("invalid", func(t *testing.T) {
		r := postForm("/", url.Values{
			"email":  {"nope"},
			"age":    {"x"},
			"tags[]": {"ok"},
		})
		var req signup
		err := binder.Form()(r, &req)
		require.Error(t, err)
		assert.ErrorIs(t, err, form.ErrValidationFailed)

		var verr *form.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"email", "tos"}, verr.Fields, "optional fields drop bad values")
		assert.Zero(t, req.loaded, "Load is skipped on failure")
	})

	t.Run("not applicable", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "application/json")
		assert.ErrorIs(t, binder.Form()(r, &signup{}), binder.ErrBinderNotApplicable)

		r = httptest.NewRequest(http.MethodGet, "/", nil)
		assert.ErrorIs(t, binder.Form()(r, &signup{}), binder.ErrBinderNotApplicable)
	})

	t.Run("malformed body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email=%zz"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.ErrorIs(t, binder.Form()(r, &signup{}), form.ErrInvalidInput)
	})

	t.Run("not an expecter", func(t *testing.T) {
		var plain struct{ Email string }
		err := binder.Form()(postForm("/", url.Values{"email": {"a@b.co"}}), &plain)
		assert.ErrorIs(t, err, binder.ErrNotExpecter)
	})

	t.Run("with query", func(t *testing.T) {
		r := postForm("/search?q=from-query&page=2", url.Values{"page": {"3"}})
		var req search
		require.NoError(t, binder.Form(binder.WithQuery())(r, &req))
		assert.Equal(t, "from-query", req.Query)
		assert.Equal(t, 3, req.Page, "body wins over query")
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	var req search
	r := httptest.NewRequest(http.MethodGet, "/search?q=golang", nil)
	require.NoError(t, binder.Query()(r, &req))
	assert.Equal(t, "golang", req.Query)
	assert.Equal(t, 1, req.Page)

	r = httptest.NewRequest(http.MethodGet, "/search?page=two", nil)
	require.NoError(t, binder.Query()(r, &req))
	assert.Equal(t, 1, req.Page, "invalid optional value falls back to default")

	r = httptest.NewRequest(http.MethodGet, "/signup?email=bad", nil)
	err := binder.Query()(r, &signup{})
	var verr *form.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"email", "tos"}, verr.Fields)
}

func TestWithPathParams(t *testing.T) {
	t.Parallel()

	params := map[string]string{"id": "42"}
	param := func(_ *http.Request, name string) string { return params[name] }

	var req search
	r := httptest.NewRequest(http.MethodGet, "/items/42?id=7&q=x", nil)
	require.NoError(t, binder.Query(binder.WithPathParams(param))(r, &req))
	assert.Equal(t, 42, req.ID, "path wins over query")
	assert.Equal(t, "x", req.Query)
}

func TestWithFormOptions(t *testing.T) {
	t.Parallel()

	hooked := false
	b := binder.Query(binder.WithFormOptions(form.WithHook(func(f *form.Form) {
		hooked = true
		if f.Int("page") > 100 {
			f.AddError("page")
		}
	})))

	err := b(httptest.NewRequest(http.MethodGet, "/?page=101", nil), &search{})
	assert.True(t, hooked)
	assert.ErrorIs(t, err, form.ErrValidationFailed)
}

func TestFreshFormPerRequest(t *testing.T) {
	t.Parallel()

	b := binder.Query()
	require.Error(t, b(httptest.NewRequest(http.MethodGet, "/?email=bad", nil), &signup{}))
	assert.NoError(t, b(httptest.NewRequest(http.MethodGet, "/?email=a@example.com&tos=1", nil), &signup{}))
}
