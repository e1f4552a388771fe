package binder_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slimkit/binder"
	"github.com/dmitrymomot/slimkit/pkg/form"
)

func postJSON(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")
	return r
}

func TestJSON_Struct(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
		Qty  int    `json:"qty"`
	}

	var p payload
	require.NoError(t, binder.JSON()(postJSON(`{"name":"pen","qty":3}`), &p))
	assert.Equal(t, payload{Name: "pen", Qty: 3}, p)

	err := binder.JSON()(postJSON(`{"name":"pen","extra":1}`), &payload{})
	assert.ErrorIs(t, err, binder.ErrInvalidJSON)

	err = binder.JSON()(postJSON(`{"name":`), &payload{})
	assert.ErrorIs(t, err, binder.ErrInvalidJSON)

	err = binder.JSON()(postJSON("  "), &payload{})
	assert.ErrorIs(t, err, binder.ErrInvalidJSON)
}

func TestJSON_Expecter(t *testing.T) {
	t.Parallel()

	var req signup
	body := `{"email":"bob@example.com","age":30,"tags":["a","b"],"tos":true}`
	require.NoError(t, binder.JSON()(postJSON(body), &req))
	assert.Equal(t, "bob@example.com", req.Email)
	assert.Equal(t, 30, req.Age)
	assert.Equal(t, []string{"a", "b"}, req.Tags)
	assert.True(t, req.TOS)

	err := binder.JSON()(postJSON(`{"email":null,"age":1.5,"tags":[1,{"x":1}],"tos":false}`), &signup{})
	var verr *form.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"email", "tos"}, verr.Fields)

	err = binder.JSON()(postJSON(`[1,2]`), &signup{})
	assert.ErrorIs(t, err, binder.ErrInvalidJSON)
}

func TestJSON_NotApplicable(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a=b"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	assert.ErrorIs(t, binder.JSON()(r, &signup{}), binder.ErrBinderNotApplicable)
}
