package handler

import (
	"net/http"
	"slices"
	"strings"
)

// Methods dispatches a route to one handler per HTTP method. HEAD falls back
// to GET. Requests for other methods go to the fallback, or are answered 405
// with an Allow header when none is set.
//
//	r.Handle("/proposals/{id}", handler.NewMethods().
//		Get(handler.Wrap(show)).
//		Post(handler.Wrap(update, handler.WithBinders[handler.Context, UpdateRequest](binder.Form()))))
type Methods struct {
	handlers map[string]http.Handler
	fallback http.Handler
}

func NewMethods() *Methods {
	return &Methods{handlers: make(map[string]http.Handler)}
}

// Handle registers h for method, replacing an earlier registration.
func (m *Methods) Handle(method string, h http.Handler) *Methods {
	if h == nil {
		panic("handler: nil handler for method " + method)
	}
	m.handlers[strings.ToUpper(method)] = h
	return m
}

func (m *Methods) Get(h http.HandlerFunc) *Methods    { return m.Handle(http.MethodGet, h) }
func (m *Methods) Post(h http.HandlerFunc) *Methods   { return m.Handle(http.MethodPost, h) }
func (m *Methods) Put(h http.HandlerFunc) *Methods    { return m.Handle(http.MethodPut, h) }
func (m *Methods) Patch(h http.HandlerFunc) *Methods  { return m.Handle(http.MethodPatch, h) }
func (m *Methods) Delete(h http.HandlerFunc) *Methods { return m.Handle(http.MethodDelete, h) }

// Fallback handles methods without a registered handler.
func (m *Methods) Fallback(h http.Handler) *Methods {
	m.fallback = h
	return m
}

// Allowed lists the registered methods, sorted, including HEAD when GET is
// registered.
func (m *Methods) Allowed() []string {
	out := make([]string, 0, len(m.handlers)+1)
	for method := range m.handlers {
		out = append(out, method)
	}
	if _, ok := m.handlers[http.MethodGet]; ok {
		if _, ok := m.handlers[http.MethodHead]; !ok {
			out = append(out, http.MethodHead)
		}
	}
	slices.Sort(out)
	return out
}

func (m *Methods) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := m.handlers[r.Method]; ok {
		h.ServeHTTP(w, r)
		return
	}
	if r.Method == http.MethodHead {
		if h, ok := m.handlers[http.MethodGet]; ok {
			h.ServeHTTP(w, r)
			return
		}
	}
	if m.fallback != nil {
		m.fallback.ServeHTTP(w, r)
		return
	}
	w.Header().Set("Allow", strings.Join(m.Allowed(), ", "))
	http.Error(w, ErrMethodNotAllowed.Key, http.StatusMethodNotAllowed)
}
