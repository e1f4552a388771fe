package headers

import "net/http"

// Value computes a header value per request. ok=false leaves the header
// unset for that request.
type Value func(r *http.Request) (value string, ok bool)

// Static returns a Value that always yields v.
func Static(v string) Value {
	return func(*http.Request) (string, bool) { return v, true }
}

type entry struct {
	name  string
	value Value
}

// Set is an ordered list of response headers.
type Set struct {
	entries []entry
}

// New returns an empty Set.
func New() *Set { return &Set{} }

// Defaults returns the headers installed for HTML applications: caches vary
// on Cookie, framing is denied, a same-origin Content-Security-Policy, and
// an HTML content type that handlers may override.
func Defaults() *Set {
	return New().
		Add("Vary", "Cookie").
		Add("X-Frame-Options", "DENY").
		Add("Content-Security-Policy", "default-src 'self'; frame-src 'none'; object-src 'none'; img-src 'self' data:; style-src 'self' 'unsafe-inline'").
		Add("Content-Type", "text/html; charset=UTF-8")
}

// Add sets name to a fixed value, replacing an earlier entry for name.
func (s *Set) Add(name, value string) *Set {
	return s.AddFunc(name, Static(value))
}

// AddFunc sets name to a computed value, replacing an earlier entry for name.
// A nil fn removes the entry.
func (s *Set) AddFunc(name string, fn Value) *Set {
	name = http.CanonicalHeaderKey(name)
	for i, e := range s.entries {
		if e.name == name {
			if fn == nil {
				s.entries = append(s.entries[:i], s.entries[i+1:]...)
			} else {
				s.entries[i].value = fn
			}
			return s
		}
	}
	if fn != nil {
		s.entries = append(s.entries, entry{name: name, value: fn})
	}
	return s
}

// Remove drops the entry for name.
func (s *Set) Remove(name string) *Set {
	return s.AddFunc(name, nil)
}

// Apply writes the headers for r into h.
func (s *Set) Apply(h http.Header, r *http.Request) {
	for _, e := range s.entries {
		if v, ok := e.value(r); ok {
			h.Set(e.name, v)
		}
	}
}

// Middleware sets the headers before calling next, so handlers can still
// override them.
func (s *Set) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Apply(w.Header(), r)
		next.ServeHTTP(w, r)
	})
}
