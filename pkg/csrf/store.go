package csrf

import (
	"errors"
	"net/http"
	"sync"

	"github.com/dmitrymomot/slimkit/pkg/cookie"
)

// Store keeps one token per client.
type Store interface {
	// Load returns ErrTokenNotFound when the client has no token yet.
	Load(r *http.Request) (string, error)
	Save(w http.ResponseWriter, r *http.Request, token string) error
}

// CookieStore keeps the token in a signed cookie.
type CookieStore struct {
	jar  *cookie.Jar
	name string
}

// NewCookieStore returns a store writing the cookie name through jar.
func NewCookieStore(jar *cookie.Jar, name string) *CookieStore {
	if jar == nil {
		panic("csrf: nil cookie jar")
	}
	if name == "" {
		name = "_csrf"
	}
	return &CookieStore{jar: jar, name: name}
}

func (s *CookieStore) Load(r *http.Request) (string, error) {
	token, err := s.jar.GetSigned(r, s.name)
	if errors.Is(err, cookie.ErrNotFound) || errors.Is(err, cookie.ErrInvalidSignature) || errors.Is(err, cookie.ErrInvalidFormat) {
		return "", ErrTokenNotFound
	}
	return token, err
}

func (s *CookieStore) Save(w http.ResponseWriter, _ *http.Request, token string) error {
	s.jar.SetSigned(w, s.name, token)
	return nil
}

// MemoryStore keeps tokens in process memory keyed by a client identifier,
// such as a session ID. Requests whose key is empty never get a token stored.
type MemoryStore struct {
	key    func(*http.Request) string
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemoryStore(key func(*http.Request) string) *MemoryStore {
	if key == nil {
		panic("csrf: nil client key func")
	}
	return &MemoryStore{key: key, tokens: make(map[string]string)}
}

func (s *MemoryStore) Load(r *http.Request) (string, error) {
	k := s.key(r)
	if k == "" {
		return "", ErrTokenNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[k]
	if !ok {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (s *MemoryStore) Save(_ http.ResponseWriter, r *http.Request, token string) error {
	k := s.key(r)
	if k == "" {
		return nil
	}
	s.mu.Lock()
	s.tokens[k] = token
	s.mu.Unlock()
	return nil
}

// Forget drops the token stored for key, e.g. on logout.
func (s *MemoryStore) Forget(key string) {
	s.mu.Lock()
	delete(s.tokens, key)
	s.mu.Unlock()
}
