package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const minSecretLength = 32

// Jar reads and writes cookies with shared default attributes and
// HMAC-SHA256 signing.
type Jar struct {
	secrets  [][]byte
	defaults Options
}

// New returns a Jar signing with secrets[0] and verifying with every secret,
// so older secrets stay valid during rotation.
func New(secrets []string, opts ...Option) (*Jar, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	keys := make([][]byte, 0, len(secrets))
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d bytes, need %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
		keys = append(keys, []byte(s))
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Jar{secrets: keys, defaults: defaults.with(opts)}, nil
}

func (j *Jar) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	o := j.defaults.with(opts)
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	})
}

func (j *Jar) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if errors.Is(err, http.ErrNoCookie) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

// Delete expires the cookie using the jar's path and domain.
func (j *Jar) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Path:     j.defaults.Path,
		Domain:   j.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   j.defaults.Secure,
		HttpOnly: j.defaults.HttpOnly,
		SameSite: j.defaults.SameSite,
	})
}

func (j *Jar) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) {
	j.Set(w, name, j.sign(value), opts...)
}

// GetSigned returns the cookie value if its signature matches any secret.
func (j *Jar) GetSigned(r *http.Request, name string) (string, error) {
	raw, err := j.Get(r, name)
	if err != nil {
		return "", err
	}
	return j.verify(raw)
}

func mac(key, value []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(value)
	return h.Sum(nil)
}

func (j *Jar) sign(value string) string {
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(value)) + "." + enc.EncodeToString(mac(j.secrets[0], []byte(value)))
}

func (j *Jar) verify(signed string) (string, error) {
	encValue, encSig, ok := strings.Cut(signed, ".")
	if !ok {
		return "", ErrInvalidFormat
	}
	value, err := base64.RawURLEncoding.DecodeString(encValue)
	if err != nil {
		return "", ErrInvalidFormat
	}
	sig, err := base64.RawURLEncoding.DecodeString(encSig)
	if err != nil {
		return "", ErrInvalidFormat
	}

	for _, key := range j.secrets {
		if hmac.Equal(sig, mac(key, value)) {
			return string(value), nil
		}
	}
	return "", ErrInvalidSignature
}
