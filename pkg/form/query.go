package form

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"slices"
	"strings"
)

// Params is an ordered set of query parameters. Unlike url.Values it keeps
// keys in insertion order, so encoded links are stable and readable.
type Params struct {
	keys   []string
	values map[string][]string
}

// NewParams creates Params from alternating key/value pairs. Values are
// formatted with fmt; a slice or Indexed value yields a multi-valued key.
// It panics if pairs has an odd length or a key is not a string.
func NewParams(pairs ...any) *Params {
	if len(pairs)%2 != 0 {
		panic(fmt.Errorf("form: NewParams: odd number of arguments"))
	}
	p := &Params{values: make(map[string][]string)}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Errorf("form: NewParams: key %v is not a string", pairs[i]))
		}
		p.Set(key, pairs[i+1])
	}
	return p
}

func (p *Params) init() {
	if p.values == nil {
		p.values = make(map[string][]string)
	}
}

func toStrings(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		return slices.Clone(val)
	case []any:
		out := make([]string, 0, len(val))
		for _, el := range val {
			out = append(out, toString(el))
		}
		return out
	case Indexed:
		return toStrings(val.Slice())
	case []byte:
		return []string{string(val)}
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			out = append(out, toString(rv.Index(i).Interface()))
		}
		return out
	}
	return []string{toString(v)}
}

func toString(v any) string {
	if s, ok := scalar(v); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Set replaces the values of key. An existing key keeps its position;
// a new key is appended.
func (p *Params) Set(key string, value any) *Params {
	p.init()
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = toStrings(value)
	return p
}

// Add appends value to the values of key.
func (p *Params) Add(key string, value any) *Params {
	p.init()
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = append(p.values[key], toStrings(value)...)
	return p
}

// Get returns the first value of key, or "".
func (p *Params) Get(key string) string {
	if p == nil || len(p.values[key]) == 0 {
		return ""
	}
	return p.values[key][0]
}

// Values returns all values of key.
func (p *Params) Values(key string) []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.values[key])
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p.values[key]
	return ok
}

// Del removes key.
func (p *Params) Del(key string) *Params {
	if !p.Has(key) {
		return p
	}
	delete(p.values, key)
	p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == key })
	return p
}

// Keys returns the keys in order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.keys)
}

// Clone returns a deep copy of p.
func (p *Params) Clone() *Params {
	out := &Params{values: make(map[string][]string)}
	if p == nil {
		return out
	}
	out.keys = slices.Clone(p.keys)
	for k, v := range p.values {
		out.values[k] = slices.Clone(v)
	}
	return out
}

// Merge returns a copy of p where every key of other replaces the key in p
// or is appended when p does not have it.
func (p *Params) Merge(other *Params) *Params {
	out := p.Clone()
	if other == nil {
		return out
	}
	for _, k := range other.keys {
		out.Set(k, other.values[k])
	}
	return out
}

// Without returns a copy of p without the given keys.
func (p *Params) Without(keys ...string) *Params {
	out := p.Clone()
	for _, k := range keys {
		out.Del(k)
	}
	return out
}

// Encode renders p as a query string. Multi-valued keys repeat once per
// value and spaces become '+'. Keys without values are omitted.
func (p *Params) Encode() string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	for _, k := range p.keys {
		ek := url.QueryEscape(k)
		for _, v := range p.values[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(ek)
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}

func (p *Params) String() string {
	return p.Encode()
}

// ParseQuery parses a raw query string keeping the order of first
// appearance. Empty segments are skipped; a malformed escape sequence
// returns ErrInvalidQuery together with the pairs parsed so far.
func ParseQuery(raw string) (*Params, error) {
	p := &Params{values: make(map[string][]string)}
	raw = strings.TrimPrefix(raw, "?")

	var errs []error
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidQuery, k, err))
			continue
		}
		val, err := url.QueryUnescape(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidQuery, v, err))
			continue
		}
		p.Add(key, val)
	}
	return p, errors.Join(errs...)
}

// URLEncode renders p as a query string.
func URLEncode(p *Params) string {
	return p.Encode()
}

// QSMerge returns the query string of r with the keys of p replaced or
// appended.
func QSMerge(r *http.Request, p *Params) string {
	return currentQuery(r).Merge(p).Encode()
}

// QSRemove returns the query string of r without the given keys.
func QSRemove(r *http.Request, keys ...string) string {
	return currentQuery(r).Without(keys...).Encode()
}

// currentQuery parses the query of r leniently; malformed pairs are skipped.
func currentQuery(r *http.Request) *Params {
	if r == nil || r.URL == nil {
		return &Params{values: make(map[string][]string)}
	}
	p, _ := ParseQuery(r.URL.RawQuery)
	return p
}
