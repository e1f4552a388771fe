package form

import (
	"errors"
	"fmt"
	"maps"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// DefaultMaxMemory is the multipart memory limit used by InputFromRequest.
const DefaultMaxMemory = 10 << 20

// Input maps field names to raw values. A value is either a scalar (usually
// a string, number or bool) or a sequence: a slice, an array or a map with
// integer keys.
type Input map[string]any

// Indexed is a sparse sequence keyed by the original element index.
type Indexed map[int]any

// Keys returns the indices in ascending order.
func (s Indexed) Keys() []int {
	return slices.Sorted(maps.Keys(s))
}

// Slice returns the elements ordered by index.
func (s Indexed) Slice() []any {
	out := make([]any, 0, len(s))
	for _, k := range s.Keys() {
		out = append(out, s[k])
	}
	return out
}

// scalar converts a raw scalar into the string handed to coercion.
// Sequences and unsupported types are rejected.
func scalar(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []byte:
		return string(val), true
	case bool:
		if val {
			return "1", true
		}
		return "", true
	case int:
		return strconv.Itoa(val), true
	case int8:
		return strconv.FormatInt(int64(val), 10), true
	case int16:
		return strconv.FormatInt(int64(val), 10), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint:
		return strconv.FormatUint(uint64(val), 10), true
	case uint8:
		return strconv.FormatUint(uint64(val), 10), true
	case uint16:
		return strconv.FormatUint(uint64(val), 10), true
	case uint32:
		return strconv.FormatUint(uint64(val), 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case fmt.Stringer:
		return val.String(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return scalar(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return "", false
}

// sequence converts a raw array value into Indexed. Scalars are rejected.
func sequence(v any) (Indexed, bool) {
	switch val := v.(type) {
	case Indexed:
		return val, true
	case map[int]any:
		return Indexed(val), true
	case map[int]string:
		out := make(Indexed, len(val))
		for k, el := range val {
			out[k] = el
		}
		return out, true
	case []string:
		out := make(Indexed, len(val))
		for k, el := range val {
			out[k] = el
		}
		return out, true
	case []any:
		out := make(Indexed, len(val))
		for k, el := range val {
			out[k] = el
		}
		return out, true
	case []byte:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make(Indexed, rv.Len())
		for i := range rv.Len() {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	case reflect.Map:
		out := make(Indexed, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			idx, ok := mapIndex(iter.Key())
			if !ok {
				return nil, false
			}
			out[idx] = iter.Value().Interface()
		}
		return out, true
	}
	return nil, false
}

// mapIndex converts an integer map key into a sequence index.
func mapIndex(k reflect.Value) (int, bool) {
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(k.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(k.Uint()), true
	}
	return 0, false
}

// InputFromValues builds an Input from decoded form or query values.
//
// Keys of the form name[] append to the sequence name after its highest
// index, and keys of the form name[3] set index 3 (the last value wins).
// A plain key keeps its last value. When a name is used both as a sequence
// and as a plain key, the sequence wins. Brackets that do not hold an
// integer are kept as part of the key.
func InputFromValues(values url.Values) Input {
	in := make(Input, len(values))
	seqs := make(map[string]Indexed)

	keys := slices.Sorted(maps.Keys(values))

	// Explicit indices first so that name[] appends after them.
	for _, key := range keys {
		name, idx, ok := splitIndexed(key)
		if !ok || idx < 0 {
			continue
		}
		vals := values[key]
		if len(vals) == 0 {
			continue
		}
		if seqs[name] == nil {
			seqs[name] = make(Indexed)
		}
		seqs[name][idx] = vals[len(vals)-1]
	}

	for _, key := range keys {
		name, idx, ok := splitIndexed(key)
		if ok && idx >= 0 {
			continue
		}
		vals := values[key]
		if !ok {
			if len(vals) > 0 {
				in[key] = vals[len(vals)-1]
			}
			continue
		}
		seq := seqs[name]
		if seq == nil {
			seq = make(Indexed, len(vals))
			seqs[name] = seq
		}
		next := 0
		if len(seq) > 0 {
			next = slices.Max(seq.Keys()) + 1
		}
		for _, v := range vals {
			seq[next] = v
			next++
		}
	}

	for name, seq := range seqs {
		in[name] = seq
	}
	return in
}

// splitIndexed splits name[3] into ("name", 3, true) and name[] into
// ("name", -1, true).
func splitIndexed(key string) (string, int, bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return "", 0, false
	}
	inner := key[open+1 : len(key)-1]
	if inner == "" {
		return key[:open], -1, true
	}
	idx, err := strconv.Atoi(inner)
	if err != nil || idx < 0 || strconv.Itoa(idx) != inner {
		return "", 0, false
	}
	return key[:open], idx, true
}

// InputFromRequest decodes the body of r as a URL-encoded or multipart form.
func InputFromRequest(r *http.Request) (Input, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidInput)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(DefaultMaxMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, errors.Join(ErrInvalidInput, err)
	}
	return InputFromValues(r.PostForm), nil
}
