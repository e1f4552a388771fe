package form

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/slimkit/pkg/validator"
)

var (
	intPattern    = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)$`)
	floatPattern  = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
	stringPattern = regexp.MustCompile(`(?s)^.+$`)
)

// coerce converts a raw scalar according to the field kind.
// The second result is false when the value is invalid.
func (f *Field) coerce(raw string) (any, bool) {
	switch f.Kind {
	case KindRaw:
		return raw, true
	case KindBool:
		return parseBool(raw)
	case KindInt:
		return parseInt(raw)
	case KindFloat:
		return parseFloat(raw)
	case KindEmail:
		return raw, validator.ValidEmail(f.Name, raw).Check()
	case KindIP:
		return raw, validator.ValidIP(f.Name, raw).Check()
	case KindURL:
		return raw, validator.ValidURL(f.Name, raw).Check()
	case KindRegex:
		return raw, f.Pattern.MatchString(raw)
	case KindString:
		return raw, stringPattern.MatchString(raw)
	case KindDate:
		return parseDate(raw, f.layout)
	case KindFunc:
		v, ok := f.Transform(raw)
		return v, ok && v != nil
	}
	return nil, false
}

func parseBool(raw string) (any, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true, true
	case "0", "false", "off", "no", "":
		return false, true
	}
	return nil, false
}

func parseInt(raw string) (any, bool) {
	s := strings.TrimSpace(raw)
	if !intPattern.MatchString(s) {
		return nil, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, false
	}
	return n, true
}

func parseFloat(raw string) (any, bool) {
	s := strings.TrimSpace(raw)
	if !floatPattern.MatchString(s) {
		return nil, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return n, true
}

// parseDate parses raw with layout and requires the result to format back
// to exactly the same string.
func parseDate(raw, layout string) (any, bool) {
	t, err := time.Parse(layout, raw)
	if err != nil {
		return nil, false
	}
	if t.Format(layout) != raw {
		return nil, false
	}
	return t, true
}
