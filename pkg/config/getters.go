package config

import (
	"os"
	"strings"
	"time"
)

// Bool reads a boolean setting. 1/true/on/yes and 0/false/off/no (any case)
// are recognised; a missing or unrecognised value yields def.
func Bool(name string, def bool) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	case "0", "false", "off", "no", "":
		return false
	}
	return def
}

// String reads a string setting with control characters removed.
// A missing variable yields def; a variable set to "" yields "".
func String(name, def string) string {
	v, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, v)
}

var dateLayouts = []string{
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04",
	time.DateOnly,
}

// Date reads a date setting in RFC 3339, "2006-01-02 15:04:05" or
// "2006-01-02" form. Values without a zone are read as UTC.
// The second result is false when the variable is missing or malformed.
func Date(name string) (time.Time, bool) {
	v := strings.TrimSpace(String(name, ""))
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
