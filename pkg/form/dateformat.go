package form

import (
	"fmt"
	"strings"
)

// dateTokens maps date() format characters to Go layout elements.
var dateTokens = map[byte]string{
	'd': "02",
	'j': "2",
	'D': "Mon",
	'l': "Monday",
	'm': "01",
	'n': "1",
	'M': "Jan",
	'F': "January",
	'Y': "2006",
	'y': "06",
	'H': "15",
	'h': "03",
	'g': "3",
	'i': "04",
	's': "05",
	'A': "PM",
	'a': "pm",
	'T': "MST",
	'P': "-07:00",
	'O': "-0700",
}

// layoutFor translates a date() style format into a time layout.
// A backslash escapes the next character. Letters without a mapping and
// characters that Go would read as layout elements are rejected.
func layoutFor(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("empty date format")
	}

	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]

		if c == '\\' {
			i++
			if i >= len(format) {
				return "", fmt.Errorf("date format %q ends with an escape", format)
			}
			c = format[i]
			if isAlnum(c) || c == '_' {
				return "", fmt.Errorf("date format %q: cannot escape %q", format, c)
			}
			b.WriteByte(c)
			continue
		}

		if tok, ok := dateTokens[c]; ok {
			b.WriteString(tok)
			continue
		}
		if isAlnum(c) || c == '_' {
			return "", fmt.Errorf("date format %q: unsupported token %q", format, c)
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
