package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required checks that value is not blank.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: newError(field, "required", "field is required"),
	}
}

// MinLen checks the length of value in characters.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) >= min },
		Error: newError(field, "min_length", fmt.Sprintf("must be at least %d characters long", min)),
	}
}

// MaxLen checks the length of value in characters.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: newError(field, "max_length", fmt.Sprintf("must be at most %d characters long", max)),
	}
}
