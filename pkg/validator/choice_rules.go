package validator

import (
	"fmt"
	"slices"
	"strings"
)

func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: newError(field, "in_list", fmt.Sprintf("must be one of: %v", allowed)),
	}
}

// InListString checks value for strict equality with one of allowed.
func InListString(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: newError(field, "in_list", "must be one of: "+strings.Join(allowed, ", ")),
	}
}

func NotInListString(field, value string, forbidden []string) Rule {
	return Rule{
		Check: func() bool { return !slices.Contains(forbidden, value) },
		Error: newError(field, "not_in_list", "must not be one of: "+strings.Join(forbidden, ", ")),
	}
}
