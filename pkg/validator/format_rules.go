package validator

import (
	"net/mail"
	"net/url"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

// vars checks single values against go-playground tags. Validate is safe
// for concurrent use.
var vars = playground.New()

// ValidEmail checks for a bare RFC 5322 address (no display name, no angle
// brackets) whose domain has at least two labels. No DNS lookup is made.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) != value || value == "" {
				return false
			}
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Name != "" || addr.Address != value {
				return false
			}
			local, domain, ok := strings.Cut(value, "@")
			if !ok || local == "" {
				return false
			}
			for label := range strings.SplitSeq(domain, ".") {
				if label == "" {
					return false
				}
			}
			return strings.Contains(domain, ".")
		},
		Error: newError(field, "email", "must be a valid email address"),
	}
}

// ValidURL checks for an absolute URL with a scheme and a host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}
			return u.Scheme != "" && u.Host != ""
		},
		Error: newError(field, "url", "must be a valid URL"),
	}
}

// ValidIP checks for an IPv4 or IPv6 literal.
func ValidIP(field, value string) Rule {
	return Rule{
		Check: func() bool { return checkTag(value, "ip") },
		Error: newError(field, "ip", "must be a valid IP address"),
	}
}

func ValidIPv4(field, value string) Rule {
	return Rule{
		Check: func() bool { return checkTag(value, "ipv4") },
		Error: newError(field, "ipv4", "must be a valid IPv4 address"),
	}
}

func ValidIPv6(field, value string) Rule {
	return Rule{
		Check: func() bool { return checkTag(value, "ipv6") },
		Error: newError(field, "ipv6", "must be a valid IPv6 address"),
	}
}

func checkTag(value, tag string) bool {
	if value == "" {
		return false
	}
	return vars.Var(value, tag) == nil
}
