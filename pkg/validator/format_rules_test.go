package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slimkit/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Run("valid emails", func(t *testing.T) {
		for _, email := range []string{
			"test@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"1234567890@example.com",
			"email@example-one.com",
			"_______@example.com",
		} {
			assert.True(t, validator.ValidEmail("email", email).Check(), "should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		for _, email := range []string{
			"",
			"   ",
			"plainaddress",
			"@missingdomain.com",
			"missing@.com",
			"missing@domain",
			"spaces @domain.com",
			"email..double.dot@domain.com",
			"email@domain..com",
			" test@example.com",
			"John Doe <john@example.com>",
			"<john@example.com>",
		} {
			assert.False(t, validator.ValidEmail("email", email).Check(), "should be invalid: %q", email)
		}
	})

	t.Run("reports email code", func(t *testing.T) {
		verrs := validator.ExtractValidationErrors(validator.Apply(validator.ValidEmail("email", "nope")))
		require.Len(t, verrs, 1)
		assert.Equal(t, "email", verrs[0].Field)
		assert.Equal(t, "email", verrs[0].Code)
	})
}

func TestValidURL(t *testing.T) {
	for _, u := range []string{
		"http://example.com",
		"https://example.com/path?q=1",
		"ftp://files.example.com",
		"http://localhost:8080",
	} {
		assert.True(t, validator.ValidURL("url", u).Check(), "should be valid: %s", u)
	}
	for _, u := range []string{
		"",
		"example.com",
		"/relative/path",
		"http://",
		"not a url",
	} {
		assert.False(t, validator.ValidURL("url", u).Check(), "should be invalid: %q", u)
	}
}

func TestValidIP(t *testing.T) {
	t.Run("any family", func(t *testing.T) {
		for _, ip := range []string{"127.0.0.1", "192.168.1.254", "::1", "2001:db8::8a2e:370:7334"} {
			assert.True(t, validator.ValidIP("ip", ip).Check(), "should be valid: %s", ip)
		}
		for _, ip := range []string{"", "256.1.1.1", "1.2.3", "example.com", "::g"} {
			assert.False(t, validator.ValidIP("ip", ip).Check(), "should be invalid: %q", ip)
		}
	})

	t.Run("ipv4 only", func(t *testing.T) {
		assert.True(t, validator.ValidIPv4("ip", "10.0.0.1").Check())
		assert.False(t, validator.ValidIPv4("ip", "::1").Check())
	})

	t.Run("ipv6 only", func(t *testing.T) {
		assert.True(t, validator.ValidIPv6("ip", "fe80::1").Check())
		assert.False(t, validator.ValidIPv6("ip", "10.0.0.1").Check())
	})
}
