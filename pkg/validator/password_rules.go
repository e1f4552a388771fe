package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// commonPasswords lists frequently leaked passwords, lowercased.
var commonPasswords = map[string]bool{
	"password": true, "password1": true, "password123": true, "passw0rd": true,
	"123456": true, "12345678": true, "123456789": true, "1234567890": true,
	"qwerty": true, "qwerty123": true, "qwertyuiop": true, "asdfghjkl": true,
	"abc123": true, "letmein": true, "welcome": true, "monkey": true,
	"dragon": true, "sunshine": true, "iloveyou": true, "princess": true,
	"football": true, "baseball": true, "admin": true, "admin123": true,
	"administrator": true, "root": true, "toor": true, "guest": true,
	"master": true, "secret": true, "trustno1": true, "111111": true,
	"000000": true, "123123": true, "654321": true, "1q2w3e4r": true,
	"1qaz2wsx": true, "zaq12wsx": true, "superman": true, "batman": true,
}

// PasswordStrengthConfig describes a password policy.
type PasswordStrengthConfig struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	// MinCharClasses is the number of distinct character classes
	// (upper, lower, digit, other) the password must use.
	MinCharClasses int
}

// DefaultPasswordStrength requires 8 to 128 characters from at least three
// character classes.
func DefaultPasswordStrength() PasswordStrengthConfig {
	return PasswordStrengthConfig{
		MinLength:      8,
		MaxLength:      128,
		MinCharClasses: 3,
	}
}

type charClasses struct {
	upper, lower, digit, special bool
}

func (c charClasses) count() int {
	n := 0
	for _, ok := range []bool{c.upper, c.lower, c.digit, c.special} {
		if ok {
			n++
		}
	}
	return n
}

func classify(s string) charClasses {
	var c charClasses
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsDigit(r):
			c.digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r) || r == ' ':
			c.special = true
		}
	}
	return c
}

// StrongPassword checks value against cfg.
func StrongPassword(field, value string, cfg PasswordStrengthConfig) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			if n < cfg.MinLength || (cfg.MaxLength > 0 && n > cfg.MaxLength) {
				return false
			}
			c := classify(value)
			switch {
			case cfg.RequireUppercase && !c.upper,
				cfg.RequireLowercase && !c.lower,
				cfg.RequireDigits && !c.digit,
				cfg.RequireSpecial && !c.special:
				return false
			}
			return c.count() >= cfg.MinCharClasses
		},
		Error: newError(field, "password_strength",
			fmt.Sprintf("password must be %d-%d characters with required character types", cfg.MinLength, cfg.MaxLength)),
	}
}

// NotCommonPassword rejects well-known leaked passwords.
func NotCommonPassword(field, value string) Rule {
	return Rule{
		Check: func() bool { return !commonPasswords[strings.ToLower(value)] },
		Error: newError(field, "password_common", "password is too common, please choose a different one"),
	}
}
