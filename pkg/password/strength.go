package password

import "github.com/dmitrymomot/slimkit/pkg/validator"

// Strength returns a form field validator accepting string values that meet
// cfg and are not on the common password list. Missing values pass so that
// the field's required flag decides.
func Strength(cfg validator.PasswordStrengthConfig) func(any) bool {
	return func(v any) bool {
		if v == nil {
			return true
		}
		s, ok := v.(string)
		if !ok {
			return false
		}
		return Check(s, cfg) == nil
	}
}

// Check validates plain against cfg and returns validator.ValidationErrors
// naming the failed rules.
func Check(plain string, cfg validator.PasswordStrengthConfig) error {
	return validator.Apply(
		validator.StrongPassword("password", plain, cfg),
		validator.NotCommonPassword("password", plain),
	)
}
