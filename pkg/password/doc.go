// Package password hashes and verifies user passwords.
//
// New hashes are bcrypt. Compare also accepts the unsalted MD5 hex digests
// stored by older deployments so those accounts can still sign in and be
// rehashed; NeedsRehash reports when that should happen.
//
//	hash, err := password.Hash(plain)
//	if password.Compare(plain, stored) && password.NeedsRehash(stored) {
//		hash, _ = password.Hash(plain)
//	}
//
// Random generates temporary passwords from a charset, and Strength adapts
// a validator.PasswordStrengthConfig to a form field validator.
package password
