// Package cookie writes HTTP cookies with shared defaults and reads them
// back, optionally signed with HMAC-SHA256.
//
// A Jar signs with its first secret and verifies with all of them, which
// allows rotating secrets without invalidating existing cookies:
//
//	jar, err := cookie.New([]string{newSecret, oldSecret}, cookie.WithSecure(true))
//	jar.SetSigned(w, "csrf", token)
//	token, err := jar.GetSigned(r, "csrf")
//
// Secrets must be at least 32 bytes long.
package cookie
