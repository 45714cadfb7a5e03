// Package util provides low-level string, token, and pooling primitives
// shared by the CORS decision engine's other internal packages.
package util

import (
	"golang.org/x/net/http/httpguts"
)

// IsToken reports whether str is a valid HTTP token, per [RFC 9110].
// An empty string is never a valid token.
//
// [RFC 9110]: https://datatracker.ietf.org/doc/html/rfc9110#name-tokens
func IsToken(str string) bool {
	if len(str) == 0 {
		return false
	}
	for i := 0; i < len(str); i++ {
		if !httpguts.IsTokenRune(rune(str[i])) {
			return false
		}
	}
	return true
}
