package util

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ByteLowercase returns a [byte-lowercase] version of ASCII string str.
// Non-ASCII bytes are left untouched; callers that need full Unicode
// case folding should use [EqualFold] instead of lowercasing and comparing.
//
// [byte-lowercase]: https://infra.spec.whatwg.org/#byte-lowercase
func ByteLowercase(str string) string {
	return asciiLower(str)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	buf := []byte(s)
	for i, b := range buf {
		if 'A' <= b && b <= 'Z' {
			buf[i] = b + ('a' - 'A')
		}
	}
	return string(buf)
}

// EqualFold reports whether a and b are equal under case-insensitive
// comparison. The ASCII fast path (bytewise comparison after ORing the 0x20
// bit) is taken whenever both inputs are pure ASCII; otherwise, a and b are
// compared under the Unicode Default Case Conversion (full `toLowerCase`
// mapping), copying a into a pooled scratch buffer before mapping it; the
// mapped results themselves are freshly allocated.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		// A cheap necessary (not sufficient, in full Unicode case folding)
		// pre-check; safe here because every case mapping this package relies
		// on (ASCII upper/lower and the Unicode full-fold caser below)
		// preserves byte length for the inputs this engine deals with
		// (header and origin tokens), so a length mismatch on the ASCII path
		// is conclusive. Non-ASCII inputs fall through to the exact fold path
		// instead of trusting this shortcut.
		if isASCII(a) && isASCII(b) {
			return false
		}
	}
	if isASCII(a) && isASCII(b) {
		return equalFoldASCII(a, b)
	}
	return equalFoldUnicode(a, b)
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca |= 0x20
		}
		if 'A' <= cb && cb <= 'Z' {
			cb |= 0x20
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// lowerCaser implements the Unicode Default Case Conversion's `toLowercase`
// full mapping (Unicode 15), locale-independent (language.Und), per §4.1.
var lowerCaser = cases.Lower(language.Und)

func equalFoldUnicode(a, b string) bool {
	buf := getNormBuf()
	defer putNormBuf(buf)
	fa := lowerCaser.Bytes(append((*buf)[:0], a...))
	fb := lowerCaser.Bytes([]byte(b))
	return string(fa) == string(fb)
}

// CaseFold returns a Unicode-lowercased (full `toLowercase` mapping) version
// of str, for use as a map key or for storage; the ASCII fast path is taken
// when str is pure ASCII.
func CaseFold(str string) string {
	if isASCII(str) {
		return asciiLower(str)
	}
	return lowerCaser.String(str)
}
