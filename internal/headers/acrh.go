package headers

import "github.com/parkrevil/bunner-cors-rs/internal/util"

// Check reports whether acrhs is a sequence of [list-based field values]
// whose elements are
//   - all members of set,
//   - unique.
//
// Order carries no meaning here: §4.5 check 3 of the decision-engine
// specification only requires every named header to be a member of the
// configured allow-list, not that the field value list them in any
// particular order. (A stricter implementation could assume browsers
// always emit this field pre-sorted, since the underlying header names are
// themselves sorted before being joined into the field value — but this
// engine's contract makes no such assumption of its callers.)
//
// This function's parameter is a slice of strings rather than just a string
// because, although [the Fetch standard] requires browsers to include at most
// one ACRH header line in CORS-preflight requests, some intermediaries may
// well (and [some reportedly do]) split that ACRH header line into multiple
// ones.
//
// Although [the Fetch standard] requires browsers to omit any whitespace
// in the value of the ACRH field, some intermediaries may well alter this
// list-based field value by sprinkling optional whitespace (OWS) around
// the value's elements.
// [RFC 9110] ([section 5.6.1.2]) requires recipients to tolerate arbitrary
// long OWS around elements of a list-based field value,
// but adherence to this requirement leads to non-negligible performance
// degradation in CORS middleware when they handle adversarial (spoofed)
// CORS-preflight requests.
// Therefore, this function only tolerates a small total (2) of OWS bytes
// before and after each element. We expect this deviation from [RFC 9110] to
// strike a good balance between interoperability and performance.
// This function also tolerates a small number (16) of empty list elements,
// in accordance with [RFC 9110] ([section 5.6.1.2]).
//
// [RFC 9110]: https://httpwg.org/specs/rfc9110.html#abnf.extension.recipient
// [list-based field values]: https://httpwg.org/specs/rfc9110.html#abnf.extension
// [section 5.6.1.2]: https://httpwg.org/specs/rfc9110.html#rfc.section.5.6.1.2
// [some reportedly do]: https://github.com/rs/cors/issues/184
// [the Fetch standard]: https://fetch.spec.whatwg.org
func Check(set util.SortedSet, acrhs []string) bool {
	var (
		// lazily allocated: tracks which positions in set have already been
		// seen, so a repeated name is rejected regardless of where in the
		// field value (or across which field line) it reappears.
		seen []bool
		// total number of empty ACRH header line value and empty list elements
		emptyElements uint
	)
	for _, acrh := range acrhs {
		if acrh == "" { // empty ACRH header line value
			if emptyElements >= MaxEmptyElements {
				return false
			}
			emptyElements++
			continue
		}
		// acrh is not empty
		for looping := true; looping; {
			var (
				name      string
				owsBudget uint = MaxOWSBytes
			)
			acrh, owsBudget = consumeOWS(acrh, owsBudget)
			name, acrh = scanName(acrh, set.MaxLen())
			acrh, _ = consumeOWS(acrh, owsBudget)
			// Before processing name, let's perform some sanity checks.
			switch {
			case len(acrh) == 0:
				// name is the last element in this list-based field value;
				// stop the inner loop after the current iteration.
				looping = false
			case acrh[0] != ',':
				// If acrh isn't empty and doesn't start by a comma,
				// this header line value either contains more OWS than we
				// tolerate or it is not well-formed. Fail.
				return false
			default: // A comma was found at the start of acrh; consume it.
				acrh = acrh[1:]
			}
			// Now let's process name.
			if name == "" { // empty list element
				if emptyElements >= MaxEmptyElements {
					return false
				}
				emptyElements++
				continue
			}
			// name must be a member of set, and must not have appeared
			// already anywhere earlier in this field value (or an earlier
			// field line), regardless of order. set holds byte-lowercased
			// names, so name must be folded the same way before the lookup.
			pos := set.IndexAfter(-1, util.ByteLowercase(name))
			if pos < 0 {
				return false
			}
			if seen == nil {
				seen = make([]bool, set.Size())
			}
			if seen[pos] {
				return false
			}
			seen[pos] = true
		}
	}
	return true
}

const (
	MaxOWSBytes      = 2  // tolerated total of leading & trailing OWS bytes per element
	MaxEmptyElements = 16 // tolerated total of empty elements
)

func consumeOWS(s string, budget uint) (string, uint) {
	for len(s) > 0 && isOWS(s[0]) && budget > 0 {
		s = s[1:]
		budget--
	}
	return s, budget
}

// Note: name is not guaranteed to be a valid token.
func scanName(s string, maxLen uint) (name, rest string) {
	for i := range uint(len(s)) {
		// As a defense against maliciously long names,
		// we scan at most maxLen bytes.
		if isOWS(s[i]) || s[i] == ',' || i > maxLen {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// see https://httpwg.org/specs/rfc9110.html#whitespace
func isOWS(b byte) bool {
	return b == '\t' || b == ' '
}
