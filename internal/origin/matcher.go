package origin

import (
	"regexp"

	"github.com/parkrevil/bunner-cors-rs/internal/regexcache"
)

// Context carries the subset of request data that user-supplied predicate
// and callback matchers may need to reach a decision, per §4.3 and §4.9's
// "user callbacks" design note. It is a plain value type owned by this
// package so that package origin need not import the root package (which
// itself imports origin), avoiding an import cycle.
type Context struct {
	Method                             string
	AccessControlRequestMethod         string
	AccessControlRequestHeaders        string
	AccessControlRequestPrivateNetwork bool
}

// Predicate decides, for a given origin string, whether it should be
// allowed. Its result is trusted no more than a [Callback]'s: it feeds into
// the credentials/Any guard exactly the same way (though a Predicate cannot
// itself produce [Any], only [Mirror] or [Disallow]).
type Predicate func(origin string, ctx Context) bool

// Callback is the most permissive extension point: it receives the
// request's origin (nil if absent) and returns a [Result] verbatim. Because
// its output is untrusted, the engine applies the credentials/Any guard
// (§4.3) to whatever it returns.
type Callback func(origin *string, ctx Context) Result

// EntryKind distinguishes the two kinds of entries a [List] matcher holds.
type EntryKind int

const (
	EntryExact EntryKind = iota
	EntryPattern
)

// Entry is one element of a [List] matcher: either a byte-exact origin
// string or a regular-expression pattern to be full-matched against the
// request's origin.
type Entry struct {
	Kind    EntryKind
	Exact   string // meaningful when Kind == EntryExact
	Pattern string // meaningful when Kind == EntryPattern; the raw pattern source
}

// SmallListLinearScanThreshold is the exact-entry-count threshold above
// which a [List] matcher switches its exact-match lookups from a linear
// scan to a hash-set lookup, per §4.3 and the SMALL_LIST_LINEAR_SCAN_THRESHOLD
// constant in §6.
const SmallListLinearScanThreshold = 4

// Matcher is the sum type described in §3.1: Any | Exact | List | Predicate
// | Callback | Disabled. Construct one with [NewAny], [NewExact], [NewList],
// [NewPredicate], [NewCallback], or [NewDisabled].
type Matcher struct {
	kind matcherKind

	exact string

	exactSet    map[string]struct{} // populated when len(exactEntries) > threshold
	exactSlice  []string            // used for linear scan otherwise
	patterns    []*regexp.Regexp
	rawPatterns []string // parallel to patterns, for diagnostics/Elems

	predicate Predicate
	callback  Callback
}

type matcherKind int

const (
	kindAny matcherKind = iota
	kindExact
	kindList
	kindPredicate
	kindCallback
	kindDisabled
)

// NewAny returns a Matcher that allows any origin.
func NewAny() Matcher { return Matcher{kind: kindAny} }

// NewDisabled returns a Matcher that never engages CORS handling.
func NewDisabled() Matcher { return Matcher{kind: kindDisabled} }

// NewExact returns a Matcher that allows exactly one origin, compared
// byte-for-byte (case-sensitively), per the Fetch Standard's origin
// serialization.
func NewExact(origin string) Matcher {
	return Matcher{kind: kindExact, exact: origin}
}

// NewPredicate returns a Matcher that delegates the allow/disallow decision
// to p for every present origin.
func NewPredicate(p Predicate) Matcher {
	return Matcher{kind: kindPredicate, predicate: p}
}

// NewCallback returns a Matcher that delegates the entire decision
// (including the possibility of [Any]) to cb.
func NewCallback(cb Callback) Matcher {
	return Matcher{kind: kindCallback, callback: cb}
}

// NewList builds a Matcher from a mixture of exact origins and regex
// patterns. Patterns are compiled (and memoized) via [regexcache.Compile];
// a compilation failure is returned as a non-nil error and no Matcher is
// produced.
func NewList(entries []Entry) (Matcher, error) {
	var (
		exact       []string
		patterns    []*regexp.Regexp
		rawPatterns []string
	)
	for _, e := range entries {
		switch e.Kind {
		case EntryExact:
			exact = append(exact, e.Exact)
		case EntryPattern:
			re, err := regexcache.Compile(e.Pattern)
			if err != nil {
				return Matcher{}, err
			}
			patterns = append(patterns, re)
			rawPatterns = append(rawPatterns, e.Pattern)
		}
	}
	m := Matcher{
		kind:        kindList,
		patterns:    patterns,
		rawPatterns: rawPatterns,
	}
	if len(exact) > SmallListLinearScanThreshold {
		set := make(map[string]struct{}, len(exact))
		for _, o := range exact {
			set[o] = struct{}{}
		}
		m.exactSet = set
	} else {
		m.exactSlice = exact
	}
	return m, nil
}

// IsDisabled reports whether m is the [Disabled] variant.
func (m Matcher) IsDisabled() bool { return m.kind == kindDisabled }

// IsCallback reports whether m is the [Callback] variant: only this variant
// can legitimately yield [Any] at request time, which matters to the
// credentials guard in §4.3.
func (m Matcher) IsCallback() bool { return m.kind == kindCallback }

// IsAny reports whether m is the statically-configured [Any] variant. A
// [Callback] matcher that happens to return Any at request time does not
// count; that case is guarded separately, at request time, since it cannot
// be known at construction time.
func (m Matcher) IsAny() bool { return m.kind == kindAny }

// Match resolves m against the given (optional) origin, per the algorithms
// enumerated in §4.3. originPresent distinguishes a missing Origin header
// from one whose value happens to be the empty string (which cannot occur
// in practice, but the distinction is kept explicit for clarity).
func (m Matcher) Match(origin string, originPresent bool, ctx Context) Result {
	switch m.kind {
	case kindDisabled:
		return Result{Decision: Skip}
	case kindAny:
		if !originPresent {
			return Result{Decision: Skip}
		}
		return Result{Decision: Any}
	case kindExact:
		if !originPresent {
			return Result{Decision: Skip}
		}
		if origin == m.exact {
			return Result{Decision: ExactMatch, Value: m.exact}
		}
		return Result{Decision: Disallow}
	case kindList:
		if !originPresent {
			return Result{Decision: Skip}
		}
		if m.listContains(origin) {
			return Result{Decision: Mirror}
		}
		return Result{Decision: Disallow}
	case kindPredicate:
		if !originPresent {
			return Result{Decision: Skip}
		}
		if m.predicate(origin, ctx) {
			return Result{Decision: Mirror}
		}
		return Result{Decision: Disallow}
	case kindCallback:
		var ptr *string
		if originPresent {
			ptr = &origin
		}
		return m.callback(ptr, ctx)
	default:
		return Result{Decision: Skip}
	}
}

func (m Matcher) listContains(origin string) bool {
	if m.exactSet != nil {
		if _, ok := m.exactSet[origin]; ok {
			return true
		}
	} else {
		for _, e := range m.exactSlice {
			if e == origin {
				return true
			}
		}
	}
	for _, re := range m.patterns {
		if fullMatch(re, origin) {
			return true
		}
	}
	return false
}

// fullMatch reports whether re matches the entirety of s, not just some
// substring of it, regardless of whether the caller anchored the pattern
// with ^ and $ themselves.
func fullMatch(re *regexp.Regexp, s string) bool {
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

// Patterns returns the raw source of every regex pattern configured on a
// [List] matcher, for diagnostics.
func (m Matcher) Patterns() []string {
	return append([]string(nil), m.rawPatterns...)
}

// ExactOrigins returns every exact-match origin string configured on a
// [List] matcher, for diagnostics. Order is unspecified.
func (m Matcher) ExactOrigins() []string {
	if m.exactSet != nil {
		out := make([]string, 0, len(m.exactSet))
		for o := range m.exactSet {
			out = append(out, o)
		}
		return out
	}
	return append([]string(nil), m.exactSlice...)
}

// IsNull reports whether s is the literal null-origin serialization.
func IsNull(s string) bool { return s == "null" }
