package cors

import (
	"github.com/parkrevil/bunner-cors-rs/internal/allowlist"
	"github.com/parkrevil/bunner-cors-rs/internal/methods"
)

// OriginDecision is the outcome of matching a request's origin against an
// [OriginMatcher], mirrored here (re-exported, same order) from the
// internal origin package so that [OriginCallback] implementations don't
// need to import an internal package to produce one.
type OriginDecision int

const (
	OriginSkip OriginDecision = iota
	OriginMirror
	OriginAny
	OriginExactMatch
	OriginDisallow
)

func (d OriginDecision) String() string {
	switch d {
	case OriginSkip:
		return "skip"
	case OriginMirror:
		return "mirror"
	case OriginAny:
		return "any"
	case OriginExactMatch:
		return "exact"
	case OriginDisallow:
		return "disallow"
	default:
		return "unknown"
	}
}

// OriginResult pairs an [OriginDecision] with the literal origin value to
// emit when Decision is [OriginExactMatch].
type OriginResult struct {
	Decision OriginDecision
	Value    string
}

// MatchContext carries the subset of request data a [OriginPredicate] or
// [OriginCallback] may need to reach a decision.
type MatchContext = struct {
	Method                             string
	AccessControlRequestMethod         string
	AccessControlRequestHeaders        string
	AccessControlRequestPrivateNetwork bool
}

// OriginPredicate decides, for a given origin string, whether it should be
// allowed. A Predicate can only produce Mirror or Disallow; it cannot grant
// [OriginAny].
type OriginPredicate func(origin string, ctx MatchContext) bool

// OriginCallback is the most permissive origin-matching extension point: it
// receives the request's origin (nil if absent) and returns an
// [OriginResult] verbatim. Because its output is untrusted, the engine
// applies the credentials/Any guard to whatever it returns, at request
// time, via [CredentialsAnyOriginError].
type OriginCallback func(origin *string, ctx MatchContext) OriginResult

type originMatcherKind int

const (
	originKindAny originMatcherKind = iota
	originKindDisabled
	originKindExact
	originKindList
	originKindPredicate
	originKindCallback
)

// An OriginEntry is one element of a [ListOrigin] matcher: either a literal
// origin string or a regular-expression pattern.
type OriginEntry struct {
	pattern bool
	value   string
}

// ExactOriginEntry returns a [ListOrigin] entry that matches s byte-for-byte.
func ExactOriginEntry(s string) OriginEntry { return OriginEntry{value: s} }

// PatternOriginEntry returns a [ListOrigin] entry that full-matches the
// regular expression p against the request's origin. Patterns are compiled
// (and their length/compile-time budgets enforced) when the enclosing
// [CorsOptions] is validated by [New], not when this entry is constructed.
func PatternOriginEntry(p string) OriginEntry { return OriginEntry{pattern: true, value: p} }

// An OriginMatcher decides, for each request, whether (and how) its origin
// is allowed. Construct one with [AnyOrigin], [DisabledOrigin],
// [ExactOrigin], [ListOrigin], [PredicateOrigin], or [CallbackOrigin].
//
// The zero value is equivalent to [DisabledOrigin]: CORS handling never
// engages.
type OriginMatcher struct {
	kind      originMatcherKind
	exact     string
	entries   []OriginEntry
	predicate OriginPredicate
	callback  OriginCallback
}

// AnyOrigin returns a matcher that allows any origin.
func AnyOrigin() OriginMatcher { return OriginMatcher{kind: originKindAny} }

// DisabledOrigin returns a matcher that never engages CORS handling.
func DisabledOrigin() OriginMatcher { return OriginMatcher{kind: originKindDisabled} }

// ExactOrigin returns a matcher that allows exactly one origin, compared
// case-sensitively.
func ExactOrigin(origin string) OriginMatcher {
	return OriginMatcher{kind: originKindExact, exact: origin}
}

// ListOrigin returns a matcher built from a mixture of exact origins and
// regex patterns (see [ExactOriginEntry] and [PatternOriginEntry]).
func ListOrigin(entries ...OriginEntry) OriginMatcher {
	return OriginMatcher{kind: originKindList, entries: entries}
}

// PredicateOrigin returns a matcher that delegates the allow/disallow
// decision to p for every present origin.
func PredicateOrigin(p OriginPredicate) OriginMatcher {
	return OriginMatcher{kind: originKindPredicate, predicate: p}
}

// CallbackOrigin returns a matcher that delegates the entire decision
// (including the possibility of [OriginAny]) to cb.
func CallbackOrigin(cb OriginCallback) OriginMatcher {
	return OriginMatcher{kind: originKindCallback, callback: cb}
}

func (m OriginMatcher) isAny() bool { return m.kind == originKindAny }

// AllowedMethods is the "Any | List(tokens)" policy governing which HTTP
// methods a preflight's Access-Control-Request-Method may name.
type AllowedMethods struct{ list allowlist.List }

// AnyMethod returns a policy that allows any method.
func AnyMethod() AllowedMethods { return AllowedMethods{list: allowlist.NewAny()} }

// AllowMethods returns a policy that allows exactly the given methods. Each
// method is normalized (per the Fetch standard's method-normalization
// table) before being recorded, so that, e.g., "get" and "GET" are treated
// as the same entry.
func AllowMethods(names ...string) AllowedMethods {
	normalized := make([]string, len(names))
	for i, n := range names {
		normalized[i] = methods.Normalize(n)
	}
	return AllowedMethods{list: allowlist.New(normalized)}
}

// AllowedHeaders is the "Any | List(tokens)" policy governing which request
// headers a preflight's Access-Control-Request-Headers may name.
type AllowedHeaders struct{ list allowlist.List }

// AnyRequestHeaders returns a policy that allows any request header.
func AnyRequestHeaders() AllowedHeaders { return AllowedHeaders{list: allowlist.NewAny()} }

// RequestHeaders returns a policy that allows exactly the given request
// headers.
func RequestHeaders(names ...string) AllowedHeaders {
	return AllowedHeaders{list: allowlist.New(names)}
}

// ExposedHeaders is the "None | Any | List(tokens)" policy governing which
// response headers are exposed to scripts via Access-Control-Expose-Headers.
type ExposedHeaders struct{ list allowlist.List }

// NoExposedHeaders returns the default policy: no response headers beyond
// the CORS-safelisted ones are exposed.
func NoExposedHeaders() ExposedHeaders { return ExposedHeaders{} }

// AnyExposedHeaders returns a policy that exposes every response header.
// Only valid when credentials are disabled (invariant I3).
func AnyExposedHeaders() ExposedHeaders { return ExposedHeaders{list: allowlist.NewAny()} }

// ExposeHeaders returns a policy that exposes exactly the given response
// headers. A sole "*" entry is tolerated (and treated as the wildcard) only
// when credentials are disabled (invariant I6); mixing "*" with other
// entries is always rejected.
func ExposeHeaders(names ...string) ExposedHeaders {
	return ExposedHeaders{list: allowlist.New(names)}
}

// TimingAllowOrigin is the "Any | List(origins)" policy governing the
// Timing-Allow-Origin response header.
type TimingAllowOrigin struct{ list allowlist.List }

// AnyTimingAllowOrigin returns a policy that allows any origin to read
// timing information. Only valid when credentials are disabled
// (invariant I4).
func AnyTimingAllowOrigin() TimingAllowOrigin {
	return TimingAllowOrigin{list: allowlist.NewAny()}
}

// TimingAllowOrigins returns a policy that allows exactly the given origins
// to read timing information.
func TimingAllowOrigins(origins ...string) TimingAllowOrigin {
	return TimingAllowOrigin{list: allowlist.New(origins)}
}

// CorsOptions describes a CORS policy. It is a plain value: construct it,
// pass it to [New] (or [Must]) to obtain a validated [Cors] engine.
// Mutating a CorsOptions after passing it to New or [Cors.Reconfigure] has
// no effect on the resulting engine.
type CorsOptions struct {
	// Origin decides which request origins are allowed. The zero value
	// ([DisabledOrigin]) never engages CORS handling.
	Origin OriginMatcher

	// Methods decides which preflight-requested methods are allowed. The
	// zero value allows no method at all.
	Methods AllowedMethods

	// AllowedHeaders decides which preflight-requested headers are allowed.
	// The zero value allows no request header beyond the CORS-safelisted
	// ones.
	AllowedHeaders AllowedHeaders

	// ExposedHeaders decides which response headers scripts may read beyond
	// the CORS-safelisted ones. The zero value exposes none.
	ExposedHeaders ExposedHeaders

	// Credentials, if true, allows requests to be made with credentials
	// (cookies, HTTP authentication, client-side certificates) and sets
	// Access-Control-Allow-Credentials: true on every accepted response.
	// Enabling it restricts Origin, AllowedHeaders, ExposedHeaders, and
	// TimingAllowOrigin (invariants I1-I4).
	Credentials bool

	// MaxAge, if non-nil, sets Access-Control-Max-Age on accepted preflight
	// responses to the given number of seconds (0 is a valid value and is
	// emitted literally). A nil MaxAge omits the header entirely.
	MaxAge *int

	// AllowNullOrigin, if true, allows the literal origin value "null" to
	// match Origin, subject to Origin's own matching rules. When false, a
	// "null" origin is disallowed without consulting Origin, except for
	// [DisabledOrigin] (which still never engages CORS handling) and
	// [CallbackOrigin] (whose callback still receives "null" and decides).
	AllowNullOrigin bool

	// AllowPrivateNetwork, if true, grants Private Network Access by
	// setting Access-Control-Allow-Private-Network: true on any accepted
	// preflight that carried Access-Control-Request-Private-Network: true.
	// Requires Credentials and a non-Any Origin (invariant I9).
	AllowPrivateNetwork bool

	// TimingAllowOrigin, if non-nil, sets the Timing-Allow-Origin response
	// header on accepted simple/actual responses.
	TimingAllowOrigin *TimingAllowOrigin
}
