package cors

// A Request is a framework-neutral view of the handful of request fields
// this engine's decisions ever depend on, per the origin-matching and
// classification algorithms. It owns none of the surrounding transport:
// callers adapt their own request type into a Request before calling
// [Cors.Check].
type Request struct {
	// Method is the request's HTTP method, e.g. "GET" or "OPTIONS". It is
	// compared as-is; callers should pass it already normalized per the
	// Fetch standard's method-normalization rules if their transport
	// doesn't already do so.
	Method string

	// Origin is the value of the request's Origin header. OriginPresent
	// distinguishes a missing header from one whose value happens to be
	// empty, or the literal string "null" (an ordinary origin value from
	// this engine's point of view, gated by CorsOptions.AllowNullOrigin).
	Origin        string
	OriginPresent bool

	// AccessControlRequestMethod is the value of the preflight request's
	// Access-Control-Request-Method header, if present.
	AccessControlRequestMethod        string
	AccessControlRequestMethodPresent bool

	// AccessControlRequestHeaders holds every header line value associated
	// with Access-Control-Request-Headers, in receipt order. Most callers
	// will have exactly zero or one element here; it is a slice rather
	// than a single string because some intermediaries split a single
	// logical value across multiple header lines of the same name.
	AccessControlRequestHeaders []string

	// AccessControlRequestPrivateNetwork reports whether the preflight
	// request carried Access-Control-Request-Private-Network: true.
	AccessControlRequestPrivateNetwork bool
}
