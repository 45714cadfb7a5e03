// Package origin implements the origin-matching sum type described in §3.1
// and §4.3 of the decision-engine specification: a request's Origin header
// is resolved against a configured [Matcher], yielding a [Decision] that the
// header composer then turns into concrete Access-Control-Allow-Origin
// semantics.
package origin

// Decision is the outcome of matching a request's (optional) origin against
// a [Matcher].
type Decision int

const (
	// Skip indicates CORS does not apply to this request (no origin was
	// present, or the matcher is [Disabled]).
	Skip Decision = iota
	// Mirror indicates the request's origin itself should be echoed back in
	// Access-Control-Allow-Origin.
	Mirror
	// Any indicates any origin is allowed; Access-Control-Allow-Origin
	// should be the literal wildcard "*".
	Any
	// ExactMatch indicates a specific, statically-known origin literal
	// should be emitted in Access-Control-Allow-Origin (see [Decision.Value]).
	ExactMatch
	// Disallow indicates the request's origin was present but did not match
	// the configured policy.
	Disallow
)

func (d Decision) String() string {
	switch d {
	case Skip:
		return "skip"
	case Mirror:
		return "mirror"
	case Any:
		return "any"
	case ExactMatch:
		return "exact"
	case Disallow:
		return "disallow"
	default:
		return "unknown"
	}
}

// Result pairs a [Decision] with the literal origin value to emit, when the
// decision is [ExactMatch]. For [Mirror], the composer uses the request's
// own origin string instead of this field.
type Result struct {
	Decision Decision
	Value    string // only meaningful when Decision == ExactMatch
}
