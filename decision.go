package cors

import (
	"strings"

	"github.com/parkrevil/bunner-cors-rs/internal/headers"
)

// DecisionKind classifies the outcome of a [Cors.Check] call.
type DecisionKind int

const (
	// NotApplicable indicates the request was not a CORS request at all
	// (no Origin header, or the engine's origin matcher is disabled): the
	// caller should process it as an ordinary, non-CORS request.
	NotApplicable DecisionKind = iota
	// PreflightAccepted indicates a CORS-preflight request that passed
	// every check; Headers holds the full set of response headers to emit.
	PreflightAccepted
	// PreflightRejected indicates a CORS-preflight request that failed one
	// of the ordered checks in §4.5; Reason identifies which one. Headers
	// holds only Vary, unless debug mode is on (see [Cors.SetDebug]), in
	// which case it also holds whatever partial header set had accumulated
	// up to that point.
	PreflightRejected
	// SimpleAccepted indicates a non-preflight CORS request whose origin
	// was allowed; Headers holds the response headers to emit.
	SimpleAccepted
	// SimpleRejected indicates a non-preflight CORS request whose origin
	// was not allowed; Headers holds only the Vary entries that would have
	// applied had it been allowed.
	SimpleRejected
)

func (k DecisionKind) String() string {
	switch k {
	case NotApplicable:
		return "NotApplicable"
	case PreflightAccepted:
		return "PreflightAccepted"
	case PreflightRejected:
		return "PreflightRejected"
	case SimpleAccepted:
		return "SimpleAccepted"
	case SimpleRejected:
		return "SimpleRejected"
	default:
		return "Unknown"
	}
}

// PreflightRejectionReason identifies which of the ordered preflight checks
// (§4.5) caused a [PreflightRejected] decision.
type PreflightRejectionReason int

const (
	// OriginNotAllowed means the request's origin resolved to Disallow.
	OriginNotAllowed PreflightRejectionReason = iota
	// MethodNotAllowed means Access-Control-Request-Method named a method
	// not in the engine's configured method list.
	MethodNotAllowed
	// HeadersNotAllowed means Access-Control-Request-Headers named at
	// least one header not in the engine's configured allow-list.
	HeadersNotAllowed
)

func (r PreflightRejectionReason) String() string {
	switch r {
	case OriginNotAllowed:
		return "OriginNotAllowed"
	case MethodNotAllowed:
		return "MethodNotAllowed"
	case HeadersNotAllowed:
		return "HeadersNotAllowed"
	default:
		return "Unknown"
	}
}

// Headers is an ordered, append-only mapping from header name to header
// value, as produced by [Cors.Check]. Order is stable within one decision
// but carries no semantic guarantee across decisions.
type Headers struct {
	pairs [][2]string
}

// Set appends the pair (name, value) to h.
func (h *Headers) Set(name, value string) {
	h.pairs = append(h.pairs, [2]string{name, value})
}

// setVary joins parts with ", " and, if non-empty, sets it as the Vary
// header's value, per §4.5's "multiple contributions join with ', '" rule.
func (h *Headers) setVary(parts []string) {
	if len(parts) == 0 {
		return
	}
	h.Set(headers.Vary, strings.Join(parts, ", "))
}

// Len reports the number of header pairs in h.
func (h Headers) Len() int { return len(h.pairs) }

// Get returns the value of the first pair named name, and whether one was
// found.
func (h Headers) Get(name string) (string, bool) {
	for _, p := range h.pairs {
		if p[0] == name {
			return p[1], true
		}
	}
	return "", false
}

// Pairs returns a defensive copy of h's name/value pairs, in emission
// order, for a caller to copy into its own response-header representation.
func (h Headers) Pairs() [][2]string {
	return append([][2]string(nil), h.pairs...)
}

// CorsDecision is the output of [Cors.Check]: a routing decision (Kind)
// paired with the response headers (if any) the caller must emit, and, for
// a rejected preflight, the reason it was rejected.
type CorsDecision struct {
	Kind    DecisionKind
	Headers Headers
	Reason  PreflightRejectionReason // meaningful only when Kind == PreflightRejected
}
