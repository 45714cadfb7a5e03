// Package classify decides, from a request's method and the origin
// matcher's verdict, whether a request is a CORS preflight, a simple
// (actual) request the engine must annotate, or not subject to CORS
// handling at all.
package classify

import "github.com/parkrevil/bunner-cors-rs/internal/origin"

// Kind is the outcome of classification.
type Kind int

const (
	// NotApplicable means the request carries no origin to react to (no
	// Origin header, or the configured matcher is Disabled): the engine
	// emits an empty header set and the caller proceeds as if CORS were
	// not in play.
	NotApplicable Kind = iota
	// Preflight is an OPTIONS request announcing a subsequent
	// cross-origin request via Access-Control-Request-Method.
	Preflight
	// Simple is any other request carrying an Origin the matcher did not
	// Skip; the header composer still decides accept vs. reject based on
	// the origin decision alone.
	Simple
)

func (k Kind) String() string {
	switch k {
	case NotApplicable:
		return "NotApplicable"
	case Preflight:
		return "Preflight"
	case Simple:
		return "Simple"
	default:
		return "Unknown"
	}
}

// Request carries exactly the fields the classifier needs, independent of
// any concrete HTTP framework type.
type Request struct {
	Method                             string
	AccessControlRequestMethodPresent  bool
	AccessControlRequestPrivateNetwork bool
}

// Classify applies the decision procedure of the request classifier: an
// OPTIONS request announcing Access-Control-Request-Method is always a
// preflight, regardless of the origin decision (the composer is
// responsible for rejecting it if the origin turns out disallowed);
// otherwise a Skip decision means CORS does not apply, and any other
// decision (Mirror, Exact, Any, Disallow) means this is a simple request
// for the composer to accept or reject.
func Classify(req Request, decision origin.Decision) Kind {
	if req.Method == "OPTIONS" && req.AccessControlRequestMethodPresent {
		return Preflight
	}
	if decision == origin.Skip {
		return NotApplicable
	}
	return Simple
}
