package cors

import (
	"strconv"
	"strings"

	"github.com/parkrevil/bunner-cors-rs/internal/classify"
	"github.com/parkrevil/bunner-cors-rs/internal/headers"
	"github.com/parkrevil/bunner-cors-rs/internal/origin"
)

// maxOriginLength bounds the Origin header value this engine will attempt
// to match, per §6: longer values are treated as disallowed without ever
// reaching the configured matcher, unless that matcher is Disabled or a
// Callback (see check).
const maxOriginLength = 4096

// check is the decision dispatcher of §4.6: it runs the origin matcher,
// applies the credentials/Any guard, classifies the request, and invokes
// the appropriate composer branch. It performs no I/O and retains no
// reference into req after returning.
func (eng *engine) check(req Request, debug bool) (CorsDecision, error) {
	ctx := origin.Context{
		Method:                             req.Method,
		AccessControlRequestMethod:         req.AccessControlRequestMethod,
		AccessControlRequestHeaders:        strings.Join(req.AccessControlRequestHeaders, ","),
		AccessControlRequestPrivateNetwork: req.AccessControlRequestPrivateNetwork,
	}

	isNull := req.OriginPresent && origin.IsNull(req.Origin)

	// The max-length and null-without-opt-in checks below are a shortcut
	// around the configured matcher, not a substitute for it: a Disabled
	// matcher must still always Skip (§4.3), and a Callback matcher must
	// still see the raw origin and decide verbatim (§4.9), for both of
	// these input shapes. Only the four matcher kinds that can actually
	// compare against the origin value benefit from the shortcut.
	bypassed := eng.matcher.IsDisabled() || eng.matcherIsCallback

	var result origin.Result
	switch {
	case bypassed:
		result = eng.matcher.Match(req.Origin, req.OriginPresent, ctx)
	case req.OriginPresent && len(req.Origin) > maxOriginLength:
		result = origin.Result{Decision: origin.Disallow}
	case isNull && !eng.allowNullOrigin:
		result = origin.Result{Decision: origin.Disallow}
	default:
		result = eng.matcher.Match(req.Origin, req.OriginPresent, ctx)
	}

	if result.Decision == origin.Any && eng.credentials {
		// A statically-configured Any origin with credentials enabled is
		// already rejected at construction (invariant I1); the only way to
		// reach this is a Callback matcher producing Any dynamically.
		return CorsDecision{}, &CredentialsAnyOriginError{}
	}

	kind := classify.Classify(classify.Request{
		Method:                             req.Method,
		AccessControlRequestMethodPresent:  req.AccessControlRequestMethodPresent,
		AccessControlRequestPrivateNetwork: req.AccessControlRequestPrivateNetwork,
	}, result.Decision)

	switch kind {
	case classify.NotApplicable:
		return CorsDecision{Kind: NotApplicable}, nil
	case classify.Preflight:
		return eng.composePreflight(req, result, isNull, debug), nil
	default:
		return eng.composeSimple(req, result, isNull), nil
	}
}

// allowOriginValue returns the literal value to emit in
// Access-Control-Allow-Origin for result, and whether the origin was
// allowed at all. A "null" request origin under an Any matcher emits the
// literal "null" rather than "*", to preserve request-origin fidelity (see
// §9's open question on this point).
func allowOriginValue(result origin.Result, requestOrigin string, isNull bool) (string, bool) {
	switch result.Decision {
	case origin.Any:
		if isNull {
			return "null", true
		}
		return headers.ValueWildcard, true
	case origin.Mirror:
		return requestOrigin, true
	case origin.ExactMatch:
		return result.Value, true
	default:
		return "", false
	}
}

func (eng *engine) composeSimple(req Request, result origin.Result, isNull bool) CorsDecision {
	vary := []string{headers.Origin}

	allowOrigin, ok := allowOriginValue(result, req.Origin, isNull)
	if !ok {
		var h Headers
		h.setVary(vary)
		return CorsDecision{Kind: SimpleRejected, Headers: h}
	}

	var h Headers
	h.Set(headers.ACAO, allowOrigin)
	if eng.credentials {
		h.Set(headers.ACAC, headers.ValueTrue)
	}
	if !eng.exposedHeaders.IsEmpty() {
		if eng.exposedHeaders.IsAny() {
			h.Set(headers.ACEH, headers.ValueWildcard)
		} else {
			h.Set(headers.ACEH, eng.exposedHeaders.Joined())
		}
	}
	if eng.timingAllowOrigin != nil {
		if eng.timingAllowOrigin.IsAny() {
			h.Set(timingAllowOrigin, headers.ValueWildcard)
		} else {
			h.Set(timingAllowOrigin, eng.timingAllowOrigin.Joined())
		}
	}
	h.setVary(vary)
	return CorsDecision{Kind: SimpleAccepted, Headers: h}
}

// timingAllowOrigin is the canonical name of the header Section 6 of the
// Resource Timing spec defines; it has no place of its own among the
// Fetch-defined names in package headers.
const timingAllowOrigin = "Timing-Allow-Origin"

func (eng *engine) composePreflight(req Request, result origin.Result, isNull, debug bool) CorsDecision {
	vary := []string{headers.Origin}

	allowOrigin, ok := allowOriginValue(result, req.Origin, isNull)
	if !ok {
		var h Headers
		h.setVary(vary)
		return CorsDecision{Kind: PreflightRejected, Headers: h, Reason: OriginNotAllowed}
	}

	var buf Headers
	buf.Set(headers.ACAO, allowOrigin)
	if eng.credentials {
		buf.Set(headers.ACAC, headers.ValueTrue)
	}
	if req.AccessControlRequestPrivateNetwork && eng.allowPrivateNetwork {
		buf.Set(headers.ACAPN, headers.ValueTrue)
	}

	// reject returns the rejection decision for a failed check. When debug
	// mode is off, the headers accumulated so far are discarded (only Vary
	// is kept), matching a normal browser-facing failure response; when on,
	// they're kept so the caller can surface a more actionable diagnostic.
	reject := func(reason PreflightRejectionReason) CorsDecision {
		out := buf
		if !debug {
			out = Headers{}
		}
		out.setVary(vary)
		return CorsDecision{Kind: PreflightRejected, Headers: out, Reason: reason}
	}

	acrm := req.AccessControlRequestMethod
	switch {
	case eng.methods.IsAny() && !eng.credentials:
		buf.Set(headers.ACAM, headers.ValueWildcard)
	case eng.methods.IsAny():
		// Credentialed access forbids a literal wildcard allow-methods
		// value, so echo the specific method that was requested instead.
		buf.Set(headers.ACAM, acrm)
		vary = append(vary, headers.ACRM)
	case eng.methods.Contains(acrm):
		buf.Set(headers.ACAM, eng.methods.Joined())
	default:
		return reject(MethodNotAllowed)
	}

	if len(req.AccessControlRequestHeaders) > 0 {
		if !eng.allowedHeaders.IsAny() && !headers.Check(eng.allowedHeadersSorted, req.AccessControlRequestHeaders) {
			return reject(HeadersNotAllowed)
		}
		if eng.allowedHeaders.IsAny() {
			buf.Set(headers.ACAH, headers.ValueWildcard)
		} else {
			buf.Set(headers.ACAH, eng.allowedHeaders.Joined())
		}
	}

	if eng.maxAge != nil {
		buf.Set(headers.ACMA, strconv.Itoa(*eng.maxAge))
	}

	buf.setVary(vary)
	return CorsDecision{Kind: PreflightAccepted, Headers: buf}
}
