/*
Package corserrs provides functionalities for programmatically handling
configuration errors produced by package [github.com/parkrevil/bunner-cors-rs].

Most callers of the root package have no use for this package. However,
multi-tenant SaaS systems that let tenants configure their own CORS policy
(e.g. via a Web portal or a command-line interface) may find it useful: it
lets such systems surface CORS-configuration mistakes to tenants via
custom, human-friendly messages, possibly translated into a natural
language other than English, without resorting to matching on Error()
strings.
*/
package corserrs

import "fmt"

// A CredentialsOriginError indicates that credentialed access was enabled
// while the origin matcher was configured to accept any origin
// (invariant I1). Credentialed responses must never be paired with a
// wildcard allow-origin value.
type CredentialsOriginError struct{}

func (*CredentialsOriginError) Error() string {
	return "cors: credentialed access is incompatible with allowing any origin"
}

// A CredentialsHeadersError indicates that credentialed access was enabled
// while allowed_headers was configured as Any (invariant I2).
type CredentialsHeadersError struct{}

func (*CredentialsHeadersError) Error() string {
	return "cors: credentialed access is incompatible with allowing any request header"
}

// A CredentialsExposedHeadersError indicates that credentialed access was
// enabled while exposed_headers was configured as the wildcard (invariant
// I3).
type CredentialsExposedHeadersError struct{}

func (*CredentialsExposedHeadersError) Error() string {
	return "cors: credentialed access is incompatible with exposing all response headers"
}

// A CredentialsTimingAllowOriginError indicates that credentialed access
// was enabled while timing_allow_origin was configured as Any (invariant
// I4).
type CredentialsTimingAllowOriginError struct{}

func (*CredentialsTimingAllowOriginError) Error() string {
	return "cors: credentialed access is incompatible with a wildcard Timing-Allow-Origin"
}

// A WildcardInListError indicates that a list-style allow-list (allowed
// request headers, allowed methods, or Timing-Allow-Origin origins)
// contained the literal "*" as one of its entries (invariants I5 and I7,
// and the same rule for timing_allow_origin). Use [Any] instead of listing
// "*".
//
// The Field takes one of three values: "allowed-headers" | "methods" |
// "timing-allow-origin".
type WildcardInListError struct {
	Field string
}

func (err *WildcardInListError) Error() string {
	const tmpl = "cors: %s list must not contain the literal wildcard %q; use Any instead"
	return fmt.Sprintf(tmpl, err.Field, "*")
}

// An ExposedHeadersWildcardError indicates a malformed wildcard entry in
// exposed_headers (invariant I6): the wildcard, if present, must be the
// list's sole entry, and only when credentials is disabled.
//
// The Reason field takes one of two values:
//   - "not-sole": the wildcard was combined with other explicit entries;
//   - "credentialed": the wildcard was combined with credentials=true
//     (this overlaps with [CredentialsExposedHeadersError] but is reported
//     distinctly when the wildcard came from a List rather than Any).
type ExposedHeadersWildcardError struct {
	Reason string
}

func (err *ExposedHeadersWildcardError) Error() string {
	switch err.Reason {
	case "credentialed":
		return "cors: an exposed-headers list containing the wildcard is incompatible with credentialed access"
	default:
		return "cors: a wildcard entry in exposed_headers must be the list's only entry"
	}
}

// An InvalidTokenError indicates a list entry that is not a valid HTTP
// token (invariant I8).
//
// The Field takes one of three values: "methods" | "allowed-headers" |
// "exposed-headers".
type InvalidTokenError struct {
	Field string
	Value string
}

func (err *InvalidTokenError) Error() string {
	const tmpl = "cors: %s entry %q is not a valid HTTP token"
	return fmt.Sprintf(tmpl, err.Field, err.Value)
}

// A ForbiddenMethodError indicates a methods-list entry that is a forbidden
// method (CONNECT, TRACE, TRACK) per the Fetch standard: no amount of CORS
// configuration can make a forbidden method sendable from a browser, so
// allow-listing one is always a configuration mistake.
type ForbiddenMethodError struct {
	Value string
}

func (err *ForbiddenMethodError) Error() string {
	return fmt.Sprintf("cors: method %q is forbidden and can never be allow-listed", err.Value)
}

// A ForbiddenHeaderNameError indicates an allowed-headers-list entry that
// names a forbidden request-header — one a browser never lets script set,
// so allow-listing it via Access-Control-Allow-Headers can never have any
// effect — or a prohibited one: an Access-Control-* response header, which
// almost always signals a misunderstanding of CORS rather than an
// intentional request header.
type ForbiddenHeaderNameError struct {
	Value      string
	Prohibited bool
}

func (err *ForbiddenHeaderNameError) Error() string {
	if err.Prohibited {
		return fmt.Sprintf("cors: request-header name %q is prohibited", err.Value)
	}
	return fmt.Sprintf("cors: request-header name %q is forbidden", err.Value)
}

// A PrivateNetworkError indicates that allow_private_network was enabled
// without also enabling credentials and restricting the origin matcher to
// something other than Any (invariant I9).
type PrivateNetworkError struct{}

func (*PrivateNetworkError) Error() string {
	return "cors: Private Network Access requires credentialed access and a non-wildcard origin"
}

// A PatternError indicates an unacceptable origin-matching regular
// expression (invariants I10 and I11).
//
// The Reason field takes one of three values:
//   - "too-long": the pattern exceeds the maximum permitted length;
//   - "timeout": the pattern did not compile within the compile-time budget;
//   - "invalid": the pattern is not a well-formed regular expression.
type PatternError struct {
	Pattern string
	Reason  string
	Detail  string // populated when Reason == "invalid"
}

func (err *PatternError) Error() string {
	switch err.Reason {
	case "too-long":
		return fmt.Sprintf("cors: origin pattern %q exceeds the maximum permitted length", err.Pattern)
	case "timeout":
		return fmt.Sprintf("cors: origin pattern %q did not compile within the compile-time budget", err.Pattern)
	default:
		return fmt.Sprintf("cors: invalid origin pattern %q: %s", err.Pattern, err.Detail)
	}
}

// A MaxAgeError indicates a negative max_age value (invariant I12).
type MaxAgeError struct {
	Value int
}

func (err *MaxAgeError) Error() string {
	return fmt.Sprintf("cors: max-age value %d must not be negative", err.Value)
}
