/*
Package cors is a framework-neutral [Cross-Origin Resource Sharing (CORS)]
decision engine.

It does no I/O and owns no transport: given a [Request] describing the
handful of fields a CORS decision ever depends on, [Cors.Check] returns a
[CorsDecision] naming the headers to emit and whether the underlying
request should proceed at all. Adapting a concrete request/response type
([net/http], an RPC framework, a gateway's internal representation) into a
[Request] and applying a [CorsDecision] back onto a response is the
caller's job.

This package performs extensive configuration validation in order to
prevent you from inadvertently constructing a dysfunctional or insecure
policy: [New] and [Cors.Reconfigure] reject a [CorsOptions] that violates
any of its cross-field invariants, reporting every violation at once
rather than just the first one encountered.

Even so, care is required for CORS handling to work as intended wherever
you wire this engine in. Be particularly wary of negative interference
from other software components that play a role in processing requests
and composing responses, including intermediaries (proxies and gateways),
routers, other middleware in the chain, and the ultimate handler. Follow
the rules listed below:

  - Because [CORS-preflight requests] use [OPTIONS] as their method, you
    [SHOULD NOT] prevent OPTIONS requests from reaching this engine.
    Otherwise, preflight requests will not get properly handled and
    browser-based clients will likely experience CORS-related errors.
  - Because [CORS-preflight requests are not authenticated], authentication
    [SHOULD NOT] take place "ahead of" this engine (e.g. in a reverse proxy
    or in some middleware further up the chain). However, a caller [MAY]
    run this engine ahead of an authentication layer.
  - Intermediaries [SHOULD NOT] alter or augment the [CORS request headers]
    that are set by browsers. Regarding the value of [list-based field]
    [Access-Control-Request-Headers] specifically, intermediaries [MAY]
    add some [optional whitespace] around the value's elements or add
    (inadvertently, perhaps) some empty elements to that value, but they
    [SHOULD] do so within reason; moreover, intermediaries [MAY] split the
    value of that field across multiple field lines of that name, but they
    [SHOULD NOT] add too many empty field lines of that name. For
    performance (and at the cost of some interoperability), this engine is
    indeed stricter in its handling of this specific list-based field than
    required by [RFC 9110].
  - Intermediaries [SHOULD NOT] alter or augment the [CORS response
    headers] that this engine decides to emit.
  - Intermediaries [MAY] alter the value of the [Vary] header this engine
    decides to emit, but they [MUST] preserve all of its elements.
  - Multiple CORS engines [MUST NOT] be stacked in front of the same
    request.

[Access-Control-Request-Headers]: https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/Access-Control-Request-Headers
[CORS request headers]: https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS#the_http_request_headers
[CORS response headers]: https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS#the_http_response_headers
[CORS-preflight requests are not authenticated]: https://fetch.spec.whatwg.org/#cors-protocol-and-credentials
[CORS-preflight requests]: https://developer.mozilla.org/en-US/docs/Glossary/Preflight_request
[Cross-Origin Resource Sharing (CORS)]: https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS
[MAY]: https://www.ietf.org/rfc/rfc2119.txt
[MUST NOT]: https://www.ietf.org/rfc/rfc2119.txt
[MUST]: https://www.ietf.org/rfc/rfc2119.txt
[OPTIONS]: https://developer.mozilla.org/en-US/docs/Web/HTTP/Methods/OPTIONS
[RFC 9110]: https://www.rfc-editor.org/rfc/rfc9110.html#name-recipient-requirements
[SHOULD NOT]: https://www.ietf.org/rfc/rfc2119.txt
[SHOULD]: https://www.ietf.org/rfc/rfc2119.txt
[Vary]: https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/Vary
[list-based field]: https://httpwg.org/specs/rfc9110.html#abnf.extension
[optional whitespace]: https://httpwg.org/specs/rfc9110.html#whitespace
*/
package cors
