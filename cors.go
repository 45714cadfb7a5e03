package cors

import "sync"

// CredentialsAnyOriginError is returned by [Cors.Check] when a
// [CallbackOrigin] matcher dynamically produces [OriginAny] while
// credentials are enabled. Unlike the invariants in package [corserrs],
// this is a runtime error, not a construction-time one: a callback's
// output cannot be checked until it runs, since it is an opaque function
// value (§4.3's credentials/Any guard).
type CredentialsAnyOriginError struct{}

func (*CredentialsAnyOriginError) Error() string {
	return "cors: callback origin matcher produced Any while credentials are enabled"
}

// A Cors is a validated CORS decision engine, built from a [CorsOptions] by
// [New] or [Must]. The zero value is a passthrough engine: every request is
// [NotApplicable].
//
// A Cors must not be copied after first use. It is safe for concurrent use
// by multiple goroutines, including concurrent calls to [Cors.Check] while
// another goroutine calls [Cors.Reconfigure] or [Cors.SetDebug].
type Cors struct {
	mu    sync.RWMutex // guards the other fields
	eng   *engine
	debug bool
}

// New validates options and, if valid, returns a [Cors] engine built from
// it. If options violates any of the cross-field invariants in §3.2, New
// returns a nil *Cors and a non-nil error; that error is an
// [errors.Join] of every violated invariant (see the [corserrs] package for
// programmatic access to the individual errors).
func New(options CorsOptions) (*Cors, error) {
	eng, err := newEngine(options)
	if err != nil {
		return nil, err
	}
	return &Cors{eng: eng}, nil
}

// Must is like [New] but panics instead of returning a non-nil error. It
// exists for callers that construct a [Cors] from options known, by
// construction, to be valid (e.g. a compile-time literal), where a
// configuration error would indicate a programmer mistake rather than bad
// input.
func Must(options CorsOptions) *Cors {
	c, err := New(options)
	if err != nil {
		panic(err)
	}
	return c
}

// Reconfigure rebuilds c in accordance with options. If options is invalid,
// Reconfigure leaves c unchanged and returns a non-nil error. Otherwise, it
// atomically swaps in the new engine and leaves c's debug mode unchanged.
// You can safely reconfigure a Cors even as it's concurrently processing
// requests via [Cors.Check].
//
// The following statement is guaranteed to be a no-op (if relatively
// expensive, since it rebuilds the engine from scratch):
//
//	c.Reconfigure(c.Options())
func (c *Cors) Reconfigure(options CorsOptions) error {
	eng, err := newEngine(options)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.eng = eng
	c.mu.Unlock()
	return nil
}

// SetDebug turns c's debug mode on (if b is true) or off (otherwise). In
// debug mode, a rejected preflight's [CorsDecision] keeps the headers that
// had accumulated before the failing check (e.g. Access-Control-Allow-Origin
// and Access-Control-Allow-Credentials), plus Vary, so that callers can
// surface a more actionable diagnostic; headers that later checks would
// have added are not included. Outside debug mode, a rejected preflight
// carries only Vary. Leave debug mode off in production.
func (c *Cors) SetDebug(b bool) {
	c.mu.Lock()
	c.debug = b
	c.mu.Unlock()
}

// Options returns the [CorsOptions] currently backing c. The result may
// differ cosmetically from the options c was last constructed or
// reconfigured with (e.g. list element order), but
// c.Reconfigure(c.Options()) is guaranteed to be a no-op.
func (c *Cors) Options() CorsOptions {
	c.mu.RLock()
	eng := c.eng
	c.mu.RUnlock()
	if eng == nil {
		return CorsOptions{}
	}
	return eng.options()
}

// Check evaluates req against c's current policy and returns the resulting
// [CorsDecision]. It performs no I/O, never blocks, and retains no
// reference into req after returning. The only error it can return is
// [CredentialsAnyOriginError], raised when a [CallbackOrigin] matcher
// violates the credentials/Any guard dynamically.
func (c *Cors) Check(req Request) (CorsDecision, error) {
	c.mu.RLock()
	eng := c.eng
	debug := c.debug
	c.mu.RUnlock()
	if eng == nil {
		return CorsDecision{Kind: NotApplicable}, nil
	}
	return eng.check(req, debug)
}
