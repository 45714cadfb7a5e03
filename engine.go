package cors

import (
	"errors"
	"slices"

	"github.com/parkrevil/bunner-cors-rs/corserrs"
	"github.com/parkrevil/bunner-cors-rs/internal/allowlist"
	"github.com/parkrevil/bunner-cors-rs/internal/headers"
	"github.com/parkrevil/bunner-cors-rs/internal/methods"
	"github.com/parkrevil/bunner-cors-rs/internal/origin"
	"github.com/parkrevil/bunner-cors-rs/internal/regexcache"
	"github.com/parkrevil/bunner-cors-rs/internal/util"
)

// engine is the validated, immutable form of a [CorsOptions]; it backs a
// [Cors] and is rebuilt wholesale by [New] and [Cors.Reconfigure]. Patterns
// are compiled, list-header values are joined, and the sorted set used for
// preflight Access-Control-Request-Headers checking is precomputed here, so
// that request handling (see compose.go) never re-joins lists, rebuilds the
// set, or revalidates.
type engine struct {
	originBuilder     OriginMatcher // retained verbatim for Cors.Options
	matcher           origin.Matcher
	matcherIsCallback bool

	credentials bool

	methods        allowlist.List
	allowedHeaders allowlist.List
	exposedHeaders allowlist.List

	allowedHeadersSorted util.SortedSet // built iff !allowedHeaders.IsAny()

	timingAllowOrigin *allowlist.List

	maxAge              *int
	allowNullOrigin     bool
	allowPrivateNetwork bool
}

// newEngine validates o against invariants I1-I12 and, if every invariant
// holds, builds the engine that backs it. Per the "construction
// completeness" property, every violated invariant is reported at once via
// [errors.Join], not just the first one encountered.
func newEngine(o CorsOptions) (*engine, error) {
	var errs []error

	matcher, buildErrs := buildOriginMatcher(o.Origin)
	errs = append(errs, buildErrs...)

	if o.Credentials && o.Origin.isAny() {
		errs = append(errs, &corserrs.CredentialsOriginError{})
	}

	if o.AllowedHeaders.list.IsAny() {
		if o.Credentials {
			errs = append(errs, &corserrs.CredentialsHeadersError{})
		}
	} else {
		for _, item := range o.AllowedHeaders.list.Items() {
			if item == "*" {
				errs = append(errs, &corserrs.WildcardInListError{Field: "allowed-headers"})
				continue
			}
			if !util.IsToken(item) {
				errs = append(errs, &corserrs.InvalidTokenError{Field: "allowed-headers", Value: item})
				continue
			}
			// Fetch-compliant browsers byte-lowercase header names before
			// writing them to Access-Control-Request-Headers; compare
			// against the same casing a preflight will actually present.
			normalized := util.ByteLowercase(item)
			if headers.IsForbiddenRequestHeaderName(normalized) {
				errs = append(errs, &corserrs.ForbiddenHeaderNameError{Value: item})
			} else if headers.IsProhibitedRequestHeaderName(normalized) {
				errs = append(errs, &corserrs.ForbiddenHeaderNameError{Value: item, Prohibited: true})
			}
		}
	}

	if !o.Methods.list.IsAny() {
		for _, item := range o.Methods.list.Items() {
			if item == "*" {
				errs = append(errs, &corserrs.WildcardInListError{Field: "methods"})
				continue
			}
			if !util.IsToken(item) {
				errs = append(errs, &corserrs.InvalidTokenError{Field: "methods", Value: item})
				continue
			}
			if methods.IsForbidden(item) {
				errs = append(errs, &corserrs.ForbiddenMethodError{Value: item})
			}
		}
	}

	if o.ExposedHeaders.list.IsAny() {
		if o.Credentials {
			errs = append(errs, &corserrs.CredentialsExposedHeadersError{})
		}
	} else {
		items := o.ExposedHeaders.list.Items()
		for _, item := range items {
			if item == "*" {
				continue // the sole-entry wildcard rule is checked below
			}
			if !util.IsToken(item) {
				errs = append(errs, &corserrs.InvalidTokenError{Field: "exposed-headers", Value: item})
			}
		}
		if slices.Contains(items, "*") {
			switch {
			case len(items) != 1:
				errs = append(errs, &corserrs.ExposedHeadersWildcardError{Reason: "not-sole"})
			case o.Credentials:
				errs = append(errs, &corserrs.ExposedHeadersWildcardError{Reason: "credentialed"})
			}
		}
	}

	if o.TimingAllowOrigin != nil {
		if o.TimingAllowOrigin.list.IsAny() {
			if o.Credentials {
				errs = append(errs, &corserrs.CredentialsTimingAllowOriginError{})
			}
		} else {
			for _, item := range o.TimingAllowOrigin.list.Items() {
				if item == "*" {
					errs = append(errs, &corserrs.WildcardInListError{Field: "timing-allow-origin"})
				}
			}
		}
	}

	if o.AllowPrivateNetwork && (!o.Credentials || o.Origin.isAny()) {
		errs = append(errs, &corserrs.PrivateNetworkError{})
	}

	if o.MaxAge != nil && *o.MaxAge < 0 {
		errs = append(errs, &corserrs.MaxAgeError{Value: *o.MaxAge})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	eng := &engine{
		originBuilder:       o.Origin,
		matcher:             matcher,
		matcherIsCallback:   o.Origin.kind == originKindCallback,
		credentials:         o.Credentials,
		methods:             o.Methods.list.WithJoined(","),
		allowedHeaders:      o.AllowedHeaders.list.WithJoined(","),
		exposedHeaders:      o.ExposedHeaders.list.WithJoined(","),
		maxAge:              o.MaxAge,
		allowNullOrigin:     o.AllowNullOrigin,
		allowPrivateNetwork: o.AllowPrivateNetwork,
	}
	if !eng.allowedHeaders.IsAny() {
		var set util.SortedSet
		for _, item := range eng.allowedHeaders.Items() {
			set.Add(util.ByteLowercase(item))
		}
		set.Fix()
		eng.allowedHeadersSorted = set
	}
	if o.TimingAllowOrigin != nil {
		joined := o.TimingAllowOrigin.list.WithJoined(",")
		eng.timingAllowOrigin = &joined
	}
	return eng, nil
}

// buildOriginMatcher compiles m's configuration (in particular, any regex
// patterns of a [ListOrigin]) into the internal matcher the engine runs on
// the hot path. Pattern-compilation failures are returned as errors rather
// than panicking so that [newEngine] can report them alongside any other
// violated invariant.
func buildOriginMatcher(m OriginMatcher) (origin.Matcher, []error) {
	switch m.kind {
	case originKindAny:
		return origin.NewAny(), nil
	case originKindDisabled:
		return origin.NewDisabled(), nil
	case originKindExact:
		return origin.NewExact(m.exact), nil
	case originKindList:
		entries := make([]origin.Entry, 0, len(m.entries))
		for _, e := range m.entries {
			if e.pattern {
				entries = append(entries, origin.Entry{Kind: origin.EntryPattern, Pattern: e.value})
				continue
			}
			entries = append(entries, origin.Entry{Kind: origin.EntryExact, Exact: e.value})
		}
		mm, err := origin.NewList(entries)
		if err != nil {
			return origin.Matcher{}, []error{translatePatternError(err)}
		}
		return mm, nil
	case originKindPredicate:
		p := m.predicate
		return origin.NewPredicate(func(o string, ctx origin.Context) bool {
			return p(o, MatchContext(ctx))
		}), nil
	case originKindCallback:
		cb := m.callback
		return origin.NewCallback(func(o *string, ctx origin.Context) origin.Result {
			r := cb(o, MatchContext(ctx))
			return origin.Result{Decision: origin.Decision(r.Decision), Value: r.Value}
		}), nil
	default: // zero value: same as DisabledOrigin
		return origin.NewDisabled(), nil
	}
}

func translatePatternError(err error) error {
	var perr *regexcache.PatternError
	if errors.As(err, &perr) {
		reason := "invalid"
		switch perr.Kind {
		case regexcache.KindTooLong:
			reason = "too-long"
		case regexcache.KindTimeout:
			reason = "timeout"
		}
		return &corserrs.PatternError{Pattern: perr.Pattern, Reason: reason, Detail: perr.Detail}
	}
	return err
}

// options reconstructs a [CorsOptions] equivalent to the one that produced
// eng. The result may differ cosmetically from the original (e.g. list
// order), but reconfiguring a [Cors] with its own [Cors.Options] is
// guaranteed to be a no-op.
func (eng *engine) options() CorsOptions {
	o := CorsOptions{
		Origin:              eng.originBuilder,
		Methods:             AllowedMethods{list: eng.methods},
		AllowedHeaders:      AllowedHeaders{list: eng.allowedHeaders},
		ExposedHeaders:      ExposedHeaders{list: eng.exposedHeaders},
		Credentials:         eng.credentials,
		MaxAge:              eng.maxAge,
		AllowNullOrigin:     eng.allowNullOrigin,
		AllowPrivateNetwork: eng.allowPrivateNetwork,
	}
	if eng.timingAllowOrigin != nil {
		t := TimingAllowOrigin{list: *eng.timingAllowOrigin}
		o.TimingAllowOrigin = &t
	}
	return o
}
