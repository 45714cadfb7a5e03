// Package allowlist provides the "Any | List(tokens)" primitive reused, per
// §2 (component 4) of the decision-engine specification, by
// AllowedMethods, AllowedHeaders, ExposedHeaders, and TimingAllowOrigin.
package allowlist

import (
	"strings"

	"github.com/parkrevil/bunner-cors-rs/internal/util"
)

// List represents either "any token is allowed" (the wildcard) or an
// explicit, deduplicated set of tokens. Callers are responsible for
// normalizing tokens (e.g. lowercasing) to whatever comparison discipline
// their header semantics require before constructing a List; Contains
// compares items exactly as stored.
type List struct {
	any    bool
	items  []string // deduplicated, insertion order preserved
	set    map[string]struct{}
	joined string // memoized; only ever read after construction completes
}

// NewAny returns a List representing the wildcard.
func NewAny() List { return List{any: true} }

// New returns a List containing the deduplicated elements of items, in
// first-occurrence order.
func New(items []string) List {
	if len(items) == 0 {
		return List{}
	}
	set := make(map[string]struct{}, len(items))
	deduped := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := set[it]; ok {
			continue
		}
		set[it] = struct{}{}
		deduped = append(deduped, it)
	}
	l := List{items: deduped, set: set}
	return l
}

// WithJoined returns a copy of l with its joined header-value form
// precomputed via sep, per §4.5's requirement that joined list-header
// values be stable and memoizable per engine.
func (l List) WithJoined(sep string) List {
	l.joined = util.JoinWithPooledBuffer(l.items, sep)
	return l
}

// IsAny reports whether l is the wildcard.
func (l List) IsAny() bool { return l.any }

// IsEmpty reports whether l allows nothing at all (neither the wildcard nor
// any explicit token).
func (l List) IsEmpty() bool { return !l.any && len(l.items) == 0 }

// Contains reports whether item is an element of l. It is meaningless (and
// always returns false) when l is the wildcard; callers must check IsAny
// first, since "any" semantics differ by call site (see §3.1).
func (l List) Contains(item string) bool {
	if l.set == nil {
		return false
	}
	_, ok := l.set[item]
	return ok
}

// Items returns l's elements in first-occurrence order.
func (l List) Items() []string { return append([]string(nil), l.items...) }

// Joined returns the memoized, separator-joined form of l's elements, as
// set by [List.WithJoined]. It is the empty string if WithJoined was never
// called or l has no elements.
func (l List) Joined() string { return l.joined }

// ContainsAllCSV reports whether every comma-separated, trimmed,
// case-already-normalized token in csv is a member of l; empty tokens are
// ignored, and the wildcard accepts anything. The preflight header composer
// does not use it: it checks Access-Control-Request-Headers with
// headers.Check instead.
func (l List) ContainsAllCSV(csv string) bool {
	if l.any {
		return true
	}
	for _, tok := range strings.Split(csv, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if !l.Contains(tok) {
			return false
		}
	}
	return true
}
