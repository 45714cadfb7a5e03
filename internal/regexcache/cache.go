// Package regexcache provides a process-wide, memoized compiler for the
// regular-expression origin patterns that an [Any|Exact|List|...] origin
// matcher may be configured with. It exists to satisfy §4.2 of the
// decision-engine specification: origin patterns are user-supplied and must
// be bounded against both excessive pattern length and excessive compile
// time, and successful compiles must be shared across concurrent callers
// instead of recompiled.
package regexcache

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"
)

const (
	// MaxPatternLength is the largest pattern string (in bytes) this cache
	// will attempt to compile. Longer patterns are rejected outright,
	// without ever reaching the regexp compiler.
	MaxPatternLength = 50_000

	// CompileBudget is the wall-clock budget afforded to a single pattern
	// compilation. Patterns that do not finish compiling within this budget
	// are rejected as [KindTimeout].
	CompileBudget = 100 * time.Millisecond
)

// ErrorKind classifies why a pattern failed to compile.
type ErrorKind int

const (
	// KindTooLong indicates the pattern exceeded MaxPatternLength.
	KindTooLong ErrorKind = iota
	// KindTimeout indicates compilation did not finish within CompileBudget.
	KindTimeout
	// KindInvalid indicates the regexp package rejected the pattern for any
	// other reason (malformed syntax, etc).
	KindInvalid
)

func (k ErrorKind) String() string {
	switch k {
	case KindTooLong:
		return "too long"
	case KindTimeout:
		return "timeout"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// PatternError reports why [Compile] could not produce a usable regex for
// some pattern.
type PatternError struct {
	Pattern string
	Kind    ErrorKind
	Detail  string // only meaningful when Kind == KindInvalid
}

func (e *PatternError) Error() string {
	switch e.Kind {
	case KindTooLong:
		return fmt.Sprintf("cors: origin pattern exceeds maximum length of %d bytes", MaxPatternLength)
	case KindTimeout:
		return fmt.Sprintf("cors: origin pattern %q did not compile within %s", e.Pattern, CompileBudget)
	default:
		return fmt.Sprintf("cors: invalid origin pattern %q: %s", e.Pattern, e.Detail)
	}
}

// SharedRegex is a compiled pattern, reference-shared by every caller that
// requested the same pattern string. It is safe for concurrent use by
// multiple goroutines, as [*regexp.Regexp] always is.
type SharedRegex = *regexp.Regexp

// cache is the process-wide memoization table. Reads never block on a
// concurrent writer compiling a different pattern; [sync.Map] gives us a
// lock-free read path for the steady state (patterns are registered once,
// at [Cors] construction time, and read many times thereafter only during
// subsequent engine construction, never on the request hot path — the
// matcher itself holds a direct reference to the SharedRegex it was handed).
var cache sync.Map // pattern string -> *cacheEntry

type cacheEntry struct {
	re  SharedRegex
	err *PatternError
}

// Compile returns a [SharedRegex] for pattern, compiling and memoizing it on
// first use. Subsequent calls with the same pattern string reuse the
// previously compiled form (or the previously observed error) without
// recompiling.
func Compile(pattern string) (SharedRegex, error) {
	if v, ok := cache.Load(pattern); ok {
		entry := v.(*cacheEntry)
		if entry.err != nil {
			return nil, entry.err
		}
		return entry.re, nil
	}
	entry := compileUncached(pattern)
	actual, _ := cache.LoadOrStore(pattern, entry)
	stored := actual.(*cacheEntry)
	if stored.err != nil {
		return nil, stored.err
	}
	return stored.re, nil
}

func compileUncached(pattern string) *cacheEntry {
	if len(pattern) > MaxPatternLength {
		return &cacheEntry{err: &PatternError{Pattern: pattern, Kind: KindTooLong}}
	}
	ctx, cancel := context.WithTimeout(context.Background(), CompileBudget)
	defer cancel()
	type result struct {
		re  *regexp.Regexp
		err error
	}
	done := make(chan result, 1)
	go func() {
		re, err := regexp.Compile(pattern)
		done <- result{re, err}
	}()
	select {
	case r := <-done:
		if r.err != nil {
			return &cacheEntry{err: &PatternError{Pattern: pattern, Kind: KindInvalid, Detail: r.err.Error()}}
		}
		return &cacheEntry{re: r.re}
	case <-ctx.Done():
		// The goroutine above is not forcibly killed (Go's regexp compiler
		// offers no cancellation hook), but since RE2-based compilation is
		// linear in pattern size, a budget this generous should only ever be
		// exceeded on a pathologically large pattern, which MaxPatternLength
		// already bounds; this path exists as defense in depth.
		return &cacheEntry{err: &PatternError{Pattern: pattern, Kind: KindTimeout}}
	}
}

// Len reports the number of distinct patterns currently memoized. It exists
// for diagnostics and tests; implementations may cap cache entries, but this
// cache does not, since patterns only ever enter it during [Cors]
// construction (see §4.2).
func Len() int {
	n := 0
	cache.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
