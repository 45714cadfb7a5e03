package regexcache_test

import (
	"strings"
	"testing"

	"github.com/parkrevil/bunner-cors-rs/internal/regexcache"
)

func TestCompileSuccess(t *testing.T) {
	re, err := regexcache.Compile(`^https://([a-z0-9-]+\.)?example\.com$`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !re.MatchString("https://api.example.com") {
		t.Error("expected pattern to match https://api.example.com")
	}
	if re.MatchString("https://example.org") {
		t.Error("expected pattern not to match https://example.org")
	}
}

func TestCompileMemoizes(t *testing.T) {
	const pattern = `^https://memoized\.example\.com$`
	re1, err := regexcache.Compile(pattern)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	re2, err := regexcache.Compile(pattern)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if re1 != re2 {
		t.Error("expected the same compiled regex to be returned for an identical pattern")
	}
}

func TestCompileTooLong(t *testing.T) {
	pattern := strings.Repeat("a", regexcache.MaxPatternLength+1)
	_, err := regexcache.Compile(pattern)
	if err == nil {
		t.Fatal("expected an error")
	}
	perr, ok := err.(*regexcache.PatternError)
	if !ok {
		t.Fatalf("expected a *PatternError, got %T", err)
	}
	if perr.Kind != regexcache.KindTooLong {
		t.Errorf("got kind %v; want %v", perr.Kind, regexcache.KindTooLong)
	}
}

func TestCompileInvalid(t *testing.T) {
	_, err := regexcache.Compile(`(unterminated`)
	if err == nil {
		t.Fatal("expected an error")
	}
	perr, ok := err.(*regexcache.PatternError)
	if !ok {
		t.Fatalf("expected a *PatternError, got %T", err)
	}
	if perr.Kind != regexcache.KindInvalid {
		t.Errorf("got kind %v; want %v", perr.Kind, regexcache.KindInvalid)
	}
}

func TestCompileCachesErrors(t *testing.T) {
	const pattern = `(another-unterminated`
	_, err1 := regexcache.Compile(pattern)
	_, err2 := regexcache.Compile(pattern)
	if err1 == nil || err2 == nil {
		t.Fatal("expected errors")
	}
	if err1.Error() != err2.Error() {
		t.Errorf("expected memoized error messages to match: %q vs %q", err1, err2)
	}
}
