package origin_test

import (
	"testing"

	"github.com/parkrevil/bunner-cors-rs/internal/origin"
)

func TestAnyMatcher(t *testing.T) {
	m := origin.NewAny()
	if got := m.Match("https://example.com", true, origin.Context{}).Decision; got != origin.Any {
		t.Errorf("got %v; want %v", got, origin.Any)
	}
	if got := m.Match("", false, origin.Context{}).Decision; got != origin.Skip {
		t.Errorf("got %v; want %v", got, origin.Skip)
	}
}

func TestDisabledMatcher(t *testing.T) {
	m := origin.NewDisabled()
	if got := m.Match("https://example.com", true, origin.Context{}).Decision; got != origin.Skip {
		t.Errorf("got %v; want %v", got, origin.Skip)
	}
}

func TestExactMatcher(t *testing.T) {
	m := origin.NewExact("https://app.example.com")
	cases := []struct {
		origin  string
		present bool
		want    origin.Decision
	}{
		{"https://app.example.com", true, origin.ExactMatch},
		{"https://evil.example.com", true, origin.Disallow},
		{"", false, origin.Skip},
		{"https://APP.example.com", true, origin.Disallow}, // case-sensitive
	}
	for _, tc := range cases {
		got := m.Match(tc.origin, tc.present, origin.Context{}).Decision
		if got != tc.want {
			t.Errorf("Match(%q, %t): got %v; want %v", tc.origin, tc.present, got, tc.want)
		}
	}
}

func TestListMatcherExactAndPattern(t *testing.T) {
	m, err := origin.NewList([]origin.Entry{
		{Kind: origin.EntryExact, Exact: "https://example.com"},
		{Kind: origin.EntryPattern, Pattern: `^https://([a-z0-9-]+\.)?example\.com$`},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []struct {
		o    string
		want origin.Decision
	}{
		{"https://example.com", origin.Mirror},
		{"https://api.example.com", origin.Mirror},
		{"https://example.org", origin.Disallow},
		{"https://evilexample.com", origin.Disallow},
	}
	for _, tc := range cases {
		got := m.Match(tc.o, true, origin.Context{}).Decision
		if got != tc.want {
			t.Errorf("Match(%q): got %v; want %v", tc.o, got, tc.want)
		}
	}
}

func TestListMatcherLargeExactSet(t *testing.T) {
	var entries []origin.Entry
	for _, o := range []string{
		"https://a.example.com", "https://b.example.com", "https://c.example.com",
		"https://d.example.com", "https://e.example.com", "https://f.example.com",
	} {
		entries = append(entries, origin.Entry{Kind: origin.EntryExact, Exact: o})
	}
	m, err := origin.NewList(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Match("https://f.example.com", true, origin.Context{}).Decision; got != origin.Mirror {
		t.Errorf("got %v; want %v", got, origin.Mirror)
	}
	if got := m.Match("https://zzz.example.com", true, origin.Context{}).Decision; got != origin.Disallow {
		t.Errorf("got %v; want %v", got, origin.Disallow)
	}
}

func TestListMatcherInvalidPattern(t *testing.T) {
	_, err := origin.NewList([]origin.Entry{
		{Kind: origin.EntryPattern, Pattern: `(unterminated`},
	})
	if err == nil {
		t.Fatal("expected an error for an invalid pattern")
	}
}

func TestPredicateMatcher(t *testing.T) {
	m := origin.NewPredicate(func(o string, _ origin.Context) bool {
		return o == "https://trusted.example.com"
	})
	if got := m.Match("https://trusted.example.com", true, origin.Context{}).Decision; got != origin.Mirror {
		t.Errorf("got %v; want %v", got, origin.Mirror)
	}
	if got := m.Match("https://other.example.com", true, origin.Context{}).Decision; got != origin.Disallow {
		t.Errorf("got %v; want %v", got, origin.Disallow)
	}
}

func TestCallbackMatcher(t *testing.T) {
	m := origin.NewCallback(func(o *string, _ origin.Context) origin.Result {
		if o == nil {
			return origin.Result{Decision: origin.Skip}
		}
		return origin.Result{Decision: origin.Any}
	})
	if !m.IsCallback() {
		t.Fatal("expected IsCallback to be true")
	}
	if got := m.Match("https://example.com", true, origin.Context{}).Decision; got != origin.Any {
		t.Errorf("got %v; want %v", got, origin.Any)
	}
	if got := m.Match("", false, origin.Context{}).Decision; got != origin.Skip {
		t.Errorf("got %v; want %v", got, origin.Skip)
	}
}
