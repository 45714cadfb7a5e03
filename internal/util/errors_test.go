package util_test

import (
	"strings"
	"testing"

	"github.com/parkrevil/bunner-cors-rs/internal/util"
)

func TestNewError(t *testing.T) {
	const want = "cors: whatever"
	got := util.NewError("whatever").Error()
	if got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestErrorf(t *testing.T) {
	const want = "cors: whatever 42"
	got := util.Errorf("whatever %d", 42).Error()
	if got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestInvalidOriginPatternErr(t *testing.T) {
	const (
		pattern = "foobar"
		want    = `cors: invalid origin pattern "foobar"`
	)
	got := util.InvalidOriginPatternErr(pattern).Error()

	if got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestJoin(t *testing.T) {
	cases := []struct {
		desc  string
		start string
		in    []string
		want  string
	}{
		{
			desc:  "no elements",
			start: `aaa`,
			in:    []string{},
			want:  `aaa`,
		}, {
			desc:  "one element",
			start: `aaa`,
			in:    []string{"foo"},
			want:  `aaa"foo"`,
		}, {
			desc:  "two elements",
			start: `aaa`,
			in:    []string{"foo", "bar"},
			want:  `aaa"foo" and "bar"`,
		}, {
			desc:  "three elements",
			start: `aaa`,
			in:    []string{"foo", "bar", "baz"},
			want:  `aaa"foo", "bar", and "baz"`,
		},
	}
	for _, tc := range cases {
		f := func(t *testing.T) {
			var sb strings.Builder
			sb.WriteString(tc.start)
			util.Join(&sb, tc.in)
			got := sb.String()
			if got != tc.want {
				t.Errorf("got %q; want %q", got, tc.want)
			}
		}
		t.Run(tc.desc, f)
	}
}
