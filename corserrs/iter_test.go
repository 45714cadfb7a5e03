package corserrs_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/parkrevil/bunner-cors-rs/corserrs"
)

func TestAll(t *testing.T) {
	cases := []struct {
		desc      string
		err       error
		want      []error
		breakWhen func(error) bool
	}{
		{
			desc:      "singleton",
			err:       err0,
			want:      []error{err0},
			breakWhen: alwaysFalse,
		}, {
			desc:      "multi-error no break",
			err:       err4,
			want:      []error{err2, err3},
			breakWhen: alwaysFalse,
		}, {
			desc:      "multi-error break early",
			err:       err4,
			want:      []error{err2},
			breakWhen: equal(err3),
		}, {
			desc:      "single joined error no break",
			err:       err1,
			want:      []error{err0},
			breakWhen: alwaysFalse,
		}, {
			desc:      "single joined error break early",
			err:       err1,
			want:      []error{},
			breakWhen: equal(err0),
		}, {
			desc:      "complex error tree no break",
			err:       err5,
			breakWhen: alwaysFalse,
			want:      []error{err0, err2, err3},
		},
	}
	for _, tc := range cases {
		f := func(t *testing.T) {
			got := corserrs.All(tc.err)
			assertEqual(t, got, tc.want, tc.breakWhen)
		}
		t.Run(tc.desc, f)
	}
}

var (
	err0 = errors.New("err0")
	err1 = errors.Join(err0)
	err2 = errors.New("err2")
	err3 = errors.New("err3")
	err4 = errors.Join(err2, err3)
	err5 = errors.Join(err1, err4)
)

func assertEqual(t *testing.T, got iter.Seq[error], want []error, breakWhen func(error) bool) {
	t.Helper()
	var errs []error
	var i int
	for err := range got {
		if breakWhen(err) {
			return
		}
		errs = append(errs, err)
		if len(want) <= i {
			t.Fatalf("too many elements: got %v...; want %v", errs, want)
		}
		if err != want[i] {
			t.Fatalf("unexpected element: got %v...; want %v...", errs, want[:i+1])
		}
		i++
	}
	if i != len(want) {
		t.Fatalf("not enough elements: got %v; want %v...", errs, want)
	}
}

func alwaysFalse(_ error) bool { return false }

func equal(target error) func(error) bool {
	return func(err error) bool { return err == target }
}
